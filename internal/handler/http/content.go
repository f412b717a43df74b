package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vlasenka/pausebot/internal/models"
)

// ContentCache serves random content items to the bot frontend
type ContentCache interface {
	// RandomPause returns a pause item and the category it came from
	RandomPause(ctx context.Context, lastCategory string) (string, string)
	// RandomLongPause returns a long pause item and its category
	RandomLongPause(ctx context.Context, lastCategory string) (string, string)
}

// ContentService replaces the stored corpus and republishes the cache
type ContentService interface {
	Replace(ctx context.Context, entries []models.ContentEntry, texts []models.UIText) error
	Reload(ctx context.Context) error
}

// ContentHandler represents HTTP handler for content requests
type ContentHandler struct {
	cache ContentCache
	svc   ContentService
}

// NewContentHandler creates new ContentHandler instance
func NewContentHandler(cache ContentCache, svc ContentService) *ContentHandler {
	return &ContentHandler{
		cache: cache,
		svc:   svc,
	}
}

type contentResponse struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Pause returns a random pause item. The exclude query parameter names the
// category served last so the same pool is not drawn twice in a row.
// 200 — успешная обработка запроса;
// 401 — нет ключа API.
func (ch *ContentHandler) Pause() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, category := ch.cache.RandomPause(r.Context(), r.URL.Query().Get("exclude"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(contentResponse{Text: text, Category: category}); err != nil {
			return
		}
	}
}

// LongPause returns a random long pause item
func (ch *ContentHandler) LongPause() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, category := ch.cache.RandomLongPause(r.Context(), r.URL.Query().Get("exclude"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(contentResponse{Text: text, Category: category}); err != nil {
			return
		}
	}
}

type contentEntryRequest struct {
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
	SourceID    string `json:"source_id"`
	IsActive    bool   `json:"is_active"`
}

type uiTextRequest struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

type replaceRequest struct {
	Entries []contentEntryRequest `json:"entries"`
	UITexts []uiTextRequest       `json:"ui_texts"`
}

// Replace swaps the stored corpus with the uploaded one and reloads the cache
// 200 — контент обновлён;
// 400 — неверный формат запроса;
// 401 — администратор не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (ch *ContentHandler) Replace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req replaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		entries := make([]models.ContentEntry, 0, len(req.Entries))
		for _, entry := range req.Entries {
			if entry.ContentType == "" || entry.Content == "" {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			entries = append(entries, models.ContentEntry{
				ContentType: entry.ContentType,
				Content:     entry.Content,
				SourceID:    entry.SourceID,
				IsActive:    entry.IsActive,
			})
		}

		texts := make([]models.UIText, 0, len(req.UITexts))
		for _, text := range req.UITexts {
			if text.Key == "" {
				http.Error(w, "bad request", http.StatusBadRequest)
				return
			}
			texts = append(texts, models.UIText{Key: text.Key, Text: text.Text})
		}

		if err := ch.svc.Replace(r.Context(), entries, texts); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// Reload republishes the cache from the store without changing rows
// 200 — кэш перечитан;
// 401 — администратор не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (ch *ContentHandler) Reload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ch.svc.Reload(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
