package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vlasenka/pausebot/internal/models"
)

// UserService is interface for user profile and reminder settings
type UserService interface {
	// Upsert stores the user profile and reminder settings
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	// Get returns the user by telegram chat id
	Get(ctx context.Context, chatID int64) (*models.User, error)
}

// UserHandler represents HTTP handler for user-related requests
type UserHandler struct {
	svc UserService
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type userRequest struct {
	Username            string `json:"username"`
	FirstName           string `json:"first_name"`
	ReminderEnabled     bool   `json:"reminder_enabled"`
	ReminderFrequency   string `json:"reminder_frequency"`
	ReminderTime        string `json:"reminder_time"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

type userResponse struct {
	ChatID              int64  `json:"chat_id"`
	Username            string `json:"username"`
	FirstName           string `json:"first_name"`
	ReminderEnabled     bool   `json:"reminder_enabled"`
	ReminderFrequency   string `json:"reminder_frequency"`
	ReminderTime        string `json:"reminder_time"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

func validReminderSettings(frequency, timeSlot string) bool {
	switch frequency {
	case "", models.FrequencyDaily, models.FrequencyThreePerWeek, models.FrequencyWeekly:
	default:
		return false
	}
	switch timeSlot {
	case "", models.ReminderMorning, models.ReminderAfternoon, models.ReminderEvening, models.ReminderRandom:
	default:
		return false
	}
	return true
}

// Upsert stores the user written by the onboarding flow
// 200 — пользователь сохранён;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (uh *UserHandler) Upsert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID, err := strconv.ParseInt(chi.URLParam(r, "chat_id"), 10, 64)
		if err != nil || chatID == 0 {
			http.Error(w, "invalid chat id", http.StatusBadRequest)
			return
		}

		var req userRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if !validReminderSettings(req.ReminderFrequency, req.ReminderTime) {
			http.Error(w, "invalid reminder settings", http.StatusBadRequest)
			return
		}

		user, err := uh.svc.Upsert(r.Context(), &models.User{
			ChatID:              chatID,
			Username:            req.Username,
			FirstName:           req.FirstName,
			ReminderEnabled:     req.ReminderEnabled,
			ReminderFrequency:   req.ReminderFrequency,
			ReminderTime:        req.ReminderTime,
			OnboardingCompleted: req.OnboardingCompleted,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
			return
		}
	}
}

// Get returns the stored user
// 200 — успешная обработка запроса;
// 404 — пользователь не найден;
// 500 — внутренняя ошибка сервера.
func (uh *UserHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID, err := strconv.ParseInt(chi.URLParam(r, "chat_id"), 10, 64)
		if err != nil || chatID == 0 {
			http.Error(w, "invalid chat id", http.StatusBadRequest)
			return
		}

		user, err := uh.svc.Get(r.Context(), chatID)
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toUserResponse(user)); err != nil {
			return
		}
	}
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ChatID:              user.ChatID,
		Username:            user.Username,
		FirstName:           user.FirstName,
		ReminderEnabled:     user.ReminderEnabled,
		ReminderFrequency:   user.ReminderFrequency,
		ReminderTime:        user.ReminderTime,
		OnboardingCompleted: user.OnboardingCompleted,
	}
}
