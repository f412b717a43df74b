package content

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/vlasenka/pausebot/internal/models"
	"go.uber.org/zap"
)

// Repository is interface for loading synced content
type Repository interface {
	// ListActiveEntries returns all active content rows
	ListActiveEntries(ctx context.Context) ([]models.ContentEntry, error)
	// ListUITexts returns all UI text rows
	ListUITexts(ctx context.Context) ([]models.UIText, error)
}

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z0-9_]+\}`)

// Cache keeps synced content and UI texts in memory. Readers always see a
// complete generation: Reload builds replacement maps aside and publishes
// both under one lock. When a category is empty the static fallback corpus
// is served instead.
type Cache struct {
	repo   Repository
	logger *zap.Logger

	mu      sync.RWMutex
	items   map[string][]string
	uiTexts map[string]string
	loaded  bool
}

// NewCache creates new Cache instance. It is empty until the first Reload
// or the first read.
func NewCache(repo Repository, logger *zap.Logger) *Cache {
	return &Cache{
		repo:    repo,
		logger:  logger,
		items:   map[string][]string{},
		uiTexts: map[string]string{},
	}
}

// Reload replaces the published maps with a freshly loaded generation.
// On fetch failure the previous generation stays published and callers
// keep degrading to the fallback corpora.
func (c *Cache) Reload(ctx context.Context) error {
	entries, err := c.repo.ListActiveEntries(ctx)
	if err != nil {
		c.logger.Warn("content reload failed, keeping previous cache", zap.Error(err))
		return err
	}

	texts, err := c.repo.ListUITexts(ctx)
	if err != nil {
		c.logger.Warn("ui texts reload failed, keeping previous cache", zap.Error(err))
		return err
	}

	items := make(map[string][]string, len(fallbackItems))
	for _, entry := range entries {
		items[entry.ContentType] = append(items[entry.ContentType], entry.Content)
	}

	uiTexts := make(map[string]string, len(texts))
	for _, text := range texts {
		uiTexts[text.Key] = text.Text
	}

	total := 0
	for _, list := range items {
		total += len(list)
	}

	c.mu.Lock()
	c.items = items
	c.uiTexts = uiTexts
	c.loaded = true
	c.mu.Unlock()

	c.logger.Info("content cache loaded",
		zap.Int("items", total),
		zap.Int("ui_texts", len(uiTexts)))

	return nil
}

// ensureLoaded reloads once on first access. Failure is already logged by
// Reload; readers fall back to the static corpora until a reload succeeds.
func (c *Cache) ensureLoaded(ctx context.Context) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()

	if !loaded {
		_ = c.Reload(ctx)
	}
}

// Random returns one random item for the category, falling back to the
// static corpus when the published list is empty. Unknown categories with
// no fallback yield an empty string.
func (c *Cache) Random(ctx context.Context, category string) string {
	c.ensureLoaded(ctx)

	c.mu.RLock()
	items := c.items[category]
	c.mu.RUnlock()

	if len(items) == 0 {
		c.logger.Debug("no cached content, using fallback", zap.String("category", category))
		items = fallbackItems[category]
	}
	if len(items) == 0 {
		return ""
	}

	return items[rand.Intn(len(items))]
}

// RandomReminder returns a short phrase for the scheduler
func (c *Cache) RandomReminder(ctx context.Context) string {
	return c.Random(ctx, models.ContentPausePhrases)
}

// RandomPause returns an item for the pause button: poems and music, plus
// the category it was drawn from. lastCategory, when set to one of the two
// pools, is excluded so the same sub-category is not shown twice in a row;
// if exclusion would leave nothing, the full union is used.
func (c *Cache) RandomPause(ctx context.Context, lastCategory string) (string, string) {
	return c.randomUnion(ctx, lastCategory,
		models.ContentPauseLong, models.ContentPauseMusic)
}

// RandomLongPause returns an item for the long pause button: meditation,
// movies and books.
func (c *Cache) RandomLongPause(ctx context.Context, lastCategory string) (string, string) {
	return c.randomUnion(ctx, lastCategory,
		models.ContentBreathe, models.ContentMovie, models.ContentBook)
}

type pooledItem struct {
	text     string
	category string
}

func (c *Cache) randomUnion(ctx context.Context, exclude string, categories ...string) (string, string) {
	c.ensureLoaded(ctx)

	var all, filtered []pooledItem

	c.mu.RLock()
	for _, category := range categories {
		for _, text := range c.items[category] {
			item := pooledItem{text: text, category: category}
			all = append(all, item)
			if category != exclude {
				filtered = append(filtered, item)
			}
		}
	}
	c.mu.RUnlock()

	if len(filtered) == 0 {
		filtered = all
	}
	if len(filtered) == 0 {
		// published pools are empty, use the full static union
		for _, category := range categories {
			for _, text := range fallbackItems[category] {
				filtered = append(filtered, pooledItem{text: text, category: category})
			}
		}
	}
	if len(filtered) == 0 {
		return "", ""
	}

	picked := filtered[rand.Intn(len(filtered))]
	return picked.text, picked.category
}

// UIText returns the text for the key with {field} placeholders substituted
// from args. Missing keys yield a "[KEY]" marker; an unresolved placeholder
// is logged and left in place, never an error.
func (c *Cache) UIText(ctx context.Context, key string, args map[string]string) string {
	c.ensureLoaded(ctx)

	c.mu.RLock()
	text, ok := c.uiTexts[key]
	c.mu.RUnlock()

	if !ok {
		text, ok = fallbackUITexts[key]
		if !ok {
			c.logger.Warn("ui text not found", zap.String("key", key))
			return "[" + key + "]"
		}
	}

	for field, value := range args {
		text = strings.ReplaceAll(text, "{"+field+"}", value)
	}

	if token := placeholderRe.FindString(text); token != "" {
		c.logger.Warn("unresolved placeholder in ui text",
			zap.String("key", key), zap.String("token", token))
	}

	return text
}

// MissingUIKeys returns required UI keys absent from the published mapping
func (c *Cache) MissingUIKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	missing := []string{}
	for _, key := range requiredUIKeys {
		if _, ok := c.uiTexts[key]; !ok {
			missing = append(missing, key)
		}
	}

	return missing
}
