package service

import (
	"context"

	"github.com/vlasenka/pausebot/internal/models"
)

// ContentRepository is interface for replacing synced content
type ContentRepository interface {
	// Replace swaps all content and UI text rows in one transaction
	Replace(ctx context.Context, entries []models.ContentEntry, texts []models.UIText) error
}

// ContentReloader republishes the in-memory cache
type ContentReloader interface {
	Reload(ctx context.Context) error
}

// ContentService is the consumer side of the content sync collaborator:
// it persists a full corpus replacement and republishes the cache.
type ContentService struct {
	repo  ContentRepository
	cache ContentReloader
}

// NewContentService creates new ContentService instance
func NewContentService(repo ContentRepository, cache ContentReloader) *ContentService {
	return &ContentService{
		repo:  repo,
		cache: cache,
	}
}

// Replace stores the new corpus and reloads the cache
func (cs *ContentService) Replace(ctx context.Context, entries []models.ContentEntry, texts []models.UIText) error {
	if err := cs.repo.Replace(ctx, entries, texts); err != nil {
		return err
	}

	return cs.cache.Reload(ctx)
}

// Reload republishes the cache from the store
func (cs *ContentService) Reload(ctx context.Context) error {
	return cs.cache.Reload(ctx)
}
