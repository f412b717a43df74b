package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vlasenka/pausebot/internal/models"
	"github.com/vlasenka/pausebot/internal/repository/postgres"
)

const (
	selectActiveContentQuery = `
						SELECT content_type, content, source_id, is_active FROM content_entries
						WHERE is_active
						ORDER BY id
`
	selectUITextsQuery = `
						SELECT key, text FROM ui_texts
`
	deleteContentQuery = `DELETE FROM content_entries`
	deleteUITextsQuery = `DELETE FROM ui_texts`

	insertContentQuery = `
						INSERT INTO content_entries (content_type, content, source_id, is_active)
						VALUES ($1, $2, $3, $4)
`
	insertUITextQuery = `
						INSERT INTO ui_texts (key, text)
						VALUES ($1, $2)
`
)

// ContentRepository stores synced content and UI texts
type ContentRepository struct {
	db *postgres.DB
}

// NewContentRepository creates new ContentRepository instance
func NewContentRepository(db *postgres.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// ListActiveEntries returns all active content rows
func (cr *ContentRepository) ListActiveEntries(ctx context.Context) ([]models.ContentEntry, error) {
	rows, err := cr.db.Query(ctx, selectActiveContentQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ContentEntry{}

	for rows.Next() {
		entry := models.ContentEntry{}
		if err := rows.Scan(&entry.ContentType, &entry.Content, &entry.SourceID, &entry.IsActive); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ListUITexts returns all UI text rows
func (cr *ContentRepository) ListUITexts(ctx context.Context) ([]models.UIText, error) {
	rows, err := cr.db.Query(ctx, selectUITextsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	texts := []models.UIText{}

	for rows.Next() {
		text := models.UIText{}
		if err := rows.Scan(&text.Key, &text.Text); err != nil {
			continue
		}
		texts = append(texts, text)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return texts, nil
}

// Replace swaps all content and UI text rows in one transaction.
// Rows are never patched in place: the sync collaborator always sends the
// full corpus.
func (cr *ContentRepository) Replace(ctx context.Context, entries []models.ContentEntry, texts []models.UIText) error {
	return cr.db.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteContentQuery); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteUITextsQuery); err != nil {
			return err
		}

		for _, entry := range entries {
			if _, err := tx.Exec(ctx, insertContentQuery,
				entry.ContentType, entry.Content, entry.SourceID, entry.IsActive); err != nil {
				return err
			}
		}

		for _, text := range texts {
			if _, err := tx.Exec(ctx, insertUITextQuery, text.Key, text.Text); err != nil {
				return err
			}
		}

		return nil
	})
}
