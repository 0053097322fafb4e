package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteDeckRepo implements DeckRepo using a SQLite database.
type SQLiteDeckRepo struct {
	db db.DBTX
}

func NewSQLiteDeckRepo(conn db.DBTX) *SQLiteDeckRepo {
	return &SQLiteDeckRepo{db: conn}
}

func (r *SQLiteDeckRepo) Get(ctx context.Context, projectID string) (*domain.DeckConfig, error) {
	query := `SELECT project_id, template, format, language, excluded, generated_at, slide_count
		FROM deck_configs WHERE project_id = ?`
	var c domain.DeckConfig
	var template, format, excluded string
	var generatedAt sql.NullString
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&c.ProjectID, &template, &format, &c.Language, &excluded, &generatedAt, &c.SlideCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("deck config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning deck config: %w", err)
	}
	c.Template = domain.DeckTemplate(template)
	c.Format = domain.DeckFormat(format)
	c.GeneratedAt = parseNullableTime(generatedAt, time.RFC3339)
	if c.Excluded, err = decodeList[string](excluded, "excluded"); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteDeckRepo) Upsert(ctx context.Context, c *domain.DeckConfig) error {
	excluded, err := encodeList(c.Excluded)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO deck_configs
		(project_id, template, format, language, excluded, generated_at, slide_count, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ProjectID,
		string(c.Template),
		string(c.Format),
		c.Language,
		excluded,
		nullableTimeToString(c.GeneratedAt, time.RFC3339),
		c.SlideCount,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting deck config: %w", err)
	}
	return nil
}
