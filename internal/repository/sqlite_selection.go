package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteSelectionRepo persists per-project profile and mission selections.
type SQLiteSelectionRepo struct {
	db db.DBTX
}

func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: conn}
}

func (r *SQLiteSelectionRepo) Get(ctx context.Context, projectID string, kind domain.SelectionKind) ([]string, bool, error) {
	var marker string
	err := r.db.QueryRowContext(ctx,
		`SELECT updated_at FROM selection_sets WHERE project_id = ? AND kind = ?`,
		projectID, string(kind)).Scan(&marker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading %s selection: %w", kind, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT entity_id FROM selection_items WHERE project_id = ? AND kind = ? ORDER BY position`,
		projectID, string(kind))
	if err != nil {
		return nil, false, fmt.Errorf("listing %s selection: %w", kind, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, false, fmt.Errorf("scanning selection item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating selection items: %w", err)
	}
	return ids, true, nil
}

// Save replaces the selection of kind for a project. Call it inside a
// transaction so the delete and inserts apply together.
func (r *SQLiteSelectionRepo) Save(ctx context.Context, projectID string, kind domain.SelectionKind, ids []string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO selection_sets (project_id, kind, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(project_id, kind) DO UPDATE SET updated_at = excluded.updated_at`,
		projectID, string(kind), nowUTC())
	if err != nil {
		return fmt.Errorf("marking %s selection: %w", kind, err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM selection_items WHERE project_id = ? AND kind = ?`,
		projectID, string(kind)); err != nil {
		return fmt.Errorf("clearing %s selection: %w", kind, err)
	}
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO selection_items (project_id, kind, entity_id, position) VALUES (?, ?, ?, ?)`,
			projectID, string(kind), id, i); err != nil {
			return fmt.Errorf("inserting selection item %s: %w", id, err)
		}
	}
	return nil
}
