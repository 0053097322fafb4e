package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteAnalysisRepo implements AnalysisRepo using a SQLite database.
type SQLiteAnalysisRepo struct {
	db db.DBTX
}

func NewSQLiteAnalysisRepo(conn db.DBTX) *SQLiteAnalysisRepo {
	return &SQLiteAnalysisRepo{db: conn}
}

func (r *SQLiteAnalysisRepo) Upsert(ctx context.Context, a *domain.Analysis) error {
	insights, err := encodeList(a.Insights)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO analyses (project_id, summary, insights, suggested_profiles, suggested_missions)
		VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, a.ProjectID, a.Summary, insights, a.SuggestedProfiles, a.SuggestedMissions)
	if err != nil {
		return fmt.Errorf("upserting analysis: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisRepo) GetByProject(ctx context.Context, projectID string) (*domain.Analysis, error) {
	query := `SELECT project_id, summary, insights, suggested_profiles, suggested_missions
		FROM analyses WHERE project_id = ?`
	var a domain.Analysis
	var insights string
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&a.ProjectID, &a.Summary, &insights, &a.SuggestedProfiles, &a.SuggestedMissions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("analysis: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}
	if a.Insights, err = decodeList[domain.Insight](insights, "insights"); err != nil {
		return nil, err
	}
	return &a, nil
}
