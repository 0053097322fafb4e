package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteStageRepo implements StageRepo using a SQLite database.
type SQLiteStageRepo struct {
	db db.DBTX
}

func NewSQLiteStageRepo(conn db.DBTX) *SQLiteStageRepo {
	return &SQLiteStageRepo{db: conn}
}

func (r *SQLiteStageRepo) Create(ctx context.Context, projectID string, s domain.Stage) error {
	query := `INSERT INTO project_stages (project_id, stage_id, name, status, completed_on, order_index)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		projectID,
		s.ID,
		s.Name,
		string(s.Status),
		nullableTimeToString(s.Date, dateLayout),
		s.Order,
	)
	if err != nil {
		return fmt.Errorf("inserting stage %s: %w", s.ID, err)
	}
	return nil
}

func (r *SQLiteStageRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Stage, error) {
	query := `SELECT stage_id, name, status, completed_on, order_index
		FROM project_stages WHERE project_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	defer rows.Close()

	var stages []domain.Stage
	for rows.Next() {
		var s domain.Stage
		var status string
		var completedOn sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &status, &completedOn, &s.Order); err != nil {
			return nil, fmt.Errorf("scanning stage row: %w", err)
		}
		s.Status = domain.StageStatus(status)
		s.Date = parseNullableTime(completedOn, dateLayout)
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stages: %w", err)
	}
	return stages, nil
}
