package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteMissionRepo stores the reference mission catalog.
type SQLiteMissionRepo struct {
	db db.DBTX
}

func NewSQLiteMissionRepo(conn db.DBTX) *SQLiteMissionRepo {
	return &SQLiteMissionRepo{db: conn}
}

const missionColumns = `id, title, client, year, duration, description, technologies, outcomes, team, match_score`

func (r *SQLiteMissionRepo) Upsert(ctx context.Context, m *domain.Mission) error {
	tech, err := encodeList(m.Technologies)
	if err != nil {
		return err
	}
	outcomes, err := encodeList(m.Outcomes)
	if err != nil {
		return err
	}
	team, err := encodeList(m.Team)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO missions (` + missionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID, m.Title, m.Client, m.Year, m.Duration, m.Description,
		tech, outcomes, team, m.MatchScore,
	)
	if err != nil {
		return fmt.Errorf("upserting mission %s: %w", m.ID, err)
	}
	return nil
}

func (r *SQLiteMissionRepo) GetByID(ctx context.Context, id string) (*domain.Mission, error) {
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = ?`
	m, err := scanMission(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mission %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

// List returns every mission ordered by ID.
func (r *SQLiteMissionRepo) List(ctx context.Context) ([]domain.Mission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+missionColumns+` FROM missions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing missions: %w", err)
	}
	defer rows.Close()

	var missions []domain.Mission
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, err
		}
		missions = append(missions, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating missions: %w", err)
	}
	return missions, nil
}

func scanMission(row rowScanner) (*domain.Mission, error) {
	var m domain.Mission
	var tech, outcomes, team string
	err := row.Scan(
		&m.ID, &m.Title, &m.Client, &m.Year, &m.Duration, &m.Description,
		&tech, &outcomes, &team, &m.MatchScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning mission: %w", err)
	}
	if m.Technologies, err = decodeList[string](tech, "technologies"); err != nil {
		return nil, err
	}
	if m.Outcomes, err = decodeList[string](outcomes, "outcomes"); err != nil {
		return nil, err
	}
	if m.Team, err = decodeList[string](team, "team"); err != nil {
		return nil, err
	}
	return &m, nil
}
