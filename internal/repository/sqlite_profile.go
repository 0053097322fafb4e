package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteProfileRepo stores the expert profile catalog.
type SQLiteProfileRepo struct {
	db db.DBTX
}

func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, name, role, expertise, experience, match_score, availability,
	languages, photo, recent_missions, skills`

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	expertise, err := encodeList(p.Expertise)
	if err != nil {
		return err
	}
	languages, err := encodeList(p.Languages)
	if err != nil {
		return err
	}
	recent, err := encodeList(p.RecentMissions)
	if err != nil {
		return err
	}
	skills, err := encodeList(p.Skills)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Role, expertise, p.Experience, p.MatchScore,
		p.Availability, languages, p.Photo, recent, skills,
	)
	if err != nil {
		return fmt.Errorf("upserting profile %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// List returns every profile ordered by ID.
func (r *SQLiteProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var expertise, languages, recent, skills string
	err := row.Scan(
		&p.ID, &p.Name, &p.Role, &expertise, &p.Experience, &p.MatchScore,
		&p.Availability, &languages, &p.Photo, &recent, &skills,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	if p.Expertise, err = decodeList[string](expertise, "expertise"); err != nil {
		return nil, err
	}
	if p.Languages, err = decodeList[string](languages, "languages"); err != nil {
		return nil, err
	}
	if p.RecentMissions, err = decodeList[domain.RecentMission](recent, "recent_missions"); err != nil {
		return nil, err
	}
	if p.Skills, err = decodeList[domain.Skill](skills, "skills"); err != nil {
		return nil, err
	}
	return &p, nil
}
