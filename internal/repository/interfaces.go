package repository

import (
	"context"

	"github.com/alexanderramin/tender/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByShortID(ctx context.Context, shortID string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	// NextShortID returns prefix followed by the next unused two-digit number.
	NextShortID(ctx context.Context, prefix string) (string, error)
}

type StageRepo interface {
	Create(ctx context.Context, projectID string, s domain.Stage) error
	ListByProject(ctx context.Context, projectID string) ([]domain.Stage, error)
}

type DocumentRepo interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByProject(ctx context.Context, projectID string) (*domain.Document, error)
}

type AnalysisRepo interface {
	Upsert(ctx context.Context, a *domain.Analysis) error
	GetByProject(ctx context.Context, projectID string) (*domain.Analysis, error)
}

type ProfileRepo interface {
	Upsert(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type MissionRepo interface {
	Upsert(ctx context.Context, m *domain.Mission) error
	GetByID(ctx context.Context, id string) (*domain.Mission, error)
	List(ctx context.Context) ([]domain.Mission, error)
}

type SelectionRepo interface {
	// Get returns the saved IDs in order. ok is false when the project
	// never saved a selection of that kind.
	Get(ctx context.Context, projectID string, kind domain.SelectionKind) (ids []string, ok bool, err error)
	Save(ctx context.Context, projectID string, kind domain.SelectionKind, ids []string) error
}

type DeckRepo interface {
	Get(ctx context.Context, projectID string) (*domain.DeckConfig, error)
	Upsert(ctx context.Context, c *domain.DeckConfig) error
}
