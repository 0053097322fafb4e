package service

import (
	"context"
	"io"

	"github.com/alexanderramin/tender/internal/catalog"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
)

// CreateProjectRequest is the validated input of the new-project flow.
type CreateProjectRequest struct {
	Title  string
	Client string
	File   *domain.Upload
}

// DashboardStats are the counters shown above the project list.
type DashboardStats struct {
	Total      int
	InProgress int
	Completed  int
}

type ProjectService interface {
	// Create persists a project with its document, analysis and seeded
	// stages in one transaction. The form is validated first.
	Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (DashboardStats, error)
	Stages(ctx context.Context, projectID string) ([]domain.Stage, error)
	Analysis(ctx context.Context, projectID string) (*domain.Analysis, error)
	Document(ctx context.Context, projectID string) (*domain.Document, error)
	// SeedDemo creates the catalog's sample projects.
	SeedDemo(ctx context.Context) ([]*domain.Project, error)
}

type CatalogService interface {
	// Sync upserts every catalog entry.
	Sync(ctx context.Context) error
	// Profiles returns profiles matching query and filter, best match first.
	Profiles(ctx context.Context, query string, filter matching.ProfileFilter) ([]domain.Profile, error)
	// Missions returns missions matching query, best match first.
	Missions(ctx context.Context, query string) ([]domain.Mission, error)
	Profile(ctx context.Context, id string) (*domain.Profile, error)
	Mission(ctx context.Context, id string) (*domain.Mission, error)
	Catalog() *catalog.Catalog
}

type SelectionService interface {
	// Load returns the saved selection, or DefaultSelection when the
	// project never saved one.
	Load(ctx context.Context, projectID string, kind domain.SelectionKind) (*domain.SelectionSet, error)
	// Toggle flips one entity in the saved selection and persists it.
	Toggle(ctx context.Context, projectID string, kind domain.SelectionKind, entityID string) (*domain.SelectionSet, error)
	Save(ctx context.Context, projectID string, kind domain.SelectionKind, set *domain.SelectionSet) error
}

// ExportFormat selects the encoding of an exported deck.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
)

type DeckService interface {
	// Config returns the saved deck settings, or the defaults.
	Config(ctx context.Context, projectID string) (*domain.DeckConfig, error)
	SaveConfig(ctx context.Context, cfg *domain.DeckConfig) error
	// Outline builds the slide list from the project, its analysis,
	// its deck settings and its selections.
	Outline(ctx context.Context, projectID string) ([]domain.Slide, error)
	// RecordGeneration stamps the config once a generation run completes.
	RecordGeneration(ctx context.Context, projectID string, slideCount int) error
	Export(ctx context.Context, projectID string, format ExportFormat, w io.Writer) error
}
