package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tender/internal/catalog"
	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/repository"
)

type projectService struct {
	projects  repository.ProjectRepo
	stages    repository.StageRepo
	documents repository.DocumentRepo
	analyses  repository.AnalysisRepo
	catalog   *catalog.Catalog
	threshold float64
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

// ProjectDeps groups the repositories a ProjectService reads from.
type ProjectDeps struct {
	Projects  repository.ProjectRepo
	Stages    repository.StageRepo
	Documents repository.DocumentRepo
	Analyses  repository.AnalysisRepo
}

// NewProjectService builds a ProjectService. New projects get their
// analysis from cat, suggesting entries that score at least threshold.
func NewProjectService(
	deps ProjectDeps,
	cat *catalog.Catalog,
	threshold float64,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProjectService {
	return &projectService{
		projects:  deps.Projects,
		stages:    deps.Stages,
		documents: deps.Documents,
		analyses:  deps.Analyses,
		catalog:   cat,
		threshold: threshold,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *projectService) Create(ctx context.Context, req CreateProjectRequest) (project *domain.Project, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"title": req.Title, "client": req.Client}
	defer observe(ctx, s.observer, "create-project", startedAt, fields, &err)

	form := domain.NewProjectForm{Title: req.Title, Client: req.Client, File: req.File}
	if err = form.Validate(); err != nil {
		return nil, err
	}
	fields["mime_type"] = req.File.MIMEType
	fields["size_bytes"] = req.File.Size

	project, err = s.persist(ctx, req.Title, req.Client, domain.ProjectInProgress, initialProgress, req.File)
	if err != nil {
		return nil, err
	}
	fields["short_id"] = project.ShortID
	return project, nil
}

// initialProgress is the share of stages complete on a new project:
// document and analysis out of five.
const initialProgress = 0.4

func (s *projectService) persist(ctx context.Context, title, client string, status domain.ProjectStatus, progress float64, file *domain.Upload) (*domain.Project, error) {
	now := s.now()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Title:     title,
		Client:    client,
		Status:    status,
		Progress:  progress,
		CreatedAt: now.Truncate(time.Second),
		UpdatedAt: now.Truncate(time.Second),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txStages := repository.NewSQLiteStageRepo(tx)
		txDocuments := repository.NewSQLiteDocumentRepo(tx)
		txAnalyses := repository.NewSQLiteAnalysisRepo(tx)

		shortID, err := txProjects.NextShortID(ctx, domain.ShortIDPrefix(client))
		if err != nil {
			return err
		}
		p.ShortID = shortID
		if err := p.ValidateShortID(); err != nil {
			return err
		}
		if err := txProjects.Create(ctx, p); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}

		if file != nil {
			doc := &domain.Document{
				ID:         uuid.New().String(),
				ProjectID:  p.ID,
				Name:       file.Name,
				MIMEType:   file.MIMEType,
				Size:       file.Size,
				SHA256:     file.SHA256,
				UploadedAt: p.CreatedAt,
			}
			if err := txDocuments.Create(ctx, doc); err != nil {
				return fmt.Errorf("creating document: %w", err)
			}
		}

		if s.catalog != nil {
			if err := txAnalyses.Upsert(ctx, s.catalog.NewAnalysis(p.ID, s.threshold)); err != nil {
				return fmt.Errorf("creating analysis: %w", err)
			}
		}

		stages := domain.DefaultStages(now)
		if file == nil {
			// Seeded projects have no upload; the tracker follows their progress.
			stages = domain.StagesAtProgress(now, progress)
		}
		for _, st := range stages {
			if err := txStages.Create(ctx, p.ID, st); err != nil {
				return fmt.Errorf("creating stages: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) SeedDemo(ctx context.Context) (created []*domain.Project, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "seed-demo", startedAt, fields, &err)

	if s.catalog == nil {
		return nil, nil
	}
	for _, d := range s.catalog.DemoProjects {
		var p *domain.Project
		p, err = s.persist(ctx, d.Title, d.Client, domain.ProjectStatus(d.Status), d.Progress, nil)
		if err != nil {
			return created, fmt.Errorf("seeding %q: %w", d.Title, err)
		}
		created = append(created, p)
	}
	fields["count"] = len(created)
	return created, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

// Stats counts projects by how they read on the dashboard. A project at
// full progress counts as completed whatever its stored status.
func (s *projectService) Stats(ctx context.Context) (DashboardStats, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stats := DashboardStats{Total: len(projects)}
	for _, p := range projects {
		switch {
		case p.LooksComplete():
			stats.Completed++
		case p.Status == domain.ProjectInProgress:
			stats.InProgress++
		}
	}
	return stats, nil
}

func (s *projectService) Stages(ctx context.Context, projectID string) ([]domain.Stage, error) {
	return s.stages.ListByProject(ctx, projectID)
}

func (s *projectService) Analysis(ctx context.Context, projectID string) (*domain.Analysis, error) {
	return s.analyses.GetByProject(ctx, projectID)
}

func (s *projectService) Document(ctx context.Context, projectID string) (*domain.Document, error) {
	return s.documents.GetByProject(ctx, projectID)
}
