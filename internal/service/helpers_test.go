package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/tender/internal/catalog"
	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/alexanderramin/tender/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	db         *sql.DB
	uow        db.UnitOfWork
	catalog    *catalog.Catalog
	projects   ProjectService
	catalogSvc CatalogService
	selections SelectionService
	decks      DeckService

	projectRepo   *repository.SQLiteProjectRepo
	selectionRepo *repository.SQLiteSelectionRepo
	deckRepo      *repository.SQLiteDeckRepo
}

// setupServices wires every service over a fresh in-memory database with
// the default catalog synced.
func setupServices(t *testing.T, observers ...UseCaseObserver) *testServices {
	t.Helper()
	return setupServicesOn(t, testutil.NewTestDB(t), observers...)
}

func setupServicesOn(t *testing.T, database *sql.DB, observers ...UseCaseObserver) *testServices {
	t.Helper()
	uow := testutil.NewTestUoW(database)

	cat, err := catalog.Default()
	require.NoError(t, err)

	projectRepo := repository.NewSQLiteProjectRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	missionRepo := repository.NewSQLiteMissionRepo(database)
	selectionRepo := repository.NewSQLiteSelectionRepo(database)
	deckRepo := repository.NewSQLiteDeckRepo(database)
	analysisRepo := repository.NewSQLiteAnalysisRepo(database)

	s := &testServices{
		db:            database,
		uow:           uow,
		catalog:       cat,
		projectRepo:   projectRepo,
		selectionRepo: selectionRepo,
		deckRepo:      deckRepo,
	}
	s.projects = NewProjectService(ProjectDeps{
		Projects:  projectRepo,
		Stages:    repository.NewSQLiteStageRepo(database),
		Documents: repository.NewSQLiteDocumentRepo(database),
		Analyses:  analysisRepo,
	}, cat, 0.8, uow, observers...)
	s.catalogSvc = NewCatalogService(cat, profileRepo, missionRepo, uow, observers...)
	s.selections = NewSelectionService(selectionRepo, profileRepo, missionRepo, uow, observers...)
	s.decks = NewDeckService(DeckDeps{
		Decks:    deckRepo,
		Projects: projectRepo,
		Analyses: analysisRepo,
		Profiles: profileRepo,
		Missions: missionRepo,
	}, s.selections, observers...)

	require.NoError(t, s.catalogSvc.Sync(context.Background()))
	return s
}

func pdfUpload() *domain.Upload {
	return &domain.Upload{Name: "rfp.pdf", MIMEType: domain.MIMEPDF, Size: 2048, SHA256: "abc123"}
}

func (s *testServices) createProject(t *testing.T, title, client string) *domain.Project {
	t.Helper()
	p, err := s.projects.Create(context.Background(), CreateProjectRequest{
		Title:  title,
		Client: client,
		File:   pdfUpload(),
	})
	require.NoError(t, err)
	return p
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) named(name string) []UseCaseEvent {
	var out []UseCaseEvent
	for _, e := range r.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
