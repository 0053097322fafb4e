package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/alexanderramin/tender/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create_PersistsEverything(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	p := s.createProject(t, "Cloud Migration RFP", "TechCorp Solutions")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "TEC01", p.ShortID)
	assert.Equal(t, domain.ProjectInProgress, p.Status)
	assert.InDelta(t, 0.4, p.Progress, 1e-9)

	fetched, err := s.projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cloud Migration RFP", fetched.Title)
	assert.Equal(t, "TechCorp Solutions", fetched.Client)

	doc, err := s.projects.Document(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "rfp.pdf", doc.Name)
	assert.Equal(t, domain.MIMEPDF, doc.MIMEType)
	assert.Equal(t, int64(2048), doc.Size)

	stages, err := s.projects.Stages(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stages, 5)
	assert.Equal(t, "document", stages[0].ID)
	assert.Equal(t, domain.StageCompleted, stages[1].Status)
	assert.Equal(t, domain.StageInProgress, stages[2].Status)
	assert.Equal(t, "slides", stages[4].ID)

	analysis, err := s.projects.Analysis(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, analysis.SuggestedProfiles, "0.95, 0.87 and 0.82 reach 0.8")
	assert.Equal(t, 3, analysis.SuggestedMissions, "0.92, 0.87 and 0.83 reach 0.8")
	assert.Len(t, analysis.Insights, 5)
	assert.NotEmpty(t, analysis.Summary)
}

func TestProjectService_Create_ShortIDsIncrementPerPrefix(t *testing.T) {
	s := setupServices(t)

	first := s.createProject(t, "One", "TechCorp")
	second := s.createProject(t, "Two", "Technica")
	other := s.createProject(t, "Three", "42 Labs")

	assert.Equal(t, "TEC01", first.ShortID)
	assert.Equal(t, "TEC02", second.ShortID)
	assert.Equal(t, "LAB01", other.ShortID)
}

func TestProjectService_Create_Validation(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateProjectRequest
		want error
	}{
		{"missing title", CreateProjectRequest{Client: "Acme", File: pdfUpload()}, domain.ErrMissingFields},
		{"missing client", CreateProjectRequest{Title: "RFP", File: pdfUpload()}, domain.ErrMissingFields},
		{"missing file", CreateProjectRequest{Title: "RFP", Client: "Acme"}, domain.ErrMissingFields},
		{"legacy doc", CreateProjectRequest{Title: "RFP", Client: "Acme", File: &domain.Upload{
			Name: "rfp.doc", MIMEType: domain.MIMEDoc, Size: 10,
		}}, domain.ErrInvalidFileType},
		{"too large", CreateProjectRequest{Title: "RFP", Client: "Acme", File: &domain.Upload{
			Name: "rfp.pdf", MIMEType: domain.MIMEPDF, Size: domain.MaxUploadBytes + 1,
		}}, domain.ErrFileTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.projects.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	list, err := s.projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "rejected forms must not persist anything")
}

func TestProjectService_Create_RollsBackOnFailure(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	// Exec #1 = project insert, #2 = document, #3 = analysis.
	failUoW := &testutil.FailingUoW{
		Inner:  s.uow,
		FailOn: 3,
		Err:    errors.New("injected analysis failure"),
	}
	svc := NewProjectService(ProjectDeps{
		Projects:  s.projectRepo,
		Stages:    repository.NewSQLiteStageRepo(s.db),
		Documents: repository.NewSQLiteDocumentRepo(s.db),
		Analyses:  repository.NewSQLiteAnalysisRepo(s.db),
	}, s.catalog, 0.8, failUoW)

	_, err := svc.Create(ctx, CreateProjectRequest{Title: "RFP", Client: "Acme", File: pdfUpload()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected analysis failure")

	list, err := s.projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "project insert should be rolled back")
}

func TestProjectService_Delete(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	p := s.createProject(t, "RFP", "Acme")
	require.NoError(t, s.projects.Delete(ctx, p.ID))

	_, err := s.projects.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stages, err := s.projects.Stages(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, stages, "stages cascade with the project")

	err = s.projects.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_SeedDemoAndStats(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	created, err := s.projects.SeedDemo(ctx)
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, domain.ProjectDraft, created[0].Status)
	assert.InDelta(t, 0.25, created[0].Progress, 1e-9)
	assert.Equal(t, "TEC01", created[0].ShortID)

	_, err = s.projects.Document(ctx, created[0].ID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "demo projects carry no document")

	s.createProject(t, "Fresh", "Acme")

	stats, err := s.projects.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, DashboardStats{Total: 4, InProgress: 2, Completed: 1}, stats)
}

func TestProjectService_SeedDemoStagesFollowProgress(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	created, err := s.projects.SeedDemo(ctx)
	require.NoError(t, err)
	require.Len(t, created, 3)

	inProgress := func(p *domain.Project) []string {
		stages, err := s.projects.Stages(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, stages, 5)
		var ids []string
		for _, st := range stages {
			if st.Status == domain.StageInProgress {
				ids = append(ids, st.ID)
			}
		}
		return ids
	}
	assert.Equal(t, []string{"analysis"}, inProgress(created[0]))
	assert.Equal(t, []string{"missions"}, inProgress(created[1]))
	assert.Empty(t, inProgress(created[2]), "the completed demo project has nothing to continue")

	fresh := s.createProject(t, "Fresh", "Acme")
	assert.Equal(t, []string{"profiles"}, inProgress(fresh))
}

func TestProjectService_Stats_FullProgressCountsAsCompleted(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Done in all but name",
		testutil.WithProjectStatus(domain.ProjectInProgress),
		testutil.WithProgress(1))
	require.NoError(t, s.projectRepo.Create(ctx, p))

	stats, err := s.projects.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 0, stats.InProgress)
}

func TestProjectService_ObservesCreate(t *testing.T) {
	obs := &recordingObserver{}
	s := setupServices(t, obs)

	s.createProject(t, "RFP", "Acme")
	_, err := s.projects.Create(context.Background(), CreateProjectRequest{Title: "RFP"})
	require.Error(t, err)

	events := obs.named("create-project")
	require.Len(t, events, 2)
	assert.True(t, events[0].Success)
	assert.Equal(t, "ACM01", events[0].Fields["short_id"])
	assert.False(t, events[1].Success)
	assert.ErrorIs(t, events[1].Err, domain.ErrMissingFields)
}
