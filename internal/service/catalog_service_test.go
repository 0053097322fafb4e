package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileIDs(list []domain.Profile) []string {
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

func missionIDs(list []domain.Mission) []string {
	ids := make([]string, len(list))
	for i, m := range list {
		ids[i] = m.ID
	}
	return ids
}

func TestCatalogService_SyncIsIdempotent(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.catalogSvc.Sync(ctx))

	profiles, err := s.catalogSvc.Profiles(ctx, "", matching.ProfileFilter{})
	require.NoError(t, err)
	assert.Len(t, profiles, 5)

	missions, err := s.catalogSvc.Missions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, missions, 5)
}

func TestCatalogService_Profiles(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		query  string
		filter matching.ProfileFilter
		want   []string
	}{
		{"all ranked by score", "", matching.ProfileFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"query matches expertise", "aws", matching.ProfileFilter{}, []string{"1", "5"}},
		{"query matches role case-insensitively", "DEVOPS", matching.ProfileFilter{}, []string{"2"}},
		{"whitespace query is literal", "   ", matching.ProfileFilter{}, []string{}},
		{"role filter", "", matching.ProfileFilter{Roles: []string{"devops lead"}}, []string{"2"}},
		{"skill filter", "", matching.ProfileFilter{Skills: []string{"Terraform"}}, []string{"1"}},
		{"min experience", "", matching.ProfileFilter{MinExperience: 8}, []string{"1", "4"}},
		{"query and filter combine", "cloud", matching.ProfileFilter{MinExperience: 9}, []string{"4"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.catalogSvc.Profiles(ctx, tc.query, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, profileIDs(got))
		})
	}
}

func TestCatalogService_Missions(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	got, err := s.catalogSvc.Missions(ctx, "docker")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5"}, missionIDs(got))

	got, err = s.catalogSvc.Missions(ctx, "meditech")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, missionIDs(got))
}

func TestCatalogService_Lookup(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	p, err := s.catalogSvc.Profile(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", p.Name)
	assert.True(t, p.HasSkill("Terraform"))

	m, err := s.catalogSvc.Mission(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Healthcare Data Platform", m.Title)

	_, err = s.catalogSvc.Profile(ctx, "99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
