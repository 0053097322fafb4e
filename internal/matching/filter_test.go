package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tender/internal/domain"
)

func sampleProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: "1", Name: "Sarah Chen", Role: "Cloud Architect", Expertise: []string{"AWS", "Azure", "Kubernetes"}, Experience: 12, MatchScore: 0.95},
		{ID: "2", Name: "Michael Rodriguez", Role: "DevOps Lead", Expertise: []string{"CI/CD", "Docker", "Kubernetes"}, Experience: 8, MatchScore: 0.87},
		{ID: "3", Name: "Amanda Johnson", Role: "Security Specialist", Expertise: []string{"Cloud Security", "IAM"}, Experience: 10, MatchScore: 0.82,
			Skills: []domain.Skill{{Name: "Compliance", Level: 0.9}}},
	}
}

func TestMatches_RoleCaseInsensitive(t *testing.T) {
	var hits []string
	for _, p := range sampleProfiles() {
		if Matches("cloud", p) {
			hits = append(hits, p.Name)
		}
	}
	// Amanda matches through the "Cloud Security" tag.
	assert.Equal(t, []string{"Sarah Chen", "Amanda Johnson"}, hits)
}

func TestMatches_MissionTechnology(t *testing.T) {
	m := domain.Mission{Title: "Financial Services Cloud Migration", Client: "BankTech International",
		Technologies: []string{"AWS", "Terraform", "Docker"}}
	assert.True(t, Matches("terraform", m))
	assert.True(t, Matches("BANKTECH", m))
	assert.False(t, Matches("azure", m))
}

func TestMatches_EmptyQueryMatchesAll(t *testing.T) {
	assert.True(t, Matches("", domain.Profile{}))
	assert.Len(t, Filter("", sampleProfiles()), 3)
}

func TestMatches_EmptyTagsNeverPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.False(t, Matches("x", domain.Mission{}))
	})
}

func TestMatches_WhitespaceQueryIsLiteral(t *testing.T) {
	p := domain.Profile{Name: "Sarah Chen"}
	assert.True(t, Matches(" ", p))
	assert.False(t, Matches("  ", p))
}

// profileOracle spells the search rule out over the raw profile fields.
func profileOracle(q string, p domain.Profile) bool {
	q = strings.ToLower(q)
	fields := append([]string{p.Name, p.Role}, p.Expertise...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func ids(list []domain.Profile) []string {
	out := []string{}
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_SoundAndComplete(t *testing.T) {
	list := sampleProfiles()
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"kube", []string{"1", "2"}},
		{"KUBE", []string{"1", "2"}},
		{"DevOps", []string{"2"}},
		{"lead", []string{"2"}},
		{"iam", []string{"3"}},
		{"zzz", []string{}},
		{"a", []string{"1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(Filter(tt.query, list))
			assert.Equal(t, tt.want, got)

			var oracle []domain.Profile
			for _, p := range list {
				if profileOracle(tt.query, p) {
					oracle = append(oracle, p)
				}
			}
			assert.Equal(t, ids(oracle), got, "filter disagrees with field-by-field search")
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := sampleProfiles()
	_ = Filter("devops", list)
	require.Len(t, list, 3)
	assert.Equal(t, "Sarah Chen", list[0].Name)
}

func TestProfileFilter(t *testing.T) {
	list := sampleProfiles()

	got := FilterProfiles("", ProfileFilter{MinExperience: 10}, list)
	assert.Len(t, got, 2)

	got = FilterProfiles("", ProfileFilter{Roles: []string{"devops lead"}}, list)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterProfiles("", ProfileFilter{Skills: []string{"Kubernetes"}}, list)
	assert.Len(t, got, 2)

	got = FilterProfiles("amanda", ProfileFilter{Skills: []string{"Compliance"}}, list)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = FilterProfiles("sarah", ProfileFilter{Skills: []string{"Compliance"}}, list)
	assert.Empty(t, got)

	assert.True(t, ProfileFilter{}.IsZero())
}
