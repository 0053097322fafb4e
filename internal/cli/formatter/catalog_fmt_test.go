package formatter

import (
	"testing"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfileList_MarksSelection(t *testing.T) {
	profiles := []domain.Profile{
		{ID: "1", Name: "Sarah Chen", Role: "Cloud Architect", Experience: 8, MatchScore: 0.95},
		{ID: "2", Name: "Michael Rodriguez", Role: "DevOps Lead", Experience: 7, MatchScore: 0.87},
	}
	got := stripANSI(FormatProfileList(profiles, domain.NewSelectionSet("2")))
	assert.Contains(t, got, "[ ]  1")
	assert.Contains(t, got, "[x]  2")
	assert.Contains(t, got, "95% match")
}

func TestFormatMissionCard_WrapsDescription(t *testing.T) {
	m := domain.Mission{
		Title:       "Healthcare Data Platform",
		Client:      "MediTech Solutions",
		Description: "Designed and implemented a HIPAA-compliant data platform on AWS for a healthcare analytics provider.",
		Outcomes:    []string{"Reduced reporting time by 60%"},
	}
	got := stripANSI(FormatMissionCard(m, 30))
	assert.Contains(t, got, "MediTech Solutions")
	assert.Contains(t, got, "• Reduced reporting")
	assert.Contains(t, got, "Designed and implemented a\nHIPAA-compliant", "description wraps at 30 columns")
}
