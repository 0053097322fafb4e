package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageAffordance(t *testing.T) {
	assert.Equal(t, AffordanceContinue, Stage{Status: StageInProgress}.Affordance())
	assert.Equal(t, AffordanceView, Stage{Status: StageCompleted}.Affordance())
	assert.Equal(t, AffordanceNone, Stage{Status: StagePending}.Affordance())
}

func TestDefaultStages(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 0, 0, time.UTC)
	stages := DefaultStages(now)
	require.Len(t, stages, 5)

	ids := make([]string, len(stages))
	for i, s := range stages {
		ids[i] = s.ID
		assert.Equal(t, i, s.Order)
	}
	assert.Equal(t, []string{"document", "analysis", "profiles", "missions", "slides"}, ids)

	require.NotNil(t, stages[0].Date)
	assert.Equal(t, "2023-10-15", stages[0].Date.Format("2006-01-02"))
	assert.Equal(t, StageInProgress, stages[2].Status)
	assert.Nil(t, stages[2].Date)
	assert.Equal(t, StagePending, stages[4].Status)

	assert.NotSame(t, stages[0].Date, stages[1].Date)
}

func TestStageRoute(t *testing.T) {
	assert.Equal(t, "/project/p1/profiles", Stage{ID: "profiles"}.Route("p1").String())
	assert.Equal(t, "/project/p1/slides", Stage{ID: "slides"}.Route("p1").String())
	assert.Equal(t, "/project/p1", Stage{ID: "analysis"}.Route("p1").String())
}

func TestStagesAtProgress(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 0, 0, time.UTC)
	statuses := func(stages []Stage) []StageStatus {
		out := make([]StageStatus, len(stages))
		for i, s := range stages {
			out[i] = s.Status
		}
		return out
	}
	C, P, N := StageCompleted, StageInProgress, StagePending

	tests := []struct {
		progress float64
		want     []StageStatus
	}{
		{0, []StageStatus{P, N, N, N, N}},
		{0.25, []StageStatus{C, P, N, N, N}},
		{0.4, []StageStatus{C, C, P, N, N}},
		{0.75, []StageStatus{C, C, C, P, N}},
		{1, []StageStatus{C, C, C, C, C}},
		{1.5, []StageStatus{C, C, C, C, C}},
		{-1, []StageStatus{P, N, N, N, N}},
	}
	for _, tt := range tests {
		got := StagesAtProgress(now, tt.progress)
		assert.Equal(t, tt.want, statuses(got), "progress %v", tt.progress)
		for _, s := range got {
			if s.Status == StageCompleted {
				assert.NotNil(t, s.Date, "completed stage %s is dated", s.ID)
			} else {
				assert.Nil(t, s.Date, "open stage %s has no date", s.ID)
			}
		}
	}

	for _, s := range StagesAtProgress(now, 1) {
		assert.NotEqual(t, AffordanceContinue, s.Affordance(), "a finished project offers nothing to continue")
	}
}
