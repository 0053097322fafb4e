package formatter

import (
	"testing"

	"github.com/alexanderramin/tender/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░]   0%"},
		{"half", 0.5, "[██░░]  50%"},
		{"full", 1, "[████] 100%"},
		{"over clamps", 1.7, "[████] 100%"},
		{"negative clamps", -0.2, "[░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 4)))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	got := stripANSI(RenderCompactBar(0.5, 1, false))
	assert.Equal(t, filledBlock+emptyBlock, got, "width clamps to 2")
	assert.NotContains(t, RenderCompactBar(0.5, 10, true), "%")
}

func TestFormatTask(t *testing.T) {
	uploading := progress.Snapshot{State: progress.StateRunning, Phase: progress.PhaseUploading, Progress: 40}
	assert.Contains(t, stripANSI(FormatTask(uploading, 10)), "Uploading… [████░░░░░░]  40%")

	processing := progress.Snapshot{State: progress.StateRunning, Phase: progress.PhaseProcessing, Progress: 100}
	got := stripANSI(FormatTask(processing, 10))
	assert.Contains(t, got, "Processing document…")
	assert.NotContains(t, got, "%")

	generating := progress.Snapshot{State: progress.StateRunning, Phase: progress.PhaseGenerating, Progress: 25, Slides: 3, TotalSlides: 15}
	assert.Contains(t, stripANSI(FormatTask(generating, 10)), "3/15 slides")

	done := progress.Snapshot{State: progress.StateComplete, Phase: progress.PhaseGenerating, Progress: 100, Slides: 15, TotalSlides: 15}
	assert.Equal(t, "✔ Generated 15 slides", stripANSI(FormatTask(done, 10)))
}
