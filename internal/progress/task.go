// Package progress implements the simulated long-running tasks shown while
// an RFP uploads and a deck generates. Tasks are plain state machines
// advanced by Tick; the TUI schedules ticks with tea.Tick and the CLI
// drives them with a Runner.
package progress

import "time"

type State int

const (
	StateIdle State = iota
	StateRunning
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "idle"
	}
}

// Phase distinguishes the upload bar from the processing spinner.
type Phase string

const (
	PhaseUploading  Phase = "uploading"
	PhaseProcessing Phase = "processing"
	PhaseGenerating Phase = "generating"
)

// Snapshot is a copy of a task's observable state.
type Snapshot struct {
	State       State
	Phase       Phase
	Progress    float64 // [0,100]
	Slides      int     // generation only
	TotalSlides int
}

func (s Snapshot) Done() bool { return s.State == StateComplete }

// Task is a simulated job advanced one tick at a time. Start moves it to
// running and returns the delay before the first Tick. Tick returns the
// delay before the next one, or done once the task has completed.
type Task interface {
	Start() time.Duration
	Tick() (next time.Duration, done bool)
	Snapshot() Snapshot
}

func clamp100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
