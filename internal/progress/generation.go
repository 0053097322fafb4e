package progress

import (
	"math/rand/v2"
	"time"
)

// RandSource yields uniform values in [0,1).
type RandSource interface {
	Float64() float64
}

// GenerationConfig tunes the randomized generation simulation.
type GenerationConfig struct {
	Interval         time.Duration
	MaxIncrement     float64
	SlideProbability float64
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Interval:         300 * time.Millisecond,
		MaxIncrement:     10,
		SlideProbability: 0.3,
	}
}

// GenerationTask adds a random increment each tick. Its slide counter
// advances independently of the percentage and snaps to the total when
// the task completes.
type GenerationTask struct {
	cfg  GenerationConfig
	rng  RandSource
	snap Snapshot
}

// NewGenerationTask builds a task for a deck of totalSlides. A nil rng
// uses a time-seeded source.
func NewGenerationTask(cfg GenerationConfig, totalSlides int, rng RandSource) *GenerationTask {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x7e4d))
	}
	if totalSlides < 0 {
		totalSlides = 0
	}
	return &GenerationTask{cfg: cfg, rng: rng, snap: Snapshot{TotalSlides: totalSlides}}
}

func (t *GenerationTask) Start() time.Duration {
	t.snap = Snapshot{State: StateRunning, Phase: PhaseGenerating, TotalSlides: t.snap.TotalSlides}
	return t.cfg.Interval
}

func (t *GenerationTask) Tick() (time.Duration, bool) {
	if t.snap.State != StateRunning {
		return 0, t.snap.Done()
	}
	t.snap.Progress = clamp100(t.snap.Progress + t.rng.Float64()*t.cfg.MaxIncrement)
	if t.rng.Float64() < t.cfg.SlideProbability && t.snap.Slides < t.snap.TotalSlides {
		t.snap.Slides++
	}
	if t.snap.Progress >= 100 {
		t.snap.Slides = t.snap.TotalSlides
		t.snap.State = StateComplete
		return 0, true
	}
	return t.cfg.Interval, false
}

func (t *GenerationTask) Snapshot() Snapshot { return t.snap }
