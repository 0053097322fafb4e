package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand cycles through vals. Each generation tick draws twice:
// first the increment, then the slide roll.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestUploadTask_FixedSteps(t *testing.T) {
	task := NewUploadTask(DefaultUploadConfig())
	assert.Equal(t, StateIdle, task.Snapshot().State)

	assert.Equal(t, 200*time.Millisecond, task.Start())
	assert.Equal(t, StateRunning, task.Snapshot().State)

	for i := 1; i <= 9; i++ {
		next, done := task.Tick()
		require.False(t, done)
		assert.Equal(t, 200*time.Millisecond, next)
		assert.Equal(t, float64(i*10), task.Snapshot().Progress)
	}

	next, done := task.Tick()
	require.False(t, done)
	assert.Equal(t, 2000*time.Millisecond, next)
	snap := task.Snapshot()
	assert.Equal(t, 100.0, snap.Progress)
	assert.Equal(t, PhaseProcessing, snap.Phase)
	assert.False(t, snap.Done(), "completion waits for processing")

	_, done = task.Tick()
	assert.True(t, done)
	assert.Equal(t, StateComplete, task.Snapshot().State)
	assert.Equal(t, 100.0, task.Snapshot().Progress)

	_, done = task.Tick()
	assert.True(t, done, "complete is terminal")
}

func TestUploadTask_ClampsUnevenStep(t *testing.T) {
	task := NewUploadTask(UploadConfig{Step: 30})
	task.Start()
	for range 3 {
		task.Tick()
	}
	assert.Equal(t, 90.0, task.Snapshot().Progress)
	task.Tick()
	assert.Equal(t, 100.0, task.Snapshot().Progress)
}

func TestUploadTask_TickBeforeStartIsNoop(t *testing.T) {
	task := NewUploadTask(DefaultUploadConfig())
	_, done := task.Tick()
	assert.False(t, done)
	assert.Equal(t, 0.0, task.Snapshot().Progress)
}

func TestGenerationTask_ProgressMonotonicAndClamped(t *testing.T) {
	rng := &scriptedRand{vals: []float64{0.5, 0.9}}
	task := NewGenerationTask(DefaultGenerationConfig(), 15, rng)
	assert.Equal(t, 300*time.Millisecond, task.Start())

	prev := 0.0
	ticks := 0
	for {
		_, done := task.Tick()
		ticks++
		p := task.Snapshot().Progress
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 100.0)
		prev = p
		if done {
			break
		}
		require.Less(t, ticks, 100)
	}
	// +5 per tick and the slide roll never hits.
	snap := task.Snapshot()
	assert.Equal(t, 100.0, snap.Progress)
	assert.True(t, snap.Done())
	assert.Equal(t, 15, snap.Slides, "slides snap to total on completion")
}

func TestGenerationTask_OvershootClampsTo100(t *testing.T) {
	// +9.7 per tick: 97 after ten ticks, 106.7 unclamped on the eleventh.
	rng := &scriptedRand{vals: []float64{0.97}}
	task := NewGenerationTask(DefaultGenerationConfig(), 15, rng)
	task.Start()

	for i := 1; i <= 10; i++ {
		_, done := task.Tick()
		require.False(t, done, "tick %d", i)
	}
	assert.InDelta(t, 97.0, task.Snapshot().Progress, 1e-9)

	next, done := task.Tick()
	assert.True(t, done)
	assert.Zero(t, next)
	snap := task.Snapshot()
	assert.Equal(t, 100.0, snap.Progress)
	assert.Equal(t, StateComplete, snap.State)
	assert.Equal(t, 15, snap.Slides)

	_, done = task.Tick()
	assert.True(t, done)
	assert.Equal(t, 100.0, task.Snapshot().Progress, "ticks after completion leave progress alone")
}

func TestGenerationTask_SlideCounterIndependent(t *testing.T) {
	// Progress draw 0.1 (+1), slide draw 0.2 (< 0.3, so +1 slide).
	rng := &scriptedRand{vals: []float64{0.1, 0.2}}
	task := NewGenerationTask(DefaultGenerationConfig(), 3, rng)
	task.Start()

	for range 5 {
		task.Tick()
	}
	snap := task.Snapshot()
	assert.InDelta(t, 5.0, snap.Progress, 1e-9)
	assert.Equal(t, 3, snap.Slides, "capped at total")
	assert.False(t, snap.Done())
}

func TestGenerationTask_NoSlideAboveProbability(t *testing.T) {
	rng := &scriptedRand{vals: []float64{0.5, 0.3}}
	task := NewGenerationTask(DefaultGenerationConfig(), 10, rng)
	task.Start()
	task.Tick()
	assert.Equal(t, 0, task.Snapshot().Slides)
	assert.Equal(t, 5.0, task.Snapshot().Progress)
}

func TestGenerationTask_StartResetsKeepingTotal(t *testing.T) {
	task := NewGenerationTask(DefaultGenerationConfig(), 7, &scriptedRand{vals: []float64{0.99}})
	task.Start()
	task.Tick()
	task.Start()
	snap := task.Snapshot()
	assert.Equal(t, 0.0, snap.Progress)
	assert.Equal(t, 7, snap.TotalSlides)
}
