package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastUpload() *UploadTask {
	return NewUploadTask(UploadConfig{Step: 25, Interval: time.Millisecond, Processing: 2 * time.Millisecond})
}

func TestRun_CompletesUpload(t *testing.T) {
	var snaps []Snapshot
	err := Run(context.Background(), fastUpload(), func(s Snapshot) {
		snaps = append(snaps, s)
	})
	require.NoError(t, err)

	require.NotEmpty(t, snaps)
	assert.Equal(t, StateRunning, snaps[0].State)
	last := snaps[len(snaps)-1]
	assert.True(t, last.Done())
	assert.Equal(t, 100.0, last.Progress)
	for i := 1; i < len(snaps); i++ {
		assert.GreaterOrEqual(t, snaps[i].Progress, snaps[i-1].Progress)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	task := NewUploadTask(UploadConfig{Step: 10, Interval: time.Hour})

	err := Run(ctx, task, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateRunning, task.Snapshot().State)
}

func TestGo_StopReleasesGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	task := NewGenerationTask(GenerationConfig{Interval: time.Hour, MaxIncrement: 10}, 5, nil)
	h := Go(context.Background(), task, nil)
	h.Stop()

	select {
	case <-h.Done():
	default:
		t.Fatal("handle not done after Stop")
	}
	assert.ErrorIs(t, h.Wait(), context.Canceled)
}

func TestGo_WaitReturnsOnCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	ticks := 0
	h := Go(context.Background(), fastUpload(), func(Snapshot) {
		mu.Lock()
		ticks++
		mu.Unlock()
	})
	require.NoError(t, h.Wait())

	mu.Lock()
	defer mu.Unlock()
	// Start, four upload steps, processing.
	assert.Equal(t, 6, ticks)
}
