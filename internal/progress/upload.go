package progress

import "time"

// UploadConfig tunes the fixed-step upload simulation.
type UploadConfig struct {
	Step       float64
	Interval   time.Duration
	Processing time.Duration
}

func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		Step:       10,
		Interval:   200 * time.Millisecond,
		Processing: 2000 * time.Millisecond,
	}
}

// UploadTask rises by a fixed step per tick until 100, then holds in the
// processing phase for one longer delay before completing.
type UploadTask struct {
	cfg  UploadConfig
	snap Snapshot
}

func NewUploadTask(cfg UploadConfig) *UploadTask {
	if cfg.Step <= 0 {
		cfg.Step = DefaultUploadConfig().Step
	}
	return &UploadTask{cfg: cfg}
}

func (t *UploadTask) Start() time.Duration {
	t.snap = Snapshot{State: StateRunning, Phase: PhaseUploading}
	return t.cfg.Interval
}

func (t *UploadTask) Tick() (time.Duration, bool) {
	switch {
	case t.snap.State != StateRunning:
		return 0, t.snap.Done()
	case t.snap.Phase == PhaseUploading:
		t.snap.Progress = clamp100(t.snap.Progress + t.cfg.Step)
		if t.snap.Progress >= 100 {
			t.snap.Phase = PhaseProcessing
			return t.cfg.Processing, false
		}
		return t.cfg.Interval, false
	default:
		t.snap.State = StateComplete
		return 0, true
	}
}

func (t *UploadTask) Snapshot() Snapshot { return t.snap }
