package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/tender/internal/progress"
)

// Config holds runtime settings for the tender binary.
type Config struct {
	DBPath      string
	CatalogPath string // empty uses the embedded catalog
	LogFile     string // empty discards logs
	LogLevel    string
	HistoryFile string // command-bar history, empty keeps it in memory

	Upload     progress.UploadConfig
	Generation progress.GenerationConfig

	// SuggestThreshold is the match score at or above which a catalog
	// entry counts towards an analysis' suggested totals.
	SuggestThreshold float64
}

// Default returns a Config rooted at home.
func Default(home string) Config {
	return Config{
		DBPath:           filepath.Join(home, ".tender", "tender.db"),
		HistoryFile:      filepath.Join(home, ".tender", "history"),
		LogLevel:         "info",
		Upload:           progress.DefaultUploadConfig(),
		Generation:       progress.DefaultGenerationConfig(),
		SuggestThreshold: 0.8,
	}
}

// Load reads an optional .env file from the working directory, then
// applies TENDER_* environment overrides on top of the defaults. Invalid
// numeric values are ignored.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	cfg := Default(home)

	if v := os.Getenv("TENDER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TENDER_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("TENDER_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TENDER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("TENDER_HISTORY_FILE"); ok {
		cfg.HistoryFile = v
	}
	applyDurationEnv(&cfg.Upload.Interval, "TENDER_UPLOAD_STEP_MS")
	applyDurationEnv(&cfg.Upload.Processing, "TENDER_PROCESSING_MS")
	applyDurationEnv(&cfg.Generation.Interval, "TENDER_GENERATION_TICK_MS")
	if v := os.Getenv("TENDER_SUGGEST_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.SuggestThreshold = f
		}
	}
	return cfg, nil
}

func applyDurationEnv(dst *time.Duration, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = time.Duration(n) * time.Millisecond
}
