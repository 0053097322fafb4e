package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

type Project struct {
	ID        string
	ShortID   string
	Title     string
	Client    string
	Status    ProjectStatus
	Progress  float64 // fraction in [0,1]
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateShortID checks that ShortID matches the required format:
// 3-6 uppercase letters followed by 2-4 digits (e.g. TCS01, BANK0234).
func (p *Project) ValidateShortID() error {
	if p.ShortID == "" {
		return fmt.Errorf("short ID is required")
	}
	if !shortIDPattern.MatchString(p.ShortID) {
		return fmt.Errorf("short ID %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. TCS01)", p.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortID != "" {
		return p.ShortID
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// ProgressPct returns Progress as a whole percentage.
func (p *Project) ProgressPct() int {
	return int(p.Progress*100 + 0.5)
}

// LooksComplete reports whether the project should read as complete.
// A progress of 1 counts even if Status was never moved to completed.
func (p *Project) LooksComplete() bool {
	return p.Status == ProjectCompleted || p.Progress >= 1
}

// ShortIDPrefix derives the letter part of a short ID from a client name:
// the first three ASCII letters, upper-cased and padded with X.
func ShortIDPrefix(client string) string {
	upper := strings.ToUpper(client)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return string(letters)
}
