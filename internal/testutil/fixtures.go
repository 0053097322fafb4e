package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tender/internal/domain"
)

var testShortIDCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithClient(client string) ProjectOption {
	return func(p *domain.Project) {
		p.Client = client
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProgress(v float64) ProjectOption {
	return func(p *domain.Project) {
		p.Progress = v
	}
}

func WithShortID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ShortID = id
	}
}

func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Title:     title,
		Client:    "Test Client",
		Status:    domain.ProjectDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.ShortID == "" {
		p.ShortID = fmt.Sprintf("%s%02d", domain.ShortIDPrefix(p.Client), testShortIDCounter.Add(1))
	}
	return p
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithRole(role string) ProfileOption {
	return func(p *domain.Profile) {
		p.Role = role
	}
}

func WithExpertise(tags ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Expertise = tags
	}
}

func WithProfileScore(s float64) ProfileOption {
	return func(p *domain.Profile) {
		p.MatchScore = s
	}
}

func WithExperience(years int) ProfileOption {
	return func(p *domain.Profile) {
		p.Experience = years
	}
}

func NewTestProfile(id, name string, opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		ID:           id,
		Name:         name,
		Role:         "Consultant",
		Expertise:    []string{},
		Experience:   5,
		MatchScore:   0.5,
		Availability: "Immediate",
		Languages:    []string{"English"},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mission options
type MissionOption func(*domain.Mission)

func WithTechnologies(tech ...string) MissionOption {
	return func(m *domain.Mission) {
		m.Technologies = tech
	}
}

func WithMissionScore(s float64) MissionOption {
	return func(m *domain.Mission) {
		m.MatchScore = s
	}
}

func NewTestMission(id, title string, opts ...MissionOption) *domain.Mission {
	m := &domain.Mission{
		ID:           id,
		Title:        title,
		Client:       "Reference Client",
		Year:         "2022",
		Duration:     "6 months",
		Technologies: []string{},
		MatchScore:   0.5,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
