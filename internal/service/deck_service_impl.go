package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/repository"
)

type deckService struct {
	decks      repository.DeckRepo
	projects   repository.ProjectRepo
	analyses   repository.AnalysisRepo
	profiles   repository.ProfileRepo
	missions   repository.MissionRepo
	selections SelectionService
	observer   UseCaseObserver
	now        func() time.Time
}

// DeckDeps groups the repositories a DeckService reads from.
type DeckDeps struct {
	Decks    repository.DeckRepo
	Projects repository.ProjectRepo
	Analyses repository.AnalysisRepo
	Profiles repository.ProfileRepo
	Missions repository.MissionRepo
}

func NewDeckService(deps DeckDeps, selections SelectionService, observers ...UseCaseObserver) DeckService {
	return &deckService{
		decks:      deps.Decks,
		projects:   deps.Projects,
		analyses:   deps.Analyses,
		profiles:   deps.Profiles,
		missions:   deps.Missions,
		selections: selections,
		observer:   useCaseObserverOrNoop(observers),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *deckService) Config(ctx context.Context, projectID string) (*domain.DeckConfig, error) {
	cfg, err := s.decks.Get(ctx, projectID)
	if errors.Is(err, repository.ErrNotFound) {
		def := domain.DefaultDeckConfig(projectID)
		return &def, nil
	}
	return cfg, err
}

func (s *deckService) SaveConfig(ctx context.Context, cfg *domain.DeckConfig) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"project_id": cfg.ProjectID,
		"template":   string(cfg.Template),
		"format":     string(cfg.Format),
		"language":   cfg.Language,
		"excluded":   len(cfg.Excluded),
	}
	defer observe(ctx, s.observer, "save-deck-config", startedAt, fields, &err)

	if err = cfg.Validate(); err != nil {
		return err
	}
	if _, err = s.projects.GetByID(ctx, cfg.ProjectID); err != nil {
		return err
	}
	return s.decks.Upsert(ctx, cfg)
}

// Outline loads the project, its analysis, its deck settings and both
// selections concurrently, then lays out the slides.
func (s *deckService) Outline(ctx context.Context, projectID string) ([]domain.Slide, error) {
	in, err := s.outlineInput(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return domain.BuildOutline(in), nil
}

func (s *deckService) outlineInput(ctx context.Context, projectID string) (domain.OutlineInput, error) {
	var in domain.OutlineInput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.projects.GetByID(gctx, projectID)
		in.Project = p
		return err
	})
	g.Go(func() error {
		a, err := s.analyses.GetByProject(gctx, projectID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		in.Analysis = a
		return err
	})
	g.Go(func() error {
		cfg, err := s.Config(gctx, projectID)
		if err != nil {
			return err
		}
		in.Config = *cfg
		return nil
	})
	g.Go(func() error {
		set, err := s.selections.Load(gctx, projectID, domain.SelectProfiles)
		if err != nil {
			return err
		}
		in.Profiles, err = s.selectedProfiles(gctx, set.IDs())
		return err
	})
	g.Go(func() error {
		set, err := s.selections.Load(gctx, projectID, domain.SelectMissions)
		if err != nil {
			return err
		}
		in.Missions, err = s.selectedMissions(gctx, set.IDs())
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.OutlineInput{}, fmt.Errorf("loading deck outline: %w", err)
	}
	return in, nil
}

// selectedProfiles resolves ids in selection order. IDs no longer in the
// catalog are skipped.
func (s *deckService) selectedProfiles(ctx context.Context, ids []string) ([]domain.Profile, error) {
	out := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		p, err := s.profiles.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *deckService) selectedMissions(ctx context.Context, ids []string) ([]domain.Mission, error) {
	out := make([]domain.Mission, 0, len(ids))
	for _, id := range ids {
		m, err := s.missions.GetByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

func (s *deckService) RecordGeneration(ctx context.Context, projectID string, slideCount int) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "slides": slideCount}
	defer observe(ctx, s.observer, "record-generation", startedAt, fields, &err)

	var cfg *domain.DeckConfig
	if cfg, err = s.Config(ctx, projectID); err != nil {
		return err
	}
	if _, err = s.projects.GetByID(ctx, projectID); err != nil {
		return err
	}
	at := s.now().Truncate(time.Second)
	cfg.GeneratedAt = &at
	cfg.SlideCount = slideCount
	return s.decks.Upsert(ctx, cfg)
}

// ExportedDeck is the document written by Export.
type ExportedDeck struct {
	Project    ExportedProject `yaml:"project" json:"project"`
	Template   string          `yaml:"template" json:"template"`
	Format     string          `yaml:"format" json:"format"`
	Language   string          `yaml:"language" json:"language"`
	SlideCount int             `yaml:"slide_count" json:"slide_count"`
	Slides     []domain.Slide  `yaml:"slides" json:"slides"`
}

type ExportedProject struct {
	ShortID string `yaml:"short_id" json:"short_id"`
	Title   string `yaml:"title" json:"title"`
	Client  string `yaml:"client" json:"client"`
}

func (s *deckService) Export(ctx context.Context, projectID string, format ExportFormat, w io.Writer) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "format": string(format)}
	defer observe(ctx, s.observer, "export-deck", startedAt, fields, &err)

	var in domain.OutlineInput
	if in, err = s.outlineInput(ctx, projectID); err != nil {
		return err
	}
	slides := domain.BuildOutline(in)
	fields["slides"] = len(slides)

	doc := ExportedDeck{
		Project: ExportedProject{
			ShortID: in.Project.ShortID,
			Title:   in.Project.Title,
			Client:  in.Project.Client,
		},
		Template:   string(in.Config.Template),
		Format:     string(in.Config.Format),
		Language:   in.Config.Language,
		SlideCount: len(slides),
		Slides:     slides,
	}

	switch format {
	case ExportYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case ExportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		err = fmt.Errorf("unknown export format %q (use yaml or json)", format)
		return err
	}
}
