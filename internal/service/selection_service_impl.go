package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/repository"
)

type selectionService struct {
	selections repository.SelectionRepo
	profiles   repository.ProfileRepo
	missions   repository.MissionRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewSelectionService(
	selections repository.SelectionRepo,
	profiles repository.ProfileRepo,
	missions repository.MissionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) SelectionService {
	return &selectionService{
		selections: selections,
		profiles:   profiles,
		missions:   missions,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *selectionService) Load(ctx context.Context, projectID string, kind domain.SelectionKind) (*domain.SelectionSet, error) {
	ids, ok, err := s.selections.Get(ctx, projectID, kind)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.NewSelectionSet(domain.DefaultSelection...), nil
	}
	return domain.NewSelectionSet(ids...), nil
}

// Toggle flips entityID in one transaction so that concurrent toggles on
// the same project each see the previous one's result.
func (s *selectionService) Toggle(ctx context.Context, projectID string, kind domain.SelectionKind, entityID string) (set *domain.SelectionSet, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "kind": string(kind), "entity_id": entityID}
	defer observe(ctx, s.observer, "toggle-selection", startedAt, fields, &err)

	if err = s.checkEntity(ctx, kind, entityID); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		txSelections := repository.NewSQLiteSelectionRepo(tx)
		ids, ok, err := txSelections.Get(ctx, projectID, kind)
		if err != nil {
			return err
		}
		if !ok {
			ids = domain.DefaultSelection
		}
		set = domain.NewSelectionSet(ids...)
		fields["selected"] = set.Toggle(entityID)
		return txSelections.Save(ctx, projectID, kind, set.IDs())
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *selectionService) Save(ctx context.Context, projectID string, kind domain.SelectionKind, set *domain.SelectionSet) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"project_id": projectID, "kind": string(kind), "count": set.Count()}
	defer observe(ctx, s.observer, "save-selection", startedAt, fields, &err)

	return s.save(ctx, projectID, kind, set)
}

func (s *selectionService) save(ctx context.Context, projectID string, kind domain.SelectionKind, set *domain.SelectionSet) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, projectID); err != nil {
			return err
		}
		return repository.NewSQLiteSelectionRepo(tx).Save(ctx, projectID, kind, set.IDs())
	})
}

func (s *selectionService) checkEntity(ctx context.Context, kind domain.SelectionKind, id string) error {
	var err error
	switch kind {
	case domain.SelectProfiles:
		_, err = s.profiles.GetByID(ctx, id)
	case domain.SelectMissions:
		_, err = s.missions.GetByID(ctx, id)
	default:
		return fmt.Errorf("unknown selection kind %q", kind)
	}
	return err
}
