package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tender/internal/catalog"
	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/matching"
	"github.com/alexanderramin/tender/internal/repository"
)

type catalogService struct {
	catalog  *catalog.Catalog
	profiles repository.ProfileRepo
	missions repository.MissionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCatalogService(
	cat *catalog.Catalog,
	profiles repository.ProfileRepo,
	missions repository.MissionRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		catalog:  cat,
		profiles: profiles,
		missions: missions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Catalog() *catalog.Catalog { return s.catalog }

func (s *catalogService) Sync(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"profiles": len(s.catalog.Profiles),
		"missions": len(s.catalog.Missions),
	}
	defer observe(ctx, s.observer, "sync-catalog", startedAt, fields, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txMissions := repository.NewSQLiteMissionRepo(tx)
		for i := range s.catalog.Profiles {
			if err := txProfiles.Upsert(ctx, &s.catalog.Profiles[i]); err != nil {
				return fmt.Errorf("syncing profiles: %w", err)
			}
		}
		for i := range s.catalog.Missions {
			if err := txMissions.Upsert(ctx, &s.catalog.Missions[i]); err != nil {
				return fmt.Errorf("syncing missions: %w", err)
			}
		}
		return nil
	})
}

func (s *catalogService) Profiles(ctx context.Context, query string, filter matching.ProfileFilter) ([]domain.Profile, error) {
	all, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	return matching.Rank(matching.FilterProfiles(query, filter, all)), nil
}

func (s *catalogService) Missions(ctx context.Context, query string) ([]domain.Mission, error) {
	all, err := s.missions.List(ctx)
	if err != nil {
		return nil, err
	}
	return matching.FilterRank(query, all), nil
}

func (s *catalogService) Profile(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

func (s *catalogService) Mission(ctx context.Context, id string) (*domain.Mission, error) {
	return s.missions.GetByID(ctx, id)
}
