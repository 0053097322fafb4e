package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/tender/internal/catalog"
	"github.com/alexanderramin/tender/internal/cli"
	"github.com/alexanderramin/tender/internal/config"
	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/logging"
	"github.com/alexanderramin/tender/internal/repository"
	"github.com/alexanderramin/tender/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	stageRepo := repository.NewSQLiteStageRepo(database)
	documentRepo := repository.NewSQLiteDocumentRepo(database)
	analysisRepo := repository.NewSQLiteAnalysisRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	missionRepo := repository.NewSQLiteMissionRepo(database)
	selectionRepo := repository.NewSQLiteSelectionRepo(database)
	deckRepo := repository.NewSQLiteDeckRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	// Wire services
	catalogSvc := service.NewCatalogService(cat, profileRepo, missionRepo, uow, observer)
	selectionSvc := service.NewSelectionService(selectionRepo, profileRepo, missionRepo, uow, observer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := catalogSvc.Sync(ctx); err != nil {
		return fmt.Errorf("syncing catalog: %w", err)
	}
	logger.Debug("catalog synced",
		zap.Int("profiles", len(cat.Profiles)),
		zap.Int("missions", len(cat.Missions)),
	)

	app := &cli.App{
		Projects: service.NewProjectService(service.ProjectDeps{
			Projects:  projectRepo,
			Stages:    stageRepo,
			Documents: documentRepo,
			Analyses:  analysisRepo,
		}, cat, cfg.SuggestThreshold, uow, observer),
		Catalog:    catalogSvc,
		Selections: selectionSvc,
		Decks: service.NewDeckService(service.DeckDeps{
			Decks:    deckRepo,
			Projects: projectRepo,
			Analyses: analysisRepo,
			Profiles: profileRepo,
			Missions: missionRepo,
		}, selectionSvc, observer),

		Upload:      cfg.Upload,
		Generation:  cfg.Generation,
		HistoryFile: cfg.HistoryFile,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
