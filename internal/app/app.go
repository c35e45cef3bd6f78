package app

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/league-tracker/internal/config"
	"github.com/riskibarqy/league-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-tracker/internal/infrastructure/storage"
	"github.com/riskibarqy/league-tracker/internal/league"
	"github.com/riskibarqy/league-tracker/internal/observability"
	"github.com/riskibarqy/league-tracker/internal/platform/logging"
	"github.com/riskibarqy/league-tracker/internal/usecase"
)

// App wires the league tracker with its snapshot store and services.
type App struct {
	Logger    *logging.Logger
	Tracker   *league.Tracker
	Snapshots *storage.SnapshotFile
	Transfers *usecase.TransferService
	Matches   *usecase.MatchService

	shutdownTracing func(context.Context) error
}

// New builds the application. The league is restored from the snapshot file
// when one exists; otherwise it is seeded from TRACKER_SEED_PATH or, when no
// seed path is configured, from the built-in demo league.
func New(ctx context.Context, cfg config.Config, clock clockwork.Clock) (*App, error) {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout).
		With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, errors.Wrap(err, "init tracing")
	}

	snapshots := storage.NewSnapshotFile(cfg.SnapshotPath, logger)
	tracker, err := loadTracker(ctx, cfg, snapshots, logger)
	if err != nil {
		_ = shutdownTracing(ctx)
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		Logger:          logger,
		Tracker:         tracker,
		Snapshots:       snapshots,
		Transfers:       usecase.NewTransferService(tracker, clock, cfg.AuditLocation, logger),
		Matches:         usecase.NewMatchService(tracker, logger),
		shutdownTracing: shutdownTracing,
	}, nil
}

func loadTracker(ctx context.Context, cfg config.Config, snapshots *storage.SnapshotFile, logger *logging.Logger) (*league.Tracker, error) {
	snap, ok, err := snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		tracker, err := league.Restore(snap, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "restore snapshot %s", snapshots.Path())
		}
		return tracker, nil
	}

	if cfg.SeedPath == "" {
		logger.InfoContext(ctx, "seeding demo league")
		return memory.NewTracker(logger)
	}

	seed, err := storage.LoadSeed(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	tracker := league.New(logger)
	if err := seed.Apply(tracker); err != nil {
		return nil, errors.Wrapf(err, "apply seed %s", cfg.SeedPath)
	}
	logger.InfoContext(ctx, "league seeded", "path", cfg.SeedPath)
	return tracker, nil
}

// Save refreshes finances and writes the league to the snapshot file.
func (a *App) Save(ctx context.Context) error {
	if err := a.Tracker.RefreshFinance(); err != nil {
		return errors.Wrap(err, "refresh finances")
	}
	return a.Snapshots.Save(ctx, a.Tracker.Snapshot())
}

// Close flushes pending spans and log lines.
func (a *App) Close(ctx context.Context) error {
	err := a.shutdownTracing(ctx)
	if syncErr := a.Logger.Sync(); err == nil {
		err = syncErr
	}
	return err
}
