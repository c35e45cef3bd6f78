package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"

	"github.com/riskibarqy/league-tracker/internal/app"
	"github.com/riskibarqy/league-tracker/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, clockwork.NewRealClock())
	if err != nil {
		panic(err)
	}

	code := run(ctx, application)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = application.Close(shutdownCtx)

	if code != 0 {
		stop()
		os.Exit(code)
	}
}

func run(ctx context.Context, application *app.App) int {
	ctx, span := otel.Tracer("league-tracker/cmd/seed").Start(ctx, "cmd.seed")
	defer span.End()

	logger := application.Logger
	if err := application.Save(ctx); err != nil {
		logger.ErrorContext(ctx, "save snapshot failed", "error", err)
		return 1
	}

	tracker := application.Tracker
	logger.InfoContext(ctx, "league snapshot written",
		"path", application.Snapshots.Path(),
		"teams", tracker.GetAllTeams().Len(),
		"players", tracker.GetAllPlayers().Len(),
		"matches", tracker.GetAllMatches().Len(),
		"finances", tracker.GetAllFinances().Len(),
	)
	return 0
}
