package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"

	"github.com/riskibarqy/league-tracker/internal/app"
	"github.com/riskibarqy/league-tracker/internal/config"
	"github.com/riskibarqy/league-tracker/internal/usecase"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, `usage: transfer "<player name>" "<destination team>"`)
		os.Exit(2)
	}

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

	runErr := run(ctx, application, os.Args[1], os.Args[2])
	if runErr != nil {
		application.Logger.ErrorContext(ctx, "transfer failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = application.Close(shutdownCtx)

	if runErr != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.App, playerName, teamName string) error {
	ctx, span := otel.Tracer("league-tracker/cmd/transfer").Start(ctx, "cmd.transfer")
	defer span.End()

	result, err := application.Transfers.Transfer(ctx, usecase.TransferInput{
		PlayerName: playerName,
		TeamName:   teamName,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	if result.Outcome != usecase.TransferSucceeded {
		return nil
	}
	return application.Save(ctx)
}
