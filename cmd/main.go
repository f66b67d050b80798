package main

import (
	"audio-lab/domain/event"
	"audio-lab/domain/history"
	"audio-lab/internal"
	"audio-lab/runtime"
	"audio-lab/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, logger and orchestrator, and returns instead of exiting
// so deferred cleanups always run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Components
	console := sink.NewConsoleSink(os.Stdout, config.Colours, config.HistoryTable)
	orchestrator := runtime.NewOrchestrator(log, event.NewQueue(), history.NewHistory(),
		console, config.NewPreset)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Demo
	if err := orchestrator.Run(ctx); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
