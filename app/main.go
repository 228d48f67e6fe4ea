package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/findabatherapy/citygen/app/builder"
	"github.com/findabatherapy/citygen/app/cfg"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting citygen", "version", appCfg.Version, "input", appCfg.InputPath, "output", appCfg.OutputPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := builder.NewBuilder(appCfg).Run(ctx)
	if err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}

	if err := builder.WriteSummary(os.Stdout, result.Dataset); err != nil {
		slog.Error("Failed to print summary", "error", err)
		os.Exit(1)
	}
}
