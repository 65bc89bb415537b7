package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"example.com/bnc-cli/internal/app"
	"example.com/bnc-cli/internal/cli"
	"example.com/bnc-cli/internal/config"
	"example.com/bnc-cli/internal/game"
)

func main() {
	_ = godotenv.Load() // best effort, dev convenience

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := game.NewSeededGenerator(cfg.Game.Seed)
	repl := cli.NewGameREPL(gen, log, os.Stdin, os.Stdout)

	if err := app.New(cfg, log, repl).Run(ctx); err != nil {
		log.Error("session failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(cfg.Log.Level)}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
