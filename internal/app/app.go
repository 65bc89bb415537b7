package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"example.com/bnc-cli/internal/config"
)

// Loop is an interactive front end that runs until the user is done or the
// context is canceled. Both REPLs in internal/cli satisfy it.
type Loop interface {
	Run(ctx context.Context) error
}

// App ties config, logging and one interactive loop together.
type App struct {
	cfg  config.Config
	log  *slog.Logger
	loop Loop
}

func New(cfg config.Config, log *slog.Logger, loop Loop) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{cfg: cfg, log: log, loop: loop}
}

// Run drives the loop and watches for interruption. The loop observes ctx
// itself; the watcher only logs the reason the session ended.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return a.loop.Run(gctx)
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			a.log.Info("interrupted, shutting down")
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
