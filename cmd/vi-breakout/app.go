package main

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/input"
	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/terminal"
)

// App runs one game against one terminal until quit or cancellation
type App struct {
	term     *terminal.Terminal
	game     *engine.Game
	mouse    *input.MouseAdapter
	renderer *render.TerminalRenderer
	logger   *zap.Logger
}

func NewApp(term *terminal.Terminal, game *engine.Game, mouse *input.MouseAdapter,
	renderer *render.TerminalRenderer, logger *zap.Logger) *App {
	return &App{term: term, game: game, mouse: mouse, renderer: renderer, logger: logger}
}

// Run blocks until a quit key, ctx cancellation or a poller error.
// The game is disposed before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Input must be attached before the poller can deliver the first event
	a.game.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.game.Run(gctx)
	})

	g.Go(func() error {
		// Quit key ends the poller, which ends the game
		defer cancel()
		return a.term.PollEvents(gctx, a.mouse.HandleEvent)
	})

	err := g.Wait()

	forwarded, dropped := a.mouse.Counts()
	frames := a.renderer.Stats()
	a.logger.Info("session ended",
		zap.Uint64("pointer_forwarded", forwarded),
		zap.Uint64("pointer_dropped", dropped),
		zap.Uint64("frames_drawn", frames.Drawn),
		zap.Uint64("frames_skipped", frames.Skipped),
		zap.Error(err),
	)
	return err
}

// Game exposes the running game
func (a *App) Game() *engine.Game {
	return a.game
}
