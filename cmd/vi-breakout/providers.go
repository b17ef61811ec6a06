package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/core"
	"github.com/lixenwraith/vi-breakout/engine"
	"github.com/lixenwraith/vi-breakout/input"
	"github.com/lixenwraith/vi-breakout/logging"
	"github.com/lixenwraith/vi-breakout/render"
	"github.com/lixenwraith/vi-breakout/systems"
	"github.com/lixenwraith/vi-breakout/terminal"
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, closeFn, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = closeFn() }, nil
}

// provideTerminal initializes the screen and registers it for crash cleanup
func provideTerminal(screen tcell.Screen) (*terminal.Terminal, func(), error) {
	term := terminal.New(screen)
	if err := term.Init(); err != nil {
		return nil, nil, err
	}
	core.SetCrashCleanup(term.Fini)
	return term, term.Fini, nil
}

func providePalette(cfg *config.Config) (render.Palette, error) {
	return render.ParsePalette(cfg.Render.BallColor, cfg.Render.PaddleColor, cfg.Render.BlockColor)
}

// provideRenderer depends on the terminal so the screen is initialized first
func provideRenderer(term *terminal.Terminal, palette render.Palette) *render.TerminalRenderer {
	return render.NewTerminalRenderer(term.Screen(), palette)
}

func provideMouseAdapter(term *terminal.Terminal, renderer *render.TerminalRenderer) *input.MouseAdapter {
	return input.NewMouseAdapter(term.Screen(), renderer.Invalidate)
}

func provideGame(cfg *config.Config, resolver *systems.BallSystem, renderer *render.TerminalRenderer,
	mouse *input.MouseAdapter, logger *zap.Logger) *engine.Game {
	return engine.NewGame(engine.GameOptions{
		TickInterval: cfg.TickInterval,
		Resolver:     resolver,
		Renderer:     renderer,
		Input:        mouse,
		Logger:       logger,
	})
}
