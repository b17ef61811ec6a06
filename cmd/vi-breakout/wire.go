//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/wire"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/systems"
)

func initializeApp(cfg *config.Config, screen tcell.Screen) (*App, func(), error) {
	wire.Build(
		provideLogger,
		provideTerminal,
		providePalette,
		provideRenderer,
		provideMouseAdapter,
		systems.NewBallSystem,
		provideGame,
		NewApp,
	)
	return nil, nil, nil
}
