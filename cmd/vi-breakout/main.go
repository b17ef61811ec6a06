package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/core"
	"github.com/lixenwraith/vi-breakout/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Enable file logging at debug level")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	// Panic Recovery: registered terminal cleanup runs before the report
	defer core.Recover()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-breakout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	colorMode, err := terminal.ParseColorMode(cfg.Render.Color)
	if err != nil {
		return err
	}
	screen, err := terminal.NewScreen(colorMode)
	if err != nil {
		return err
	}

	app, cleanup, err := initializeApp(cfg, screen)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

// loadConfig applies command-line flags on top of file and environment values
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if *debugFlag {
		cfg.EnableDebug()
	}
	if *colorFlag != "" {
		cfg.Render.Color = *colorFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
