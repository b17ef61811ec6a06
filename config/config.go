// Package config loads runtime settings from defaults, an optional YAML file,
// a .env file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-breakout/constants"
	"github.com/lixenwraith/vi-breakout/terminal"
)

// Environment overrides
const (
	EnvTickInterval = "BREAKOUT_TICK_INTERVAL"
	EnvLogLevel     = "BREAKOUT_LOG_LEVEL"
	EnvLogDir       = "BREAKOUT_LOG_DIR"
	EnvDebug        = "BREAKOUT_DEBUG"
)

type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Render       RenderConfig  `yaml:"render"`
	Log          LogConfig     `yaml:"log"`
}

type RenderConfig struct {
	Color       string `yaml:"color"` // auto, 256, truecolor
	BallColor   string `yaml:"ball_color"`
	PaddleColor string `yaml:"paddle_color"`
	BlockColor  string `yaml:"block_color"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Dir     string `yaml:"dir"`
	MaxSize int64  `yaml:"max_size"` // bytes before rotation
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TickInterval: constants.TickInterval,
		Render: RenderConfig{
			Color:       "auto",
			BallColor:   constants.DefaultBallColor,
			PaddleColor: constants.DefaultPaddleColor,
			BlockColor:  constants.DefaultBlockColor,
		},
		Log: LogConfig{
			Level:   "info",
			Dir:     constants.LogDirName,
			MaxSize: constants.MaxLogSize,
		},
	}
}

// Load builds the effective config. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Missing .env is fine
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg. Unknown keys are rejected.
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays environment values, lookup is os.LookupEnv outside tests
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvTickInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		c.TickInterval = d
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}

	if v, ok := lookup(EnvLogDir); ok && v != "" {
		c.Log.Dir = v
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		if debug {
			c.EnableDebug()
		}
	}
	return nil
}

// EnableDebug turns on file logging at debug level
func (c *Config) EnableDebug() {
	c.Log.Enabled = true
	c.Log.Level = "debug"
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval)
	}

	if _, err := terminal.ParseColorMode(c.Render.Color); err != nil {
		return fmt.Errorf("render.color: %w", err)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Log.MaxSize <= 0 {
		return fmt.Errorf("log.max_size must be positive, got %d", c.Log.MaxSize)
	}

	if c.Log.Enabled && c.Log.Dir == "" {
		return errors.New("log.dir is required when logging is enabled")
	}
	return nil
}
