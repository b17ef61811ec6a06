// Package logging builds the zap logger. Stdout and stderr belong to the
// terminal UI, so output goes to a file or nowhere.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-breakout/config"
	"github.com/lixenwraith/vi-breakout/constants"
)

// New returns a logger for cfg and a func that flushes and closes its file.
// Disabled logging yields a no-op logger.
func New(cfg config.LogConfig) (*zap.Logger, func() error, error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, constants.LogFileName)
	if err := rotate(path, cfg.MaxSize, time.Now()); err != nil {
		return nil, nil, fmt.Errorf("rotate log: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(f),
		zap.NewAtomicLevelAt(level),
	)
	logger := zap.New(core)

	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

// rotate renames path to a timestamped sibling when it exceeds maxSize
func rotate(path string, maxSize int64, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	return os.Rename(path, fmt.Sprintf("%s.%s%s", base, now.Format("20060102-150405"), ext))
}
