package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/smileynet/contacts/internal/config"
)

// newLogger builds the diagnostic logger. The screen owns the terminal, so
// output goes to cfg.File or is discarded when no file is set.
func newLogger(cfg config.Log) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: opening %s: %w", cfg.File, err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}
