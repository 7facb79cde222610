package config

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger at the configured level.
func NewLogger(cfg Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
