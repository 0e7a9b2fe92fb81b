// Package logging configures the global zerolog logger. The kiosk draws on
// the terminal, so all logging goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"clubkiosk/internal/config"
)

// Setup opens (or creates) the log file and installs it as the global
// zerolog output. The returned closer flushes the file on shutdown.
func Setup(conf config.LoggerConfig) (func() error, error) {
	path := conf.File
	if path == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := zerolog.ParseLevel(conf.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	return f.Close, nil
}
