package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubkiosk/internal/config"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kiosk.log")

	closer, err := Setup(config.LoggerConfig{Level: "debug", File: path})
	require.NoError(t, err)

	log.Info().Str("event", "test-entry").Msg("hello")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event":"test-entry"`)
}

func TestSetupAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.log")

	closer, err := Setup(config.LoggerConfig{Level: "info", File: path})
	require.NoError(t, err)
	log.Info().Msg("first run")
	require.NoError(t, closer())

	closer, err = Setup(config.LoggerConfig{Level: "info", File: path})
	require.NoError(t, err)
	log.Info().Msg("second run")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestSetupBadLevelFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiosk.log")

	closer, err := Setup(config.LoggerConfig{Level: "shouting", File: path})
	require.NoError(t, err)
	require.NoError(t, closer())
}
