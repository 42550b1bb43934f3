package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"orderdesk/internal/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{ServiceName: "orderdesk", Level: zerolog.DebugLevel, Output: &buf})

	l := logger.Component(log, "sequence")
	l.Info().Str("prefix", "ORD").Msg("order number issued")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "orderdesk", entry["service"])
	assert.Equal(t, "sequence", entry["component"])
	assert.Equal(t, "ORD", entry["prefix"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: zerolog.WarnLevel, Output: &buf})

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("nonsense"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
}

func TestNew_LeavesGlobalTimeFormat(t *testing.T) {
	previous := zerolog.TimeFieldFormat
	t.Cleanup(func() { zerolog.TimeFieldFormat = previous })
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger.New(logger.Options{Output: &bytes.Buffer{}})

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}
