package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWritesJSONToBuffer(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Format: "auto", Output: &buf})

	logger.Info().Str("planet", "Tatooine").Msg("hello")
	logger.Debug().Msg("suppressed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "Tatooine", entry["planet"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "console", Output: &buf})

	logger.Warn().Msg("careful")

	assert.Contains(t, buf.String(), "careful")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
