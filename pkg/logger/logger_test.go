package logger

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
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter(&buf, "info"), "region")

	log.Debug().Msg("hidden")
	log.Info().Str("noc", "TGA").Msg("region created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "region", entry["component"])
	assert.Equal(t, "TGA", entry["noc"])
	assert.Equal(t, "region created", entry["message"])
	assert.Contains(t, entry, "time")
}
