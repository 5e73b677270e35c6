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
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: " DEBUG ", want: zerolog.DebugLevel},
		{in: "warning", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBuildJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Build(Config{Level: "info", Component: "report"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("pcb", "demo.kicad_pcb").Msg("loaded board")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded board", entry["message"])
	assert.Equal(t, "report", entry["component"])
	assert.Equal(t, "demo.kicad_pcb", entry["pcb"])
	assert.Contains(t, entry, "time")
}

func TestBuildConsole(t *testing.T) {
	var buf bytes.Buffer
	log := Build(Config{Level: "debug", Console: true}, &buf)
	log.Debug().Msg("resolving pads")

	assert.Contains(t, buf.String(), "resolving pads")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestBuildUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := Build(Config{Level: "chatty"}, &buf)
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())
	log.Info().Msg("shown")
	assert.NotEmpty(t, buf.String())
}
