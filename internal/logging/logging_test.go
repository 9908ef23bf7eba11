package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
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
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"Warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewJSON_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSON("warn", &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("station", "Depot").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var ev map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &ev))
	assert.Equal(t, "kept", ev["message"])
	assert.Equal(t, "Depot", ev["station"])
	assert.Equal(t, "warn", ev["level"])
	assert.Contains(t, ev, "time")
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)
	log.Debug().Str("kind", "refuel").Msg("dock begin")

	out := buf.String()
	assert.Contains(t, out, "dock begin")
	assert.Contains(t, out, "kind=")
	assert.Contains(t, out, "refuel")
}

func TestTee_WritesBothSinks(t *testing.T) {
	var console, file bytes.Buffer
	log := Tee("info", &console, &file)
	log.Info().Msg("hello")

	assert.Contains(t, console.String(), "hello")
	assert.Contains(t, file.String(), `"message":"hello"`)
}

func TestIsTerminal_NonFiles(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}

func TestAuto_PipesGetJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Auto("info", &buf)
	log.Info().Str("scenario", "still").Msg("starting")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	assert.Equal(t, "starting", ev["message"])
	assert.Equal(t, "still", ev["scenario"])
}

func TestTee_NonTerminalConsoleIsJSON(t *testing.T) {
	var console, file bytes.Buffer
	log := Tee("info", &console, &file)
	log.Info().Msg("hello")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(console.Bytes()), &ev))
	assert.Equal(t, "hello", ev["message"])
}
