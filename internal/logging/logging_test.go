package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogsJSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	logger := New("prod", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "cache").Msg("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ready", entry["message"])
	assert.Equal(t, "cache", entry["component"])
	assert.Equal(t, "prod", entry["env"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogsConsoleLocally(t *testing.T) {
	var buf bytes.Buffer
	logger := New("local", &buf)

	logger.Debug().Msg("visible")

	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "visible")
	assert.False(t, json.Valid(buf.Bytes()))
}
