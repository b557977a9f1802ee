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
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("barulhento"))
}

func TestSetupWriter_ProdIsJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	SetupWriter(Config{Env: "prod", Level: "info"}, &buf)

	boot := Component("bootstrap")
	boot.Info().Msg("iniciado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bootstrap", entry["component"])
	assert.Equal(t, "iniciado", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetupWriter_LevelFilters(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	SetupWriter(Config{Env: "prod", Level: "error"}, &buf)

	l := Component("x")
	l.Info().Msg("ignorado")
	assert.Zero(t, buf.Len())
}
