package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)
	log.Info("run started", "algorithm", "genetic")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run started", entry["msg"])
	assert.Equal(t, "genetic", entry["algorithm"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("not-a-level"))
	assert.NotEqual(t, parseLevel("debug"), parseLevel("error"))
}

func TestDiscardLogsNothing(t *testing.T) {
	// Must not panic and must accept any level.
	log := Discard()
	log.Debug("x")
	log.Error("y")
}
