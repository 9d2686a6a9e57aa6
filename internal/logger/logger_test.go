package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, "", "production")

	log.Debug("hidden")
	log.Info("card rendered", "handle", "stani.lens")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "card rendered", entry["msg"])
	assert.Equal(t, "stani.lens", entry["handle"])
}

func TestNewDevelopmentWritesTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, "", "development")

	log.Debug("fetching profile", "profile_id", "0x01")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "profile_id=0x01")
}

func TestInitInstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	Init(false, "", "production")

	assert.NotSame(t, prev, slog.Default())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
}
