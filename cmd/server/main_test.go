package main

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.Equal(t, 0, exitCode(nil))
	assert.Empty(t, buf.String())

	assert.Equal(t, 1, exitCode(errors.New("initialize app: boom")))
	assert.Contains(t, buf.String(), "server stopped")
	assert.Contains(t, buf.String(), "boom")
}
