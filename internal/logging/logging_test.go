// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Level: "info", Writer: &buf, RunID: "run-1"})
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("schema read", "fields", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"schema read\"")
	assert.Contains(t, out, "fields=3")
	assert.Contains(t, out, "run_id=run-1")
}

func TestNew_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)
	defer cleanup()

	logger.Warn("x")
	assert.Regexp(t, `run_id=[0-9a-f-]{36}`, buf.String())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	m := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	}}

	assert.True(t, m.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(m).With("k", "v").WithGroup("g")
	logger.Info("info line", "a", 1)
	logger.Error("error line", "b", 2)

	assert.Contains(t, debugBuf.String(), "info line")
	assert.Contains(t, debugBuf.String(), "error line")
	assert.Contains(t, debugBuf.String(), "k=v")
	assert.Contains(t, debugBuf.String(), "g.a=1")

	assert.NotContains(t, errorBuf.String(), "info line")
	assert.Contains(t, errorBuf.String(), "error line")
	assert.Contains(t, errorBuf.String(), "g.b=2")
}
