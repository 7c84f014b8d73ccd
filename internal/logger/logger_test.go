// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobalLevel(t *testing.T) {
	t.Helper()
	level := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(level) })
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	l := NewLogger("epqs-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("server started")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "epqs-server", entry["role"])
	assert.Equal(t, "server started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{"warn", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreGlobalLevel(t)
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			err := SetLevel(tt.level)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	l.Error().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithTraceID(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	parent := NewLogger("epqs-server")
	parent.Logger = parent.Output(&buf)

	child := parent.WithTraceID("trace-1")
	assert.NotSame(t, parent, child)

	child.Info().Msg("from child")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "trace-1", entry[TraceIDField])
	assert.Equal(t, "epqs-server", entry["role"])

	parent.Info().Msg("from parent")
	assert.NotContains(t, lastEntry(t, &buf), TraceIDField)
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := (&Logger{zerolog.New(&buf)}).WithTraceID("ctx-trace")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("hello")

		assert.Equal(t, "ctx-trace", lastEntry(t, &buf)[TraceIDField])
	})

	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := (&Logger{zerolog.New(&buf)}).WithTraceID("req-trace")

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("hello")

	assert.Equal(t, "req-trace", lastEntry(t, &buf)[TraceIDField])
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
