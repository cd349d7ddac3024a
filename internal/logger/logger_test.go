package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	slog.Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("scoped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-req-123", entry["request_id"])
}

func TestRequestIDMissing(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))
}

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, GenerateRequestID())
}

func TestConfigLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.False(t, cfg.IsJSON())

	prod := ProductionConfig()
	assert.True(t, prod.IsJSON())
	assert.Equal(t, EnvironmentProduction, prod.Environment)
	assert.False(t, prod.AddSource)
}
