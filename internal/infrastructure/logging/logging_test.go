package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want struct {
			level slog.Level
			err   bool
		}
	}{
		{name: "Given debug, When parsing, Then should return LevelDebug", in: "debug", want: struct {
			level slog.Level
			err   bool
		}{level: slog.LevelDebug}},
		{name: "Given empty, When parsing, Then should default to info", in: "", want: struct {
			level slog.Level
			err   bool
		}{level: slog.LevelInfo}},
		{name: "Given WARN, When parsing, Then should ignore case", in: "WARN", want: struct {
			level slog.Level
			err   bool
		}{level: slog.LevelWarn}},
		{name: "Given error, When parsing, Then should return LevelError", in: "error", want: struct {
			level slog.Level
			err   bool
		}{level: slog.LevelError}},
		{name: "Given trace, When parsing, Then should return error", in: "trace", want: struct {
			level slog.Level
			err   bool
		}{level: slog.LevelInfo, err: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.want.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want.level, got)
		})
	}
}

func TestNew_JSONFiltersByLevel(t *testing.T) {
	// Given
	var buf bytes.Buffer
	logger, err := New(&buf, config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	// When
	logger.Info("Converting PDF", slog.String("filename", "/tmp/a.pdf"))
	logger.Warn("converter exited with error", slog.String("filename", "/tmp/a.pdf"))

	// Then
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "/tmp/a.pdf", entry["filename"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.LoggingConfig{Format: "text"})
	require.NoError(t, err)

	logger.Info("PDF conversion done")

	assert.Contains(t, buf.String(), `msg="PDF conversion done"`)
}

func TestNew_UnknownFormat(t *testing.T) {
	logger, err := New(&bytes.Buffer{}, config.LoggingConfig{Format: "xml"})

	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestSetup_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	_, err := Setup(&buf, config.LoggingConfig{Level: "info", Format: "json"}, "worker-runtime")
	require.NoError(t, err)

	slog.Info("ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "worker-runtime", entry["service"])
	assert.Equal(t, "ready", entry["msg"])
}
