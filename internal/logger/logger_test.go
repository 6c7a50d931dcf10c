package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/ctoken/theme"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew_FileOutputStripsStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()

	var terminal bytes.Buffer
	log, cleanup, err := New(&Config{
		Level:      "info",
		LogDir:     dir,
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		FileOutput: true,
		Writer:     &terminal,
	})
	require.NoError(t, err)

	log.Info("token acquired", "user", "\x1b[32malice\x1b[0m")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, DefaultLogOutputName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user":"alice"`)
	assert.Contains(t, string(data), `"timestamp"`)
	assert.Contains(t, terminal.String(), "token acquired")
}

func TestTeeHandler_DetailedOnlyGoesToFile(t *testing.T) {
	var terminal, file bytes.Buffer
	h := &teeHandler{
		terminalHandler: slog.NewTextHandler(&terminal, nil),
		fileHandler:     slog.NewJSONHandler(&file, nil),
	}
	log := slog.New(h)

	detailedCtx := context.WithValue(context.Background(), DefaultDetailedCookie, true)
	log.InfoContext(detailedCtx, "response headers", "count", 3)
	log.Info("visible")

	assert.NotContains(t, terminal.String(), "response headers")
	assert.Contains(t, terminal.String(), "visible")
	assert.Contains(t, file.String(), "response headers")
	assert.Contains(t, file.String(), "visible")
}

func TestStyledLogger_WarnWithContext(t *testing.T) {
	var terminal, file bytes.Buffer
	h := &teeHandler{
		terminalHandler: slog.NewTextHandler(&terminal, nil),
		fileHandler:     slog.NewJSONHandler(&file, nil),
	}
	sl := NewStyledLogger(slog.New(h), theme.Default())

	sl.WarnWithContext("GET", "https://api/workspaces", LogContext{
		UserArgs:     []any{"status", 404},
		DetailedArgs: []any{"content_type", "application/json"},
	})

	assert.Contains(t, terminal.String(), "level=WARN")
	assert.Contains(t, terminal.String(), "status=404")
	assert.NotContains(t, terminal.String(), "content_type")
	assert.Contains(t, file.String(), `"content_type":"application/json"`)
	assert.Contains(t, file.String(), `"url":"https://api/workspaces"`)
	assert.Contains(t, file.String(), `"level":"WARN"`)
}

type recordingHandler struct {
	records *[]slog.Record
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r.Clone())
	return nil
}

func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordingHandler) WithGroup(string) slog.Handler      { return h }

func recordAttrs(r slog.Record) map[string]string {
	attrs := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	return attrs
}

func TestStyledLogger_InfoWithStatus(t *testing.T) {
	var records []slog.Record
	sl := NewStyledLogger(slog.New(recordingHandler{records: &records}), theme.Default())

	sl.InfoWithStatus("GET https://api/workspaces", 200, "latency", "12ms")

	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, "GET https://api/workspaces 200", stripAnsiCodes(records[0].Message))
	assert.Equal(t, "12ms", recordAttrs(records[0])["latency"])
}

func TestStyledLogger_InfoSuccess(t *testing.T) {
	var records []slog.Record
	sl := NewStyledLogger(slog.New(recordingHandler{records: &records}), theme.Default())

	sl.InfoSuccess("Signed in", "username", "alice@contoso.com")

	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, "Signed in", stripAnsiCodes(records[0].Message))
	assert.Equal(t, "alice@contoso.com", recordAttrs(records[0])["username"])
}
