package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelError},
		{0, slog.LevelError},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := LogLevel(tt.verbosity); got != tt.want {
			t.Errorf("LogLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, 2, "json")
	logger.Debug("annotation anomaly", "warning", "metric_unit", "citation_key", "a2021")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["warning"] != "metric_unit" || entry["citation_key"] != "a2021" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewLogger_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, 0, "text")
	logger.Info("hidden")
	logger.Error("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record logged at verbosity 0:\n%s", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text error record, got:\n%s", out)
	}
}

func TestContentHash(t *testing.T) {
	got := ContentHash([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("ContentHash() = %s, want %s", got, want)
	}
}

func TestRenderCounts(t *testing.T) {
	out := RenderCounts("Model cores", []Counted{{"YOLO", 3}, {"ResNet", 12}})
	for _, want := range []string{"Model cores", "YOLO", "ResNet", "12"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderCounts() missing %q:\n%s", want, out)
		}
	}
}
