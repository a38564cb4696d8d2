package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"task-manager/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestWriter_TeesIntoRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")
	var console bytes.Buffer

	w := writer(config.LogConfig{File: path, MaxSizeMB: 1}, &console)
	logger := zerolog.New(w)
	logger.Info().Msg("hello file")

	if !strings.Contains(console.String(), "hello file") {
		t.Fatalf("expected console output, got %q", console.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("expected file output, got %q", string(data))
	}
}
