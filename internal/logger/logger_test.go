package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "info", Output: &buf})

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug line written at info level")
	}
	for _, want := range []string{"[INFO] info message", "[WARN] warn message", "[ERROR] error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
		{"unknown config level falls back to info", "verbose", "debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestRunIDPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "debug", Output: &buf})
	ctx := WithRunID(context.Background(), "0123456789abcdef")

	log.Info(ctx, "chunk done")

	if !strings.Contains(buf.String(), "[run=01234567] chunk done") {
		t.Errorf("output %q missing run prefix", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "info", Format: "json", Output: &buf})
	ctx := WithRunID(context.Background(), "run-1")

	log.Warn(ctx, "retrying chunk %d", 3)

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if line["msg"] != "retrying chunk 3" {
		t.Errorf("msg = %v, want %v", line["msg"], "retrying chunk 3")
	}
	if line["level"] != "WARN" {
		t.Errorf("level = %v, want %v", line["level"], "WARN")
	}
	if line["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want %v", line["run_id"], "run-1")
	}
}
