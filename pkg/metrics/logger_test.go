package metrics

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelWarn))

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error("error msg")

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Errorf("below-threshold output leaked: %q", out)
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Errorf("expected output missing: %q", out)
	}
}

func TestLoggerSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelSilent))

	logger.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestLoggerTextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelDebug))

	logger.Info("selected", Fields{"count": 12, "version": "TLS 1.0"})

	out := buf.String()
	if !strings.Contains(out, "selected") {
		t.Errorf("message missing: %q", out)
	}
	if !strings.Contains(out, "count=12") || !strings.Contains(out, "version=TLS 1.0") {
		t.Errorf("fields missing: %q", out)
	}
}

func TestLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithFormat(FormatJSON), WithName("suite"))

	logger.Info("sorted", Fields{"count": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry["msg"] != "sorted" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["logger"] != "suite" {
		t.Errorf("logger = %v", entry["logger"])
	}
	if entry["count"] != float64(3) {
		t.Errorf("count = %v", entry["count"])
	}
}

func TestLoggerWithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelDebug))

	child := logger.Named("suite").With(Fields{"session": "abc"})
	child.Debug("filtering")

	out := buf.String()
	if !strings.Contains(out, "[suite]") {
		t.Errorf("name missing: %q", out)
	}
	if !strings.Contains(out, "session=abc") {
		t.Errorf("inherited field missing: %q", out)
	}

	grandchild := child.Named("wire")
	buf.Reset()
	grandchild.Debug("encoding")
	if !strings.Contains(buf.String(), "[suite.wire]") {
		t.Errorf("dotted name missing: %q", buf.String())
	}
}

func TestLoggerCallFieldsOverrideDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelDebug)).With(Fields{"side": "client"})

	logger.Debug("msg", Fields{"side": "server"})
	if !strings.Contains(buf.String(), "side=server") {
		t.Errorf("call-site field did not win: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"off", LevelSilent},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithOutput(&buf), WithLevel(LevelError))

	logger.Info("hidden")
	logger.SetLevel(LevelDebug)
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("pre-SetLevel output leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("post-SetLevel output missing: %q", out)
	}
}
