package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown warn")
	l.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-severity messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown warn") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] shown error") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerPrefixAndFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "moded"})

	l.Info("opened %s in %d ms", "main.go", 12)

	out := buf.String()
	if !strings.Contains(out, "moded: opened main.go in 12 ms") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	NullLogger.Error("nothing should happen")
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
