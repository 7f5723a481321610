package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(string) bool
	}{
		{"json", func(s string) bool { return strings.HasPrefix(s, "{") }},
		{"", func(s string) bool { return strings.HasPrefix(s, "{") }},
		{"text", func(s string) bool { return strings.Contains(s, "msg=hello") }},
		{"console", func(s string) bool { return strings.Contains(s, "msg=hello") }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: "info", Format: tt.format, Output: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("hello")
			if !tt.check(buf.String()) {
				t.Errorf("unexpected output for format %q: %s", tt.format, buf.String())
			}
		})
	}
}

func TestNew_Rejects(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("New() should reject unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("New() should reject unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debug("debug")
	l.Info("info")
	if buf.Len() != 0 {
		t.Errorf("messages below warn should be filtered: %s", buf.String())
	}

	l.Warn("warn")
	if !strings.Contains(buf.String(), `"msg":"warn"`) {
		t.Errorf("warn should be logged: %s", buf.String())
	}

	// Each logger keeps its own level.
	if _, err := New(Config{Level: "debug", Output: &bytes.Buffer{}}); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	buf.Reset()
	l.Debug("still filtered")
	if buf.Len() != 0 {
		t.Errorf("another logger's level leaked: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	valid := []string{"debug", "INFO", "", "warn", "warning", "error", " info "}
	for _, name := range valid {
		if _, err := ParseLevel(name); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", name, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("ParseLevel(trace) should fail")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.With("app", "shiny").Info("issued")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["app"] != "shiny" {
		t.Errorf("app = %v, want shiny", entry["app"])
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	prev := Default()
	SetDefault(l)
	defer SetDefault(prev)

	FromContext(context.Background()).Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("FromContext without a logger should use the default: %s", buf.String())
	}
}
