package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("test message")

	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestIssuanceID(t *testing.T) {
	ctx := context.Background()
	if got := IssuanceIDFromContext(ctx); got != "" {
		t.Errorf("IssuanceIDFromContext() = %q, want empty", got)
	}

	ctx = WithIssuanceID(ctx, "toi-01kct9ns8he7a9m022x0tgbhds")
	if got := IssuanceIDFromContext(ctx); got != "toi-01kct9ns8he7a9m022x0tgbhds" {
		t.Errorf("IssuanceIDFromContext() = %q", got)
	}
}

func TestL_AddsIssuanceID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithIssuanceID(WithLogger(context.Background(), l), "toi-abc")
	L(ctx).Info("issued")

	if !strings.Contains(buf.String(), `"issuance_id":"toi-abc"`) {
		t.Errorf("L() should add issuance_id: %s", buf.String())
	}
}
