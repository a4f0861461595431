package logx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { Set(nil) })

	Component("cache").Info("hit", "key", "k1")

	out := buf.String()
	if !strings.Contains(out, "component=cache") {
		t.Errorf("output %q missing component attribute", out)
	}
	if !strings.Contains(out, "key=k1") {
		t.Errorf("output %q missing key attribute", out)
	}
}
