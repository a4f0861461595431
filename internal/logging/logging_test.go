package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/dmrcv/ogkit/internal/logx"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	z, err := New(Options{Level: "info", Console: &buf})
	if err != nil {
		t.Fatal(err)
	}
	z.Debug("hidden")
	z.Info("started")
	_ = z.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry[FieldMessage] != "started" || entry[FieldLevel] != "info" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewRejectsFormat(t *testing.T) {
	if _, err := New(Options{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFileCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ogkit.log")
	var buf bytes.Buffer
	z, err := New(Options{Level: "debug", Format: "console", File: path, Console: &buf})
	if err != nil {
		t.Fatal(err)
	}
	z.Warn("store down")
	_ = z.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"store down"`) {
		t.Errorf("file = %q", data)
	}
	if !strings.Contains(buf.String(), "store down") {
		t.Errorf("console = %q", buf.String())
	}
}

func TestInstall(t *testing.T) {
	t.Cleanup(func() { logx.Set(nil) })

	var buf bytes.Buffer
	z, err := New(Options{Level: "debug", Console: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Install(z)
	logx.Component("cache").Debug("cache hit", "hash", "0123456789ab")
	_ = z.Sync()

	out := buf.String()
	for _, want := range []string{`"message":"cache hit"`, `"component":"cache"`, `"hash":"0123456789ab"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %s", out, want)
		}
	}
}
