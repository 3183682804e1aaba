package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "svc")

	l.Info("hello", Fields("count", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message 'hello', got %v", entry["message"])
	}
	if entry["count"] != float64(2) {
		t.Errorf("expected count 2, got %v", entry["count"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "svc").WithComponent("chain")

	l.Info("tagged")

	if !strings.Contains(buf.String(), `"component":"chain"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "svc").WithError(errors.New("boom"))

	l.Error("failed")

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected error field, got %q", buf.String())
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields: %v", m)
	}

	// Odd trailing value is dropped.
	m = Fields("a", 1, "orphan")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("execute", errors.New("bad"))
	if m[FieldOperation] != "execute" {
		t.Errorf("expected operation, got %v", m)
	}
	if m[FieldError] != "bad" {
		t.Errorf("expected error message, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("run", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	old := globalLogger
	defer SetGlobalLogger(old)

	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily-created global logger")
	}

	var buf bytes.Buffer
	SetGlobalLogger(NewWriter(&buf, "global"))
	Info("from global")
	if !strings.Contains(buf.String(), "from global") {
		t.Errorf("expected global logger output, got %q", buf.String())
	}
}
