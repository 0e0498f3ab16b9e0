package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelsFanOut(t *testing.T) {
	var file, stderr bytes.Buffer
	l := NewWithWriters(&file, &stderr, "info")

	l.Debug("hidden detail")
	l.Info("export done", "tasks", 3)
	l.Warn("failed to send signal", "pid", 42)
	l.Error("run failed", "error", "boom")

	logged := file.String()
	if strings.Contains(logged, "hidden detail") {
		t.Errorf("debug record written at info level:\n%s", logged)
	}
	for _, want := range []string{"msg=\"export done\" tasks=3", "pid=42", "error=boom"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log file missing %q:\n%s", want, logged)
		}
	}

	echoed := stderr.String()
	if !strings.Contains(echoed, "run failed") {
		t.Errorf("error record not echoed to stderr: %q", echoed)
	}
	if strings.Contains(echoed, "export done") || strings.Contains(echoed, "failed to send signal") {
		t.Errorf("non-error records echoed to stderr: %q", echoed)
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var file bytes.Buffer
	l := NewWithWriters(&file, &bytes.Buffer{}, "debug").With("run_id", "abc")
	l.Debug("step")

	if !strings.Contains(file.String(), "run_id=abc") {
		t.Errorf("expected run_id attribute, got %q", file.String())
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hook.log")
	if err := os.WriteFile(path, []byte("stale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := New(path, "info")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "stale") {
		t.Error("expected log file to be truncated")
	}
	for _, want := range []string{"logging initialized", "log file time zone", "msg=hello"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "hook.log"), "info"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestNilAndNopLoggers(t *testing.T) {
	var l *Logger
	l.Info("ignored")
	if l.With("k", "v") != nil {
		t.Error("With on a nil Logger should stay nil")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil Logger: %v", err)
	}

	Nop().Error("ignored")
	if err := Nop().Close(); err != nil {
		t.Errorf("Close on Nop Logger: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{
		"debug": "DEBUG", "INFO": "INFO", "Warn": "WARN", "error": "ERROR", "bogus": "INFO",
	} {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
