package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONAndCleansUp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "edulearn.log")

	cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if Path() != path {
		t.Errorf("Path() = %q, want %q", Path(), path)
	}

	L().Debug("catalog.test", "key", "value")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if Path() != "" {
		t.Errorf("Path() after cleanup = %q, want empty", Path())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "catalog.test" || entry["key"] != "value" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestSetup_EmptyPathDiscards(t *testing.T) {
	cleanup, err := Setup(Config{})
	if err == nil {
		t.Fatal("expected error for empty path")
	}
	if cleanup == nil {
		t.Fatal("expected a no-op cleanup")
	}
	if Path() != "" {
		t.Errorf("Path() = %q, want empty", Path())
	}
	L().Info("dropped")
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be dropped at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info entry missing")
	}
}
