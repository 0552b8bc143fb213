package activitylog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

func TestDroppedByte(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l, err := New(true, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.DroppedByte("vt.parser", 0x07)

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	var e entry
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Level != LevelTrace {
		t.Errorf("level = %q, want %q", e.Level, LevelTrace)
	}
	if e.Component != "vt.parser" {
		t.Errorf("component = %q, want vt.parser", e.Component)
	}
	if e.Byte != "0x07" {
		t.Errorf("byte = %q, want 0x07", e.Byte)
	}
}

func TestTransformSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l, err := New(true, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.TransformSkipped("similarity-collapse", 4, "bad utf8")

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	var e entry
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Level != LevelWarn {
		t.Errorf("level = %q, want %q", e.Level, LevelWarn)
	}
	if e.Component != "extract.similarity-collapse" {
		t.Errorf("component = %q", e.Component)
	}
	if e.Event != 4 {
		t.Errorf("event = %d, want 4", e.Event)
	}
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	l, err := New(false, filepath.Join(t.TempDir(), "unused.log"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.DroppedByte("vt.parser", 0x1b)
	l.Warnf("should not be written")
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestWarnfFormatsArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.log")
	l, err := New(true, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Warnf("skipped %d events in %s", 3, "block-truncate")

	lines := readLines(t, path)
	var e entry
	if err := json.Unmarshal([]byte(lines[0]), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Message != "skipped 3 events in block-truncate" {
		t.Errorf("message = %q", e.Message)
	}
}
