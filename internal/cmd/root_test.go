package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMarkerAddAndListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cast")
	body := "{\"version\":3}\n[0.5,\"o\",\"a\"]\n[1.0,\"o\",\"b\"]\n[0.3,\"o\",\"c\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"marker", "add", path, "0.7", "here"})
	var out bytes.Buffer
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("marker add: %v", err)
	}

	root = NewRootCmd()
	root.SetArgs([]string{"marker", "list", path})
	out.Reset()
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("marker list: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("here")) {
		t.Errorf("marker list output = %q, want to contain marker label", out.String())
	}
}

func TestMarkerAddRejectsBadTimestamp(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"marker", "add", "x.cast", "not-a-number", "label"})
	var out bytes.Buffer
	root.SetOut(&out)
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for bad timestamp")
	}
	if exitCodeFor(err) != 2 {
		t.Errorf("exitCodeFor = %d, want 2 (bad usage)", exitCodeFor(err))
	}
}

func TestAnalyzeCmdReportsSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cast")
	body := "{\"version\":3}\n[0.1,\"o\",\"hi\\n\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"analyze", path})
	var out bytes.Buffer
	root.SetOut(&out)
	if err := root.Execute(); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("segment")) {
		t.Errorf("analyze output = %q, want to mention segments", out.String())
	}
}
