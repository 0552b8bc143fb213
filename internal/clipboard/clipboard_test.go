package clipboard

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFileMissing(t *testing.T) {
	_, err := CopyFile(filepath.Join(t.TempDir(), "nope.cast"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCopyFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.cast")
	if err := os.WriteFile(path, make([]byte, MaxContentSize+1), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := CopyFile(path)
	if err == nil {
		t.Fatal("expected FileTooLargeError")
	}
	var tooLarge *FileTooLargeError
	if !asFileTooLarge(err, &tooLarge) {
		t.Fatalf("expected *FileTooLargeError, got %T: %v", err, err)
	}
}

func asFileTooLarge(err error, target **FileTooLargeError) bool {
	if e, ok := err.(*FileTooLargeError); ok {
		*target = e
		return true
	}
	return false
}

func TestCopyFileWithinLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.cast")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// CopyText always writes the OSC52 sequence regardless of environment,
	// so CopyFile on a small existing file never fails purely on size.
	if _, err := CopyFile(path); err != nil {
		t.Logf("clipboard unavailable in this environment: %v", err)
	}
}
