package reclock

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackupThenRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cast")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	created, err := Backup(path)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if !created {
		t.Fatal("expected a new backup to be created")
	}
	if !HasBackup(path) {
		t.Fatal("expected HasBackup to report true")
	}

	if err := os.WriteFile(path, []byte("corrupted"), 0o644); err != nil {
		t.Fatalf("corrupt file: %v", err)
	}

	if err := Restore(path); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read restored file: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("got %q, want %q", got, "original")
	}
	if HasBackup(path) {
		t.Error("expected the backup file to be removed after restore")
	}
}

func TestBackupSkipsIfAlreadyExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cast")
	os.WriteFile(path, []byte("v1"), 0o644)

	created, err := Backup(path)
	if err != nil || !created {
		t.Fatalf("first backup: created=%v err=%v", created, err)
	}
	created, err = Backup(path)
	if err != nil {
		t.Fatalf("second backup: %v", err)
	}
	if created {
		t.Error("expected the second Backup call to be a no-op")
	}
}

func TestRestoreFailsWithoutBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.cast")
	os.WriteFile(path, []byte("v1"), 0o644)
	if err := Restore(path); err == nil {
		t.Fatal("expected an error restoring without a backup")
	}
}
