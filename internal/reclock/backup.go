package reclock

import (
	"fmt"
	"io"
	"os"
	"strings"
)

func backupPathFor(path string) string {
	return path + ".bak"
}

// HasBackup reports whether a ".bak" sibling exists for path.
func HasBackup(path string) bool {
	_, err := os.Stat(backupPathFor(path))
	return err == nil
}

// Backup copies path to its ".bak" sibling if one doesn't already
// exist, returning true iff a new backup was created.
func Backup(path string) (bool, error) {
	backupPath := backupPathFor(path)
	if HasBackup(path) {
		return false, nil
	}
	if err := copyFile(path, backupPath); err != nil {
		return false, fmt.Errorf("reclock: create backup %s: %w", backupPath, err)
	}
	return true, nil
}

// Restore overwrites path with its ".bak" sibling using a temp+rename
// swap, then deletes the backup on success. Fails if no backup exists.
func Restore(path string) error {
	backupPath := backupPathFor(path)
	if !HasBackup(path) {
		return fmt.Errorf("reclock: no backup exists for %s", path)
	}

	tempPath := strings.TrimSuffix(path, ".cast") + ".cast.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("reclock: copy backup to temp file %s: %w", backupPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("reclock: restore from backup %s: %w", path, err)
	}
	os.Remove(backupPath)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
