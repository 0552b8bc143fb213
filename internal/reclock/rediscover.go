package reclock

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// FindByInode scans dir for a ".cast" file sharing target's inode
// number. A recorder that renames its output mid-flight (log rotation,
// atomic-write-then-rename) leaves the original path stale but the
// inode unchanged; a reader that only knows the original path can
// relocate the live file this way.
func FindByInode(dir string, targetInode uint64) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cast" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ino, ok := inodeOf(path)
		if ok && ino == targetInode {
			return path, true
		}
	}
	return "", false
}

// FindByHeader scans dir for a ".cast" file whose first line equals
// targetHeader exactly. Used when the inode is unknown (e.g. the
// reader attached after the rename already happened).
func FindByHeader(dir, targetHeader string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cast" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if firstLineOf(path) == strings.TrimRight(targetHeader, "\n") {
			return path, true
		}
	}
	return "", false
}

func firstLineOf(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return scanner.Text()
	}
	return ""
}
