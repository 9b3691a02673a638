// Package fileio handles the filesystem plumbing around the engine:
// reading source files, writing backups, and rewriting files in place
// while preserving read-only permissions.
package fileio

import (
	"fmt"
	"os"
)

const ownerWrite = 0o200

// ReadFile reads the complete content of a text file.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), nil
}

// BackupPath returns the sibling backup path for a file.
func BackupPath(path string) string {
	return path + ".bak"
}

// WriteBackup writes the original content next to the file as a .bak
// sibling, carrying over the original's permission bits.
func WriteBackup(path, content string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	backup := BackupPath(path)
	if err := os.WriteFile(backup, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backup, err)
	}

	if err := os.Chmod(backup, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("setting backup permissions: %w", err)
	}

	return backup, nil
}

// RewriteInPlace replaces the file's content. Read-only files are made
// writable for the write and restored to their original mode
// afterwards, even when the write fails.
func RewriteInPlace(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	mode := info.Mode().Perm()
	readonly := mode&ownerWrite == 0

	if readonly {
		if err := os.Chmod(path, mode|ownerWrite); err != nil {
			return fmt.Errorf("making %s writable: %w", path, err)
		}
		defer func() {
			// Restore even if the write failed.
			_ = os.Chmod(path, mode)
		}()
	}

	if err := os.WriteFile(path, []byte(content), mode|ownerWrite); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
