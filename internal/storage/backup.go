package storage

import (
	"fmt"
	"io"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given snapshot file
// with the given rotation number. Backups are named snapshot.json.bak.N;
// lower numbers are more recent (.bak.1 is the most recent backup).
func BackupPath(snapshotPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", snapshotPath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the oldest .bak.3
// if it exists. This ensures only MaxBackupCount backups are kept.
func rotateBackups(snapshotPath string) error {
	// Delete the oldest backup to make room
	oldest := BackupPath(snapshotPath, MaxBackupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		return err
	}

	// Shift .bak.2 -> .bak.3, then .bak.1 -> .bak.2
	for i := MaxBackupCount - 1; i >= 1; i-- {
		current := BackupPath(snapshotPath, i)
		next := BackupPath(snapshotPath, i+1)
		if err := os.Rename(current, next); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup rotates the backup set and copies the current snapshot
// file to .bak.1. When no snapshot exists yet there is nothing to back
// up and no error is returned.
func CreateBackup(snapshotPath string) error {
	if _, err := os.Stat(snapshotPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(snapshotPath); err != nil {
		return err
	}

	return copyFile(snapshotPath, BackupPath(snapshotPath, 1))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
