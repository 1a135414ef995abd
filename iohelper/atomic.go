// Package iohelper provides atomic file writing for the gmprotate and
// misrotate CLIs: a transformed artifact is written to a scratch file
// beside its destination and renamed onto it, so a process killed
// mid-write never leaves a half-written map or script behind.
package iohelper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// AtomicWrite writes data to a scratch file in the same directory as
// path, then renames it onto path. The rename is atomic on every
// platform this tool targets, so readers of path never observe a
// partial write.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	scratch := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")

	f, err := os.OpenFile(scratch, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("iohelper: creating scratch file for %q: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(scratch)
		return fmt.Errorf("iohelper: writing %q: %w", scratch, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(scratch)
		return fmt.Errorf("iohelper: syncing %q: %w", scratch, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(scratch)
		return fmt.Errorf("iohelper: closing %q: %w", scratch, err)
	}

	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return fmt.Errorf("iohelper: renaming %q onto %q: %w", scratch, path, err)
	}
	return nil
}

// AtomicWriteNew is AtomicWrite for a destination that need not already
// exist: it first creates any missing parent directories. Both CLIs
// write every output file through it.
func AtomicWriteNew(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("iohelper: creating directory for %q: %w", path, err)
	}
	return AtomicWrite(path, data, perm)
}
