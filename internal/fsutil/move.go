// Package fsutil provides filesystem move helpers shared by the trash
// and restore commands.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// Move moves src (a file or an entire directory subtree) to dst,
// replacing anything already present at dst. A plain rename is tried
// first; cross-device moves fall back to a recursive copy followed by
// removal of the source.
func Move(src, dst string) error {
	if _, err := os.Lstat(src); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	// Rename over a non-empty directory fails, so clear the
	// destination to get overwrite semantics.
	if _, err := os.Lstat(dst); err == nil {
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("replace %s: %w", dst, err)
		}
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	return copyAndDelete(src, dst)
}

// copyAndDelete copies src to dst and then deletes the original.
// Used when rename fails, typically for cross-device moves.
func copyAndDelete(src, dst string) error {
	opts := cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow // keep links as links
		},
		PreserveTimes: true,
		PreserveOwner: true,
		Sync:          true,
	}

	if err := cp.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	if err := os.RemoveAll(src); err != nil {
		// Keep the copy; a stale source is better than data loss.
		return fmt.Errorf("remove source %s after copy: %w", src, err)
	}
	return nil
}
