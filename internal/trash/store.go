// Package trash implements the trash directory: moving paths into it
// under timestamped names and moving matched entries back out.
//
// The on-disk contract is the entry naming convention
// `<leafName>.<8digits>_<6digits>`; there is no index or metadata file.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/raphi011/sweep/internal/fsutil"
)

// Store is a trash directory.
type Store struct {
	Dir string
}

// NewStore returns a Store for the given directory. The directory is
// not created until EnsureDir or Put.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// EnsureDir creates the trash directory, including missing parents.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create trash directory %s: %w", s.Dir, err)
	}
	return nil
}

// Exists reports whether the trash directory exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.Dir)
	return err == nil && info.IsDir()
}

// Put moves path into the trash under `<leaf>.<timestamp>`, replacing
// any previous entry with the same composed name. It returns the
// destination path inside the trash directory.
//
// Two puts of the same leaf within one second compose the same name;
// the second replaces the first. The suffix is the only
// collision-avoidance mechanism.
func (s *Store) Put(path string, now time.Time) (string, error) {
	leaf := filepath.Base(filepath.Clean(path))
	dest := filepath.Join(s.Dir, EntryName(leaf, now))

	if err := fsutil.Move(path, dest); err != nil {
		return "", fmt.Errorf("move %s to trash: %w", path, err)
	}
	return dest, nil
}

// Entries lists the trash directory, newest first.
// A missing trash directory is an error; callers treat it as
// "nothing to restore".
func (s *Store) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{
			Name:      de.Name(),
			Path:      filepath.Join(s.Dir, de.Name()),
			IsDir:     de.IsDir(),
			TrashedAt: parseTrashedAt(de.Name()),
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TrashedAt.After(entries[j].TrashedAt)
	})
	return entries, nil
}

// Restore moves an entry out of the trash to
// `destDir/<restored name>`, replacing anything already there. It
// returns the destination path.
func (s *Store) Restore(e Entry, destDir string) (string, error) {
	dest := filepath.Join(destDir, e.RestoredName())
	if err := fsutil.Move(e.Path, dest); err != nil {
		return "", fmt.Errorf("restore %s: %w", e.Name, err)
	}
	return dest, nil
}
