package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/trash"
	"github.com/raphi011/sweep/internal/ui/prompt"
)

// autoConfirmer answers every prompt with yes. Used by --force.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(string) (bool, error) { return true, nil }

// runTrash moves each existing path into the trash after confirmation.
// Per-path failures are reported and the batch continues; only a
// cancelled prompt aborts the run.
func runTrash(ctx context.Context, paths []string, trashDir string, confirmer prompt.Confirmer) error {
	l := log.FromContext(ctx)

	store := trash.NewStore(trashDir)
	if err := store.EnsureDir(); err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := os.Lstat(path); err != nil {
			l.Warnf("%s: no such file or directory, skipping", path)
			continue
		}

		ok, err := confirmer.Confirm(fmt.Sprintf("move %q to trash?", path))
		if err != nil {
			if errors.Is(err, prompt.ErrCancelled) {
				return err
			}
			return fmt.Errorf("confirmation prompt: %w", err)
		}
		if !ok {
			l.Printf("skipped %s\n", path)
			continue
		}

		dest, err := store.Put(path, time.Now())
		if err != nil {
			l.Errorf("%v", err)
			continue
		}
		l.Printf("trashed %s -> %s\n", path, dest)
	}

	return nil
}
