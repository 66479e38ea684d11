package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/output"
	"github.com/raphi011/sweep/internal/trash"
	"github.com/raphi011/sweep/internal/ui/picker"
	"github.com/raphi011/sweep/internal/ui/styles"
)

type restoreOptions struct {
	strict      bool
	interactive bool
	copyPath    bool
}

// runRestore moves matched trash entries back to destDir. Per-entry
// failures are reported and the batch continues.
func runRestore(ctx context.Context, patterns []string, trashDir, destDir string, opts restoreOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	store := trash.NewStore(trashDir)
	if !store.Exists() {
		l.Warnf("trash directory %s does not exist, nothing to restore", trashDir)
		return nil
	}

	entries, err := store.Entries()
	if err != nil {
		return fmt.Errorf("read trash directory: %w", err)
	}
	if len(entries) == 0 {
		l.Printf("trash directory %s is empty\n", trashDir)
		return nil
	}

	var selected []trash.Entry
	if opts.interactive {
		selected, err = pickEntries(entries, patterns)
		if err != nil {
			return err
		}
		if selected == nil {
			l.Printf("restore cancelled\n")
			return nil
		}
	} else {
		selected = matchEntries(l, entries, patterns)
	}
	if len(selected) == 0 {
		return nil
	}

	if opts.strict {
		if dups := trash.DuplicateNames(selected); len(dups) > 0 {
			return fmt.Errorf("ambiguous restore, multiple entries resolve to: %s",
				strings.Join(dups, ", "))
		}
	}

	var lastDest string
	for _, e := range selected {
		dest, err := store.Restore(e, destDir)
		if err != nil {
			l.Errorf("%v", err)
			continue
		}
		lastDest = dest
		out.Println(dest)
	}

	if opts.copyPath && lastDest != "" {
		if err := clipboard.WriteAll(lastDest); err != nil {
			l.Warnf("copy to clipboard: %v", err)
		}
	}

	return nil
}

// matchEntries collects entries matching any pattern, deduplicated,
// preserving trash order. Patterns without matches get a warning.
func matchEntries(l *log.Logger, entries []trash.Entry, patterns []string) []trash.Entry {
	seen := make(map[string]bool)
	var selected []trash.Entry

	for _, pattern := range patterns {
		matched := trash.Match(entries, pattern)
		if len(matched) == 0 {
			l.Warnf("no trashed entry matches %q", pattern)
			continue
		}
		for _, e := range matched {
			if !seen[e.Name] {
				seen[e.Name] = true
				selected = append(selected, e)
			}
		}
	}
	return selected
}

// pickEntries shows the interactive picker over entries matching the
// patterns (all entries when no pattern is given). Returns nil when the
// user cancels.
func pickEntries(entries []trash.Entry, patterns []string) ([]trash.Entry, error) {
	candidates := entries
	if len(patterns) > 0 {
		seen := make(map[string]bool)
		candidates = nil
		for _, pattern := range patterns {
			for _, e := range trash.Match(entries, pattern) {
				if !seen[e.Name] {
					seen[e.Name] = true
					candidates = append(candidates, e)
				}
			}
		}
	}
	if len(candidates) == 0 {
		return []trash.Entry{}, nil
	}

	options := make([]string, len(candidates))
	for i, e := range candidates {
		options[i] = e.Name
	}

	indices, ok, err := picker.Run("Restore from trash", options, styles.ByName(cfg.Theme))
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	if !ok {
		return nil, nil
	}

	selected := make([]trash.Entry, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, candidates[i])
	}
	return selected, nil
}
