package main

import (
	"encoding/json"
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/output"
	"github.com/raphi011/sweep/internal/trash"
	"github.com/raphi011/sweep/internal/ui/styles"
)

// entryDisplay holds trash entry info for display
type entryDisplay struct {
	Name      string    `json:"name"`
	Restored  string    `json:"restored_name"`
	IsDir     bool      `json:"is_dir"`
	Size      int64     `json:"size"`
	TrashedAt time.Time `json:"trashed_at"`
}

func newListCmd() *cobra.Command {
	var (
		trashDir   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List trashed entries",
		Aliases: []string{"ls"},
		GroupID: GroupTrash,
		Args:    cobra.NoArgs,
		Long: `List the contents of the trash directory, newest first.

Shows each entry's on-disk name, its size and when it was trashed.
With --verbose each line also carries the name the entry would restore
to; --json includes it always.`,
		Example: `  sweep list                     # List trashed entries
  sweep list --json              # Output as JSON for scripting
  sweep list --trash-dir /tmp/trash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			dir, err := resolveTrashDir(trashDir)
			if err != nil {
				return err
			}

			store := trash.NewStore(dir)
			if !store.Exists() {
				l.Printf("trash directory %s does not exist\n", dir)
				return nil
			}

			entries, err := store.Entries()
			if err != nil {
				return fmt.Errorf("read trash directory: %w", err)
			}

			display := make([]entryDisplay, 0, len(entries))
			for _, e := range entries {
				display = append(display, entryDisplay{
					Name:      e.Name,
					Restored:  e.RestoredName(),
					IsDir:     e.IsDir,
					Size:      e.Size,
					TrashedAt: e.TrashedAt,
				})
			}

			if jsonOutput {
				data, err := json.MarshalIndent(display, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal entries: %w", err)
				}
				out.Println(string(data))
				return nil
			}

			if len(display) == 0 {
				l.Printf("trash directory %s is empty\n", dir)
				return nil
			}

			theme := styles.ByName(cfg.Theme)
			muted := lipgloss.NewStyle().Foreground(theme.Muted)
			for _, d := range display {
				size := humanize.Bytes(uint64(d.Size))
				if d.IsDir {
					size = "dir"
				}
				age := ""
				if !d.TrashedAt.IsZero() {
					age = humanize.Time(d.TrashedAt)
				}
				name := d.Name
				if l.Verbose() {
					name = fmt.Sprintf("%s -> %s", d.Name, d.Restored)
				}
				out.Printf("%s %s\n", name, muted.Render(fmt.Sprintf("(%s, %s)", size, age)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trashDir, "trash-dir", "", "trash directory (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}
