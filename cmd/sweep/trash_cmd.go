package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/ui/prompt"
)

func newTrashCmd() *cobra.Command {
	var (
		trashDir string
		force    bool
	)

	cmd := &cobra.Command{
		Use:     "trash <path>...",
		Short:   "Move files or directories to the trash",
		Aliases: []string{"put"},
		GroupID: GroupTrash,
		Args:    cobra.MinimumNArgs(1),
		Long: `Move files or directories to the trash instead of deleting them.

Each path is confirmed interactively before it is moved. The trashed
entry is named <name>.<timestamp> so 'sweep restore' can find it and
derive the original name. Missing paths and failed moves are reported
per path; the batch continues.`,
		Example: `  sweep trash old-report.txt           # Confirm, then trash one file
  sweep trash build/ dist/             # Trash whole directories
  sweep trash -f *.log                 # No confirmation prompts
  sweep trash notes.md --trash-dir /tmp/trash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveTrashDir(trashDir)
			if err != nil {
				return err
			}

			var confirmer prompt.Confirmer = prompt.Default()
			if force {
				confirmer = autoConfirmer{}
			}

			return runTrash(cmd.Context(), args, dir, confirmer)
		},
	}

	cmd.Flags().StringVar(&trashDir, "trash-dir", "", "trash directory (default from config)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompts")

	return cmd
}
