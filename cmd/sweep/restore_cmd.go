package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRestoreCmd() *cobra.Command {
	var (
		trashDir    string
		destDir     string
		strict      bool
		interactive bool
		copyPath    bool
	)

	cmd := &cobra.Command{
		Use:     "restore <pattern>...",
		Short:   "Restore trashed entries matching a pattern",
		Aliases: []string{"rs"},
		GroupID: GroupTrash,
		Args: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return nil // picker works without a pattern
			}
			if len(args) < 1 {
				return fmt.Errorf("requires at least one pattern (or --interactive)")
			}
			return nil
		},
		Long: `Restore trashed entries back to the working directory.

Patterns match trashed names by case-insensitive substring. The
timestamp suffix added by 'sweep trash' is stripped to derive the
restored name. When several matches derive the same name they are
restored in order and the last one wins; use --strict to treat that
as an error instead.`,
		Example: `  sweep restore report               # Restore everything matching "report"
  sweep restore -i                   # Pick entries interactively
  sweep restore report --strict      # Fail on ambiguous restored names
  sweep restore report --dest ~/inbox
  sweep restore report -c            # Copy the restored path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveTrashDir(trashDir)
			if err != nil {
				return err
			}

			dest := destDir
			if dest == "" {
				dest = workDir
			}

			return runRestore(cmd.Context(), args, dir, dest, restoreOptions{
				strict:      strict,
				interactive: interactive,
				copyPath:    copyPath,
			})
		},
	}

	cmd.Flags().StringVar(&trashDir, "trash-dir", "", "trash directory (default from config)")
	cmd.Flags().StringVar(&destDir, "dest", "", "destination directory (default: current directory)")
	cmd.Flags().BoolVar(&strict, "strict", false, "error when matches derive the same restored name")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick entries interactively")
	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "copy the last restored path to the clipboard")

	return cmd
}
