package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/git"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show a categorized summary of the current repository",
		Aliases: []string{"st"},
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `Render the current git repository's state.

Shows branch tracking info, tags at or near HEAD, unpushed tags,
commits you are behind or ahead of the upstream, and
staged/unstaged/untracked files. Read-only: only inspection commands
are issued.`,
		Example: `  sweep status                   # Summary for the current directory
  sweep st -v                    # Also echo the git commands issued`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := git.CheckGit(); err != nil {
				return err
			}
			if !git.IsInsideRepo(ctx, workDir) {
				return fmt.Errorf("not a git repository: %s", workDir)
			}

			return runStatus(ctx, workDir)
		},
	}

	return cmd
}
