package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/sweep/internal/config"
	"github.com/raphi011/sweep/internal/log"
	"github.com/raphi011/sweep/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupTrash  = "trash"
	GroupRepo   = "repo"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Safe delete, restore, and repository status for your shell",
	Long: `sweep is a set of shell convenience utilities.

Instead of deleting files, 'sweep trash' moves them into a timestamped
trash directory; 'sweep restore' moves them back. 'sweep status' renders
a categorized summary of the current git repository.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed by now; attach the logger and printer so
		// --verbose/--quiet reach every command through the context.
		cmd.SetContext(newRunContext(cmd.Context(), os.Stdout, os.Stderr))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling. Logger and printer are
	// attached in PersistentPreRunE, after flags are parsed.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'sweep -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTrash, Title: "Trash Commands:"},
		&cobra.Group{ID: GroupRepo, Title: "Repository Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newTrashCmd())
	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// newRunContext attaches the logger (stderr diagnostics) and printer
// (stdout data) to ctx using the parsed global flags.
func newRunContext(ctx context.Context, out, errOut io.Writer) context.Context {
	ctx = log.WithLogger(ctx, log.New(errOut, verbose, quiet))
	return output.WithPrinter(ctx, out)
}

// resolveTrashDir picks the trash directory: flag > config > default,
// with ~ expanded.
func resolveTrashDir(flagValue string) (string, error) {
	dir := flagValue
	if dir == "" {
		dir = cfg.TrashDir
	}
	if dir == "" {
		dir = config.Default().TrashDir
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("resolve trash directory: %w", err)
	}
	return expanded, nil
}
