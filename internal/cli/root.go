package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockboard/pkg/buildinfo"
)

// Execute runs the blockboard CLI under the given context and returns an
// error if any command fails. This is the main entry point for the CLI
// application.
//
// The function sets up the root command with all subcommands (edit,
// metrics), configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "blockboard",
		Short:        "Blockboard is an interactive box-and-wire diagram editor",
		Long:         `Blockboard is a terminal editor for box-and-wire diagrams: place typed blocks on a canvas, wire them into chains, and group runs of blocks inside Flow containers and Collection brackets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEditCmd())
	root.AddCommand(newMetricsCmd())

	return root.ExecuteContext(ctx)
}
