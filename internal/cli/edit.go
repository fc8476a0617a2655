package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blockboard/pkg/config"
	"github.com/matzehuels/blockboard/pkg/editor"
)

// newEditCmd creates the edit command, which opens the interactive canvas.
func newEditCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive diagram canvas",
		Long: `Open the interactive diagram canvas.

The canvas is driven entirely from the keyboard: arrow keys move the
pointer, space presses and releases it (drag), 'n' opens the block picker,
'c' clicks the anchor under the pointer, 'd' deletes the block under the
pointer and 'x' cuts the nearest wire.

Geometry and tolerances can be tuned with a blockboard.toml file passed via
--config; absent keys keep their defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			ctl := editor.New(cfg.BoardMetrics(), logger)

			model := newCanvasModel(ctl, cfg)
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to blockboard.toml")
	return cmd
}
