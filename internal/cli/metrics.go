package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockboard/pkg/config"
)

// newMetricsCmd creates the metrics command, which prints the effective
// geometry after config resolution. Useful for checking what a
// blockboard.toml actually changed.
func newMetricsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the effective layout metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			m := cfg.BoardMetrics()
			out := cmd.OutOrStdout()

			line := func(name string, format string, args ...any) {
				fmt.Fprintf(out, "  %-22s %s\n", name, StyleNumber.Render(fmt.Sprintf(format, args...)))
			}

			fmt.Fprintln(out, StyleTitle.Render("Layout metrics"))
			line("block height", "%.0f", m.BlockHeight)
			line("block width", "%.0f", m.BlockWidth)
			line("connector gap", "%.0f", m.ConnectorGap)
			line("snap offset", "%.0f", m.SnapOffset())
			line("flow padding", "%.0f", m.FlowPadding)
			line("flow spacing", "%.0f", m.FlowSpacing)
			line("flow min size", "%.0f x %.0f", m.FlowMinWidth, m.FlowMinHeight)
			line("collection gap", "%.0f", m.CollectionGap)
			line("collection margin", "%.0f", m.CollectionMargin)
			line("connect tolerance x/y", "%.0f / %.0f", m.ConnectToleranceX, m.ConnectToleranceY)
			line("break tolerance x/y", "%.0f / %.0f", m.BreakToleranceX, m.BreakToleranceY)
			line("span tolerance", "%.0f", m.SpanTolerance)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to blockboard.toml")
	return cmd
}
