package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rangesCommand prints how far each divider of a group can move.
func (c *CLI) rangesCommand() *cobra.Command {
	var (
		groupID string
		from    []float64
	)

	cmd := &cobra.Command{
		Use:   "ranges [manifest.toml]",
		Short: "Show how far each divider of a group can move",
		Long: `Show how far each divider of a group can move.

Each row gives the smallest, current and largest size of the pane before the
divider, taking the limits of every other pane in the group into account.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGroup(loggerFromContext(cmd.Context()), args[0], groupID)
			if err != nil {
				return err
			}
			if len(from) > 0 {
				if _, _, err := g.SetLayout(from); err != nil {
					return err
				}
			}

			ranges, err := g.DividerRanges()
			if err != nil {
				return err
			}
			if len(ranges) == 0 {
				printWarning(c.out, "group %s has a single pane and no dividers", g.ID())
				return nil
			}

			fmt.Fprintln(c.out, StyleTitle.Render(g.ID()))
			fmt.Fprintln(c.out, rangeTable(paneNames(g), ranges))
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "group id (default: first group)")
	cmd.Flags().Float64SliceVar(&from, "from", nil, "current sizes (default: the group's default layout)")

	return cmd
}
