package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/pkg/layout"
	"github.com/matzehuels/splitpane/pkg/render"
)

// adjustCommand applies one divider move to a group loaded from a manifest.
func (c *CLI) adjustCommand() *cobra.Command {
	var (
		groupID string
		divider int
		delta   float64
		trigger string
		from    []float64
	)

	cmd := &cobra.Command{
		Use:   "adjust [manifest.toml]",
		Short: "Move one divider of a group and print the resulting layout",
		Long: `Move one divider of a group and print the resulting layout.

A positive delta grows the pane before the divider. When that pane or the
one after it hits a limit, panes further out absorb the rest. A move that
cannot be made leaves the layout unchanged.

With --trigger keyboard, a collapsible pane at its collapsed or minimum size
jumps straight to the other state, as an arrow key would make it.`,
		Example: `  splitpane adjust examples/editor.toml --group editor --divider 0 --delta -15
  splitpane adjust examples/editor.toml --divider 0 --delta -5 --trigger keyboard --from 10,70,20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := layout.ParseTrigger(trigger)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			g, err := c.loadGroup(logger, args[0], groupID)
			if err != nil {
				return err
			}
			if len(from) > 0 {
				if _, _, err := g.SetLayout(from); err != nil {
					return err
				}
			}

			before := g.Layout()
			after, changed, err := g.ResizeByDelta(divider, delta, t)
			if err != nil {
				return err
			}

			names := paneNames(g)
			label := fmt.Sprintf("%s | %s", names[divider], names[divider+1])
			if changed {
				printSuccess(c.out, "moved %s by %s", StyleTitle.Render(label), render.FormatSize(after[divider]-before[divider]))
			} else {
				printWarning(c.out, "%s cannot move by %s", label, render.FormatSize(delta))
			}
			printTransition(c.out, before, after)
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "group id (default: first group)")
	cmd.Flags().IntVar(&divider, "divider", 0, "divider index, 0 is between the first two panes")
	cmd.Flags().Float64Var(&delta, "delta", 0, "percentage to move the divider by")
	cmd.Flags().StringVar(&trigger, "trigger", "", "interaction: imperative-api (default), keyboard, mouse-or-touch")
	cmd.Flags().Float64SliceVar(&from, "from", nil, "starting sizes (default: the group's default layout)")

	return cmd
}
