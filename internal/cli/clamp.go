package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/layout"
	"github.com/matzehuels/splitpane/pkg/render"
)

// clampCommand clamps a single size against one pane's constraints.
func (c *CLI) clampCommand() *cobra.Command {
	cs := layout.DefaultConstraints()

	cmd := &cobra.Command{
		Use:   "clamp [size]",
		Short: "Clamp one pane size to its constraints",
		Long: `Clamp one pane size to its constraints.

Sizes below the minimum snap up to it. For a collapsible pane, sizes below
the point halfway between the collapsed and minimum sizes snap down to the
collapsed size instead.`,
		Example: `  splitpane clamp --min 10 --collapsible --collapsed 2 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseSizes(args)
			if err != nil {
				return err
			}
			if err := errors.ValidateFinite("size", sizes[0]); err != nil {
				return err
			}
			if err := cs.Validate(); err != nil {
				return err
			}

			clamped := layout.ClampSize(cs, sizes[0])
			printKeyValue(c.out, "size", render.FormatSize(sizes[0]))
			printKeyValue(c.out, "clamped", render.FormatSize(clamped))
			if layout.IsCollapsed(cs, clamped) {
				printDetail(c.out, "collapsed")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&cs.MinSize, "min", cs.MinSize, "minimum size")
	cmd.Flags().Float64Var(&cs.MaxSize, "max", cs.MaxSize, "maximum size")
	cmd.Flags().Float64Var(&cs.CollapsedSize, "collapsed", cs.CollapsedSize, "collapsed size")
	cmd.Flags().BoolVar(&cs.Collapsible, "collapsible", cs.Collapsible, "allow the pane to collapse")

	return cmd
}
