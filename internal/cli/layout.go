package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/render"
)

// layoutCommand prints the initial layout of every group in a manifest.
func (c *CLI) layoutCommand() *cobra.Command {
	var noDraw bool

	cmd := &cobra.Command{
		Use:   "layout [manifest.toml]",
		Short: "Print the default layout of each group in a manifest",
		Long: `Print the default layout of each group in a manifest.

Panes with a default_size get exactly that; the others share what is left.
The result is then clamped to every pane's constraints, so what is printed
is the layout a freshly created group starts from.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, err := c.loadManifest(logger, args[0])
			if err != nil {
				return err
			}

			reg := group.NewRegistry(logger)
			groups, err := m.Apply(reg)
			if err != nil {
				return err
			}

			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(c.out)
				}
				c.printGroup(g, !noDraw)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDraw, "no-draw", false, "print sizes only")

	return cmd
}

// printGroup prints a group's id, direction, pane sizes and, optionally, a
// drawing of it.
func (c *CLI) printGroup(g *group.Group, draw bool) {
	fmt.Fprintln(c.out, StyleTitle.Render(g.ID())+" "+StyleDim.Render(string(g.Direction())))

	l := g.Layout()
	for i, name := range paneNames(g) {
		printKeyValue(c.out, name, render.FormatSize(l[i]))
	}

	if draw {
		fmt.Fprintln(c.out, render.Group(render.ViewOf(g), render.Options{
			Width:         c.Config.Render.Width,
			Height:        c.Config.Render.Height,
			ActiveDivider: -1,
			ShowSizes:     true,
		}))
	}
}
