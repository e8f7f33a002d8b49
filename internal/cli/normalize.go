package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/layout"
)

// normalizeCommand repairs a candidate layout against a group's constraints.
func (c *CLI) normalizeCommand() *cobra.Command {
	var manifestPath, groupID string

	cmd := &cobra.Command{
		Use:   "normalize --constraints manifest.toml [--group id] size...",
		Short: "Repair a candidate layout so it respects a group's constraints",
		Long: `Repair a candidate layout so it respects a group's constraints.

Sizes that do not add up to 100 are rescaled proportionally first. Each size
is then clamped to its pane's constraints and the space released by clamping
is handed to the panes that can still take it, in order.`,
		Example: `  splitpane normalize --constraints examples/editor.toml --group editor 10 10 10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, err := parseSizes(args)
			if err != nil {
				return err
			}

			g, err := c.loadGroup(loggerFromContext(cmd.Context()), manifestPath, groupID)
			if err != nil {
				return err
			}
			cs := g.Constraints()

			next, err := layout.NormalizeLayout(candidate, cs)
			if err != nil {
				return err
			}

			printInfo(c.out, "normalized %s", StyleTitle.Render(g.ID()))
			printTransition(c.out, candidate, next)
			if err := layout.CheckLayout(next, cs); err != nil {
				printWarning(c.out, "%s", errors.UserMessage(err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "constraints", "", "manifest declaring the group (required)")
	cmd.Flags().StringVar(&groupID, "group", "", "group id (default: first group)")
	_ = cmd.MarkFlagRequired("constraints")

	return cmd
}

// parseSizes parses percentages such as "25", "25.5" or "25%".
func parseSizes(args []string) (layout.Layout, error) {
	out := make(layout.Layout, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(arg), "%"), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "size %d", i)
		}
		out[i] = v
	}
	return out, nil
}
