// Package render draws pane groups for the terminal.
//
// # Overview
//
// Terminals have whole character cells, not percentages. [Cells] turns a
// layout into integer cell counts that always add up to the available
// space, and [Group] uses it to draw each pane as a block with its id and
// size, separated by divider lines.
//
//	view := render.ViewOf(g)
//	fmt.Println(render.Group(view, render.Options{Width: 80, Height: 10, ActiveDivider: 0}))
//
// Styling uses lipgloss, so colors degrade automatically when output is not
// a terminal.
package render
