package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/layout"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorPane      = lipgloss.Color("24")  // Deep blue - pane fill
	colorPaneAlt   = lipgloss.Color("30")  // Teal - alternate pane fill
	colorCollapsed = lipgloss.Color("238") // Dark gray - collapsed pane
	colorDivider   = lipgloss.Color("240") // Dim gray - idle divider
	colorActive    = lipgloss.Color("220") // Amber - focused divider
	colorLabel     = lipgloss.Color("255") // Bright white - labels
)

var (
	stylePane          = lipgloss.NewStyle().Foreground(colorLabel).Align(lipgloss.Center, lipgloss.Center)
	styleDivider       = lipgloss.NewStyle().Foreground(colorDivider)
	styleDividerActive = lipgloss.NewStyle().Foreground(colorActive).Bold(true)
)

// =============================================================================
// Views
// =============================================================================

// Pane is one pane as drawn.
type Pane struct {
	ID        string
	Size      float64
	Collapsed bool
}

// View is a snapshot of a group for drawing.
type View struct {
	ID        string
	Direction group.Direction
	Panes     []Pane
}

// ViewOf snapshots g.
func ViewOf(g *group.Group) View {
	panes := g.Panes()
	l := g.Layout()
	v := View{ID: g.ID(), Direction: g.Direction(), Panes: make([]Pane, len(panes))}
	for i, p := range panes {
		var size float64
		if i < len(l) {
			size = l[i]
		}
		v.Panes[i] = Pane{ID: p.ID, Size: size, Collapsed: layout.IsCollapsed(p.Constraints, size)}
	}
	return v
}

// Layout returns the sizes of the view's panes.
func (v View) Layout() layout.Layout {
	l := make(layout.Layout, len(v.Panes))
	for i, p := range v.Panes {
		l[i] = p.Size
	}
	return l
}

// Options control drawing.
type Options struct {
	// Width and Height are the drawing area in cells.
	Width  int
	Height int
	// ActiveDivider is highlighted. Negative means none.
	ActiveDivider int
	// ShowSizes appends each pane's percentage to its label.
	ShowSizes bool
	// RTL draws horizontal groups right to left.
	RTL bool
}

// =============================================================================
// Drawing
// =============================================================================

// Group draws v into a Width x Height block. Each divider takes one cell
// along the group's axis; panes share the rest.
func Group(v View, opts Options) string {
	if len(v.Panes) == 0 || opts.Width <= 0 || opts.Height <= 0 {
		return ""
	}

	vertical := v.Direction == group.Vertical
	cross := opts.Height
	if vertical {
		cross = opts.Width
	}
	cells := Cells(v.Layout(), Extent(v, opts))

	var parts []string
	for i, p := range v.Panes {
		if i > 0 {
			parts = append(parts, divider(vertical, cross, i-1 == opts.ActiveDivider))
		}
		if cells[i] == 0 {
			continue
		}
		w, h := cells[i], cross
		if vertical {
			w, h = cross, cells[i]
		}
		parts = append(parts, pane(p, i, w, h, opts.ShowSizes))
	}

	if vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	if opts.RTL {
		slices.Reverse(parts)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Extent returns the number of cells the panes of v share along the group's
// axis, after one cell per divider.
func Extent(v View, opts Options) int {
	extent := opts.Width
	if v.Direction == group.Vertical {
		extent = opts.Height
	}
	return max(extent-max(len(v.Panes)-1, 0), 0)
}

// DividerAt returns the divider drawn at offset pos along the group's axis,
// counted in cells from the top-left corner of the drawing.
func DividerAt(v View, opts Options, pos int) (int, bool) {
	if len(v.Panes) < 2 {
		return 0, false
	}
	if opts.RTL && v.Direction != group.Vertical {
		pos = opts.Width - 1 - pos
	}
	cells := Cells(v.Layout(), Extent(v, opts))
	offset := 0
	for i := 0; i < len(v.Panes)-1; i++ {
		offset += cells[i]
		if pos == offset {
			return i, true
		}
		offset++
	}
	return 0, false
}

func pane(p Pane, index, w, h int, showSizes bool) string {
	bg := colorPane
	switch {
	case p.Collapsed:
		bg = colorCollapsed
	case index%2 == 1:
		bg = colorPaneAlt
	}

	label := p.ID
	if showSizes {
		label = fmt.Sprintf("%s %s", p.ID, FormatSize(p.Size))
	}
	return stylePane.
		Background(bg).
		Width(w).MaxWidth(w).
		Height(h).MaxHeight(h).
		Render(label)
}

func divider(vertical bool, length int, active bool) string {
	style := styleDivider
	if active {
		style = styleDividerActive
	}
	if vertical {
		return style.Render(strings.Repeat("─", length))
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("│\n", length), "\n"))
}

// FormatSize formats a percentage with at most one decimal.
func FormatSize(size float64) string {
	return fmt.Sprintf("%s%%", strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", size), "0"), "."))
}
