package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/input"
	"github.com/matzehuels/splitpane/pkg/render"
)

var (
	playHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	playStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// playCommand opens an interactive view of one group.
func (c *CLI) playCommand() *cobra.Command {
	var (
		groupID string
		rtl     bool
	)

	cmd := &cobra.Command{
		Use:   "play [manifest.toml]",
		Short: "Resize a group interactively in the terminal",
		Long: `Resize a group interactively in the terminal.

Keys:
  tab, f6           focus the next divider (shift to go back)
  arrows            move the focused divider (shift moves all the way)
  home, end         move the focused divider to its limit
  c, e              collapse or expand the pane before the divider
  mouse             drag a divider
  q                 quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, err := c.loadGroup(logger, args[0], groupID)
			if err != nil {
				return err
			}

			m := NewPlayModel(g, c.Config.Keyboard.ShiftStep)
			m.Width, m.Height = c.Config.Render.Width, c.Config.Render.Height
			m.RTL = rtl

			final, err := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(PlayModel); ok {
				printInfo(c.out, "final layout of %s", StyleTitle.Render(g.ID()))
				printDetail(c.out, "%s", pm.Group.Layout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "group id (default: first group)")
	cmd.Flags().BoolVar(&rtl, "rtl", false, "draw horizontal groups right to left")

	return cmd
}

// =============================================================================
// PlayModel - Interactive divider resizing
// =============================================================================

// playHeaderLines is the number of lines drawn above the group.
const playHeaderLines = 1

// PlayModel is the bubbletea model for resizing one group.
type PlayModel struct {
	Group     *group.Group
	Active    int
	Width     int
	Height    int
	ShiftStep float64
	RTL       bool
	Status    string

	// Cursor is the pointer shape of the drag in progress, if any.
	Cursor input.Cursor

	drag *playDrag
}

// playDrag is a mouse drag of one divider.
type playDrag struct {
	origin  int
	tracker *input.DragTracker
}

// NewPlayModel creates a model focused on the first divider of g.
func NewPlayModel(g *group.Group, shiftStep float64) PlayModel {
	return PlayModel{
		Group:     g,
		Width:     80,
		Height:    10,
		ShiftStep: shiftStep,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "f6":
			m.Active = input.NextHandle(m.Active, m.dividers(), false)
		case "shift+tab", "shift+f6":
			m.Active = input.NextHandle(m.Active, m.dividers(), true)
		case "c":
			m.collapse(true)
		case "e":
			m.collapse(false)
		default:
			if ev, ok := keyEvent(key); ok {
				m.resize(ev)
			}
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = max(msg.Height-4, 3)
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Group.ID()))
	b.WriteString("  ")
	b.WriteString(playHelpStyle.Render("tab focus  arrows move  home/end limit  c/e collapse/expand  drag mouse  q quit"))
	b.WriteString("\n")

	b.WriteString(render.Group(render.ViewOf(m.Group), m.renderOptions()))
	b.WriteString("\n")

	b.WriteString(formatLayout(m.Group.Layout()))
	if m.Cursor != "" {
		b.WriteString("  ")
		b.WriteString(playStatusStyle.Render("drag " + string(m.Cursor)))
	}
	if m.Status != "" {
		b.WriteString("  ")
		b.WriteString(playStatusStyle.Render(m.Status))
	}
	return b.String()
}

func (m PlayModel) renderOptions() render.Options {
	return render.Options{
		Width:         m.Width,
		Height:        m.Height,
		ActiveDivider: m.Active,
		ShowSizes:     true,
		RTL:           m.RTL,
	}
}

func (m PlayModel) dividers() int {
	return max(len(m.Group.Panes())-1, 0)
}

func (m *PlayModel) resize(ev input.KeyEvent) {
	if m.dividers() == 0 {
		return
	}
	delta := input.KeyboardDelta(ev, m.Group.Direction(), m.Group.KeyboardStep(), m.ShiftStep)
	if delta == 0 {
		return
	}
	_, changed, err := m.Group.ResizeByDelta(m.Active, delta, input.TriggerFor(input.EventKey))
	switch {
	case err != nil:
		m.Status = errors.UserMessage(err)
	case !changed:
		m.Status = fmt.Sprintf("divider %d is at its limit", m.Active)
	default:
		m.Status = ""
	}
}

func (m *PlayModel) collapse(collapse bool) {
	panes := m.Group.Panes()
	if m.Active >= len(panes) {
		return
	}
	id := panes[m.Active].ID

	var (
		changed bool
		err     error
	)
	if collapse {
		changed, err = m.Group.Collapse(id)
	} else {
		changed, err = m.Group.Expand(id)
	}
	switch {
	case err != nil:
		m.Status = errors.UserMessage(err)
	case !changed && collapse:
		m.Status = fmt.Sprintf("%s cannot collapse", id)
	case !changed:
		m.Status = fmt.Sprintf("%s is already expanded", id)
	default:
		m.Status = ""
	}
}

// mouse starts, moves and ends divider drags. Positions are measured along
// the group's axis in cells from the start of the drawing.
func (m *PlayModel) mouse(msg tea.MouseMsg) {
	dir := m.Group.Direction()
	pos, across := msg.X, msg.Y-playHeaderLines
	crossSize := m.Height
	if dir == group.Vertical {
		pos, across = across, msg.X
		crossSize = m.Width
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || across < 0 || across >= crossSize {
			return
		}
		divider, ok := render.DividerAt(render.ViewOf(m.Group), m.renderOptions(), pos)
		if !ok {
			return
		}
		if err := m.Group.StartDrag(divider); err != nil {
			m.Status = errors.UserMessage(err)
			return
		}
		m.Active = divider
		m.drag = &playDrag{origin: pos, tracker: input.NewDragTracker(dir)}
		m.Cursor = input.CursorFor(dir, 0, true)
		m.Status = ""

	case tea.MouseActionMotion:
		if m.drag == nil {
			return
		}
		extent := render.Extent(render.ViewOf(m.Group), m.renderOptions())
		delta := input.DragDelta(float64(m.drag.origin), float64(pos), float64(extent))
		delta = input.ApplyDirectionality(delta, dir, m.RTL)
		_, changed, err := m.Group.DragTo(delta)
		if err != nil {
			m.Status = errors.UserMessage(err)
			return
		}
		if cursor, ok := m.drag.tracker.Update(delta, changed); ok {
			m.Cursor = cursor
		}

	case tea.MouseActionRelease:
		if m.drag == nil {
			return
		}
		m.Group.StopDrag()
		m.drag = nil
		m.Cursor = ""
	}
}

// keyEvent maps a bubbletea key name onto a divider key.
func keyEvent(key string) (input.KeyEvent, bool) {
	shift := strings.HasPrefix(key, "shift+")
	key = strings.TrimPrefix(key, "shift+")

	var k input.Key
	switch key {
	case "left":
		k = input.KeyArrowLeft
	case "right":
		k = input.KeyArrowRight
	case "up":
		k = input.KeyArrowUp
	case "down":
		k = input.KeyArrowDown
	case "home":
		k = input.KeyHome
	case "end":
		k = input.KeyEnd
	default:
		return input.KeyEvent{}, false
	}
	return input.KeyEvent{Key: k, Shift: shift}, true
}
