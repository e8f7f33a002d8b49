package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/layout"
)

func TestGroupHorizontal(t *testing.T) {
	v := View{
		ID:        "editor",
		Direction: group.Horizontal,
		Panes:     []Pane{{ID: "a", Size: 50}, {ID: "b", Size: 50}},
	}

	out := Group(v, Options{Width: 21, Height: 3, ActiveDivider: 0, ShowSizes: true})
	if w := lipgloss.Width(out); w != 21 {
		t.Errorf("width = %d, want 21", w)
	}
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
	if !strings.Contains(out, "a 50%") || !strings.Contains(out, "b 50%") {
		t.Errorf("labels missing from:\n%s", out)
	}
}

func TestGroupVertical(t *testing.T) {
	v := View{
		ID:        "terminal",
		Direction: group.Vertical,
		Panes:     []Pane{{ID: "code", Size: 50}, {ID: "shell", Size: 50}},
	}

	out := Group(v, Options{Width: 10, Height: 7, ActiveDivider: -1})
	if w := lipgloss.Width(out); w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
	if h := lipgloss.Height(out); h != 7 {
		t.Errorf("height = %d, want 7", h)
	}
	if !strings.Contains(out, "──────────") {
		t.Errorf("divider missing from:\n%s", out)
	}
}

func TestGroupZeroSizePane(t *testing.T) {
	v := View{
		Direction: group.Horizontal,
		Panes:     []Pane{{ID: "side", Size: 0, Collapsed: true}, {ID: "main", Size: 100}},
	}

	out := Group(v, Options{Width: 11, Height: 2, ActiveDivider: -1})
	if w := lipgloss.Width(out); w != 11 {
		t.Errorf("width = %d, want 11", w)
	}
	if strings.Contains(out, "side") {
		t.Errorf("zero-size pane should not be drawn:\n%s", out)
	}
}

func TestGroupEmpty(t *testing.T) {
	if out := Group(View{}, Options{Width: 10, Height: 10}); out != "" {
		t.Errorf("Group(empty) = %q, want empty", out)
	}
	v := View{Panes: []Pane{{ID: "a", Size: 100}}}
	if out := Group(v, Options{Width: 0, Height: 10}); out != "" {
		t.Errorf("Group(no width) = %q, want empty", out)
	}
}

func TestViewOf(t *testing.T) {
	reg := group.NewRegistry(log.New(io.Discard))
	g, err := reg.CreateGroup(group.Options{ID: "editor", Direction: group.Vertical})
	if err != nil {
		t.Fatal(err)
	}
	side := layout.Constraints{MinSize: 20, MaxSize: 100, CollapsedSize: 0, Collapsible: true}
	if err := g.RegisterPane(group.PaneOptions{ID: "side", Constraints: side}); err != nil {
		t.Fatal(err)
	}
	if err := g.RegisterPane(group.PaneOptions{ID: "main", Order: 1, Constraints: layout.DefaultConstraints()}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Collapse("side"); err != nil {
		t.Fatal(err)
	}

	v := ViewOf(g)
	if v.ID != "editor" || v.Direction != group.Vertical {
		t.Errorf("ViewOf() = %+v", v)
	}
	want := []Pane{{ID: "side", Size: 0, Collapsed: true}, {ID: "main", Size: 100}}
	for i, p := range v.Panes {
		if p != want[i] {
			t.Errorf("pane %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestGroupRTL(t *testing.T) {
	v := View{
		Direction: group.Horizontal,
		Panes:     []Pane{{ID: "a", Size: 50}, {ID: "b", Size: 50}},
	}

	out := Group(v, Options{Width: 21, Height: 3, ActiveDivider: -1, ShowSizes: true, RTL: true})
	if w := lipgloss.Width(out); w != 21 {
		t.Errorf("width = %d, want 21", w)
	}
	a, b := strings.Index(out, "a 50%"), strings.Index(out, "b 50%")
	if a < 0 || b < 0 || b > a {
		t.Errorf("want b drawn before a in:\n%s", out)
	}
}

func TestDividerAt(t *testing.T) {
	three := View{
		Direction: group.Horizontal,
		Panes:     []Pane{{ID: "a", Size: 20}, {ID: "b", Size: 60}, {ID: "c", Size: 20}},
	}
	stacked := View{
		Direction: group.Vertical,
		Panes:     []Pane{{ID: "top", Size: 50}, {ID: "bottom", Size: 50}},
	}
	single := View{Panes: []Pane{{ID: "only", Size: 100}}}

	wide := Options{Width: 102, Height: 5}
	wideRTL := Options{Width: 102, Height: 5, RTL: true}
	tall := Options{Width: 10, Height: 7}

	tests := []struct {
		name    string
		view    View
		opts    Options
		pos     int
		want    int
		wantHit bool
	}{
		{"first divider", three, wide, 20, 0, true},
		{"second divider", three, wide, 81, 1, true},
		{"inside a pane", three, wide, 50, 0, false},
		{"past the end", three, wide, 200, 0, false},
		{"rtl mirrors first", three, wideRTL, 81, 0, true},
		{"rtl mirrors second", three, wideRTL, 20, 1, true},
		{"vertical", stacked, tall, 3, 0, true},
		{"vertical miss", stacked, tall, 2, 0, false},
		{"single pane", single, wide, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := DividerAt(tt.view, tt.opts, tt.pos)
			if got != tt.want || hit != tt.wantHit {
				t.Errorf("DividerAt(%d) = %d, %v; want %d, %v", tt.pos, got, hit, tt.want, tt.wantHit)
			}
		})
	}
}

func TestExtent(t *testing.T) {
	v := View{Direction: group.Vertical, Panes: []Pane{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	if got := Extent(v, Options{Width: 40, Height: 12}); got != 10 {
		t.Errorf("Extent() = %d, want 10", got)
	}
	if got := Extent(View{}, Options{Width: 40}); got != 40 {
		t.Errorf("Extent(empty) = %d, want 40", got)
	}
}
