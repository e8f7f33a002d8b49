package group

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/layout"
	"github.com/matzehuels/splitpane/pkg/observability"
)

// PaneOptions describe a pane being registered with a group.
type PaneOptions struct {
	ID          string
	Order       int
	Constraints layout.Constraints
}

// Pane is a registered pane.
type Pane struct {
	ID          string
	Order       int
	Constraints layout.Constraints
}

// Group is one ordered set of panes sharing 100% of an axis.
type Group struct {
	id           string
	handle       Handle
	direction    Direction
	keyboardStep float64
	logger       *log.Logger
	cell         Cell

	mu                 sync.Mutex
	panes              []Pane
	sizeBeforeCollapse map[string]float64
	drag               *dragState
}

type dragState struct {
	divider int
	pivot   layout.Pivot
	initial layout.Layout
}

func newGroup(h Handle, opts Options, logger *log.Logger) *Group {
	return &Group{
		id:                 opts.ID,
		handle:             h,
		direction:          opts.Direction,
		keyboardStep:       opts.KeyboardStep,
		logger:             logger,
		sizeBeforeCollapse: make(map[string]float64),
	}
}

// ID returns the group id.
func (g *Group) ID() string { return g.id }

// Handle returns the registry handle of the group.
func (g *Group) Handle() Handle { return g.handle }

// Direction returns the axis of the group.
func (g *Group) Direction() Direction { return g.direction }

// KeyboardStep returns the percentage moved by one arrow key press.
func (g *Group) KeyboardStep() float64 { return g.keyboardStep }

// Layout returns a copy of the current layout.
func (g *Group) Layout() layout.Layout { return g.cell.Get() }

// Subscribe registers fn for layout changes. See [Cell.Subscribe].
func (g *Group) Subscribe(fn func(layout.Layout)) (unsubscribe func()) {
	return g.cell.Subscribe(fn)
}

// Panes returns the registered panes in layout order.
func (g *Group) Panes() []Pane {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Pane, len(g.panes))
	copy(out, g.panes)
	return out
}

// Constraints returns the constraints of every pane in layout order.
func (g *Group) Constraints() []layout.Constraints {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.constraints()
}

func (g *Group) constraints() []layout.Constraints {
	cs := make([]layout.Constraints, len(g.panes))
	for i, p := range g.panes {
		cs[i] = p.Constraints
	}
	return cs
}

// PaneIndex returns the position of pane id, or -1.
func (g *Group) PaneIndex(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paneIndex(id)
}

func (g *Group) paneIndex(id string) int {
	for i, p := range g.panes {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (g *Group) mustPaneIndex(id string) (int, error) {
	i := g.paneIndex(id)
	if i < 0 {
		return -1, errors.New(errors.ErrCodePaneNotFound, "pane %q is not registered with group %q", id, g.id)
	}
	return i, nil
}

// RegisterPane adds a pane, keeping panes sorted by Order. Panes with equal
// Order keep their registration order. The layout is recomputed from the
// panes' default sizes.
func (g *Group) RegisterPane(opts PaneOptions) error {
	if err := errors.ValidateID("pane", opts.ID); err != nil {
		return err
	}
	if err := opts.Constraints.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConstraints, err, "pane %q", opts.ID)
	}

	g.mu.Lock()
	if g.paneIndex(opts.ID) >= 0 {
		g.mu.Unlock()
		return errors.New(errors.ErrCodeDuplicateID, "pane %q already registered with group %q", opts.ID, g.id)
	}
	at := sort.Search(len(g.panes), func(i int) bool { return g.panes[i].Order > opts.Order })
	g.panes = append(g.panes, Pane{})
	copy(g.panes[at+1:], g.panes[at:])
	g.panes[at] = Pane(opts)
	count := len(g.panes)
	pub, err := g.relayout()
	g.mu.Unlock()
	if err != nil {
		return err
	}
	pub.publish()

	g.logger.Debug("pane registered", "pane", opts.ID, "index", at, "panes", count)
	observability.Group().OnPaneRegistered(g.id, opts.ID, count)
	return nil
}

// UnregisterPane removes a pane and recomputes the layout. Unknown ids are
// ignored.
func (g *Group) UnregisterPane(id string) error {
	g.mu.Lock()
	i := g.paneIndex(id)
	if i < 0 {
		g.mu.Unlock()
		return nil
	}
	g.panes = append(g.panes[:i], g.panes[i+1:]...)
	delete(g.sizeBeforeCollapse, id)
	g.drag = nil
	count := len(g.panes)
	pub, err := g.relayout()
	g.mu.Unlock()
	if err != nil {
		return err
	}
	pub.publish()

	g.logger.Debug("pane unregistered", "pane", id, "panes", count)
	observability.Group().OnPaneUnregistered(g.id, id, count)
	return nil
}

// relayout replaces the layout with the normalized default layout of the
// current panes. g.mu must be held.
func (g *Group) relayout() (publication, error) {
	cs := g.constraints()
	next, err := layout.NormalizeLayout(layout.DefaultLayout(cs), cs)
	if err != nil {
		return publication{}, err
	}
	pub, _ := g.cell.stage(next)
	return pub, nil
}

// SetLayout normalizes candidate against the panes' constraints and commits
// it. It returns the committed layout and whether it differs from the
// previous one.
func (g *Group) SetLayout(candidate layout.Layout) (layout.Layout, bool, error) {
	g.mu.Lock()
	next, err := layout.NormalizeLayout(candidate, g.constraints())
	if err != nil {
		g.mu.Unlock()
		return nil, false, err
	}
	pub, changed := g.cell.stage(next)
	g.mu.Unlock()
	pub.publish()
	return next, changed, nil
}

// Pivot returns the pivot of divider i, which sits between panes i and i+1.
func (g *Group) Pivot(divider int) (layout.Pivot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pivot(divider)
}

func (g *Group) pivot(divider int) (layout.Pivot, error) {
	p := layout.DividerPivot(divider)
	if err := p.Validate(len(g.panes)); err != nil {
		return layout.Pivot{}, err
	}
	return p, nil
}

// PanePivot returns the divider used to resize pane id: the one after it,
// or the one before it for the last pane.
func (g *Group) PanePivot(id string) (layout.Pivot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		return layout.Pivot{}, err
	}
	return layout.PanePivot(i, len(g.panes))
}

// DividerRanges returns the reachable range of every divider.
func (g *Group) DividerRanges() ([]layout.Range, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return layout.DividerRanges(g.cell.Get(), g.constraints())
}

// ResizeByDelta moves divider by delta and commits the result. It returns
// the new layout and whether anything moved.
func (g *Group) ResizeByDelta(divider int, delta float64, trigger layout.Trigger) (layout.Layout, bool, error) {
	start := time.Now()

	g.mu.Lock()
	p, err := g.pivot(divider)
	if err != nil {
		g.mu.Unlock()
		return nil, false, err
	}
	next, changed, pub, err := g.move(g.cell.Get(), p, delta, trigger)
	g.mu.Unlock()
	if err != nil {
		return nil, false, err
	}
	pub.publish()

	g.logger.Debug("resize", "divider", divider, "delta", delta, "trigger", trigger, "changed", changed, "layout", next)
	observability.Group().OnResize(g.id, trigger.String(), delta, changed, time.Since(start))
	return next, changed, nil
}

// move runs the engine from base and stages the result. g.mu must be held.
func (g *Group) move(base layout.Layout, p layout.Pivot, delta float64, trigger layout.Trigger) (layout.Layout, bool, publication, error) {
	next, err := layout.AdjustLayoutByDelta(layout.Request{
		Delta:       delta,
		Layout:      base,
		Constraints: g.constraints(),
		Pivot:       p,
		Trigger:     trigger,
	})
	if err != nil {
		return nil, false, publication{}, err
	}
	pub, changed := g.cell.stage(next)
	return next.Clone(), changed, pub, nil
}

// StartDrag begins a pointer drag of divider. Later DragTo calls are
// measured from the layout at this moment. A drag already in progress is
// replaced.
func (g *Group) StartDrag(divider int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.pivot(divider)
	if err != nil {
		return err
	}
	g.drag = &dragState{divider: divider, pivot: p, initial: g.cell.Get()}
	g.logger.Debug("drag started", "divider", divider)
	return nil
}

// DragTo moves the dragged divider to deltaFromStart percent away from
// where the drag began.
func (g *Group) DragTo(deltaFromStart float64) (layout.Layout, bool, error) {
	start := time.Now()

	g.mu.Lock()
	if g.drag == nil {
		g.mu.Unlock()
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "no drag in progress in group %q", g.id)
	}
	d := g.drag
	next, changed, pub, err := g.move(d.initial, d.pivot, deltaFromStart, layout.TriggerMouseOrTouch)
	g.mu.Unlock()
	if err != nil {
		return nil, false, err
	}
	pub.publish()

	observability.Group().OnResize(g.id, layout.TriggerMouseOrTouch.String(), deltaFromStart, changed, time.Since(start))
	return next, changed, nil
}

// StopDrag ends the current drag, if any.
func (g *Group) StopDrag() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.drag != nil {
		g.logger.Debug("drag stopped", "divider", g.drag.divider)
	}
	g.drag = nil
}

// Dragging returns the divider being dragged.
func (g *Group) Dragging() (divider int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.drag == nil {
		return 0, false
	}
	return g.drag.divider, true
}
