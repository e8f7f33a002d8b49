package group

import (
	"time"

	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/layout"
	"github.com/matzehuels/splitpane/pkg/observability"
)

// Collapse shrinks pane id to its collapsed size, remembering its current
// size for Expand. It is a no-op for non-collapsible or already collapsed
// panes, and reports whether the layout changed.
func (g *Group) Collapse(id string) (bool, error) {
	g.mu.Lock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		g.mu.Unlock()
		return false, err
	}
	c := g.panes[i].Constraints
	current := g.cell.Get()
	size := current[i]
	if !c.Collapsible || layout.Equal(size, c.CollapsedSize) || len(g.panes) < 2 {
		g.mu.Unlock()
		return false, nil
	}
	changed, pub, err := g.resizePane(current, i, c.CollapsedSize)
	if changed {
		g.sizeBeforeCollapse[id] = size
	}
	g.mu.Unlock()
	if err != nil {
		return false, err
	}
	pub.publish()

	if changed {
		g.logger.Debug("pane collapsed", "pane", id, "from", size)
		observability.Group().OnCollapse(g.id, id, true)
	}
	return changed, nil
}

// Expand restores a collapsed pane to the size it had before Collapse, or to
// its minimum size when that is larger or unknown. It is a no-op unless the
// pane is collapsible and currently collapsed.
func (g *Group) Expand(id string) (bool, error) {
	g.mu.Lock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		g.mu.Unlock()
		return false, err
	}
	c := g.panes[i].Constraints
	current := g.cell.Get()
	if !c.Collapsible || !layout.Equal(current[i], c.CollapsedSize) || len(g.panes) < 2 {
		g.mu.Unlock()
		return false, nil
	}
	target := c.MinSize
	if prev, ok := g.sizeBeforeCollapse[id]; ok && prev >= c.MinSize {
		target = prev
	}

	changed, pub, err := g.resizePane(current, i, target)
	g.mu.Unlock()
	if err != nil {
		return false, err
	}
	pub.publish()

	if changed {
		g.logger.Debug("pane expanded", "pane", id, "to", target)
		observability.Group().OnCollapse(g.id, id, false)
	}
	return changed, nil
}

// Resize moves the divider next to pane id so that the pane gets as close
// to size as its neighbours allow.
func (g *Group) Resize(id string, size float64) (bool, error) {
	if err := errors.ValidateFinite("size", size); err != nil {
		return false, err
	}
	start := time.Now()

	g.mu.Lock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		g.mu.Unlock()
		return false, err
	}
	if len(g.panes) < 2 {
		g.mu.Unlock()
		return false, nil
	}
	current := g.cell.Get()
	delta := size - current[i]
	changed, pub, err := g.resizePane(current, i, size)
	g.mu.Unlock()
	if err != nil {
		return false, err
	}
	pub.publish()

	observability.Group().OnResize(g.id, layout.TriggerImperativeAPI.String(), delta, changed, time.Since(start))
	return changed, nil
}

// resizePane runs an imperative move that takes pane i from its current
// size toward target. The last pane is resized through the divider before
// it, so the delta is negated. g.mu must be held.
func (g *Group) resizePane(current layout.Layout, i int, target float64) (bool, publication, error) {
	p, err := layout.PanePivot(i, len(g.panes))
	if err != nil {
		return false, publication{}, err
	}
	delta := target - current[i]
	if i == len(g.panes)-1 {
		delta = -delta
	}
	_, changed, pub, err := g.move(current, p, delta, layout.TriggerImperativeAPI)
	return changed, pub, err
}

// IsCollapsed reports whether pane id sits at its collapsed size.
func (g *Group) IsCollapsed(id string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		return false, err
	}
	return layout.IsCollapsed(g.panes[i].Constraints, g.cell.Get()[i]), nil
}

// IsExpanded reports whether pane id is not collapsed.
func (g *Group) IsExpanded(id string) (bool, error) {
	collapsed, err := g.IsCollapsed(id)
	if err != nil {
		return false, err
	}
	return !collapsed, nil
}

// PaneSize returns the current size of pane id.
func (g *Group) PaneSize(id string) (float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i, err := g.mustPaneIndex(id)
	if err != nil {
		return 0, err
	}
	return g.cell.Get()[i], nil
}
