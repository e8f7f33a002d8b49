package layout

import (
	"math"

	"github.com/matzehuels/splitpane/pkg/errors"
)

// Request describes one divider move.
type Request struct {
	// Delta is the requested transfer: positive grows the pane before the
	// divider and shrinks the one after it.
	Delta float64
	// Layout is the current, valid layout.
	Layout Layout
	// Constraints has one entry per pane.
	Constraints []Constraints
	// Pivot is the divider being moved.
	Pivot Pivot
	// Trigger selects the keyboard pre-snap behaviour.
	Trigger Trigger
}

func (r Request) validate() error {
	if len(r.Layout) != len(r.Constraints) {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has %d entries for %d panes", len(r.Layout), len(r.Constraints))
	}
	if err := r.Pivot.Validate(len(r.Layout)); err != nil {
		return err
	}
	return errors.ValidateFinite("delta", r.Delta)
}

// AdjustLayoutByDelta moves the divider at req.Pivot by req.Delta and returns
// the resulting layout.
//
// Space is taken from the pane on the shrinking side of the divider first,
// then from panes further out in the same direction once it reaches its
// limit. The pane on the growing side receives what was taken; anything it
// cannot hold is passed further out on its side. Every size stays legal and
// the total stays 100.
//
// When the move cannot be made at all, or when clamping would break
// conservation, req.Layout itself is returned. The input is never modified.
func AdjustLayoutByDelta(req Request) (Layout, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	prev := req.Layout
	delta := req.Delta
	if Equal(delta, 0) {
		return prev, nil
	}

	if req.Trigger == TriggerKeyboard {
		delta = keyboardSnap(delta, prev, req.Constraints, req.Pivot)
	}
	delta = limitToRoom(delta, prev, req.Constraints, req.Pivot)

	next := prev.Clone()
	applied := shrink(next, prev, req.Constraints, req.Pivot, delta)
	if Equal(applied, 0) {
		return prev, nil
	}
	grow(next, prev, req.Constraints, req.Pivot, delta, applied)

	if !Equal(next.Sum(), Total) {
		return prev, nil
	}
	return next, nil
}

// keyboardSnap widens a key step so a collapsible pivot pane moves between
// its two stable states in one press: collapsed straight to minimum when it
// grows, minimum straight to collapsed when it shrinks.
func keyboardSnap(delta float64, prev Layout, cs []Constraints, p Pivot) float64 {
	growing := p.Before
	if delta < 0 {
		growing = p.After
	}
	if c := cs[growing]; c.Collapsible && Equal(prev[growing], c.CollapsedSize) {
		if gap := c.MinSize - prev[growing]; Compare(gap, math.Abs(delta)) > 0 {
			delta = math.Copysign(gap, delta)
		}
	}

	shrinking := p.After
	if delta < 0 {
		shrinking = p.Before
	}
	if c := cs[shrinking]; c.Collapsible && Equal(prev[shrinking], c.MinSize) {
		if gap := prev[shrinking] - c.CollapsedSize; Compare(gap, math.Abs(delta)) > 0 {
			delta = math.Copysign(gap, delta)
		}
	}
	return delta
}

// limitToRoom caps |delta| at the space the growing side can still take:
// the sum of headroom below MaxSize from the growing pivot to the end of the
// group on that side.
func limitToRoom(delta float64, prev Layout, cs []Constraints, p Pivot) float64 {
	index, step := p.Before, -1
	if delta < 0 {
		index, step = p.After, 1
	}

	var room float64
	for ; index >= 0 && index < len(cs); index += step {
		room += ClampSize(cs[index], Total) - prev[index]
	}

	magnitude := math.Min(math.Abs(delta), math.Abs(room))
	if delta < 0 {
		return -magnitude
	}
	return magnitude
}

// shrink walks outward from the shrinking pivot, taking up to |delta| from
// each pane in turn, and returns the total taken. next is updated in place.
func shrink(next, prev Layout, cs []Constraints, p Pivot, delta float64) float64 {
	index, step := p.After, 1
	if delta < 0 {
		index, step = p.Before, -1
	}

	target := math.Abs(delta)
	var applied float64
	for ; index >= 0 && index < len(cs); index += step {
		remaining := target - math.Abs(applied)
		size := prev[index]
		safe := ClampSize(cs[index], size-remaining)
		if Equal(size, safe) {
			continue
		}
		applied += size - safe
		next[index] = safe
		if roundSignificant(applied, progressDigits) >= roundSignificant(target, progressDigits) {
			break
		}
	}
	return applied
}

// grow gives applied to the growing pivot. Whatever its clamp rejects is
// offered once to the panes further out on the same side.
func grow(next, prev Layout, cs []Constraints, p Pivot, delta, applied float64) {
	pivot, step := p.Before, -1
	if delta < 0 {
		pivot, step = p.After, 1
	}

	unsafe := prev[pivot] + applied
	safe := ClampSize(cs[pivot], unsafe)
	next[pivot] = safe
	if Equal(safe, unsafe) {
		return
	}

	remainder := unsafe - safe
	for index := pivot; index >= 0 && index < len(cs); index += step {
		size := next[index]
		safe := ClampSize(cs[index], size+remainder)
		if !Equal(size, safe) {
			remainder -= safe - size
			next[index] = safe
		}
		if Equal(remainder, 0) {
			break
		}
	}
}
