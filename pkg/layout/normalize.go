package layout

import (
	"math"

	"github.com/matzehuels/splitpane/pkg/errors"
)

// DefaultLayout builds the initial layout for a pane set.
//
// Panes with a DefaultSize get exactly that. Every other pane, in order,
// claims an equal share of whatever is still unassigned at the time it is
// visited. With no defaults at all this is an exact equal split. The result
// is not clamped; pass it through [NormalizeLayout].
func DefaultLayout(cs []Constraints) Layout {
	l := make(Layout, len(cs))
	assigned := 0
	remaining := Total

	for i, c := range cs {
		if c.DefaultSize == nil {
			continue
		}
		l[i] = *c.DefaultSize
		remaining -= *c.DefaultSize
		assigned++
	}

	for i, c := range cs {
		if c.DefaultSize != nil {
			continue
		}
		size := remaining / float64(len(cs)-assigned)
		l[i] = size
		remaining -= size
		assigned++
	}
	return l
}

// NormalizeLayout repairs candidate into a layout that respects cs.
//
// A candidate whose total is not 100 is first rescaled proportionally. Each
// entry is then clamped, and the slack released or consumed by clamping is
// offered once to the entries in order. Slack that no entry can absorb is
// dropped. A candidate with no positive total is replaced by
// DefaultLayout(cs).
//
// The only error is a contract violation: a length mismatch or a non-finite
// entry. candidate is never modified.
func NormalizeLayout(candidate Layout, cs []Constraints) (Layout, error) {
	if len(candidate) != len(cs) {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "invalid %d pane layout: %s", len(cs), candidate)
	}
	for i, size := range candidate {
		if math.IsNaN(size) || math.IsInf(size, 0) {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "pane %d has non-finite size %v", i, size)
		}
	}

	next := candidate.Clone()
	if total := next.Sum(); !Equal(total, Total) {
		if total <= 0 {
			next = DefaultLayout(cs)
		} else {
			for i := range next {
				next[i] = Total / total * next[i]
			}
		}
	}

	var slack float64
	for i, unsafe := range next {
		safe := ClampSize(cs[i], unsafe)
		if unsafe != safe {
			slack += unsafe - safe
			next[i] = safe
		}
	}

	if !Equal(slack, 0) {
		for i, prev := range next {
			safe := ClampSize(cs[i], prev+slack)
			if prev == safe {
				continue
			}
			slack -= safe - prev
			next[i] = safe
			if Equal(slack, 0) {
				break
			}
		}
	}
	return next, nil
}

// CheckLayout reports whether l is a valid layout for cs: same length,
// every size legal, and a total of 100.
func CheckLayout(l Layout, cs []Constraints) error {
	if len(l) != len(cs) {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has %d entries for %d panes", len(l), len(cs))
	}
	for i, size := range l {
		if !IsLegalSize(cs[i], size) {
			return errors.New(errors.ErrCodeInvalidLayout, "pane %d size %g violates its constraints", i, size)
		}
	}
	if total := l.Sum(); !Equal(total, Total) {
		return errors.New(errors.ErrCodeInvalidLayout, "layout sums to %g, want %g", total, Total)
	}
	return nil
}
