package layout

import "math"

// ClampSize returns the legal size nearest to size for a pane with
// constraints c.
//
// Sizes below MinSize snap up to MinSize, unless the pane is collapsible: then
// anything below the halfway point between CollapsedSize and MinSize snaps
// down to CollapsedSize instead. The result is capped at MaxSize and rounded
// to [Precision] fraction digits. ClampSize is idempotent.
func ClampSize(c Constraints, size float64) float64 {
	next := size
	if Compare(next, c.MinSize) < 0 {
		next = snapBelowMin(c, next)
	}
	next = math.Min(c.MaxSize, next)
	return roundTo(next, Precision)
}

func snapBelowMin(c Constraints, size float64) float64 {
	if !c.Collapsible {
		return c.MinSize
	}
	halfway := (c.CollapsedSize + c.MinSize) / 2
	if Compare(size, halfway) < 0 {
		return c.CollapsedSize
	}
	return c.MinSize
}

// IsLegalSize reports whether size is a value ClampSize could return for c:
// within [MinSize, MaxSize], or at CollapsedSize for a collapsible pane.
func IsLegalSize(c Constraints, size float64) bool {
	if c.Collapsible && Equal(size, c.CollapsedSize) {
		return true
	}
	return Compare(size, c.MinSize) >= 0 && Compare(size, c.MaxSize) <= 0
}

// IsCollapsed reports whether a pane of size is collapsed under c.
func IsCollapsed(c Constraints, size float64) bool {
	return c.Collapsible && Equal(size, c.CollapsedSize)
}
