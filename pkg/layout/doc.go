// Package layout allocates a fixed 100-unit extent among adjacent panes.
//
// # Overview
//
// A pane group is an ordered sequence of panes separated by dividers. Each
// pane carries [Constraints] (minimum, maximum, and an optional collapsed
// size), and the group's current allocation is a [Layout]: one percentage per
// pane, summing to 100. This package is the pure, synchronous engine that
// creates layouts and moves dividers. It keeps no state between calls and
// never mutates its inputs.
//
// # Components
//
// Leaves first:
//
//   - Tolerance comparison ([AlmostEqual], [CompareWithTolerance],
//     [ArraysEqual]): every size comparison is made at a fixed decimal
//     precision ([Precision] digits) so repeated clamping cannot drift.
//   - Clamping ([ClampSize]): the nearest legal size for one pane. Collapsible
//     panes are bistable below their minimum: sizes under the halfway point
//     between collapsed and minimum snap to collapsed, the rest to minimum.
//   - Normalization ([DefaultLayout], [NormalizeLayout]): initial layouts
//     from default sizes, and repair of arbitrary candidate layouts.
//   - Redistribution ([AdjustLayoutByDelta]): moves one divider by a signed
//     delta, borrowing space from panes further out when the neighbours hit
//     their limits, and conserving the total.
//   - Divider ranges ([DividerRange]): the reachable size interval of the
//     pane before a divider.
//
// # Moving a Divider
//
//	next, err := layout.AdjustLayoutByDelta(layout.Request{
//	    Delta:       -36,
//	    Layout:      layout.Layout{50, 50},
//	    Constraints: []layout.Constraints{sidebar, layout.DefaultConstraints()},
//	    Pivot:       layout.Pivot{Before: 0, After: 1},
//	    Trigger:     layout.TriggerMouseOrTouch,
//	})
//
// A request that cannot be honored returns the input layout itself, not an
// error. Callers detect "nothing moved" with [ArraysEqual]. Errors are
// reserved for contract violations: mismatched lengths, pivots that are out
// of range or not adjacent, and non-finite deltas.
//
// # Triggers
//
// The [Trigger] only matters for keyboard steps. A key press next to a
// collapsible pane that sits exactly at its collapsed size (or exactly at its
// minimum) is widened so the pane lands on the other stable state instead of
// stopping in the dead zone between them.
//
// # Known Limitation
//
// Both [NormalizeLayout] and [AdjustLayoutByDelta] make a single extra pass to
// place slack that a clamp could not absorb. Leftover slack after that pass is
// dropped. For the normalizer this can leave a total other than 100 for
// pathological constraint sets; the redistribution engine instead falls back
// to the unchanged input layout through its final conservation check.
package layout
