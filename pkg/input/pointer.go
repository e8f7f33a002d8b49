package input

import "github.com/matzehuels/splitpane/pkg/group"

// DragDelta converts a pointer offset into a percentage of the group's
// extent. initial and current are positions along the group's axis and
// containerSize is the group's extent in the same unit.
func DragDelta(initial, current, containerSize float64) float64 {
	if containerSize <= 0 {
		return 0
	}
	return (current - initial) / containerSize * 100
}

// ApplyDirectionality negates delta for horizontal groups in right-to-left
// text, where the first pane sits on the right.
func ApplyDirectionality(delta float64, dir group.Direction, rtl bool) float64 {
	if rtl && dir != group.Vertical {
		return -delta
	}
	return delta
}

// Cursor is the pointer shape shown while dragging a divider.
type Cursor string

const (
	CursorHorizontal    Cursor = "horizontal"
	CursorHorizontalMin Cursor = "horizontal-min"
	CursorHorizontalMax Cursor = "horizontal-max"
	CursorVertical      Cursor = "vertical"
	CursorVerticalMin   Cursor = "vertical-min"
	CursorVerticalMax   Cursor = "vertical-max"
)

// CursorFor returns the cursor for a drag step. When the layout did not
// change the divider is pinned at a limit, and the cursor shows which one.
func CursorFor(dir group.Direction, delta float64, changed bool) Cursor {
	if dir == group.Vertical {
		switch {
		case changed:
			return CursorVertical
		case delta < 0:
			return CursorVerticalMin
		default:
			return CursorVerticalMax
		}
	}
	switch {
	case changed:
		return CursorHorizontal
	case delta < 0:
		return CursorHorizontalMin
	default:
		return CursorHorizontalMax
	}
}

// DragTracker follows one pointer drag and reports when the cursor should
// change. Repeated identical deltas, common for tiny pointer movements, do
// not produce a new cursor.
type DragTracker struct {
	dir       group.Direction
	prevDelta float64
	started   bool
}

// NewDragTracker returns a tracker for a group laid out along dir.
func NewDragTracker(dir group.Direction) *DragTracker {
	return &DragTracker{dir: dir}
}

// Update records the outcome of a drag step. It returns the cursor to show
// and false when the cursor should stay as it is.
func (t *DragTracker) Update(delta float64, changed bool) (Cursor, bool) {
	if t.started && t.prevDelta == delta {
		return "", false
	}
	t.started = true
	t.prevDelta = delta
	return CursorFor(t.dir, delta, changed), true
}
