// Package input translates key presses and pointer drags into divider
// deltas.
//
// The functions here are pure. They know nothing about terminals or
// browsers; callers map their own events onto [KeyEvent] and pixel
// coordinates, then hand the resulting delta to a group.
package input

import (
	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/layout"
)

// Key is a key that has a meaning on a focused divider.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyF6         Key = "F6"
)

// ShiftStep is the default delta of a shifted arrow key: the whole extent.
const ShiftStep = layout.Total

// KeyEvent is a key press on a focused divider.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// IsResizeKey reports whether k moves a divider.
func IsResizeKey(k Key) bool {
	switch k {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyHome, KeyEnd:
		return true
	}
	return false
}

// KeyboardDelta returns the delta for a key press on a divider of a group
// laid out along dir. Arrows across the group's axis and keys that do not
// resize yield 0. Shifted arrows move by shiftStep. Non-positive steps use
// group.DefaultKeyboardStep and ShiftStep.
func KeyboardDelta(ev KeyEvent, dir group.Direction, step, shiftStep float64) float64 {
	if step <= 0 {
		step = group.DefaultKeyboardStep
	}
	if shiftStep <= 0 {
		shiftStep = ShiftStep
	}
	if ev.Shift {
		step = shiftStep
	}

	horizontal := dir != group.Vertical
	switch ev.Key {
	case KeyArrowLeft:
		if horizontal {
			return -step
		}
	case KeyArrowRight:
		if horizontal {
			return step
		}
	case KeyArrowUp:
		if !horizontal {
			return -step
		}
	case KeyArrowDown:
		if !horizontal {
			return step
		}
	case KeyHome:
		return -layout.Total
	case KeyEnd:
		return layout.Total
	}
	return 0
}

// NextHandle returns the divider that receives focus after F6 on divider
// current in a group with count dividers. reverse (Shift+F6) walks
// backwards. Both directions wrap around.
func NextHandle(current, count int, reverse bool) int {
	if count <= 0 {
		return 0
	}
	if reverse {
		if current > 0 {
			return current - 1
		}
		return count - 1
	}
	if current+1 < count {
		return current + 1
	}
	return 0
}

// EventKind classifies the source of a delta.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventTouch
)

// TriggerFor returns the engine trigger for an event kind.
func TriggerFor(kind EventKind) layout.Trigger {
	if kind == EventKey {
		return layout.TriggerKeyboard
	}
	return layout.TriggerMouseOrTouch
}
