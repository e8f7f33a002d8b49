package input

import (
	"testing"

	"github.com/matzehuels/splitpane/pkg/group"
	"github.com/matzehuels/splitpane/pkg/layout"
)

func TestKeyboardDelta(t *testing.T) {
	tests := []struct {
		name  string
		ev    KeyEvent
		dir   group.Direction
		step  float64
		shift float64
		want  float64
	}{
		{"left", KeyEvent{Key: KeyArrowLeft}, group.Horizontal, 0, 0, -5},
		{"right", KeyEvent{Key: KeyArrowRight}, group.Horizontal, 0, 0, 5},
		{"right custom step", KeyEvent{Key: KeyArrowRight}, group.Horizontal, 2.5, 0, 2.5},
		{"shift right", KeyEvent{Key: KeyArrowRight, Shift: true}, group.Horizontal, 2.5, 0, 100},
		{"shift left custom", KeyEvent{Key: KeyArrowLeft, Shift: true}, group.Horizontal, 0, 25, -25},
		{"up ignored horizontally", KeyEvent{Key: KeyArrowUp}, group.Horizontal, 0, 0, 0},
		{"up", KeyEvent{Key: KeyArrowUp}, group.Vertical, 0, 0, -5},
		{"down", KeyEvent{Key: KeyArrowDown}, group.Vertical, 0, 0, 5},
		{"left ignored vertically", KeyEvent{Key: KeyArrowLeft}, group.Vertical, 0, 0, 0},
		{"home", KeyEvent{Key: KeyHome}, group.Vertical, 0, 0, -100},
		{"end", KeyEvent{Key: KeyEnd}, group.Horizontal, 0, 0, 100},
		{"f6", KeyEvent{Key: KeyF6}, group.Horizontal, 0, 0, 0},
		{"other", KeyEvent{Key: "a"}, group.Horizontal, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyboardDelta(tt.ev, tt.dir, tt.step, tt.shift); got != tt.want {
				t.Errorf("KeyboardDelta(%+v, %s, %v, %v) = %v, want %v", tt.ev, tt.dir, tt.step, tt.shift, got, tt.want)
			}
		})
	}
}

func TestIsResizeKey(t *testing.T) {
	for _, k := range []Key{KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyHome, KeyEnd} {
		if !IsResizeKey(k) {
			t.Errorf("IsResizeKey(%s) = false, want true", k)
		}
	}
	for _, k := range []Key{KeyF6, "Tab", ""} {
		if IsResizeKey(k) {
			t.Errorf("IsResizeKey(%q) = true, want false", k)
		}
	}
}

func TestNextHandle(t *testing.T) {
	tests := []struct {
		current, count int
		reverse        bool
		want           int
	}{
		{0, 3, false, 1},
		{2, 3, false, 0},
		{0, 3, true, 2},
		{2, 3, true, 1},
		{0, 1, false, 0},
		{0, 0, false, 0},
	}

	for _, tt := range tests {
		if got := NextHandle(tt.current, tt.count, tt.reverse); got != tt.want {
			t.Errorf("NextHandle(%d, %d, %v) = %d, want %d", tt.current, tt.count, tt.reverse, got, tt.want)
		}
	}
}

func TestDragDelta(t *testing.T) {
	if got := DragDelta(100, 150, 500); got != 10 {
		t.Errorf("DragDelta(100, 150, 500) = %v, want 10", got)
	}
	if got := DragDelta(100, 50, 200); got != -25 {
		t.Errorf("DragDelta(100, 50, 200) = %v, want -25", got)
	}
	if got := DragDelta(0, 50, 0); got != 0 {
		t.Errorf("DragDelta with empty container = %v, want 0", got)
	}
}

func TestApplyDirectionality(t *testing.T) {
	if got := ApplyDirectionality(10, group.Horizontal, true); got != -10 {
		t.Errorf("rtl horizontal = %v, want -10", got)
	}
	if got := ApplyDirectionality(10, group.Vertical, true); got != 10 {
		t.Errorf("rtl vertical = %v, want 10", got)
	}
	if got := ApplyDirectionality(10, group.Horizontal, false); got != 10 {
		t.Errorf("ltr horizontal = %v, want 10", got)
	}
}

func TestCursorFor(t *testing.T) {
	tests := []struct {
		dir     group.Direction
		delta   float64
		changed bool
		want    Cursor
	}{
		{group.Horizontal, 5, true, CursorHorizontal},
		{group.Horizontal, -5, false, CursorHorizontalMin},
		{group.Horizontal, 5, false, CursorHorizontalMax},
		{group.Vertical, -5, true, CursorVertical},
		{group.Vertical, -5, false, CursorVerticalMin},
		{group.Vertical, 5, false, CursorVerticalMax},
	}

	for _, tt := range tests {
		if got := CursorFor(tt.dir, tt.delta, tt.changed); got != tt.want {
			t.Errorf("CursorFor(%s, %v, %v) = %s, want %s", tt.dir, tt.delta, tt.changed, got, tt.want)
		}
	}
}

func TestDragTrackerSuppressesRepeats(t *testing.T) {
	tr := NewDragTracker(group.Horizontal)

	if c, ok := tr.Update(10, true); !ok || c != CursorHorizontal {
		t.Errorf("first update = %s, %v", c, ok)
	}
	if _, ok := tr.Update(10, false); ok {
		t.Error("repeated delta should not change the cursor")
	}
	if c, ok := tr.Update(60, false); !ok || c != CursorHorizontalMax {
		t.Errorf("limit update = %s, %v", c, ok)
	}
}

func TestDragTracker(t *testing.T) {
	type step struct {
		delta      float64
		changed    bool
		wantCursor Cursor
		wantOK     bool
	}

	tests := []struct {
		name  string
		dir   group.Direction
		steps []step
	}{
		{
			name: "horizontal drag into the max",
			dir:  group.Horizontal,
			steps: []step{
				{5, true, CursorHorizontal, true},
				{10, true, CursorHorizontal, true},
				{30, false, CursorHorizontalMax, true},
				{30, false, "", false},
			},
		},
		{
			name: "vertical drag into the min",
			dir:  group.Vertical,
			steps: []step{
				{-5, true, CursorVertical, true},
				{-5, true, "", false},
				{-40, false, CursorVerticalMin, true},
				{-20, true, CursorVertical, true},
			},
		},
		{
			name: "first update always reports",
			dir:  group.Horizontal,
			steps: []step{
				{0, false, CursorHorizontalMax, true},
				{0, false, "", false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewDragTracker(tt.dir)
			for i, s := range tt.steps {
				c, ok := tr.Update(s.delta, s.changed)
				if c != s.wantCursor || ok != s.wantOK {
					t.Errorf("step %d: Update(%v, %v) = %q, %v; want %q, %v", i, s.delta, s.changed, c, ok, s.wantCursor, s.wantOK)
				}
			}
		})
	}
}

func TestTriggerFor(t *testing.T) {
	if TriggerFor(EventKey) != layout.TriggerKeyboard {
		t.Error("key events should use the keyboard trigger")
	}
	if TriggerFor(EventMouse) != layout.TriggerMouseOrTouch || TriggerFor(EventTouch) != layout.TriggerMouseOrTouch {
		t.Error("pointer events should use the mouse-or-touch trigger")
	}
}
