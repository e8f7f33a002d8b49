package layout

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/splitpane/pkg/errors"
)

// Total is the extent shared by all panes of a group.
const Total = 100.0

// Constraints bound the size of one pane. All values are percentages of
// [Total]. CollapsedSize is only consulted when Collapsible is set.
type Constraints struct {
	MinSize       float64  `json:"min_size" toml:"min_size"`
	MaxSize       float64  `json:"max_size" toml:"max_size"`
	CollapsedSize float64  `json:"collapsed_size" toml:"collapsed_size"`
	Collapsible   bool     `json:"collapsible" toml:"collapsible"`
	DefaultSize   *float64 `json:"default_size,omitempty" toml:"default_size,omitempty"`
}

// DefaultConstraints returns unconstrained bounds: 0 to 100, not collapsible.
func DefaultConstraints() Constraints {
	return Constraints{MaxSize: Total}
}

// WithDefault returns a copy of c with DefaultSize set to size.
func (c Constraints) WithDefault(size float64) Constraints {
	c.DefaultSize = &size
	return c
}

// UnmarshalJSON decodes c, defaulting an absent max_size to 100.
func (c *Constraints) UnmarshalJSON(data []byte) error {
	type plain Constraints
	p := plain(DefaultConstraints())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Constraints(p)
	return nil
}

// Validate checks 0 <= collapsed <= min <= max <= 100 and that a default,
// when present, lies within [0, 100].
func (c Constraints) Validate() error {
	if err := errors.ValidatePercentage("min_size", c.MinSize); err != nil {
		return err
	}
	if err := errors.ValidatePercentage("max_size", c.MaxSize); err != nil {
		return err
	}
	if c.MinSize > c.MaxSize {
		return errors.New(errors.ErrCodeInvalidConstraints, "min_size %g exceeds max_size %g", c.MinSize, c.MaxSize)
	}
	if c.Collapsible {
		if err := errors.ValidatePercentage("collapsed_size", c.CollapsedSize); err != nil {
			return err
		}
		if c.CollapsedSize > c.MinSize {
			return errors.New(errors.ErrCodeInvalidConstraints, "collapsed_size %g exceeds min_size %g", c.CollapsedSize, c.MinSize)
		}
	}
	if c.DefaultSize != nil {
		if err := errors.ValidatePercentage("default_size", *c.DefaultSize); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConstraints validates every entry, reporting the first failure
// with its index.
func ValidateConstraints(cs []Constraints) error {
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConstraints, err, "pane %d", i)
		}
	}
	return nil
}

// Layout holds one size per pane, in pane order.
type Layout []float64

// Sum returns the total of all sizes.
func (l Layout) Sum() float64 {
	var total float64
	for _, size := range l {
		total += size
	}
	return total
}

// Clone returns an independent copy of l.
func (l Layout) Clone() Layout {
	if l == nil {
		return nil
	}
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// String formats l as "[25%, 75%]".
func (l Layout) String() string {
	parts := make([]string, len(l))
	for i, size := range l {
		parts[i] = fmt.Sprintf("%g%%", size)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Pivot identifies a divider by the indices of its two neighbours.
type Pivot struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

// DividerPivot returns the pivot of divider i, which sits between panes i
// and i+1.
func DividerPivot(i int) Pivot {
	return Pivot{Before: i, After: i + 1}
}

// PanePivot returns the pivot used to resize pane index in a group of count
// panes: the divider after the pane, or the one before it for the last pane.
func PanePivot(index, count int) (Pivot, error) {
	if count < 2 {
		return Pivot{}, errors.New(errors.ErrCodeInvalidPivot, "a group of %d panes has no dividers", count)
	}
	if index < 0 || index >= count {
		return Pivot{}, errors.New(errors.ErrCodeInvalidPivot, "pane index %d out of range [0, %d)", index, count)
	}
	if index == count-1 {
		return Pivot{Before: index - 1, After: index}, nil
	}
	return Pivot{Before: index, After: index + 1}, nil
}

// Validate checks that p addresses adjacent panes of a group of n panes.
func (p Pivot) Validate(n int) error {
	if p.Before < 0 || p.After >= n {
		return errors.New(errors.ErrCodeInvalidPivot, "pivot (%d, %d) out of range for %d panes", p.Before, p.After, n)
	}
	if p.After != p.Before+1 {
		return errors.New(errors.ErrCodeInvalidPivot, "pivot (%d, %d) is not adjacent", p.Before, p.After)
	}
	return nil
}

// Trigger is the interaction class that produced a delta.
type Trigger int

const (
	// TriggerImperativeAPI is a programmatic resize, collapse or expand.
	TriggerImperativeAPI Trigger = iota
	// TriggerKeyboard is a key press on a focused divider.
	TriggerKeyboard
	// TriggerMouseOrTouch is a pointer drag.
	TriggerMouseOrTouch
)

var triggerNames = map[Trigger]string{
	TriggerImperativeAPI: "imperative-api",
	TriggerKeyboard:      "keyboard",
	TriggerMouseOrTouch:  "mouse-or-touch",
}

// String returns the wire name of t.
func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// ParseTrigger parses a wire name. The empty string is the imperative API.
func ParseTrigger(s string) (Trigger, error) {
	if s == "" {
		return TriggerImperativeAPI, nil
	}
	for t, name := range triggerNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidTrigger, "unknown trigger %q (want imperative-api, keyboard or mouse-or-touch)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Trigger) MarshalText() ([]byte, error) {
	name, ok := triggerNames[t]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTrigger, "unknown trigger %d", int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trigger) UnmarshalText(text []byte) error {
	parsed, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Range is the interval a divider can move through, expressed as the size of
// the pane before it.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Now float64 `json:"now"`
}
