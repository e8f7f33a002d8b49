package layout

import (
	"math"

	"github.com/matzehuels/splitpane/pkg/errors"
)

// DividerRange returns the interval the pane before divider p can occupy,
// given the minimum and maximum sizes of every other pane, together with its
// current size.
func DividerRange(l Layout, cs []Constraints, p Pivot) (Range, error) {
	if len(l) != len(cs) {
		return Range{}, errors.New(errors.ErrCodeInvalidLayout, "layout has %d entries for %d panes", len(l), len(cs))
	}
	if err := p.Validate(len(cs)); err != nil {
		return Range{}, err
	}

	var otherMin, otherMax float64
	for i, c := range cs {
		if i == p.Before {
			continue
		}
		otherMin += c.MinSize
		otherMax += c.MaxSize
	}

	c := cs[p.Before]
	return Range{
		Min: math.Max(c.MinSize, Total-otherMax),
		Max: math.Min(c.MaxSize, Total-otherMin),
		Now: l[p.Before],
	}, nil
}

// DividerRanges returns one Range per divider, in divider order.
func DividerRanges(l Layout, cs []Constraints) ([]Range, error) {
	if len(cs) < 2 {
		return nil, nil
	}
	out := make([]Range, 0, len(cs)-1)
	for i := 0; i < len(cs)-1; i++ {
		r, err := DividerRange(l, cs, DividerPivot(i))
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
