package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/splitpane/pkg/errors"
)

func TestDividerRange(t *testing.T) {
	free := DefaultConstraints()
	narrow := c(10, 35)

	tests := []struct {
		name        string
		layout      Layout
		constraints []Constraints
		pivot       Pivot
		want        Range
	}{
		{"free halves", Layout{50, 50}, []Constraints{free, free}, DividerPivot(0), Range{Min: 0, Max: 100, Now: 50}},
		{"first divider", Layout{20, 50, 30}, []Constraints{free, free, free}, DividerPivot(0), Range{Min: 0, Max: 100, Now: 20}},
		{"second divider", Layout{20, 50, 30}, []Constraints{free, free, free}, DividerPivot(1), Range{Min: 0, Max: 100, Now: 50}},
		{"own bounds", Layout{25, 75}, []Constraints{narrow, free}, DividerPivot(0), Range{Min: 10, Max: 35, Now: 25}},
		{"neighbour bounds", Layout{25, 50, 25}, []Constraints{narrow, free, narrow}, DividerPivot(1), Range{Min: 30, Max: 80, Now: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DividerRange(tt.layout, tt.constraints, tt.pivot)
			if err != nil {
				t.Fatalf("DividerRange() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("DividerRange() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDividerRangeErrors(t *testing.T) {
	free := []Constraints{DefaultConstraints(), DefaultConstraints()}

	if _, err := DividerRange(Layout{100}, free, DividerPivot(0)); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("length mismatch: error = %v, want %v", err, errors.ErrCodeInvalidLayout)
	}
	if _, err := DividerRange(Layout{50, 50}, free, DividerPivot(1)); !errors.Is(err, errors.ErrCodeInvalidPivot) {
		t.Errorf("bad pivot: error = %v, want %v", err, errors.ErrCodeInvalidPivot)
	}
}

func TestDividerRanges(t *testing.T) {
	free := DefaultConstraints()

	got, err := DividerRanges(Layout{20, 50, 30}, []Constraints{free, free, free})
	if err != nil {
		t.Fatalf("DividerRanges() error = %v", err)
	}
	want := []Range{{Min: 0, Max: 100, Now: 20}, {Min: 0, Max: 100, Now: 50}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DividerRanges() mismatch (-want +got):\n%s", diff)
	}

	if got, err := DividerRanges(Layout{100}, []Constraints{free}); err != nil || got != nil {
		t.Errorf("DividerRanges(single) = %v, %v, want nil, nil", got, err)
	}
}
