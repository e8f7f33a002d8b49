package layout

import (
	"math/rand/v2"
	"testing"
)

// randomConstraints returns a satisfiable constraint set: minimums sum to at
// most 100 and maximums to at least 100.
func randomConstraints(r *rand.Rand, n int) []Constraints {
	cs := make([]Constraints, n)
	budget := Total / float64(n)
	for i := range cs {
		lo := float64(r.IntN(int(budget)))
		hi := Total
		if r.IntN(3) == 0 {
			hi = lo + float64(r.IntN(int(Total-lo)+1))
		}
		cs[i] = Constraints{MinSize: lo, MaxSize: hi}
		if lo > 0 && r.IntN(2) == 0 {
			cs[i].Collapsible = true
			cs[i].CollapsedSize = float64(r.IntN(int(lo)))
		}
	}
	var maxTotal float64
	for _, c := range cs {
		maxTotal += c.MaxSize
	}
	if maxTotal < Total {
		cs[n-1].MaxSize = Total
	}
	return cs
}

func TestAdjustLayoutByDeltaProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	triggers := []Trigger{TriggerImperativeAPI, TriggerKeyboard, TriggerMouseOrTouch}

	for round := 0; round < 200; round++ {
		n := 2 + r.IntN(4)
		cs := randomConstraints(r, n)
		l, err := NormalizeLayout(DefaultLayout(cs), cs)
		if err != nil {
			t.Fatalf("NormalizeLayout() error = %v", err)
		}
		if CheckLayout(l, cs) != nil {
			continue
		}

		for step := 0; step < 20; step++ {
			divider := r.IntN(n - 1)
			delta := r.Float64()*120 - 60
			req := Request{
				Delta:       delta,
				Layout:      l,
				Constraints: cs,
				Pivot:       DividerPivot(divider),
				Trigger:     triggers[r.IntN(len(triggers))],
			}

			before := l.Clone()
			next, err := AdjustLayoutByDelta(req)
			if err != nil {
				t.Fatalf("AdjustLayoutByDelta(%+v) error = %v", req, err)
			}
			if !ArraysEqual(before, l) {
				t.Fatalf("AdjustLayoutByDelta modified its input: %v, was %v", l, before)
			}
			if err := CheckLayout(next, cs); err != nil {
				t.Fatalf("AdjustLayoutByDelta(%+v) = %v: %v", req, next, err)
			}

			req.Delta = 0
			if same, _ := AdjustLayoutByDelta(req); !ArraysEqual(same, l) {
				t.Fatalf("zero delta changed %v to %v", l, same)
			}
			l = next
		}
	}
}

func TestClampSizeProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 1000; i++ {
		cs := randomConstraints(r, 1)
		size := r.Float64()*140 - 20
		got := ClampSize(cs[0], size)
		if !IsLegalSize(cs[0], got) {
			t.Fatalf("ClampSize(%+v, %v) = %v is not legal", cs[0], size, got)
		}
		if again := ClampSize(cs[0], got); again != got {
			t.Fatalf("ClampSize not idempotent: %v then %v", got, again)
		}
	}
}
