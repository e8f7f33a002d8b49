package render

import (
	"math"
	"sort"

	"github.com/matzehuels/splitpane/pkg/layout"
)

// Cells apportions total cells among the sizes of l using the largest
// remainder method. The result always sums to total, and a pane's share
// never differs from its exact share by a full cell.
func Cells(l layout.Layout, total int) []int {
	out := make([]int, len(l))
	if len(l) == 0 || total <= 0 {
		return out
	}

	sum := l.Sum()
	if sum <= 0 {
		sum = layout.Total
	}

	type share struct {
		index int
		frac  float64
	}
	shares := make([]share, len(l))
	used := 0
	for i, size := range l {
		exact := math.Max(size, 0) / sum * float64(total)
		whole := math.Floor(exact)
		out[i] = int(whole)
		used += out[i]
		shares[i] = share{index: i, frac: exact - whole}
	}

	sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	for i := 0; used < total; i = (i + 1) % len(shares) {
		out[shares[i].index]++
		used++
	}
	return out
}
