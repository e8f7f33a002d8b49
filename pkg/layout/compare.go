package layout

import (
	"math"
	"strconv"
)

// Precision is the number of fraction digits used for size comparisons and
// for the output of [ClampSize].
const Precision = 10

// progressDigits is the number of significant digits at which the shrink
// walk considers a requested delta fully applied.
const progressDigits = 3

// AlmostEqual reports whether a and b are equal once rounded to precision
// fraction digits.
func AlmostEqual(a, b float64, precision int) bool {
	return CompareWithTolerance(a, b, precision) == 0
}

// CompareWithTolerance returns -1, 0 or 1 depending on whether a is less
// than, equal to or greater than b once both are rounded to precision
// fraction digits.
func CompareWithTolerance(a, b float64, precision int) int {
	d := roundTo(a, precision) - roundTo(b, precision)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Equal is AlmostEqual at [Precision].
func Equal(a, b float64) bool {
	return AlmostEqual(a, b, Precision)
}

// Compare is CompareWithTolerance at [Precision].
func Compare(a, b float64) int {
	return CompareWithTolerance(a, b, Precision)
}

// ArraysEqual reports whether a and b have the same length and identical
// entries. It is used to detect that an operation left a layout unchanged.
func ArraysEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// roundTo rounds v to the given number of fraction digits using decimal
// formatting, so 0.1+0.2 rounds to 0.3 rather than to a binary neighbour.
func roundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// roundSignificant rounds v to the given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}
