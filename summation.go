package mobius

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Summation selects how the rectangle-rule reductions add up samples.
//
// The sums are order-insensitive in exact arithmetic but not in floating
// point. For the default resolutions every mode agrees to well below the
// discretization error; the compensated modes matter only for very large n.
type Summation int

const (
	// SumNaive adds samples left to right (default).
	SumNaive Summation = iota

	// SumKahan uses Kahan-Babuška compensated summation.
	SumKahan

	// SumPairwise splits the input recursively and adds the halves.
	SumPairwise
)

// pairwiseBlock is the leaf size below which pairwise summation falls back
// to a plain loop.
const pairwiseBlock = 128

// String returns the summation mode name.
func (m Summation) String() string {
	switch m {
	case SumNaive:
		return "Naive"
	case SumKahan:
		return "Kahan"
	case SumPairwise:
		return "Pairwise"
	default:
		return "Unknown"
	}
}

// sum reduces s according to the mode. Unknown modes sum naively.
func (m Summation) sum(s []float64) float64 {
	switch m {
	case SumKahan:
		return kahanSum(s)
	case SumPairwise:
		return pairwiseSum(s)
	default:
		return floats.Sum(s)
	}
}

func kahanSum(s []float64) float64 {
	var sum, c float64
	for _, x := range s {
		t := sum + x
		if math.Abs(sum) >= math.Abs(x) {
			c += (sum - t) + x
		} else {
			c += (x - t) + sum
		}
		sum = t
	}
	return sum + c
}

func pairwiseSum(s []float64) float64 {
	if len(s) <= pairwiseBlock {
		var sum float64
		for _, x := range s {
			sum += x
		}
		return sum
	}
	mid := len(s) / 2
	return pairwiseSum(s[:mid]) + pairwiseSum(s[mid:])
}
