// Package report summarizes translations: length statistics, ORF
// length histograms and the JSON summary records.
package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats describes a distribution of lengths.
type Stats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Median float64 `json:"median"`
}

// NewStats computes statistics of lengths. Empty input gives zero
// statistics, standard deviation of a single value is zero.
func NewStats(lengths []int) Stats {
	s := Stats{N: len(lengths)}
	if s.N == 0 {
		return s
	}
	x := make([]float64, len(lengths))
	for i, l := range lengths {
		x[i] = float64(l)
	}
	sort.Float64s(x)
	s.Min = x[0]
	s.Max = x[len(x)-1]
	s.Mean = stat.Mean(x, nil)
	if s.N > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	return s
}

func (s Stats) String() string {
	if s.N == 0 {
		return "n=0"
	}
	return fmt.Sprintf("n=%d, min=%g, max=%g, mean=%.2f, sd=%.2f, median=%g",
		s.N, s.Min, s.Max, s.Mean, s.StdDev, s.Median)
}
