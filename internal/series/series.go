package series

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return stat.Mean(s, nil)
}

// Variance is the population variance (division by N, not N-1). The
// autocorrelation normalization depends on this convention.
func (s Series) Variance() float64 {
	n := len(s)
	if n == 0 {
		return 0
	}
	mean := s.Mean()
	sum := 0.0
	for _, v := range s {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n)
}

// Autocorrelation returns the normalized autocorrelation of s at the given
// lag: the covariance of (x[i], x[i+lag]) pairs divided by the population
// variance of the full series.
//
// A lag at or beyond the series length leaves no overlapping pairs and
// returns 0. A constant series has zero variance and also returns 0 rather
// than dividing by it. Autocorrelation(s, 0) is 1 for any non-constant s.
func Autocorrelation(s Series, lag int) float64 {
	n := len(s)
	if lag < 0 || lag >= n {
		return 0
	}

	mean := s.Mean()
	variance := s.Variance()
	if variance == 0 {
		return 0
	}

	pairs := n - lag
	cov := 0.0
	for i := 0; i < pairs; i++ {
		cov += (s[i] - mean) * (s[i+lag] - mean)
	}
	cov /= float64(pairs)

	return cov / variance
}
