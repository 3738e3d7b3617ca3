// Package synth generates scalar test signals with known dynamics: periodic,
// chaotic map, and chaotic flow series for exercising embedding and
// dimension estimation.
package synth

import (
	"math"

	"github.com/san-kum/takens/internal/series"
)

// Sine returns n samples of amplitude*sin(2*pi*i/period).
func Sine(n int, period, amplitude float64) series.Series {
	s := make(series.Series, n)
	for i := range s {
		s[i] = amplitude * math.Sin(2*math.Pi*float64(i)/period)
	}
	return s
}

// Logistic iterates the logistic map x -> r*x*(1-x) from x0 and returns the
// trajectory. r near 4 produces chaos on (0, 1).
func Logistic(n int, r, x0 float64) series.Series {
	s := make(series.Series, n)
	x := x0
	for i := range s {
		x = r * x * (1 - x)
		s[i] = x
	}
	return s
}
