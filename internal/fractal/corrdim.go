package fractal

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/takens/internal/embed"
)

// minFraction floors the correlation fraction so its logarithm stays finite
// when no pair falls inside a radius.
const minFraction = 1e-10

// parallelMinChunk keeps small point sets on a single goroutine.
const parallelMinChunk = 64

type Config struct {
	// MaxRadius is the largest radius of the sweep. Defaults to 1.0.
	MaxRadius float64
	// NumRadii is how many evenly spaced radii (0, MaxRadius] to sample.
	// Defaults to 20.
	NumRadii int
}

func DefaultConfig() Config {
	return Config{
		MaxRadius: 1.0,
		NumRadii:  20,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxRadius <= 0 {
		c.MaxRadius = d.MaxRadius
	}
	if c.NumRadii <= 0 {
		c.NumRadii = d.NumRadii
	}
	return c
}

// RadiusCorrelation is one row of the radius sweep: the fraction of
// unordered point pairs closer than Radius.
type RadiusCorrelation struct {
	Radius   float64
	Fraction float64
}

// CorrelationSum returns the fraction of unordered point pairs whose
// Euclidean distance is strictly less than radius, floored at minFraction.
// The outer loop runs in parallel; the point set is only read.
func CorrelationSum(points []embed.Point, radius float64) float64 {
	n := len(points)
	if n < 2 {
		return minFraction
	}

	var count atomic.Int64
	ParallelFor(n, parallelMinChunk, func(start, end int) {
		local := int64(0)
		for i := start; i < end; i++ {
			for j := i + 1; j < n; j++ {
				if floats.Distance(points[i], points[j], 2) < radius {
					local++
				}
			}
		}
		count.Add(local)
	})

	totalPairs := float64(n) * float64(n-1) / 2
	fraction := float64(count.Load()) / totalPairs
	if fraction < minFraction {
		fraction = minFraction
	}
	return fraction
}

// CorrelationCurve sweeps cfg.NumRadii radii r_k = MaxRadius*k/NumRadii,
// k = 1..NumRadii, and records the correlation sum at each.
func CorrelationCurve(points []embed.Point, cfg Config) []RadiusCorrelation {
	cfg = cfg.withDefaults()

	curve := make([]RadiusCorrelation, 0, cfg.NumRadii)
	for k := 1; k <= cfg.NumRadii; k++ {
		r := cfg.MaxRadius * float64(k) / float64(cfg.NumRadii)
		curve = append(curve, RadiusCorrelation{
			Radius:   r,
			Fraction: CorrelationSum(points, r),
		})
	}
	return curve
}

// CorrelationDimension estimates the correlation dimension of the point
// cloud as the ordinary-least-squares slope of log(C(r)) against log(r)
// over the radius sweep.
//
// Fewer than 2 points has no pairwise geometry and returns 0. A degenerate
// regression (a single radius, or an otherwise zero denominator) also
// returns 0 rather than propagating NaN.
func CorrelationDimension(points []embed.Point, cfg Config) float64 {
	if len(points) < 2 {
		return 0
	}
	return FitSlope(CorrelationCurve(points, cfg))
}

// FitSlope fits the log-log OLS slope of a (possibly partial) radius curve.
// Degenerate input yields 0.
func FitSlope(curve []RadiusCorrelation) float64 {
	logR := make([]float64, len(curve))
	logC := make([]float64, len(curve))
	for i, rc := range curve {
		logR[i] = math.Log(rc.Radius)
		logC[i] = math.Log(rc.Fraction)
	}

	_, slope := stat.LinearRegression(logR, logC, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0
	}
	return slope
}
