package embed

import (
	"fmt"

	"github.com/san-kum/takens/internal/estimate"
	"github.com/san-kum/takens/internal/series"
)

// Point is one reconstructed phase-space vector of lagged coordinates.
type Point []float64

func (p Point) Clone() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Embed builds the delay-vector set for an explicit dimension m and delay
// tau. Vector i's component j is s[i + j*tau], so successive components are
// samples spaced tau apart and successive vectors shift by one base index.
//
// m and tau must be positive; violating that returns a typed error. A series
// too short to produce any vector returns an empty, non-nil set.
func Embed(s series.Series, m, tau int) ([]Point, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrDimensionNotPositive, m)
	}
	if tau < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrDelayNotPositive, tau)
	}

	count := len(s) - (m-1)*tau
	if count <= 0 {
		return []Point{}, nil
	}

	points := make([]Point, count)
	for i := 0; i < count; i++ {
		p := make(Point, m)
		for j := 0; j < m; j++ {
			p[j] = s[i+j*tau]
		}
		points[i] = p
	}
	return points, nil
}

// Validate checks (m, tau) feasibility against the series length. It is
// advisory: Embed tolerates an infeasible pair by returning an empty set and
// does not require this check to have run.
func Validate(s series.Series, m, tau int) error {
	if m < 1 {
		return fmt.Errorf("%w, got %d", ErrDimensionNotPositive, m)
	}
	if tau < 1 {
		return fmt.Errorf("%w, got %d", ErrDelayNotPositive, tau)
	}
	required := (m-1)*tau + 1
	if len(s) < required {
		return fmt.Errorf("%w: length %d < required %d for dimension %d, delay %d",
			ErrSeriesTooShort, len(s), required, m, tau)
	}
	return nil
}

// Options overrides auto-estimated embedding parameters. A zero field means
// "estimate it from the series".
type Options struct {
	Dimension int
	Delay     int
}

// Auto embeds with any missing parameter filled in from the estimate
// heuristics. No validation happens before delegating: infeasible
// auto-estimated parameters simply yield an empty embedding, consistent
// with Embed's tolerant policy.
func Auto(s series.Series, opts Options) ([]Point, int, int, error) {
	m := opts.Dimension
	if m == 0 {
		m = estimate.Dimension(s)
	}
	tau := opts.Delay
	if tau == 0 {
		tau = estimate.Delay(s)
	}

	points, err := Embed(s, m, tau)
	return points, m, tau, err
}
