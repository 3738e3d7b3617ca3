package estimate

import (
	"math"

	"github.com/san-kum/takens/internal/series"
)

// MaxDelayLag caps the autocorrelation sweep so analysis stays bounded on
// long series.
const MaxDelayLag = 50

// LagCorrelation is one row of the autocorrelation table.
type LagCorrelation struct {
	Lag   int
	Value float64
}

// ACF computes the autocorrelation table for lags 1..maxLag.
func ACF(s series.Series, maxLag int) []LagCorrelation {
	if maxLag < 1 {
		return nil
	}
	table := make([]LagCorrelation, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		table = append(table, LagCorrelation{
			Lag:   lag,
			Value: series.Autocorrelation(s, lag),
		})
	}
	return table
}

// Delay estimates the embedding delay as the lag of the first local minimum
// of the autocorrelation function, sweeping lags 1..min(N/4, MaxDelayLag).
//
// The scan advances while the next value does not exceed the current one, so
// plateaus are not yet a minimum; the first strict rise stops it. A sweep
// that is still descending when the table ends yields the last lag, and a
// series too short to sweep at all yields 1.
func Delay(s series.Series) int {
	maxLag := len(s) / 4
	if maxLag > MaxDelayLag {
		maxLag = MaxDelayLag
	}

	table := ACF(s, maxLag)
	if len(table) == 0 {
		return 1
	}
	return firstLocalMinimum(table)
}

func firstLocalMinimum(table []LagCorrelation) int {
	i := 0
	for i+1 < len(table) && table[i+1].Value <= table[i].Value {
		i++
	}
	return table[i].Lag
}

// Dimension returns a default embedding dimension from series length alone:
// max(2, round(2*log10(N))). A coarse rule of thumb, never below 2.
func Dimension(s series.Series) int {
	n := len(s)
	if n < 2 {
		return 2
	}
	m := int(math.Round(2 * math.Log10(float64(n))))
	if m < 2 {
		return 2
	}
	return m
}
