package series

import (
	"math"
	"testing"
)

func TestSeries_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		s     Series
		valid bool
	}{
		{"empty", Series{}, true},
		{"normal", Series{1.0, 2.0, 3.0}, true},
		{"with NaN", Series{1.0, math.NaN()}, false},
		{"with +Inf", Series{1.0, math.Inf(1)}, false},
		{"with -Inf", Series{math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestSeries_Clone(t *testing.T) {
	s := Series{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] == 99 {
		t.Error("Clone did not create an independent copy")
	}
}

func TestSeries_MeanVariance(t *testing.T) {
	tests := []struct {
		name     string
		s        Series
		mean     float64
		variance float64
	}{
		{"empty", Series{}, 0, 0},
		{"constant", Series{5, 5, 5, 5}, 5, 0},
		{"simple", Series{1, 2, 3, 4, 5}, 3, 2},
		{"two values", Series{0, 2}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Mean(); math.Abs(got-tt.mean) > 1e-12 {
				t.Errorf("Mean() = %v, want %v", got, tt.mean)
			}
			if got := tt.s.Variance(); math.Abs(got-tt.variance) > 1e-12 {
				t.Errorf("Variance() = %v, want %v", got, tt.variance)
			}
		})
	}
}

func TestAutocorrelation_LagZero(t *testing.T) {
	s := Series{1, 3, 2, 5, 4, 6, 2, 8}
	if got := Autocorrelation(s, 0); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Autocorrelation(s, 0) = %v, want 1.0", got)
	}
}

func TestAutocorrelation_ConstantSeries(t *testing.T) {
	s := Series{7, 7, 7, 7, 7, 7}
	for lag := 0; lag < len(s); lag++ {
		if got := Autocorrelation(s, lag); got != 0 {
			t.Errorf("Autocorrelation(constant, %d) = %v, want 0", lag, got)
		}
	}
}

func TestAutocorrelation_LagBeyondLength(t *testing.T) {
	s := Series{1, 2, 3}
	if got := Autocorrelation(s, 3); got != 0 {
		t.Errorf("Autocorrelation at lag == len = %v, want 0", got)
	}
	if got := Autocorrelation(s, 10); got != 0 {
		t.Errorf("Autocorrelation at lag > len = %v, want 0", got)
	}
	if got := Autocorrelation(s, -1); got != 0 {
		t.Errorf("Autocorrelation at negative lag = %v, want 0", got)
	}
}

func TestAutocorrelation_AlternatingSeries(t *testing.T) {
	// +1,-1,+1,-1,... correlates negatively at lag 1 and positively at lag 2.
	s := make(Series, 64)
	for i := range s {
		if i%2 == 0 {
			s[i] = 1
		} else {
			s[i] = -1
		}
	}

	if got := Autocorrelation(s, 1); got >= 0 {
		t.Errorf("lag-1 autocorrelation of alternating series = %v, want < 0", got)
	}
	if got := Autocorrelation(s, 2); got <= 0 {
		t.Errorf("lag-2 autocorrelation of alternating series = %v, want > 0", got)
	}
}

func TestAutocorrelation_SineDecaysFromLagZero(t *testing.T) {
	const period = 40
	s := make(Series, 4*period)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * float64(i) / period)
	}

	prev := Autocorrelation(s, 0)
	for lag := 1; lag <= period/4; lag++ {
		cur := Autocorrelation(s, lag)
		if cur >= prev {
			t.Fatalf("autocorrelation not decreasing over first quarter period: lag %d: %v >= %v", lag, cur, prev)
		}
		prev = cur
	}
}
