package estimate

import (
	"math"
	"testing"

	"github.com/san-kum/takens/internal/series"
)

func sine(n, period int) series.Series {
	s := make(series.Series, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}
	return s
}

func TestACF_TableShape(t *testing.T) {
	s := sine(100, 20)

	table := ACF(s, 10)
	if len(table) != 10 {
		t.Fatalf("ACF table length = %d, want 10", len(table))
	}
	for i, row := range table {
		if row.Lag != i+1 {
			t.Errorf("table[%d].Lag = %d, want %d", i, row.Lag, i+1)
		}
	}

	if got := ACF(s, 0); got != nil {
		t.Errorf("ACF with maxLag 0 = %v, want nil", got)
	}
}

func TestDelay_SinePeriod(t *testing.T) {
	// The first autocorrelation minimum of a sinusoid sits at half its
	// period, where the series is anti-correlated with itself.
	tests := []struct {
		name   string
		n      int
		period int
		want   int
	}{
		{"20-sample period", 400, 20, 10},
		{"16-sample period", 64, 16, 8},
		{"80-sample period capped sweep", 2000, 80, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delay(sine(tt.n, tt.period))
			if got < tt.want-2 || got > tt.want+2 {
				t.Errorf("Delay() = %d, want within 2 of %d", got, tt.want)
			}
		})
	}
}

func TestDelay_ShortSeriesFallsBackToOne(t *testing.T) {
	for _, s := range []series.Series{nil, {1}, {1, 2}, {1, 2, 3}} {
		if got := Delay(s); got != 1 {
			t.Errorf("Delay(len %d) = %d, want 1", len(s), got)
		}
	}
}

func TestDelay_ConstantSeries(t *testing.T) {
	s := make(series.Series, 100)
	for i := range s {
		s[i] = 3.5
	}
	// All autocorrelations are 0: a flat table never strictly rises, so the
	// scan walks to the last swept lag.
	got := Delay(s)
	if got != 25 {
		t.Errorf("Delay(constant) = %d, want 25 (last swept lag)", got)
	}
}

func TestFirstLocalMinimum(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"single entry", []float64{0.5}, 1},
		{"rise at second", []float64{0.2, 0.8, 0.1}, 1},
		{"decreasing then rising", []float64{0.9, 0.5, 0.2, 0.4, 0.1}, 3},
		{"strictly decreasing", []float64{0.9, 0.6, 0.3, 0.1}, 4},
		{"plateau then rise", []float64{0.5, 0.3, 0.3, 0.6}, 3},
		{"two equal entries", []float64{0.4, 0.4}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := make([]LagCorrelation, len(tt.values))
			for i, v := range tt.values {
				table[i] = LagCorrelation{Lag: i + 1, Value: v}
			}
			if got := firstLocalMinimum(table); got != tt.want {
				t.Errorf("firstLocalMinimum(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestDimension_Heuristic(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 2},
		{1, 2},
		{10, 2},
		{100, 4},
		{1000, 6},
		{10000, 8},
	}

	for _, tt := range tests {
		s := make(series.Series, tt.n)
		if got := Dimension(s); got != tt.want {
			t.Errorf("Dimension(len %d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestDimension_MonotoneInLength(t *testing.T) {
	prev := 0
	for n := 1; n <= 100000; n *= 10 {
		d := Dimension(make(series.Series, n))
		if d < 2 {
			t.Errorf("Dimension(len %d) = %d, want >= 2", n, d)
		}
		if d < prev {
			t.Errorf("Dimension not monotone: len %d gives %d after %d", n, d, prev)
		}
		prev = d
	}
}
