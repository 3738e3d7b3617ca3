package synth

import "github.com/san-kum/takens/internal/series"

// lorenz holds the classic chaotic parameter set.
type lorenz struct{ sigma, rho, beta float64 }

func newLorenz() lorenz { return lorenz{10.0, 28.0, 8.0 / 3.0} }

func (l lorenz) derive(s [3]float64) [3]float64 {
	return [3]float64{
		l.sigma * (s[1] - s[0]),
		s[0]*(l.rho-s[2]) - s[1],
		s[0]*s[1] - l.beta*s[2],
	}
}

func (l lorenz) rk4Step(s [3]float64, dt float64) [3]float64 {
	k1 := l.derive(s)
	k2 := l.derive(add(s, scale(k1, dt*0.5)))
	k3 := l.derive(add(s, scale(k2, dt*0.5)))
	k4 := l.derive(add(s, scale(k3, dt)))

	dt6 := dt / 6.0
	for i := 0; i < 3; i++ {
		s[i] += dt6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
	return s
}

func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(a [3]float64, f float64) [3]float64 {
	return [3]float64{a[0] * f, a[1] * f, a[2] * f}
}

// lorenzTransient is how many initial steps are discarded so the recorded
// trajectory sits on the attractor.
const lorenzTransient = 1000

// LorenzX integrates the Lorenz system with a fixed-step RK4 scheme and
// returns n samples of the x-component, the canonical scalar observable for
// delay-embedding demonstrations.
func LorenzX(n int, dt float64) series.Series {
	if dt <= 0 {
		dt = 0.01
	}

	state := [3]float64{1.0, 1.0, 1.0}
	l := newLorenz()

	for i := 0; i < lorenzTransient; i++ {
		state = l.rk4Step(state, dt)
	}

	s := make(series.Series, n)
	for i := range s {
		state = l.rk4Step(state, dt)
		s[i] = state[0]
	}
	return s
}
