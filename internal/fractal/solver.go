package fractal

import "github.com/marben/dist_newton/internal/cmath"

// NoRoot marks an outcome that did not converge, either because the
// derivative vanished or because the iteration budget ran out.
const NoRoot = -1

// Outcome is the result of solving one starting point.
type Outcome struct {
	Root       int // index into the root set, or NoRoot
	Iterations int // in [0, max iterations]
}

// Converged reports whether the iteration reached a root.
func (o Outcome) Converged() bool {
	return o.Root != NoRoot
}

// Step performs one Newton update z - f(z)/f'(z) for f(z) = z^n - 1.
// It returns ok == false when |f'(z)| < epsilon and z is left unchanged.
func Step(z complex128, n int, epsilon float64) (next complex128, ok bool) {
	f := cmath.Sub(cmath.Pow(z, n), 1)
	df := cmath.Mul(complex(float64(n), 0), cmath.Pow(z, n-1))
	if cmath.Abs(df) < epsilon {
		return z, false
	}
	return cmath.Sub(z, cmath.Div(f, df)), true
}

// Solver runs Newton's method for z^n - 1 against a fixed root set.
// A Solver is read-only after construction and safe for concurrent use.
type Solver struct {
	N             int
	Roots         []complex128
	Tolerance     float64
	Epsilon       float64
	MaxIterations int
}

// Solve iterates from z. Each iteration first checks the roots in index order,
// so the lowest index wins when z is within tolerance of several, then takes a
// Newton step. A vanishing derivative ends the run with NoRoot at the current
// count; running out of budget ends it with NoRoot and MaxIterations.
func (s *Solver) Solve(z complex128) Outcome {
	for i := 0; i < s.MaxIterations; i++ {
		for k, root := range s.Roots {
			if cmath.Abs(cmath.Sub(z, root)) < s.Tolerance {
				return Outcome{Root: k, Iterations: i}
			}
		}
		next, ok := Step(z, s.N, s.Epsilon)
		if !ok {
			return Outcome{Root: NoRoot, Iterations: i}
		}
		z = next
	}
	return Outcome{Root: NoRoot, Iterations: s.MaxIterations}
}
