package fractal

import (
	"fmt"
	"math"

	newton "github.com/marben/dist_newton"
)

// Roots returns the solutions of z^n - 1 = 0 as (cos θk, sin θk) with
// θk = 2πk/n for k = 0..|n|-1.
//
// For negative n the count is |n| and the angle keeps the sign of n, so the
// same unit-circle points are listed clockwise starting at 1+0i.
func Roots(n int) ([]complex128, error) {
	if n == 0 || n == 1 || n == -1 {
		return nil, fmt.Errorf("roots of n=%d: %w", n, newton.ErrInvalidOrder)
	}
	count := n
	if count < 0 {
		count = -count
	}
	roots := make([]complex128, count)
	for k := range roots {
		theta := 2 * math.Pi * float64(k) / float64(n)
		roots[k] = complex(math.Cos(theta), math.Sin(theta))
	}
	return roots, nil
}
