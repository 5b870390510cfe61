// Package cmath implements the complex arithmetic used by the Newton solver.
//
// The functions spell out their formulas instead of relying on Go's built-in
// complex operators so that division by zero and negative powers have a single,
// documented behavior on every platform.
package cmath

import "math"

// Sub returns a - b.
func Sub(a, b complex128) complex128 {
	return complex(real(a)-real(b), imag(a)-imag(b))
}

// Mul returns a * b.
func Mul(a, b complex128) complex128 {
	return complex(
		real(a)*real(b)-imag(a)*imag(b),
		real(a)*imag(b)+imag(a)*real(b),
	)
}

// Div returns a / b. If |b|^2 is exactly zero the result is 0+0i.
func Div(a, b complex128) complex128 {
	magSq := real(b)*real(b) + imag(b)*imag(b)
	if magSq == 0.0 {
		return 0
	}
	return complex(
		(real(a)*real(b)+imag(a)*imag(b))/magSq,
		(imag(a)*real(b)-real(a)*imag(b))/magSq,
	)
}

// Pow returns z^n by repeated multiplication. Pow(z, 0) is 1+0i and a negative
// n gives Div(1, Pow(z, -n)), so Pow(0, n) is 0 for n < 0.
func Pow(z complex128, n int) complex128 {
	if n < 0 {
		return Div(1, Pow(z, -n))
	}
	result := complex(1, 0)
	for i := 0; i < n; i++ {
		result = Mul(result, z)
	}
	return result
}

// Abs returns the magnitude of z.
func Abs(z complex128) float64 {
	return math.Sqrt(real(z)*real(z) + imag(z)*imag(z))
}
