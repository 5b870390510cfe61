package cmath_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marben/dist_newton/internal/cmath"
)

func TestSub(t *testing.T) {
	assert.Equal(t, complex(2, -3), cmath.Sub(complex(3, 1), complex(1, 4)))
	assert.Equal(t, complex(0, 0), cmath.Sub(complex(-2, 2), complex(-2, 2)))
}

func TestMul(t *testing.T) {
	cases := []struct {
		name string
		a, b complex128
		want complex128
	}{
		{"ISquared", complex(0, 1), complex(0, 1), complex(-1, 0)},
		{"Mixed", complex(1, 2), complex(3, 4), complex(-5, 10)},
		{"ByOne", complex(-7.5, 0.25), complex(1, 0), complex(-7.5, 0.25)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cmath.Mul(tc.a, tc.b))
		})
	}
}

func TestDiv(t *testing.T) {
	got := cmath.Div(complex(-5, 10), complex(3, 4))
	assert.InDelta(t, 1.0, real(got), 1e-15)
	assert.InDelta(t, 2.0, imag(got), 1e-15)

	got = cmath.Div(complex(1, 0), complex(0, 1))
	assert.Equal(t, complex(0, -1), got)
}

// TestDivByZero checks the zero fallback instead of Inf/NaN.
func TestDivByZero(t *testing.T) {
	for _, a := range []complex128{complex(1, 0), complex(-3, 7), complex(0, 0)} {
		got := cmath.Div(a, 0)
		require.Equal(t, complex(0, 0), got)
		require.False(t, cmplx.IsNaN(got))
		require.False(t, cmplx.IsInf(got))
	}
}

func TestPow(t *testing.T) {
	z := complex(1.5, -0.5)
	assert.Equal(t, complex(1, 0), cmath.Pow(z, 0))
	assert.Equal(t, complex(1, 0), cmath.Pow(0, 0))
	assert.Equal(t, z, cmath.Pow(z, 1))
	assert.Equal(t, cmath.Mul(z, z), cmath.Pow(z, 2))
	assert.Equal(t, complex(1, 0), cmath.Pow(complex(0, 1), 4))
	assert.Equal(t, complex(0, -1), cmath.Pow(complex(0, 1), 3))

	want := cmplx.Pow(z, 5)
	got := cmath.Pow(z, 5)
	assert.InDelta(t, real(want), real(got), 1e-12)
	assert.InDelta(t, imag(want), imag(got), 1e-12)
}

func TestPowNegative(t *testing.T) {
	got := cmath.Pow(complex(2, 0), -2)
	assert.InDelta(t, 0.25, real(got), 1e-15)
	assert.InDelta(t, 0.0, imag(got), 1e-15)

	got = cmath.Pow(complex(0, 1), -1)
	assert.Equal(t, complex(0, -1), got)

	// The zero-division fallback carries through reciprocal powers.
	assert.Equal(t, complex(0, 0), cmath.Pow(0, -3))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5.0, cmath.Abs(complex(3, 4)))
	assert.Equal(t, 5.0, cmath.Abs(complex(-3, -4)))
	assert.Equal(t, 0.0, cmath.Abs(0))
	assert.InDelta(t, math.Sqrt2, cmath.Abs(complex(1, 1)), 1e-15)
}
