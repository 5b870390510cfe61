// Package newton holds the types shared by the Newton fractal renderer:
// the viewport, the render configuration and the tile protocol.
//
// The fractal is drawn for z^n - 1 = 0. Each pixel is a starting point for
// Newton's method and is colored by the root it converges to, darkened by the
// number of iterations it took.
package newton

import (
	"errors"
	"fmt"
)

// Product defaults.
const (
	DefaultWidth         = 800
	DefaultHeight        = 800
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6
	DefaultEpsilon       = 1e-10
	// DefaultGamma sharpens the brightness falloff. 1.0 is linear, larger is darker.
	DefaultGamma = 8.0
)

var (
	ErrInvalidOrder      = errors.New("newton: order n must not be 0, 1 or -1")
	ErrInvalidSize       = errors.New("newton: width and height must be positive")
	ErrInvalidTolerance  = errors.New("newton: tolerance and epsilon must be positive")
	ErrInvalidIterations = errors.New("newton: max iterations must be positive")
	ErrInvalidViewport   = errors.New("newton: viewport bounds must satisfy min < max")
	ErrInvalidGamma      = errors.New("newton: gamma must be a non-negative number")
)

// Viewport is the rectangle of the complex plane mapped onto the pixel grid.
// X is the real axis, Y the imaginary axis.
type Viewport struct {
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64
}

// DefaultViewport covers [-2, 2] x [-2, 2].
var DefaultViewport = Viewport{
	Xmin: -2,
	Xmax: 2,
	Ymin: -2,
	Ymax: 2,
}

// RGB is a 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Config describes one render. It is fixed for the lifetime of a render and
// is sent as-is to remote workers with every tile request.
type Config struct {
	N             int
	Width         int
	Height        int
	Tolerance     float64
	Epsilon       float64
	MaxIterations int
	Gamma         float64
	Viewport      Viewport
	// Palette overrides the master color list. Nil means the built-in list.
	Palette []RGB
}

// DefaultConfig returns a configuration with product defaults for order n.
func DefaultConfig(n, width, height int) Config {
	return Config{
		N:             n,
		Width:         width,
		Height:        height,
		Tolerance:     DefaultTolerance,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Gamma:         DefaultGamma,
		Viewport:      DefaultViewport,
	}
}

// Validate reports the first problem with c, wrapping one of the Err* values.
func (c Config) Validate() error {
	if c.N == 0 || c.N == 1 || c.N == -1 {
		return fmt.Errorf("n=%d: %w", c.N, ErrInvalidOrder)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrInvalidSize)
	}
	if !(c.Tolerance > 0) || !(c.Epsilon > 0) {
		return fmt.Errorf("tolerance=%g epsilon=%g: %w", c.Tolerance, c.Epsilon, ErrInvalidTolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations=%d: %w", c.MaxIterations, ErrInvalidIterations)
	}
	if !(c.Gamma >= 0) {
		return fmt.Errorf("gamma=%g: %w", c.Gamma, ErrInvalidGamma)
	}
	v := c.Viewport
	if !(v.Xmin < v.Xmax) || !(v.Ymin < v.Ymax) {
		return fmt.Errorf("viewport %+v: %w", v, ErrInvalidViewport)
	}
	return nil
}

// Degree returns |n|, the number of roots.
func (c Config) Degree() int {
	if c.N < 0 {
		return -c.N
	}
	return c.N
}
