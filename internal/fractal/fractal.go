// Package fractal renders Newton fractals for z^n - 1 = 0.
//
// A Fractal is built once per render from a newton.Config. It pre-computes the
// roots and the palette, then maps every pixel to a starting point in the
// viewport, runs the Solver and colors the Outcome. Rendering the whole grid is
// delegated to a Strategy; all strategies produce identical buffers.
//
// Errors:
//
//   - newton.ErrInvalidOrder and the other newton.Err* values from New.
//   - ErrUnknownStrategy from ParseStrategy.
//   - ErrBadColor from ParsePalette.
//   - ErrTileBounds from TileRenderer.
package fractal

import (
	"image"
	"log"

	newton "github.com/marben/dist_newton"
)

// TraceInterval selects which pixels are traced: every TraceInterval-th row and column.
const TraceInterval = 100

// Fractal is one configured render. It is immutable after New and safe for
// concurrent use.
type Fractal struct {
	cfg      newton.Config
	solver   Solver
	palette  []newton.RGB
	strategy Strategy
	trace    *log.Logger
}

// Option customizes a Fractal.
type Option func(*Fractal)

// WithStrategy selects how Generate walks the grid. The default is Sequential.
func WithStrategy(s Strategy) Option {
	return func(f *Fractal) {
		if s != nil {
			f.strategy = s
		}
	}
}

// WithTrace enables diagnostic output on l. A nil logger disables it.
func WithTrace(l *log.Logger) Option {
	return func(f *Fractal) {
		f.trace = l
	}
}

// New validates cfg and pre-computes the roots and palette.
func New(cfg newton.Config, opts ...Option) (*Fractal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	roots, err := Roots(cfg.N)
	if err != nil {
		return nil, err
	}
	f := &Fractal{
		cfg: cfg,
		solver: Solver{
			N:             cfg.N,
			Roots:         roots,
			Tolerance:     cfg.Tolerance,
			Epsilon:       cfg.Epsilon,
			MaxIterations: cfg.MaxIterations,
		},
		palette:  BuildPalette(cfg.N, cfg.Palette),
		strategy: Sequential{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Config returns the configuration the fractal was built from.
func (f *Fractal) Config() newton.Config {
	return f.cfg
}

// Roots returns a copy of the root set.
func (f *Fractal) Roots() []complex128 {
	return append([]complex128(nil), f.solver.Roots...)
}

// Palette returns a copy of the per-root base colors.
func (f *Fractal) Palette() []newton.RGB {
	return append([]newton.RGB(nil), f.palette...)
}

// StartPoint maps pixel (x, y) into the viewport. Column 0 is Xmin and the last
// column Xmax; row 0 is Ymax and the last row Ymin. A one pixel wide or tall
// image sits on Xmin or Ymax respectively.
func (f *Fractal) StartPoint(x, y int) complex128 {
	v := f.cfg.Viewport
	re, im := v.Xmin, v.Ymax
	if f.cfg.Width > 1 {
		re = v.Xmin + float64(x)*(v.Xmax-v.Xmin)/float64(f.cfg.Width-1)
	}
	if f.cfg.Height > 1 {
		im = v.Ymax - float64(y)*(v.Ymax-v.Ymin)/float64(f.cfg.Height-1)
	}
	return complex(re, im)
}

// Solve runs the solver from an arbitrary starting point.
func (f *Fractal) Solve(z complex128) Outcome {
	return f.solver.Solve(z)
}

// Color maps an outcome to its color under this fractal's palette and gamma.
func (f *Fractal) Color(o Outcome) newton.RGB {
	return ColorFor(o, f.palette, f.cfg.MaxIterations, f.cfg.Gamma)
}

// Pixel solves and colors pixel (x, y).
func (f *Fractal) Pixel(x, y int) (Outcome, newton.RGB) {
	z := f.StartPoint(x, y)
	o := f.solver.Solve(z)
	c := f.Color(o)
	if f.trace != nil && x%TraceInterval == 0 && y%TraceInterval == 0 {
		f.trace.Printf("pixel (%d,%d) z=%v root=%d iterations=%d color=%s", x, y, z, o.Root, o.Iterations, Hex(c))
	}
	return o, c
}

// Generate renders the full grid with the configured strategy.
func (f *Fractal) Generate() *Buffer {
	buf := NewBuffer(f.cfg.Width, f.cfg.Height)
	f.strategy.Render(f, buf)
	return buf
}

// RenderTile renders the pixels of r, which must lie inside the image.
func (f *Fractal) RenderTile(r image.Rectangle) newton.TileImage {
	img := newton.TileImage{
		Rect: r,
		Pix:  make([]newton.RGB, 0, r.Dx()*r.Dy()),
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, c := f.Pixel(x, y)
			img.Pix = append(img.Pix, c)
		}
	}
	return img
}

// renderInto writes the pixels of r straight into buf.
func (f *Fractal) renderInto(buf *Buffer, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, c := f.Pixel(x, y)
			buf.Set(x, y, c)
		}
	}
}

// LogSummary writes the root listing and palette to the trace logger.
func (f *Fractal) LogSummary() {
	if f.trace == nil {
		return
	}
	f.trace.Printf("--- calculating %d roots of z^%d - 1 ---", len(f.solver.Roots), f.cfg.N)
	for k, r := range f.solver.Roots {
		f.trace.Printf("root %d: (%.6f, %.6f) color %s", k, real(r), imag(r), Hex(f.palette[k]))
	}
	f.trace.Printf("tolerance=%g epsilon=%g max iterations=%d gamma=%g viewport=%+v",
		f.cfg.Tolerance, f.cfg.Epsilon, f.cfg.MaxIterations, f.cfg.Gamma, f.cfg.Viewport)
}
