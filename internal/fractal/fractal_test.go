package fractal_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/fractal"
)

// FractalSuite exercises the grid driver and its strategies.
type FractalSuite struct {
	suite.Suite
}

func TestFractalSuite(t *testing.T) {
	suite.Run(t, new(FractalSuite))
}

func (s *FractalSuite) mustNew(cfg newton.Config, opts ...fractal.Option) *fractal.Fractal {
	f, err := fractal.New(cfg, opts...)
	require.NoError(s.T(), err)
	return f
}

// TestNew_Errors verifies that invalid configurations are rejected.
func (s *FractalSuite) TestNew_Errors() {
	base := newton.DefaultConfig(3, 10, 10)

	mutate := func(fn func(*newton.Config)) newton.Config {
		c := base
		fn(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  newton.Config
		err  error
	}{
		{"OrderZero", mutate(func(c *newton.Config) { c.N = 0 }), newton.ErrInvalidOrder},
		{"OrderOne", mutate(func(c *newton.Config) { c.N = 1 }), newton.ErrInvalidOrder},
		{"OrderMinusOne", mutate(func(c *newton.Config) { c.N = -1 }), newton.ErrInvalidOrder},
		{"ZeroWidth", mutate(func(c *newton.Config) { c.Width = 0 }), newton.ErrInvalidSize},
		{"NegativeHeight", mutate(func(c *newton.Config) { c.Height = -4 }), newton.ErrInvalidSize},
		{"ZeroTolerance", mutate(func(c *newton.Config) { c.Tolerance = 0 }), newton.ErrInvalidTolerance},
		{"ZeroEpsilon", mutate(func(c *newton.Config) { c.Epsilon = 0 }), newton.ErrInvalidTolerance},
		{"NoIterations", mutate(func(c *newton.Config) { c.MaxIterations = 0 }), newton.ErrInvalidIterations},
		{"NegativeGamma", mutate(func(c *newton.Config) { c.Gamma = -1 }), newton.ErrInvalidGamma},
		{"FlatViewport", mutate(func(c *newton.Config) { c.Viewport.Xmax = c.Viewport.Xmin }), newton.ErrInvalidViewport},
		{"InvertedViewport", mutate(func(c *newton.Config) { c.Viewport.Ymin, c.Viewport.Ymax = 2, -2 }), newton.ErrInvalidViewport},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := fractal.New(tc.cfg)
			s.True(errors.Is(err, tc.err), "New error = %v; want %v", err, tc.err)
		})
	}
}

func (s *FractalSuite) TestRootsAndPaletteAligned() {
	for _, n := range []int{2, 3, 13, 14, 20, -4} {
		f := s.mustNew(newton.DefaultConfig(n, 4, 4))
		s.Len(f.Roots(), f.Config().Degree())
		s.Len(f.Palette(), f.Config().Degree())
	}
}

// TestStartPoint maps the corners and centre of the default viewport.
func (s *FractalSuite) TestStartPoint() {
	f := s.mustNew(newton.DefaultConfig(3, 5, 9))
	s.Equal(complex(-2, 2), f.StartPoint(0, 0))
	s.Equal(complex(2, 2), f.StartPoint(4, 0))
	s.Equal(complex(-2, -2), f.StartPoint(0, 8))
	s.Equal(complex(2, -2), f.StartPoint(4, 8))
	s.Equal(complex(0, 0), f.StartPoint(2, 4))
	s.Equal(complex(-1, 1.5), f.StartPoint(1, 1))
}

func (s *FractalSuite) TestStartPoint_SinglePixel() {
	f := s.mustNew(newton.DefaultConfig(3, 1, 1))
	s.Equal(complex(-2, 2), f.StartPoint(0, 0))
}

func (s *FractalSuite) TestGenerate_Size() {
	f := s.mustNew(newton.DefaultConfig(3, 3, 3))
	buf := f.Generate()
	s.Equal(3, buf.Width)
	s.Equal(3, buf.Height)
	s.Len(buf.Pix, 9)
}

// TestGenerate_Idempotent renders twice and expects identical buffers.
func (s *FractalSuite) TestGenerate_Idempotent() {
	f := s.mustNew(newton.DefaultConfig(5, 37, 23))
	s.Equal(f.Generate().Pix, f.Generate().Pix)
}

// TestGenerate_StrategiesAgree compares the parallel tiles against the sequential walk.
func (s *FractalSuite) TestGenerate_StrategiesAgree() {
	cfg := newton.DefaultConfig(4, 130, 70)
	want := s.mustNew(cfg).Generate()

	for _, workers := range []int{0, 1, 3, 16} {
		got := s.mustNew(cfg, fractal.WithStrategy(fractal.Parallel{Workers: workers})).Generate()
		s.Equal(want.Pix, got.Pix, "workers=%d", workers)
	}
}

// TestPixel_OnRoot places the right middle pixel exactly on 1+0i.
func (s *FractalSuite) TestPixel_OnRoot() {
	cfg := newton.DefaultConfig(4, 3, 3)
	cfg.Viewport = newton.Viewport{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	f := s.mustNew(cfg)

	o, c := f.Pixel(2, 1)
	s.Equal(fractal.Outcome{Root: 0, Iterations: 0}, o)
	s.Equal(f.Palette()[0], c)

	// The centre is 0+0i where the derivative vanishes.
	o, c = f.Pixel(1, 1)
	s.Equal(fractal.Outcome{Root: fractal.NoRoot, Iterations: 0}, o)
	s.Equal(fractal.Black, c)

	buf := f.Generate()
	s.Equal(f.Palette()[0], buf.At(2, 1))
	s.Equal(fractal.Black, buf.At(1, 1))
}

// TestPixel_RootIndexInRange checks every outcome against the root set size.
func (s *FractalSuite) TestPixel_RootIndexInRange() {
	f := s.mustNew(newton.DefaultConfig(7, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			o, _ := f.Pixel(x, y)
			s.GreaterOrEqual(o.Root, fractal.NoRoot)
			s.Less(o.Root, 7)
			s.GreaterOrEqual(o.Iterations, 0)
			s.LessOrEqual(o.Iterations, f.Config().MaxIterations)
		}
	}
}

func (s *FractalSuite) TestRenderTile_MatchesGenerate() {
	f := s.mustNew(newton.DefaultConfig(3, 20, 15))
	buf := f.Generate()

	r := image.Rect(5, 3, 17, 11)
	tile := f.RenderTile(r)
	s.Equal(r, tile.Rect)
	s.Len(tile.Pix, r.Dx()*r.Dy())
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.Equal(buf.At(x, y), tile.Pix[i], "pixel (%d,%d)", x, y)
			i++
		}
	}

	assembled := fractal.NewBuffer(20, 15)
	for _, t := range fractal.SplitRect(assembled.Bounds(), 8, 8) {
		s.Require().NoError(assembled.DrawTile(f.RenderTile(t)))
	}
	s.Equal(buf.Pix, assembled.Pix)
}

func (s *FractalSuite) TestCustomPalette() {
	cfg := newton.DefaultConfig(3, 3, 3)
	cfg.Palette = []newton.RGB{{R: 10, G: 20, B: 30}}
	f := s.mustNew(cfg)
	s.Equal([]newton.RGB{{R: 10, G: 20, B: 30}, {R: 10, G: 20, B: 30}, {R: 10, G: 20, B: 30}}, f.Palette())
}

func (s *FractalSuite) TestSurvey() {
	f := s.mustNew(newton.DefaultConfig(3, 21, 10))
	sv := f.Survey(4)
	s.Equal(4, sv.Step)
	s.Equal(6*3, sv.Samples)

	total := sv.Unconverged
	for _, c := range sv.PerRoot {
		total += c
	}
	s.Equal(sv.Samples, total)

	converged := 0
	for _, c := range sv.Histogram {
		converged += c
	}
	s.Equal(sv.Samples-sv.Unconverged, converged)
	s.Greater(sv.MaxConvergedIterations(), 0)

	s.Equal(21*10, f.Survey(0).Samples)
}

func (s *FractalSuite) TestTrace() {
	var out bytes.Buffer
	l := log.New(&out, "", 0)
	f := s.mustNew(newton.DefaultConfig(3, 3, 3), fractal.WithTrace(l))

	f.LogSummary()
	s.Contains(out.String(), "root 0: (1.000000, 0.000000)")
	s.Contains(out.String(), fractal.Hex(fractal.MasterPalette[2]))

	out.Reset()
	f.Generate()
	s.Contains(out.String(), "pixel (0,0)")
	s.NotContains(out.String(), "pixel (1,0)")
}

func (s *FractalSuite) TestTileRenderer() {
	cfg := newton.DefaultConfig(3, 30, 30)
	var rendered []image.Rectangle
	r := &fractal.TileRenderer{OnTileRender: func(t image.Rectangle) { rendered = append(rendered, t) }}

	tile := image.Rect(10, 10, 20, 25)
	img, err := r.RenderTile(context.Background(), cfg, tile)
	s.Require().NoError(err)
	s.Equal(s.mustNew(cfg).RenderTile(tile), img)
	s.Equal([]image.Rectangle{tile}, rendered)

	_, err = r.RenderTile(context.Background(), cfg, image.Rect(20, 20, 31, 30))
	s.ErrorIs(err, fractal.ErrTileBounds)
	_, err = r.RenderTile(context.Background(), cfg, image.Rectangle{})
	s.ErrorIs(err, fractal.ErrTileBounds)

	bad := cfg
	bad.N = 1
	_, err = r.RenderTile(context.Background(), bad, tile)
	s.ErrorIs(err, newton.ErrInvalidOrder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RenderTile(ctx, cfg, tile)
	s.ErrorIs(err, context.Canceled)
}

// TestTileRenderer_ReusesFractal keeps one Fractal per configuration.
func (s *FractalSuite) TestTileRenderer_ReusesFractal() {
	cfg := newton.DefaultConfig(4, 64, 64)
	cfg.Palette = []newton.RGB{{R: 9}, {G: 9}}
	r := &fractal.TileRenderer{}

	for _, tile := range fractal.SplitRect(image.Rect(0, 0, 64, 64), 16, 16) {
		img, err := r.RenderTile(context.Background(), cfg, tile)
		s.Require().NoError(err)
		s.Equal(s.mustNew(cfg).RenderTile(tile), img)
	}
	s.Equal(1, r.Builds())

	// an equal palette in a fresh slice is the same configuration
	same := cfg
	same.Palette = append([]newton.RGB(nil), cfg.Palette...)
	_, err := r.RenderTile(context.Background(), same, image.Rect(0, 0, 8, 8))
	s.Require().NoError(err)
	s.Equal(1, r.Builds())

	other := cfg
	other.Gamma = 2
	img, err := r.RenderTile(context.Background(), other, image.Rect(0, 0, 8, 8))
	s.Require().NoError(err)
	s.Equal(s.mustNew(other).RenderTile(image.Rect(0, 0, 8, 8)), img)
	s.Equal(2, r.Builds())

	bad := cfg
	bad.N = 0
	_, err = r.RenderTile(context.Background(), bad, image.Rect(0, 0, 8, 8))
	s.ErrorIs(err, newton.ErrInvalidOrder)
	s.Equal(2, r.Builds())
}

func (s *FractalSuite) TestParseStrategy() {
	st, err := fractal.ParseStrategy("seq", 4)
	s.NoError(err)
	s.Equal(fractal.Sequential{}, st)

	st, err = fractal.ParseStrategy("parallel", 4)
	s.NoError(err)
	s.Equal(fractal.Parallel{Workers: 4}, st)

	_, err = fractal.ParseStrategy("simd", 4)
	s.ErrorIs(err, fractal.ErrUnknownStrategy)
}
