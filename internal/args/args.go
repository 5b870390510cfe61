// Package args parses the command line shared by the renderer binaries:
// flags first, then "<n> [width] [height]".
package args

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/fractal"
)

var (
	ErrMissingOrder = errors.New("args: missing required argument <n>")
	ErrNotInteger   = errors.New("args: argument must be a valid integer")
	ErrTooManyArgs  = errors.New("args: too many arguments")
)

// integer accepts an optional sign followed by digits only.
var integer = regexp.MustCompile(`^[+-]?[0-9]+$`)

// Args are the positional arguments.
type Args struct {
	N      int
	Width  int
	Height int
}

// ParsePositional validates "<n> [width] [height]". Width and height default
// to newton.DefaultWidth and newton.DefaultHeight.
func ParsePositional(pos []string) (Args, error) {
	a := Args{Width: newton.DefaultWidth, Height: newton.DefaultHeight}
	if len(pos) < 1 {
		return a, ErrMissingOrder
	}
	if len(pos) > 3 {
		return a, fmt.Errorf("%q: %w", pos[3:], ErrTooManyArgs)
	}

	var err error
	if a.N, err = parseInt("<n>", pos[0]); err != nil {
		return a, err
	}
	if a.N == 0 || a.N == 1 || a.N == -1 {
		return a, fmt.Errorf("<n> must not be 0, 1 or -1: %w", newton.ErrInvalidOrder)
	}

	dims := []struct {
		name string
		dst  *int
	}{
		{"[width]", &a.Width},
		{"[height]", &a.Height},
	}
	for i, d := range dims {
		if len(pos) < i+2 {
			break
		}
		v, err := parseInt(d.name, pos[i+1])
		if err != nil {
			return a, err
		}
		if v <= 0 {
			return a, fmt.Errorf("%s must be a positive number: %w", d.name, newton.ErrInvalidSize)
		}
		*d.dst = v
	}
	return a, nil
}

func parseInt(name, s string) (int, error) {
	if !integer.MatchString(s) {
		return 0, fmt.Errorf("%s %q: %w", name, s, ErrNotInteger)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q out of range: %w", name, s, ErrNotInteger)
	}
	return v, nil
}

// Parse parses flags into fs and then the positional arguments. A negative
// order such as "-3" is taken as <n>, not as a flag.
func Parse(fs *flag.FlagSet, argv []string) (Args, error) {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := fs.Parse(markPositional(fs, argv)); err != nil {
		return Args{}, err
	}
	return ParsePositional(fs.Args())
}

// markPositional inserts "--" before the first integer argument that is not a
// flag value, so the flag package stops there.
func markPositional(fs *flag.FlagSet, argv []string) []string {
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		if a == "--" {
			return argv
		}
		if integer.MatchString(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "--")
			return append(out, argv[i:]...)
		}
		if !strings.HasPrefix(a, "-") {
			return argv
		}
		if strings.Contains(a, "=") {
			continue
		}
		if fl := fs.Lookup(strings.TrimLeft(a, "-")); fl != nil && !isBoolFlag(fl) {
			i++
		}
	}
	return argv
}

func isBoolFlag(fl *flag.Flag) bool {
	bf, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// RenderFlags are the configuration overrides shared by the binaries.
type RenderFlags struct {
	Palette    string
	Gamma      float64
	Iterations int
	Tolerance  float64
}

// Register adds the render flags to fs.
func (rf *RenderFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&rf.Palette, "palette", "", "comma separated root colors, e.g. \"#ff0000,#00ff00\" (default: built-in 13 colors)")
	fs.Float64Var(&rf.Gamma, "gamma", newton.DefaultGamma, "brightness falloff exponent")
	fs.IntVar(&rf.Iterations, "iterations", newton.DefaultMaxIterations, "Newton iteration budget per pixel")
	fs.Float64Var(&rf.Tolerance, "tolerance", newton.DefaultTolerance, "convergence distance to a root")
}

// Config builds and validates the render configuration for a.
func (rf *RenderFlags) Config(a Args) (newton.Config, error) {
	cfg := newton.DefaultConfig(a.N, a.Width, a.Height)
	cfg.Gamma = rf.Gamma
	cfg.MaxIterations = rf.Iterations
	cfg.Tolerance = rf.Tolerance
	if rf.Palette != "" {
		p, err := fractal.ParsePalette(rf.Palette)
		if err != nil {
			return cfg, err
		}
		cfg.Palette = p
	}
	return cfg, cfg.Validate()
}

// Usage prints the command synopsis and the flags of fs to w.
func Usage(w io.Writer, prog string, fs *flag.FlagSet) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))

	fmt.Fprintln(w, title.Render(fmt.Sprintf("Usage: %s [flags] <n> [width] [height]", prog)))
	fmt.Fprintln(w, "  <n>      : degree of the polynomial (integer, not 0, 1 or -1)")
	fmt.Fprintf(w, "  [width]  : width of the output image (optional, positive integer, default: %d)\n", newton.DefaultWidth)
	fmt.Fprintf(w, "  [height] : height of the output image (optional, positive integer, default: %d)\n", newton.DefaultHeight)
	if fs == nil {
		return
	}
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// PrintError prints err to w in red.
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	fmt.Fprintln(w, r.NewStyle().Foreground(lipgloss.Color("1")).Render("Error: "+err.Error()))
}
