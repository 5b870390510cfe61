// newton renders the Newton fractal of z^n - 1 = 0 and saves it as a plain-text
// P3 image in the output directory.
//
//	newton [flags] <n> [width] [height]
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/guptarohit/asciigraph"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/args"
	"github.com/marben/dist_newton/internal/fractal"
	"github.com/marben/dist_newton/internal/ppm"
)

// surveyStep is the pixel spacing of the -v iteration histogram.
const surveyStep = 10

type options struct {
	cfg      newton.Config
	strategy fractal.Strategy
	dir      string
	verbose  bool
}

func main() {
	prog := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	dir := fs.String("o", ppm.DefaultDir, "output directory")
	strategy := fs.String("strategy", "parallel", "pixel walk: seq or parallel")
	workers := fs.Int("workers", 0, "goroutines for -strategy parallel (0: one per CPU)")
	verbose := fs.Bool("v", false, "log roots, palette, sampled pixels and an iteration histogram")
	var rf args.RenderFlags
	rf.Register(fs)

	fail := func(err error) {
		args.PrintError(os.Stderr, err)
		args.Usage(os.Stderr, prog, fs)
		os.Exit(1)
	}

	a, err := args.Parse(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		args.Usage(os.Stdout, prog, fs)
		return
	}
	if err != nil {
		fail(err)
	}
	cfg, err := rf.Config(a)
	if err != nil {
		fail(err)
	}
	st, err := fractal.ParseStrategy(*strategy, *workers)
	if err != nil {
		fail(err)
	}

	if err := run(options{cfg: cfg, strategy: st, dir: *dir, verbose: *verbose}); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(o options) error {
	trace := log.New(io.Discard, "", 0)
	fopts := []fractal.Option{fractal.WithStrategy(o.strategy)}
	if o.verbose {
		trace = log.New(os.Stderr, "debug: ", log.LstdFlags)
		fopts = append(fopts, fractal.WithTrace(trace))
	}

	f, err := fractal.New(o.cfg, fopts...)
	if err != nil {
		return err
	}
	f.LogSummary()

	log.Printf("rendering z^%d - 1 at %dx%d", o.cfg.N, o.cfg.Width, o.cfg.Height)
	start := time.Now()
	buf := f.Generate()
	log.Printf("render took %s", time.Since(start))

	if o.verbose {
		logSurvey(trace, f)
	}

	path, err := ppm.Save(o.dir, ppm.FileName(o.cfg.N, time.Now()), buf)
	if err != nil {
		return err
	}
	log.Printf("image saved to %q", path)
	return nil
}

// logSurvey prints outcome counts and a plot of how many sampled pixels
// converged after each iteration count.
func logSurvey(l *log.Logger, f *fractal.Fractal) {
	sv := f.Survey(surveyStep)
	l.Printf("survey every %d px: %d samples, %d unconverged, per root %v", sv.Step, sv.Samples, sv.Unconverged, sv.PerRoot)

	last := sv.MaxConvergedIterations()
	if last < 0 {
		return
	}
	data := make([]float64, last+1)
	for i := range data {
		data[i] = float64(sv.Histogram[i])
	}
	l.Printf("iterations to converge:\n%s", asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("sampled pixels per iteration count"),
	))
}
