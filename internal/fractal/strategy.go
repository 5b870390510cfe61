package fractal

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// ErrUnknownStrategy is returned by ParseStrategy for unsupported names.
var ErrUnknownStrategy = errors.New("fractal: strategy must be \"seq\" or \"parallel\"")

// Strategy walks the pixel grid of f and fills buf. Every implementation must
// leave buf identical to Sequential.
type Strategy interface {
	Render(f *Fractal, buf *Buffer)
}

// Sequential renders pixels one by one in row-major order.
type Sequential struct{}

func (Sequential) Render(f *Fractal, buf *Buffer) {
	f.renderInto(buf, buf.Bounds())
}

// Parallel renders TileSize x TileSize tiles on a pool of goroutines.
// Workers <= 0 uses runtime.NumCPU().
type Parallel struct {
	Workers int
}

func (p Parallel) Render(f *Fractal, buf *Buffer) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	tiles := SplitRect(buf.Bounds(), TileSize, TileSize)
	jobs := make(chan image.Rectangle, len(tiles))
	for _, t := range tiles {
		jobs <- t
	}
	close(jobs)

	// Tiles never overlap, so workers write disjoint parts of buf.Pix.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				f.renderInto(buf, t)
			}
		}()
	}
	wg.Wait()
}

// ParseStrategy returns the strategy named by the -strategy flag.
func ParseStrategy(name string, workers int) (Strategy, error) {
	switch name {
	case "", "seq", "sequential":
		return Sequential{}, nil
	case "parallel", "par":
		return Parallel{Workers: workers}, nil
	default:
		return nil, fmt.Errorf("strategy %q: %w", name, ErrUnknownStrategy)
	}
}
