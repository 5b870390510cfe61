// Package dispatch distributes the tiles of one render across renderers.
//
// A Scheduler owns the color buffer and the set of unfinished tiles. Each
// renderer, local or remote, is driven by its own Render call. When no
// unstarted tile is left, idle renderers pick up tiles that are still in
// flight elsewhere; the first result for a tile wins and later duplicates are
// dropped. The fractal code is deterministic, so duplicates are identical.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/fractal"
)

// ErrTileMismatch is returned when a renderer answers with a different tile than requested.
var ErrTileMismatch = errors.New("dispatch: renderer returned a different tile")

// Scheduler hands out the tiles of one render and assembles the results.
type Scheduler struct {
	cfg newton.Config
	buf *fractal.Buffer
	log *log.Logger

	ctx       context.Context
	ctxCancel context.CancelFunc

	workers        int
	totalPixels    int
	finishedPixels int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

// NewScheduler splits the image of cfg into fractal.TileSize tiles.
// Progress is logged to l; a nil l uses log.Default().
func NewScheduler(cfg newton.Config, l *log.Logger) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		l = log.Default()
	}
	buf := fractal.NewBuffer(cfg.Width, cfg.Height)
	allTilesSlice := fractal.SplitRect(buf.Bounds(), fractal.TileSize, fractal.TileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cfg:         cfg,
		buf:         buf,
		log:         l,
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		totalPixels: cfg.Width * cfg.Height,
		ctx:         ctx,
		ctxCancel:   cancel,
	}, nil
}

// Config returns the render configuration.
func (s *Scheduler) Config() newton.Config {
	return s.cfg
}

func (s *Scheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		for tile = range s.unstarted {
			break
		}
		delete(s.unstarted, tile)

		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		for tile = range s.inProcess {
			break
		}
		return tile, true
	}

	return image.Rectangle{}, false
}

// Done is closed once every tile has been stored.
func (s *Scheduler) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Wait blocks until the image is complete or ctx ends.
func (s *Scheduler) Wait(ctx context.Context) (*fractal.Buffer, error) {
	select {
	case <-s.ctx.Done():
		return s.buf, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Finished returns the completed fraction of pixels in [0, 1].
func (s *Scheduler) Finished() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// Workers returns the number of renderers currently attached.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

func (s *Scheduler) tileFinished(tile image.Rectangle, img newton.TileImage) error {
	if img.Rect != tile {
		return fmt.Errorf("asked for %v, got %v: %w", tile, img.Rect, ErrTileMismatch)
	}

	s.m.Lock()
	if _, found := s.inProcess[tile]; !found {
		// another renderer delivered it first
		s.m.Unlock()
		return nil
	}
	if err := s.buf.DrawTile(img); err != nil {
		s.m.Unlock()
		return err
	}
	delete(s.inProcess, tile)
	s.finishedPixels += tile.Dx() * tile.Dy()
	done := len(s.unstarted) == 0 && len(s.inProcess) == 0
	s.m.Unlock()

	s.log.Printf("finished: %.1f%%", 100*s.Finished())
	if done {
		s.ctxCancel()
	}
	return nil
}

func (s *Scheduler) addWorker(delta int) {
	s.m.Lock()
	s.workers += delta
	w := s.workers
	s.m.Unlock()

	s.log.Printf("workers: %d", w)
}

// Render feeds tiles to r until none are left. It can be called from multiple
// goroutines in parallel, once per renderer. A renderer error ends this call;
// its tile stays in flight and is picked up by the other renderers.
func (s *Scheduler) Render(ctx context.Context, r newton.Renderer) error {
	s.addWorker(1)
	defer s.addWorker(-1)

	for {
		tile, found := s.popTile()
		if !found {
			return nil
		}
		img, err := r.RenderTile(ctx, s.cfg, tile)
		if err != nil {
			return fmt.Errorf("render tile %v: %w", tile, err)
		}
		if err := s.tileFinished(tile, img); err != nil {
			return err
		}
	}
}
