package fractal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"

	newton "github.com/marben/dist_newton"
)

// ErrTileBounds is returned when a requested tile is empty or leaves the image.
var ErrTileBounds = errors.New("fractal: tile must be a non-empty rectangle inside the image")

// TileRenderer renders tiles in-process. It is what workers run and what the
// coordinator uses for its own local renderers.
//
// The Fractal built for a configuration is kept until a tile for a different
// configuration arrives, so roots and palette are computed once per render.
// The zero value is ready to use and safe for concurrent use.
type TileRenderer struct {
	// OnTileRender, if set, is called before each tile is rendered.
	OnTileRender func(tile image.Rectangle)

	m       sync.Mutex
	fractal *Fractal
	builds  int
}

var _ newton.Renderer = (*TileRenderer)(nil)

func (r *TileRenderer) RenderTile(ctx context.Context, cfg newton.Config, tile image.Rectangle) (newton.TileImage, error) {
	if err := ctx.Err(); err != nil {
		return newton.TileImage{}, err
	}
	if tile.Empty() || !tile.In(image.Rect(0, 0, cfg.Width, cfg.Height)) {
		return newton.TileImage{}, fmt.Errorf("tile %v in %dx%d: %w", tile, cfg.Width, cfg.Height, ErrTileBounds)
	}
	if r.OnTileRender != nil {
		r.OnTileRender(tile)
	}

	f, err := r.fractalFor(cfg)
	if err != nil {
		return newton.TileImage{}, err
	}
	return f.RenderTile(tile), nil
}

// Builds returns how many times a Fractal had to be set up.
func (r *TileRenderer) Builds() int {
	r.m.Lock()
	defer r.m.Unlock()
	return r.builds
}

func (r *TileRenderer) fractalFor(cfg newton.Config) (*Fractal, error) {
	r.m.Lock()
	defer r.m.Unlock()

	if r.fractal != nil && sameConfig(r.fractal.cfg, cfg) {
		return r.fractal, nil
	}
	f, err := New(cfg)
	if err != nil {
		return nil, err
	}
	r.fractal = f
	r.builds++
	return f, nil
}

func sameConfig(a, b newton.Config) bool {
	if !slices.Equal(a.Palette, b.Palette) {
		return false
	}
	a.Palette, b.Palette = nil, nil
	return a == b
}
