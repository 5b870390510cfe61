package newton

import (
	"context"
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc api.go

// Renderer renders one rectangular tile of the fractal described by cfg.
// Implementations exist for in-process rendering and, through the generated
// irpc client, for workers connected to the coordinator.
type Renderer interface {
	RenderTile(ctx context.Context, cfg Config, tile image.Rectangle) (TileImage, error)
}

// TileImage holds the colors of one tile in global image coordinates.
// Pix is row-major over Rect, len(Pix) == Rect.Dx()*Rect.Dy().
type TileImage struct {
	Rect image.Rectangle
	Pix  []RGB
}
