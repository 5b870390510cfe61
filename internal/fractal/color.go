package fractal

import (
	"math"

	newton "github.com/marben/dist_newton"
)

// Black is the color of points that never reach a root.
var Black = newton.RGB{}

// ColorFor maps an outcome to a color. Converged points take their root's base
// color scaled by (1 - iterations/maxIterations)^gamma, truncated per channel.
func ColorFor(o Outcome, palette []newton.RGB, maxIterations int, gamma float64) newton.RGB {
	if !o.Converged() {
		return Black
	}
	base := palette[o.Root]
	brightness := 1.0
	if maxIterations > 0 {
		linear := 1 - float64(o.Iterations)/float64(maxIterations)
		brightness = math.Pow(linear, gamma)
	}
	return newton.RGB{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
	}
}
