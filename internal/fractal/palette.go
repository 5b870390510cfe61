package fractal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	newton "github.com/marben/dist_newton"
)

// ErrBadColor is returned by ParsePalette for entries that are not #rrggbb colors.
var ErrBadColor = errors.New("fractal: palette entries must be hex colors like #ff8800")

// masterHex is the built-in list of high-contrast root colors.
var masterHex = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#4363d8", // blue
	"#ffe119", // yellow
	"#f58231", // orange
	"#911eb4", // purple
	"#42d4f4", // cyan
	"#f032e6", // magenta
	"#bfef45", // lime
	"#fabed4", // pink
	"#469990", // teal
	"#dcbeff", // lavender
	"#9a6324", // brown
}

// MasterPalette is the default color list. Root k gets MasterPalette[k%13].
var MasterPalette = mustParsePalette(masterHex)

// BuildPalette returns one base color per root of z^n - 1, cycling through
// master. An empty master falls back to MasterPalette.
func BuildPalette(n int, master []newton.RGB) []newton.RGB {
	if len(master) == 0 {
		master = MasterPalette
	}
	if n < 0 {
		n = -n
	}
	palette := make([]newton.RGB, n)
	for k := range palette {
		palette[k] = master[k%len(master)]
	}
	return palette
}

// ParsePalette parses a comma separated list of hex colors.
func ParsePalette(s string) ([]newton.RGB, error) {
	var hexes []string
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		hexes = append(hexes, field)
	}
	if len(hexes) == 0 {
		return nil, fmt.Errorf("palette %q: %w", s, ErrBadColor)
	}
	return parsePalette(hexes)
}

func parsePalette(hexes []string) ([]newton.RGB, error) {
	out := make([]newton.RGB, 0, len(hexes))
	for _, h := range hexes {
		if !strings.HasPrefix(h, "#") {
			h = "#" + h
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", h, ErrBadColor)
		}
		r, g, b := c.RGB255()
		out = append(out, newton.RGB{R: r, G: g, B: b})
	}
	return out, nil
}

func mustParsePalette(hexes []string) []newton.RGB {
	p, err := parsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Hex formats c as #rrggbb.
func Hex(c newton.RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
