package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	newton "github.com/marben/dist_newton"
	"github.com/marben/dist_newton/internal/fractal"
)

func TestRun_WritesImage(t *testing.T) {
	dir := t.TempDir()
	err := run(options{
		cfg:      newton.DefaultConfig(3, 3, 3),
		strategy: fractal.Parallel{Workers: 2},
		dir:      dir,
		verbose:  true,
	})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "newton_n3_*.ppm"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "P3\n3 3\n255\n"))
	require.Equal(t, 3+9, strings.Count(string(data), "\n"))
}
