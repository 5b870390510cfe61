// Package ppm writes color buffers as plain-text P3 images.
//
// The layout is the header "P3", the dimensions, the maximum channel value 255,
// then one "r g b" line per pixel in row-major order from the top-left corner.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/marben/dist_newton/internal/fractal"
)

// DefaultDir is where images are saved when no directory is given.
const DefaultDir = "out"

// Encode writes buf to w in P3 format.
func Encode(w io.Writer, buf *fractal.Buffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buf.Width, buf.Height); err != nil {
		return err
	}

	line := make([]byte, 0, len("255 255 255\n"))
	for _, c := range buf.Pix {
		line = strconv.AppendUint(line[:0], uint64(c.R), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.G), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.B), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FileName derives a collision-resistant name from the order and a timestamp.
func FileName(n int, t time.Time) string {
	return fmt.Sprintf("newton_n%d_%s.ppm", n, t.Format("20060102_150405"))
}

// Save writes buf to dir/name and returns the full path. The image is written
// to a hidden temporary file in dir and renamed into place, so a failed write
// never leaves a partial file under name. The file mode follows the umask,
// like os.Create.
func Save(dir, name string, buf *fractal.Buffer) (path string, err error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+name+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := Encode(tmp, buf); err != nil {
		return "", fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmpPath, err)
	}

	path = filepath.Join(dir, name)
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename to %s: %w", path, err)
	}
	return path, nil
}
