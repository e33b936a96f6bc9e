package canvas

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Supported output formats
const (
	FormatPNG  = "png"
	FormatPPM  = "ppm"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Formats lists the accepted format names
var Formats = []string{FormatPNG, FormatPPM, FormatBMP, FormatTIFF}

// IsSupported reports whether Encode accepts the format name
func IsSupported(format string) bool {
	f := strings.ToLower(format)
	return slices.Contains(Formats, f) || f == "tif"
}

// Sink consumes a finished row-major pixel buffer
type Sink interface {
	Write(width, height int, pixels []core.Color) error
}

// Encode writes the canvas to w in the given format
func Encode(w io.Writer, c *Canvas, format string) error {
	switch strings.ToLower(format) {
	case FormatPNG:
		return png.Encode(w, c.ToRGBA())
	case FormatPPM:
		return WritePPM(w, c)
	case FormatBMP:
		return bmp.Encode(w, c.ToRGBA())
	case FormatTIFF, "tif":
		return tiff.Encode(w, c.ToRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}
}

// FileSink writes pixel buffers to an image file, creating parent directories
type FileSink struct {
	Path   string
	Format string // Empty means infer from the file extension
}

// Write encodes the pixels into s.Path
func (s FileSink) Write(width, height int, pixels []core.Color) error {
	c, err := FromPixels(width, height, pixels)
	if err != nil {
		return err
	}

	format := s.Format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(s.Path), ".")
	}

	if !IsSupported(format) {
		return fmt.Errorf("unsupported image format %q (supported: %s)", format, strings.Join(Formats, ", "))
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}

	if err := Encode(file, c, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", s.Path, err)
	}
	return file.Close()
}
