// Package snapshot saves a framebuffer as an image file.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"termraster/internal/logging"
	"termraster/internal/raster"
)

// ErrUnknownFormat reports an output path whose extension has no encoder.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// Format is an output image encoding.
type Format string

const (
	WebP Format = "webp"
	TGA  Format = "tga"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Render draws fb with the default cell font and scales it up by scale.
func Render(fb *raster.Framebuffer, scale int) *image.NRGBA {
	return Scale(fb.Image(nil), scale)
}

// Encode writes img to w in the given format. WebP output is lossless.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("snapshot: webp encode: %w", err)
		}
	case TGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

// WriteFile renders fb and saves it to path, creating parent directories.
// The format follows the extension of path.
func WriteFile(path string, fb *raster.Framebuffer, scale int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if fb.Width == 0 || fb.Height == 0 {
		return fmt.Errorf("snapshot: write %s: empty framebuffer", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}

	img := Render(fb, scale)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}

	b := img.Bounds()
	logging.Logger().Debug("snapshot written", "path", path, "format", string(format), "width", b.Dx(), "height", b.Dy())
	return nil
}
