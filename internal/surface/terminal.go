// Package surface connects a raster.Framebuffer to a real output stream.
package surface

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"termraster/internal/raster"
)

// Writer is a raster.Sink that writes each row as a line of text.
type Writer struct {
	w io.Writer
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteRows writes every row followed by a newline and flushes once.
func (s *Writer) WriteRows(rows [][]rune) error {
	bw := bufio.NewWriter(s.w)
	for _, row := range rows {
		for _, r := range row {
			if _, err := bw.WriteRune(r); err != nil {
				return fmt.Errorf("surface: write: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("surface: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	return nil
}

// Terminal is both the size source and the output sink for a terminal file,
// usually os.Stdout.
type Terminal struct {
	*Writer
	f *os.File
}

// NewTerminal wraps f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{Writer: NewWriter(f), f: f}
}

// Size reports the terminal size in cells. If f is not a terminal the error
// wraps raster.ErrSurfaceUnavailable.
func (t *Terminal) Size() (w, h int, err error) {
	fd := int(t.f.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("%w: %s is not a terminal", raster.ErrSurfaceUnavailable, t.f.Name())
	}
	w, h, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", raster.ErrSurfaceUnavailable, err)
	}
	return w, h, nil
}
