package raster

import (
	"errors"
	"fmt"
)

// ErrSurfaceUnavailable reports that the output surface size could not be
// determined.
var ErrSurfaceUnavailable = errors.New("raster: output surface unavailable")

// Surface reports the size of the output surface in cells.
type Surface interface {
	Size() (w, h int, err error)
}

// Sink receives a finished frame, one slice of cells per row, top to bottom.
type Sink interface {
	WriteRows(rows [][]rune) error
}

// FromSurface allocates a blank buffer sized to s. If s cannot report its
// size, the returned buffer is zero-sized and err wraps
// ErrSurfaceUnavailable, so the caller may pick a default instead.
func FromSurface(s Surface) (*Framebuffer, error) {
	w, h, err := s.Size()
	if err != nil {
		if !errors.Is(err, ErrSurfaceUnavailable) {
			err = fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
		}
		return NewFramebuffer(0, 0), err
	}
	return NewFramebuffer(w, h), nil
}

// Render hands the whole grid to sink.
func (fb *Framebuffer) Render(sink Sink) error {
	if err := sink.WriteRows(fb.Rows()); err != nil {
		return fmt.Errorf("raster: render: %w", err)
	}
	return nil
}
