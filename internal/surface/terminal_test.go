package surface

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"termraster/internal/raster"
)

func TestWriterWriteRows(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)
	if err := s.WriteRows([][]rune{[]rune("#@ "), []rune("  #")}); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	if got, want := buf.String(), "#@ \n  #\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriterRendersFramebuffer(t *testing.T) {
	fb := raster.NewFramebuffer(5, 3)
	fb.DrawFilledTriangle(raster.Triangle{
		C1: raster.Point{X: 0, Y: 0},
		C2: raster.Point{X: 2, Y: 0},
		C3: raster.Point{X: 0, Y: 2},
	}, raster.Flat.Glyph())

	var buf bytes.Buffer
	if err := fb.Render(NewWriter(&buf)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := buf.String(), "###  \n##   \n#    \n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterError(t *testing.T) {
	err := NewWriter(failWriter{}).WriteRows([][]rune{[]rune("x")})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestTerminalSizeNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	term := NewTerminal(f)
	if _, _, err := term.Size(); !errors.Is(err, raster.ErrSurfaceUnavailable) {
		t.Errorf("Size() err = %v, want ErrSurfaceUnavailable", err)
	}

	fb, err := raster.FromSurface(term)
	if !errors.Is(err, raster.ErrSurfaceUnavailable) {
		t.Errorf("FromSurface err = %v", err)
	}
	if fb.Width != 0 || fb.Height != 0 {
		t.Errorf("fallback buffer %dx%d, want 0x0", fb.Width, fb.Height)
	}

	// Output still goes to the file.
	if err := raster.NewFramebuffer(2, 1).Render(term); err != nil {
		t.Fatalf("Render: %v", err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "  \n" {
		t.Errorf("file = %q", data)
	}
}
