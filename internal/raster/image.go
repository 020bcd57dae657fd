package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CellSize returns the pixel size of one cell when drawn with face.
// A nil face selects basicfont.Face7x13.
func CellSize(face font.Face) (w, h int) {
	if face == nil {
		face = basicfont.Face7x13
	}
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(7)
	}
	m := face.Metrics()
	return adv.Ceil(), m.Height.Ceil()
}

// Image draws the grid as light glyphs on black, one cell per
// CellSize(face) block. A nil face selects basicfont.Face7x13.
func (fb *Framebuffer) Image(face font.Face) *image.NRGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	cw, ch := CellSize(face)
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width*cw, fb.Height*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{A: 255}), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: 230, G: 230, B: 230, A: 255}),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for y, row := range fb.Rows() {
		for x, r := range row {
			if r == Blank {
				continue
			}
			d.Dot = fixed.Point26_6{
				X: fixed.I(x * cw),
				Y: fixed.I(y*ch) + ascent,
			}
			d.DrawString(string(r))
		}
	}
	return img
}
