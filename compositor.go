package isotown

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Compositor owns the low-resolution working surface and upscales it onto the
// display with nearest-neighbor sampling, so every working pixel becomes a
// crisp K×K block. An optional scanline overlay is drawn on top.
type Compositor struct {
	pixelScale int
	scanlines  bool

	working *ebiten.Image
	overlay *ebiten.Image
	w, h    int
}

// NewCompositor creates a compositor for the given density factor.
func NewCompositor(pixelScale int, scanlines bool) *Compositor {
	if pixelScale < 1 {
		pixelScale = 1
	}
	return &Compositor{pixelScale: pixelScale, scanlines: scanlines}
}

// Resize recreates the working surface for a new display size. The scanline
// overlay is rebuilt once here, not per frame.
func (c *Compositor) Resize(w, h int) {
	if w == c.w && h == c.h && c.working != nil {
		return
	}
	c.w, c.h = w, h

	ww, wh := w/c.pixelScale, h/c.pixelScale
	if ww < 1 {
		ww = 1
	}
	if wh < 1 {
		wh = 1
	}
	c.working = ebiten.NewImage(ww, wh)

	if c.scanlines {
		c.overlay = ebiten.NewImage(w, h)
		row := color.RGBA{A: 15} // black at about 6% alpha
		for y := 0; y < h; y += 3 {
			vector.DrawFilledRect(c.overlay, 0, float32(y), float32(w), 1, row, false)
		}
	}
}

// Working returns the low-resolution render target. Valid after Resize.
func (c *Compositor) Working() *ebiten.Image {
	return c.working
}

// WorkingSize returns the working-surface dimensions in pixels.
func (c *Compositor) WorkingSize() (int, int) {
	if c.working == nil {
		return 0, 0
	}
	b := c.working.Bounds()
	return b.Dx(), b.Dy()
}

// Composite blits the working surface onto the display and applies the
// scanline overlay.
func (c *Compositor) Composite(dst *ebiten.Image) {
	if c.working == nil {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(float64(c.pixelScale), float64(c.pixelScale))
	dst.DrawImage(c.working, op)
	if c.scanlines && c.overlay != nil {
		dst.DrawImage(c.overlay, nil)
	}
}
