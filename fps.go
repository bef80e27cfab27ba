package isotown

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the FPS/TPS readout in the display corner. The backing
// image is refreshed every ~0.5 seconds, not every frame.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func newFPSOverlay() *fpsOverlay {
	o := &fpsOverlay{img: ebiten.NewImage(100, 32), since: 1}
	return o
}

// update refreshes the readout when due. dt is in seconds.
func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since < 0.5 {
		return
	}
	o.since = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// draw blits the readout to the display's top-left corner.
func (o *fpsOverlay) draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	dst.DrawImage(o.img, op)
}
