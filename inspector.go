package isotown

import (
	"fmt"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Inspector popup layout. The popup draws on the full-resolution display so
// its text stays crisp regardless of the pixel density factor.
const (
	popupPadX  = 14
	popupPadY  = 10
	popupLineH = 18
	popupTop   = 60
	popupRight = 16
)

var (
	popupBG     = Hex("#1a1028").WithAlpha(0.93)
	popupBorder = Hex("#ff7799")
	popupInner  = Hex("#554466")
	popupTitle  = Hex("#ff7799")
	popupLabel  = Hex("#aa99bb")
	popupValue  = Hex("#eeddff")
	popupHint   = Hex("#665577")
)

type popupLine struct {
	label, value string
}

// popupLines derives the inspector rows from a building's attributes.
func popupLines(b *Building) []popupLine {
	return []popupLine{
		{"Height:", fmt.Sprintf("%.0f m", b.HeightMeters)},
		{"Floors:", strconv.Itoa(b.Floors)},
		{"Usage:", b.Usage.Label()},
	}
}

// popupTitleFor returns the popup heading for a building.
func popupTitleFor(b *Building) string {
	if b.Name != "" {
		return b.Name
	}
	return "Building"
}

// DrawInspector draws the selection popup in the display's top-right corner.
// No-op when nothing is selected.
func DrawInspector(dst *ebiten.Image, faces *Faces, b *Building) {
	if b == nil || faces == nil {
		return
	}
	lines := popupLines(b)
	title := popupTitleFor(b)

	titleFace := faces.boldFace(14)
	bodyFace := faces.monoFace(12)
	hintFace := faces.monoFace(10)

	maxLineW, _ := text.Measure(title, titleFace, 0)
	for _, l := range lines {
		w, _ := text.Measure(l.label+"  "+l.value, bodyFace, 0)
		if w > maxLineW {
			maxLineW = w
		}
	}

	boxW := maxLineW + popupPadX*2 + 20
	boxH := float64(popupPadY*2 + 22 + len(lines)*popupLineH + 8)
	dw := float64(dst.Bounds().Dx())
	boxX := dw - boxW - popupRight
	boxY := float64(popupTop)

	vector.DrawFilledRect(dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), popupBG.toRGBA(), false)
	vector.StrokeRect(dst, float32(boxX+1), float32(boxY+1), float32(boxW-2), float32(boxH-2), 2, popupBorder.toRGBA(), false)
	vector.StrokeRect(dst, float32(boxX+4), float32(boxY+4), float32(boxW-8), float32(boxH-8), 1, popupInner.toRGBA(), false)

	drawPopupText(dst, title, titleFace, boxX+popupPadX+2, boxY+popupPadY+14, 14, popupTitle)

	sepY := boxY + popupPadY + 22
	vector.StrokeLine(dst, float32(boxX+popupPadX), float32(sepY), float32(boxX+boxW-popupPadX), float32(sepY), 1, popupInner.toRGBA(), false)

	for i, l := range lines {
		y := sepY + 6 + float64(i+1)*popupLineH
		drawPopupText(dst, l.label, bodyFace, boxX+popupPadX+2, y, 12, popupLabel)
		drawPopupText(dst, l.value, bodyFace, boxX+popupPadX+90, y, 12, popupValue)
	}

	drawPopupText(dst, "click elsewhere to close", hintFace, boxX+popupPadX+2, boxY+boxH-8, 10, popupHint)
}

// drawPopupText draws one left-aligned line with y as the baseline.
func drawPopupText(dst *ebiten.Image, s string, face text.Face, x, y, size float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-size)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(dst, s, face, op)
}
