package isotown

// Fixed isometric basis: the classic 2:1 diagonal look. Planar east-west maps
// to the screen diagonal at twice the slope of planar north-south.
const (
	isoBasisX = 0.70711
	isoBasisY = 0.35355
)

// Zoom limits enforced by the camera controller.
const (
	ZoomMin = 0.3
	ZoomMax = 5.0
)

// DefaultPixelScale is the pixel-art density factor K: the working surface is
// 1/K of the display in each dimension, and every working pixel becomes a
// K×K block on screen.
const DefaultPixelScale = 3

// Camera holds the mutable view state: pan offset and zoom factor.
// It is mutated only by the Controller.
type Camera struct {
	PanX, PanY float64
	Zoom       float64
}

// ClampZoom restricts a zoom factor to [ZoomMin, ZoomMax].
func ClampZoom(z float64) float64 {
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}

// Projector maps planar points to working-surface screen points. It is the
// single projection used by every draw routine; no other component performs
// its own projection math.
type Projector struct {
	// PixelScale is the K factor dividing screen coordinates down to the
	// low-resolution working surface.
	PixelScale float64
}

// Project converts a planar point to a working-surface point under the given
// camera. Pure; bit-identical output for identical inputs.
func (p Projector) Project(pt Vec2, cam Camera) Vec2 {
	return Vec2{
		X: ((pt.X-pt.Y)*isoBasisX*cam.Zoom + cam.PanX) / p.PixelScale,
		Y: ((pt.X+pt.Y)*isoBasisY*cam.Zoom + cam.PanY) / p.PixelScale,
	}
}

// HeightOffset converts a planar height to a vertical screen offset on the
// working surface. Roof points sit this many pixels above their ground points.
func (p Projector) HeightOffset(h float64, cam Camera) float64 {
	return h * cam.Zoom / p.PixelScale
}

// DetailScale is the zoom expressed in working-surface pixels per planar
// unit; draw routines compare it against a threshold to gate fine detail.
func (p Projector) DetailScale(cam Camera) float64 {
	return cam.Zoom / p.PixelScale
}

// PanFor returns the pan offset that centers the given planar point in a
// display of the given size at the given zoom.
func (p Projector) PanFor(center Vec2, zoom, displayW, displayH float64) (panX, panY float64) {
	panX = displayW/2 - (center.X-center.Y)*isoBasisX*zoom
	panY = displayH/2 - (center.X+center.Y)*isoBasisY*zoom
	return panX, panY
}
