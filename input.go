package isotown

import "math"

// PointerState tracks the drag gesture.
type PointerState uint8

const (
	PointerIdle PointerState = iota
	PointerDragging
)

// clickThreshold is the maximum display-pixel distance between press and
// release for the gesture to count as a click instead of a drag.
const clickThreshold = 5

// Multiplicative zoom change per wheel notch.
const (
	wheelZoomOut = 0.9
	wheelZoomIn  = 1.1
)

// PickFunc resolves a working-surface point to a building, or nil on a miss.
type PickFunc func(x, y float64) *Building

// Controller is the camera and selection state machine. It consumes pointer
// and wheel events in display coordinates and mutates the shared Camera; it
// is the only component that writes Camera or Selection.
type Controller struct {
	cam  *Camera
	pick PickFunc

	// PixelScale divides display coordinates down to the working surface
	// for picking. HeaderOffset is subtracted from the display Y first.
	PixelScale   float64
	HeaderOffset float64

	state          PointerState
	pressX, pressY float64
	lastX, lastY   float64

	selected *Building
	changed  bool
}

// NewController wires the controller to the shared camera and pick function.
func NewController(cam *Camera, pick PickFunc) *Controller {
	return &Controller{
		cam:        cam,
		pick:       pick,
		PixelScale: DefaultPixelScale,
	}
}

// State returns the current gesture state.
func (c *Controller) State() PointerState {
	return c.state
}

// Selected returns the currently inspected building, or nil.
func (c *Controller) Selected() *Building {
	return c.selected
}

// ClearSelection closes the inspector.
func (c *Controller) ClearSelection() {
	if c.selected != nil {
		c.selected = nil
		c.changed = true
	}
}

// ConsumeChanged reports whether the camera or selection changed since the
// last call, and resets the flag. The frame loop uses it as its dirty bit.
func (c *Controller) ConsumeChanged() bool {
	ch := c.changed
	c.changed = false
	return ch
}

// PointerDown starts a potential drag or click at a display position.
func (c *Controller) PointerDown(x, y float64) {
	c.state = PointerDragging
	c.pressX, c.pressY = x, y
	c.lastX, c.lastY = x, y
}

// PointerMove pans the camera by the delta from the previous move while a
// drag is active. Moves while idle are ignored.
func (c *Controller) PointerMove(x, y float64) {
	if c.state != PointerDragging {
		return
	}
	c.cam.PanX += x - c.lastX
	c.cam.PanY += y - c.lastY
	c.lastX, c.lastY = x, y
	c.changed = true
}

// PointerUp ends the gesture. A release within clickThreshold of the press
// position is a click: the point is converted to working-surface space and
// hit-tested, and the result (possibly nil) becomes the selection.
func (c *Controller) PointerUp(x, y float64) {
	if c.state == PointerDragging {
		dx, dy := x-c.pressX, y-c.pressY
		if math.Sqrt(dx*dx+dy*dy) < clickThreshold {
			c.selected = c.pick(x/c.PixelScale, (y-c.HeaderOffset)/c.PixelScale)
			c.changed = true
		}
	}
	c.state = PointerIdle
}

// PointerLeave aborts any drag without touching the selection.
func (c *Controller) PointerLeave() {
	c.state = PointerIdle
}

// Wheel applies one zoom step: a positive delta (scroll toward the user)
// zooms out, negative zooms in. The zoom is clamped to its legal range, so
// repeated scrolling converges exactly on the limit.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY > 0 {
		c.cam.Zoom *= wheelZoomOut
	} else {
		c.cam.Zoom *= wheelZoomIn
	}
	c.cam.Zoom = ClampZoom(c.cam.Zoom)
	c.changed = true
}
