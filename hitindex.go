package isotown

// HitBox is a screen-space bounding box recorded for one drawn building.
// Coordinates are in working-surface pixels.
type HitBox struct {
	Bounds   Rect
	Building *Building
}

// HitIndex is the per-frame picking structure. The renderer clears it at the
// start of every frame and appends one box per building in paint order, so a
// reverse scan finds the topmost building under a point.
type HitIndex struct {
	boxes []HitBox
}

// Reset discards all boxes while keeping the backing array.
func (h *HitIndex) Reset() {
	h.boxes = h.boxes[:0]
}

// Add records a box. Boxes must be added in paint order (back to front).
func (h *HitIndex) Add(bounds Rect, b *Building) {
	h.boxes = append(h.boxes, HitBox{Bounds: bounds, Building: b})
}

// Pick returns the topmost building whose box contains (x, y), or nil.
// Later additions win because they were painted on top.
func (h *HitIndex) Pick(x, y float64) *Building {
	for i := len(h.boxes) - 1; i >= 0; i-- {
		if h.boxes[i].Bounds.Contains(x, y) {
			return h.boxes[i].Building
		}
	}
	return nil
}

// Len returns the number of recorded boxes.
func (h *HitIndex) Len() int {
	return len(h.boxes)
}

// Boxes exposes the recorded boxes for tests and debug overlays. The slice
// is valid until the next Reset.
func (h *HitIndex) Boxes() []HitBox {
	return h.boxes
}
