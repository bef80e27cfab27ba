package isotown

import "image"

// OpKind identifies a recorded surface operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillPolygon
	OpStrokePolygon
	OpPolyline
	OpFillPattern
	OpText
	OpImageAffine
)

// RecordedOp is one captured Surface call.
type RecordedOp struct {
	Kind   OpKind
	Points []Vec2
	Rect   Rect
	Color  Color
	Alt    Color
	Stroke Stroke
	Text   string
	Size   float64
	Align  TextAlign
	Bold   bool
}

// RecordingSurface captures draw calls for renderer tests. It performs no
// rasterization and needs no graphics context.
type RecordingSurface struct {
	W, H int
	Ops  []RecordedOp
}

// NewRecordingSurface returns a recording surface of the given size.
func NewRecordingSurface(w, h int) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

// Reset discards recorded operations.
func (s *RecordingSurface) Reset() {
	s.Ops = s.Ops[:0]
}

// CountKind returns how many operations of the given kind were recorded.
func (s *RecordingSurface) CountKind(k OpKind) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (s *RecordingSurface) Size() (int, int) { return s.W, s.H }

func (s *RecordingSurface) Clear(c Color) {
	s.Ops = append(s.Ops, RecordedOp{Kind: OpClear, Color: c})
}

func (s *RecordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.Ops = append(s.Ops, RecordedOp{Kind: OpFillRect, Rect: Rect{x, y, w, h}, Color: c})
}

func (s *RecordingSurface) FillPolygon(pts []Vec2, c Color) {
	s.Ops = append(s.Ops, RecordedOp{Kind: OpFillPolygon, Points: clonePoints(pts), Color: c})
}

func (s *RecordingSurface) StrokePolygon(pts []Vec2, width float64, c Color) {
	s.Ops = append(s.Ops, RecordedOp{
		Kind: OpStrokePolygon, Points: clonePoints(pts),
		Stroke: Stroke{Width: width}, Color: c,
	})
}

func (s *RecordingSurface) Polyline(pts []Vec2, st Stroke, c Color) {
	s.Ops = append(s.Ops, RecordedOp{Kind: OpPolyline, Points: clonePoints(pts), Stroke: st, Color: c})
}

func (s *RecordingSurface) FillPolygonPattern(pts []Vec2, base, alt Color) {
	s.Ops = append(s.Ops, RecordedOp{Kind: OpFillPattern, Points: clonePoints(pts), Color: base, Alt: alt})
}

func (s *RecordingSurface) Text(str string, x, y, size float64, align TextAlign, c Color) {
	s.Ops = append(s.Ops, RecordedOp{
		Kind: OpText, Text: str, Rect: Rect{X: x, Y: y},
		Size: size, Align: align, Color: c,
	})
}

func (s *RecordingSurface) TextBold(str string, x, y, size float64, align TextAlign, c Color) {
	s.Ops = append(s.Ops, RecordedOp{
		Kind: OpText, Text: str, Rect: Rect{X: x, Y: y},
		Size: size, Align: align, Color: c, Bold: true,
	})
}

func (s *RecordingSurface) ImageAffine(img image.Image, origin, right, down Vec2, alpha float64) {
	s.Ops = append(s.Ops, RecordedOp{
		Kind:   OpImageAffine,
		Points: []Vec2{origin, right, down},
		Size:   alpha,
	})
}

// clonePoints copies a point slice so later scratch-buffer reuse by the
// renderer cannot alias recorded geometry.
func clonePoints(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	copy(out, pts)
	return out
}
