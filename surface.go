package isotown

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LineCap selects the stroke end-cap style.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the stroke corner style.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes how a polyline is stroked. An empty Dash strokes solid;
// otherwise Dash alternates on/off lengths along the path.
type Stroke struct {
	Width float64
	Cap   LineCap
	Join  LineJoin
	Dash  []float64
}

// Surface is the raster drawing capability the renderer is polymorphic
// over. One implementation wraps the low-resolution Ebiten working image;
// tests substitute a recording implementation. All coordinates are in the
// surface's own pixel space.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Clear fills the whole surface with a color.
	Clear(c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// FillPolygon fills a closed polygon. The ring is open; the closing
	// edge is implied.
	FillPolygon(pts []Vec2, c Color)
	// StrokePolygon strokes a closed polygon outline.
	StrokePolygon(pts []Vec2, width float64, c Color)
	// Polyline strokes an open polyline with the given stroke style.
	Polyline(pts []Vec2, st Stroke, c Color)
	// FillPolygonPattern fills a closed polygon with a repeating 2×2
	// checkerboard of base and alt (classic 50% dither), clipped to the
	// polygon.
	FillPolygonPattern(pts []Vec2, base, alt Color)
	// Text draws a single line of text. y is the baseline.
	Text(s string, x, y, size float64, align TextAlign, c Color)
	// TextBold draws a single line in the bold face.
	TextBold(s string, x, y, size float64, align TextAlign, c Color)
	// ImageAffine blits img so that its top-left, top-right, and
	// bottom-left corners land on origin, right, and down (the fourth
	// corner is implied by the affine map).
	ImageAffine(img image.Image, origin, right, down Vec2, alpha float64)
}

// EbitenSurface implements Surface on an *ebiten.Image using the vector
// path triangulator, text/v2, and GeoM affine blits.
type EbitenSurface struct {
	dst   *ebiten.Image
	faces *Faces

	// scratch buffers reused across draws
	verts []ebiten.Vertex
	inds  []uint16

	whitePixel *ebiten.Image
	patterns   map[[2]Color]*ebiten.Image
	images     map[image.Image]*ebiten.Image
}

// NewEbitenSurface wraps a destination image.
func NewEbitenSurface(dst *ebiten.Image, faces *Faces) *EbitenSurface {
	white := ebiten.NewImage(1, 1)
	white.Fill(ColorWhite.toRGBA())
	return &EbitenSurface{
		dst:        dst,
		faces:      faces,
		whitePixel: white,
		patterns:   make(map[[2]Color]*ebiten.Image),
		images:     make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget swaps the destination image (after a resize the working surface
// is recreated; caches survive).
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Size returns the target dimensions.
func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the target.
func (s *EbitenSurface) Clear(c Color) {
	s.dst.Fill(c.toRGBA())
}

// FillRect fills an axis-aligned rectangle.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func appendPolygonPath(p *vector.Path, pts []Vec2) {
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for i := 1; i < len(pts); i++ {
		p.LineTo(float32(pts[i].X), float32(pts[i].Y))
	}
	p.Close()
}

// drawPath triangulates path vertices into the scratch buffers, tints them,
// and submits one DrawTriangles call against src.
func (s *EbitenSurface) drawPath(vs []ebiten.Vertex, is []uint16, src *ebiten.Image, c Color, repeat bool) {
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)
	for i := range vs {
		if repeat {
			vs[i].SrcX = vs[i].DstX
			vs[i].SrcY = vs[i].DstY
		} else {
			vs[i].SrcX = 0.5
			vs[i].SrcY = 0.5
		}
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	if repeat {
		op.Address = ebiten.AddressRepeat
	}
	s.dst.DrawTriangles(vs, is, src, op)
}

// FillPolygon fills a closed polygon with a solid color.
func (s *EbitenSurface) FillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	appendPolygonPath(&path, pts)
	s.verts, s.inds = path.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.drawPath(s.verts, s.inds, s.whitePixel, c, false)
}

// StrokePolygon strokes a closed polygon outline with miter joins.
func (s *EbitenSurface) StrokePolygon(pts []Vec2, width float64, c Color) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	appendPolygonPath(&path, pts)
	op := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinMiter, MiterLimit: 4}
	s.verts, s.inds = path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], op)
	s.drawPath(s.verts, s.inds, s.whitePixel, c, false)
}

// Polyline strokes an open polyline, segmenting it into dashes when the
// stroke carries a dash pattern (the triangulator itself has no dash
// support, so dashing is done by walking the path).
func (s *EbitenSurface) Polyline(pts []Vec2, st Stroke, c Color) {
	if len(pts) < 2 {
		return
	}
	if len(st.Dash) > 0 {
		s.dashedPolyline(pts, st, c)
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for i := 1; i < len(pts); i++ {
		path.LineTo(float32(pts[i].X), float32(pts[i].Y))
	}
	op := &vector.StrokeOptions{
		Width:      float32(st.Width),
		LineCap:    ebitenCap(st.Cap),
		LineJoin:   ebitenJoin(st.Join),
		MiterLimit: 10,
	}
	s.verts, s.inds = path.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], op)
	s.drawPath(s.verts, s.inds, s.whitePixel, c, false)
}

// dashedPolyline walks the polyline emitting stroked dash segments.
func (s *EbitenSurface) dashedPolyline(pts []Vec2, st Stroke, c Color) {
	dash := st.Dash
	solid := Stroke{Width: st.Width, Cap: st.Cap, Join: st.Join}
	phase := 0 // index into dash pattern
	rem := dash[0]
	on := true
	var seg [2]Vec2
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b.X-a.X, b.Y-a.Y
		segLen := math.Sqrt(dx*dx + dy*dy)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			step := rem
			if pos+step > segLen {
				step = segLen - pos
			}
			if on {
				t0 := pos / segLen
				t1 := (pos + step) / segLen
				seg[0] = lerpVec(a, b, t0)
				seg[1] = lerpVec(a, b, t1)
				s.Polyline(seg[:], solid, c)
			}
			pos += step
			rem -= step
			if rem <= 0 {
				phase = (phase + 1) % len(dash)
				rem = dash[phase]
				on = !on
			}
		}
	}
}

// FillPolygonPattern fills a polygon with a repeating 2×2 dither of base
// and alt, clipped to the polygon by the fill triangulation itself.
func (s *EbitenSurface) FillPolygonPattern(pts []Vec2, base, alt Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	appendPolygonPath(&path, pts)
	s.verts, s.inds = path.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.drawPath(s.verts, s.inds, s.ditherPattern(base, alt), ColorWhite, true)
}

// ditherPattern returns a cached 2×2 checkerboard tile: alt at (0,0) and
// (1,1), base elsewhere.
func (s *EbitenSurface) ditherPattern(base, alt Color) *ebiten.Image {
	key := [2]Color{base, alt}
	if img, ok := s.patterns[key]; ok {
		return img
	}
	img := ebiten.NewImage(2, 2)
	img.Fill(base.toRGBA())
	img.Set(0, 0, alt.toRGBA())
	img.Set(1, 1, alt.toRGBA())
	s.patterns[key] = img
	return img
}

// Text draws one line of monospace text with y as the baseline.
func (s *EbitenSurface) Text(str string, x, y, size float64, align TextAlign, c Color) {
	if s.faces == nil {
		return
	}
	s.drawText(str, s.faces.monoFace(size), x, y, size, align, c)
}

// TextBold draws one line in the bold face with y as the baseline.
func (s *EbitenSurface) TextBold(str string, x, y, size float64, align TextAlign, c Color) {
	if s.faces == nil {
		return
	}
	s.drawText(str, s.faces.boldFace(size), x, y, size, align, c)
}

func (s *EbitenSurface) drawText(str string, face text.Face, x, y, size float64, align TextAlign, c Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y-size)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	text.Draw(s.dst, str, face, op)
}

// ImageAffine blits an image through the affine map defined by three corner
// targets, matching the contract: dst = M * src with M derived from where
// the unit corners land.
func (s *EbitenSurface) ImageAffine(img image.Image, origin, right, down Vec2, alpha float64) {
	src := s.ebitenImage(img)
	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	var g ebiten.GeoM
	g.SetElement(0, 0, (right.X-origin.X)/sw)
	g.SetElement(1, 0, (right.Y-origin.Y)/sw)
	g.SetElement(0, 1, (down.X-origin.X)/sh)
	g.SetElement(1, 1, (down.Y-origin.Y)/sh)
	g.SetElement(0, 2, origin.X)
	g.SetElement(1, 2, origin.Y)

	op := &ebiten.DrawImageOptions{GeoM: g}
	op.ColorScale.ScaleAlpha(float32(alpha))
	s.dst.DrawImage(src, op)
}

// ebitenImage converts and caches a decoded image for GPU drawing. Tiles
// are decoded once, so the cache is bounded by the tile count.
func (s *EbitenSurface) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := s.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	s.images[img] = e
	return e
}

func ebitenCap(c LineCap) vector.LineCap {
	switch c {
	case CapRound:
		return vector.LineCapRound
	case CapSquare:
		return vector.LineCapSquare
	}
	return vector.LineCapButt
}

func ebitenJoin(j LineJoin) vector.LineJoin {
	switch j {
	case JoinRound:
		return vector.LineJoinRound
	case JoinBevel:
		return vector.LineJoinBevel
	}
	return vector.LineJoinMiter
}
