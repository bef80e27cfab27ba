package isotown

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for planar points, screen points, and directions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is pure opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R*c.A) * 0xffff),
		uint32(clamp01(c.G*c.A) * 0xffff),
		uint32(clamp01(c.B*c.A) * 0xffff),
		uint32(clamp01(c.A) * 0xffff)
}

// toRGBA converts to an 8-bit premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex parses a #RRGGBB color string. Malformed input yields opaque gray,
// matching the upstream pipeline's fallback line color.
func Hex(s string) Color {
	if len(s) != 7 || s[0] != '#' {
		return Color{0.533, 0.533, 0.533, 1}
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		hi := hexDigit(s[1+i*2])
		lo := hexDigit(s[2+i*2])
		if hi < 0 || lo < 0 {
			return Color{0.533, 0.533, 0.533, 1}
		}
		v[i] = float64(hi*16+lo) / 255
	}
	return Color{v[0], v[1], v[2], 1}
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// gray returns an opaque grayscale color from an HSL-style lightness
// percentage in [0, 100]. Values outside the range are clamped.
func gray(lightness float64) Color {
	v := clamp01(lightness / 100)
	return Color{v, v, v, 1}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpVec linearly interpolates between two points. t=0 gives a, t=1 gives b.
func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}

// bilinear maps (u, v) ∈ [0,1]² into the quad with bottom edge g1→g2 and top
// edge r1→r2: lerp(lerp(g1,g2,u), lerp(r1,r2,u), v). This single primitive
// places all wall detail (floor lines, windows, storefront bands, billboards).
func bilinear(g1, g2, r1, r2 Vec2, u, v float64) Vec2 {
	return lerpVec(lerpVec(g1, g2, u), lerpVec(r1, r2, u), v)
}

// polygonCentroid returns the vertex average of a ring. Good enough for
// label anchors and scatter centers; not the area centroid.
func polygonCentroid(pts []Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Vec2{X: sx / n, Y: sy / n}
}

// polygonArea returns the absolute area of a ring via the shoelace formula.
func polygonArea(pts []Vec2) float64 {
	var area float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i].X * pts[j].Y
		area -= pts[j].X * pts[i].Y
	}
	return math.Abs(area) / 2
}

// TextAlign controls horizontal text alignment for surface text draws.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor at the left edge (default)
	TextAlignCenter                  // center on the anchor point
	TextAlignRight                   // anchor at the right edge
)
