package isotown

import "math"

// Fixed pixel-art accents used by building detail draws.
var (
	shopEntrance  = Hex("#FFCC44")
	antennaMast   = Hex("#888888")
	antennaCross  = Hex("#AAAAAA")
	antennaBeacon = Hex("#FF3333")
	helipadBase   = Hex("#333333")
	rooftopFrame  = Hex("#444444")
)

// windowLit decides whether one window shows a lit interior. Deterministic in
// the wall, floor, and window indices so the facade never flickers between
// frames.
func windowLit(wall, floor, win int) bool {
	return (wall*7+floor*3+win)%3 != 0
}

// shade shifts a color's lightness by delta percentage points per channel.
func shade(c Color, delta float64) Color {
	d := delta / 100
	return Color{
		R: clamp01(c.R + d),
		G: clamp01(c.G + d),
		B: clamp01(c.B + d),
		A: c.A,
	}
}

// drawBuilding draws one extruded footprint: ground shadow, shaded walls,
// facade detail, hero billboards, outlines, the roof, and rooftop ornaments.
// It also records the building's screen bounding box in the hit index. A
// building whose bounds miss the surface entirely is skipped and records
// no hit box.
func (r *Renderer) drawBuilding(dst Surface, cam Camera, b *Building) {
	ground := r.projectRing(r.pts, b.Footprint, cam)
	lift := r.proj.HeightOffset(b.Height, cam)

	r.roof = r.roof[:0]
	for _, p := range ground {
		r.roof = append(r.roof, Vec2{X: p.X, Y: p.Y - lift})
	}
	roof := r.roof

	bounds := boundsOf(ground, roof)
	sw, sh := dst.Size()
	if !bounds.Intersects(Rect{Width: float64(sw), Height: float64(sh)}) {
		return
	}

	tones := buildingTones(b)
	drawDetails := r.proj.DetailScale(cam) > detailZoomFloor && b.Floors >= 2

	// Ground shadow under the whole footprint.
	dst.FillPolygon(ground, gray(tones.shadow))

	n := len(ground)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		tone := tones.wallTone(b.Footprint[j].X-b.Footprint[i].X, b.Footprint[j].Y-b.Footprint[i].Y)
		dst.FillPolygon([]Vec2{ground[i], ground[j], roof[j], roof[i]}, gray(tone))
	}

	// Facade detail goes in a second pass: on tall buildings the wall quads
	// overlap on screen, and a later wall's fill would cover an earlier
	// wall's windows.
	if drawDetails {
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			tone := tones.wallTone(b.Footprint[j].X-b.Footprint[i].X, b.Footprint[j].Y-b.Footprint[i].Y)
			r.drawWallDetail(dst, b, i, ground[i], ground[j], roof[i], roof[j], tone)
		}
	}

	if drawDetails && b.Hero != nil && len(b.Hero.Billboards) > 0 {
		r.drawBillboards(dst, b, ground, roof)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		tone := tones.wallTone(b.Footprint[j].X-b.Footprint[i].X, b.Footprint[j].Y-b.Footprint[i].Y)
		dst.StrokePolygon([]Vec2{ground[i], ground[j], roof[j], roof[i]}, 1, gray(tone-20))
	}

	// Roof cap, dithered on large roofs so they do not read as flat voids.
	dst.FillPolygon(roof, gray(tones.roof))
	if drawDetails && polygonArea(roof) > 15 {
		dst.FillPolygonPattern(roof, gray(tones.roof), gray(tones.roof-6))
	}
	dst.StrokePolygon(roof, 1, gray(tones.roof-20))

	if drawDetails && b.Hero != nil {
		r.drawRooftop(dst, b.Hero, roof)
	}

	r.hits.Add(bounds, b)
}

// drawWallDetail places the storefront band, entrance, floor separators, and
// windows on one wall quad. All placement goes through the bilinear map of
// the quad so skewed walls stay consistent.
func (r *Renderer) drawWallDetail(dst Surface, b *Building, wall int, g1, g2, r1, r2 Vec2, tone float64) {
	levels := b.Floors
	shop := b.Usage.isShopLike()

	gfRatio := 1 / float64(levels)
	if shop {
		gfRatio = math.Min(0.3, 2/float64(levels))
	}

	var band Color
	switch {
	case shop:
		band = gray(tone + 14)
	case b.Usage == UsageOffice:
		band = shade(r.pal.WindowGround, -10)
	default:
		band = gray(tone + 8)
	}
	dst.FillPolygon([]Vec2{
		bilinear(g1, g2, r1, r2, 0, 0),
		bilinear(g1, g2, r1, r2, 1, 0),
		bilinear(g1, g2, r1, r2, 1, gfRatio),
		bilinear(g1, g2, r1, r2, 0, gfRatio),
	}, band)

	entrance := r.pal.WindowGround
	if shop {
		entrance = shopEntrance
	}
	door := bilinear(g1, g2, r1, r2, 0.5, gfRatio*0.5)
	dst.FillRect(math.Round(door.X)-1, math.Round(door.Y), 2, 1, entrance)

	for f := 1; f < levels; f++ {
		v := float64(f) / float64(levels)
		dst.Polyline([]Vec2{
			bilinear(g1, g2, r1, r2, 0, v),
			bilinear(g1, g2, r1, r2, 1, v),
		}, Stroke{Width: 1}, r.pal.FloorLine)
	}

	perFloor := 2
	switch {
	case b.Usage == UsageOffice:
		perFloor = 3
	case shop:
		perFloor = 1
	}
	for f := 1; f < levels; f++ {
		v := (float64(f) + 0.5) / float64(levels)
		for w := 0; w < perFloor; w++ {
			u := float64(w+1) / float64(perFloor+1)
			win := bilinear(g1, g2, r1, r2, u, v)
			c := r.pal.WindowDim
			if windowLit(wall, f, w) {
				c = r.pal.WindowLit
			}
			dst.FillRect(math.Round(win.X), math.Round(win.Y), 1, 1, c)
		}
	}
}

// drawBillboards places a hero building's neon signs on its widest wall as
// seen on screen, skewed into a parallelogram for the isometric look.
func (r *Renderer) drawBillboards(dst Surface, b *Building, ground, roof []Vec2) {
	n := len(ground)
	best, bestSpan := 0, -1.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		span := math.Abs(ground[j].X-ground[i].X) + math.Abs(ground[j].Y-ground[i].Y)
		if span > bestSpan {
			best, bestSpan = i, span
		}
	}
	j := (best + 1) % n
	g1, g2 := ground[best], ground[j]
	r1, r2 := roof[best], roof[j]

	for _, bb := range b.Hero.Billboards {
		tl := bilinear(g1, g2, r1, r2, bb.U0, bb.V0)
		tr := bilinear(g1, g2, r1, r2, bb.U1, bb.V0)
		bl := bilinear(g1, g2, r1, r2, bb.U0, bb.V1)
		w := math.Abs(tr.X-tl.X) + 1
		h := math.Abs(bl.Y-tl.Y) + 1
		dst.FillPolygon([]Vec2{
			{X: tl.X, Y: tl.Y},
			{X: tl.X + w, Y: tl.Y + w/2},
			{X: tl.X + w, Y: tl.Y + w/2 + h},
			{X: tl.X, Y: tl.Y + h},
		}, bb.Color)
	}
}

// drawRooftop draws the ornament glyph at the roof's rounded centroid. Each
// glyph is a handful of single-pixel rects in the pixel-art tradition.
func (r *Renderer) drawRooftop(dst Surface, h *Hero, roof []Vec2) {
	c := polygonCentroid(roof)
	rx, ry := math.Round(c.X), math.Round(c.Y)

	switch h.Rooftop {
	case RooftopAntenna:
		dst.FillRect(rx, ry-8, 1, 8, antennaMast)
		dst.FillRect(rx-1, ry-7, 3, 1, antennaCross)
		dst.FillRect(rx-1, ry-5, 3, 1, antennaCross)
		dst.FillRect(rx, ry-9, 1, 1, antennaBeacon)
	case RooftopHelipad:
		dst.FillRect(rx-3, ry-2, 6, 4, helipadBase)
		dst.FillRect(rx-2, ry-1, 1, 3, ColorWhite)
		dst.FillRect(rx+1, ry-1, 1, 3, ColorWhite)
		dst.FillRect(rx-1, ry, 3, 1, ColorWhite)
	case RooftopScreen:
		dst.FillRect(rx-2, ry-2, 5, 3, h.Accent)
		dst.FillRect(rx-1, ry-1, 3, 1, ColorWhite.WithAlpha(0.4))
	case RooftopBillboard:
		dst.FillRect(rx-1, ry-5, 1, 4, rooftopFrame)
		dst.FillRect(rx+1, ry-5, 1, 4, rooftopFrame)
		dst.FillRect(rx-2, ry-7, 5, 3, h.Accent)
	case RooftopSign:
		dst.FillRect(rx-2, ry-2, 4, 2, h.Accent)
		dst.FillRect(rx-1, ry-1, 2, 1, ColorWhite)
	}
}

// drawBuildingLabel draws a named building's caption floating above its roof.
func (r *Renderer) drawBuildingLabel(dst Surface, cam Camera, b *Building) {
	if b.Name == "" {
		return
	}
	p := r.proj.Project(b.Center, cam)
	size := math.Max(5, math.Floor(4*cam.Zoom))
	dst.Text(b.Name, p.X, p.Y-r.proj.HeightOffset(b.Height, cam)-4, size, TextAlignCenter, r.pal.BuildingLabel)
}

// boundsOf returns the screen AABB covering both the ground and roof rings.
func boundsOf(ground, roof []Vec2) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ring := range [2][]Vec2{ground, roof} {
		for _, p := range ring {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
