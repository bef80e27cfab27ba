package isotown

import "math"

// drawTiles blits the decoded aerial imagery under everything else at half
// opacity, so the pixel-art geometry stays readable on top of it.
func (r *Renderer) drawTiles(dst Surface, cam Camera) {
	for i, t := range r.scene.Tiles {
		img := r.tileImages[i]
		if img == nil {
			continue
		}
		dst.ImageAffine(img,
			r.proj.Project(t.TopLeft, cam),
			r.proj.Project(t.TopRight, cam),
			r.proj.Project(t.BottomLeft, cam),
			0.5)
	}
}

// drawParks draws each park as a flat green diamond sized by the square root
// of its area, with pixel trees scattered inside the larger ones.
func (r *Renderer) drawParks(dst Surface, cam Camera) {
	ds := r.proj.DetailScale(cam)
	for _, park := range r.scene.Parks {
		proj := r.proj.Project(park.Pos, cam)
		p := Vec2{X: math.Round(proj.X), Y: math.Round(proj.Y)}
		s := math.Max(2, math.Floor(math.Sqrt(park.Area)*0.008*ds))
		dst.FillPolygon([]Vec2{
			{X: p.X, Y: p.Y - s},
			{X: p.X + 1.5*s, Y: p.Y},
			{X: p.X, Y: p.Y + s},
			{X: p.X - 1.5*s, Y: p.Y},
		}, r.pal.ParkDark)
		if s > 2 {
			in := s * 0.6
			dst.FillPolygon([]Vec2{
				{X: p.X, Y: p.Y - in},
				{X: p.X + 1.5*in, Y: p.Y},
				{X: p.X, Y: p.Y + in},
				{X: p.X - 1.5*in, Y: p.Y},
			}, r.pal.ParkLight)
		}
		if s > 3 {
			trees := int(math.Min(4, s))
			for t := 0; t < trees; t++ {
				tx := math.Round(p.X + math.Sin(float64(t)*2.1)*s*0.8)
				ty := math.Round(p.Y + math.Cos(float64(t)*2.1)*s*0.4)
				dst.FillRect(tx, ty-2, 1, 1, parkTreeDark)
				dst.FillRect(tx-1, ty-1, 3, 1, parkTreeLight)
				dst.FillRect(tx, ty, 1, 1, parkTreeDark)
			}
		}
		if park.Name != "" && park.Area > 2000 && ds > decorScaleFloor {
			size := math.Max(3, math.Floor(3*ds))
			dst.Text(park.Name, p.X, p.Y-s-2, size, TextAlignCenter, r.pal.ParkLabel)
		}
	}
}

// drawRailways strokes each rail segment twice: a dark bed underneath the
// operator-colored line.
func (r *Renderer) drawRailways(dst Surface, cam Camera) {
	ds := r.proj.DetailScale(cam)
	bedW := math.Max(2, math.Floor(3*ds))
	lineW := math.Max(1, math.Floor(2*ds))
	for i := range r.scene.Railways {
		seg := &r.scene.Railways[i]
		r.pts = r.projectRing(r.pts, seg.Points, cam)
		dst.Polyline(r.pts, Stroke{Width: bedW, Cap: CapRound, Join: JoinRound}, r.pal.RailBed)
		dst.Polyline(r.pts, Stroke{Width: lineW, Cap: CapRound, Join: JoinRound}, seg.Color)
	}
}

// roadScreenWidth is the working-surface stroke width for a road.
func (r *Renderer) roadScreenWidth(road *Road, cam Camera) float64 {
	return math.Max(1, math.Floor(road.Width*r.proj.DetailScale(cam)))
}

// drawRoads strokes each road as a darker edge band under the surface fill,
// with a dashed centerline on wide vehicular roads.
func (r *Renderer) drawRoads(dst Surface, cam Camera) {
	for i := range r.scene.Roads {
		road := &r.scene.Roads[i]
		w := r.roadScreenWidth(road, cam)
		r.pts = r.projectRing(r.pts, road.Points, cam)
		dst.Polyline(r.pts, Stroke{Width: w + 1, Cap: CapSquare, Join: JoinMiter}, r.pal.RoadEdge)
		dst.Polyline(r.pts, Stroke{Width: w, Cap: CapSquare, Join: JoinMiter}, r.pal.Road)
		if road.Class != RoadFootway && road.Class != RoadPedestrian && w > 2 {
			dst.Polyline(r.pts, Stroke{Width: 1, Dash: []float64{2, 3}}, r.pal.RoadDash)
		}
	}
}

// drawRoadLabels captions named vehicular roads at their midpoint vertex.
func (r *Renderer) drawRoadLabels(dst Surface, cam Camera) {
	size := math.Max(4, math.Floor(3*cam.Zoom))
	for i := range r.scene.Roads {
		road := &r.scene.Roads[i]
		if road.Name == "" || road.Class == RoadFootway {
			continue
		}
		mid := r.proj.Project(road.Points[len(road.Points)/2], cam)
		dst.Text(road.Name, mid.X, mid.Y-2, size, TextAlignCenter, r.pal.RoadLabel)
	}
}

// drawKiosks scatters small vendor stands alongside vehicular roads. Every
// third road segment hosts one, offset perpendicular in planar space by the
// road half-width plus margin so it never sits on the roadway.
func (r *Renderer) drawKiosks(dst Surface, cam Camera) {
	if r.proj.DetailScale(cam) < decorScaleFloor {
		return
	}
	for ri := range r.scene.Roads {
		road := &r.scene.Roads[ri]
		if road.Class == RoadFootway || road.Class == RoadPath {
			continue
		}
		pts := road.Points
		for i := 0; i+1 < len(pts); i += 3 {
			a, b := pts[i], pts[i+1]
			dx, dy := b.X-a.X, b.Y-a.Y
			length := math.Sqrt(dx*dx + dy*dy)
			if length < 1 {
				continue
			}
			spot := r.proj.Project(Vec2{
				X: (a.X+b.X)/2 - dy/length*(road.Width+2),
				Y: (a.Y+b.Y)/2 + dx/length*(road.Width+2),
			}, cam)
			x, y := math.Round(spot.X), math.Round(spot.Y)
			c := kioskColors[(i*7)%4]
			dst.FillRect(x, y-2, 1, 2, c)
			dst.FillRect(x, y-3, 1, 1, ColorWhite)
		}
	}
}

// drawTrees lines pedestrian and living streets with pixel trees.
func (r *Renderer) drawTrees(dst Surface, cam Camera) {
	if r.proj.DetailScale(cam) < decorScaleFloor {
		return
	}
	for ri := range r.scene.Roads {
		road := &r.scene.Roads[ri]
		if road.Class != RoadPedestrian && road.Class != RoadLiving {
			continue
		}
		for i := 0; i+1 < len(road.Points); i += 4 {
			p := r.proj.Project(road.Points[i], cam)
			tx, ty := math.Round(p.X), math.Round(p.Y)
			dst.FillRect(tx, ty-4, 1, 1, treeCanopyDark)
			dst.FillRect(tx-1, ty-3, 3, 1, treeCanopyLight)
			dst.FillRect(tx, ty-2, 1, 1, treeCanopyDark)
			dst.FillRect(tx, ty-1, 1, 1, treeTrunk)
		}
	}
}

// drawScramble fills the crossing area and paints the zebra stripes of every
// marked crossing lane, plus the caption at the area centroid.
func (r *Renderer) drawScramble(dst Surface, cam Camera) {
	sc := &r.scene.Scramble
	if len(sc.Area) < 3 {
		return
	}
	area := r.projectRing(r.pts, sc.Area, cam)
	dst.FillPolygon(area, r.pal.Crossing)

	stripeW := math.Max(1, math.Floor(cam.Zoom))
	halfW := math.Max(1, math.Floor(2*r.proj.DetailScale(cam)))
	for _, lane := range sc.Crossings {
		for i := 0; i+1 < len(lane); i++ {
			a := r.proj.Project(lane[i], cam)
			b := r.proj.Project(lane[i+1], cam)
			dx, dy := b.X-a.X, b.Y-a.Y
			length := math.Sqrt(dx*dx + dy*dy)
			if length == 0 {
				continue
			}
			nx, ny := -dy/length, dx/length
			stripes := int(length / (stripeW + 1))
			for s := 0; s < stripes; s++ {
				t := float64(s) * (stripeW + 1) / length
				c := lerpVec(a, b, t)
				dst.Polyline([]Vec2{
					{X: c.X + nx*halfW, Y: c.Y + ny*halfW},
					{X: c.X - nx*halfW, Y: c.Y - ny*halfW},
				}, Stroke{Width: stripeW, Cap: CapButt}, r.pal.Stripe)
			}
		}
	}

	if sc.Caption != "" {
		c := r.proj.Project(polygonCentroid(sc.Area), cam)
		size := math.Max(5, math.Floor(5*cam.Zoom))
		dst.TextBold(sc.Caption, c.X, c.Y, size, TextAlignCenter, r.pal.ScrambleLabel)
	}
}

// drawPedestrians scatters tiny two-pixel figures across the scramble area.
// Planar positions derive from trigonometric functions of the index so the
// crowd is stable across frames without storing any state.
func (r *Renderer) drawPedestrians(dst Surface, cam Camera) {
	if r.proj.DetailScale(cam) < decorScaleFloor || len(r.scene.Scramble.Area) < 3 {
		return
	}
	c := polygonCentroid(r.scene.Scramble.Area)
	for p := 0; p < 40; p++ {
		fp := float64(p)
		spot := r.proj.Project(Vec2{
			X: c.X + math.Sin(fp*2.4)*18 + math.Cos(fp*1.7)*12,
			Y: c.Y + math.Cos(fp*3.1)*14 + math.Sin(fp*0.9)*10,
		}, cam)
		x, y := math.Round(spot.X), math.Round(spot.Y)
		dst.FillRect(x, y-1, 1, 1, pedestrianColors[p%8])
		dst.FillRect(x, y-2, 1, 1, pedestrianHead)
	}
}

// drawStations marks each station with a white square holding the line color,
// captioned in bold above.
func (r *Renderer) drawStations(dst Surface, cam Camera) {
	size := math.Max(2, math.Floor(3*r.proj.DetailScale(cam)))
	labelSize := math.Max(4, math.Floor(4*cam.Zoom))
	for i := range r.scene.Stations {
		st := &r.scene.Stations[i]
		p := r.proj.Project(st.Pos, cam)
		dst.FillRect(p.X-size, p.Y-size, 2*size, 2*size, ColorWhite)
		dst.FillRect(p.X-size+1, p.Y-size+1, 2*size-2, 2*size-2, st.Color)
		if st.Name != "" {
			dst.TextBold(st.Name, p.X, p.Y-size-2, labelSize, TextAlignCenter, r.pal.StationLabel)
		}
	}
}
