package isotown

import "testing"

func testScene(t *testing.T, buildings ...Building) *Scene {
	t.Helper()
	scene, rep := Admit(Scene{Buildings: buildings})
	if rep.Dropped() != 0 {
		t.Fatalf("test scene dropped %d entities", rep.Dropped())
	}
	return &scene
}

func testBuilding(x, y float64) Building {
	return Building{
		Footprint: []Vec2{{x, y}, {x + 20, y}, {x + 20, y + 20}, {x, y + 20}},
		Height:    30,
		Floors:    3,
	}
}

// --- Frame rendering ---

func TestRenderFrameClearsToSky(t *testing.T) {
	pal := DefaultPalette()
	r := NewRenderer(testScene(t), Projector{PixelScale: 3}, pal)
	dst := NewRecordingSurface(320, 200)

	r.RenderFrame(dst, Camera{Zoom: 1.3})

	if len(dst.Ops) == 0 || dst.Ops[0].Kind != OpClear {
		t.Fatal("first operation must clear the surface")
	}
	if dst.Ops[0].Color != pal.Sky {
		t.Errorf("clear color = %v, want sky", dst.Ops[0].Color)
	}
}

func TestSingleBuildingProducesOneHitBox(t *testing.T) {
	scene := testScene(t, testBuilding(0, 0))
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	dst := NewRecordingSurface(320, 200)
	cam := Camera{PanX: 160, PanY: 100, Zoom: 1.3}

	r.RenderFrame(dst, cam)

	boxes := r.HitBoxes()
	if len(boxes) != 1 {
		t.Fatalf("hit boxes = %d, want 1", len(boxes))
	}
	box := boxes[0].Bounds
	cx, cy := box.X+box.Width/2, box.Y+box.Height/2
	if got := r.Pick(cx, cy); got != &scene.Buildings[0] {
		t.Errorf("Pick at box center = %v, want the building", got)
	}
	if got := r.Pick(box.X-50, box.Y-50); got != nil {
		t.Errorf("Pick outside box = %v, want nil", got)
	}
}

func TestSingleBuildingWindowsDeterministic(t *testing.T) {
	scene := testScene(t, testBuilding(0, 0))
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	pal := DefaultPalette()
	cam := Camera{PanX: 160, PanY: 100, Zoom: 1.3}

	countWindows := func() (lit, dim int) {
		dst := NewRecordingSurface(320, 200)
		r.RenderFrame(dst, cam)
		for _, op := range dst.Ops {
			if op.Kind != OpFillRect {
				continue
			}
			switch op.Color {
			case pal.WindowLit:
				lit++
			case pal.WindowDim:
				dim++
			}
		}
		return lit, dim
	}

	// 4 walls, floors 1..2, 2 windows per floor for the default usage:
	// lit when (wall*7 + floor*3 + win) % 3 != 0.
	lit, dim := countWindows()
	if lit != 10 || dim != 6 {
		t.Errorf("windows = %d lit, %d dim, want 10 lit, 6 dim", lit, dim)
	}

	lit2, dim2 := countWindows()
	if lit2 != lit || dim2 != dim {
		t.Error("re-rendering the same scene must produce identical windows")
	}
}

func TestDetailGateSkipsWindows(t *testing.T) {
	scene := testScene(t, testBuilding(0, 0))
	pal := DefaultPalette()
	r := NewRenderer(scene, Projector{PixelScale: 3}, pal)
	dst := NewRecordingSurface(320, 200)

	// DetailScale = 0.6/3 = 0.2, below the detail floor.
	r.RenderFrame(dst, Camera{PanX: 160, PanY: 100, Zoom: 0.6})

	for _, op := range dst.Ops {
		if op.Kind == OpFillRect && (op.Color == pal.WindowLit || op.Color == pal.WindowDim) {
			t.Fatal("windows drawn below the detail zoom floor")
		}
	}
}

// --- Depth order ---

func TestBuildingsPaintBackToFront(t *testing.T) {
	near := testBuilding(100, 100)
	far := testBuilding(0, 0)
	// Input order is nearest first; paint order must still be far first.
	scene := testScene(t, near, far)
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	dst := NewRecordingSurface(320, 200)

	r.RenderFrame(dst, Camera{PanX: 160, PanY: 100, Zoom: 1.3})

	boxes := r.HitBoxes()
	if len(boxes) != 2 {
		t.Fatalf("hit boxes = %d, want 2", len(boxes))
	}
	if boxes[0].Building != &scene.Buildings[1] {
		t.Error("farther building should be painted (and recorded) first")
	}
	if boxes[1].Building != &scene.Buildings[0] {
		t.Error("nearer building should be painted (and recorded) last")
	}
}

func TestEqualDepthKeepsInputOrder(t *testing.T) {
	// Same x+y depth key; stable sort must keep admission order.
	a := testBuilding(0, 100)
	b := testBuilding(100, 0)
	scene := testScene(t, a, b)
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	dst := NewRecordingSurface(320, 200)

	r.RenderFrame(dst, Camera{PanX: 160, PanY: 100, Zoom: 1.3})

	boxes := r.HitBoxes()
	if boxes[0].Building != &scene.Buildings[0] || boxes[1].Building != &scene.Buildings[1] {
		t.Error("equal-depth buildings must keep input order")
	}
}

// --- Hit index freshness ---

func TestHitBoxesRebuildOnCameraChange(t *testing.T) {
	scene := testScene(t, testBuilding(0, 0))
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	dst := NewRecordingSurface(320, 200)

	cam := Camera{PanX: 160, PanY: 100, Zoom: 1.3}
	r.RenderFrame(dst, cam)
	box := r.HitBoxes()[0].Bounds
	cx, cy := box.X+box.Width/2, box.Y+box.Height/2
	if r.Pick(cx, cy) == nil {
		t.Fatal("setup: center must hit")
	}

	cam.PanX += 3000
	dst.Reset()
	r.RenderFrame(dst, cam)

	// The building now projects entirely off the surface, so it is culled
	// and records no box at all.
	if len(r.HitBoxes()) != 0 {
		t.Fatalf("hit boxes after re-render = %d, want 0", len(r.HitBoxes()))
	}
	if got := r.Pick(cx, cy); got != nil {
		t.Error("stale hit box survived a camera change")
	}
}

func TestOffSurfaceBuildingIsCulled(t *testing.T) {
	scene := testScene(t, testBuilding(0, 0))
	r := NewRenderer(scene, Projector{PixelScale: 3}, DefaultPalette())
	dst := NewRecordingSurface(320, 200)

	r.RenderFrame(dst, Camera{PanX: 9000, PanY: 100, Zoom: 1.3})

	if len(r.HitBoxes()) != 0 {
		t.Errorf("hit boxes = %d, want 0 for an off-surface building", len(r.HitBoxes()))
	}
	for _, op := range dst.Ops {
		if op.Kind == OpFillPolygon {
			t.Fatal("off-surface building should emit no polygon fills")
		}
	}
}

func TestWallFillsPrecedeFacadeDetail(t *testing.T) {
	// Tall and narrow: the wall quads overlap heavily on screen, so any
	// wall fill emitted after a window would erase it.
	scene := testScene(t, Building{
		Footprint:    []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Height:       35,
		HeightMeters: 35,
		Floors:       10,
		Usage:        UsageOffice,
	})
	pal := DefaultPalette()
	r := NewRenderer(scene, Projector{PixelScale: 3}, pal)
	dst := NewRecordingSurface(320, 200)

	r.RenderFrame(dst, Camera{PanX: 160, PanY: 100, Zoom: 2})

	tones := buildingTones(&scene.Buildings[0])
	lit, shadow := gray(tones.lit), gray(tones.shadow)
	lastWallFill, firstWindow := -1, -1
	for i, op := range dst.Ops {
		switch {
		case op.Kind == OpFillPolygon && (op.Color == lit || op.Color == shadow):
			lastWallFill = i
		case op.Kind == OpFillRect && (op.Color == pal.WindowLit || op.Color == pal.WindowDim):
			if firstWindow == -1 {
				firstWindow = i
			}
		}
	}
	if lastWallFill == -1 || firstWindow == -1 {
		t.Fatalf("missing ops: lastWallFill=%d firstWindow=%d", lastWallFill, firstWindow)
	}
	if lastWallFill > firstWindow {
		t.Errorf("wall fill at op %d emitted after window at op %d; all wall quads must fill before facade detail",
			lastWallFill, firstWindow)
	}
}

// --- Street furniture gating ---

func TestDecorationGatedByZoom(t *testing.T) {
	scene, _ := Admit(Scene{
		Roads: []Road{{
			Name:  "Center Gai",
			Class: RoadPedestrian,
			Width: 4,
			Points: []Vec2{
				{0, 0}, {10, 0}, {20, 0}, {30, 0}, {40, 0}, {50, 0},
			},
		}},
	})
	r := NewRenderer(&scene, Projector{PixelScale: 3}, DefaultPalette())

	count := func(zoom float64) int {
		dst := NewRecordingSurface(320, 200)
		r.RenderFrame(dst, Camera{PanX: 160, PanY: 100, Zoom: zoom})
		n := 0
		for _, op := range dst.Ops {
			if op.Kind == OpFillRect && op.Color == treeTrunk {
				n++
			}
		}
		return n
	}

	if got := count(1.3); got == 0 {
		t.Error("trees should appear on pedestrian roads when zoomed in")
	}
	if got := count(0.9); got != 0 {
		t.Errorf("trees below the decoration zoom floor = %d, want 0", got)
	}
}
