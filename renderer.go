package isotown

import (
	"image"
	"sort"
)

// detailZoomFloor is the DetailScale below which per-building detail (windows,
// storefronts, billboards) is skipped entirely.
const detailZoomFloor = 0.3

// decorScaleFloor is the DetailScale below which ambient street decoration
// (kiosks, trees, pedestrians, park labels) is skipped.
const decorScaleFloor = 0.35

// Renderer draws one Scene onto a Surface and maintains the per-frame
// hit-test index. It holds no per-frame state other than scratch buffers and
// the hit index, so a single instance serves every frame.
type Renderer struct {
	scene *Scene
	proj  Projector
	pal   Palette
	hits  HitIndex

	// tileImages holds decoded ground tile imagery, parallel to scene.Tiles.
	// A nil entry means the decode has not completed (or failed); that tile
	// is skipped.
	tileImages []image.Image

	// scratch reused across frames
	sorted []*Building
	pts    []Vec2
	roof   []Vec2
}

// NewRenderer creates a renderer for an admitted scene.
func NewRenderer(scene *Scene, proj Projector, pal Palette) *Renderer {
	return &Renderer{
		scene:      scene,
		proj:       proj,
		pal:        pal,
		tileImages: make([]image.Image, len(scene.Tiles)),
	}
}

// SetTileImage installs the decoded image for scene.Tiles[i]. Called from the
// frame loop when an asynchronous decode is delivered; never concurrently
// with RenderFrame.
func (r *Renderer) SetTileImage(i int, img image.Image) {
	if i >= 0 && i < len(r.tileImages) {
		r.tileImages[i] = img
	}
}

// Pick returns the topmost building under a working-surface point, based on
// the hit boxes recorded by the most recent RenderFrame.
func (r *Renderer) Pick(x, y float64) *Building {
	return r.hits.Pick(x, y)
}

// HitBoxes exposes the current frame's hit boxes for tests and debugging.
func (r *Renderer) HitBoxes() []HitBox {
	return r.hits.Boxes()
}

// RenderFrame draws the full scene for one camera state. Pass order is fixed:
// sky, ground imagery, parks, railways, roads, street decoration, the
// scramble crossing, then buildings back to front, labels, and stations.
// The hit index is rebuilt from scratch so stale boxes never survive a
// camera change.
func (r *Renderer) RenderFrame(dst Surface, cam Camera) {
	dst.Clear(r.pal.Sky)

	r.drawTiles(dst, cam)
	r.drawParks(dst, cam)
	r.drawRailways(dst, cam)
	r.drawRoads(dst, cam)
	r.drawRoadLabels(dst, cam)
	r.drawKiosks(dst, cam)
	r.drawTrees(dst, cam)
	r.drawScramble(dst, cam)
	r.drawPedestrians(dst, cam)

	r.hits.Reset()
	r.sorted = r.sorted[:0]
	for i := range r.scene.Buildings {
		r.sorted = append(r.sorted, &r.scene.Buildings[i])
	}
	// Stable: equal-depth buildings keep admission order, so the paint
	// order (and therefore picking) is deterministic.
	sort.SliceStable(r.sorted, func(i, j int) bool {
		return r.sorted[i].depthKey() < r.sorted[j].depthKey()
	})
	for _, b := range r.sorted {
		r.drawBuilding(dst, cam, b)
	}
	for _, b := range r.sorted {
		r.drawBuildingLabel(dst, cam, b)
	}

	r.drawStations(dst, cam)
}

// projectRing projects a planar ring into dst, reusing its backing array.
func (r *Renderer) projectRing(dst []Vec2, ring []Vec2, cam Camera) []Vec2 {
	dst = dst[:0]
	for _, p := range ring {
		dst = append(dst, r.proj.Project(p, cam))
	}
	return dst
}
