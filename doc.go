// Package isotown renders a navigable, pixel-art isometric view of a city
// district from pre-projected planar geometry: building footprints with
// heights, road and rail polylines, point features, and aerial imagery tiles.
//
// The engine draws every frame onto a low-resolution working surface, then
// upscales it to the display with nearest-neighbor sampling so each logical
// pixel becomes a crisp K×K block. All planar geometry reaches screen space
// through a single isometric projection (Projector.Project); buildings are
// painter-sorted by their planar x+y depth key, and a per-frame hit-test
// index resolves clicks to the topmost building.
//
// A minimal viewer:
//
//	scene, _, err := scenepack.Load("district.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	app, err := isotown.NewApp(scene, isotown.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ebiten.RunGame(app); err != nil {
//		log.Fatal(err)
//	}
//
// The scene model is an immutable snapshot; only the camera and the current
// selection mutate at runtime. Rendering is single-threaded and
// run-to-completion; the only asynchronous events are imagery decode
// completions, which are delivered to the game loop and merely schedule a
// re-render.
package isotown
