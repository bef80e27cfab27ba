package isotown

import (
	"bytes"
	"fmt"
	"image"

	// Tile payloads arrive as encoded JPEG or PNG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// recenterDuration is the Home/R pan animation length in seconds.
const recenterDuration float32 = 0.6

// tileDecode is one completed background imagery decode.
type tileDecode struct {
	index int
	img   image.Image
}

// App is the runnable viewer: it owns the camera, controller, renderer,
// compositor, and the asynchronous tile decode pipeline, and implements
// ebiten.Game. All state mutation happens on the game loop thread; decode
// goroutines only send results over a channel.
type App struct {
	cfg   Config
	scene *Scene
	proj  Projector
	cam   Camera

	faces      *Faces
	renderer   *Renderer
	surface    *EbitenSurface
	compositor *Compositor
	controller *Controller
	animator   *CameraAnimator
	fps        *fpsOverlay

	decoded chan tileDecode

	displayW, displayH int
	dirty              bool
}

// NewApp builds the viewer for an admitted scene and starts the tile decode
// goroutines. The camera opens centered on the scene.
func NewApp(scene *Scene, cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	faces, err := LoadFaces()
	if err != nil {
		return nil, fmt.Errorf("isotown: %w", err)
	}

	if cfg.LightDir.X != 0 || cfg.LightDir.Y != 0 {
		lightDir = Vec2{X: cfg.LightDir.X, Y: cfg.LightDir.Y}
	}

	a := &App{
		cfg:        cfg,
		scene:      scene,
		proj:       Projector{PixelScale: float64(cfg.PixelScale)},
		compositor: NewCompositor(cfg.PixelScale, cfg.Scanlines),
		faces:      faces,
		decoded:    make(chan tileDecode, len(scene.Tiles)),
		dirty:      true,
	}
	a.renderer = NewRenderer(scene, a.proj, DefaultPalette())
	a.cam.Zoom = ClampZoom(cfg.StartZoom)
	a.cam.PanX, a.cam.PanY = a.proj.PanFor(scene.Center(), a.cam.Zoom,
		float64(cfg.Width), float64(cfg.Height))
	a.controller = NewController(&a.cam, a.renderer.Pick)
	a.controller.PixelScale = float64(cfg.PixelScale)
	a.controller.HeaderOffset = cfg.HeaderOffset
	a.animator = NewCameraAnimator(&a.cam)
	if cfg.ShowFPS {
		a.fps = newFPSOverlay()
	}

	for i, t := range scene.Tiles {
		go func(i int, payload []byte) {
			img, _, err := image.Decode(bytes.NewReader(payload))
			if err != nil {
				// A tile that fails to decode never joins the ground
				// layer; the channel is sized so this send cannot block.
				return
			}
			a.decoded <- tileDecode{index: i, img: img}
		}(i, t.Payload)
	}
	return a, nil
}

// Camera returns the current camera state.
func (a *App) Camera() Camera {
	return a.cam
}

// Update processes one tick: completed tile decodes, pointer and wheel
// input, keyboard shortcuts, and the recenter animation.
func (a *App) Update() error {
	for {
		select {
		case d := <-a.decoded:
			a.renderer.SetTileImage(d.index, d.img)
			a.dirty = true
			continue
		default:
		}
		break
	}

	a.pollPointer()

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		px, py := a.proj.PanFor(a.scene.Center(), a.cam.Zoom,
			float64(a.displayW), float64(a.displayH))
		a.animator.PanTo(px, py, recenterDuration, ease.OutQuad)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.controller.ClearSelection()
	}

	dt := float32(1) / float32(ebiten.TPS())
	if a.animator.Update(dt) {
		a.dirty = true
	}
	if a.controller.ConsumeChanged() {
		a.dirty = true
	}
	if a.fps != nil {
		a.fps.update(float64(dt))
	}
	return nil
}

// pollPointer translates Ebiten's polled mouse state into controller events.
// Leaving the window while dragging aborts the drag.
func (a *App) pollPointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	outside := cx < 0 || cy < 0 || cx >= a.displayW || cy >= a.displayH
	if outside {
		a.controller.PointerLeave()
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.animator.Cancel()
		a.controller.PointerDown(x, y)
	}
	a.controller.PointerMove(x, y)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.controller.PointerUp(x, y)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebiten's wheel Y is positive scrolling up; the zoom convention
		// takes positive deltas as zoom out.
		a.controller.Wheel(-wy)
	}
}

// Draw re-renders the working surface when anything changed, then composites
// it to the display and adds the full-resolution overlays.
func (a *App) Draw(screen *ebiten.Image) {
	working := a.compositor.Working()
	if working == nil {
		return
	}
	if a.surface == nil {
		a.surface = NewEbitenSurface(working, a.faces)
	}
	if a.dirty {
		a.surface.SetTarget(working)
		a.renderer.RenderFrame(a.surface, a.cam)
		a.dirty = false
	}
	a.compositor.Composite(screen)
	DrawInspector(screen, a.faces, a.controller.Selected())
	if a.fps != nil {
		a.fps.draw(screen)
	}
}

// Layout adopts the outside size as the display size and resizes the
// working surface to match.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.displayW || outsideHeight != a.displayH {
		a.displayW, a.displayH = outsideWidth, outsideHeight
		a.compositor.Resize(outsideWidth, outsideHeight)
		a.surface = nil
		a.dirty = true
	}
	return outsideWidth, outsideHeight
}
