package isotown

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// --- Recenter animation ---

func TestAnimatorReachesTarget(t *testing.T) {
	cam := Camera{PanX: 0, PanY: 0, Zoom: 1.3}
	a := NewCameraAnimator(&cam)
	a.PanTo(120, -80, 0.5, ease.Linear)

	if !a.Active() {
		t.Fatal("animation should be active after PanTo")
	}
	for i := 0; i < 10; i++ {
		a.Update(0.1)
	}
	if a.Active() {
		t.Fatal("animation should finish")
	}
	if !approxEq(cam.PanX, 120, 0.01) || !approxEq(cam.PanY, -80, 0.01) {
		t.Errorf("pan = (%v, %v), want (120, -80)", cam.PanX, cam.PanY)
	}
}

func TestAnimatorCancelHoldsPosition(t *testing.T) {
	cam := Camera{Zoom: 1.3}
	a := NewCameraAnimator(&cam)
	a.PanTo(100, 100, 1.0, ease.Linear)
	a.Update(0.25)
	mid := cam.PanX

	a.Cancel()
	if a.Active() {
		t.Fatal("cancel should stop the animation")
	}
	if a.Update(0.25) {
		t.Fatal("update after cancel should report no movement")
	}
	if cam.PanX != mid {
		t.Errorf("pan moved after cancel: %v", cam.PanX)
	}
}

func TestAnimatorIdleUpdateIsNoop(t *testing.T) {
	cam := Camera{PanX: 7, Zoom: 1}
	a := NewCameraAnimator(&cam)
	if a.Update(0.5) {
		t.Fatal("idle animator should report no movement")
	}
	if cam.PanX != 7 {
		t.Errorf("pan = %v, want 7", cam.PanX)
	}
}
