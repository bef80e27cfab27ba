package isotown

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// panAnim holds active recenter tweens for the camera pan axes.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CameraAnimator drives smooth pan animation on top of the direct
// manipulation done by the Controller. A drag cancels any running animation;
// the two never fight over the camera in the same frame.
type CameraAnimator struct {
	cam  *Camera
	anim *panAnim
}

// NewCameraAnimator wraps the shared camera.
func NewCameraAnimator(cam *Camera) *CameraAnimator {
	return &CameraAnimator{cam: cam}
}

// PanTo animates the pan offset to (x, y) over duration seconds.
func (a *CameraAnimator) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	a.anim = &panAnim{
		tweenX: gween.New(float32(a.cam.PanX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(a.cam.PanY), float32(y), duration, easeFn),
	}
}

// Cancel stops any running animation, leaving the camera where it is.
func (a *CameraAnimator) Cancel() {
	a.anim = nil
}

// Active reports whether an animation is in flight.
func (a *CameraAnimator) Active() bool {
	return a.anim != nil
}

// Update advances the animation by dt seconds and reports whether the camera
// moved this step.
func (a *CameraAnimator) Update(dt float32) bool {
	if a.anim == nil {
		return false
	}
	if !a.anim.doneX {
		val, done := a.anim.tweenX.Update(dt)
		a.cam.PanX = float64(val)
		a.anim.doneX = done
	}
	if !a.anim.doneY {
		val, done := a.anim.tweenY.Update(dt)
		a.cam.PanY = float64(val)
		a.anim.doneY = done
	}
	if a.anim.doneX && a.anim.doneY {
		a.anim = nil
	}
	return true
}
