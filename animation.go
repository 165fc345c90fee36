package panzoom

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transformTween animates X, Y, and Scale of a Transform together. A single
// eased progress value drives all three so they stay in step. There is no
// global animation manager: the Surface that owns the tween calls Update
// each frame.
type transformTween struct {
	progress *gween.Tween
	from, to Transform
}

// newTransformTween creates a tween from one transform to another. A nil
// easing falls back to linear.
func newTransformTween(from, to Transform, duration time.Duration, fn ease.TweenFunc) *transformTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &transformTween{
		progress: gween.New(0, 1, float32(duration.Seconds()), fn),
		from:     from,
		to:       to,
	}
}

// Update advances the tween by dt seconds and returns the interpolated
// transform and whether the tween has finished.
func (tt *transformTween) Update(dt float32) (Transform, bool) {
	f, done := tt.progress.Update(dt)
	if done {
		return tt.to, true
	}
	return tt.from.Lerp(tt.to, float64(f)), false
}
