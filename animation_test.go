package panzoom

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTransformTweenLinearMidpoint(t *testing.T) {
	tt := newTransformTween(Transform{Scale: 1}, Transform{X: 10, Y: -20, Scale: 3}, time.Second, nil)
	v, done := tt.Update(0.5)
	if done {
		t.Fatal("tween finished at half duration")
	}
	if !approxEqual(v.X, 5, 1e-4) || !approxEqual(v.Y, -10, 1e-4) || !approxEqual(v.Scale, 2, 1e-4) {
		t.Errorf("midpoint = %+v, want {5 -10 2}", v)
	}
}

func TestTransformTweenFinishes(t *testing.T) {
	to := Transform{X: 4, Y: 8, Scale: 0.5}
	tt := newTransformTween(Transform{Scale: 1}, to, 200*time.Millisecond, ease.InOutQuad)
	var v Transform
	var done bool
	for i := 0; i < 20 && !done; i++ {
		v, done = tt.Update(1.0 / 60)
	}
	if !done {
		t.Fatal("tween never finished")
	}
	if !approxEqual(v.X, to.X, 1e-4) || !approxEqual(v.Y, to.Y, 1e-4) || !approxEqual(v.Scale, to.Scale, 1e-4) {
		t.Errorf("final = %+v, want %+v", v, to)
	}
}

func TestTransformTweenKeepsComponentsInStep(t *testing.T) {
	from := Transform{X: 0, Y: 100, Scale: 1}
	to := Transform{X: 40, Y: 0, Scale: 5}
	tt := newTransformTween(from, to, time.Second, ease.InOutQuad)
	for i := 0; i < 50; i++ {
		v, done := tt.Update(1.0 / 60)
		if done {
			break
		}
		// Every component must sit at the same fraction of its path.
		fx := (v.X - from.X) / (to.X - from.X)
		fy := (v.Y - from.Y) / (to.Y - from.Y)
		fs := (v.Scale - from.Scale) / (to.Scale - from.Scale)
		if !approxEqual(fx, fy, 1e-6) || !approxEqual(fx, fs, 1e-6) {
			t.Fatalf("frame %d: fractions x=%v y=%v scale=%v", i, fx, fy, fs)
		}
	}
}
