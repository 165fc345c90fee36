package panzoom

import (
	"math"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "drag", "fromX": 10, "fromY": 20, "toX": 30, "toY": 40, "frames": 6},
			{"action": "pinch", "x": 200, "y": 150, "fromDist": 40, "toDist": 120, "frames": 8},
			{"action": "wait", "frames": 3}
		]
	}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.FromX != 10 || st.FromY != 20 || st.ToX != 30 || st.ToY != 40 || st.Frames != 6 {
		t.Errorf("step 1 = %+v", st)
	}
	if st := runner.steps[2]; st.FromDist != 40 || st.ToDist != 120 || st.X != 200 {
		t.Errorf("step 2 = %+v", st)
	}
	if runner.Done() {
		t.Error("fresh runner reports done")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "wait"}, {"action": "click"}]}`, `step 1: unknown action "click"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

// runScript steps the runner and the inject queue until the script finishes.
func runScript(t *testing.T, v *Viewer, maxFrames int) int {
	t.Helper()
	for frame := 1; frame <= maxFrames; frame++ {
		v.testRunner.step(v)
		v.processInjectedInput()
		v.Panzoom.Flush()
		if v.testRunner.Done() {
			return frame
		}
	}
	t.Fatalf("script not done after %d frames", maxFrames)
	return 0
}

func TestRunnerDragZoomScreenshot(t *testing.T) {
	v := newTestViewer(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 90, "fromY": 90, "toX": 120, "toY": 90, "frames": 3},
		{"action": "zoomIn"},
		{"action": "wait", "frames": 2},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)
	runScript(t, v, 20)

	if x, _ := v.Panzoom.Position(); x != 30 {
		t.Errorf("X = %v, want 30", x)
	}
	if want := math.Exp(0.3); !approxEqual(v.Panzoom.Scale(), want, epsilon) {
		t.Errorf("Scale = %v, want %v", v.Panzoom.Scale(), want)
	}
	if len(v.screenshotQueue) != 1 || v.screenshotQueue[0] != "after" {
		t.Errorf("screenshot queue = %v", v.screenshotQueue)
	}
	if !v.Surface.Animating() {
		t.Error("zoomIn should hand an animated transform to the surface")
	}
}

func TestRunnerWheelDefaultsToZoomIn(t *testing.T) {
	v := newTestViewer(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wheel", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)
	runScript(t, v, 5)
	if v.Panzoom.Scale() <= 1 {
		t.Errorf("Scale = %v, want > 1", v.Panzoom.Scale())
	}
}

func TestRunnerWaitCountsFrames(t *testing.T) {
	v := newTestViewer(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 4}, {"action": "reset"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)
	// wait occupies frames 1-4, reset runs on frame 5.
	if frames := runScript(t, v, 10); frames != 5 {
		t.Errorf("finished on frame %d, want 5", frames)
	}
}

func TestRunnerPressMoveRelease(t *testing.T) {
	v := newTestViewer(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "press", "x": 20, "y": 20},
		{"action": "move", "x": 35, "y": 28},
		{"action": "release", "x": 35, "y": 28},
		{"action": "zoomOut"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	v.SetTestRunner(runner)
	runScript(t, v, 20)
	if x, y := v.Panzoom.Position(); x != 15 || y != 8 {
		t.Errorf("Position = (%v, %v), want (15, 8)", x, y)
	}
	if v.Panzoom.Scale() >= 1 {
		t.Errorf("Scale = %v, want < 1 after zoomOut", v.Panzoom.Scale())
	}
}
