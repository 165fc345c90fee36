package panzoom

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer is an ebiten.Game that presents one pannable element inside its
// parent. It polls Ebitengine input, feeds the gesture handlers, flushes
// committed transforms to a Surface, and draws the result.
type Viewer struct {
	Panzoom *Panzoom
	Surface *Surface
	Elem    *Node
	Parent  *Node

	// ClearColor fills the screen behind the parent. Zero means black.
	ClearColor Color
	// ShowHUD draws the current transform and frame rate in the corner.
	ShowHUD bool
	// ExitWhenDone stops the game loop once an attached TestRunner finishes.
	ExitWhenDone bool
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	width, height int

	bound           bool
	input           inputState
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	hud             *hud
	updateFunc      func() error
}

// NewViewer attaches a Panzoom to elem and paints it through a new Surface.
// elem must be connected to a document through its parent. The Surface is
// installed as the painter after opts are applied. Input is handled from the
// first Update unless NoBind is set.
func NewViewer(elem *Node, opts ...Option) (*Viewer, error) {
	if elem == nil {
		return nil, fmt.Errorf("panzoom: new viewer: %w", ErrNoElement)
	}
	surface := NewSurface(elem.Bounds, elem.SVG)
	opts = append(opts[:len(opts):len(opts)], WithPainter(surface))
	pz, err := New(elem, NodeGeometry{}, opts...)
	if err != nil {
		return nil, err
	}
	pz.Flush()
	w, h := int(elem.Parent.Bounds.Right()), int(elem.Parent.Bounds.Bottom())
	return &Viewer{
		Panzoom:       pz,
		Surface:       surface,
		Elem:          elem,
		Parent:        elem.Parent,
		ClearColor:    Color{A: 1},
		ScreenshotDir: "screenshots",
		width:         max(w, 1),
		height:        max(h, 1),
		bound:         !pz.options.NoBind,
		hud:           newHUD(),
	}, nil
}

// Bind turns input handling on.
func (v *Viewer) Bind() {
	v.bound = true
}

// Destroy turns input handling off. A gesture in progress ends as though
// every contact lifted. Bind turns handling back on.
func (v *Viewer) Destroy() {
	if !v.bound {
		return
	}
	v.bound = false
	if v.Panzoom.Panning() {
		if t := v.input.touches; len(t) > 1 {
			v.Panzoom.HandleDown(PointerEvent{Touches: t[:1:1]})
		}
		v.Panzoom.HandleUp(PointerEvent{Touches: []Pointer{}})
	}
	v.input = inputState{touchID: v.input.touchID[:0]}
}

// Bound reports whether the viewer is handling input.
func (v *Viewer) Bound() bool { return v.bound }

// SetScreenSize sets the logical screen size reported by Layout.
func (v *Viewer) SetScreenSize(w, h int) {
	v.width, v.height = w, h
}

// SetUpdateFunc sets a callback run at the end of every Update. A non-nil
// error stops the game loop.
func (v *Viewer) SetUpdateFunc(fn func() error) {
	v.updateFunc = fn
}

// Update implements ebiten.Game: test script, input, paint hand-off, then
// animation.
func (v *Viewer) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	return v.update(dt)
}

func (v *Viewer) update(dt float32) error {
	if v.testRunner != nil {
		v.testRunner.step(v)
		if v.ExitWhenDone && v.testRunner.Done() && len(v.screenshotQueue) == 0 {
			return ebiten.Termination
		}
	}
	v.processInput()
	v.Panzoom.Flush()
	v.Surface.Update(dt)
	if v.ShowHUD {
		v.hud.update(float64(dt))
	}
	if v.updateFunc != nil {
		return v.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.ClearColor.rgba())

	pb := v.Parent.Bounds
	clip := screen.SubImage(image.Rect(
		int(pb.X), int(pb.Y),
		int(pb.Right()), int(pb.Bottom()),
	)).(*ebiten.Image)
	if v.Parent.Fill.A > 0 {
		clip.Fill(v.Parent.Fill.rgba())
	}
	v.drawElement(clip)

	if v.ShowHUD {
		v.hud.draw(screen, v.Panzoom.Transform())
	}
	v.flushScreenshots(screen)
}

// drawElement draws the element image stretched to its layout box under the
// painted transform, or a filled box when it has no image.
func (v *Viewer) drawElement(target *ebiten.Image) {
	img := v.Elem.Image
	if img == nil {
		if v.Elem.Fill.A == 0 {
			return
		}
		img = whitePixel()
	}
	b := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(v.Surface.Layout.Width/float64(b.Dx()), v.Surface.Layout.Height/float64(b.Dy()))
	op.GeoM.Concat(v.Surface.GeoM())
	if v.Elem.Image == nil {
		c := v.Elem.Fill
		op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	}
	op.Filter = ebiten.FilterLinear
	target.DrawImage(img, &op)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS enables the viewer's HUD.
	ShowFPS bool
	// Resizable lets the user resize the window.
	Resizable bool
}

// Run opens a window and runs the viewer's game loop until the window is
// closed or the viewer terminates.
func Run(v *Viewer, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		v.SetScreenSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	v.ShowHUD = v.ShowHUD || cfg.ShowFPS
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
