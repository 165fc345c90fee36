package panzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often, in seconds, the frame-rate line is refreshed.
const hudRefresh = 0.5

// hud draws the current transform and frame rate over the viewer. The rate
// line is cached and refreshed every hudRefresh seconds.
type hud struct {
	img     *ebiten.Image
	elapsed float64
	rates   string
}

func newHUD() *hud {
	return &hud{elapsed: hudRefresh}
}

func (h *hud) update(dt float64) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.rates = fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func hudText(t Transform, rates string) string {
	s := fmt.Sprintf("x: %.1f  y: %.1f  scale: %.3f", t.X, t.Y, t.Scale)
	if rates != "" {
		s += "\n" + rates
	}
	return s
}

func (h *hud) draw(screen *ebiten.Image, t Transform) {
	// 240x36 fits two DebugPrint lines.
	if h.img == nil {
		h.img = ebiten.NewImage(240, 36)
	}
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrintAt(h.img, hudText(t, h.rates), 4, 2)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.img, &op)
}
