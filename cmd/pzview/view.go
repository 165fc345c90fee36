package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/panzoom"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// viewFlags holds the command-line settings of the root command.
type viewFlags struct {
	image       string
	options     string
	script      string
	contain     string
	debug       bool
	exit        bool
	screenshots string
	width       int
	height      int
}

// framePad is the gap between the window edge and the frame.
const framePad = 16

func run(f viewFlags) error {
	if f.width <= 2*framePad || f.height <= 2*framePad {
		return fmt.Errorf("window %dx%d is too small", f.width, f.height)
	}
	opts, err := loadOptions(f.options, f.contain)
	if err != nil {
		return err
	}

	var src image.Image
	if f.image != "" {
		src, err = decodeImage(f.image)
		if err != nil {
			return err
		}
	} else {
		src = grid(512, 512, 32)
	}

	frame, elem := layout(f.width, f.height, src.Bounds().Dx(), src.Bounds().Dy())
	elem.Image = ebiten.NewImageFromImage(src)

	v, err := panzoom.NewViewer(elem, opts...)
	if err != nil {
		return err
	}
	frame.Fill = panzoom.Color{R: 0.08, G: 0.08, B: 0.1, A: 1}
	v.ScreenshotDir = f.screenshots
	v.ExitWhenDone = f.exit
	v.Panzoom.SetDebugMode(f.debug)

	if f.script != "" {
		data, err := os.ReadFile(f.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := panzoom.LoadTestScript(data)
		if err != nil {
			return err
		}
		v.SetTestRunner(runner)
	}

	title := "pzview"
	if f.image != "" {
		title += ": " + f.image
	}
	return panzoom.Run(v, panzoom.RunConfig{
		Title:     title,
		Width:     f.width,
		Height:    f.height,
		ShowFPS:   f.debug,
		Resizable: false,
	})
}

// loadOptions reads the options file, if any, and applies the contain
// override on top.
func loadOptions(path, contain string) ([]panzoom.Option, error) {
	var opts []panzoom.Option
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read options: %w", err)
		}
		opts, err = panzoom.ParseOptions(data)
		if err != nil {
			return nil, err
		}
	}
	if contain != "" {
		c, err := panzoom.ParseContain(contain)
		if err != nil {
			return nil, err
		}
		opts = append(opts, panzoom.WithContain(c))
	}
	return opts, nil
}

var errEmptyImage = errors.New("image has no pixels")

// decodeImage decodes any registered format: PNG, JPEG, BMP, TIFF, WebP.
func decodeImage(path string) (image.Image, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: %w", path, errEmptyImage)
	}
	return img, nil
}

// layout builds the document tree: a frame inset from the window edge and
// the image element centered in it by the frame's padding, scaled down to
// fit if needed.
func layout(winW, winH, imgW, imgH int) (frame, elem *panzoom.Node) {
	doc := panzoom.NewDocument("doc")
	fr := panzoom.Rect{
		X:      framePad,
		Y:      framePad,
		Width:  float64(winW - 2*framePad),
		Height: float64(winH - 2*framePad),
	}
	frame = panzoom.NewElement("frame", fr)
	doc.AddChild(frame)

	w, h := float64(imgW), float64(imgH)
	if fit := min(fr.Width/w, fr.Height/h); fit < 1 {
		w, h = w*fit, h*fit
	}
	padX, padY := (fr.Width-w)/2, (fr.Height-h)/2
	frame.Padding = panzoom.Box{Left: padX, Right: padX, Top: padY, Bottom: padY}
	elem = panzoom.NewElement("image", panzoom.Rect{
		X:      fr.X + padX,
		Y:      fr.Y + padY,
		Width:  w,
		Height: h,
	})
	frame.AddChild(elem)
	return frame, elem
}

// grid draws a placeholder with cell-sized squares.
func grid(w, h, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	a := color.NRGBA{R: 200, G: 205, B: 220, A: 255}
	b := color.NRGBA{R: 70, G: 80, B: 120, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}
