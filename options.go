package panzoom

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Options configures a Panzoom. Stored options are set at construction and
// by SetOptions; every operation also accepts call-level Option values that
// apply on top of a copy of the stored options for that call only.
//
// Precedence, lowest to highest: defaults, stored options, per-operation
// defaults (e.g. Animate for ZoomIn), call-level options.
type Options struct {
	// Animate asks the painter to tween to the new transform.
	Animate  bool
	Duration time.Duration
	Easing   ease.TweenFunc

	DisablePan        bool
	DisableZoom       bool
	DisableXAxis      bool
	DisableYAxis      bool
	PanOnlyWhenZoomed bool
	// Relative treats pan input as a delta from the current position.
	Relative bool

	Contain  Contain
	MinScale float64
	MaxScale float64
	// Step is the zoom increment for ZoomIn/ZoomOut, wheel, and pinch.
	Step float64

	StartX, StartY float64
	StartScale     float64

	// RoundPixels rounds committed translations to whole numbers.
	RoundPixels bool
	// Silent suppresses notifications.
	Silent bool

	// Force bypasses DisablePan, DisableZoom, and PanOnlyWhenZoomed for one
	// call. Never stored.
	Force bool
	// Focal anchors a zoom so this point stays visually fixed. Never stored.
	Focal *Vec2
	// Point pans directly to this translation while zooming. Never stored.
	Point *Vec2

	// Exclude and ExcludeClass mark targets whose down events are ignored.
	Exclude      []Element
	ExcludeClass string

	// Canvas lets a press anywhere in the parent start a gesture. Without
	// it only presses on the element's subtree do.
	Canvas bool
	// NoBind leaves a Viewer's input handling off until Viewer.Bind.
	NoBind bool

	// Painter receives committed transforms on the next Flush.
	Painter Painter
}

// DefaultOptions returns the options a Panzoom starts from.
func DefaultOptions() Options {
	return Options{
		Duration:     200 * time.Millisecond,
		Easing:       ease.InOutQuad,
		MinScale:     0.125,
		MaxScale:     4,
		Step:         0.3,
		StartScale:   1,
		ExcludeClass: "panzoom-exclude",
	}
}

// Option sets one or more fields of Options.
type Option func(*Options)

func (o Options) with(opts []Option) Options {
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// stored strips the call-only fields so they never persist.
func (o Options) stored() Options {
	o.Force = false
	o.Focal = nil
	o.Point = nil
	return o
}

// WithAnimate sets Animate.
func WithAnimate(animate bool) Option {
	return func(o *Options) { o.Animate = animate }
}

// WithDuration sets the animation duration.
func WithDuration(d time.Duration) Option {
	return func(o *Options) { o.Duration = d }
}

// WithEasing sets the animation easing function.
func WithEasing(fn ease.TweenFunc) Option {
	return func(o *Options) { o.Easing = fn }
}

// WithDisablePan sets DisablePan.
func WithDisablePan(disable bool) Option {
	return func(o *Options) { o.DisablePan = disable }
}

// WithDisableZoom sets DisableZoom.
func WithDisableZoom(disable bool) Option {
	return func(o *Options) { o.DisableZoom = disable }
}

// WithDisableXAxis sets DisableXAxis.
func WithDisableXAxis(disable bool) Option {
	return func(o *Options) { o.DisableXAxis = disable }
}

// WithDisableYAxis sets DisableYAxis.
func WithDisableYAxis(disable bool) Option {
	return func(o *Options) { o.DisableYAxis = disable }
}

// WithPanOnlyWhenZoomed sets PanOnlyWhenZoomed.
func WithPanOnlyWhenZoomed(only bool) Option {
	return func(o *Options) { o.PanOnlyWhenZoomed = only }
}

// WithRelative sets Relative.
func WithRelative(relative bool) Option {
	return func(o *Options) { o.Relative = relative }
}

// WithContain sets the containment mode.
func WithContain(c Contain) Option {
	return func(o *Options) { o.Contain = c }
}

// WithMinScale sets MinScale.
func WithMinScale(s float64) Option {
	return func(o *Options) { o.MinScale = s }
}

// WithMaxScale sets MaxScale.
func WithMaxScale(s float64) Option {
	return func(o *Options) { o.MaxScale = s }
}

// WithStep sets Step.
func WithStep(step float64) Option {
	return func(o *Options) { o.Step = step }
}

// WithStart sets the start translation and scale used at construction and
// by Reset.
func WithStart(x, y, scale float64) Option {
	return func(o *Options) {
		o.StartX = x
		o.StartY = y
		o.StartScale = scale
	}
}

// WithRoundPixels sets RoundPixels.
func WithRoundPixels(round bool) Option {
	return func(o *Options) { o.RoundPixels = round }
}

// WithSilent sets Silent.
func WithSilent(silent bool) Option {
	return func(o *Options) { o.Silent = silent }
}

// WithExclude adds elements whose subtrees never start a gesture.
func WithExclude(elems ...Element) Option {
	return func(o *Options) {
		o.Exclude = append(o.Exclude[:len(o.Exclude):len(o.Exclude)], elems...)
	}
}

// WithExcludeClass sets the class name that excludes a subtree.
func WithExcludeClass(name string) Option {
	return func(o *Options) { o.ExcludeClass = name }
}

// WithCanvas sets Canvas.
func WithCanvas(canvas bool) Option {
	return func(o *Options) { o.Canvas = canvas }
}

// WithNoBind sets NoBind.
func WithNoBind(noBind bool) Option {
	return func(o *Options) { o.NoBind = noBind }
}

// WithPainter sets the paint collaborator.
func WithPainter(p Painter) Option {
	return func(o *Options) { o.Painter = p }
}

// Force bypasses the disable flags for a single call.
func Force() Option {
	return func(o *Options) { o.Force = true }
}

// Silent suppresses notifications for a single call.
func Silent() Option {
	return func(o *Options) { o.Silent = true }
}

// Focal anchors a zoom at (x, y), a point relative to the element's
// transform origin in unscaled units.
func Focal(x, y float64) Option {
	return func(o *Options) { o.Focal = &Vec2{X: x, Y: y} }
}

// Point makes a zoom pan directly to (x, y).
func Point(x, y float64) Option {
	return func(o *Options) { o.Point = &Vec2{X: x, Y: y} }
}

// --- JSON configuration ---

// optionsFile is the JSON form of Options. Pointer fields distinguish keys
// that are absent from keys set to their zero value.
type optionsFile struct {
	Animate           *bool    `json:"animate"`
	Duration          *float64 `json:"duration"` // milliseconds
	Easing            *string  `json:"easing"`
	DisablePan        *bool    `json:"disablePan"`
	DisableZoom       *bool    `json:"disableZoom"`
	DisableXAxis      *bool    `json:"disableXAxis"`
	DisableYAxis      *bool    `json:"disableYAxis"`
	PanOnlyWhenZoomed *bool    `json:"panOnlyWhenZoomed"`
	Relative          *bool    `json:"relative"`
	Contain           *string  `json:"contain"`
	MinScale          *float64 `json:"minScale"`
	MaxScale          *float64 `json:"maxScale"`
	Step              *float64 `json:"step"`
	StartX            *float64 `json:"startX"`
	StartY            *float64 `json:"startY"`
	StartScale        *float64 `json:"startScale"`
	RoundPixels       *bool    `json:"roundPixels"`
	Silent            *bool    `json:"silent"`
	ExcludeClass      *string  `json:"excludeClass"`
	Canvas            *bool    `json:"canvas"`
	NoBind            *bool    `json:"noBind"`
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
	"outElastic": ease.OutElastic,
}

// ParseContain parses "inside", "outside", or "" (none).
func ParseContain(s string) (Contain, error) {
	switch s {
	case "":
		return ContainNone, nil
	case "inside":
		return ContainInside, nil
	case "outside":
		return ContainOutside, nil
	}
	return ContainNone, fmt.Errorf("unknown contain mode %q", s)
}

// ParseOptions parses a JSON options document. Only keys present in the
// document produce an Option, so the result merges over existing options.
func ParseOptions(jsonData []byte) ([]Option, error) {
	var f optionsFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}

	var opts []Option
	setBool := func(p *bool, fn func(bool) Option) {
		if p != nil {
			opts = append(opts, fn(*p))
		}
	}
	setFloat := func(p *float64, fn func(float64) Option) {
		if p != nil {
			opts = append(opts, fn(*p))
		}
	}

	setBool(f.Animate, WithAnimate)
	setBool(f.DisablePan, WithDisablePan)
	setBool(f.DisableZoom, WithDisableZoom)
	setBool(f.DisableXAxis, WithDisableXAxis)
	setBool(f.DisableYAxis, WithDisableYAxis)
	setBool(f.PanOnlyWhenZoomed, WithPanOnlyWhenZoomed)
	setBool(f.Relative, WithRelative)
	setBool(f.RoundPixels, WithRoundPixels)
	setBool(f.Silent, WithSilent)
	setBool(f.Canvas, WithCanvas)
	setBool(f.NoBind, WithNoBind)
	setFloat(f.MinScale, WithMinScale)
	setFloat(f.MaxScale, WithMaxScale)
	setFloat(f.Step, WithStep)

	if f.Duration != nil {
		opts = append(opts, WithDuration(time.Duration(*f.Duration*float64(time.Millisecond))))
	}
	if f.Easing != nil {
		fn, ok := easings[*f.Easing]
		if !ok {
			return nil, fmt.Errorf("parse options: unknown easing %q", *f.Easing)
		}
		opts = append(opts, WithEasing(fn))
	}
	if f.Contain != nil {
		c, err := ParseContain(*f.Contain)
		if err != nil {
			return nil, fmt.Errorf("parse options: %w", err)
		}
		opts = append(opts, WithContain(c))
	}
	if f.StartX != nil {
		v := *f.StartX
		opts = append(opts, func(o *Options) { o.StartX = v })
	}
	if f.StartY != nil {
		v := *f.StartY
		opts = append(opts, func(o *Options) { o.StartY = v })
	}
	if f.StartScale != nil {
		v := *f.StartScale
		opts = append(opts, func(o *Options) { o.StartScale = v })
	}
	if f.ExcludeClass != nil {
		opts = append(opts, WithExcludeClass(*f.ExcludeClass))
	}
	return opts, nil
}
