// Package panzoom turns pointer, touch, and wheel input into a pan/zoom
// transform for one element inside its parent, with optional containment.
//
// # Quick start
//
// Build a small layout tree, attach a [Panzoom] to the element, and feed it
// input. [Viewer] does the feeding for you on top of [Ebitengine]:
//
//	doc := panzoom.NewDocument("doc")
//	parent := panzoom.NewElement("frame", panzoom.Rect{Width: 640, Height: 480})
//	img := panzoom.NewElement("image", panzoom.Rect{X: 120, Y: 90, Width: 400, Height: 300})
//	doc.AddChild(parent)
//	parent.AddChild(img)
//
//	v, err := panzoom.NewViewer(img, panzoom.WithContain(panzoom.ContainOutside))
//	if err != nil {
//		log.Fatal(err)
//	}
//	panzoom.Run(v, panzoom.RunConfig{Title: "pan me", Width: 640, Height: 480})
//
// Hosts with their own event loop call [Panzoom.HandleDown],
// [Panzoom.HandleMove], [Panzoom.HandleUp], and [Panzoom.ZoomWithWheel]
// directly, then [Panzoom.Flush] once per frame to hand the latest
// transform to the [Painter].
//
// # Transform
//
// The state is a [Transform]: a translation in unscaled element units and
// a uniform scale, rendered as translate(Scale*X, Scale*Y) scale(Scale)
// about the element's center (top-left for SVG graphics elements).
//
// # Options
//
// Options layer from lowest to highest precedence: [DefaultOptions], the
// options given to [New] or [Panzoom.SetOptions], and options passed to a
// single call. [Force], [Focal], and [Point] only ever apply to one call.
// [ParseOptions] reads the same settings from JSON.
//
// # Events
//
// Observers register with [Panzoom.On] and friends. A committed pan fires
// [EventPan] then [EventChange]; zoom and reset do the same with their own
// type. Gestures bracket their changes with [EventStart] and [EventEnd].
// [Silent] suppresses all of them. For ECS integration see panzoom/ecs.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
