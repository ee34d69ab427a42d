// Package viewport implements an interactive pan/zoom engine for viewing
// a raster image that is larger (or smaller) than the visible display area.
//
// # Overview
//
// The engine tracks a single image session: a source image, a current
// scale, and a scroll offset into a virtual canvas that contains the
// scaled image. Callers feed it abstract gestures (wheel zoom, drag pan,
// resize) and ask for frames; the engine answers with a Tile describing
// exactly which part of the image to paint, where, and with which pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/viewport"
//
//	img, err := viewport.NewImage(samples, width, height)
//	if err != nil {
//	    return err
//	}
//
//	s := viewport.NewSession(viewport.WithFitToView(true))
//	s.Resize(800, 600)
//	if err := s.LoadImage(img); err != nil {
//	    return err
//	}
//
//	s.Wheel(viewport.ZoomIn, viewport.Pt(400, 300))
//	tile, _ := s.Frame()
//	// paint tile.Pixels at tile.Dest
//
// # Architecture
//
// The library is organized into:
//   - State: scale, offsets and their clamping rules
//   - ZoomController / PanController: gesture application
//   - Renderer: visible-region cropping and resampling
//   - Session: per-image glue, load handoff, frame memoization
//
// All viewport math is pure and synchronous; only image loading is
// expected to run on a worker, handing a finished Image back to the
// session owner (see Session.BeginLoad / Session.CompleteLoad).
//
// # Coordinate System
//
// Three spaces are involved:
//   - image space: source pixels, origin top-left, y down
//   - canvas space: image space scaled by the current scale factor, with
//     the image anchored at the canvas origin
//   - device space: the viewport window; canvas = device + scroll offset
//
// Resampling uses golang.org/x/image/draw kernels selected by Filter.
package viewport
