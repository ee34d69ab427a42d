package viewport

import "math"

// ZoomDirection identifies the sense of a zoom gesture. Platform wheel
// encodings are resolved to this enumeration at the adapter boundary.
type ZoomDirection uint8

const (
	// ZoomIn magnifies around the gesture's focal point.
	ZoomIn ZoomDirection = iota

	// ZoomOut shrinks around the gesture's focal point.
	ZoomOut
)

// String returns a string representation of the direction.
func (d ZoomDirection) String() string {
	switch d {
	case ZoomIn:
		return "ZoomIn"
	case ZoomOut:
		return "ZoomOut"
	default:
		return "Unknown"
	}
}

// ZoomController applies multiplicative zoom steps to a State, anchored
// at a pointer focal point.
type ZoomController struct {
	state *State
	step  float64 // zoom-out multiplier, in (0, 1); zoom-in uses 1/step
}

// NewZoomController creates a controller over state. step is the
// zoom-out multiplier; values outside (0, 1) fall back to
// DefaultZoomStep.
func NewZoomController(state *State, step float64) *ZoomController {
	if step <= 0 || step >= 1 {
		step = DefaultZoomStep
	}
	return &ZoomController{state: state, step: step}
}

// Step returns the zoom-out multiplier in use.
func (z *ZoomController) Step() float64 {
	return z.step
}

// Zoom applies one zoom step anchored at pointer, given in device
// coordinates, and returns the scale in effect afterwards.
//
// The gesture is ignored, leaving state untouched, when:
//   - the pointer does not lie strictly inside the on-screen image,
//   - a zoom-out would push the smaller on-screen image dimension below
//     the pixel floor, or
//   - the scale is already saturated in the requested direction.
//
// Otherwise the new scale is applied and the offset re-anchored so the
// image point under the pointer stays under the pointer, then clamped
// into the recomputed scroll region.
func (z *ZoomController) Zoom(dir ZoomDirection, pointer Point) float64 {
	st := z.state
	old := st.Scale()

	focal := st.ToCanvas(pointer)
	if !st.ScaledImageBounds().ContainsInterior(focal) {
		return old
	}

	var target float64
	switch dir {
	case ZoomOut:
		target = old * z.step
		imgW, imgH := st.ImageSize()
		if math.Min(float64(imgW), float64(imgH))*target < st.minPixels {
			return old
		}
	case ZoomIn:
		target = old / z.step
	default:
		return old
	}

	applied := st.SetScale(target)
	if applied == old {
		return old
	}

	// Keep the image point under the pointer stationary: with the image
	// anchored at the canvas origin, the focal canvas point scales by
	// applied/old while the device point must not move.
	st.SetOffset(focal.Mul(applied / old).Sub(pointer))
	return applied
}
