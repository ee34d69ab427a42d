package viewport

import "math"

// Default tuning values.
const (
	// DefaultZoomStep is the multiplicative zoom-out factor; zoom-in uses
	// its reciprocal.
	DefaultZoomStep = 0.75

	// DefaultMinPixels is the floor, in device pixels, below which the
	// smaller on-screen image dimension may not shrink.
	DefaultMinPixels = 30

	// DefaultMaxScale bounds zoom-in. An explicit ceiling avoids
	// accumulating floating-point error under runaway magnification.
	DefaultMaxScale = 32
)

// State holds the viewport state for one image session: the current
// scale, the image and view extents, and the scroll offset into the
// canvas that contains the scaled image.
//
// State is not safe for concurrent use. It is intended for a single
// owner, normally the UI thread driving a Session.
type State struct {
	scale  float64
	offset Point

	imgW, imgH   int
	viewW, viewH int

	minPixels float64
	maxScale  float64
}

// NewState creates a State for an image of the given dimensions with
// scale 1 and zero offset. minPixels and maxScale bound the legal scale
// range; non-positive values fall back to the package defaults. The
// view size starts at zero and is set with Resize.
func NewState(imgW, imgH int, minPixels, maxScale float64) *State {
	if minPixels <= 0 {
		minPixels = DefaultMinPixels
	}
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	return &State{
		scale:     1,
		imgW:      imgW,
		imgH:      imgH,
		minPixels: minPixels,
		maxScale:  maxScale,
	}
}

// MinScale returns the smallest legal scale: the scale at which the
// smaller image dimension renders at the configured pixel floor. Scale 1
// is always legal, so images already smaller than the floor are not
// forced to magnify.
func (s *State) MinScale() float64 {
	d := math.Min(float64(s.imgW), float64(s.imgH))
	if d <= 0 {
		return 1
	}
	return math.Min(s.minPixels/d, 1)
}

// MaxScale returns the configured scale ceiling.
func (s *State) MaxScale() float64 {
	return s.maxScale
}

// Scale returns the current scale in device pixels per image pixel.
func (s *State) Scale() float64 {
	return s.scale
}

// SetScale clamps newScale to [MinScale, MaxScale], applies it, and
// returns the applied value. Out-of-range requests are not errors;
// callers detect saturation by comparing the result with the request.
func (s *State) SetScale(newScale float64) float64 {
	s.scale = clamp(newScale, s.MinScale(), s.maxScale)
	return s.scale
}

// Offset returns the scroll offset: the canvas coordinate of the view's
// top-left corner.
func (s *State) Offset() Point {
	return s.offset
}

// SetOffset clamps p into the current scroll region, applies it, and
// returns the applied value.
//
// The region is computed from the visible box before the move, the way
// an interactive canvas constrains a drag against the bounds it
// published on the previous frame. Clamping against the target box
// instead would let a drag extend its own bounds and never saturate.
func (s *State) SetOffset(p Point) Point {
	region := ScrollRegion(s.ScaledImageBounds(), s.ViewBounds())
	s.offset = clampOffset(region, p, float64(s.viewW), float64(s.viewH))
	return s.offset
}

// ClampOffset re-clamps the current offset into the current scroll
// region. Call after any change to scale or view size.
func (s *State) ClampOffset() Point {
	return s.SetOffset(s.offset)
}

// Resize sets the view size in device pixels. Zero sizes are tolerated
// and make the viewport render empty frames until a valid resize
// arrives; negative values are treated as zero.
func (s *State) Resize(w, h int) {
	s.viewW = max(w, 0)
	s.viewH = max(h, 0)
	s.ClampOffset()
}

// ViewSize returns the view size in device pixels.
func (s *State) ViewSize() (w, h int) {
	return s.viewW, s.viewH
}

// ImageSize returns the image size in pixels.
func (s *State) ImageSize() (w, h int) {
	return s.imgW, s.imgH
}

// ImageBounds returns the image extent in image space.
func (s *State) ImageBounds() Rect {
	return R(0, 0, float64(s.imgW), float64(s.imgH))
}

// ScaledImageBounds returns the image extent in canvas space: the image
// bounds scaled by the current scale, anchored at the canvas origin.
func (s *State) ScaledImageBounds() Rect {
	return s.ImageBounds().Scale(s.scale)
}

// ViewBounds returns the visible box in canvas space.
func (s *State) ViewBounds() Rect {
	return s.visibleBoxAt(s.offset)
}

// ViewCenter returns the center of the view in device space.
func (s *State) ViewCenter() Point {
	return Pt(float64(s.viewW)/2, float64(s.viewH)/2)
}

// ToCanvas converts a device-space point to canvas space.
func (s *State) ToCanvas(p Point) Point {
	return p.Add(s.offset)
}

func (s *State) visibleBoxAt(offset Point) Rect {
	return R(offset.X, offset.Y, offset.X+float64(s.viewW), offset.Y+float64(s.viewH))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
