package viewport

// Option configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Defaults: nearest-neighbor, 0.75 zoom step, 30 px floor
//	s := viewport.NewSession()
//
//	// Smooth resampling, fit the image to the view on load
//	s := viewport.NewSession(
//	    viewport.WithFilter(viewport.FilterCatmullRom),
//	    viewport.WithFitToView(true),
//	)
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	zoomStep  float64
	minPixels float64
	maxScale  float64
	filter    Filter
	stretch   Stretch
	fitToView bool
	onScale   func(float64)
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		zoomStep:  DefaultZoomStep,
		minPixels: DefaultMinPixels,
		maxScale:  DefaultMaxScale,
		filter:    FilterNearest,
		stretch:   nil, // AutoStretch is derived per image if nil
	}
}

// WithZoomStep sets the multiplicative zoom-out factor (zoom-in uses its
// reciprocal). Values outside (0, 1) fall back to DefaultZoomStep.
func WithZoomStep(step float64) Option {
	return func(o *sessionOptions) {
		if step > 0 && step < 1 {
			o.zoomStep = step
		}
	}
}

// WithMinPixels sets the floor, in device pixels, below which the
// smaller on-screen image dimension may not shrink when zooming out.
// Non-positive values fall back to DefaultMinPixels.
func WithMinPixels(px float64) Option {
	return func(o *sessionOptions) {
		if px > 0 {
			o.minPixels = px
		}
	}
}

// WithMaxScale sets the zoom-in ceiling in device pixels per image
// pixel. Non-positive values fall back to DefaultMaxScale.
func WithMaxScale(s float64) Option {
	return func(o *sessionOptions) {
		if s > 0 {
			o.maxScale = s
		}
	}
}

// WithFilter sets the resampling filter used when rendering tiles.
func WithFilter(f Filter) Option {
	return func(o *sessionOptions) {
		o.filter = f
	}
}

// WithStretch sets the display transform applied to raw samples at image
// load. When unset, an AutoStretch over the image's sample histogram is
// used.
func WithStretch(s Stretch) Option {
	return func(o *sessionOptions) {
		o.stretch = s
	}
}

// WithFitToView makes LoadImage pick the largest scale that shows the
// whole image inside the current view, instead of starting at scale 1.
// With an empty view the scale still starts at 1.
func WithFitToView(fit bool) Option {
	return func(o *sessionOptions) {
		o.fitToView = fit
	}
}

// WithScaleCallback registers fn to be called whenever the applied scale
// actually changes, e.g. to drive a zoom-percentage display. The
// callback runs synchronously on the session owner's thread.
func WithScaleCallback(fn func(scale float64)) Option {
	return func(o *sessionOptions) {
		o.onScale = fn
	}
}
