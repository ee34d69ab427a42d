package viewport

import (
	"fmt"
	"image"
	"log/slog"
	"math"
)

// Session owns the viewport for one open image: the display image, the
// viewport state, and the gesture controllers. A Session is created
// once and survives image replacement; loading a new image resets the
// state while the view size is kept.
//
// A Session is not safe for concurrent use. All methods must run on the
// single owner thread (normally the UI thread); see BeginLoad for the
// supported worker handoff.
type Session struct {
	opts sessionOptions

	img     *Image
	display *image.RGBA
	state   *State
	zoom    *ZoomController
	pan     *PanController
	render  *Renderer

	viewW, viewH int
	loadSeq      uint64

	frame    *Tile
	frameKey frameKey
	frameOK  bool
}

// frameKey captures every input the renderer depends on; a frame is
// reused while the key is unchanged, making Frame idempotent.
type frameKey struct {
	scale        float64
	offset       Point
	viewW, viewH int
	loadSeq      uint64
}

// NewSession creates an empty session. Load an image with LoadImage (or
// BeginLoad/CompleteLoad from a worker) before requesting frames.
func NewSession(opts ...Option) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		opts:   o,
		render: NewRenderer(o.filter),
	}
}

// LoadImage installs img as the session's image: the configured stretch
// (or an AutoStretch over img's histogram) produces the display pixels,
// and the viewport state resets to offset zero at scale 1, or at the
// fit-to-view scale when configured. The previous image, if any, is
// released.
func (s *Session) LoadImage(img *Image) error {
	if img == nil {
		Logger().Warn("viewport: rejecting nil image")
		return fmt.Errorf("%w: nil", ErrInvalidImage)
	}

	stretch := s.opts.stretch
	if stretch == nil {
		stretch = AutoStretch(img, 0)
	}

	s.img = img
	s.display = stretch.Apply(img)
	s.state = NewState(img.Width(), img.Height(), s.opts.minPixels, s.opts.maxScale)
	s.state.Resize(s.viewW, s.viewH)
	s.zoom = NewZoomController(s.state, s.opts.zoomStep)
	s.pan = NewPanController(s.state)
	s.loadSeq++
	s.frameOK = false

	if s.opts.fitToView && s.viewW > 0 && s.viewH > 0 {
		fit := math.Min(
			float64(s.viewW)/float64(img.Width()),
			float64(s.viewH)/float64(img.Height()),
		)
		s.state.SetScale(fit)
	}

	Logger().Info("viewport: image loaded",
		slog.Int("width", img.Width()),
		slog.Int("height", img.Height()),
		slog.Float64("scale", s.state.Scale()),
	)
	s.notifyScale(s.state.Scale())
	return nil
}

// BeginLoad issues a load token for a worker-side image load. The worker
// decodes the image off-thread and the owner completes the handoff with
// CompleteLoad; a token is invalidated by any later BeginLoad, so a slow
// load that finishes after a newer request is discarded.
//
// BeginLoad and CompleteLoad must both be called on the owner thread;
// only the decoding in between belongs on a worker.
func (s *Session) BeginLoad() uint64 {
	s.loadSeq++
	return s.loadSeq
}

// CompleteLoad installs img if token is still current, and returns
// ErrSuperseded without touching any state if a newer load was issued
// in the meantime.
func (s *Session) CompleteLoad(token uint64, img *Image) error {
	if token != s.loadSeq {
		Logger().Warn("viewport: discarding superseded load",
			slog.Uint64("token", token),
			slog.Uint64("current", s.loadSeq),
		)
		return ErrSuperseded
	}
	return s.LoadImage(img)
}

// Resize reports a new view size in device pixels. Zero sizes are
// tolerated and produce empty frames until a valid resize follows.
func (s *Session) Resize(w, h int) {
	s.viewW = max(w, 0)
	s.viewH = max(h, 0)
	if s.state != nil {
		s.state.Resize(s.viewW, s.viewH)
	}
	Logger().Debug("viewport: resized",
		slog.Int("view_w", s.viewW),
		slog.Int("view_h", s.viewH),
	)
}

// Wheel applies one zoom step anchored at pointer, in device
// coordinates, and returns the scale in effect afterwards. Saturated or
// off-image zooms leave the state unchanged; compare the result with
// Scale from before the call to detect saturation.
func (s *Session) Wheel(dir ZoomDirection, pointer Point) float64 {
	if s.state == nil {
		return 0
	}
	old := s.state.Scale()
	applied := s.zoom.Zoom(dir, pointer)
	if applied == old {
		Logger().Debug("viewport: zoom ignored",
			slog.String("direction", dir.String()),
			slog.Float64("scale", old),
		)
	} else {
		s.notifyScale(applied)
	}
	return applied
}

// ZoomCenter applies one zoom step anchored at the viewport center, for
// keyboard or API-driven zoom without a pointer position.
func (s *Session) ZoomCenter(dir ZoomDirection) float64 {
	if s.state == nil {
		return 0
	}
	return s.Wheel(dir, s.state.ViewCenter())
}

// DragStart begins a pan gesture at pointer, in device coordinates.
func (s *Session) DragStart(pointer Point) {
	if s.state == nil {
		return
	}
	s.pan.BeginDrag(pointer)
}

// DragMove continues a pan gesture, moving the viewport by the delta
// from the previous pointer position, and returns the offset in effect
// afterwards.
func (s *Session) DragMove(pointer Point) Point {
	if s.state == nil {
		return Point{}
	}
	return s.pan.DragTo(pointer)
}

// DragEnd finishes the pan gesture in progress, if any.
func (s *Session) DragEnd() {
	if s.state == nil {
		return
	}
	s.pan.EndDrag()
}

// Frame renders the tile for the current state. While the state is
// unchanged the previously rendered tile is returned as-is, so calling
// Frame repeatedly is cheap and bit-stable. Returns ErrNoImage before
// the first successful load; an off-image or zero-size viewport yields
// an empty tile, not an error.
func (s *Session) Frame() (*Tile, error) {
	if s.state == nil {
		return nil, ErrNoImage
	}
	key := frameKey{
		scale:   s.state.Scale(),
		offset:  s.state.Offset(),
		viewW:   s.viewW,
		viewH:   s.viewH,
		loadSeq: s.loadSeq,
	}
	if s.frameOK && key == s.frameKey {
		return s.frame, nil
	}
	tile := s.render.Render(s.state, s.display)
	if tile.Empty() {
		Logger().Debug("viewport: empty frame",
			slog.Float64("scale", key.scale),
			slog.Int("view_w", s.viewW),
			slog.Int("view_h", s.viewH),
		)
	}
	s.frame = tile
	s.frameKey = key
	s.frameOK = true
	return tile, nil
}

// Scale returns the current scale, or 0 when no image is loaded.
func (s *Session) Scale() float64 {
	if s.state == nil {
		return 0
	}
	return s.state.Scale()
}

// Offset returns the current scroll offset.
func (s *Session) Offset() Point {
	if s.state == nil {
		return Point{}
	}
	return s.state.Offset()
}

// State returns the underlying viewport state, or nil before the first
// load. It is owned by the session; callers must not retain it across
// loads.
func (s *Session) State() *State {
	return s.state
}

// Image returns the currently loaded image, or nil.
func (s *Session) Image() *Image {
	return s.img
}

func (s *Session) notifyScale(scale float64) {
	if s.opts.onScale != nil {
		s.opts.onScale(scale)
	}
}
