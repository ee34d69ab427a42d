package viewport

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Tile is one rendered frame: the image-space rectangle that was
// sampled, the device-space rectangle to paint it into, and the
// resampled pixels. A Tile is created fresh per render and owned by the
// caller; the engine retains no reference after handing it over.
type Tile struct {
	// Source is the image-space rectangle that was sampled, clamped to
	// the image bounds.
	Source image.Rectangle

	// Dest is the device-space rectangle to paint. When the image does
	// not cover the whole viewport, Dest is smaller than the view and
	// the remainder is left to the caller's background.
	Dest image.Rectangle

	// Pixels holds the resampled pixels, with bounds (0,0)-(Dest.Dx(),
	// Dest.Dy()). Nil for an empty tile.
	Pixels *image.RGBA
}

// Empty reports whether the tile has nothing to paint: the visible box
// and the image do not overlap, or the view has zero size.
func (t *Tile) Empty() bool {
	return t == nil || t.Pixels == nil || t.Dest.Empty()
}

// Renderer computes the visible tile for a viewport state over a
// display image. It is stateless apart from its filter configuration;
// rendering twice with unchanged inputs returns bit-identical tiles.
type Renderer struct {
	filter Filter
}

// NewRenderer creates a renderer using the given resampling filter.
func NewRenderer(filter Filter) *Renderer {
	return &Renderer{filter: filter}
}

// Filter returns the resampling filter in use.
func (r *Renderer) Filter() Filter {
	return r.filter
}

// Render produces the tile covering the intersection of the on-screen
// image with the visible box. An empty intersection (the user panned
// fully off-image, or the view has zero size) yields an empty Tile,
// never an error.
func (r *Renderer) Render(st *State, display *image.RGBA) *Tile {
	visible := st.ViewBounds()
	overlap := st.ScaledImageBounds().Intersect(visible)
	if overlap.Empty() {
		return &Tile{}
	}

	// Map the overlap back to image space and clamp to the image, then
	// to whole source pixels.
	scale := st.Scale()
	src := overlap.Scale(1 / scale).Intersect(st.ImageBounds()).ToImageRect()
	src = src.Intersect(display.Bounds())

	destMin := overlap.Min.Sub(st.Offset())
	dest := image.Rect(
		int(math.Round(destMin.X)),
		int(math.Round(destMin.Y)),
		int(math.Round(destMin.X))+int(math.Round(overlap.Dx())),
		int(math.Round(destMin.Y))+int(math.Round(overlap.Dy())),
	)
	if src.Empty() || dest.Empty() {
		return &Tile{}
	}

	pixels := image.NewRGBA(image.Rect(0, 0, dest.Dx(), dest.Dy()))
	r.filter.scaler().Scale(pixels, pixels.Bounds(), display, src, xdraw.Src, nil)

	return &Tile{Source: src, Dest: dest, Pixels: pixels}
}
