package viewport

import (
	"errors"
	"fmt"
	"image"
)

// Errors reported by the engine. Gesture application never errors; these
// cover the image-load boundary only.
var (
	// ErrInvalidImage is returned when an image is constructed or loaded
	// with non-positive dimensions or a short sample buffer.
	ErrInvalidImage = errors.New("viewport: invalid image")

	// ErrNoImage is returned by Frame when no image has been loaded yet.
	ErrNoImage = errors.New("viewport: no image loaded")

	// ErrSuperseded is returned by CompleteLoad when a newer load request
	// was issued after the corresponding BeginLoad.
	ErrSuperseded = errors.New("viewport: load superseded")
)

// Image is an immutable row-major buffer of raw image samples, as handed
// over by a decoding collaborator (for example a FITS or PNG loader).
// Samples carry no display semantics of their own; a Stretch maps them
// to displayable intensities when the image is loaded into a Session.
type Image struct {
	width   int
	height  int
	samples []float64
}

// NewImage creates an Image from a row-major sample buffer.
// It returns ErrInvalidImage if width or height is not positive or if
// the buffer holds fewer than width*height samples. A longer buffer is
// accepted and truncated to the image extent.
func NewImage(samples []float64, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	if len(samples) < width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidImage, len(samples), width, height)
	}
	return &Image{
		width:   width,
		height:  height,
		samples: samples[:width*height],
	}, nil
}

// FromGray creates an Image from an 8-bit grayscale image, mapping pixel
// values to samples in [0, 255].
func FromGray(src *image.Gray) (*Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, w, h)
	}
	samples := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
		for x := 0; x < w; x++ {
			samples[y*w+x] = float64(row[x+b.Min.X-src.Rect.Min.X])
		}
	}
	return &Image{width: w, height: h, samples: samples}, nil
}

// ToGray converts the image to 8-bit grayscale, rounding samples and
// clipping them to [0, 255]. It is the inverse of FromGray for images
// built from one.
func (m *Image) ToGray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.width, m.height))
	for i, v := range m.samples {
		switch {
		case v <= 0:
			dst.Pix[i] = 0
		case v >= 255:
			dst.Pix[i] = 255
		default:
			dst.Pix[i] = uint8(v + 0.5)
		}
	}
	return dst
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Sample returns the raw sample at (x, y). Out-of-bounds coordinates
// return 0.
func (m *Image) Sample(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.samples[y*m.width+x]
}

// Samples returns the underlying row-major sample buffer. The buffer is
// shared, not copied; callers must treat it as read-only.
func (m *Image) Samples() []float64 {
	return m.samples
}

// Bounds returns the image extent as a Rect anchored at the origin.
func (m *Image) Bounds() Rect {
	return R(0, 0, float64(m.width), float64(m.height))
}
