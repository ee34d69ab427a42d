package viewport

import (
	"image"
	"math"
)

// Stretch maps raw image samples to displayable 8-bit intensities.
// The engine applies it once per image load and renders from the result,
// so implementations may be arbitrarily expensive without affecting
// per-frame cost. Implementations must not retain the input Image.
type Stretch interface {
	// Apply produces the display image for src. The returned image must
	// have bounds (0,0)-(src.Width(),src.Height()).
	Apply(src *Image) *image.RGBA
}

// LinearStretch maps samples linearly from [Low, High] to [0, 255],
// clipping outside the range. Low must be less than High; a degenerate
// range renders mid-gray.
type LinearStretch struct {
	Low, High float64
}

// Apply implements Stretch.
func (s LinearStretch) Apply(src *Image) *image.RGBA {
	w, h := src.Width(), src.Height()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	span := s.High - s.Low
	samples := src.Samples()
	for i, v := range samples {
		var g uint8
		if span <= 0 {
			g = 128
		} else {
			t := (v - s.Low) / span
			switch {
			case t <= 0:
				g = 0
			case t >= 1:
				g = 255
			default:
				g = uint8(t*255 + 0.5)
			}
		}
		o := i * 4
		dst.Pix[o+0] = g
		dst.Pix[o+1] = g
		dst.Pix[o+2] = g
		dst.Pix[o+3] = 255
	}
	return dst
}

// autoStretchBins is the histogram resolution used by AutoStretch.
const autoStretchBins = 60

// AutoStretch derives a LinearStretch from the sample histogram of img,
// clipping clipFrac of the total mass off each tail. clipFrac outside
// [0, 0.5) falls back to 0. With clipFrac 0 the result spans the full
// sample range.
func AutoStretch(img *Image, clipFrac float64) LinearStretch {
	samples := img.Samples()
	if len(samples) == 0 {
		return LinearStretch{Low: 0, High: 1}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi { // all samples NaN
		return LinearStretch{Low: 0, High: 1}
	}
	if clipFrac < 0 || clipFrac >= 0.5 {
		clipFrac = 0
	}
	if clipFrac == 0 || hi <= lo {
		return LinearStretch{Low: lo, High: hi}
	}

	var hist [autoStretchBins]int
	binWidth := (hi - lo) / autoStretchBins
	total := 0
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		bin := int((v - lo) / binWidth)
		if bin >= autoStretchBins {
			bin = autoStretchBins - 1
		}
		hist[bin]++
		total++
	}

	clip := int(float64(total) * clipFrac)
	low, acc := lo, 0
	for i := 0; i < autoStretchBins; i++ {
		acc += hist[i]
		if acc > clip {
			low = lo + float64(i)*binWidth
			break
		}
	}
	high := hi
	acc = 0
	for i := autoStretchBins - 1; i >= 0; i-- {
		acc += hist[i]
		if acc > clip {
			high = lo + float64(i+1)*binWidth
			break
		}
	}
	if high <= low {
		return LinearStretch{Low: lo, High: hi}
	}
	return LinearStretch{Low: low, High: high}
}
