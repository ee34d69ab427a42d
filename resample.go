package viewport

import (
	xdraw "golang.org/x/image/draw"
)

// Filter selects the resampling kernel used when scaling the visible
// region to device pixels.
type Filter uint8

const (
	// FilterNearest selects the closest source pixel (no interpolation).
	// Fast but blocky when magnifying; the default, matching the
	// pixel-faithful behavior expected of an inspection viewer.
	FilterNearest Filter = iota

	// FilterBilinear interpolates linearly between neighboring pixels.
	// Good balance between quality and speed.
	FilterBilinear

	// FilterCatmullRom uses a Catmull-Rom kernel. Highest quality of the
	// three and the best choice when minifying, at a higher cost.
	FilterCatmullRom
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterCatmullRom:
		return "CatmullRom"
	default:
		return "Unknown"
	}
}

// scaler returns the x/image kernel backing the filter. Unknown filter
// values fall back to nearest-neighbor.
func (f Filter) scaler() xdraw.Scaler {
	switch f {
	case FilterBilinear:
		return xdraw.ApproxBiLinear
	case FilterCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}
