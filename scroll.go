package viewport

// ScrollRegion computes the rectangle within which the scroll offset may
// legally range, from the scaled image bounds and the visible box, both
// in canvas space.
//
// The region starts as the union of the two boxes. On any axis where the
// visible box spans the whole union (the image is narrower than the
// view on that axis, or the view sits exactly at the image's edge), the
// region collapses to the image's own extent on that axis. This is what
// keeps a small image from rattling around an oversized viewport: the
// viewport's own position must not extend the bounds it scrolls within.
func ScrollRegion(scaledImage, visible Rect) Rect {
	region := scaledImage.Union(visible)
	if visible.Min.X == region.Min.X && visible.Max.X == region.Max.X {
		region.Min.X, region.Max.X = scaledImage.Min.X, scaledImage.Max.X
	}
	if visible.Min.Y == region.Min.Y && visible.Max.Y == region.Max.Y {
		region.Min.Y, region.Max.Y = scaledImage.Min.Y, scaledImage.Max.Y
	}
	return region
}

// clampOffset clamps offset so that a viewW×viewH visible box anchored
// at it stays inside region. When the region is smaller than the view on
// an axis, the offset pins to the region's near edge on that axis.
func clampOffset(region Rect, offset Point, viewW, viewH float64) Point {
	hiX := region.Max.X - viewW
	if hiX < region.Min.X {
		hiX = region.Min.X
	}
	hiY := region.Max.Y - viewH
	if hiY < region.Min.Y {
		hiY = region.Min.Y
	}
	return Point{
		X: clamp(offset.X, region.Min.X, hiX),
		Y: clamp(offset.Y, region.Min.Y, hiY),
	}
}
