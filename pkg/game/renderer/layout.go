package renderer

// FitTileSize returns the largest tile size in [minSize, maxSize] that fits
// a rows x cols map into a width x height area. When nothing fits, minSize
// is returned and the map overflows.
func FitTileSize(rows, cols, width, height, minSize, maxSize int) int {
	if rows <= 0 || cols <= 0 {
		return maxSize
	}
	size := width / cols
	if h := height / rows; h < size {
		size = h
	}
	if size > maxSize {
		size = maxSize
	}
	if size < minSize {
		size = minSize
	}
	return size
}
