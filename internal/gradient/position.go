package gradient

import "math"

// PositionAt converts a horizontal offset inside an element of the given
// width into a stop position: round(100 * offsetX / width), kept in [0,100].
func PositionAt(offsetX, width int) int {
	if width <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(offsetX) / float64(width)))
	return ClampPosition(p)
}

// ClampPosition limits p to [0,100].
func ClampPosition(p int) int {
	return min(max(p, 0), 100)
}
