package geom

// MapMax is the edge length of block-coordinate space (spec.md §3: "Block
// coordinate space uses MAP_MAX = 256").
const MapMax = 256

// TransformCoordInt applies the byte-grid (integer) coordinate transform
// of spec.md §4.A, where delta is 1 (cell centers map onto cell centers).
func TransformCoordInt(x, y int, s Symmetry) (int, int) {
	const delta = 1
	switch s {
	case Identity:
		return x, y
	case FlipX:
		return MapMax - x - delta, y
	case FlipY:
		return x, MapMax - y - delta
	case FlipXY:
		return MapMax - x - delta, MapMax - y - delta
	case Rot90:
		return MapMax - y, x
	case Rot180:
		return MapMax - x, MapMax - y
	case Rot270:
		return y, MapMax - x
	default:
		return x, y
	}
}

// TransformCoordFloat applies the script-coordinate (float, half-cell
// centered) transform of spec.md §4.A, where delta is 0.
func TransformCoordFloat(x, y float64, s Symmetry) (float64, float64) {
	return TransformCoordFloatMax(x, y, s, MapMax)
}

// TransformCoordFloatMax is TransformCoordFloat generalized over the
// coordinate-space ceiling, for callers whose space isn't the block
// grid's MAP_MAX — e.g. the lights table's fixed-point space, which
// substitutes LIGHT_MAX (spec.md §4.D's light pass).
func TransformCoordFloatMax(x, y float64, s Symmetry, max float64) (float64, float64) {
	switch s {
	case Identity:
		return x, y
	case FlipX:
		return max - x, y
	case FlipY:
		return x, max - y
	case FlipXY:
		return max - x, max - y
	case Rot90:
		return max - y, x
	case Rot180:
		return max - x, max - y
	case Rot270:
		return y, max - x
	default:
		return x, y
	}
}

// TransformWidthHeight swaps width/height under a 90°/270° rotation and
// leaves them untouched under every flip (spec.md §3: "rot90/rot270 swap w
// and h").
func TransformWidthHeight(w, h float64, s Symmetry) (float64, float64) {
	if s == Rot90 || s == Rot270 {
		return h, w
	}
	return w, h
}
