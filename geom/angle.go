package geom

// TransformAngle applies the clockwise angle transform of spec.md §4.A to
// a rotation parameter theta in [0, 360). flipXY is defined as the
// composition flipY∘flipX, which collapses to the same rule as rot180 —
// consistent with the invariant that flipXY and rot180 are interchangeable
// (spec.md §3, §8).
func TransformAngle(theta int, s Symmetry) int {
	theta = normalizeAngle(theta)
	switch s {
	case Identity:
		return theta
	case FlipX:
		return AngleFlipX(theta)
	case FlipY:
		return AngleFlipY(theta)
	case FlipXY, Rot180:
		return normalizeAngle(theta - 180)
	case Rot90:
		return normalizeAngle(theta - 90)
	case Rot270:
		return normalizeAngle(theta - 270)
	default:
		return theta
	}
}

// AngleFlipX applies the flipX angle rule in isolation. PHONE-kind script
// objects use this under a flipY symmetry (spec.md §4.G: "these objects use
// a different reference direction").
func AngleFlipX(theta int) int {
	return normalizeAngle(360 - normalizeAngle(theta))
}

// AngleFlipY applies the flipY angle rule in isolation. PHONE-kind script
// objects use this under a flipX symmetry.
func AngleFlipY(theta int) int {
	return normalizeAngle(180 - normalizeAngle(theta))
}

func normalizeAngle(theta int) int {
	theta %= 360
	if theta < 0 {
		theta += 360
	}
	return theta
}
