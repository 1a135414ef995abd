package block

import "github.com/gmprotate/gmprotate/geom"

// Slope families, as enumerated in spec.md §3:
//
//	1-8    half-slopes: four paired (lower, higher) ids, one pair per
//	       direction, direction order TOP, BOTTOM, LEFT, RIGHT.
//	9-40   eighth-slopes: direction (TOP/BOTTOM/LEFT/RIGHT) * 8 offsets.
//	41-44  full (1/1) slopes: one id per direction.
//	45-48, 49-52, 53-56, 57-60: diagonal slope families, each a length-4
//	       orbit of one corner rotated/mirrored into the other three.
//
// Per DESIGN NOTES ("encode each slope family as a small permutation
// table keyed by symmetry; do not compute permutations by formula"), each
// diagonal family is driven by its own explicit orbit table
// (diagonalOrbitsA..D) rather than a shared geometric formula. 45-48 and
// 49-52 carry identical tables; 53-56 and 57-60 each have their own.

const (
	halfSlopeBase   = 1 // ids 1-8
	eighthSlopeBase = 9 // ids 9-40, 8 per direction

	fullSlopeBase     = 41 // ids 41-44
	diagonalBaseA     = 45 // ids 45-48
	diagonalBaseB     = 49 // ids 49-52
	diagonalBaseC     = 53 // ids 53-56
	diagonalBaseD     = 57 // ids 57-60
	slopeFamilyExtent = 60
)

// directionOrder fixes TOP, BOTTOM, LEFT, RIGHT as index 0..3 for slope
// families that enumerate one id/offset-block per direction, matching the
// canonical order spec.md §4.A uses for the face-direction table.
var directionOrder = [4]geom.Face{geom.Top, geom.Bottom, geom.Left, geom.Right}

func directionIndex(f geom.Face) int {
	for i, d := range directionOrder {
		if d == f {
			return i
		}
	}
	return -1
}

// TransformSlopeID transforms a slope-id under symmetry s, per the family
// rules of spec.md §4.B step 4. ids outside [1, 60], or not covered by any
// family, are returned unchanged (spec.md §4.B: "on an unknown slope-id...
// leave the block unchanged and continue").
func TransformSlopeID(id uint8, s geom.Symmetry) uint8 {
	switch {
	case id >= halfSlopeBase && id <= 8:
		return transformHalfSlope(id, s)
	case id >= eighthSlopeBase && id <= 40:
		return transformEighthSlope(id, s)
	case id >= fullSlopeBase && id <= 44:
		return transformDirectionOrbit(id, fullSlopeBase, s)
	case id >= diagonalBaseA && id <= 48:
		return transformCornerOrbit(id, diagonalBaseA, diagonalOrbitsA, s)
	case id >= diagonalBaseB && id <= 52:
		return transformCornerOrbit(id, diagonalBaseB, diagonalOrbitsB, s)
	case id >= diagonalBaseC && id <= 56:
		return transformCornerOrbit(id, diagonalBaseC, diagonalOrbitsC, s)
	case id >= diagonalBaseD && id <= slopeFamilyExtent:
		return transformCornerOrbit(id, diagonalBaseD, diagonalOrbitsD, s)
	default:
		return id
	}
}

// transformHalfSlope permutes the four (lower, higher) pairs {1,2} {3,4}
// {5,6} {7,8} through the direction permutation induced by s, preserving
// which half of the pair (lower/higher) the id belonged to.
func transformHalfSlope(id uint8, s geom.Symmetry) uint8 {
	offset := int(id) - halfSlopeBase // 0..7
	pair := offset / 2                // 0..3
	half := offset % 2                // 0 = lower, 1 = higher
	newPair := directionIndex(geom.TransformFace(directionOrder[pair], s))
	if newPair < 0 {
		return id
	}
	return uint8(halfSlopeBase + newPair*2 + half)
}

// transformEighthSlope decodes id into (direction, offset) and
// re-encodes with the transformed direction, preserving offset (spec.md
// §8 scenario 4).
func transformEighthSlope(id uint8, s geom.Symmetry) uint8 {
	offset := int(id) - eighthSlopeBase
	dirIdx := offset / 8
	sub := offset % 8
	newDirIdx := directionIndex(geom.TransformFace(directionOrder[dirIdx], s))
	if newDirIdx < 0 {
		return id
	}
	return uint8(eighthSlopeBase + newDirIdx*8 + sub)
}

// transformDirectionOrbit permutes a length-4, one-id-per-direction family
// (the 41-44 full slopes) through the face-direction table directly.
func transformDirectionOrbit(id uint8, base uint8, s geom.Symmetry) uint8 {
	offset := int(id) - int(base)
	newOffset := directionIndex(geom.TransformFace(directionOrder[offset], s))
	if newOffset < 0 {
		return id
	}
	return base + uint8(newOffset)
}

// diagonalOrbits holds the hand-specified four-element permutation table
// for one diagonal slope family, keyed by symmetry. Each family's orbit is
// traced independently from the reference flip_gmp.py/rotate_gmp.py
// implementations: 45-48 and 49-52 share the same tables, flipX agrees
// for every family except 53-56, and flipY and rot90 differ for 53-56
// and 57-60, so a single shared table would be wrong for two of the four
// families.
type diagonalOrbits struct {
	flipX [4]int
	flipY [4]int
	rot90 [4]int
}

var (
	// 45-48. flip_gmp.py's flip_slope selects slope_array per flip_code
	// and always swaps with FLIP_XY; rotate_gmp.py's slope_array is
	// [45, 48, 47, 46].
	diagonalOrbitsA = diagonalOrbits{
		flipX: [4]int{1, 0, 3, 2},
		flipY: [4]int{2, 3, 0, 1},
		rot90: [4]int{1, 3, 0, 2},
	}
	// 49-52. Same shape as 45-48 in both reference files.
	diagonalOrbitsB = diagonalOrbits{
		flipX: [4]int{1, 0, 3, 2},
		flipY: [4]int{2, 3, 0, 1},
		rot90: [4]int{1, 3, 0, 2},
	}
	// 53-56. flip_gmp.py keeps one fixed slope_array ([55, 56, 53, 54])
	// and swaps with the real flip_code (unlike 45-48/49-52/57-60, which
	// always swap with FLIP_XY), so only the base pair (53, 54) toggles
	// under flipX here; 55/56 are fixed. rotate_gmp.py's slope_array is
	// [53, 54, 56, 55].
	diagonalOrbitsC = diagonalOrbits{
		flipX: [4]int{1, 0, 2, 3},
		flipY: [4]int{0, 1, 3, 2},
		rot90: [4]int{2, 3, 1, 0},
	}
	// 57-60. rotate_gmp.py's slope_array is [57, 59, 60, 58].
	diagonalOrbitsD = diagonalOrbits{
		flipX: [4]int{1, 0, 3, 2},
		flipY: [4]int{3, 2, 1, 0},
		rot90: [4]int{1, 2, 3, 0},
	}
)

func composeOrbit(a, b [4]int) [4]int {
	var out [4]int
	for i := range out {
		out[i] = b[a[i]]
	}
	return out
}

func applyOrbitN(base [4]int, n int) [4]int {
	out := [4]int{0, 1, 2, 3}
	for i := 0; i < ((n % 4) + 4); i++ {
		out = composeOrbit(out, base)
	}
	return out
}

// orbitFor resolves o's permutation table for s. rot180 and rot270 are
// derived by repeated composition of rot90 with itself (a pure conjugation
// argument makes this exact, not an approximation); flipXY is the
// composition flipY∘flipX (DESIGN.md Open Question #1).
func (o diagonalOrbits) orbitFor(s geom.Symmetry) [4]int {
	switch s {
	case geom.Identity:
		return [4]int{0, 1, 2, 3}
	case geom.FlipX:
		return o.flipX
	case geom.FlipY:
		return o.flipY
	case geom.FlipXY:
		return composeOrbit(o.flipX, o.flipY)
	case geom.Rot90:
		return o.rot90
	case geom.Rot180:
		return applyOrbitN(o.rot90, 2)
	case geom.Rot270:
		return applyOrbitN(o.rot90, 3)
	default:
		return [4]int{0, 1, 2, 3}
	}
}

// transformCornerOrbit permutes one of the four-corner diagonal slope
// families using its own hand-specified orbit table.
func transformCornerOrbit(id uint8, base uint8, o diagonalOrbits, s geom.Symmetry) uint8 {
	offset := int(id) - int(base)
	if offset < 0 || offset > 3 {
		return id
	}
	orbit := o.orbitFor(s)
	return base + uint8(orbit[offset])
}
