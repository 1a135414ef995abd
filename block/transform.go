package block

import "github.com/gmprotate/gmprotate/geom"

// singleSideSlopeLow/High bound the diagonal slope families that occupy
// only one side-face channel (spec.md §4.B step 3's exception: "diagonal
// slopes 45-52 use only one side channel").
const (
	singleSideSlopeLow  = 45
	singleSideSlopeHigh = 52
)

// Transform applies the full per-symmetry pipeline of spec.md §4.B to a
// single voxel: empty fast path, arrow byte, lid word, the four side
// words, and the slope-id.
func Transform(b Block, s geom.Symmetry) Block {
	if s == geom.Identity || b.IsEmpty() {
		return b
	}

	if b.Type == Road || b.Type == Field {
		b.Arrow = geom.TransformArrowByte(b.Arrow, s)
	}

	if tile := b.Lid.TileIndex(); tile != 0 && tile != SentinelTile {
		b.Lid = transformLidForSymmetry(b.Lid, s)
	}

	if b.SlopeID >= singleSideSlopeLow && b.SlopeID <= singleSideSlopeHigh {
		b = relocateSingleSideFace(b, s)
	} else {
		b = permuteSideFaces(b, s)
	}

	b.SlopeID = TransformSlopeID(b.SlopeID, s)

	return b
}

// lidRotationAddend returns the rotation-field addend (in degrees) that
// transformLidForSymmetry applies for a given symmetry and a lid whose
// flip bit was already set before this transform (spec.md §4.B step 2's
// "side-effect": "the effective rotation addend is the complementary
// one (90 <-> 270)").
func lidRotationAddend(s geom.Symmetry, wasFlipped bool) int {
	switch s {
	case geom.FlipX:
		return lidFlipXRotationAddend
	case geom.FlipY, geom.FlipXY:
		return 180
	case geom.Rot90:
		if wasFlipped {
			return 270
		}
		return 90
	case geom.Rot180:
		return 180
	case geom.Rot270:
		if wasFlipped {
			return 90
		}
		return 270
	default:
		return 0
	}
}

func transformLidForSymmetry(w LidWord, s geom.Symmetry) LidWord {
	togglesFlip := s == geom.FlipX || s == geom.FlipY
	addend := lidRotationAddend(s, w.Flip())
	return transformLid(w, addend, togglesFlip)
}

// permuteSideFaces moves each present face word to its destination
// channel per the face-direction table, toggling the flip bit under
// flipX or flipY (spec.md §4.B step 3).
func permuteSideFaces(b Block, s geom.Symmetry) Block {
	togglesFlip := s == geom.FlipX || s == geom.FlipY
	faces := [4]geom.Face{geom.Top, geom.Bottom, geom.Left, geom.Right}

	var next [4]FaceWord
	for _, f := range faces {
		w := b.Face(f)
		if !w.IsAbsent() && togglesFlip {
			w = w.WithFlipToggled()
		}
		dest := geom.TransformFace(f, s)
		next[destIndex(faces, dest)] = w
	}
	for i, f := range faces {
		b = b.WithFace(f, next[i])
	}
	return b
}

func destIndex(faces [4]geom.Face, f geom.Face) int {
	for i, c := range faces {
		if c == f {
			return i
		}
	}
	return 0
}

// relocateSingleSideFace implements spec.md §4.B step 3's exception for
// diagonal slopes 45-52, which decorate exactly one side channel: the
// occupied channel is relocated to its destination channel under the
// symmetry's face permutation (rotations included), its flip bit toggled
// under flipX or flipY, and the vacated channel cleared. If the
// permutation leaves the channel in place (the "skip rule"), nothing is
// moved.
func relocateSingleSideFace(b Block, s geom.Symmetry) Block {
	faces := [4]geom.Face{geom.Top, geom.Bottom, geom.Left, geom.Right}

	var occupied geom.Face
	found := false
	for _, f := range faces {
		if !b.Face(f).IsAbsent() {
			occupied = f
			found = true
			break
		}
	}
	if !found {
		return b
	}

	dest := geom.TransformFace(occupied, s)
	w := b.Face(occupied)
	if s == geom.FlipX || s == geom.FlipY {
		w = w.WithFlipToggled()
	}
	if dest == occupied {
		return b.WithFace(occupied, w)
	}

	b = b.WithFace(occupied, 0)
	b = b.WithFace(dest, w)
	return b
}
