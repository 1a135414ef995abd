package block

import (
	"testing"

	"github.com/gmprotate/gmprotate/geom"
)

func TestTransformSlopeIDScenario4(t *testing.T) {
	// spec.md §8 scenario 4: slope-id 11 (up/TOP, offset 2) under rot90
	// becomes 35 (right, offset 2).
	got := TransformSlopeID(11, geom.Rot90)
	if got != 35 {
		t.Errorf("TransformSlopeID(11, Rot90) = %d, want 35", got)
	}
}

func TestTransformSlopeIDUnknownPassesThrough(t *testing.T) {
	for _, id := range []uint8{0, 61, 200, 255} {
		got := TransformSlopeID(id, geom.Rot90)
		if got != id {
			t.Errorf("TransformSlopeID(%d, Rot90) = %d, want unchanged", id, got)
		}
	}
}

func TestTransformSlopeIDIdentity(t *testing.T) {
	for id := uint8(1); id <= slopeFamilyExtent; id++ {
		got := TransformSlopeID(id, geom.Identity)
		if got != id {
			t.Errorf("TransformSlopeID(%d, Identity) = %d, want unchanged", id, got)
		}
	}
}

func TestTransformSlopeIDSelfInverse(t *testing.T) {
	for id := uint8(1); id <= slopeFamilyExtent; id++ {
		for _, s := range []geom.Symmetry{geom.FlipX, geom.FlipY, geom.FlipXY, geom.Rot180} {
			once := TransformSlopeID(id, s)
			twice := TransformSlopeID(once, s)
			if twice != id {
				t.Errorf("id=%d sym=%v: TransformSlopeID twice = %d, want %d", id, s, twice, id)
			}
		}
	}
}

func TestTransformSlopeIDRot90Rot270RoundTrip(t *testing.T) {
	for id := uint8(1); id <= slopeFamilyExtent; id++ {
		rotated := TransformSlopeID(id, geom.Rot90)
		back := TransformSlopeID(rotated, geom.Rot270)
		if back != id {
			t.Errorf("id=%d: Rot90 then Rot270 = %d, want %d", id, back, id)
		}
	}
}

func TestTransformSlopeIDFlipXYEqualsRot180(t *testing.T) {
	for id := uint8(1); id <= slopeFamilyExtent; id++ {
		flipXY := TransformSlopeID(id, geom.FlipXY)
		rot180 := TransformSlopeID(id, geom.Rot180)
		if flipXY != rot180 {
			t.Errorf("id=%d: TransformSlopeID(FlipXY) = %d, TransformSlopeID(Rot180) = %d, want equal", id, flipXY, rot180)
		}
	}
}

// TestTransformSlopeIDDiagonalFamilies pins a concrete expected value for
// every (diagonal family, symmetry) combination, traced directly from
// _examples/original_source/flip_gmp.py's flip_slope/swap_slope and
// rotate_gmp.py's rotate_slope/rotate_slope_90. The four families are not
// interchangeable: 45-48 and 49-52 share one orbit shape, but 53-56 and
// 57-60 each diverge from it and from each other.
func TestTransformSlopeIDDiagonalFamilies(t *testing.T) {
	tests := []struct {
		name string
		id   uint8
		s    geom.Symmetry
		want uint8
	}{
		// 45-48: flipX swaps (45,46) and (47,48); flipY swaps (45,47)
		// and (46,48); rot90 cycles all four.
		{"45-48 flipX", 45, geom.FlipX, 46},
		{"45-48 flipX", 46, geom.FlipX, 45},
		{"45-48 flipX", 47, geom.FlipX, 48},
		{"45-48 flipX", 48, geom.FlipX, 47},
		{"45-48 flipY", 45, geom.FlipY, 47},
		{"45-48 flipY", 46, geom.FlipY, 48},
		{"45-48 flipY", 47, geom.FlipY, 45},
		{"45-48 flipY", 48, geom.FlipY, 46},
		{"45-48 rot90", 45, geom.Rot90, 46},
		{"45-48 rot90", 46, geom.Rot90, 48},
		{"45-48 rot90", 47, geom.Rot90, 45},
		{"45-48 rot90", 48, geom.Rot90, 47},

		// 49-52: same orbit shape as 45-48, offset by the family base.
		{"49-52 flipX", 49, geom.FlipX, 50},
		{"49-52 flipY", 49, geom.FlipY, 51},
		{"49-52 rot90", 49, geom.Rot90, 50},
		{"49-52 rot90", 51, geom.Rot90, 49},

		// 53-56: flipX only swaps (53,54); 55 and 56 are fixed.
		{"53-56 flipX", 53, geom.FlipX, 54},
		{"53-56 flipX", 54, geom.FlipX, 53},
		{"53-56 flipX", 55, geom.FlipX, 55},
		{"53-56 flipX", 56, geom.FlipX, 56},
		{"53-56 flipY", 55, geom.FlipY, 56},
		{"53-56 flipY", 56, geom.FlipY, 55},
		{"53-56 rot90", 53, geom.Rot90, 55},
		{"53-56 rot90", 54, geom.Rot90, 56},
		{"53-56 rot90", 55, geom.Rot90, 54},
		{"53-56 rot90", 56, geom.Rot90, 53},

		// 57-60: its own distinct orbit under every symmetry.
		{"57-60 flipX", 57, geom.FlipX, 58},
		{"57-60 flipX", 59, geom.FlipX, 60},
		{"57-60 flipY", 57, geom.FlipY, 60},
		{"57-60 flipY", 58, geom.FlipY, 59},
		{"57-60 rot90", 57, geom.Rot90, 58},
		{"57-60 rot90", 58, geom.Rot90, 59},
		{"57-60 rot90", 59, geom.Rot90, 60},
		{"57-60 rot90", 60, geom.Rot90, 57},
	}
	for _, tt := range tests {
		got := TransformSlopeID(tt.id, tt.s)
		if got != tt.want {
			t.Errorf("%s: TransformSlopeID(%d, %v) = %d, want %d", tt.name, tt.id, tt.s, got, tt.want)
		}
	}
}

func TestTransformSlopeIDStaysWithinFamily(t *testing.T) {
	families := []struct{ lo, hi uint8 }{
		{1, 8}, {9, 40}, {41, 44}, {45, 48}, {49, 52}, {53, 56}, {57, 60},
	}
	for _, fam := range families {
		for id := fam.lo; id <= fam.hi; id++ {
			for _, s := range []geom.Symmetry{geom.FlipX, geom.FlipY, geom.FlipXY, geom.Rot90, geom.Rot180, geom.Rot270} {
				got := TransformSlopeID(id, s)
				if got < fam.lo || got > fam.hi {
					t.Errorf("id=%d sym=%v: result %d escaped family [%d,%d]", id, s, got, fam.lo, fam.hi)
				}
			}
		}
	}
}
