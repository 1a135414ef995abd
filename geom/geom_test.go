package geom

import "testing"

func TestTransformCoordIntSelfInverse(t *testing.T) {
	cases := []Symmetry{FlipX, FlipY, FlipXY, Rot180}
	for _, s := range cases {
		for _, pt := range [][2]int{{0, 0}, {10, 200}, {255, 1}} {
			x1, y1 := TransformCoordInt(pt[0], pt[1], s)
			x2, y2 := TransformCoordInt(x1, y1, s)
			if x2 != pt[0] || y2 != pt[1] {
				t.Errorf("%s: (%d,%d) -> (%d,%d) -> (%d,%d), want self-inverse", s, pt[0], pt[1], x1, y1, x2, y2)
			}
		}
	}
}

func TestTransformCoordIntRot90Rot270(t *testing.T) {
	x, y := 12, 34
	x1, y1 := TransformCoordInt(x, y, Rot90)
	x2, y2 := TransformCoordInt(x1, y1, Rot270)
	if x2 != x || y2 != y {
		t.Errorf("rot90 then rot270: got (%d,%d), want (%d,%d)", x2, y2, x, y)
	}
}

func TestTransformCoordFlipXYEqualsRot180(t *testing.T) {
	for _, pt := range [][2]int{{0, 0}, {10, 200}, {255, 1}} {
		fx, fy := TransformCoordInt(pt[0], pt[1], FlipXY)
		rx, ry := TransformCoordInt(pt[0], pt[1], Rot180)
		if fx != rx || fy != ry {
			t.Errorf("flipXY(%v)=(%d,%d) != rot180=(%d,%d)", pt, fx, fy, rx, ry)
		}
	}
}

func TestTransformAngleScenario1(t *testing.T) {
	// spec.md §8 scenario 1: rot270 of theta=25 -> 115
	got := TransformAngle(25, Rot270)
	if got != 115 {
		t.Errorf("TransformAngle(25, Rot270) = %d, want 115", got)
	}
}

func TestTransformAngleRules(t *testing.T) {
	cases := []struct {
		theta int
		sym   Symmetry
		want  int
	}{
		{0, FlipX, 0},
		{90, FlipX, 270},
		{0, FlipY, 180},
		{90, FlipY, 90},
		{350, Rot90, 260},
		{10, Rot180, 190},
	}
	for _, tc := range cases {
		if got := TransformAngle(tc.theta, tc.sym); got != tc.want {
			t.Errorf("TransformAngle(%d, %s) = %d, want %d", tc.theta, tc.sym, got, tc.want)
		}
	}
}

func TestTransformFaceTableIsClosed(t *testing.T) {
	faces := []Face{Top, Bottom, Left, Right}
	syms := []Symmetry{Identity, FlipX, FlipY, FlipXY, Rot90, Rot180, Rot270}
	for _, s := range syms {
		seen := map[Face]bool{}
		for _, f := range faces {
			seen[TransformFace(f, s)] = true
		}
		if len(seen) != 4 {
			t.Errorf("%s: face transform is not a permutation: %v", s, seen)
		}
	}
}

func TestTransformFaceFlipXYEqualsRot180(t *testing.T) {
	for _, f := range []Face{Top, Bottom, Left, Right} {
		if TransformFace(f, FlipXY) != TransformFace(f, Rot180) {
			t.Errorf("face %s: flipXY != rot180", f)
		}
	}
}

func TestTransformArrowByteScenario5(t *testing.T) {
	// spec.md §8 scenario 5: green nibble 0b1000 (right) under flipX -> 0b0100 (left)
	b := uint8(0x08) // low nibble (green) = 0b1000 = right
	got := TransformArrowByte(b, FlipX)
	if got != 0x04 {
		t.Errorf("TransformArrowByte(0x08, FlipX) = %#x, want 0x04", got)
	}
}

func TestTransformArrowByteSelfInverse(t *testing.T) {
	for _, s := range []Symmetry{FlipX, FlipY, FlipXY, Rot180} {
		for b := 0; b < 256; b++ {
			got := TransformArrowByte(TransformArrowByte(uint8(b), s), s)
			if got != uint8(b) {
				t.Errorf("%s: arrow byte %#x not self-inverse, got %#x", s, b, got)
			}
		}
	}
}

func TestTransformArrowByteRot90Rot270(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := TransformArrowByte(TransformArrowByte(uint8(b), Rot90), Rot270)
		if got != uint8(b) {
			t.Errorf("rot90 then rot270: arrow byte %#x -> %#x", b, got)
		}
	}
}

func TestParseFace(t *testing.T) {
	for _, tc := range []struct {
		tok  string
		want Face
		ok   bool
	}{
		{"TOP", Top, true},
		{"BOTTOM", Bottom, true},
		{"LEFT", Left, true},
		{"RIGHT", Right, true},
		{"NONSENSE", 0, false},
	} {
		f, ok := ParseFace(tc.tok)
		if ok != tc.ok || (ok && f != tc.want) {
			t.Errorf("ParseFace(%q) = (%v, %v), want (%v, %v)", tc.tok, f, ok, tc.want, tc.ok)
		}
	}
}
