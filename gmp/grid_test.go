package gmp

import (
	"testing"

	"github.com/gmprotate/gmprotate/block"
	"github.com/gmprotate/gmprotate/geom"
)

func TestVoxelsAtSet(t *testing.T) {
	v := &Voxels{}
	b := block.Block{Top: 5, Type: block.Pavement}
	v.Set(3, 4, 2, b)
	got := v.At(3, 4, 2)
	if got != b {
		t.Errorf("At(3,4,2) = %+v, want %+v", got, b)
	}
}

func TestDestCoordFlipX(t *testing.T) {
	x, y, z := destCoord(10, 20, 3, geom.FlipX)
	if x != MapWidth-10 || y != 20 || z != 3 {
		t.Errorf("destCoord flipX = (%d,%d,%d), want (%d,20,3)", x, y, z, MapWidth-10)
	}
}

func TestDestCoordRot90(t *testing.T) {
	x, y, z := destCoord(10, 20, 3, geom.Rot90)
	if x != 20 || y != MapHeight-10 || z != 3 {
		t.Errorf("destCoord rot90 = (%d,%d,%d), want (20,%d,3)", x, y, z, MapHeight-10)
	}
}

func TestDestCoordFlipXYEqualsRot180(t *testing.T) {
	x1, y1, z1 := destCoord(10, 20, 3, geom.FlipXY)
	x2, y2, z2 := destCoord(10, 20, 3, geom.Rot180)
	if x1 != x2 || y1 != y2 || z1 != z2 {
		t.Errorf("destCoord flipXY = (%d,%d,%d), rot180 = (%d,%d,%d), want equal", x1, y1, z1, x2, y2, z2)
	}
}

func TestVoxelsTransformIdentity(t *testing.T) {
	v := &Voxels{}
	b := block.Block{Top: 9, Type: block.Road, Arrow: 0x0A}
	v.Set(5, 6, 1, b)

	got := v.Transform(geom.Identity)
	if got.At(5, 6, 1) != b {
		t.Errorf("Transform(Identity) moved/changed block: got %+v, want %+v", got.At(5, 6, 1), b)
	}
}

func TestVoxelsTransformFlipXMovesBlock(t *testing.T) {
	v := &Voxels{}
	b := block.Block{Top: 9, Type: block.Road, Arrow: 0x0A}
	v.Set(5, 6, 1, b)

	got := v.Transform(geom.FlipX)
	wantX := MapWidth - 5
	moved := got.At(wantX, 6, 1)
	if moved.IsEmpty() {
		t.Fatalf("expected a transformed block at x=%d, got empty", wantX)
	}
}
