package gmp

import (
	"fmt"

	"github.com/gmprotate/gmprotate/block"
	"github.com/gmprotate/gmprotate/geom"
)

// Grid dimensions (spec.md §4.D). MapWidth/MapHeight are 255, one less
// than the coordinate-space MAP_MAX of geom — the grid remap uses the
// last valid index, not the exclusive bound.
const (
	Depth      = 8
	MapWidth   = 255
	MapHeight  = 255
	gridSide   = 256 // index range [0, 255] per axis
	blockCount = Depth * gridSide * gridSide
)

// Voxels is the in-memory [8][256][256] block grid, stored flat in
// scanline order (z outer, y middle, x inner) to match the UMAP payload
// layout directly.
type Voxels struct {
	cells [blockCount]block.Block
}

func index(x, y, z int) int {
	return z*gridSide*gridSide + y*gridSide + x
}

// At returns the block at (x, y, z).
func (v *Voxels) At(x, y, z int) block.Block {
	return v.cells[index(x, y, z)]
}

// Set stores b at (x, y, z).
func (v *Voxels) Set(x, y, z int, b block.Block) {
	v.cells[index(x, y, z)] = b
}

// ReadVoxels decodes a UMAP payload into a Voxels grid, reading in
// scanline order and stopping after Depth layers regardless of payload
// size (spec.md §4.D).
func ReadVoxels(payload []byte) (*Voxels, error) {
	need := blockCount * block.Size
	if len(payload) < need {
		return nil, fmt.Errorf("gmp: UMAP payload too short (%d bytes, need %d)", len(payload), need)
	}

	v := &Voxels{}
	i := 0
	for z := 0; z < Depth; z++ {
		for y := 0; y < gridSide; y++ {
			for x := 0; x < gridSide; x++ {
				var raw [block.Size]byte
				copy(raw[:], payload[i:i+block.Size])
				v.cells[index(x, y, z)] = block.Decode(raw)
				i += block.Size
			}
		}
	}
	return v, nil
}

// destCoord computes the destination voxel index under symmetry s,
// per spec.md §4.D's table.
func destCoord(x, y, z int, s geom.Symmetry) (int, int, int) {
	switch s {
	case geom.FlipX:
		return MapWidth - x, y, z
	case geom.FlipY:
		return x, MapHeight - y, z
	case geom.FlipXY, geom.Rot180:
		return MapWidth - x, MapHeight - y, z
	case geom.Rot90:
		return y, MapHeight - x, z
	case geom.Rot270:
		return MapHeight - y, x, z
	default:
		return x, y, z
	}
}

// Transform applies the Block Codec to every voxel and writes each
// transformed voxel to its destination index under symmetry s,
// returning a new grid (spec.md §4.D's voxel pass).
func (v *Voxels) Transform(s geom.Symmetry) *Voxels {
	out := &Voxels{}
	for z := 0; z < Depth; z++ {
		for y := 0; y < gridSide; y++ {
			for x := 0; x < gridSide; x++ {
				b := block.Transform(v.At(x, y, z), s)
				dx, dy, dz := destCoord(x, y, z, s)
				if dx < 0 || dx >= gridSide || dy < 0 || dy >= gridSide {
					continue
				}
				out.Set(dx, dy, dz, b)
			}
		}
	}
	return out
}

// Encode re-emits the grid as a UMAP payload in scanline order.
func (v *Voxels) Encode() []byte {
	out := make([]byte, 0, blockCount*block.Size)
	for z := 0; z < Depth; z++ {
		for y := 0; y < gridSide; y++ {
			for x := 0; x < gridSide; x++ {
				raw := v.At(x, y, z).Encode()
				out = append(out, raw[:]...)
			}
		}
	}
	return out
}
