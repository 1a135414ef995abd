// Package block implements the Block Codec: decoding and encoding the
// 12-byte voxel record of spec.md §3, and transforming it under a
// geom.Symmetry.
//
// The bit-surgery follows the iNES header decode idiom of
// nesrom/header.go — small unexported accessor types that mask out one
// field at a time and never clear bits they don't own.
package block

import (
	"encoding/binary"

	"github.com/gmprotate/gmprotate/geom"
)

// BlockType is the low 2 bits of the slope byte (spec.md §3).
type BlockType uint8

const (
	Air BlockType = iota
	Road
	Pavement
	Field
)

// Block is the decoded form of one 12-byte voxel record.
type Block struct {
	Left, Right, Top, Bottom FaceWord
	Lid                      LidWord
	Arrow                    uint8 // high nibble = red, low nibble = green
	Type                     BlockType
	SlopeID                  uint8 // 0-63; see slope.go for the families in [1,60]
}

// Size is the encoded length of a Block record in bytes.
const Size = 12

// Decode parses a 12-byte little-endian block record.
func Decode(raw [Size]byte) Block {
	return Block{
		Left:    FaceWord(binary.LittleEndian.Uint16(raw[0:2])),
		Right:   FaceWord(binary.LittleEndian.Uint16(raw[2:4])),
		Top:     FaceWord(binary.LittleEndian.Uint16(raw[4:6])),
		Bottom:  FaceWord(binary.LittleEndian.Uint16(raw[6:8])),
		Lid:     LidWord(binary.LittleEndian.Uint16(raw[8:10])),
		Arrow:   raw[10],
		Type:    BlockType(raw[11] & 0x03),
		SlopeID: raw[11] >> 2,
	}
}

// Encode re-emits the block as a 12-byte little-endian record.
func (b Block) Encode() [Size]byte {
	var raw [Size]byte
	binary.LittleEndian.PutUint16(raw[0:2], uint16(b.Left))
	binary.LittleEndian.PutUint16(raw[2:4], uint16(b.Right))
	binary.LittleEndian.PutUint16(raw[4:6], uint16(b.Top))
	binary.LittleEndian.PutUint16(raw[6:8], uint16(b.Bottom))
	binary.LittleEndian.PutUint16(raw[8:10], uint16(b.Lid))
	raw[10] = b.Arrow
	raw[11] = (b.SlopeID << 2) | uint8(b.Type)&0x03
	return raw
}

// Face returns the face word on side f.
func (b Block) Face(f geom.Face) FaceWord {
	switch f {
	case geom.Top:
		return b.Top
	case geom.Bottom:
		return b.Bottom
	case geom.Left:
		return b.Left
	case geom.Right:
		return b.Right
	default:
		return 0
	}
}

// WithFace returns a copy of b with side f set to w.
func (b Block) WithFace(f geom.Face, w FaceWord) Block {
	switch f {
	case geom.Top:
		b.Top = w
	case geom.Bottom:
		b.Bottom = w
	case geom.Left:
		b.Left = w
	case geom.Right:
		b.Right = w
	}
	return b
}

// IsEmpty reports whether the block is the air/untextured fast-path case
// (spec.md §4.B: "a block is empty iff block-type = air and lid tile index
// = 0 and all four face tile indexes = 0").
func (b Block) IsEmpty() bool {
	return b.Type == Air &&
		b.Lid.TileIndex() == 0 &&
		b.Left.TileIndex() == 0 &&
		b.Right.TileIndex() == 0 &&
		b.Top.TileIndex() == 0 &&
		b.Bottom.TileIndex() == 0
}
