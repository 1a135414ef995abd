package geom

// Arrow direction bits within one traffic-arrow nibble (spec.md §3:
// "bit0=down, bit1=up, bit2=left, bit3=right").
const (
	ArrowDown  uint8 = 1 << 0
	ArrowUp    uint8 = 1 << 1
	ArrowLeft  uint8 = 1 << 2
	ArrowRight uint8 = 1 << 3

	arrowNibbleMask uint8 = ArrowDown | ArrowUp | ArrowLeft | ArrowRight
)

// directionFace maps each arrow bit to the cuboid face it points toward,
// so the same per-symmetry face permutation drives both face words and
// traffic arrows (spec.md §4.A: "rot90/rot270 cyclically permute the four
// direction bits consistent with the face-direction table above").
var directionFace = [4]struct {
	bit  uint8
	face Face
}{
	{ArrowUp, Top},
	{ArrowDown, Bottom},
	{ArrowLeft, Left},
	{ArrowRight, Right},
}

// TransformArrowNibble transforms one 4-bit direction nibble under s.
func TransformArrowNibble(nibble uint8, s Symmetry) uint8 {
	nibble &= arrowNibbleMask
	var out uint8
	for _, d := range directionFace {
		if nibble&d.bit == 0 {
			continue
		}
		newFace := TransformFace(d.face, s)
		out |= bitForFace(newFace)
	}
	return out
}

func bitForFace(f Face) uint8 {
	for _, d := range directionFace {
		if d.face == f {
			return d.bit
		}
	}
	return 0
}

// TransformArrowByte transforms the two-nibble arrow byte (spec.md §3:
// "high=red, low=green") under s, leaving both nibbles' positions intact.
func TransformArrowByte(b uint8, s Symmetry) uint8 {
	red := b >> 4
	green := b & 0x0F
	return (TransformArrowNibble(red, s) << 4) | TransformArrowNibble(green, s)
}
