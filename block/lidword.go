package block

// LidWord is the top-face 16-bit word (spec.md §3), bits assigned LSB
// first:
//
//	bits 0-9   tile index (0 means absent; 1023 is the diagonal-slope
//	           sentinel and must never be flip-mutated)
//	bits 10-11 light filter
//	bit  12    flat flag
//	bit  13    flip flag
//	bits 14-15 tile rotation (0, 90, 180, 270)
type LidWord uint16

const (
	lidTileMask     LidWord = 0x03FF
	lidFilterShift          = 10
	lidFilterMask   LidWord = 0x3 << lidFilterShift
	lidFlatBit      LidWord = 1 << 12
	lidFlipBit      LidWord = 1 << 13
	lidRotShift             = 14
	lidRotMask      LidWord = 0x3 << lidRotShift

	// SentinelTile is the diagonal-slope placeholder tile index that must
	// never be flip-mutated (spec.md §3).
	SentinelTile uint16 = 1023
)

func (w LidWord) TileIndex() uint16 { return uint16(w & lidTileMask) }
func (w LidWord) IsSentinel() bool  { return w.TileIndex() == SentinelTile }
func (w LidWord) LightFilter() int  { return int(uint16(w&lidFilterMask) >> lidFilterShift) }
func (w LidWord) Flat() bool        { return w&lidFlatBit != 0 }
func (w LidWord) Flip() bool        { return w&lidFlipBit != 0 }

// Rotation returns the tile rotation in degrees: one of 0, 90, 180, 270.
func (w LidWord) Rotation() int {
	return int(uint16(w&lidRotMask)>>lidRotShift) * 90
}

func (w LidWord) withRotation(degrees int) LidWord {
	steps := (degrees / 90) % 4
	if steps < 0 {
		steps += 4
	}
	return (w &^ lidRotMask) | LidWord(steps)<<lidRotShift
}

func (w LidWord) withFlipToggled() LidWord {
	return w ^ lidFlipBit
}

// lidFlipXRotationAddend is the rotation-field addend applied to the lid
// under flipX. The source (rotate_gmp.py's rotate_lid) adds no rotation
// here, treating flipX as a pure flip on the lid — see DESIGN.md's Open
// Question #2. Kept as a named constant so the alternative, principled
// behavior (an angle-reflection addend) is a one-line change.
const lidFlipXRotationAddend = 0

// transformLid applies the per-symmetry lid bit surgery of spec.md §4.B
// step 2. Callers must have already checked the tile index is non-zero and
// non-sentinel.
func transformLid(w LidWord, addend int, togglesFlip bool) LidWord {
	if togglesFlip {
		w = w.withFlipToggled()
	}
	if addend != 0 {
		w = w.withRotation(w.Rotation() + addend)
	}
	return w
}
