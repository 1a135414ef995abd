// Package geom implements the axis math shared by the map and script
// transformers: coordinate, angle, face-direction and traffic-arrow
// transforms under one of the seven supported symmetries.
package geom

import "fmt"

// Symmetry identifies one of the seven geometric transforms this system
// can apply uniformly across map and script artifacts.
type Symmetry int

const (
	Identity Symmetry = iota
	FlipX
	FlipY
	FlipXY
	Rot90
	Rot180
	Rot270
)

func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "identity"
	case FlipX:
		return "flipX"
	case FlipY:
		return "flipY"
	case FlipXY:
		return "flipXY"
	case Rot90:
		return "rot90"
	case Rot180:
		return "rot180"
	case Rot270:
		return "rot270"
	default:
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
}

// IsRotation reports whether s is one of the rot90/rot180/rot270 family,
// as opposed to a flip.
func (s Symmetry) IsRotation() bool {
	switch s {
	case Rot90, Rot180, Rot270:
		return true
	default:
		return false
	}
}

// IsFlip reports whether s is one of flipX/flipY/flipXY.
func (s Symmetry) IsFlip() bool {
	switch s {
	case FlipX, FlipY, FlipXY:
		return true
	default:
		return false
	}
}

// FlipsX reports whether s mirrors the x-axis (flipX or flipXY).
func (s Symmetry) FlipsX() bool {
	return s == FlipX || s == FlipXY
}

// FlipsY reports whether s mirrors the y-axis (flipY or flipXY).
func (s Symmetry) FlipsY() bool {
	return s == FlipY || s == FlipXY
}

// Inverse returns the symmetry that undoes s. Every symmetry in this
// system is self-inverse except rot90/rot270, which invert each other.
func (s Symmetry) Inverse() Symmetry {
	switch s {
	case Rot90:
		return Rot270
	case Rot270:
		return Rot90
	default:
		return s
	}
}

// RotationDegrees returns the clockwise rotation amount represented by s,
// treating flipXY as equivalent to rot180 (spec.md §3: "flipXY = rot180").
// Flips other than flipXY, and Identity, report 0.
func (s Symmetry) RotationDegrees() int {
	switch s {
	case Rot90:
		return 90
	case Rot180, FlipXY:
		return 180
	case Rot270:
		return 270
	default:
		return 0
	}
}
