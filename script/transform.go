package script

import (
	"fmt"
	"strings"

	"github.com/gmprotate/gmprotate/geom"
)

// Transform applies the geometric transform to every field of cmd per
// its kind (spec.md §4.G), plus the opcode-specific special cases:
// PHONE-kind rotation's opposite flip axis, the DOUBLE-door ±1 tie
// break, LOWER_LEVEL's box recompute, and CHANGE_BLOCK LID's reverse
// angle convention.
func Transform(cmd *Command, s geom.Symmetry) error {
	if cmd.Schema == nil {
		return nil // pass-through; nothing to transform
	}

	if s == geom.FlipXY {
		return fmt.Errorf("script: %s: %w", cmd.Schema.Keyword, ErrUnsupportedSymmetry)
	}

	switch {
	case cmd.Schema.Keyword == "LOWER_LEVEL":
		return transformLowerLevel(cmd, s)
	case strings.HasPrefix(cmd.Schema.Keyword, "CHANGE_BLOCK"):
		return transformChangeBlock(cmd, s)
	case cmd.Schema.Keyword == "DOOR_DATA":
		return transformDoorData(cmd, s)
	case cmd.Schema.Keyword == "CONVEYOR":
		return transformConveyor(cmd, s)
	}

	phone := isPhoneCommand(cmd)
	for i := range cmd.Fields {
		transformGenericField(&cmd.Fields[i], s, phone)
	}
	return nil
}

func isPhoneCommand(cmd *Command) bool {
	for _, f := range cmd.Fields {
		if (f.Kind == KindEnum || f.Kind == KindOptionalEnum) && strings.EqualFold(f.Str, "PHONE") {
			return true
		}
	}
	return false
}

// rotationSymmetryFor returns the symmetry to use for a rotation field,
// swapping flipX/flipY for PHONE-kind objects (spec.md §4.G: "these
// objects use a different reference direction").
func rotationSymmetryFor(s geom.Symmetry, phone bool) geom.Symmetry {
	if !phone {
		return s
	}
	switch s {
	case geom.FlipX:
		return geom.FlipY
	case geom.FlipY:
		return geom.FlipX
	default:
		return s
	}
}

func transformGenericField(f *Field, s geom.Symmetry, phone bool) {
	switch f.Kind {
	case KindCoordXY:
		x, y := geom.TransformCoordFloat(f.Floats[0], f.Floats[1], s)
		f.Floats[0], f.Floats[1] = x, y
	case KindCoordXYByte:
		x, y := geom.TransformCoordInt(int(f.Floats[0]), int(f.Floats[1]), s)
		f.Floats[0], f.Floats[1] = float64(x), float64(y)
	case KindCoordXYZ:
		x, y := geom.TransformCoordFloat(f.Floats[0], f.Floats[1], s)
		f.Floats[0], f.Floats[1] = x, y
	case KindCoordXYZByte:
		x, y := geom.TransformCoordInt(int(f.Floats[0]), int(f.Floats[1]), s)
		f.Floats[0], f.Floats[1] = float64(x), float64(y)
	case KindWidthHeight:
		w, h := geom.TransformWidthHeight(float64(f.Ints[0]), float64(f.Ints[1]), s)
		f.Ints[0], f.Ints[1] = int(w), int(h)
	case KindRotation:
		f.Ints[0] = geom.TransformAngle(f.Ints[0], rotationSymmetryFor(s, phone))
	case KindEnum, KindOptionalEnum:
		if fc, ok := geom.ParseFace(strings.ToUpper(f.Str)); ok {
			f.Str = geom.TransformFace(fc, s).String()
		}
	case KindVariant:
		if len(f.Floats) >= 2 {
			x, y := geom.TransformCoordFloat(f.Floats[0], f.Floats[1], s)
			f.Floats[0], f.Floats[1] = x, y
		}
	case KindComposite:
		if len(f.Floats) >= 2 {
			x, y := geom.TransformCoordFloat(f.Floats[0], f.Floats[1], s)
			f.Floats[0], f.Floats[1] = x, y
		}
	}
}

// transformLowerLevel recomputes the (min, max) corner pair as a box: the
// width and height are held fixed, and only minX/minY are shifted per the
// flip axis, exactly as the reference implementation does it — not by
// transforming each corner independently, which would also flip which
// corner is "min" under a reflection (spec.md §4.G). Rotation isn't in the
// reference implementation's repertoire for this opcode; under a rotation
// both corners are transformed independently with geom.TransformCoordInt
// and re-sorted into min/max.
func transformLowerLevel(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 3 {
		return ErrSchemaParseFailure
	}
	min, max := &cmd.Fields[1], &cmd.Fields[2]
	if len(min.Floats) < 2 || len(max.Floats) < 2 {
		return ErrSchemaParseFailure
	}

	minX, minY := int(min.Floats[0]), int(min.Floats[1])
	maxX, maxY := int(max.Floats[0]), int(max.Floats[1])
	width := maxX - minX
	height := maxY - minY

	switch s {
	case geom.FlipX:
		minX = geom.MapMax - minX - width - 1
	case geom.FlipY:
		minY = geom.MapMax - minY - height - 1
	case geom.Rot90, geom.Rot180, geom.Rot270:
		// No reference behavior exists for rotating this opcode; transform
		// both corners independently and re-derive min/max, the same
		// approach the rest of this package uses for unsupported-by-source
		// rotation cases.
		tx, ty := geom.TransformCoordInt(minX, minY, s)
		bx, by := geom.TransformCoordInt(maxX, maxY, s)
		if tx > bx {
			tx, bx = bx, tx
		}
		if ty > by {
			ty, by = by, ty
		}
		min.Floats = []float64{float64(tx), float64(ty)}
		max.Floats = []float64{float64(bx), float64(by)}
		return nil
	}

	maxX = minX + width
	maxY = minY + height

	min.Floats = []float64{float64(minX), float64(minY)}
	max.Floats = []float64{float64(maxX), float64(maxY)}
	return nil
}

// transformChangeBlockSide transforms the SIDE sub-form: the coordinate,
// the face (which reference tile side the change applies to), and the
// FLIP/NOT_FLIP toggle under any flip. The WALL/BULLET/FLAT enums, the
// untouched rotation field, and the trailing tile number are not part of
// the reference transform and pass through unchanged.
func transformChangeBlockSide(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 10 {
		return ErrSchemaParseFailure
	}
	coord := &cmd.Fields[2]
	x, y := geom.TransformCoordInt(int(coord.Floats[0]), int(coord.Floats[1]), s)
	coord.Floats[0], coord.Floats[1] = float64(x), float64(y)

	faceField := &cmd.Fields[3]
	if oldFace, ok := geom.ParseFace(strings.ToUpper(faceField.Str)); ok {
		faceField.Str = geom.TransformFace(oldFace, s).String()
	}

	flipField := &cmd.Fields[7]
	if s.IsFlip() {
		flipField.Str = toggleFlipToken(flipField.Str)
	}
	return nil
}

// transformChangeBlockLid transforms the LID sub-form: the coordinate,
// the FLIP/NOT_FLIP toggle, and the rotation field under the reverse-angle
// convention (DESIGN.md Open Question #2) — the reference source negates
// the parameter before applying the usual flip formula, which cancels out
// entirely under flipX and becomes a -180 shift under flipY.
func transformChangeBlockLid(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 8 {
		return ErrSchemaParseFailure
	}
	coord := &cmd.Fields[2]
	x, y := geom.TransformCoordInt(int(coord.Floats[0]), int(coord.Floats[1]), s)
	coord.Floats[0], coord.Floats[1] = float64(x), float64(y)

	flipField := &cmd.Fields[4]
	if s.IsFlip() {
		flipField.Str = toggleFlipToken(flipField.Str)
	}

	rotation := &cmd.Fields[6]
	rotation.Ints[0] = reverseAngle(rotation.Ints[0], s)
	return nil
}

// reverseAngle applies flip_params' reverse_rot_param convention: the
// parameter is negated before the ordinary flipX/flipY formula is applied.
// Under flipX this cancels algebraically (the angle is unchanged); under
// flipY it reduces to a flat -180 shift. Rotations have no reference
// behavior for this field, so they fall back to the ordinary formula.
func reverseAngle(theta int, s geom.Symmetry) int {
	switch s {
	case geom.FlipX:
		return geom.AngleFlipX(-theta)
	case geom.FlipY:
		return geom.AngleFlipY(-theta)
	default:
		return geom.TransformAngle(theta, s)
	}
}

// transformChangeBlockType transforms the TYPE sub-form: just the
// coordinate. The material-type enum and trailing number carry no
// geometric meaning.
func transformChangeBlockType(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 5 {
		return ErrSchemaParseFailure
	}
	coord := &cmd.Fields[2]
	x, y := geom.TransformCoordInt(int(coord.Floats[0]), int(coord.Floats[1]), s)
	coord.Floats[0], coord.Floats[1] = float64(x), float64(y)
	return nil
}

func transformChangeBlock(cmd *Command, s geom.Symmetry) error {
	switch cmd.Schema.Keyword {
	case "CHANGE_BLOCK SIDE":
		return transformChangeBlockSide(cmd, s)
	case "CHANGE_BLOCK LID":
		return transformChangeBlockLid(cmd, s)
	case "CHANGE_BLOCK TYPE":
		return transformChangeBlockType(cmd, s)
	default:
		return fmt.Errorf("script: unrecognized CHANGE_BLOCK sub-form %q", cmd.Schema.Keyword)
	}
}

func toggleFlipToken(tok string) string {
	switch strings.ToUpper(tok) {
	case "FLIP":
		return "NOT_FLIP"
	case "NOT_FLIP":
		return "FLIP"
	default:
		return tok
	}
}

// doubleDoorOffset maps a door's new face direction to the (dx, dy)
// origin shift applied when its kind is DOUBLE (spec.md §4.G: "right:
// y-1, left: y+1, top: x-1, bottom: x+1").
var doubleDoorOffset = map[geom.Face][2]float64{
	geom.Right:  {0, -1},
	geom.Left:   {0, 1},
	geom.Top:    {-1, 0},
	geom.Bottom: {1, 0},
}

// transformDoorData transforms the door's origin (byte-grid), its frame
// box (float, width/height swapped only under a rotation), and its face
// direction, then — for a DOUBLE-kind door — shifts the origin by one
// cell off the new face. That shift is applied unconditionally, keyed
// purely by the new face, whether or not the flip actually changed which
// face the door opens onto (DESIGN.md Open Question #3): the reference
// implementation has no "only if it changed" guard.
func transformDoorData(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 7 {
		return ErrSchemaParseFailure
	}
	kindField := &cmd.Fields[3]
	coord := &cmd.Fields[4]
	frame := &cmd.Fields[5]
	faceField := &cmd.Fields[6]

	x, y := geom.TransformCoordInt(int(coord.Floats[0]), int(coord.Floats[1]), s)
	coord.Floats[0], coord.Floats[1] = float64(x), float64(y)

	fx, fy := geom.TransformCoordFloat(frame.Floats[0], frame.Floats[1], s)
	frame.Floats[0], frame.Floats[1] = fx, fy
	frame.Floats[3], frame.Floats[4] = geom.TransformWidthHeight(frame.Floats[3], frame.Floats[4], s)

	oldFace, ok := geom.ParseFace(strings.ToUpper(faceField.Str))
	if !ok {
		return nil
	}
	newFace := geom.TransformFace(oldFace, s)
	faceField.Str = newFace.String()

	if strings.EqualFold(kindField.Str, "DOUBLE") {
		off := doubleDoorOffset[newFace]
		coord.Floats[0] += off[0]
		coord.Floats[1] += off[1]
	}
	return nil
}

// transformConveyor negates/rotates the (vx, vy) speed pair: flipX negates
// vx only, flipY negates vy only, rot180 negates both — all matching the
// reference flip_cmd.py. rot90 and rot270 have no reference behavior in
// either source (opcodes.py's rotation path for this opcode is the only
// one of the reference's rotation handlers that's actually implemented,
// and it treats the two 90° directions asymmetrically): rot90 maps
// (vx, vy) to (-vy, vx), rot270 maps it to (vy, -vx), each result the
// negation of the other (spec.md §4.G).
func transformConveyor(cmd *Command, s geom.Symmetry) error {
	if len(cmd.Fields) < 5 {
		return ErrSchemaParseFailure
	}
	coord := &cmd.Fields[1]
	wh := &cmd.Fields[2]
	vx := &cmd.Fields[3]
	vy := &cmd.Fields[4]

	x, y := geom.TransformCoordFloat(coord.Floats[0], coord.Floats[1], s)
	coord.Floats[0], coord.Floats[1] = x, y
	w, h := geom.TransformWidthHeight(float64(wh.Ints[0]), float64(wh.Ints[1]), s)
	wh.Ints[0], wh.Ints[1] = int(w), int(h)

	switch s {
	case geom.FlipX:
		vx.Ints[0] = -vx.Ints[0]
	case geom.FlipY:
		vy.Ints[0] = -vy.Ints[0]
	case geom.Rot180:
		vx.Ints[0], vy.Ints[0] = -vx.Ints[0], -vy.Ints[0]
	case geom.Rot90:
		vx.Ints[0], vy.Ints[0] = -vy.Ints[0], vx.Ints[0]
	case geom.Rot270:
		vx.Ints[0], vy.Ints[0] = vy.Ints[0], -vx.Ints[0]
	}
	return nil
}
