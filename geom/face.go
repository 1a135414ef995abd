package geom

// Face is one of the four cuboid side directions, in the canonical index
// order spec.md §4.A fixes: {TOP, BOTTOM, LEFT, RIGHT}.
type Face int

const (
	Top Face = iota
	Bottom
	Left
	Right
)

func (f Face) String() string {
	switch f {
	case Top:
		return "TOP"
	case Bottom:
		return "BOTTOM"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "?"
	}
}

// faceTable[s][f] gives the face that f transforms to under s. Table-driven
// per DESIGN NOTES ("treat {TOP, BOTTOM, LEFT, RIGHT} as a closed enum with
// a pure-function transform; do not re-parse the identifier string").
var faceTable = [...][4]Face{
	Identity: {Top, Bottom, Left, Right},
	FlipX:    {Top, Bottom, Right, Left},
	FlipY:    {Bottom, Top, Left, Right},
	FlipXY:   {Bottom, Top, Right, Left},
	Rot90:    {Right, Left, Top, Bottom},
	Rot180:   {Bottom, Top, Right, Left},
	Rot270:   {Left, Right, Bottom, Top},
}

// TransformFace returns the face that f maps onto under symmetry s.
func TransformFace(f Face, s Symmetry) Face {
	row, ok := faceIndexed(s)
	if !ok {
		return f
	}
	return row[f]
}

func faceIndexed(s Symmetry) ([4]Face, bool) {
	if int(s) < 0 || int(s) >= len(faceTable) {
		return [4]Face{}, false
	}
	return faceTable[s], true
}

// ParseFace recognizes one of the four face tokens as they appear in MIS
// scripts. The token table is parsed once at schema-match time, not inside
// TransformFace itself.
func ParseFace(token string) (Face, bool) {
	switch token {
	case "TOP":
		return Top, true
	case "BOTTOM":
		return Bottom, true
	case "LEFT":
		return Left, true
	case "RIGHT":
		return Right, true
	default:
		return 0, false
	}
}
