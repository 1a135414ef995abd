package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Format re-emits cmd with the canonical formatting of spec.md §4.G:
// floats as "%.2f", integers unformatted, tuples parenthesized with
// ", " separators, a trailing END preserved when present, and the
// original comment reattached as " // comment".
func Format(cmd *Command) string {
	if cmd.Schema == nil {
		return cmd.Raw
	}

	var parts []string
	for _, f := range cmd.Fields {
		if s, ok := formatField(f); ok {
			parts = append(parts, s)
		}
	}

	body := strings.Join(parts, " ")
	line := cmd.LeadingWS + body
	if cmd.HasComment {
		line += " // " + cmd.Comment
	}
	return line
}

func formatField(f Field) (string, bool) {
	switch f.Kind {
	case KindOpcode, KindIdent, KindEquals, KindEnum:
		return f.Str, true

	case KindOptionalEnum:
		if !f.Has {
			return "", false
		}
		return f.Str, true

	case KindCoordXY:
		return fmt.Sprintf("(%s, %s)", formatFloat(f.Floats[0]), formatFloat(f.Floats[1])), true

	case KindCoordXYByte:
		return fmt.Sprintf("(%d, %d)", int(f.Floats[0]), int(f.Floats[1])), true

	case KindCoordXYZ:
		return fmt.Sprintf("(%s, %s, %s)", formatFloat(f.Floats[0]), formatFloat(f.Floats[1]), formatFloat(f.Floats[2])), true

	case KindCoordXYZByte:
		return fmt.Sprintf("(%d, %d, %d)", int(f.Floats[0]), int(f.Floats[1]), int(f.Floats[2])), true

	case KindCoordXYZWH:
		return fmt.Sprintf("(%s, %s, %s, %s, %s)", formatFloat(f.Floats[0]), formatFloat(f.Floats[1]), formatFloat(f.Floats[2]), formatFloat(f.Floats[3]), formatFloat(f.Floats[4])), true

	case KindWidthHeight:
		return fmt.Sprintf("%d %d", f.Ints[0], f.Ints[1]), true

	case KindRotation, KindNumber:
		return strconv.Itoa(f.Ints[0]), true

	case KindOptionalNumber:
		if !f.Has {
			return "", false
		}
		return strconv.Itoa(f.Ints[0]), true

	case KindRGB:
		return fmt.Sprintf("%d %d %d", f.Ints[0], f.Ints[1], f.Ints[2]), true

	case KindFloat:
		return formatFloat(f.Floats[0]), true

	case KindVariant:
		if len(f.Floats) > 0 {
			vals := make([]string, len(f.Floats))
			for i, v := range f.Floats {
				vals[i] = formatFloat(v)
			}
			return "(" + strings.Join(vals, ", ") + ")", true
		}
		return f.Str, true

	case KindGangInfo:
		vals := make([]string, len(f.Ints))
		for i, v := range f.Ints {
			vals[i] = strconv.Itoa(v)
		}
		return "(" + strings.Join(vals, ", ") + ")", true

	case KindThreadArea, KindThreadBlock:
		vals := make([]string, len(f.Ints))
		for i, v := range f.Ints {
			vals[i] = strconv.Itoa(v)
		}
		if f.Str != "" {
			vals = append(vals, f.Str)
		}
		return "(" + strings.Join(vals, ", ") + ")", true

	case KindComposite:
		vals := make([]string, len(f.Floats))
		for i, v := range f.Floats {
			vals[i] = formatFloat(v)
		}
		return fmt.Sprintf("%s(%s)", f.Str, strings.Join(vals, ", ")), true

	case KindEnd:
		if !f.Has {
			return "", false
		}
		return "END", true

	default:
		return "", false
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
