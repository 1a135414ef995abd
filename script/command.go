package script

import "strings"

// Command is one parsed script line: its schema-driven field vector,
// plus the surrounding text a pass-through or re-emission needs to
// reproduce (spec.md §4.G).
type Command struct {
	LeadingWS  string
	Schema     *Schema
	Fields     []Field
	Comment    string
	HasComment bool
	Raw        string // the full original line, used for pass-through
}

// splitComment separates a trailing "// comment" from line, returning
// the code portion and the comment text (without "//"), if any.
func splitComment(line string) (string, string, bool) {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+2:]), true
	}
	return line, "", false
}

// leadingWhitespace returns the run of spaces/tabs at the start of line.
func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// Parse splits line into its leading whitespace, code body and trailing
// comment, looks up a schema by keyword-presence priority, and parses
// the code body into a typed field vector. When no registered opcode
// keyword appears in the line, Parse returns a Command carrying only the
// raw line, its leading whitespace and comment, with recognized false and
// a nil error — the pass-through case, not an error.
func Parse(line string) (*Command, bool, error) {
	code, comment, hasComment := splitComment(line)
	ws := leadingWhitespace(code)
	body := strings.TrimSpace(code)

	schema, ok := Lookup(body)
	if !ok {
		return &Command{LeadingWS: ws, Comment: comment, HasComment: hasComment, Raw: line}, false, nil
	}

	fields, err := parseFields(body, schema)
	if err != nil {
		return nil, true, err
	}

	return &Command{
		LeadingWS:  ws,
		Schema:     schema,
		Fields:     fields,
		Comment:    comment,
		HasComment: hasComment,
		Raw:        line,
	}, true, nil
}

func parseFields(body string, schema *Schema) ([]Field, error) {
	t := NewTokenizer(body)
	fields := make([]Field, 0, len(schema.Fields))

	for _, k := range schema.Fields {
		f, err := parseOneField(t, k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseOneField(t *Tokenizer, k FieldKind) (Field, error) {
	switch k {
	case KindOpcode:
		id, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Str: id}, nil

	case KindIdent:
		id, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Str: id}, nil

	case KindEquals:
		if idx := strings.IndexByte(t.Rest(), '='); idx < 0 {
			return Field{}, ErrSchemaParseFailure
		} else {
			t.pos += idx + 1
		}
		return Field{Kind: k, Str: "="}, nil

	case KindCoordXY, KindCoordXYByte:
		parts, pos := t.ParenTuple()
		if pos < 0 || len(parts) < 2 {
			return Field{}, ErrSchemaParseFailure
		}
		fs := make([]float64, 2)
		for i := 0; i < 2; i++ {
			fs[i], _ = parseTupleNumber(parts[i])
		}
		return Field{Kind: k, Floats: fs}, nil

	case KindCoordXYZ, KindCoordXYZByte:
		parts, pos := t.ParenTuple()
		if pos < 0 || len(parts) < 3 {
			return Field{}, ErrSchemaParseFailure
		}
		fs := make([]float64, 3)
		for i := 0; i < 3; i++ {
			fs[i], _ = parseTupleNumber(parts[i])
		}
		return Field{Kind: k, Floats: fs}, nil

	case KindCoordXYZWH:
		parts, pos := t.ParenTuple()
		if pos < 0 || len(parts) < 5 {
			return Field{}, ErrSchemaParseFailure
		}
		fs := make([]float64, 5)
		for i := 0; i < 5; i++ {
			fs[i], _ = parseTupleNumber(parts[i])
		}
		return Field{Kind: k, Floats: fs}, nil

	case KindWidthHeight:
		w, pw := t.NextInteger()
		h, ph := t.NextInteger()
		if pw < 0 || ph < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Ints: []int{w, h}}, nil

	case KindRotation:
		v, pos := t.NextInteger()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Ints: []int{v}}, nil

	case KindRGB:
		r, pr := t.NextInteger()
		g, pg := t.NextInteger()
		b, pb := t.NextInteger()
		if pr < 0 || pg < 0 || pb < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Ints: []int{r, g, b}}, nil

	case KindNumber:
		v, pos := t.NextInteger()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Ints: []int{v}}, nil

	case KindOptionalNumber:
		v, pos := t.NextInteger()
		if pos == -2 {
			return Field{Kind: k, Has: false}, nil
		}
		return Field{Kind: k, Ints: []int{v}, Has: true}, nil

	case KindEnum:
		id, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Str: id}, nil

	case KindOptionalEnum:
		if t.AtEnd() {
			return Field{Kind: k, Has: false}, nil
		}
		id, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{Kind: k, Has: false}, nil
		}
		return Field{Kind: k, Str: id, Has: true}, nil

	case KindFloat:
		v, pos := t.NextFloat()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Floats: []float64{v}}, nil

	case KindVariant:
		if t.PeekIsNumber() || strings.Contains(t.Rest(), "(") {
			parts, pos := t.ParenTuple()
			if pos >= 0 {
				fs := make([]float64, len(parts))
				for i, p := range parts {
					fs[i], _ = parseTupleNumber(p)
				}
				return Field{Kind: k, Floats: fs}, nil
			}
		}
		id, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		return Field{Kind: k, Str: id}, nil

	case KindGangInfo:
		parts, pos := t.ParenTuple()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		ints := make([]int, len(parts))
		for i, p := range parts {
			ints[i] = atoiSafe(p)
		}
		return Field{Kind: k, Ints: ints}, nil

	case KindThreadArea:
		return parseThreadBlock(t, k, 6)

	case KindThreadBlock:
		return parseThreadBlock(t, k, 4)

	case KindComposite:
		name, pos := t.NextIdentifier()
		if pos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		parts, ppos := t.ParenTuple()
		if ppos < 0 {
			return Field{}, ErrSchemaParseFailure
		}
		fs := make([]float64, len(parts))
		for i, p := range parts {
			fs[i], _ = parseTupleNumber(p)
		}
		return Field{Kind: k, Str: name, Floats: fs}, nil

	case KindEnd:
		id, _ := t.NextIdentifier()
		return Field{Kind: k, Str: id, Has: id == "END"}, nil

	default:
		return Field{}, ErrSchemaParseFailure
	}
}

// parseThreadBlock parses a (p, x, y, z[, w, h], label) block: numCoords
// is 4 for a thread-block (p, x, y, z, label) or 6 for a thread-area
// (p, x, y, z, w, h, label).
func parseThreadBlock(t *Tokenizer, k FieldKind, numCoords int) (Field, error) {
	parts, pos := t.ParenTuple()
	if pos < 0 || len(parts) < numCoords {
		return Field{}, ErrSchemaParseFailure
	}
	ints := make([]int, numCoords)
	for i := 0; i < numCoords; i++ {
		ints[i] = atoiSafe(parts[i])
	}
	label := ""
	if len(parts) > numCoords {
		label = parts[numCoords]
	}
	return Field{Kind: k, Ints: ints, Str: label}, nil
}

func parseTupleNumber(s string) (float64, bool) {
	t := NewTokenizer(s)
	v, pos := t.NextFloat()
	return v, pos >= 0
}

func atoiSafe(s string) int {
	t := NewTokenizer(s)
	v, pos := t.NextInteger()
	if pos < 0 {
		return 0
	}
	return v
}
