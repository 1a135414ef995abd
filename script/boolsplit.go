package script

import (
	"strings"

	"github.com/gmprotate/gmprotate/geom"
)

// SplitAndTransformBooleans locates every embedded boolean-opcode call
// in line and transforms each in place, preserving the enclosing
// operators and parenthesization byte-for-byte (spec.md §4.H).
func SplitAndTransformBooleans(line string, s geom.Symmetry) (string, error) {
	offset := 0
	for {
		start, kw, ok := nextBooleanOccurrence(line, offset)
		if !ok {
			break
		}

		closeIdx := strings.IndexByte(line[start:], ')')
		if closeIdx < 0 {
			break
		}
		closeIdx += start

		left := line[:start]
		call := line[start : closeIdx+1]
		right := line[closeIdx+1:]

		schema, ok := Get(kw)
		if !ok {
			offset = closeIdx + 1
			continue
		}

		fields, err := parseFields(call, schema)
		if err != nil {
			return "", err
		}
		cmd := &Command{Schema: schema, Fields: fields}
		if err := Transform(cmd, s); err != nil {
			return "", err
		}
		transformed := Format(cmd)

		line = left + transformed + right
		offset = len(left) + len(transformed)
	}
	return line, nil
}

// nextBooleanOccurrence finds the earliest registered boolean opcode
// keyword appearing at or after offset, preferring the longest keyword
// when more than one starts at the same position.
func nextBooleanOccurrence(line string, offset int) (int, string, bool) {
	bestPos := -1
	bestKw := ""
	for kw, schema := range registry {
		if schema.Category != Boolean {
			continue
		}
		idx := indexTokenFrom(line, kw, offset)
		if idx < 0 {
			continue
		}
		if bestPos == -1 || idx < bestPos || (idx == bestPos && len(kw) > len(bestKw)) {
			bestPos, bestKw = idx, kw
		}
	}
	if bestPos == -1 {
		return 0, "", false
	}
	return bestPos, bestKw, true
}

func indexTokenFrom(line, kw string, from int) int {
	pos := from
	for pos <= len(line)-len(kw) {
		idx := strings.Index(line[pos:], kw)
		if idx < 0 {
			return -1
		}
		idx += pos
		before := idx == 0 || !isIdentByte(line[idx-1])
		afterPos := idx + len(kw)
		after := afterPos >= len(line) || !isIdentByte(line[afterPos])
		if before && after {
			return idx
		}
		pos = idx + 1
	}
	return -1
}
