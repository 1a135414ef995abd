package script

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gmprotate/gmprotate/geom"
)

// ReadLines reads a .mis script file as UTF-8/ASCII plain text (spec.md
// §6), stripping a UTF-8 byte-order mark, and returns it split into lines
// with line endings removed. Invalid UTF-8 bytes are not rejected: the
// decoder replaces them with U+FFFD.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: opening %q: %w", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	r := transform.NewReader(f, decoder)

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("script: reading %q: %w", path, err)
	}
	return lines, nil
}

// TransformLine applies the Command Transformer to one line: classify
// it, apply the geometric transform via its schema, re-emit in the
// canonical format. Lines with no recognized opcode are returned
// unchanged (the pass-through case). Lines with embedded boolean
// opcodes are routed through the Boolean-Line Splitter instead of the
// top-level schema lookup.
func TransformLine(line string, s geom.Symmetry) (string, error) {
	if containsBooleanOpcode(line) {
		return SplitAndTransformBooleans(line, s)
	}

	cmd, recognized, err := Parse(line)
	if err != nil {
		// spec.md §7: a recognized opcode with unexpected operands logs
		// and falls back to pass-through for that line.
		log.Printf("script: passing line through unchanged: %v: %q", err, line)
		return line, nil
	}
	if !recognized {
		return line, nil
	}

	if err := Transform(cmd, s); err != nil {
		return "", err
	}
	return Format(cmd), nil
}

func containsBooleanOpcode(line string) bool {
	for kw, schema := range registry {
		if schema.Category == Boolean && containsToken(line, kw) {
			return true
		}
	}
	return false
}

// WriteLines writes lines to w, one per line terminated by "\n" (spec.md
// §6: "line endings preserved by emitting \n").
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l); err != nil {
			return err
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TransformFile reads the .mis file at path, transforms every line
// under symmetry s, and returns the rewritten lines. flipXY is refused
// before any line is read (spec.md §7: "refused before the transform
// begins").
func TransformFile(path string, s geom.Symmetry) ([]string, error) {
	if s == geom.FlipXY {
		return nil, fmt.Errorf("script: %w", ErrUnsupportedSymmetry)
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		tl, err := TransformLine(l, s)
		if err != nil {
			return nil, fmt.Errorf("script: %s:%d: %w", path, i+1, err)
		}
		out[i] = tl
	}
	return out, nil
}
