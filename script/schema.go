package script

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// Category classifies which of the three opcode families a schema
// belongs to (spec.md §4.F).
type Category int

const (
	Declaration Category = iota
	Execution
	Boolean
)

// Schema is an ordered field-kind sequence paired with the opcode
// keyword that selects it.
type Schema struct {
	Keyword  string
	Category Category
	Fields   []FieldKind

	// PhoneLike objects use the opposite flip axis for their rotation
	// field (spec.md §4.G).
	PhoneLike bool
}

var registry = map[string]*Schema{}

// register adds s to the schema registry, keyed by its keyword. Panics
// on a duplicate keyword — a programming error, not a runtime one.
func register(s *Schema) {
	if _, exists := registry[s.Keyword]; exists {
		panic("script: duplicate schema keyword " + s.Keyword)
	}
	registry[s.Keyword] = s
}

// Lookup finds the schema matching line by keyword-presence priority
// (spec.md §4.F): the longest matching keyword among those present wins,
// so a more specific keyword (e.g. PARKED_CAR_DATA) is chosen over a
// shorter keyword it contains (e.g. CAR_DATA).
func Lookup(line string) (*Schema, bool) {
	var best *Schema
	for kw, s := range registry {
		if !containsToken(line, kw) {
			continue
		}
		if best == nil || len(kw) > len(best.Keyword) {
			best = s
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// containsToken reports whether kw appears in line as a whole identifier
// token, not as a substring of a longer identifier.
func containsToken(line, kw string) bool {
	idx := strings.Index(line, kw)
	for idx >= 0 {
		before := idx == 0 || !isIdentByte(line[idx-1])
		afterPos := idx + len(kw)
		after := afterPos >= len(line) || !isIdentByte(line[afterPos])
		if before && after {
			return true
		}
		next := strings.Index(line[idx+1:], kw)
		if next < 0 {
			return false
		}
		idx = idx + 1 + next
	}
	return false
}

// Keywords returns every registered opcode keyword, sorted, for the
// -list-opcodes CLI diagnostic.
func Keywords() []string {
	kws := maps.Keys(registry)
	sort.Strings(kws)
	return kws
}

// Get returns the schema registered for keyword, if any.
func Get(keyword string) (*Schema, bool) {
	s, ok := registry[keyword]
	return s, ok
}
