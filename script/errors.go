package script

import "errors"

// ErrSchemaParseFailure is returned when a recognized opcode's operands
// don't match its schema's field sequence (spec.md §7).
var ErrSchemaParseFailure = errors.New("script: operands don't match opcode schema")

// ErrUnsupportedSymmetry is returned by the script frontend when asked
// to apply flipXY, which it refuses in favor of the equivalent rot180
// (spec.md §7).
var ErrUnsupportedSymmetry = errors.New("script: flipXY is unsupported; use rot180")
