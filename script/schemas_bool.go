package script

// Boolean predicate schemas (spec.md §4.F). These are never top-level
// lines; they appear embedded inside IF/WHILE_EXEC/NOT/AND/OR
// expressions and are located by boolsplit.go.
func init() {
	register(&Schema{
		Keyword:  "IS_CAR_IN_BLOCK",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_CHARACTER_ANY_MEANS",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_CHARACTER_BY_CAR",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_CHARACTER_ON_FOOT",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_STOPPED_CHARACTER_ANY_MEANS",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_STOPPED_CHARACTER_ON_FOOT",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "LOCATE_STOPPED_CHARACTER_BY_CAR",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "CHECK_CAR_WRECKED_IN_AREA",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindWidthHeight, KindEnd},
	})
	register(&Schema{
		Keyword:  "IS_CHAR_FIRING_IN_AREA",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindWidthHeight, KindEnd},
	})
	register(&Schema{
		Keyword:  "IS_POINT_ONSCREEN",
		Category: Boolean,
		Fields:   []FieldKind{KindOpcode, KindCoordXY, KindEnd},
	})
}
