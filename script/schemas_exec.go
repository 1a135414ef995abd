package script

// Execution schemas (spec.md §4.F).
func init() {
	register(&Schema{
		Keyword:  "POINT_ARROW_AT",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "SET_CHAR_OBJECTIVE",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindEnum, KindVariant, KindEnd},
	})
	// CHANGE_BLOCK has three distinct sub-forms, disambiguated by the
	// token immediately following the opcode; each is registered under
	// its own compound keyword since their field shapes don't agree.
	//
	// CHANGE_BLOCK SIDE (16, 31, 3) BOTTOM WALL BULLET NOT_FLAT NOT_FLIP 0 142
	register(&Schema{
		Keyword:  "CHANGE_BLOCK SIDE",
		Category: Execution,
		Fields: []FieldKind{
			KindOpcode, KindEnum, KindCoordXYZByte, KindEnum,
			KindEnum, KindEnum, KindEnum, KindEnum, KindRotation, KindNumber,
		},
	})
	// CHANGE_BLOCK LID (176, 228, 1) NOT_FLAT NOT_FLIP 0 0 978
	// LID's rotation field uses the reverse-angle convention (DESIGN.md
	// Open Question #2): it cancels out under flipX and shifts by -180
	// under flipY, unlike every other rotation field in this package.
	register(&Schema{
		Keyword:  "CHANGE_BLOCK LID",
		Category: Execution,
		Fields: []FieldKind{
			KindOpcode, KindEnum, KindCoordXYZByte, KindEnum,
			KindEnum, KindNumber, KindRotation, KindNumber,
		},
	})
	// CHANGE_BLOCK TYPE (177, 229, 1) FIELD 0
	register(&Schema{
		Keyword:  "CHANGE_BLOCK TYPE",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindEnum, KindCoordXYZByte, KindEnum, KindNumber},
	})
	register(&Schema{
		Keyword:  "REMOVE_BLOCK",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "ADD_PATROL_POINT",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "EXPLODE",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	// [EXPANSION] EXPLODE_NO_RING/LARGE/SMALL named individually
	// (original_source/opcodes.py's EXEC_OPCODES_LIST; spec.md collapses
	// them under EXPLODE_*), sharing EXPLODE's coordinate-triple schema.
	register(&Schema{
		Keyword:  "EXPLODE_NO_RING",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "EXPLODE_LARGE",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "EXPLODE_SMALL",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "EXPLODE_WALL",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "ADD_NEW_BLOCK",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "WARP_FROM_CAR_TO_POINT",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindCoordXYZ, KindEnd},
	})
	// LOWER_LEVEL (177, 229) (180, 233)
	// Both corners are byte, xy-only (no z); the box is recomputed in
	// transform.go by adjusting (minX, minY) per the flip and re-deriving
	// (maxX, maxY) from the preserved width/height, not by transforming
	// each corner independently (spec.md §4.G).
	register(&Schema{
		Keyword:  "LOWER_LEVEL",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYByte, KindCoordXYByte},
	})
	register(&Schema{
		Keyword:  "SET_DIR_OF_TV_VANS",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindRotation, KindEnd},
	})
	register(&Schema{
		Keyword:  "PERFORM_SAVE_GAME",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindEnd},
	})
	register(&Schema{
		Keyword:  "SWITCH_ROAD",
		Category: Execution,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnum, KindEnd},
	})
}
