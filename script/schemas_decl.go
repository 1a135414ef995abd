package script

// Declaration schemas (spec.md §4.F). Shapes follow the general
// `VAR = OPCODE (coords) enum... END` form that dominates the
// declaration family; a handful (DOOR_DATA, SET_GANG_INFO, the
// THREAD_WAIT_FOR_CHAR_IN_* pair) use the distinct block forms spec.md
// §3 calls out by name.
func init() {
	register(&Schema{
		Keyword:  "PLAYER_PED",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnd},
	})
	register(&Schema{
		Keyword:  "OBJ_DATA",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CHAR_DATA",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CAR_DATA",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "PARKED_CAR_DATA",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnum, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CRANE_DATA",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_CAR",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_GANG_CAR",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_CHAR",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindEnum, KindEnd},
	})
	// [EXPANSION] same shape as CREATE_CHAR plus a trailing car variable
	// (original_source/opcodes.py's DEC_OPCODES_LIST, dropped by spec.md's
	// distillation).
	register(&Schema{
		Keyword:  "CREATE_CHAR_INSIDE_CAR",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindEnum, KindIdent, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_OBJ",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRotation, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_SOUND",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindEnum, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "SOUND",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnum, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "RADIO_STATION",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnum, KindEnd},
	})
	register(&Schema{
		Keyword:  "DECLARE_CRANE_POWERUP",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	// Conveyor velocity is a signed (vx, vy) pair, not a position tuple —
	// handled specially in transform.go ("negated per axis consistently
	// with the flip").
	register(&Schema{
		Keyword:  "CONVEYOR",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindWidthHeight, KindNumber, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "GENERATOR",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnum, KindOptionalNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "DESTRUCTOR",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindEnd},
	})
	register(&Schema{
		Keyword:  "LIGHT",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindRGB, KindNumber, KindEnd},
	})
	register(&Schema{
		Keyword:  "CREATE_LIGHT",
		Category: Declaration,
		Fields:   []FieldKind{KindIdent, KindEquals, KindOpcode, KindCoordXYZ, KindRGB, KindNumber, KindEnd},
	})
	// DOOR_DATA door2 = DOUBLE (179, 81, 2) (178.00, 82.50, 2.00, 3.00, 2.00)
	// BOTTOM 0 ANY_PLAYER_ONE_CAR CLOSE_WHEN_OPEN_RULE_FAILS 0 FLIP_RIGHT NOT_REVERSED
	// face direction selects a Face transform; the DOUBLE/SINGLE enum
	// drives the double-door offset in transform.go. The trailing six
	// enum/number fields after the face carry no coordinate or rotation
	// data and pass through untouched.
	register(&Schema{
		Keyword:  "DOOR_DATA",
		Category: Declaration,
		Fields: []FieldKind{
			KindIdent, KindEquals, KindOpcode, KindEnum,
			KindCoordXYZByte, KindCoordXYZWH, KindEnum, KindNumber,
			KindEnum, KindEnum, KindNumber, KindEnum, KindEnum, KindOptionalEnum,
		},
	})
	register(&Schema{
		Keyword:  "SET_GANG_INFO",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindIdent, KindGangInfo, KindEnd},
	})
	register(&Schema{
		Keyword:  "CRUSHER",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindCoordXYZ, KindRotation, KindEnd},
	})
	register(&Schema{
		Keyword:  "THREAD_WAIT_FOR_CHAR_IN_AREA",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindThreadArea, KindEnd},
	})
	register(&Schema{
		Keyword:  "THREAD_WAIT_FOR_CHAR_IN_AREA_ANY_MEANS",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindThreadArea, KindEnd},
	})
	register(&Schema{
		Keyword:  "THREAD_WAIT_FOR_CHAR_IN_BLOCK",
		Category: Declaration,
		Fields:   []FieldKind{KindOpcode, KindThreadBlock, KindEnd},
	})
}
