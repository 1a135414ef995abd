package script

import "testing"

func TestParsePassThrough(t *testing.T) {
	cmd, recognized, err := Parse("    ; just a comment-only line")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recognized {
		t.Fatal("expected no schema to match")
	}
	if cmd.Raw != "    ; just a comment-only line" {
		t.Fatalf("Raw mismatch: %q", cmd.Raw)
	}
}

func TestParseObjData(t *testing.T) {
	line := "VAR1 = OBJ_DATA (1.00, 2.00, 3.00) 90 FORD END"
	cmd, recognized, err := Parse(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recognized {
		t.Fatal("expected OBJ_DATA to be recognized")
	}
	if cmd.Schema.Keyword != "OBJ_DATA" {
		t.Fatalf("got schema %s", cmd.Schema.Keyword)
	}
	if len(cmd.Fields) != 7 {
		t.Fatalf("expected 7 fields, got %d: %+v", len(cmd.Fields), cmd.Fields)
	}
	if cmd.Fields[0].Str != "VAR1" {
		t.Fatalf("ident field: %+v", cmd.Fields[0])
	}
	coord := cmd.Fields[3]
	if coord.Floats[0] != 1 || coord.Floats[1] != 2 || coord.Floats[2] != 3 {
		t.Fatalf("coord field: %+v", coord)
	}
	if cmd.Fields[4].Ints[0] != 90 {
		t.Fatalf("rotation field: %+v", cmd.Fields[4])
	}
	if cmd.Fields[5].Str != "FORD" {
		t.Fatalf("enum field: %+v", cmd.Fields[5])
	}
	if !cmd.Fields[6].Has {
		t.Fatal("expected END to be present")
	}
}

func TestParseTrailingComment(t *testing.T) {
	line := "REMOVE_BLOCK (1.00, 2.00, 3.00) END // drop the bridge"
	cmd, recognized, err := Parse(line)
	if err != nil || !recognized {
		t.Fatalf("recognized=%v err=%v", recognized, err)
	}
	if !cmd.HasComment || cmd.Comment != "drop the bridge" {
		t.Fatalf("comment not captured: %+v", cmd)
	}
}

func TestParseLeadingWhitespacePreserved(t *testing.T) {
	line := "\t\tREMOVE_BLOCK (1.00, 2.00, 3.00) END"
	cmd, recognized, err := Parse(line)
	if err != nil || !recognized {
		t.Fatalf("recognized=%v err=%v", recognized, err)
	}
	if cmd.LeadingWS != "\t\t" {
		t.Fatalf("leading ws: %q", cmd.LeadingWS)
	}
}

func TestParseOptionalFieldAbsent(t *testing.T) {
	line := "GENERATOR (0.00, 0.00, 0.00) FIRE END"
	cmd, recognized, err := Parse(line)
	if err != nil || !recognized {
		t.Fatalf("recognized=%v err=%v", recognized, err)
	}
	// Fields: Opcode, CoordXYZ, Enum, OptionalNumber, End
	if cmd.Fields[3].Has {
		t.Fatalf("expected optional number absent, got %+v", cmd.Fields[3])
	}
}
