package script

import "testing"

func TestNextIdentifier(t *testing.T) {
	tok := NewTokenizer("  VAR1 = OBJ_DATA")
	id, pos := tok.NextIdentifier()
	if id != "VAR1" || pos < 0 {
		t.Fatalf("got %q, %d", id, pos)
	}
	id, _ = tok.NextIdentifier()
	if id != "OBJ_DATA" {
		t.Fatalf("expected to skip '=' and land on OBJ_DATA, got %q", id)
	}
}

func TestNextIdentifierEndOfLine(t *testing.T) {
	tok := NewTokenizer("   ")
	if _, pos := tok.NextIdentifier(); pos != -1 {
		t.Fatalf("expected -1 at end of line, got %d", pos)
	}
}

func TestNextInteger(t *testing.T) {
	tok := NewTokenizer(" -12 34")
	v, pos := tok.NextInteger()
	if v != -12 || pos < 0 {
		t.Fatalf("got %d, %d", v, pos)
	}
	v, pos = tok.NextInteger()
	if v != 34 || pos < 0 {
		t.Fatalf("got %d, %d", v, pos)
	}
}

func TestNextIntegerNoDigits(t *testing.T) {
	tok := NewTokenizer("END")
	if _, pos := tok.NextInteger(); pos != -2 {
		t.Fatalf("expected -2, got %d", pos)
	}
}

func TestNextFloat(t *testing.T) {
	tok := NewTokenizer("(12.50, -3.00)")
	parts, pos := tok.ParenTuple()
	if pos < 0 {
		t.Fatal("expected paren tuple")
	}
	if parts[0] != "12.50" || parts[1] != "-3.00" {
		t.Fatalf("got %v", parts)
	}

	ft := NewTokenizer(parts[0])
	v, p := ft.NextFloat()
	if p < 0 || v != 12.5 {
		t.Fatalf("got %v, %d", v, p)
	}
}

func TestParenTupleNotFound(t *testing.T) {
	tok := NewTokenizer("no parens here")
	if _, pos := tok.ParenTuple(); pos != -1 {
		t.Fatalf("expected -1, got %d", pos)
	}
}

func TestPeekIsNumber(t *testing.T) {
	if !NewTokenizer(" 42").PeekIsNumber() {
		t.Fatal("expected true")
	}
	if NewTokenizer(" ABC").PeekIsNumber() {
		t.Fatal("expected false")
	}
}

func TestRest(t *testing.T) {
	tok := NewTokenizer("ABC = 1")
	tok.NextIdentifier()
	if tok.Rest() != " = 1" {
		t.Fatalf("got %q", tok.Rest())
	}
}
