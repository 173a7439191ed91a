package gedcom

import (
	"errors"
	"testing"
)

func nextToken(t *testing.T, tok *Tokenizer) Token {
	t.Helper()
	if err := tok.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	return tok.Current
}

func TestTokenizer_RecordLine(t *testing.T) {
	tok := NewTokenizer("0 @PERSON1@ INDI\n1 NAME John /Doe/\n")

	got := nextToken(t, tok)
	if got.Kind != TokenLevel || got.Level != 0 {
		t.Fatalf("Expected Level(0), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenPointer || got.Text != "@PERSON1@" {
		t.Fatalf("Expected Pointer(@PERSON1@), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenTag || got.Text != "INDI" {
		t.Fatalf("Expected Tag(INDI), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenLevel || got.Level != 1 {
		t.Fatalf("Expected Level(1), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenTag || got.Text != "NAME" {
		t.Fatalf("Expected Tag(NAME), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenLineValue || got.Text != "John /Doe/" {
		t.Fatalf("Expected LineValue(John /Doe/), got %s", got)
	}
}

func TestTokenizer_CustomTag(t *testing.T) {
	tok := NewTokenizer("1 _MILT Army\n")

	nextToken(t, tok)
	got := nextToken(t, tok)
	if got.Kind != TokenCustomTag || got.Text != "_MILT" {
		t.Fatalf("Expected CustomTag(_MILT), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenLineValue || got.Text != "Army" {
		t.Fatalf("Expected LineValue(Army), got %s", got)
	}
}

func TestTokenizer_CRLF(t *testing.T) {
	tok := NewTokenizer("0 HEAD\r\n1 GEDC\r\n")

	nextToken(t, tok)
	got := nextToken(t, tok)
	if got.Kind != TokenTag || got.Text != "HEAD" {
		t.Fatalf("Expected Tag(HEAD), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenLevel || got.Level != 1 {
		t.Fatalf("Expected Level(1), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenTag || got.Text != "GEDC" {
		t.Fatalf("Expected Tag(GEDC), got %s", got)
	}
}

func TestTokenizer_ByteOrderMark(t *testing.T) {
	tok := NewTokenizer("\ufeff0 HEAD\n")

	got := nextToken(t, tok)
	if got.Kind != TokenLevel || got.Level != 0 {
		t.Fatalf("Expected Level(0) after BOM, got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenTag || got.Text != "HEAD" {
		t.Fatalf("Expected Tag(HEAD), got %s", got)
	}
}

func TestTokenizer_TrailingWhitespace(t *testing.T) {
	tok := NewTokenizer("0 HEAD \n1 GEDC\n")

	nextToken(t, tok)
	nextToken(t, tok)

	// the spaces after HEAD are not a value
	got := nextToken(t, tok)
	if got.Kind != TokenLevel || got.Level != 1 {
		t.Fatalf("Expected Level(1), got %s", got)
	}
}

func TestTokenizer_BadLevelDigits(t *testing.T) {
	tok := NewTokenizer("0 HEAD\n999 GEDC\n")

	nextToken(t, tok)
	nextToken(t, tok)

	err := tok.Next()
	if err == nil {
		t.Fatal("Expected an error for an out-of-range level")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if parseErr.Kind != ErrInvalidValueFormat {
		t.Errorf("Expected ErrInvalidValueFormat, got %v", parseErr.Kind)
	}
}

func TestTokenizer_NoTrailingNewline(t *testing.T) {
	tok := NewTokenizer("0 HEAD\n1 NOTE no newline at end")

	for i := 0; i < 4; i++ {
		nextToken(t, tok)
	}

	got := nextToken(t, tok)
	if got.Kind != TokenLineValue || got.Text != "no newline at end" {
		t.Fatalf("Expected LineValue(no newline at end), got %s", got)
	}

	got = nextToken(t, tok)
	if got.Kind != TokenEOF {
		t.Fatalf("Expected EOF, got %s", got)
	}
}

func TestTokenizer_EOFIsStable(t *testing.T) {
	tok := NewTokenizer("")

	for i := 0; i < 3; i++ {
		got := nextToken(t, tok)
		if got.Kind != TokenEOF {
			t.Fatalf("Expected EOF on call %d, got %s", i+1, got)
		}
	}
	if !tok.Done() {
		t.Error("Done() should report true at EOF")
	}
}
