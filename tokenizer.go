package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// TokenNone is the initial state before the first call to Next.
	TokenNone TokenKind = iota
	// TokenLevel is the numeric nesting depth that starts every line.
	TokenLevel
	// TokenTag is a standard tag name such as INDI or DATE.
	TokenTag
	// TokenLineValue is the payload following a tag, up to the end of the line.
	TokenLineValue
	// TokenPointer is an @...@ cross-reference identifier.
	TokenPointer
	// TokenCustomTag is an application-defined tag with a leading underscore.
	TokenCustomTag
	// TokenEOF marks the end of the input.
	TokenEOF
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenLevel:
		return "Level"
	case TokenTag:
		return "Tag"
	case TokenLineValue:
		return "LineValue"
	case TokenPointer:
		return "Pointer"
	case TokenCustomTag:
		return "CustomTag"
	case TokenEOF:
		return "EOF"
	}
	return "Unknown"
}

// Token is one lexical unit of a GEDCOM line: `level [xref] tag [value]`.
type Token struct {
	Kind  TokenKind
	Text  string // tag name, pointer, or line value
	Level uint8  // valid when Kind is TokenLevel
}

// String renders the token for error messages.
func (tok Token) String() string {
	switch tok.Kind {
	case TokenLevel:
		return fmt.Sprintf("Level(%d)", tok.Level)
	case TokenNone, TokenEOF:
		return tok.Kind.String()
	default:
		return fmt.Sprintf("%s(%s)", tok.Kind, tok.Text)
	}
}

// eof is the look-ahead sentinel once the input is exhausted.
const eof = rune(0)

// Tokenizer turns GEDCOM characters into a stream of tokens. It holds
// exactly one current token plus one look-ahead character; Next is the
// only mutating operation and each call consumes input.
type Tokenizer struct {
	// Current is the most recently produced token.
	Current Token
	// Line is the number of the line the current token came from, starting at 1.
	Line uint32

	input []rune
	pos   int
	look  rune
}

// NewTokenizer creates a tokenizer over a complete GEDCOM document.
// The look-ahead starts as a newline so the first Next begins a new
// logical line.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), look: '\n'}
}

// Done reports whether the token stream is exhausted.
func (t *Tokenizer) Done() bool {
	return t.Current.Kind == TokenEOF
}

// Next loads the next token into Current. At end of input the current
// token becomes EOF and further calls leave it there.
//
// The kind of the produced token depends on the kind of the previous
// one: a Pointer, Tag or CustomTag follows a Level, a Tag follows a
// Pointer, and a LineValue follows a Tag or CustomTag. Any other
// transition is a fatal error.
func (t *Tokenizer) Next() error {
	if t.look == eof {
		t.Current = Token{Kind: TokenEOF}
		return nil
	}

	// A level number sits at the start of each line.
	if t.look == '\r' {
		t.advance()
	}
	if t.look == '\n' {
		t.advance()
		if t.look == eof {
			t.Current = Token{Kind: TokenEOF}
			return nil
		}
		level, err := t.extractLevel()
		if err != nil {
			return err
		}
		t.Line++
		t.Current = Token{Kind: TokenLevel, Level: level}
		return nil
	}

	t.skipSpace()

	// Tag with only trailing whitespace before the end of the line.
	if t.look == '\n' {
		return t.Next()
	}

	switch t.Current.Kind {
	case TokenLevel:
		switch {
		case t.look == '@':
			t.Current = Token{Kind: TokenPointer, Text: t.extractWord()}
		case t.look == '_':
			t.Current = Token{Kind: TokenCustomTag, Text: t.extractWord()}
		default:
			t.Current = Token{Kind: TokenTag, Text: t.extractWord()}
		}
	case TokenPointer:
		// A pointer is always followed by the tag naming the record type.
		t.Current = Token{Kind: TokenTag, Text: t.extractWord()}
	case TokenTag, TokenCustomTag:
		t.Current = Token{Kind: TokenLineValue, Text: t.extractValue()}
	default:
		return invalidToken(t.Line, t.Current.String())
	}
	return nil
}

func (t *Tokenizer) advance() {
	if t.pos >= len(t.input) {
		t.look = eof
		return
	}
	t.look = t.input[t.pos]
	t.pos++
}

func (t *Tokenizer) extractLevel() (uint8, error) {
	t.skipSpace()
	var digits strings.Builder
	for t.look >= '0' && t.look <= '9' {
		digits.WriteRune(t.look)
		t.advance()
	}
	n, err := strconv.ParseUint(digits.String(), 10, 8)
	if err != nil {
		return 0, invalidValueFormat(t.Line, t.Current.String(), digits.String())
	}
	return uint8(n), nil
}

func (t *Tokenizer) extractWord() string {
	var word strings.Builder
	for t.look != eof && !unicode.IsSpace(t.look) {
		word.WriteRune(t.look)
		t.advance()
	}
	return word.String()
}

// extractValue reads to the end of the line. The document need not end
// with a newline, so end of input also terminates the value.
func (t *Tokenizer) extractValue() string {
	var value strings.Builder
	for t.look != '\n' && t.look != '\r' && t.look != eof {
		value.WriteRune(t.look)
		t.advance()
	}
	return value.String()
}

// skipSpace consumes non-newline whitespace. U+FEFF shows up in
// byte-order-mark contaminated files and is treated as ordinary
// whitespace, never as a line terminator.
func (t *Tokenizer) skipSpace() {
	for t.look != '\n' && (unicode.IsSpace(t.look) || t.look == '\ufeff') {
		t.advance()
	}
}

// takeLineValue returns the remainder of the current line. A tag line
// with no payload yields an empty string: the following level token is
// left in place rather than treated as an error.
func (t *Tokenizer) takeLineValue() (string, error) {
	if err := t.Next(); err != nil {
		return "", err
	}
	switch t.Current.Kind {
	case TokenLineValue:
		value := t.Current.Text
		if err := t.Next(); err != nil {
			return "", err
		}
		return value, nil
	case TokenLevel:
		return "", nil
	default:
		return "", invalidToken(t.Line, t.Current.String())
	}
}

// takeContinuedText takes the value of the current line, merging the
// values of following CONT and CONC lines into one logical value: CONT
// appends a newline plus its value, CONC appends its value directly.
// A level at or below the starting level terminates assembly; any
// other tag inside the continuation block is a fatal error.
func (t *Tokenizer) takeContinuedText(level uint8) (string, error) {
	first, err := t.takeLineValue()
	if err != nil {
		return "", err
	}

	var value strings.Builder
	value.WriteString(first)
	for {
		if t.Current.Kind == TokenLevel && t.Current.Level <= level {
			break
		}
		switch t.Current.Kind {
		case TokenTag:
			switch t.Current.Text {
			case "CONT":
				part, err := t.takeLineValue()
				if err != nil {
					return "", err
				}
				value.WriteByte('\n')
				value.WriteString(part)
			case "CONC":
				part, err := t.takeLineValue()
				if err != nil {
					return "", err
				}
				value.WriteString(part)
			default:
				return "", invalidToken(t.Line, t.Current.String())
			}
		case TokenLevel:
			if err := t.Next(); err != nil {
				return "", err
			}
		default:
			return "", invalidToken(t.Line, t.Current.String())
		}
	}
	return value.String(), nil
}
