package gedcom

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the fatal parse failures. A fatal error means
// the document cannot be segmented or dispatched reliably; it always
// aborts the parse in progress.
type ErrorKind int

const (
	// ErrInvalidTag is a standard tag that is not valid where it appeared.
	ErrInvalidTag ErrorKind = iota
	// ErrInvalidToken is a token sequence the grammar cannot continue from.
	ErrInvalidToken
	// ErrUnexpectedLevel is a nesting level other than the one required.
	ErrUnexpectedLevel
	// ErrMissingRequiredValue is a required payload that was absent.
	ErrMissingRequiredValue
	// ErrInvalidValueFormat is a payload that cannot be interpreted.
	ErrInvalidValueFormat
)

// ParseError is a fatal structural error, carrying the offending line
// number and enough context to locate the problem in the source file.
type ParseError struct {
	Kind     ErrorKind
	Line     uint32
	Tag      string
	Token    string
	Value    string
	Expected uint8 // level that was required, for ErrUnexpectedLevel
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidTag:
		return fmt.Sprintf("invalid tag at line %d: %s", e.Line, e.Tag)
	case ErrInvalidToken:
		return fmt.Sprintf("invalid token at line %d: %s", e.Line, e.Token)
	case ErrUnexpectedLevel:
		return fmt.Sprintf("unexpected level at line %d: expected %d, found %s", e.Line, e.Expected, e.Token)
	case ErrMissingRequiredValue:
		return fmt.Sprintf("missing required value at line %d: %s", e.Line, e.Tag)
	case ErrInvalidValueFormat:
		return fmt.Sprintf("invalid value format at line %d: %s: %s", e.Line, e.Tag, e.Value)
	}
	return fmt.Sprintf("parse error at line %d", e.Line)
}

func invalidTag(line uint32, tag string) *ParseError {
	return &ParseError{Kind: ErrInvalidTag, Line: line, Tag: tag}
}

func invalidToken(line uint32, token string) *ParseError {
	return &ParseError{Kind: ErrInvalidToken, Line: line, Token: token}
}

func unexpectedLevel(line uint32, expected uint8, found string) *ParseError {
	return &ParseError{Kind: ErrUnexpectedLevel, Line: line, Expected: expected, Token: found}
}

func missingRequiredValue(line uint32, tag string) *ParseError {
	return &ParseError{Kind: ErrMissingRequiredValue, Line: line, Tag: tag}
}

func invalidValueFormat(line uint32, tag, value string) *ParseError {
	return &ParseError{Kind: ErrInvalidValueFormat, Line: line, Tag: tag, Value: value}
}

// errUnknownTag is returned by schema tag handlers for standard tags
// they do not recognize. The subset engine turns it into a fatal error
// or an UnrecognizedTag warning, depending on the parse mode; it never
// escapes to callers of the package.
var errUnknownTag = errors.New("unknown tag")
