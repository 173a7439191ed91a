// Package gedcom parses GEDCOM 5.5 genealogical data into Go data
// structures. The line format is `level [xref] tag [value]`: every line
// carries an explicit numeric nesting level, long values are continued
// across lines with the CONT and CONC tags, and application-defined
// tags (leading underscore) are preserved verbatim in a generic tree.
package gedcom

import (
	"fmt"
	"io"
	"strings"
)

// tagHandler consumes one recognized tag together with its value and
// children, leaving the tokenizer on the first token at or below the
// caller's level. Every invocation must advance the token stream by at
// least one token. Handlers return errUnknownTag for standard tags
// they do not recognize.
type tagHandler func(tag string) error

// parseSubset drives the generic level-bounded recursion shared by all
// record schemas. It consumes tokens until a level at or below the
// bound appears, routing standard tags to the handler and capturing
// custom tags into generic nodes. Custom tags are accepted in every
// mode; they are never subject to the recognized/unrecognized
// distinction.
//
// A nil warns selects strict mode: an unrecognized standard tag aborts
// the parse. Otherwise the tag is recorded as a warning and its whole
// subtree is skipped.
func parseSubset(t *Tokenizer, level uint8, warns *[]Warning, handle tagHandler) ([]*UserDefinedTag, error) {
	var custom []*UserDefinedTag
	for {
		if t.Current.Kind == TokenLevel && t.Current.Level <= level {
			break
		}
		switch t.Current.Kind {
		case TokenTag:
			tag := t.Current.Text
			line := t.Line
			if err := handle(tag); err != nil {
				if err != errUnknownTag {
					return nil, err
				}
				if warns == nil {
					return nil, invalidTag(line, tag)
				}
				*warns = append(*warns, newWarning(line, WarningUnrecognizedTag, tag))
				if err := skipSubtree(t, level+1); err != nil {
					return nil, err
				}
			}
		case TokenCustomTag:
			node, err := newUserDefinedTag(t, level+1, t.Current.Text)
			if err != nil {
				return nil, err
			}
			custom = append(custom, node)
		case TokenLevel:
			if t.Current.Level > level+1 {
				return nil, unexpectedLevel(t.Line, level+1, t.Current.String())
			}
			if err := t.Next(); err != nil {
				return nil, err
			}
		default:
			return nil, invalidToken(t.Line, t.Current.String())
		}
	}
	return custom, nil
}

// skipSubtree advances past the current tag's value and children,
// stopping on the next level token at or below the bound, or at end of
// input.
func skipSubtree(t *Tokenizer, level uint8) error {
	for {
		if t.Current.Kind == TokenEOF {
			return nil
		}
		if t.Current.Kind == TokenLevel && t.Current.Level <= level {
			return nil
		}
		if err := t.Next(); err != nil {
			return err
		}
	}
}

// expectValue reads a line value that must not be blank. In strict
// mode a blank value is fatal; otherwise it is recorded as a warning
// and returned as the empty string.
func expectValue(t *Tokenizer, warns *[]Warning, tag string) (string, error) {
	value, err := t.takeLineValue()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		if warns == nil {
			return "", missingRequiredValue(t.Line, tag)
		}
		*warns = append(*warns, newWarning(t.Line, WarningExpectedValue, tag))
	}
	return value, nil
}

// Parser parses GEDCOM documents. The zero value is a lenient parser
// that records unrecognized standard tags as warnings and keeps going;
// Strict promotes them to fatal errors.
type Parser struct {
	strict       bool
	validateRefs bool
}

// NewParser creates a new Parser with the default (lenient) configuration.
func NewParser() *Parser {
	return &Parser{}
}

// Strict configures whether unrecognized standard tags abort the parse.
func (p *Parser) Strict(on bool) *Parser {
	p.strict = on
	return p
}

// ValidateReferences configures whether cross-record references are
// checked after parsing. Findings are reported in the result's
// ValidationErrors; they never abort the parse.
func (p *Parser) ValidateReferences(on bool) *Parser {
	p.validateRefs = on
	return p
}

// ParseResult pairs a parsed document with the warnings gathered along
// the way. The document is complete even when warnings or validation
// errors are present.
type ParseResult struct {
	Document         *Document         `json:"document"`
	Warnings         []Warning         `json:"warnings,omitempty"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`
}

// ParseDocument parses one complete GEDCOM document from r.
func (p *Parser) ParseDocument(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return p.ParseString(string(data))
}

// ParseString parses one complete GEDCOM document held in memory.
func (p *Parser) ParseString(input string) (*ParseResult, error) {
	t := NewTokenizer(input)
	if err := t.Next(); err != nil {
		return nil, err
	}

	doc := &Document{}
	var warnings []Warning
	warns := &warnings
	if p.strict {
		warns = nil
	}
	if err := doc.parse(t, 0, warns); err != nil {
		return nil, err
	}

	result := &ParseResult{Document: doc, Warnings: warnings}
	if p.validateRefs {
		result.ValidationErrors = doc.Validate()
	}
	return result, nil
}

// Parse parses a GEDCOM document from r with the default lenient parser.
func Parse(r io.Reader) (*ParseResult, error) {
	return NewParser().ParseDocument(r)
}

// ParseString parses a GEDCOM document held in memory with the default
// lenient parser.
func ParseString(input string) (*ParseResult, error) {
	return NewParser().ParseString(input)
}
