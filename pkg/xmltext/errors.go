package xmltext

import (
	"errors"
	"fmt"
)

// Error classes. Detail errors wrap one of these, so callers can match
// with errors.Is.
var (
	// ErrMalformedMarkup reports structurally invalid markup.
	ErrMalformedMarkup = errors.New("malformed markup")
	// ErrUnexpectedEOF reports input that ended inside an open construct.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

var (
	errNilSource       = errors.New("nil chunk source")
	errNilLexer        = errors.New("nil lexer")
	errInvalidName     = malformed("invalid name")
	errMissingSpace    = malformed("missing whitespace between attributes")
	errInvalidTagChar  = malformed("unexpected character in tag")
	errExpectedEquals  = malformed("expected '=' after attribute name")
	errUnquotedAttr    = malformed("attribute value must be quoted")
	errLessThanInAttr  = malformed("'<' in attribute value")
	errInvalidEmptyTag = malformed("expected '>' after '/'")
	errInvalidEndTag   = malformed("expected '>' in end tag")
	errInvalidDecl     = malformed("invalid markup declaration")
	errInvalidPI       = malformed("invalid processing instruction")
	errInvalidDoctype  = malformed("invalid doctype")
	errInvalidEntity   = malformed("invalid entity reference")
	errUnknownEntity   = malformed("undefined entity")
	errInvalidCharRef  = malformed("invalid character reference")
	errTokenTooLarge   = malformed("token exceeds MaxTokenSize")
	errAttrLimit       = malformed("attribute count exceeds MaxAttrs")
	errDuplicateAttr   = malformed("duplicate attribute name")
	errNotEntityRef    = errors.New("token is not an entity reference")
	errNilHolder       = errors.New("nil text holder")
	errInvalidChar     = malformed("invalid XML character")
)

func malformed(detail string) error {
	return fmt.Errorf("%w: %s", ErrMalformedMarkup, detail)
}

// SyntaxError reports malformed markup or a premature end of input with
// location context. Err wraps ErrMalformedMarkup or ErrUnexpectedEOF.
type SyntaxError struct {
	// Span covers the offending character when one is known.
	Span   Span
	Offset int64
	Line   int
	Column int
	Err    error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("markup syntax error at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("markup syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SyntaxError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a failure of the chunk source.
type SourceError struct {
	Offset int64
	Err    error
}

// Error formats the source error.
func (e *SourceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("chunk source error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the source failure.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
