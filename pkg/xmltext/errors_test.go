package xmltext

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSyntaxErrorFormatting(t *testing.T) {
	err := &SyntaxError{Offset: 10, Line: 2, Column: 5, Err: errInvalidName}
	if got := err.Error(); got != "markup syntax error at line 2, column 5: malformed markup: invalid name" {
		t.Fatalf("Error = %q", got)
	}
	err = &SyntaxError{Offset: 10, Err: ErrUnexpectedEOF}
	if got := err.Error(); got != "markup syntax error at offset 10: unexpected end of input" {
		t.Fatalf("Error = %q", got)
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(ErrUnexpectedEOF) = false, want true")
	}
	var nilErr *SyntaxError
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Fatalf("nil SyntaxError formatting mismatch")
	}
}

func TestSourceErrorFormatting(t *testing.T) {
	err := &SourceError{Offset: 3, Err: io.ErrUnexpectedEOF}
	if !strings.Contains(err.Error(), "offset 3") {
		t.Fatalf("Error = %q, want offset", err.Error())
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(io.ErrUnexpectedEOF) = false, want true")
	}
	var nilErr *SourceError
	if nilErr.Error() != "<nil>" || nilErr.Unwrap() != nil {
		t.Fatalf("nil SourceError formatting mismatch")
	}
}

func TestErrorClasses(t *testing.T) {
	for _, err := range []error{
		errInvalidName, errMissingSpace, errUnquotedAttr, errLessThanInAttr,
		errInvalidDecl, errInvalidPI, errInvalidDoctype, errInvalidEntity,
		errTokenTooLarge, errAttrLimit, errDuplicateAttr,
	} {
		if !errors.Is(err, ErrMalformedMarkup) {
			t.Fatalf("%v does not wrap ErrMalformedMarkup", err)
		}
	}
}
