package xmlstream

import (
	"errors"
	"fmt"

	"github.com/jacoelho/minim/pkg/xmltext"
)

// ErrUndeclaredPrefix reports a prefix with no namespace declaration in
// scope. It wraps xmltext.ErrMalformedMarkup.
var ErrUndeclaredPrefix = fmt.Errorf("%w: undeclared namespace prefix", xmltext.ErrMalformedMarkup)

var (
	errNilReader           = errors.New("nil namespace reader")
	errNilLexer            = errors.New("nil lexer")
	errEmptyPrefixBinding  = fmt.Errorf("%w: prefix bound to empty namespace", xmltext.ErrMalformedMarkup)
	errReservedPrefix      = fmt.Errorf("%w: reserved prefix rebound", xmltext.ErrMalformedMarkup)
	errReservedNamespace   = fmt.Errorf("%w: reserved namespace bound to another prefix", xmltext.ErrMalformedMarkup)
	errInvalidQName        = fmt.Errorf("%w: invalid qualified name", xmltext.ErrMalformedMarkup)
	errMismatchedEndTag    = fmt.Errorf("%w: end tag does not match open element", xmltext.ErrMalformedMarkup)
	errUnexpectedEndTag    = fmt.Errorf("%w: end tag without open element", xmltext.ErrMalformedMarkup)
	errUnclosedElement     = fmt.Errorf("%w: unclosed element", xmltext.ErrUnexpectedEOF)
	errDeclNameTooLong     = fmt.Errorf("%w: namespace declaration name exceeds MaxDeclNameLength", xmltext.ErrMalformedMarkup)
	errNamespaceURITooLong = fmt.Errorf("%w: namespace name exceeds MaxNamespaceURILength", xmltext.ErrMalformedMarkup)
)

// tokenError reports err at the location of tok.
func tokenError(tok xmltext.Token, err error) error {
	var span xmltext.Span
	if spans := tok.Name().Spans(); len(spans) > 0 {
		span = spans[0]
	}
	return &xmltext.SyntaxError{
		Span:   span,
		Offset: tok.Offset(),
		Line:   tok.Line(),
		Column: tok.Column(),
		Err:    err,
	}
}

func undeclaredPrefixError(tok xmltext.Token, prefix []byte) error {
	return tokenError(tok, fmt.Errorf("%w %q", ErrUndeclaredPrefix, prefix))
}
