package minim

import (
	"errors"

	"github.com/jacoelho/minim/pkg/xmlstream"
	"github.com/jacoelho/minim/pkg/xmltext"
)

// Error classes, matched with errors.Is.
var (
	ErrMalformedMarkup  = xmltext.ErrMalformedMarkup
	ErrUnexpectedEOF    = xmltext.ErrUnexpectedEOF
	ErrUndeclaredPrefix = xmlstream.ErrUndeclaredPrefix
)

type (
	// SyntaxError reports malformed markup or a premature end of input.
	SyntaxError = xmltext.SyntaxError
	// SourceError reports a failure of the chunk source.
	SourceError = xmltext.SourceError
)

var errNilTokenizer = errors.New("nil tokenizer")
