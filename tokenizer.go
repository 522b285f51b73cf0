package minim

import (
	"io"

	"github.com/jacoelho/minim/pkg/chunk"
	"github.com/jacoelho/minim/pkg/xmlstream"
	"github.com/jacoelho/minim/pkg/xmltext"
)

type (
	// Token is one unit of markup. Tag tokens carry resolved names when
	// namespaces are enabled.
	Token = xmlstream.Token
	// TextHolder is a reusable buffer that materializes token text.
	TextHolder = xmltext.TextHolder
)

// Tokenizer turns a chunk source into tokens.
// A Tokenizer must not be used concurrently.
//
// With namespaces disabled, tag and attribute names are reported lexically:
// QName has an empty namespace and the full name as its local part.
type Tokenizer struct {
	lex        *xmltext.Lexer
	reader     *xmlstream.Reader
	readerOpts xmlstream.Option
	holder     *xmltext.TextHolder
	namespaces bool
}

// NewTokenizer creates a tokenizer over src.
func NewTokenizer(src chunk.Source, opts ...Option) *Tokenizer {
	resolved := resolveOptions(opts...)
	t := &Tokenizer{
		lex:        xmltext.NewLexer(src, resolved.lexer),
		holder:     xmltext.NewTextHolder(resolved.holderCapacity),
		namespaces: resolved.namespaces,
	}
	t.readerOpts = xmlstream.JoinOptions(resolved.namespace, xmlstream.ResolveNamespaces(t.namespaces))
	t.reader = xmlstream.NewReader(t.lex, t.readerOpts)
	return t
}

// NewTokenizerFromStrings creates a tokenizer over in-memory chunks.
func NewTokenizerFromStrings(chunks []string, opts ...Option) *Tokenizer {
	return NewTokenizer(chunk.FromSlice(chunks), opts...)
}

// NewTokenizerFromReader creates a tokenizer reading chunks of at most size
// bytes from r. A non-positive size uses chunk.DefaultSize.
func NewTokenizerFromReader(r io.Reader, size int, opts ...Option) *Tokenizer {
	return NewTokenizer(chunk.NewReader(r, size), opts...)
}

// Reset prepares the tokenizer for a new source with the same options.
func (t *Tokenizer) Reset(src chunk.Source) {
	if t == nil || t.lex == nil {
		return
	}
	t.lex.Reset(src, t.lex.Options())
	t.reader.Reset(t.lex, t.readerOpts)
}

// Advance returns the next token. After the input is exhausted it returns
// a KindEndOfStream token on every call. Errors are sticky.
func (t *Tokenizer) Advance() (Token, error) {
	if t == nil || t.lex == nil {
		return Token{}, errNilTokenizer
	}
	return t.reader.Advance()
}

// NamespacesEnabled reports whether tag names are resolved.
func (t *Tokenizer) NamespacesEnabled() bool {
	return t != nil && t.namespaces
}

// Lexer returns the underlying lexer.
func (t *Tokenizer) Lexer() *xmltext.Lexer {
	if t == nil {
		return nil
	}
	return t.lex
}

// Namespaces returns the namespace layer, or nil when it is disabled.
func (t *Tokenizer) Namespaces() *xmlstream.Reader {
	if t == nil || !t.namespaces {
		return nil
	}
	return t.reader
}

// Holder returns the tokenizer-owned text holder.
func (t *Tokenizer) Holder() *TextHolder {
	if t == nil {
		return nil
	}
	return t.holder
}

// TextOf returns a newly allocated copy of the token's text.
func TextOf(tok Token) string {
	return xmltext.TextOf(tok.Token)
}

// TextInto writes the token's text into h and returns a view of it that is
// valid until h is written again.
func TextInto(tok Token, h *TextHolder) string {
	return xmltext.TextInto(tok.Token, h)
}

// Text writes the token's text into the tokenizer-owned holder. The result
// is valid until the next call that writes the holder.
func (t *Tokenizer) Text(tok Token) string {
	return xmltext.TextInto(tok.Token, t.holder)
}

// ResolveEntity writes the replacement text of an entity reference token
// into the tokenizer-owned holder.
func (t *Tokenizer) ResolveEntity(tok Token) (string, error) {
	if t == nil || t.lex == nil {
		return "", errNilTokenizer
	}
	return t.lex.ResolveEntity(tok.Token, t.holder)
}
