package xmlstream

import (
	"bytes"

	"github.com/jacoelho/minim/internal/xmllex"
	"github.com/jacoelho/minim/pkg/xmltext"
)

const (
	readerNameCapacity  = 64
	readerValueCapacity = 128
	stringTableMax      = 1024
)

// Reader resolves namespaces over a token stream.
type Reader struct {
	lex        *xmltext.Lexer
	names      *qnameCache
	strs       stringTable
	ns         nsStack
	elems      xmllex.ElementStack
	attrs      []Attr
	nameBuf    *xmltext.TextHolder
	valueBuf   *xmltext.TextHolder
	err        error
	opts       readerOptions
	popScope   int
	pendingPop bool
}

// NewReader creates a namespace-aware reader over lex.
func NewReader(lex *xmltext.Lexer, opts ...Option) *Reader {
	options := resolveOptions(JoinOptions(opts...))
	return &Reader{
		lex:      lex,
		opts:     options,
		names:    newQNameCache(options.qnameCacheSize),
		strs:     stringTable{max: stringTableMax},
		nameBuf:  xmltext.NewTextHolder(readerNameCapacity),
		valueBuf: xmltext.NewTextHolder(readerValueCapacity),
	}
}

// Reset prepares the reader for a new lexer, keeping its buffers.
func (r *Reader) Reset(lex *xmltext.Lexer, opts ...Option) {
	if r == nil {
		return
	}
	r.opts = resolveOptions(JoinOptions(opts...))
	r.lex = lex
	if r.names == nil {
		r.names = newQNameCache(r.opts.qnameCacheSize)
	} else {
		r.names.setMaxEntries(r.opts.qnameCacheSize)
	}
	if r.nameBuf == nil {
		r.nameBuf = xmltext.NewTextHolder(readerNameCapacity)
	}
	if r.valueBuf == nil {
		r.valueBuf = xmltext.NewTextHolder(readerValueCapacity)
	}
	r.strs.max = stringTableMax
	r.ns.reset()
	r.elems.Reset()
	r.attrs = r.attrs[:0]
	r.err = nil
	r.pendingPop = false
}

// Lexer returns the underlying lexer.
func (r *Reader) Lexer() *xmltext.Lexer {
	if r == nil {
		return nil
	}
	return r.lex
}

// Advance returns the next token with namespace information.
// Errors are sticky.
func (r *Reader) Advance() (Token, error) {
	if r == nil {
		return Token{}, errNilReader
	}
	if r.lex == nil {
		return Token{}, errNilLexer
	}
	if r.err != nil {
		return Token{}, r.err
	}
	if r.pendingPop {
		r.ns.truncate(r.popScope)
		r.pendingPop = false
	}
	tok, err := r.lex.Advance()
	if err != nil {
		r.err = err
		return Token{}, err
	}
	var out Token
	switch tok.Kind() {
	case xmltext.KindStartTag, xmltext.KindEmptyElementTag:
		out, err = r.startTag(tok)
	case xmltext.KindEndTag:
		out, err = r.endTag(tok)
	case xmltext.KindEndOfStream:
		out, err = r.endOfStream(tok)
	default:
		out = Token{Token: tok, depth: r.elems.Depth()}
	}
	if err != nil {
		r.err = err
		return Token{}, err
	}
	return out, nil
}

// Depth reports the number of open namespace scopes, which is the number
// of enclosing elements of the last returned token including itself when it
// is a tag.
func (r *Reader) Depth() int {
	if r == nil {
		return 0
	}
	return r.ns.depth()
}

// LookupNamespace resolves prefix in the scope of the last returned token.
// The empty prefix resolves the default namespace.
func (r *Reader) LookupNamespace(prefix string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.ns.lookup(prefix)
}

// NamespaceDecls returns the declarations made by the innermost scope.
// The slice is valid until the next Advance.
func (r *Reader) NamespaceDecls() []NamespaceDecl {
	if r == nil {
		return nil
	}
	return r.ns.current()
}

func (r *Reader) startTag(tok xmltext.Token) (Token, error) {
	scope := r.ns.push()
	if tok.Kind() == xmltext.KindEmptyElementTag {
		r.popScope = scope
		r.pendingPop = true
	}
	raw := tok.Attrs()
	if !r.opts.lexical {
		for i := range raw {
			if err := r.collectDecl(tok, &raw[i]); err != nil {
				return Token{}, err
			}
		}
	}

	r.nameBuf.Set(tok.Name())
	name := r.nameBuf.Bytes()
	qname, err := r.resolve(tok, name, true)
	if err != nil {
		return Token{}, err
	}
	if tok.Kind() == xmltext.KindStartTag {
		r.elems.Push(name, scope)
	}

	r.attrs = r.attrs[:0]
	for i := range raw {
		r.nameBuf.Set(raw[i].Name)
		attrName, err := r.resolve(tok, r.nameBuf.Bytes(), false)
		if err != nil {
			return Token{}, err
		}
		r.attrs = append(r.attrs, Attr{Attr: raw[i], QName: attrName})
	}
	out := Token{Token: tok, qname: qname, depth: r.ns.depth()}
	if len(r.attrs) > 0 {
		out.attrs = r.attrs
	}
	return out, nil
}

// collectDecl records attr in the innermost scope when it declares a
// namespace.
func (r *Reader) collectDecl(tok xmltext.Token, attr *xmltext.Attr) error {
	if !attr.Name.HasPrefix(xmllex.XMLNSPrefix) {
		return nil
	}
	if limit := r.opts.maxDeclNameLength; limit > 0 && attr.Name.Len() > limit {
		return tokenError(tok, errDeclNameTooLong)
	}
	r.nameBuf.Set(attr.Name)
	prefix, ok := xmllex.IsNamespaceDecl(r.nameBuf.Bytes())
	if !ok {
		return nil
	}
	if limit := r.opts.maxNamespaceURILength; limit > 0 && attr.Value.Len() > limit {
		return tokenError(tok, errNamespaceURITooLong)
	}
	uri, err := r.lex.Unescape(attr.Value, r.valueBuf)
	if err != nil {
		return tokenError(tok, err)
	}
	switch {
	case string(prefix) == xmllex.XMLNSPrefix:
		return tokenError(tok, errReservedPrefix)
	case string(prefix) == xmllex.XMLPrefix:
		if uri != XMLNamespace {
			return tokenError(tok, errReservedPrefix)
		}
		return nil
	case uri == XMLNamespace || uri == XMLNSNamespace:
		return tokenError(tok, errReservedNamespace)
	case len(prefix) > 0 && uri == "":
		return tokenError(tok, errEmptyPrefixBinding)
	}
	if len(prefix) == 0 && r.nameBuf.Len() > len(xmllex.XMLNSPrefix) {
		// "xmlns:" with nothing after the colon
		return tokenError(tok, errInvalidQName)
	}
	r.ns.declare(r.strs.intern(unsafeString(prefix)), r.strs.intern(uri))
	return nil
}

// resolve maps a lexical name to its QName. Element names take the default
// namespace; unprefixed attribute names have no namespace.
func (r *Reader) resolve(tok xmltext.Token, name []byte, element bool) (QName, error) {
	if r.opts.lexical {
		return r.names.intern("", unsafeString(name)), nil
	}
	prefix, local, hasPrefix := xmllex.SplitQName(name)
	if !hasPrefix {
		if element {
			ns, _ := r.ns.lookup("")
			return r.names.intern(ns, unsafeString(local)), nil
		}
		if string(local) == xmllex.XMLNSPrefix {
			return r.names.intern(XMLNSNamespace, unsafeString(local)), nil
		}
		return r.names.intern("", unsafeString(local)), nil
	}
	if len(prefix) == 0 || len(local) == 0 || bytes.IndexByte(local, ':') >= 0 {
		return QName{}, tokenError(tok, errInvalidQName)
	}
	ns, ok := r.ns.lookup(unsafeString(prefix))
	if !ok {
		return QName{}, undeclaredPrefixError(tok, prefix)
	}
	return r.names.intern(ns, unsafeString(local)), nil
}

func (r *Reader) endTag(tok xmltext.Token) (Token, error) {
	r.nameBuf.Set(tok.Name())
	name := r.nameBuf.Bytes()
	open, frame, ok := r.elems.Top()
	if !ok {
		if r.opts.lexical {
			qname, _ := r.resolve(tok, name, true)
			return Token{Token: tok, qname: qname}, nil
		}
		return Token{}, tokenError(tok, errUnexpectedEndTag)
	}
	if !r.opts.lexical && !bytes.Equal(open, name) {
		return Token{}, tokenError(tok, errMismatchedEndTag)
	}
	qname, err := r.resolve(tok, name, true)
	if err != nil {
		return Token{}, err
	}
	r.elems.Pop()
	r.popScope = frame
	r.pendingPop = true
	return Token{Token: tok, qname: qname, depth: frame + 1}, nil
}

func (r *Reader) endOfStream(tok xmltext.Token) (Token, error) {
	if _, _, ok := r.elems.Top(); ok && !r.opts.lexical {
		return Token{}, tokenError(tok, errUnclosedElement)
	}
	return Token{Token: tok}, nil
}
