package xmlstream

import "github.com/jacoelho/minim/pkg/xmltext"

// Attr is a tag attribute with its resolved name.
// Namespace declarations resolve to XMLNSNamespace.
type Attr struct {
	xmltext.Attr
	QName QName
}

// Token is a lexer token decorated with namespace information.
// For non-tag tokens the decoration is empty.
type Token struct {
	xmltext.Token
	qname QName
	attrs []Attr
	depth int
}

// QName returns the resolved element name of a tag token.
func (t Token) QName() QName {
	return t.qname
}

// Attrs returns the resolved attributes of a start or empty-element tag in
// source order. The raw lexer attributes stay available through
// t.Token.Attrs.
func (t Token) Attrs() []Attr {
	return t.attrs
}

// Attr returns the attribute with the given resolved name.
func (t Token) Attr(namespace, local string) (Attr, bool) {
	for _, a := range t.attrs {
		if a.QName.Is(namespace, local) {
			return a, true
		}
	}
	return Attr{}, false
}

// Depth reports the element depth of the token: 1 for the root element's
// tags, 0 for tokens outside any element.
func (t Token) Depth() int {
	return t.depth
}

// Clone returns a token that stays valid across Advance calls.
func (t Token) Clone() Token {
	out := t
	out.Token = t.Token.Clone()
	if len(t.attrs) > 0 {
		raw := out.Token.Attrs()
		out.attrs = make([]Attr, len(t.attrs))
		for i, a := range t.attrs {
			out.attrs[i] = Attr{Attr: raw[i], QName: a.QName}
		}
	}
	return out
}
