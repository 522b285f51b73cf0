package xmltext

// Attr is one attribute of a start or empty-element tag.
type Attr struct {
	Name  Text
	Value Text
	Quote byte
}

// Token describes one unit of markup by position and spans, not by text.
// Its slices are owned by the Lexer and are valid until the next Advance.
type Token struct {
	name   Text
	text   Text
	attrs  []Attr
	offset int64
	line   int
	column int
	kind   Kind
}

// Kind reports the token kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Name returns the tag name for tags, the target for processing
// instructions, the root name for doctypes and the reference name for
// entity references.
func (t Token) Name() Text {
	return t.name
}

// Text returns the primary text of the token: the name for tags and entity
// references, and the body for every other kind.
func (t Token) Text() Text {
	return t.text
}

// Attrs returns the attributes of a start or empty-element tag in source
// order. Duplicates are passed through unless the lexer rejects them.
func (t Token) Attrs() []Attr {
	return t.attrs
}

// AttrCount reports the number of attributes.
func (t Token) AttrCount() int {
	return len(t.attrs)
}

// Attr returns the first attribute with the given name.
func (t Token) Attr(name string) (Attr, bool) {
	for _, a := range t.attrs {
		if a.Name.Equal(name) {
			return a, true
		}
	}
	return Attr{}, false
}

// Offset reports the absolute byte offset where the token starts.
func (t Token) Offset() int64 {
	return t.offset
}

// Line reports the 1-based line where the token starts, or 0 when line
// tracking is disabled.
func (t Token) Line() int {
	return t.line
}

// Column reports the 1-based byte column where the token starts, or 0 when
// line tracking is disabled.
func (t Token) Column() int {
	return t.column
}

// Clone returns a token whose slices no longer alias lexer storage, so it
// stays valid across Advance calls. Span text is still shared with the
// original chunks.
func (t Token) Clone() Token {
	out := t
	out.name = cloneText(t.name)
	out.text = cloneText(t.text)
	if t.kind.IsTag() {
		// tag tokens share the name slice between name and text.
		out.text = out.name
	}
	if len(t.attrs) > 0 {
		out.attrs = make([]Attr, len(t.attrs))
		for i, a := range t.attrs {
			out.attrs[i] = Attr{Name: cloneText(a.Name), Value: cloneText(a.Value), Quote: a.Quote}
		}
	}
	return out
}

func cloneText(t Text) Text {
	if t == nil {
		return nil
	}
	out := make(Text, len(t))
	copy(out, t)
	return out
}

// TextOf returns a newly allocated copy of the token's text.
func TextOf(t Token) string {
	return t.text.String()
}

// TextInto writes the token's text into h and returns a view of it.
// The view is valid until h is written again.
func TextInto(t Token, h *TextHolder) string {
	return h.Set(t.text)
}
