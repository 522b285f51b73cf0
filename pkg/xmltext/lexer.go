package xmltext

import (
	"fmt"
	"strings"

	"github.com/jacoelho/minim/internal/xmllex"
	"github.com/jacoelho/minim/pkg/chunk"
)

type lexState uint8

const (
	stateOutside lexState = iota
	stateTagOpen
	stateTagName
	stateInTagAttrs
	stateAttrName
	stateAttrEq
	stateAttrValueOpen
	stateAttrValue
	stateEmptyTagClose
	stateEndTagName
	stateEndTagTail
	stateMarkupDecl
	stateComment
	stateCData
	statePITarget
	statePIData
	stateDoctypeKeyword
	stateDoctype
	stateEntityRef
)

// constructs named in unexpected end of input errors
const (
	inTag          = "tag"
	inEndTag       = "end tag"
	inAttrValue    = "attribute value"
	inDecl         = "markup declaration"
	inComment      = "comment"
	inCData        = "CDATA section"
	inPI           = "processing instruction"
	inDoctype      = "doctype"
	inEntityRef    = "entity reference"
	commentClose   = "-->"
	cdataClose     = "]]>"
	piClose        = "?>"
	commentOpen    = "<!--"
	piOpen         = "<?"
	cdataKeyword   = "[CDATA["
	doctypeKeyword = "DOCTYPE"
)

// Lexer splits a chunked document into tokens.
//
// Each Advance returns one token in document order. Token text is described
// by spans into the source chunks and is never copied; the Token itself is
// valid until the next Advance. A Lexer must not be used concurrently.
type Lexer struct {
	buf   buffer
	opts  lexerOptions
	raw   Options
	attrs []Attr
	tok   Token
	err   error
	state lexState
	done  bool
	quote byte
}

// NewLexer creates a lexer reading chunks from src.
func NewLexer(src chunk.Source, opts ...Options) *Lexer {
	l := &Lexer{}
	l.Reset(src, opts...)
	return l
}

// Reset prepares the lexer for a new source, keeping its internal arenas.
func (l *Lexer) Reset(src chunk.Source, opts ...Options) {
	if l == nil {
		return
	}
	l.raw = JoinOptions(opts...)
	l.opts = resolveOptions(l.raw)
	l.buf.reset(src, l.opts.trackLineColumn)
	l.attrs = l.attrs[:0]
	l.tok = Token{}
	l.err = nil
	l.state = stateOutside
	l.done = false
	l.quote = 0
}

// Options returns the options the lexer was configured with.
func (l *Lexer) Options() Options {
	if l == nil {
		return Options{}
	}
	return l.raw
}

// InputOffset reports the absolute offset of the next unread byte.
func (l *Lexer) InputOffset() int64 {
	if l == nil {
		return 0
	}
	return l.buf.offset()
}

// Advance returns the next token.
// After the input is exhausted it returns a KindEndOfStream token and a nil
// error on every call. Errors are sticky: once Advance fails it keeps
// returning the same error.
func (l *Lexer) Advance() (Token, error) {
	if l == nil {
		return Token{}, errNilLexer
	}
	if l.err != nil {
		return Token{}, l.err
	}
	if l.done {
		return l.endOfStream(), nil
	}
	l.buf.spans = l.buf.spans[:0]
	l.attrs = l.attrs[:0]
	l.tok = Token{}
	tok, err := l.next()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	return tok, nil
}

// ResolveEntity writes the replacement text of an entity reference token
// into h, using the predefined entities and the configured entity map.
func (l *Lexer) ResolveEntity(tok Token, h *TextHolder) (string, error) {
	if tok.kind != KindEntityRef {
		return "", errNotEntityRef
	}
	if h == nil {
		return "", errNilHolder
	}
	var custom map[string]string
	if l != nil {
		custom = l.opts.entityMap
	}
	dst, err := AppendEntity(h.buf[:0], tok.name, custom)
	if err != nil {
		h.buf = dst[:0]
		return "", err
	}
	h.buf = dst
	return unsafeString(dst), nil
}

// Unescape expands the references in t into h using the configured entity
// map and returns a view of the result.
func (l *Lexer) Unescape(t Text, h *TextHolder) (string, error) {
	var custom map[string]string
	if l != nil {
		custom = l.opts.entityMap
	}
	return unescapeInto(h, t, custom)
}

func (l *Lexer) endOfStream() Token {
	line, column := l.buf.location()
	return Token{kind: KindEndOfStream, offset: l.buf.offset(), line: line, column: column}
}

func (l *Lexer) next() (Token, error) {
	b := &l.buf
	l.state = stateOutside
	for {
		switch l.state {
		case stateOutside:
			c, ok := b.peek()
			if !ok {
				if b.err != nil {
					return Token{}, l.sourceError()
				}
				l.done = true
				return l.endOfStream(), nil
			}
			l.tok.offset = b.offset()
			l.tok.line, l.tok.column = b.location()
			switch c {
			case '<':
				b.pos++
				l.state = stateTagOpen
			case '&':
				b.pos++
				l.state = stateEntityRef
			default:
				l.tok.text = l.scanContent()
				return l.emit(KindContent)
			}

		case stateTagOpen:
			c, ok := b.peek()
			if !ok {
				return Token{}, l.eofError(inTag)
			}
			switch {
			case c == '/':
				b.pos++
				l.state = stateEndTagName
			case c == '?':
				b.pos++
				l.state = statePITarget
			case c == '!':
				b.pos++
				l.state = stateMarkupDecl
			case xmllex.IsNameStartByte(c):
				l.state = stateTagName
			default:
				return Token{}, l.syntaxError(errInvalidName)
			}

		case stateTagName:
			l.tok.name = l.scanName()
			l.tok.text = l.tok.name
			l.state = stateInTagAttrs

		case stateInTagAttrs:
			saw, ok := l.skipSpace()
			if !ok {
				return Token{}, l.eofError(inTag)
			}
			c := b.cur[b.pos]
			switch {
			case c == '>':
				b.pos++
				return l.emit(KindStartTag)
			case c == '/':
				b.pos++
				l.state = stateEmptyTagClose
			case !xmllex.IsNameStartByte(c):
				return Token{}, l.syntaxError(errInvalidTagChar)
			case !saw:
				return Token{}, l.syntaxError(errMissingSpace)
			default:
				l.state = stateAttrName
			}

		case stateAttrName:
			if l.opts.maxAttrs > 0 && len(l.attrs) >= l.opts.maxAttrs {
				return Token{}, l.syntaxError(errAttrLimit)
			}
			at := l.position()
			name := l.scanName()
			if l.opts.rejectDuplicateAttrs {
				for i := range l.attrs {
					if l.attrs[i].Name.EqualText(name) {
						return Token{}, at.wrap(errDuplicateAttr)
					}
				}
			}
			l.attrs = append(l.attrs, Attr{Name: name})
			l.state = stateAttrEq

		case stateAttrEq:
			if _, ok := l.skipSpace(); !ok {
				return Token{}, l.eofError(inTag)
			}
			if b.cur[b.pos] != '=' {
				return Token{}, l.syntaxError(errExpectedEquals)
			}
			b.pos++
			l.state = stateAttrValueOpen

		case stateAttrValueOpen:
			if _, ok := l.skipSpace(); !ok {
				return Token{}, l.eofError(inTag)
			}
			c := b.cur[b.pos]
			if c != '"' && c != '\'' {
				return Token{}, l.syntaxError(errUnquotedAttr)
			}
			b.pos++
			l.quote = c
			l.state = stateAttrValue

		case stateAttrValue:
			value, err := l.scanAttrValue()
			if err != nil {
				return Token{}, err
			}
			if err := l.checkSize(value); err != nil {
				return Token{}, err
			}
			attr := &l.attrs[len(l.attrs)-1]
			attr.Value = value
			attr.Quote = l.quote
			l.state = stateInTagAttrs

		case stateEmptyTagClose:
			c, ok := b.peek()
			if !ok {
				return Token{}, l.eofError(inTag)
			}
			if c != '>' {
				return Token{}, l.syntaxError(errInvalidEmptyTag)
			}
			b.pos++
			return l.emit(KindEmptyElementTag)

		case stateEndTagName:
			c, ok := b.peek()
			if !ok {
				return Token{}, l.eofError(inEndTag)
			}
			if !xmllex.IsNameStartByte(c) {
				return Token{}, l.syntaxError(errInvalidName)
			}
			l.tok.name = l.scanName()
			l.tok.text = l.tok.name
			l.state = stateEndTagTail

		case stateEndTagTail:
			if _, ok := l.skipSpace(); !ok {
				return Token{}, l.eofError(inEndTag)
			}
			if b.cur[b.pos] != '>' {
				return Token{}, l.syntaxError(errInvalidEndTag)
			}
			b.pos++
			return l.emit(KindEndTag)

		case stateMarkupDecl:
			c, ok := b.peek()
			if !ok {
				return Token{}, l.eofError(inDecl)
			}
			var err error
			switch c {
			case '-':
				err = l.expect("--", inComment)
				l.state = stateComment
			case '[':
				err = l.expect(cdataKeyword, inCData)
				l.state = stateCData
			case 'D':
				err = l.expect(doctypeKeyword, inDoctype)
				l.state = stateDoctypeKeyword
			default:
				err = l.syntaxError(errInvalidDecl)
			}
			if err != nil {
				return Token{}, err
			}

		case stateComment:
			body, ok := l.scanUntil(commentClose)
			if !ok {
				return Token{}, l.eofError(inComment)
			}
			l.tok.text = body
			return l.emit(KindComment)

		case stateCData:
			body, ok := l.scanUntil(cdataClose)
			if !ok {
				return Token{}, l.eofError(inCData)
			}
			l.tok.text = body
			return l.emit(KindCData)

		case statePITarget:
			c, ok := b.peek()
			if !ok {
				return Token{}, l.eofError(inPI)
			}
			if !xmllex.IsNameStartByte(c) {
				return Token{}, l.syntaxError(errInvalidPI)
			}
			l.tok.name = l.scanName()
			saw, ok := l.skipSpace()
			if !ok {
				return Token{}, l.eofError(inPI)
			}
			if !saw && b.cur[b.pos] != '?' {
				return Token{}, l.syntaxError(errInvalidPI)
			}
			if !saw {
				if err := l.expect(piClose, inPI); err != nil {
					return Token{}, err
				}
				return l.emit(KindProcessingInstruction)
			}
			l.state = statePIData

		case statePIData:
			data, ok := l.scanUntil(piClose)
			if !ok {
				return Token{}, l.eofError(inPI)
			}
			l.tok.text = data
			return l.emit(KindProcessingInstruction)

		case stateDoctypeKeyword:
			saw, ok := l.skipSpace()
			if !ok {
				return Token{}, l.eofError(inDoctype)
			}
			if !saw {
				return Token{}, l.syntaxError(errInvalidDoctype)
			}
			l.state = stateDoctype

		case stateDoctype:
			if err := l.scanDoctype(); err != nil {
				return Token{}, err
			}
			return l.emit(KindDocType)

		case stateEntityRef:
			name, err := l.scanEntityRef()
			if err != nil {
				return Token{}, err
			}
			l.tok.name = name
			l.tok.text = name
			return l.emit(KindEntityRef)
		}
	}
}

func (l *Lexer) emit(kind Kind) (Token, error) {
	if err := l.checkSize(l.tok.text); err != nil {
		return Token{}, err
	}
	l.tok.kind = kind
	if kind.IsTag() && len(l.attrs) > 0 {
		l.tok.attrs = l.attrs
	}
	l.state = stateOutside
	return l.tok, nil
}

func (l *Lexer) checkSize(t Text) error {
	if l.opts.maxTokenSize > 0 && t.Len() > l.opts.maxTokenSize {
		return &SyntaxError{
			Offset: l.tok.offset,
			Line:   l.tok.line,
			Column: l.tok.column,
			Err:    errTokenTooLarge,
		}
	}
	return nil
}

// scanContent captures character data up to the next '<' or '&'.
func (l *Lexer) scanContent() Text {
	b := &l.buf
	b.begin()
	for {
		if i := strings.IndexAny(b.cur[b.pos:], "<&"); i >= 0 {
			b.pos += i
			return b.end()
		}
		b.pos = len(b.cur)
		if !b.more() {
			return b.end()
		}
	}
}

// scanName captures a run of name bytes. The caller has checked the first.
func (l *Lexer) scanName() Text {
	b := &l.buf
	b.begin()
	for {
		b.pos = xmllex.NameEnd(b.cur, b.pos)
		if b.pos < len(b.cur) || !b.more() {
			return b.end()
		}
	}
}

// skipSpace consumes whitespace. It reports whether any was skipped and
// whether a byte is available afterwards.
func (l *Lexer) skipSpace() (bool, bool) {
	b := &l.buf
	saw := false
	for {
		if i := xmllex.WhitespaceEnd(b.cur, b.pos); i > b.pos {
			saw = true
			b.pos = i
		}
		if b.pos < len(b.cur) {
			return saw, true
		}
		if !b.more() {
			return saw, false
		}
	}
}

// expect consumes lit, which may be split across chunks.
func (l *Lexer) expect(lit, in string) error {
	b := &l.buf
	for i := 0; i < len(lit); i++ {
		c, ok := b.peek()
		if !ok {
			return l.eofError(in)
		}
		if c != lit[i] {
			if in == inPI {
				return l.syntaxError(errInvalidPI)
			}
			return l.syntaxError(errInvalidDecl)
		}
		b.pos++
	}
	return nil
}

func (l *Lexer) scanAttrValue() (Text, error) {
	b := &l.buf
	stops := `"<`
	if l.quote == '\'' {
		stops = `'<`
	}
	b.begin()
	for {
		if i := strings.IndexAny(b.cur[b.pos:], stops); i >= 0 {
			b.pos += i
			if b.cur[b.pos] == '<' {
				b.capturing = false
				return nil, l.syntaxError(errLessThanInAttr)
			}
			value := b.end()
			b.pos++
			return value, nil
		}
		b.pos = len(b.cur)
		if !b.more() {
			b.capturing = false
			return nil, l.eofError(inAttrValue)
		}
	}
}

// scanUntil captures text up to delim and consumes delim. The delimiter
// may be split across any number of chunks.
func (l *Lexer) scanUntil(delim string) (Text, bool) {
	b := &l.buf
	b.begin()
	matched := 0
	for {
		for matched > 0 && b.pos < len(b.cur) {
			matched = advanceMatch(delim, matched, b.cur[b.pos])
			b.pos++
			if matched == len(delim) {
				return b.endTrim(len(delim)), true
			}
		}
		if b.pos < len(b.cur) {
			rest := b.cur[b.pos:]
			if i := strings.Index(rest, delim); i >= 0 {
				b.pos += i + len(delim)
				return b.endTrim(len(delim)), true
			}
			for j := max(len(rest)-len(delim)+1, 0); j < len(rest); j++ {
				matched = advanceMatch(delim, matched, rest[j])
			}
			b.pos = len(b.cur)
		}
		if !b.more() {
			b.capturing = false
			return nil, false
		}
	}
}

// advanceMatch extends a partial match of delim by c and returns the new
// matched length.
func advanceMatch(delim string, matched int, c byte) int {
	for {
		if delim[matched] == c {
			return matched + 1
		}
		if matched == 0 {
			return 0
		}
		matched = border(delim, matched)
	}
}

// border returns the length of the longest proper prefix of delim[:n]
// that is also a suffix of it.
func border(delim string, n int) int {
	for k := n - 1; k > 0; k-- {
		if delim[:k] == delim[n-k:n] {
			return k
		}
	}
	return 0
}

// scanDoctype captures the doctype body up to the '>' that closes it.
// Quoted literals, the bracketed internal subset and the comments and
// processing instructions inside it may all contain '>'.
func (l *Lexer) scanDoctype() error {
	b := &l.buf
	b.begin()
	var quote byte
	depth := 0
	closer := ""
	closeMatched := 0
	commentMatched := 0
	piMatched := 0
	for {
		c, ok := b.peek()
		if !ok {
			b.capturing = false
			return l.eofError(inDoctype)
		}
		switch {
		case closer != "":
			if closeMatched = advanceMatch(closer, closeMatched, c); closeMatched == len(closer) {
				closer = ""
				closeMatched = 0
			}
		case quote != 0:
			if c == quote {
				quote = 0
			}
		default:
			if depth > 0 {
				commentMatched = advanceMatch(commentOpen, commentMatched, c)
				piMatched = advanceMatch(piOpen, piMatched, c)
				if commentMatched == len(commentOpen) {
					closer = commentClose
				} else if piMatched == len(piOpen) {
					closer = piClose
				}
				if closer != "" {
					commentMatched = 0
					piMatched = 0
					break
				}
			}
			switch c {
			case '"', '\'':
				quote = c
				commentMatched = 0
				piMatched = 0
			case '[':
				depth++
			case ']':
				if depth > 0 {
					depth--
				}
			case '>':
				if depth == 0 {
					body := b.end()
					b.pos++
					return l.finishDoctype(body)
				}
			}
		}
		b.pos++
	}
}

func (l *Lexer) finishDoctype(body Text) error {
	n := 0
	for _, sp := range body {
		s := sp.String()
		end := xmllex.NameEnd(s, 0)
		n += end
		if end < len(s) {
			break
		}
	}
	if n == 0 || !xmllex.IsNameStartByte(body.ByteAt(0)) {
		return &SyntaxError{
			Offset: l.tok.offset,
			Line:   l.tok.line,
			Column: l.tok.column,
			Err:    errInvalidDoctype,
		}
	}
	start := len(l.buf.spans)
	l.buf.spans = appendPrefix(l.buf.spans, body, n)
	end := len(l.buf.spans)
	l.tok.name = l.buf.spans[start:end:end]
	l.tok.text = body
	return nil
}

// scanEntityRef captures the reference name after '&' and consumes ';'.
func (l *Lexer) scanEntityRef() (Text, error) {
	b := &l.buf
	b.begin()
	c, ok := b.peek()
	if !ok {
		return nil, l.eofError(inEntityRef)
	}
	switch {
	case c == '#':
		b.pos++
		base := 10
		if c, ok = b.peek(); ok && c == 'x' {
			base = 16
			b.pos++
		}
		digits := 0
		for {
			if c, ok = b.peek(); !ok {
				return nil, l.eofError(inEntityRef)
			}
			if _, isDigit := digitValue(c, base); !isDigit {
				break
			}
			b.pos++
			digits++
		}
		if digits == 0 {
			return nil, l.syntaxError(errInvalidCharRef)
		}
	case xmllex.IsNameStartByte(c):
		for {
			b.pos = xmllex.NameEnd(b.cur, b.pos)
			if b.pos < len(b.cur) || !b.more() {
				break
			}
		}
	default:
		return nil, l.syntaxError(errInvalidEntity)
	}
	if c, ok = b.peek(); !ok {
		return nil, l.eofError(inEntityRef)
	}
	if c != ';' {
		return nil, l.syntaxError(errInvalidEntity)
	}
	name := b.end()
	b.pos++
	return name, nil
}

// position records the location of the next unread byte for errors that
// are detected after the offending text has been consumed.
type position struct {
	span   Span
	offset int64
	line   int
	column int
}

func (l *Lexer) position() position {
	line, column := l.buf.location()
	return position{span: l.buf.here(), offset: l.buf.offset(), line: line, column: column}
}

func (p position) wrap(err error) error {
	return &SyntaxError{Span: p.span, Offset: p.offset, Line: p.line, Column: p.column, Err: err}
}

func (l *Lexer) syntaxError(err error) error {
	return l.position().wrap(err)
}

func (l *Lexer) eofError(in string) error {
	if l.buf.err != nil {
		return l.sourceError()
	}
	return l.position().wrap(fmt.Errorf("%w in %s", ErrUnexpectedEOF, in))
}

func (l *Lexer) sourceError() error {
	return &SourceError{Offset: l.buf.offset(), Err: l.buf.err}
}
