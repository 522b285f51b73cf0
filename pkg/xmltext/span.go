package xmltext

import (
	"strings"

	"github.com/jacoelho/minim/internal/xmllex"
)

// Span references the bytes [Start, End) of one chunk without copying.
type Span struct {
	chunk string
	Start int
	End   int
}

func makeSpan(chunk string, start, end int) Span {
	return Span{chunk: chunk, Start: start, End: end}
}

// Len reports the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns a view of the spanned text. It shares memory with the chunk.
func (s Span) String() string {
	return s.chunk[s.Start:s.End]
}

// Chunk returns the chunk the span points into.
func (s Span) Chunk() string {
	return s.chunk
}

// Text is the text of a token as an ordered list of spans, one per chunk
// the text was read from.
type Text []Span

// Len reports the total length of the text in bytes.
func (t Text) Len() int {
	n := 0
	for _, s := range t {
		n += s.End - s.Start
	}
	return n
}

// IsEmpty reports whether the text has no bytes.
func (t Text) IsEmpty() bool {
	for _, s := range t {
		if s.End > s.Start {
			return false
		}
	}
	return true
}

// Spans returns the underlying spans.
func (t Text) Spans() []Span {
	return t
}

// String returns a newly allocated copy of the text.
func (t Text) String() string {
	switch len(t) {
	case 0:
		return ""
	case 1:
		return strings.Clone(t[0].String())
	}
	var sb strings.Builder
	sb.Grow(t.Len())
	for _, s := range t {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// AppendTo appends the text to dst and returns the extended slice.
func (t Text) AppendTo(dst []byte) []byte {
	for _, s := range t {
		dst = append(dst, s.String()...)
	}
	return dst
}

// ByteAt returns the byte at index i. It panics if i is out of range.
func (t Text) ByteAt(i int) byte {
	for _, s := range t {
		n := s.End - s.Start
		if i < n {
			return s.chunk[s.Start+i]
		}
		i -= n
	}
	panic("xmltext: text index out of range")
}

// IndexByte returns the index of the first c in the text, or -1.
func (t Text) IndexByte(c byte) int {
	base := 0
	for _, s := range t {
		if i := strings.IndexByte(s.String(), c); i >= 0 {
			return base + i
		}
		base += s.End - s.Start
	}
	return -1
}

// Equal reports whether the text equals s.
func (t Text) Equal(s string) bool {
	if t.Len() != len(s) {
		return false
	}
	return t.HasPrefix(s)
}

// HasPrefix reports whether the text begins with s.
func (t Text) HasPrefix(s string) bool {
	for _, sp := range t {
		if s == "" {
			return true
		}
		part := sp.String()
		if len(part) >= len(s) {
			return part[:len(s)] == s
		}
		if s[:len(part)] != part {
			return false
		}
		s = s[len(part):]
	}
	return s == ""
}

// EqualText reports whether two texts hold the same bytes, regardless of
// how each is split into spans.
func (t Text) EqualText(o Text) bool {
	if t.Len() != o.Len() {
		return false
	}
	var a, b string
	i, j := 0, 0
	for {
		for a == "" && i < len(t) {
			a = t[i].String()
			i++
		}
		for b == "" && j < len(o) {
			b = o[j].String()
			j++
		}
		if a == "" || b == "" {
			return a == b
		}
		n := min(len(a), len(b))
		if a[:n] != b[:n] {
			return false
		}
		a, b = a[n:], b[n:]
	}
}

// IsWhitespace reports whether the text consists only of XML whitespace.
func (t Text) IsWhitespace() bool {
	for _, s := range t {
		str := s.String()
		if xmllex.WhitespaceEnd(str, 0) != len(str) {
			return false
		}
	}
	return true
}

// appendPrefix appends to dst the spans covering the first n bytes of t.
func appendPrefix(dst []Span, t Text, n int) []Span {
	for _, s := range t {
		if n <= 0 {
			break
		}
		if l := s.End - s.Start; l > n {
			s.End = s.Start + n
		}
		n -= s.End - s.Start
		dst = append(dst, s)
	}
	return dst
}
