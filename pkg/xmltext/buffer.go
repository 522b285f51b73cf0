package xmltext

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jacoelho/minim/pkg/chunk"
)

// buffer stitches the chunks of a Source into one logical input.
//
// Text is never copied. An open capture records spans: when the current
// chunk runs out the span is closed at the chunk end and reopened at the
// start of the next chunk, so a text crossing k chunks yields k spans.
type buffer struct {
	src  chunk.Source
	cur  string
	pos  int
	base int64

	// pending is a source error delivered together with the last chunk.
	pending error
	err     error
	eof     bool

	spans     []Span
	capStart  int
	mark      int
	capturing bool

	track     bool
	line      int
	column    int
	linePos   int
	pendingCR bool
}

func (b *buffer) reset(src chunk.Source, track bool) {
	spans := b.spans[:0]
	*b = buffer{
		src:    src,
		spans:  spans,
		track:  track,
		line:   1,
		column: 1,
	}
	if src == nil {
		b.eof = true
		b.err = errNilSource
	}
}

// more loads the next non-empty chunk. It reports false at the end of input.
func (b *buffer) more() bool {
	if b.eof {
		return false
	}
	if b.capturing && len(b.cur) > b.mark {
		b.spans = append(b.spans, makeSpan(b.cur, b.mark, len(b.cur)))
	}
	b.syncLines(len(b.cur))
	for {
		if b.pending != nil {
			b.finish(b.pending)
			return false
		}
		data, err := b.src.Next()
		if err != nil {
			if data == "" {
				b.finish(err)
				return false
			}
			b.pending = err
		}
		if data == "" {
			continue
		}
		b.base += int64(len(b.cur))
		b.cur = data
		b.pos = 0
		b.mark = 0
		b.linePos = 0
		return true
	}
}

func (b *buffer) finish(err error) {
	b.eof = true
	b.mark = b.pos
	if err != io.EOF {
		b.err = err
	}
}

// peek returns the next byte without consuming it.
func (b *buffer) peek() (byte, bool) {
	if b.pos == len(b.cur) && !b.more() {
		return 0, false
	}
	return b.cur[b.pos], true
}

// begin opens a capture at the current position.
func (b *buffer) begin() {
	b.capturing = true
	b.capStart = len(b.spans)
	b.mark = b.pos
}

// end closes the capture at the current position and returns its spans.
func (b *buffer) end() Text {
	if b.pos > b.mark {
		b.spans = append(b.spans, makeSpan(b.cur, b.mark, b.pos))
	}
	b.capturing = false
	n := len(b.spans)
	if n == b.capStart {
		return nil
	}
	return b.spans[b.capStart:n:n]
}

// endTrim closes the capture and drops its last n bytes, which hold a
// terminator that may itself have been split across chunks.
func (b *buffer) endTrim(n int) Text {
	t := b.end()
	for n > 0 && len(t) > 0 {
		last := &t[len(t)-1]
		l := last.End - last.Start
		if l > n {
			last.End -= n
			break
		}
		n -= l
		t = t[:len(t)-1]
	}
	b.spans = b.spans[:b.capStart+len(t)]
	if len(t) == 0 {
		return nil
	}
	return t[:len(t):len(t)]
}

// offset reports the absolute offset of the next unread byte.
func (b *buffer) offset() int64 {
	return b.base + int64(b.pos)
}

// here returns the span of the rune at the current position.
func (b *buffer) here() Span {
	if b.pos >= len(b.cur) {
		return makeSpan(b.cur, b.pos, b.pos)
	}
	_, size := utf8.DecodeRuneInString(b.cur[b.pos:])
	return makeSpan(b.cur, b.pos, b.pos+size)
}

// location reports the line and column of the next unread byte.
func (b *buffer) location() (int, int) {
	if !b.track {
		return 0, 0
	}
	b.syncLines(b.pos)
	return b.line, b.column
}

// syncLines advances line and column over cur[linePos:upto].
// CR, LF and CRLF each count as one line break, also when a CRLF pair is
// split between two chunks.
func (b *buffer) syncLines(upto int) {
	if !b.track || upto <= b.linePos {
		return
	}
	s := b.cur[b.linePos:upto]
	b.linePos = upto
	for {
		i := strings.IndexAny(s, "\n\r")
		if i < 0 {
			if len(s) > 0 {
				b.pendingCR = false
				b.column += len(s)
			}
			return
		}
		if i > 0 {
			b.pendingCR = false
			b.column += i
		}
		c := s[i]
		s = s[i+1:]
		if c == '\n' && b.pendingCR {
			b.pendingCR = false
			continue
		}
		b.line++
		b.column = 1
		b.pendingCR = c == '\r'
	}
}
