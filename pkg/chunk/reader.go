package chunk

import (
	"errors"
	"io"
	"unicode/utf8"
)

// DefaultSize is the chunk size used by NewReader when size is not positive.
const DefaultSize = 32 * 1024

var errNilReader = errors.New("nil chunk reader")

// Reader reads fixed-size chunks from an io.Reader holding UTF-8 text.
// A multi-byte sequence is never split across two chunks: incomplete
// trailing bytes are carried over and prefixed to the next chunk.
type Reader struct {
	r     io.Reader
	buf   []byte
	carry int
	err   error
}

// NewReader returns a Source reading chunks of at most size bytes from r.
func NewReader(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultSize
	}
	if size < utf8.UTFMax {
		size = utf8.UTFMax
	}
	return &Reader{r: r, buf: make([]byte, size)}
}

// Next returns the next chunk, or io.EOF when the reader is drained.
func (c *Reader) Next() (string, error) {
	if c == nil || c.r == nil {
		return "", errNilReader
	}
	for {
		if c.err != nil {
			if c.carry > 0 {
				// flush a truncated sequence as-is at end of input.
				out := string(c.buf[:c.carry])
				c.carry = 0
				return out, nil
			}
			return "", c.err
		}
		n, err := c.r.Read(c.buf[c.carry:])
		if err != nil {
			c.err = err
		}
		n += c.carry
		c.carry = 0
		if n == 0 {
			continue
		}
		end := completeRunes(c.buf[:n])
		if end == 0 && c.err == nil && n < len(c.buf) {
			c.carry = n
			continue
		}
		if end == 0 {
			end = n
		}
		out := string(c.buf[:end])
		c.carry = copy(c.buf, c.buf[end:n])
		return out, nil
	}
}

// completeRunes returns the length of the longest prefix of data that does
// not end inside a multi-byte UTF-8 sequence.
func completeRunes(data []byte) int {
	n := len(data)
	// a sequence is at most UTFMax bytes; only the tail can be incomplete.
	for i := n - 1; i >= 0 && i >= n-utf8.UTFMax; i-- {
		b := data[i]
		if b < utf8.RuneSelf {
			return n
		}
		if utf8.RuneStart(b) {
			if utf8.FullRune(data[i:]) {
				return n
			}
			return i
		}
	}
	return n
}
