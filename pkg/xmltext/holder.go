package xmltext

import "unsafe"

// TextHolder is a reusable buffer that materializes token text.
//
// Each Set overwrites the previous content in place and only grows the
// buffer when the new text does not fit. Strings returned by Set, Append
// and String alias the buffer: they are valid until the next write to the
// holder and must be copied to be kept. A TextHolder must not be shared
// between goroutines.
type TextHolder struct {
	buf []byte
}

// NewTextHolder returns a holder with the given initial capacity.
func NewTextHolder(capacity int) *TextHolder {
	if capacity < 0 {
		capacity = 0
	}
	return &TextHolder{buf: make([]byte, 0, capacity)}
}

// Set replaces the holder content with t and returns a view of it.
func (h *TextHolder) Set(t Text) string {
	h.buf = t.AppendTo(h.buf[:0])
	return unsafeString(h.buf)
}

// SetString replaces the holder content with s and returns a view of it.
func (h *TextHolder) SetString(s string) string {
	h.buf = append(h.buf[:0], s...)
	return unsafeString(h.buf)
}

// Append adds t after the current content and returns a view of the whole.
func (h *TextHolder) Append(t Text) string {
	h.buf = t.AppendTo(h.buf)
	return unsafeString(h.buf)
}

// String returns a view of the current content.
func (h *TextHolder) String() string {
	if h == nil {
		return ""
	}
	return unsafeString(h.buf)
}

// Bytes returns the current content. The slice aliases the holder.
func (h *TextHolder) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h.buf
}

// Len reports the content length in bytes.
func (h *TextHolder) Len() int {
	if h == nil {
		return 0
	}
	return len(h.buf)
}

// Cap reports the capacity of the backing buffer.
func (h *TextHolder) Cap() int {
	if h == nil {
		return 0
	}
	return cap(h.buf)
}

// Reset empties the holder and keeps its capacity.
func (h *TextHolder) Reset() {
	h.buf = h.buf[:0]
}

func unsafeString(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(data), len(data))
}
