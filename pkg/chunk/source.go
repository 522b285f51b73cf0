package chunk

import (
	"context"
	"errors"
	"io"
)

// Source produces the next chunk of decoded text.
// It returns io.EOF once the input is exhausted and never returns an empty
// chunk together with a nil error.
type Source interface {
	Next() (string, error)
}

// Func adapts a function to the Source interface.
type Func func() (string, error)

// Next calls f.
func (f Func) Next() (string, error) {
	return f()
}

var errNilChannel = errors.New("nil chunk channel")

// SliceSource yields chunks from an in-memory slice.
type SliceSource struct {
	chunks []string
	next   int
}

// Strings returns a Source over the given chunks. Empty strings are skipped.
func Strings(chunks ...string) *SliceSource {
	return &SliceSource{chunks: chunks}
}

// FromSlice returns a Source over chunks without copying the slice.
func FromSlice(chunks []string) *SliceSource {
	return &SliceSource{chunks: chunks}
}

// Next returns the next non-empty chunk.
func (s *SliceSource) Next() (string, error) {
	if s == nil {
		return "", io.EOF
	}
	for s.next < len(s.chunks) {
		c := s.chunks[s.next]
		s.next++
		if c != "" {
			return c, nil
		}
	}
	return "", io.EOF
}

// Split cuts s into chunks of at most size bytes. Size 1 yields one chunk
// per byte. A non-positive size returns s as a single chunk.
func Split(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size <= 0 || size >= len(s) {
		return []string{s}
	}
	out := make([]string, 0, (len(s)+size-1)/size)
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	return append(out, s)
}

type chanSource struct {
	ctx context.Context
	ch  <-chan string
}

// FromChan returns a Source fed by a channel. A closed channel ends the
// input; a cancelled context makes Next return ctx.Err().
func FromChan(ctx context.Context, ch <-chan string) Source {
	if ctx == nil {
		ctx = context.Background()
	}
	return &chanSource{ctx: ctx, ch: ch}
}

func (s *chanSource) Next() (string, error) {
	if s.ch == nil {
		return "", errNilChannel
	}
	for {
		select {
		case <-s.ctx.Done():
			return "", s.ctx.Err()
		case c, ok := <-s.ch:
			if !ok {
				return "", io.EOF
			}
			if c != "" {
				return c, nil
			}
		}
	}
}
