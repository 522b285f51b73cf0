package xmltext

import (
	"io"
	"strings"
	"testing"

	"github.com/jacoelho/minim/pkg/chunk"
)

type record struct {
	Name   string
	Text   string
	Attrs  string
	Offset int64
	Line   int
	Column int
	Kind   Kind
}

func (r record) shape() record {
	r.Offset, r.Line, r.Column = 0, 0, 0
	return r
}

func recordOf(tok Token) record {
	r := record{
		Kind:   tok.Kind(),
		Name:   tok.Name().String(),
		Text:   TextOf(tok),
		Offset: tok.Offset(),
		Line:   tok.Line(),
		Column: tok.Column(),
	}
	if len(tok.Attrs()) > 0 {
		var sb strings.Builder
		for i, a := range tok.Attrs() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(a.Name.String())
			sb.WriteByte('=')
			sb.WriteByte(a.Quote)
			sb.WriteString(a.Value.String())
			sb.WriteByte(a.Quote)
		}
		r.Attrs = sb.String()
	}
	return r
}

// collect drains the lexer, including the first end-of-stream token.
func collect(tb testing.TB, lex *Lexer) []record {
	tb.Helper()
	var out []record
	for {
		tok, err := lex.Advance()
		if err != nil {
			tb.Fatalf("Advance error = %v (after %d tokens)", err, len(out))
		}
		out = append(out, recordOf(tok))
		if tok.Kind() == KindEndOfStream {
			return out
		}
	}
}

func collectString(tb testing.TB, doc string, opts ...Options) []record {
	tb.Helper()
	return collect(tb, NewLexer(chunk.Strings(doc), opts...))
}

// advanceUntilError drains the lexer and returns the first error.
func advanceUntilError(tb testing.TB, lex *Lexer) error {
	tb.Helper()
	for _i := 0; _i < 1<<16; _i++ {
		tok, err := lex.Advance()
		if err != nil {
			return err
		}
		if tok.Kind() == KindEndOfStream {
			return nil
		}
	}
	tb.Fatalf("lexer did not terminate")
	return nil
}

func shapes(records []record) []record {
	out := make([]record, len(records))
	for i, r := range records {
		out[i] = r.shape()
	}
	return out
}

// rewindSource replays the same chunks after each rewind without allocating.
type rewindSource struct {
	chunks []string
	next   int
}

func (s *rewindSource) Next() (string, error) {
	if s.next >= len(s.chunks) {
		return "", io.EOF
	}
	c := s.chunks[s.next]
	s.next++
	return c, nil
}

func (s *rewindSource) rewind() {
	s.next = 0
}
