// Package xmltext tokenizes XML-like markup from a stream of text chunks.
//
// A Lexer pulls chunks from a chunk.Source and returns one Token per
// Advance call. Tokens describe their text with Spans over the original
// chunks instead of copies; text that crosses a chunk boundary is carried
// as one Span per chunk. Text is materialized only on request, either into
// a new string (TextOf) or into a reusable TextHolder (TextInto).
//
// Token slices are owned by the Lexer and are valid until the next Advance.
// Use Token.Clone or a TextHolder to keep data longer.
package xmltext
