// Package minim is a streaming tokenizer for XML-like markup.
//
// A Tokenizer pulls text chunks from a chunk.Source and returns one token
// per Advance call. Tokens reference their text in the source chunks and
// never copy it; text is materialized on request, either as a new string
// (TextOf) or into a reusable TextHolder (TextInto). Namespace resolution
// is an optional layer enabled with EnableNamespaces.
//
// The lower level packages are usable on their own: pkg/chunk supplies
// chunk sources, pkg/xmltext is the lexer and pkg/xmlstream the namespace
// layer.
package minim
