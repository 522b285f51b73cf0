// Package chunk supplies decoded text to the tokenizer one chunk at a time.
// A Source returns non-empty chunks until it reports io.EOF.
package chunk
