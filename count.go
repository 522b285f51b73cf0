package minim

import "github.com/jacoelho/minim/pkg/chunk"

// CountTags drives the tokenizer to the end of the input and returns the
// number of start and empty-element tags.
func (t *Tokenizer) CountTags() (int, error) {
	counts, err := t.CountKinds()
	return counts.Tags(), err
}

// CountKinds drives the tokenizer to the end of the input and returns the
// number of tokens of each kind. On error the counts cover the tokens read
// before the failure.
func (t *Tokenizer) CountKinds() (KindCounts, error) {
	var counts KindCounts
	for {
		tok, err := t.Advance()
		if err != nil {
			return counts, err
		}
		kind := tok.Kind()
		if kind == KindEndOfStream {
			return counts, nil
		}
		counts[kind]++
	}
}

// CountTags counts the start and empty-element tags in src.
func CountTags(src chunk.Source, opts ...Option) (int, error) {
	return NewTokenizer(src, opts...).CountTags()
}
