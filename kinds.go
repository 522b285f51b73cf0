package minim

import "github.com/jacoelho/minim/pkg/xmltext"

// Kind identifies the syntactic kind of a token.
type Kind = xmltext.Kind

// Token kinds.
const (
	KindNone                  = xmltext.KindNone
	KindStartTag              = xmltext.KindStartTag
	KindEndTag                = xmltext.KindEndTag
	KindEmptyElementTag       = xmltext.KindEmptyElementTag
	KindContent               = xmltext.KindContent
	KindComment               = xmltext.KindComment
	KindProcessingInstruction = xmltext.KindProcessingInstruction
	KindCData                 = xmltext.KindCData
	KindDocType               = xmltext.KindDocType
	KindEntityRef             = xmltext.KindEntityRef
	KindEndOfStream           = xmltext.KindEndOfStream
)

// KindCounts is a histogram of token kinds.
type KindCounts [KindEndOfStream + 1]int

// Tags reports the number of start and empty-element tags.
func (c KindCounts) Tags() int {
	return c[KindStartTag] + c[KindEmptyElementTag]
}

// Total reports the number of tokens, excluding the end of stream.
func (c KindCounts) Total() int {
	n := 0
	for k, v := range c {
		if Kind(k) != KindEndOfStream {
			n += v
		}
	}
	return n
}
