package xmltext

// Kind identifies the syntactic kind of a token.
type Kind byte

const (
	KindNone Kind = iota
	KindStartTag
	KindEndTag
	KindEmptyElementTag
	KindContent
	KindComment
	KindProcessingInstruction
	KindCData
	KindDocType
	KindEntityRef
	KindEndOfStream
)

// String returns a stable name for the kind, suitable for debugging.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindStartTag:
		return "StartTag"
	case KindEndTag:
		return "EndTag"
	case KindEmptyElementTag:
		return "EmptyElementTag"
	case KindContent:
		return "Content"
	case KindComment:
		return "Comment"
	case KindProcessingInstruction:
		return "ProcessingInstruction"
	case KindCData:
		return "CData"
	case KindDocType:
		return "DocType"
	case KindEntityRef:
		return "EntityRef"
	case KindEndOfStream:
		return "EndOfStream"
	default:
		return "Unknown"
	}
}

// IsTag reports whether the kind opens an element.
func (k Kind) IsTag() bool {
	return k == KindStartTag || k == KindEmptyElementTag
}
