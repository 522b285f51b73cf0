package xmlstream_test

import (
	"fmt"

	"github.com/jacoelho/minim/pkg/chunk"
	"github.com/jacoelho/minim/pkg/xmlstream"
	"github.com/jacoelho/minim/pkg/xmltext"
)

func ExampleReader() {
	lex := xmltext.NewLexer(chunk.Strings(`<feed xmlns="urn:feed" xmlns:m="urn:meta">`, `<m:entry id="1"/></feed>`))
	r := xmlstream.NewReader(lex)
	for {
		tok, err := r.Advance()
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		switch tok.Kind() {
		case xmltext.KindEndOfStream:
			return
		case xmltext.KindStartTag, xmltext.KindEmptyElementTag:
			fmt.Println(tok.Depth(), tok.QName())
		}
	}
	// Output:
	// 1 {urn:feed}feed
	// 2 {urn:meta}entry
}
