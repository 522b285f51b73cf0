package xmltext

import "testing"

func textOf(parts ...string) Text {
	out := make(Text, 0, len(parts))
	for _, p := range parts {
		chunk := "##" + p + "##"
		out = append(out, makeSpan(chunk, 2, 2+len(p)))
	}
	return out
}

func TestSpanString(t *testing.T) {
	s := makeSpan("hello world", 6, 11)
	if got := s.String(); got != "world" {
		t.Fatalf("String = %q, want world", got)
	}
	if s.Len() != 5 {
		t.Fatalf("Len = %d, want 5", s.Len())
	}
	if s.Chunk() != "hello world" {
		t.Fatalf("Chunk = %q, want hello world", s.Chunk())
	}
}

func TestTextString(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want string
	}{
		{name: "nil", text: nil, want: ""},
		{name: "single", text: textOf("abc"), want: "abc"},
		{name: "multi", text: textOf("ab", "", "cd", "e"), want: "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.String(); got != tt.want {
				t.Fatalf("String = %q, want %q", got, tt.want)
			}
			if got := string(tt.text.AppendTo([]byte("x"))); got != "x"+tt.want {
				t.Fatalf("AppendTo = %q, want %q", got, "x"+tt.want)
			}
			if got := tt.text.Len(); got != len(tt.want) {
				t.Fatalf("Len = %d, want %d", got, len(tt.want))
			}
			if got := tt.text.IsEmpty(); got != (tt.want == "") {
				t.Fatalf("IsEmpty = %v, want %v", got, tt.want == "")
			}
		})
	}
}

func TestTextEqual(t *testing.T) {
	text := textOf("xm", "l", "ns:p")
	if !text.Equal("xmlns:p") {
		t.Fatalf("Equal(xmlns:p) = false, want true")
	}
	if text.Equal("xmlns") {
		t.Fatalf("Equal(xmlns) = true, want false")
	}
	if !text.HasPrefix("xmlns") {
		t.Fatalf("HasPrefix(xmlns) = false, want true")
	}
	if !text.HasPrefix("") {
		t.Fatalf("HasPrefix(\"\") = false, want true")
	}
	if text.HasPrefix("xmlx") {
		t.Fatalf("HasPrefix(xmlx) = true, want false")
	}
	if text.HasPrefix("xmlns:pq") {
		t.Fatalf("HasPrefix(xmlns:pq) = true, want false")
	}
}

func TestTextEqualText(t *testing.T) {
	tests := []struct {
		a, b Text
		want bool
	}{
		{a: textOf("abc"), b: textOf("a", "bc"), want: true},
		{a: textOf("ab", "c"), b: textOf("a", "b", "c"), want: true},
		{a: textOf("", "abc"), b: textOf("abc", ""), want: true},
		{a: textOf("abc"), b: textOf("abd"), want: false},
		{a: textOf("abc"), b: textOf("ab"), want: false},
		{a: nil, b: textOf(""), want: true},
	}
	for _, tt := range tests {
		if got := tt.a.EqualText(tt.b); got != tt.want {
			t.Fatalf("EqualText(%q, %q) = %v, want %v", tt.a.String(), tt.b.String(), got, tt.want)
		}
	}
}

func TestTextByteAtIndexByte(t *testing.T) {
	text := textOf("p", "", "re:lo", "cal")
	for i, want := range []byte("pre:local") {
		if got := text.ByteAt(i); got != want {
			t.Fatalf("ByteAt(%d) = %q, want %q", i, got, want)
		}
	}
	if got := text.IndexByte(':'); got != 3 {
		t.Fatalf("IndexByte(:) = %d, want 3", got)
	}
	if got := text.IndexByte('z'); got != -1 {
		t.Fatalf("IndexByte(z) = %d, want -1", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("ByteAt out of range did not panic")
		}
	}()
	text.ByteAt(9)
}

func TestTextIsWhitespace(t *testing.T) {
	if !textOf(" \t", "\r\n").IsWhitespace() {
		t.Fatalf("IsWhitespace = false, want true")
	}
	if textOf(" ", "x").IsWhitespace() {
		t.Fatalf("IsWhitespace = true, want false")
	}
}

func TestAppendPrefix(t *testing.T) {
	text := textOf("ab", "cd", "ef")
	for n, want := range []string{"", "a", "ab", "abc", "abcd", "abcde", "abcdef"} {
		got := Text(appendPrefix(nil, text, n))
		if got.String() != want {
			t.Fatalf("appendPrefix(%d) = %q, want %q", n, got.String(), want)
		}
	}
}
