package xmllex

import "testing"

func TestNameBytes(t *testing.T) {
	tests := []struct {
		b     byte
		start bool
		name  bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'_', true, true},
		{':', true, true},
		{'1', false, true},
		{'-', false, true},
		{'.', false, true},
		{' ', false, false},
		{'>', false, false},
		{'/', false, false},
		{0xC3, true, true},
	}
	for _, tt := range tests {
		if got := IsNameStartByte(tt.b); got != tt.start {
			t.Fatalf("IsNameStartByte(%q) = %v, want %v", tt.b, got, tt.start)
		}
		if got := IsNameByte(tt.b); got != tt.name {
			t.Fatalf("IsNameByte(%q) = %v, want %v", tt.b, got, tt.name)
		}
	}
}

func TestNameEndAndWhitespaceEnd(t *testing.T) {
	if got := NameEnd("abc d", 0); got != 3 {
		t.Fatalf("NameEnd = %d, want 3", got)
	}
	if got := NameEnd("a:b-c.1>", 0); got != 7 {
		t.Fatalf("NameEnd = %d, want 7", got)
	}
	if got := WhitespaceEnd(" \t\r\nx", 0); got != 4 {
		t.Fatalf("WhitespaceEnd = %d, want 4", got)
	}
	if got := WhitespaceEnd("x", 0); got != 0 {
		t.Fatalf("WhitespaceEnd = %d, want 0", got)
	}
}

func TestSplitQName(t *testing.T) {
	prefix, local, ok := SplitQName([]byte("p:b"))
	if !ok || string(prefix) != "p" || string(local) != "b" {
		t.Fatalf("SplitQName(p:b) = %q %q %v", prefix, local, ok)
	}
	prefix, local, ok = SplitQName([]byte("b"))
	if ok || prefix != nil || string(local) != "b" {
		t.Fatalf("SplitQName(b) = %q %q %v", prefix, local, ok)
	}
}

func TestIsNamespaceDecl(t *testing.T) {
	if prefix, ok := IsNamespaceDecl([]byte("xmlns")); !ok || prefix != nil {
		t.Fatalf("xmlns = %q %v, want default declaration", prefix, ok)
	}
	if prefix, ok := IsNamespaceDecl([]byte("xmlns:p")); !ok || string(prefix) != "p" {
		t.Fatalf("xmlns:p = %q %v, want p", prefix, ok)
	}
	if _, ok := IsNamespaceDecl([]byte("xmlnsx")); ok {
		t.Fatalf("xmlnsx reported as declaration")
	}
	if _, ok := IsNamespaceDecl([]byte("a:xmlns")); ok {
		t.Fatalf("a:xmlns reported as declaration")
	}
}

func TestElementStack(t *testing.T) {
	var s ElementStack
	if _, _, ok := s.Top(); ok {
		t.Fatalf("Top on empty stack reported ok")
	}
	s.Push([]byte("a"), 0)
	s.Push([]byte("p:b"), 1)
	if s.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", s.Depth())
	}
	name, frame, ok := s.Top()
	if !ok || string(name) != "p:b" || frame != 1 {
		t.Fatalf("Top = %q %d %v, want p:b 1", name, frame, ok)
	}
	s.Pop()
	name, frame, ok = s.Top()
	if !ok || string(name) != "a" || frame != 0 {
		t.Fatalf("Top after pop = %q %d %v, want a 0", name, frame, ok)
	}
	s.Reset()
	if s.Depth() != 0 {
		t.Fatalf("Depth after reset = %d, want 0", s.Depth())
	}
}
