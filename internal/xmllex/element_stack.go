package xmllex

// ElementStack records open element names and the namespace frame pushed
// for each of them. Names are copied into a shared byte arena so entries
// stay valid after the token that produced them is gone.
type ElementStack struct {
	names   []byte
	entries []elementEntry
}

type elementEntry struct {
	start int
	end   int
	frame int
}

// Push records an open element.
func (s *ElementStack) Push(name []byte, frame int) {
	start := len(s.names)
	s.names = append(s.names, name...)
	s.entries = append(s.entries, elementEntry{start: start, end: len(s.names), frame: frame})
}

// Depth reports the number of open elements.
func (s *ElementStack) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Top returns the innermost open element name and frame.
func (s *ElementStack) Top() (name []byte, frame int, ok bool) {
	if s == nil || len(s.entries) == 0 {
		return nil, 0, false
	}
	e := s.entries[len(s.entries)-1]
	return s.names[e.start:e.end], e.frame, true
}

// Pop removes the innermost open element.
func (s *ElementStack) Pop() {
	if s == nil || len(s.entries) == 0 {
		return
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.names = s.names[:e.start]
}

// Reset clears the stack and keeps its storage.
func (s *ElementStack) Reset() {
	s.names = s.names[:0]
	s.entries = s.entries[:0]
}
