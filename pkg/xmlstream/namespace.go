package xmlstream

import (
	"github.com/jacoelho/minim/internal/xmllex"
)

// Common XML namespaces.
const (
	XMLNamespace   = xmllex.XMLNamespace
	XMLNSNamespace = xmllex.XMLNSNamespace
)

// NamespaceDecl is one prefix binding. An empty Prefix is the default
// namespace.
type NamespaceDecl struct {
	Prefix string
	URI    string
}

type nsScope struct {
	start int
}

// nsStack keeps declarations of all open scopes in one slice. A scope owns
// the declarations from its start to the next scope's start, so lookups
// walk from the innermost binding outwards and pushing a scope never copies
// the parent bindings.
type nsStack struct {
	scopes []nsScope
	decls  []NamespaceDecl
}

func (s *nsStack) push() int {
	s.scopes = append(s.scopes, nsScope{start: len(s.decls)})
	return len(s.scopes) - 1
}

func (s *nsStack) declare(prefix, uri string) {
	s.decls = append(s.decls, NamespaceDecl{Prefix: prefix, URI: uri})
}

// truncate closes scope n and every scope opened after it.
func (s *nsStack) truncate(n int) {
	if n < 0 || n >= len(s.scopes) {
		return
	}
	s.decls = s.decls[:s.scopes[n].start]
	s.scopes = s.scopes[:n]
}

func (s *nsStack) depth() int {
	return len(s.scopes)
}

func (s *nsStack) reset() {
	s.scopes = s.scopes[:0]
	s.decls = s.decls[:0]
}

// current returns the declarations made by the innermost scope.
func (s *nsStack) current() []NamespaceDecl {
	if len(s.scopes) == 0 {
		return nil
	}
	top := s.scopes[len(s.scopes)-1]
	return s.decls[top.start:len(s.decls):len(s.decls)]
}

// lookup resolves prefix in the innermost scope. The xml and xmlns prefixes
// are always bound; an undeclared default namespace is the empty namespace.
func (s *nsStack) lookup(prefix string) (string, bool) {
	switch prefix {
	case xmllex.XMLPrefix:
		return XMLNamespace, true
	case xmllex.XMLNSPrefix:
		return XMLNSNamespace, true
	}
	for i := len(s.decls) - 1; i >= 0; i-- {
		if s.decls[i].Prefix == prefix {
			return s.decls[i].URI, true
		}
	}
	if prefix == "" {
		return "", true
	}
	return "", false
}
