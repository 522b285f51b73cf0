package xmllex

// Common XML namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Reserved prefixes.
const (
	XMLPrefix   = "xml"
	XMLNSPrefix = "xmlns"
)

// SplitQName splits a lexical QName at its first colon.
// Names without a colon return an empty prefix and hasPrefix false.
func SplitQName(name []byte) (prefix, local []byte, hasPrefix bool) {
	for i, b := range name {
		if b == ':' {
			return name[:i], name[i+1:], true
		}
	}
	return nil, name, false
}

// IsNamespaceDecl reports whether name is xmlns or xmlns:prefix.
// For prefixed declarations the declared prefix is returned.
func IsNamespaceDecl(name []byte) (prefix []byte, ok bool) {
	p, local, hasPrefix := SplitQName(name)
	if !hasPrefix {
		return nil, string(local) == XMLNSPrefix
	}
	if string(p) != XMLNSPrefix {
		return nil, false
	}
	return local, true
}
