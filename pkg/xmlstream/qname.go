package xmlstream

// QName is a namespace-qualified name.
type QName struct {
	Namespace string
	Local     string
}

// String formats the name in Clark notation, {namespace}local, or as the
// bare local name when it has no namespace.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// Is reports whether q has the given namespace and local name.
func (q QName) Is(namespace, local string) bool {
	return q.Namespace == namespace && q.Local == local
}
