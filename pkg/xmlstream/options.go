package xmlstream

const (
	defaultMaxDeclNameLength     = 512
	defaultMaxNamespaceURILength = 2048
)

// Option configures a Reader. The zero value means no overrides.
type Option struct {
	qnameCacheSize           int
	maxDeclNameLength        int
	maxNamespaceURILength    int
	resolveNamespaces        bool
	qnameCacheSizeSet        bool
	maxDeclNameLengthSet     bool
	maxNamespaceURILengthSet bool
	resolveNamespacesSet     bool
}

// QNameCacheSize limits the number of interned qualified names. When the
// limit is reached the cache keeps only its most recent entries. Zero means
// no limit.
func QNameCacheSize(value int) Option {
	return Option{qnameCacheSize: value, qnameCacheSizeSet: true}
}

// MaxDeclNameLength limits the length in bytes of a namespace declaration
// attribute name such as xmlns:p. Zero means no limit; the default is 512.
func MaxDeclNameLength(value int) Option {
	return Option{maxDeclNameLength: value, maxDeclNameLengthSet: true}
}

// MaxNamespaceURILength limits the raw length in bytes of a declared
// namespace name. Zero means no limit; the default is 2048.
func MaxNamespaceURILength(value int) Option {
	return Option{maxNamespaceURILength: value, maxNamespaceURILengthSet: true}
}

// ResolveNamespaces turns prefix resolution on or off. It is on by default.
// When off, tag and attribute names are reported lexically with an empty
// namespace and the full name, including any prefix, as the local part;
// declarations are ordinary attributes and end tags are not matched.
func ResolveNamespaces(value bool) Option {
	return Option{resolveNamespaces: value, resolveNamespacesSet: true}
}

// QNameCacheSize returns the configured cache size and whether it was set.
func (o Option) QNameCacheSize() (int, bool) {
	return o.qnameCacheSize, o.qnameCacheSizeSet
}

// MaxDeclNameLength returns the declaration name limit and whether it was
// set.
func (o Option) MaxDeclNameLength() (int, bool) {
	return o.maxDeclNameLength, o.maxDeclNameLengthSet
}

// MaxNamespaceURILength returns the namespace name limit and whether it was
// set.
func (o Option) MaxNamespaceURILength() (int, bool) {
	return o.maxNamespaceURILength, o.maxNamespaceURILengthSet
}

// ResolveNamespaces returns the resolution setting and whether it was set.
func (o Option) ResolveNamespaces() (bool, bool) {
	return o.resolveNamespaces, o.resolveNamespacesSet
}

// JoinOptions merges options in order; later options override earlier ones.
func JoinOptions(opts ...Option) Option {
	var merged Option
	for _, opt := range opts {
		if opt.qnameCacheSizeSet {
			merged.qnameCacheSize = opt.qnameCacheSize
			merged.qnameCacheSizeSet = true
		}
		if opt.maxDeclNameLengthSet {
			merged.maxDeclNameLength = opt.maxDeclNameLength
			merged.maxDeclNameLengthSet = true
		}
		if opt.maxNamespaceURILengthSet {
			merged.maxNamespaceURILength = opt.maxNamespaceURILength
			merged.maxNamespaceURILengthSet = true
		}
		if opt.resolveNamespacesSet {
			merged.resolveNamespaces = opt.resolveNamespaces
			merged.resolveNamespacesSet = true
		}
	}
	return merged
}

type readerOptions struct {
	qnameCacheSize        int
	maxDeclNameLength     int
	maxNamespaceURILength int
	lexical               bool
}

func resolveOptions(opts Option) readerOptions {
	resolved := readerOptions{
		qnameCacheSize:        qnameCacheLimit(opts),
		maxDeclNameLength:     defaultMaxDeclNameLength,
		maxNamespaceURILength: defaultMaxNamespaceURILength,
	}
	if value, ok := opts.MaxDeclNameLength(); ok {
		resolved.maxDeclNameLength = max(value, 0)
	}
	if value, ok := opts.MaxNamespaceURILength(); ok {
		resolved.maxNamespaceURILength = max(value, 0)
	}
	if value, ok := opts.ResolveNamespaces(); ok {
		resolved.lexical = !value
	}
	return resolved
}

func qnameCacheLimit(opts Option) int {
	if value, ok := opts.QNameCacheSize(); ok {
		return max(value, 0)
	}
	return qnameCacheMaxEntries
}
