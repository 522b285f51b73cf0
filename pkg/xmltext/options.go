package xmltext

// Options holds lexer configuration values.
// The zero value means no overrides.
type Options struct {
	entityMap            map[string]string
	maxTokenSize         int
	maxAttrs             int
	trackLineColumn      bool
	rejectDuplicateAttrs bool

	entityMapSet            bool
	maxTokenSizeSet         bool
	maxAttrsSet             bool
	trackLineColumnSet      bool
	rejectDuplicateAttrsSet bool
}

// JoinOptions combines multiple option sets into one in declaration order.
// Later options override earlier ones when set.
func JoinOptions(srcs ...Options) Options {
	var merged Options
	for _, src := range srcs {
		merged.merge(src)
	}
	return merged
}

func (opts *Options) merge(src Options) {
	if src.entityMapSet {
		opts.entityMap = src.entityMap
		opts.entityMapSet = true
	}
	if src.maxTokenSizeSet {
		opts.maxTokenSize = src.maxTokenSize
		opts.maxTokenSizeSet = true
	}
	if src.maxAttrsSet {
		opts.maxAttrs = src.maxAttrs
		opts.maxAttrsSet = true
	}
	if src.trackLineColumnSet {
		opts.trackLineColumn = src.trackLineColumn
		opts.trackLineColumnSet = true
	}
	if src.rejectDuplicateAttrsSet {
		opts.rejectDuplicateAttrs = src.rejectDuplicateAttrs
		opts.rejectDuplicateAttrsSet = true
	}
}

// WithEntityMap configures custom named entity replacements used by
// ResolveEntity and Unescape.
func WithEntityMap(values map[string]string) Options {
	if values == nil {
		return Options{entityMapSet: true}
	}
	copyMap := make(map[string]string, len(values))
	for key, value := range values {
		copyMap[key] = value
	}
	return Options{entityMap: copyMap, entityMapSet: true}
}

// MaxTokenSize limits the text size of a single token in bytes.
// Tokens exactly MaxTokenSize bytes long are allowed. Zero means no limit.
func MaxTokenSize(value int) Options {
	return Options{maxTokenSize: value, maxTokenSizeSet: true}
}

// MaxAttrs limits the number of attributes on a tag. Zero means no limit.
func MaxAttrs(value int) Options {
	return Options{maxAttrs: value, maxAttrsSet: true}
}

// TrackLineColumn controls whether tokens and errors carry line and column.
// Tracking is enabled by default.
func TrackLineColumn(value bool) Options {
	return Options{trackLineColumn: value, trackLineColumnSet: true}
}

// RejectDuplicateAttrs makes a repeated attribute name on one tag a
// malformed-markup error. By default duplicates pass through.
func RejectDuplicateAttrs(value bool) Options {
	return Options{rejectDuplicateAttrs: value, rejectDuplicateAttrsSet: true}
}

// EntityMap returns the configured entity map and whether it was set.
func (opts Options) EntityMap() (map[string]string, bool) {
	return opts.entityMap, opts.entityMapSet
}

// MaxTokenSize returns the configured token size limit and whether it was set.
func (opts Options) MaxTokenSize() (int, bool) {
	return opts.maxTokenSize, opts.maxTokenSizeSet
}

// MaxAttrs returns the configured attribute limit and whether it was set.
func (opts Options) MaxAttrs() (int, bool) {
	return opts.maxAttrs, opts.maxAttrsSet
}

// TrackLineColumn returns the line tracking setting and whether it was set.
func (opts Options) TrackLineColumn() (bool, bool) {
	return opts.trackLineColumn, opts.trackLineColumnSet
}

// RejectDuplicateAttrs returns the duplicate policy and whether it was set.
func (opts Options) RejectDuplicateAttrs() (bool, bool) {
	return opts.rejectDuplicateAttrs, opts.rejectDuplicateAttrsSet
}

type lexerOptions struct {
	entityMap            map[string]string
	maxTokenSize         int
	maxAttrs             int
	trackLineColumn      bool
	rejectDuplicateAttrs bool
}

func resolveOptions(opts Options) lexerOptions {
	resolved := lexerOptions{trackLineColumn: true}
	if value, ok := opts.EntityMap(); ok {
		resolved.entityMap = value
	}
	if value, ok := opts.MaxTokenSize(); ok {
		resolved.maxTokenSize = normalizeLimit(value)
	}
	if value, ok := opts.MaxAttrs(); ok {
		resolved.maxAttrs = normalizeLimit(value)
	}
	if value, ok := opts.TrackLineColumn(); ok {
		resolved.trackLineColumn = value
	}
	if value, ok := opts.RejectDuplicateAttrs(); ok {
		resolved.rejectDuplicateAttrs = value
	}
	return resolved
}

func normalizeLimit(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
