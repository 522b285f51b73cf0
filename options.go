package minim

import (
	"github.com/jacoelho/minim/pkg/xmlstream"
	"github.com/jacoelho/minim/pkg/xmltext"
)

const defaultHolderCapacity = 256

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(fallback int) int {
	if !o.set || o.value < 0 {
		return fallback
	}
	return o.value
}

type boolOption struct {
	value bool
	set   bool
}

// Option configures a Tokenizer. The zero value means no overrides.
type Option struct {
	lexer          []xmltext.Options
	namespace      []xmlstream.Option
	holderCapacity intOption
	namespaces     boolOption
}

// EnableNamespaces turns the namespace layer on or off. It is off by
// default.
func EnableNamespaces(value bool) Option {
	return Option{namespaces: boolOption{value: value, set: true}}
}

// InitialHolderCapacity sets the initial capacity in bytes of the
// tokenizer-owned TextHolder.
func InitialHolderCapacity(value int) Option {
	return Option{holderCapacity: intOption{value: value, set: true}}
}

// LexerOptions passes options to the underlying lexer.
func LexerOptions(opts ...xmltext.Options) Option {
	return Option{lexer: opts}
}

// NamespaceOptions passes options to the namespace layer.
func NamespaceOptions(opts ...xmlstream.Option) Option {
	return Option{namespace: opts}
}

// JoinOptions merges options in order. Scalar settings from later options
// override earlier ones; lexer and namespace options accumulate.
func JoinOptions(opts ...Option) Option {
	var merged Option
	for _, opt := range opts {
		merged.lexer = append(merged.lexer, opt.lexer...)
		merged.namespace = append(merged.namespace, opt.namespace...)
		if opt.holderCapacity.set {
			merged.holderCapacity = opt.holderCapacity
		}
		if opt.namespaces.set {
			merged.namespaces = opt.namespaces
		}
	}
	return merged
}

// Namespaces returns the namespace setting and whether it was set.
func (o Option) Namespaces() (bool, bool) {
	return o.namespaces.value, o.namespaces.set
}

// HolderCapacity returns the holder capacity and whether it was set.
func (o Option) HolderCapacity() (int, bool) {
	return o.holderCapacity.value, o.holderCapacity.set
}

type resolvedOptions struct {
	lexer          xmltext.Options
	namespace      xmlstream.Option
	holderCapacity int
	namespaces     bool
}

func resolveOptions(opts ...Option) resolvedOptions {
	merged := JoinOptions(opts...)
	return resolvedOptions{
		lexer:          xmltext.JoinOptions(merged.lexer...),
		namespace:      xmlstream.JoinOptions(merged.namespace...),
		holderCapacity: merged.holderCapacity.resolved(defaultHolderCapacity),
		namespaces:     merged.namespaces.value,
	}
}
