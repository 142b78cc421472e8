package parser

import (
	"github.com/chaisql/edn/tags"
)

// Options of the parser.
type Options struct {
	// Registry used to interpret tagged literals.
	// If nil, the default registry is used.
	Tags *tags.Registry

	// MaxDepth limits how deeply collections can be nested.
	// Zero means no limit.
	MaxDepth int

	// If true, tagged literals with an unknown tag are returned as
	// a *types.TaggedValue instead of their inner value.
	KeepUnknownTags bool
}

func defaultOptions() *Options {
	return &Options{
		Tags: tags.Default(),
	}
}
