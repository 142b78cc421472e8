package edn

import (
	"io"

	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/internal/parser"
	"github.com/chaisql/edn/tags"
	"github.com/chaisql/edn/types"
)

// Options of the decoder. The zero value decodes with the default
// tag registry and no limit.
type Options struct {
	// Registry used to interpret tagged literals.
	// If nil, tags.Default() is used.
	Tags *tags.Registry

	// MaxInputSize is the maximum size of the text in bytes.
	// Zero means no limit.
	MaxInputSize int

	// MaxDepth limits how deeply collections can be nested.
	// Zero means no limit.
	MaxDepth int

	// If true, tagged literals with an unknown tag are decoded as
	// a *types.TaggedValue instead of their inner value.
	KeepUnknownTags bool
}

func defaultOptions() *Options {
	return &Options{
		Tags: tags.Default(),
	}
}

func (o *Options) parserOptions() *parser.Options {
	return &parser.Options{
		Tags:            o.Tags,
		MaxDepth:        o.MaxDepth,
		KeepUnknownTags: o.KeepUnknownTags,
	}
}

// checkSize returns an error if an input of n bytes is larger than allowed.
func (o *Options) checkSize(n int) error {
	if o.MaxInputSize > 0 && n > o.MaxInputSize {
		return errors.Malformedf("input too large: %d bytes exceeds the limit of %d bytes", n, o.MaxInputSize)
	}
	return nil
}

// Decode decodes the first top-level form of text with the default options.
// Whitespace, commas and comments are skipped. Anything following the
// first form is left unconsumed and isn't an error: use a Decoder to
// read several forms.
func Decode(text string) (types.Value, error) {
	return DecodeWithOptions(text, nil)
}

// DecodeWithOptions decodes the first top-level form of text.
// If opts is nil, default options are used.
func DecodeWithOptions(text string, opts *Options) (types.Value, error) {
	v, err := NewDecoder(text, opts).Decode()
	if err == io.EOF {
		return nil, errors.NewParseError("unexpected EOF, expected a form", "", 0, 0, len(text))
	}
	return v, err
}
