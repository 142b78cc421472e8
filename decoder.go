package edn

import (
	"github.com/chaisql/edn/internal/parser"
	"github.com/chaisql/edn/types"
)

// A Decoder reads successive top-level forms from a text.
// A Decoder must not be used concurrently.
type Decoder struct {
	p   *parser.Parser
	err error
}

// NewDecoder returns a decoder reading text.
// If opts is nil, default options are used.
func NewDecoder(text string, opts *Options) *Decoder {
	if opts == nil {
		opts = defaultOptions()
	}

	var d Decoder
	if err := opts.checkSize(len(text)); err != nil {
		d.err = err
		return &d
	}

	d.p = parser.NewParser(text, opts.parserOptions())
	return &d
}

// Decode returns the next top-level form. It returns io.EOF when only
// whitespace and comments remain. Once an error is returned, every
// following call returns it again.
func (d *Decoder) Decode() (types.Value, error) {
	if d.err != nil {
		return nil, d.err
	}

	v, err := d.p.ParseValue()
	if err != nil {
		d.err = err
		return nil, err
	}
	return v, nil
}

// Offset returns the offset in bytes of the text that hasn't been
// consumed yet.
func (d *Decoder) Offset() int {
	if d.p == nil {
		return 0
	}
	return d.p.Offset()
}
