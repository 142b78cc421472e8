// Package parser turns EDN text into values.
package parser

import (
	"fmt"
	"io"
	"math"

	"github.com/chaisql/edn/errors"
	"github.com/chaisql/edn/internal/scanner"
	"github.com/chaisql/edn/types"
)

// Parser reads values from EDN text, one top-level form at a time.
// A Parser must not be used concurrently.
type Parser struct {
	s     *scanner.Scanner
	opts  *Options
	depth int
}

// NewParser returns a new instance of Parser reading src.
// If opts is nil, default options are used.
func NewParser(src string, opts *Options) *Parser {
	if opts == nil {
		opts = defaultOptions()
	} else if opts.Tags == nil {
		o := *opts
		o.Tags = defaultOptions().Tags
		opts = &o
	}

	return &Parser{
		s:    scanner.NewScanner(src),
		opts: opts,
	}
}

// ParseValue parses the first form of src with the default options.
// Anything following that form is ignored.
func ParseValue(src string) (types.Value, error) {
	v, err := NewParser(src, nil).ParseValue()
	if err == io.EOF {
		return nil, errors.NewParseError("unexpected EOF, expected a form", "", 0, 0, len(src))
	}
	return v, err
}

// ParseValue parses the next top-level form. It returns io.EOF if only
// whitespace and comments remain. The text following the form is
// left unconsumed.
func (p *Parser) ParseValue() (types.Value, error) {
	ti, err := p.scan()
	if err != nil {
		return nil, err
	}
	if ti.Tok == scanner.EOF {
		return nil, io.EOF
	}

	return p.parseForm(ti)
}

// Offset returns the offset in bytes of the text that hasn't been consumed yet.
func (p *Parser) Offset() int {
	return p.s.Offset()
}

// scan returns the next token, skipping discarded forms.
func (p *Parser) scan() (scanner.TokenInfo, error) {
	for {
		ti := p.s.Scan()
		if ti.Tok != scanner.DISCARD {
			return ti, nil
		}

		next, err := p.scan()
		if err != nil {
			return next, err
		}
		if next.Tok == scanner.EOF || next.Tok.IsCloser() {
			return next, newParseError("discard marker must be followed by a form", next)
		}
		if _, err := p.parseForm(next); err != nil {
			return next, err
		}
	}
}

// parseForm parses the form starting with ti.
func (p *Parser) parseForm(ti scanner.TokenInfo) (types.Value, error) {
	switch ti.Tok {
	case scanner.LBRACE:
		return p.parseMap(ti)
	case scanner.LBRACKET:
		return p.parseSequence(ti, types.KindVector)
	case scanner.LPAREN:
		return p.parseSequence(ti, types.KindList)
	case scanner.SETOPEN:
		return p.parseSet(ti)
	case scanner.TAG:
		return p.parseTagged(ti)
	case scanner.RBRACE, scanner.RBRACKET, scanner.RPAREN:
		return nil, newParseError("unmatched delimiter", ti)
	case scanner.EOF:
		return nil, newParseError("unexpected EOF, expected a form", ti)
	case scanner.BADSTRING:
		return nil, newParseError("unterminated string", ti)
	case scanner.BADCHAR:
		return nil, newParseError("invalid character literal", ti)
	case scanner.ILLEGAL:
		return nil, newParseError("unexpected character", ti)
	case scanner.BADENCODING:
		return nil, newParseError("invalid UTF-8 encoding", ti)
	}

	return parseLiteral(ti)
}

// parseTagged parses the form following a tag and hands it to
// the function registered for that tag.
func (p *Parser) parseTagged(tag scanner.TokenInfo) (types.Value, error) {
	ti, err := p.scan()
	if err != nil {
		return nil, err
	}
	if ti.Tok == scanner.EOF || ti.Tok.IsCloser() {
		return nil, newParseError(fmt.Sprintf("tag #%s must be followed by a form", tag.Lit), ti)
	}

	inner, err := p.parseForm(ti)
	if err != nil {
		return nil, err
	}

	fn, ok := p.opts.Tags.Resolve(tag.Lit)
	if !ok && p.opts.KeepUnknownTags {
		return types.NewTaggedValue(tag.Lit, inner), nil
	}

	v, err := fn(inner)
	if err != nil {
		return nil, newParseError(fmt.Sprintf("invalid #%s literal: %v", tag.Lit, err), tag)
	}
	return v, nil
}

// enter increments the nesting depth and checks it against the limit.
func (p *Parser) enter(open scanner.TokenInfo) error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return newParseError(fmt.Sprintf("maximum nesting depth of %d exceeded", p.opts.MaxDepth), open)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// newParseError returns a malformed input error located at ti.
func newParseError(msg string, ti scanner.TokenInfo) error {
	var found string
	if ti.Tok != scanner.EOF {
		found = scanner.Tokstr(ti.Tok, ti.Lit)
	}
	return errors.NewParseError(msg, found, ti.Pos.Line, ti.Pos.Char, ti.Pos.Offset)
}

var symbolicValues = map[string]float64{
	"Inf":  math.Inf(1),
	"-Inf": math.Inf(-1),
	"NaN":  math.NaN(),
}
