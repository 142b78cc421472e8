package parser

import (
	"fmt"

	"github.com/chaisql/edn/internal/scanner"
	"github.com/chaisql/edn/types"
)

// parseElements parses forms until the delimiter closing open.
func (p *Parser) parseElements(open scanner.TokenInfo) ([]types.Value, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	closer := open.Tok.Closer()

	var values []types.Value
	for {
		ti, err := p.scan()
		if err != nil {
			return nil, err
		}

		switch {
		case ti.Tok == closer:
			return values, nil
		case ti.Tok == scanner.EOF:
			return nil, newParseError(fmt.Sprintf("unexpected EOF, %s opened at line %d, char %d is not closed",
				open.Tok, open.Pos.Line+1, open.Pos.Char+1), ti)
		case ti.Tok.IsCloser():
			return nil, newParseError(fmt.Sprintf("mismatched delimiter, expected %s", closer), ti)
		}

		v, err := p.parseForm(ti)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
}

// parseSequence parses a vector or a list.
func (p *Parser) parseSequence(open scanner.TokenInfo, kind types.SequenceKind) (types.Value, error) {
	values, err := p.parseElements(open)
	if err != nil {
		return nil, err
	}

	return types.NewSequenceValue(kind, values), nil
}

// parseSet parses a set. Duplicate elements are dropped.
func (p *Parser) parseSet(open scanner.TokenInfo) (types.Value, error) {
	values, err := p.parseElements(open)
	if err != nil {
		return nil, err
	}

	return types.NewSetValue(values...), nil
}

// parseMap parses a map, consuming its forms pairwise.
// If a key appears more than once, the last value wins.
func (p *Parser) parseMap(open scanner.TokenInfo) (types.Value, error) {
	values, err := p.parseElements(open)
	if err != nil {
		return nil, err
	}

	if len(values)%2 != 0 {
		return nil, newParseError("map literal must contain an even number of forms", open)
	}

	entries := make([]types.MapEntry, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		entries = append(entries, types.MapEntry{Key: values[i], Value: values[i+1]})
	}

	return types.NewMapValue(entries...), nil
}
