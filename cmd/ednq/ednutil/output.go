package ednutil

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/chaisql/edn/types"
)

// Output formats.
const (
	FormatEDN  = "edn"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported output formats.
var Formats = []string{FormatEDN, FormatJSON, FormatYAML}

// A Printer writes values to w in a given format.
type Printer struct {
	w      io.Writer
	format string
	indent bool
}

// NewPrinter returns a printer. It returns an error if the format is unknown.
func NewPrinter(w io.Writer, format string, indent bool) (*Printer, error) {
	switch format {
	case FormatEDN, FormatJSON, FormatYAML:
	default:
		return nil, errors.Newf("unknown format %q, expected one of %v", format, Formats)
	}

	return &Printer{w: w, format: format, indent: indent}, nil
}

// Print writes v followed by a newline. YAML values are written as
// separate documents.
func (p *Printer) Print(v types.Value) error {
	var data []byte
	var err error

	switch p.format {
	case FormatEDN:
		if p.indent {
			data, err = types.MarshalTextIndent(v, "", "  ")
		} else {
			data, err = v.MarshalText()
		}
	case FormatJSON:
		data, err = v.MarshalJSON()
		if err == nil && p.indent {
			var buf bytes.Buffer
			if err = json.Indent(&buf, data, "", "  "); err == nil {
				data = buf.Bytes()
			}
		}
	case FormatYAML:
		return p.printYAML(v)
	}
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}

func (p *Printer) printYAML(v types.Value) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)

	if err := enc.Encode(YAMLNode(v)); err != nil {
		return err
	}
	return enc.Close()
}

// YAMLNode converts v to a YAML node. Map entries keep their order,
// instants are timestamps and unknown tags become local YAML tags.
func YAMLNode(v types.Value) *yaml.Node {
	switch x := v.(type) {
	case types.NullValue:
		return scalarNode("!!null", "null")
	case types.BooleanValue:
		return scalarNode("!!bool", x.String())
	case types.IntegerValue:
		return scalarNode("!!int", x.String())
	case types.DoubleValue:
		return scalarNode("!!float", yamlFloat(x))
	case types.TextValue:
		return scalarNode("!!str", string(x))
	case types.CharacterValue:
		return scalarNode("!!str", string(rune(x)))
	case types.SymbolValue, types.KeywordValue:
		return scalarNode("!!str", types.AsString(x))
	case types.TimestampValue:
		return scalarNode("!!timestamp", time.Time(x).Format(time.RFC3339Nano))
	case types.UUIDValue:
		return scalarNode("!!str", types.AsUUID(x).String())
	case *types.TempIDValue:
		return scalarNode("!!str", x.String())
	case *types.TaggedValue:
		n := YAMLNode(x.Inner())
		n.Tag = "!" + x.Tag()
		return n
	case *types.SequenceValue:
		return sequenceNode(x.Values())
	case *types.SetValue:
		return sequenceNode(x.Values())
	case *types.MapValue:
		n := yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range x.Entries() {
			n.Content = append(n.Content, YAMLNode(e.Key), YAMLNode(e.Value))
		}
		return &n
	}

	return scalarNode("!!null", "null")
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func sequenceNode(values []types.Value) *yaml.Node {
	n := yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range values {
		n.Content = append(n.Content, YAMLNode(v))
	}
	return &n
}

func yamlFloat(x types.DoubleValue) string {
	f := float64(x)
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return x.String()
}
