package ednutil

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/chaisql/edn"
	"github.com/chaisql/edn/types"
)

// Shape selects how decoded bodies are checked before being printed.
type Shape string

const (
	ShapeValue  Shape = "value"
	ShapeRows   Shape = "rows"
	ShapeTx     Shape = "tx"
	ShapeDatoms Shape = "datoms"
)

// TxKeys lists the entries of a transaction report that can be selected.
var TxKeys = []string{edn.KeyDBBefore, edn.KeyDBAfter, edn.KeyTxData, edn.KeyTempIDs}

// Config of a decoding run.
type Config struct {
	Shape Shape
	// If true, every top-level form of a body is decoded,
	// otherwise only the first one.
	All bool
	// If true, datoms are read from their JSON representation.
	JSON bool
	// TxKey selects one entry of transaction reports.
	TxKey string
	// If true, every input is decoded even if some fail,
	// and all the failures are reported.
	KeepGoing bool
	Options   edn.Options
	Logger    *slog.Logger
}

type result struct {
	values []types.Value
	err    error
}

// Run decodes the inputs concurrently, then prints the decoded values
// in the order of the inputs.
func Run(ctx context.Context, cfg *Config, inputs []*Input, p *Printer) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range inputs {
		in := inputs[i]
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			values, err := decodeInput(cfg, in)
			if err != nil {
				err = errors.Wrapf(err, "%s", in.Name)
				logger.Debug("decoding failed", "input", in.Name, "error", err)
				if !cfg.KeepGoing {
					return err
				}
				results[i].err = err
				return nil
			}

			logger.Debug("decoded",
				"input", in.Name,
				"bytes", len(in.Data),
				"compression", in.Compression,
				"values", len(values),
				"duration", time.Since(start))
			results[i].values = values
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var errs error
	for _, r := range results {
		if r.err != nil {
			errs = multierr.Append(errs, r.err)
			continue
		}

		for _, v := range r.values {
			if err := p.Print(v); err != nil {
				return multierr.Append(errs, err)
			}
		}
	}

	return errs
}

func decodeInput(cfg *Config, in *Input) ([]types.Value, error) {
	if cfg.Shape == ShapeDatoms && cfg.JSON {
		datoms, err := edn.DecodeDatomsJSONWithOptions(in.Data, &cfg.Options)
		if err != nil {
			return nil, err
		}
		return []types.Value{datomsValue(datoms)}, nil
	}

	text := string(in.Data)
	if !cfg.All {
		v, err := edn.DecodeWithOptions(text, &cfg.Options)
		if err != nil {
			return nil, err
		}
		v, err = applyShape(cfg, v)
		if err != nil {
			return nil, err
		}
		return []types.Value{v}, nil
	}

	var values []types.Value
	dec := edn.NewDecoder(text, &cfg.Options)
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			return values, nil
		}
		if err != nil {
			return nil, err
		}

		v, err = applyShape(cfg, v)
		if err != nil {
			return nil, errors.Wrapf(err, "form %d", len(values))
		}
		values = append(values, v)
	}
}

// applyShape checks v has the shape selected by cfg and returns
// the value to print.
func applyShape(cfg *Config, v types.Value) (types.Value, error) {
	switch cfg.Shape {
	case ShapeRows:
		rows, err := edn.AsRows(v)
		if err != nil {
			return nil, err
		}
		vs := make([]types.Value, len(rows))
		for i, row := range rows {
			vs[i] = types.NewVectorValue(row...)
		}
		return types.NewVectorValue(vs...), nil
	case ShapeTx:
		r, err := edn.AsTxReport(v)
		if err != nil {
			return nil, err
		}
		return txEntry(r, cfg.TxKey)
	case ShapeDatoms:
		datoms, err := edn.AsDatoms(v)
		if err != nil {
			return nil, err
		}
		return datomsValue(datoms), nil
	}

	return v, nil
}

func txEntry(r *edn.TxReport, key string) (types.Value, error) {
	var v types.Value
	switch key {
	case "":
		return r.MapValue, nil
	case edn.KeyDBBefore:
		v = r.DBBefore()
	case edn.KeyDBAfter:
		v = r.DBAfter()
	case edn.KeyTxData:
		v = r.TxData()
	case edn.KeyTempIDs:
		v = r.TempIDs()
	default:
		return nil, errors.Newf("unknown transaction report key %q, expected one of %v", key, TxKeys)
	}

	if v == nil {
		return types.NewNullValue(), nil
	}
	return v, nil
}

func datomsValue(datoms []*types.MapValue) types.Value {
	vs := make([]types.Value, len(datoms))
	for i, d := range datoms {
		vs[i] = d
	}
	return types.NewVectorValue(vs...)
}
