package edn

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/chaisql/edn/types"
)

// DecodeAll decodes the first form of each body concurrently.
// Results are returned in the order of bodies. The first failure cancels
// the bodies that haven't been started yet and is returned, annotated
// with the index of the failing body.
func DecodeAll(ctx context.Context, bodies []string, opts *Options) ([]types.Value, error) {
	values := make([]types.Value, len(bodies))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range bodies {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := DecodeWithOptions(bodies[i], opts)
			if err != nil {
				return errors.Wrapf(err, "body %d", i)
			}
			values[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
