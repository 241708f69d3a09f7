package op

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gradop-ml/gradop/internal/parallel"
)

// EvalBatch evaluates the operation over many input rows, one output per
// row, fanning out across goroutines per cfg. The forward function must
// be safe for concurrent use; operations built by New, FromDual and the
// public constructors are.
func EvalBatch[T Float](o Op[T], inputs [][]T, cfg parallel.Config) []T {
	out := make([]T, len(inputs))
	parallel.For(len(inputs), cfg, func(i int) {
		out[i] = o.Value(inputs[i])
	})
	return out
}

// GradBatch evaluates the terminal-objective gradient over many input
// rows, one gradient per row.
func GradBatch[T Float](o Op[T], inputs [][]T, cfg parallel.Config) [][]T {
	out := make([][]T, len(inputs))
	parallel.For(len(inputs), cfg, func(i int) {
		out[i] = o.Grad(inputs[i])
	})
	return out
}

// EvalBatchM evaluates an effectful operation over many input rows with
// bounded concurrency. The first error cancels the remaining rows via
// the group context.
func EvalBatchM[T Float](ctx context.Context, o OpM[T], inputs [][]T, workers int) ([]T, error) {
	out := make([]T, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range inputs {
		g.Go(func() error {
			v, err := o.Value(ctx, inputs[i])
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
