package featurize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// ErrReturnErrors is returned when error capture is requested without
// tolerant mode.
var ErrReturnErrors = errors.New("featurize: ReturnErrors requires IgnoreErrors")

// Options control a batch application. The zero value is a fail-fast run
// across all CPUs. Options are passed by value through the whole call chain;
// nothing is stashed on the featurizer, so a single instance can serve
// concurrent batches.
type Options struct {
	// Workers is the size of the worker pool. 1 runs the batch
	// sequentially; <= 0 uses runtime.NumCPU().
	Workers int
	// IgnoreErrors converts per-item failures into all-NaN vectors
	// instead of aborting the batch.
	IgnoreErrors bool
	// ReturnErrors records the formatted failure on each failed item's
	// Vector. Requires IgnoreErrors.
	ReturnErrors bool
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// ApplyMany featurizes a batch of items, preserving input order. By default
// any failure aborts the whole batch and no partial result is returned; with
// IgnoreErrors set, failed items become all-NaN vectors and the rest of the
// batch is unaffected.
func ApplyMany(ctx context.Context, f Featurizer, items []Item, opt Options) ([]Vector, error) {
	if opt.ReturnErrors && !opt.IgnoreErrors {
		return nil, ErrReturnErrors
	}
	labels := f.Labels()
	if len(items) == 0 {
		return []Vector{}, nil
	}

	out := make([]Vector, len(items))
	if opt.workers() == 1 {
		for i, it := range items {
			v, err := applyOne(ctx, f, it, len(labels), opt)
			if err != nil {
				return nil, fmt.Errorf("%s: item %d: %w", f.Name(), i, err)
			}
			out[i] = v
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.workers())
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			v, err := applyOne(gctx, f, it, len(labels), opt)
			if err != nil {
				return fmt.Errorf("%s: item %d: %w", f.Name(), i, err)
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

// applyOne runs the featurizer for a single item and applies the error
// policy. Each worker touches only its own result slot.
func applyOne(ctx context.Context, f Featurizer, it Item, want int, opt Options) (Vector, error) {
	vals, err := safeFeaturize(ctx, f, it)
	if err == nil && len(vals) != want {
		err = fmt.Errorf("featurize: got %d values, want %d", len(vals), want)
	}
	if err == nil {
		return Vector{Values: vals}, nil
	}
	if !opt.IgnoreErrors {
		return Vector{}, err
	}
	nan := make([]float64, want)
	for i := range nan {
		nan[i] = math.NaN()
	}
	v := Vector{Values: nan}
	if opt.ReturnErrors {
		v.Trace = err.Error()
	}
	return v, nil
}

// safeFeaturize contains panics from featurizer implementations so the
// tolerant path can record them like any other failure.
func safeFeaturize(ctx context.Context, f Featurizer, it Item) (vals []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("featurize: panic: %v\n%s", r, debug.Stack())
		}
	}()
	return f.Featurize(ctx, it...)
}
