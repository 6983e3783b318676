package featurize

import "context"

// Item is one input to a Featurizer: a tuple of positional arguments.
// Arity is fixed per featurizer.
type Item []any

// Vector holds the features computed for a single Item. Values always has
// as many entries as the featurizer has labels; a failed item (in tolerant
// mode) is all NaN. Trace carries the formatted failure when error capture
// was requested, and is empty otherwise.
type Vector struct {
	Values []float64
	Trace  string
}

// Failed reports whether this vector came from a captured failure.
func (v Vector) Failed() bool { return v.Trace != "" }

// Featurizer converts one raw input item into a fixed-length numeric
// feature vector. Labels must be constant for a given instance and
// Featurize must return exactly len(Labels()) values on success.
// Implementations must be safe for concurrent use: Featurize must not
// mutate the receiver.
type Featurizer interface {
	Name() string
	Labels() []string
	Featurize(ctx context.Context, args ...any) ([]float64, error)
}

// Fitter is implemented by featurizers that derive state from training
// data before featurizing, e.g. an element vocabulary. Most featurizers
// do not need it.
type Fitter interface {
	Fit(ctx context.Context, items []Item) error
}

// Fit fits f on items when f implements Fitter, and is a no-op otherwise.
func Fit(ctx context.Context, f Featurizer, items []Item) error {
	if ft, ok := f.(Fitter); ok {
		return ft.Fit(ctx, items)
	}
	return nil
}

// Scalars wraps scalar inputs as single-element Items, for featurizers
// that take one argument.
func Scalars[T any](vs ...T) []Item {
	items := make([]Item, len(vs))
	for i, v := range vs {
		items[i] = Item{v}
	}
	return items
}

// Func adapts a closure into a Featurizer.
type Func struct {
	FeatName   string
	FeatLabels []string
	Fn         func(ctx context.Context, args ...any) ([]float64, error)
}

func (f *Func) Name() string     { return f.FeatName }
func (f *Func) Labels() []string { return f.FeatLabels }

func (f *Func) Featurize(ctx context.Context, args ...any) ([]float64, error) {
	return f.Fn(ctx, args...)
}
