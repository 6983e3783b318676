package featurize

import (
	"context"
	"fmt"
	"strings"
)

// Set composes several featurizers into one: labels and vectors are the
// concatenation of the members', in order. All members see the same input
// item.
type Set struct {
	name string
	fs   []Featurizer
}

// NewSet builds a Set, rejecting duplicate labels across members.
func NewSet(name string, fs ...Featurizer) (*Set, error) {
	seen := map[string]string{}
	for _, f := range fs {
		for _, l := range f.Labels() {
			if prev, ok := seen[l]; ok {
				return nil, fmt.Errorf("featurize: label %q produced by both %s and %s", l, prev, f.Name())
			}
			seen[l] = f.Name()
		}
	}
	return &Set{name: name, fs: fs}, nil
}

func (s *Set) Name() string {
	if s.name != "" {
		return s.name
	}
	names := make([]string, len(s.fs))
	for i, f := range s.fs {
		names[i] = f.Name()
	}
	return strings.Join(names, "+")
}

func (s *Set) Labels() []string {
	var labels []string
	for _, f := range s.fs {
		labels = append(labels, f.Labels()...)
	}
	return labels
}

func (s *Set) Featurize(ctx context.Context, args ...any) ([]float64, error) {
	var out []float64
	for _, f := range s.fs {
		vals, err := f.Featurize(ctx, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name(), err)
		}
		out = append(out, vals...)
	}
	return out, nil
}

// Fit forwards to every member that implements Fitter.
func (s *Set) Fit(ctx context.Context, items []Item) error {
	for _, f := range s.fs {
		if err := Fit(ctx, f, items); err != nil {
			return fmt.Errorf("%s: %w", f.Name(), err)
		}
	}
	return nil
}
