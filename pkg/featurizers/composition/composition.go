// Package composition computes feature vectors from chemical compositions,
// given either a formula string or an element -> count map.
package composition

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/matfeat/pkg/featurize"
)

// Statistic names accepted by Weighted.
const (
	StatAve = "ave"
	StatSum = "sum"
	StatVar = "var"
	StatMax = "max"
	StatMin = "min"
)

// StatNames lists all supported statistics in label order.
func StatNames() []string {
	return []string{StatAve, StatSum, StatVar, StatMax, StatMin}
}

// Weighted computes composition-weighted statistics of element properties.
// For each (statistic, property) pair it emits one feature labeled
// "<stat>:<property>". "ave" and "var" weight by atomic fraction, "sum"
// by raw element counts, "max"/"min" ignore the composition weights.
type Weighted struct {
	properties []string
	stats      []string
}

// NewWeighted validates the requested properties and statistics. Empty
// slices select all known properties or the full ave/sum/var/max/min set.
func NewWeighted(properties, stats []string) (*Weighted, error) {
	if len(properties) == 0 {
		properties = PropertyNames()
	}
	if len(stats) == 0 {
		stats = StatNames()
	}
	for _, p := range properties {
		if _, err := Property("Fe", p); err != nil {
			return nil, err
		}
	}
	for _, s := range stats {
		switch s {
		case StatAve, StatSum, StatVar, StatMax, StatMin:
		default:
			return nil, fmt.Errorf("composition: unknown statistic %q", s)
		}
	}
	return &Weighted{properties: properties, stats: stats}, nil
}

func (w *Weighted) Name() string { return "composition_weighted" }

func (w *Weighted) Labels() []string {
	labels := make([]string, 0, len(w.stats)*len(w.properties))
	for _, s := range w.stats {
		for _, p := range w.properties {
			labels = append(labels, s+":"+p)
		}
	}
	return labels
}

func (w *Weighted) Featurize(ctx context.Context, args ...any) ([]float64, error) {
	counts, err := compositionArg(args)
	if err != nil {
		return nil, err
	}
	syms := sortedSymbols(counts)

	ns := make([]float64, len(syms))   // raw counts
	fracs := make([]float64, len(syms))
	var total float64
	for i, s := range syms {
		ns[i] = counts[s]
		total += counts[s]
	}
	for i := range ns {
		fracs[i] = ns[i] / total
	}

	out := make([]float64, 0, len(w.stats)*len(w.properties))
	for _, st := range w.stats {
		for _, prop := range w.properties {
			vals := make([]float64, len(syms))
			for i, s := range syms {
				v, err := Property(s, prop)
				if err != nil {
					return nil, err
				}
				vals[i] = v
			}
			switch st {
			case StatAve:
				out = append(out, stat.Mean(vals, fracs))
			case StatSum:
				out = append(out, floats.Dot(vals, ns))
			case StatVar:
				// Population variance weighted by atomic fraction;
				// stat.Variance's bias correction breaks down when the
				// weights sum to 1.
				out = append(out, stat.Moment(2, vals, fracs))
			case StatMax:
				out = append(out, floats.Max(vals))
			case StatMin:
				out = append(out, floats.Min(vals))
			}
		}
	}
	return out, nil
}

// Counter emits the atomic fraction of each element in a fixed vocabulary.
// The vocabulary is given up front or learned from training data via Fit.
type Counter struct {
	vocab []string
	fixed bool
}

// NewCounter builds a Counter over a fixed element vocabulary. A vocabulary
// given here is kept even if Fit is called later; construct with no elements
// to learn one from training data.
func NewCounter(elems ...string) (*Counter, error) {
	for _, e := range elems {
		if _, ok := elements[e]; !ok {
			return nil, fmt.Errorf("composition: unknown element %q", e)
		}
	}
	sorted := append([]string(nil), elems...)
	sort.Strings(sorted)
	return &Counter{vocab: sorted, fixed: len(sorted) > 0}, nil
}

func (c *Counter) Name() string { return "composition_counter" }

func (c *Counter) Labels() []string {
	labels := make([]string, len(c.vocab))
	for i, e := range c.vocab {
		labels[i] = "frac:" + e
	}
	return labels
}

// Fit scans the training items and sets the vocabulary to the elements
// they contain, in sorted order. Items that do not parse are skipped, so a
// noisy training set does not block fitting. An explicitly constructed
// vocabulary is left untouched.
func (c *Counter) Fit(ctx context.Context, items []featurize.Item) error {
	if c.fixed {
		return nil
	}
	seen := map[string]struct{}{}
	for _, it := range items {
		counts, err := compositionArg(it)
		if err != nil {
			continue
		}
		for e := range counts {
			seen[e] = struct{}{}
		}
	}
	vocab := make([]string, 0, len(seen))
	for e := range seen {
		vocab = append(vocab, e)
	}
	sort.Strings(vocab)
	c.vocab = vocab
	return nil
}

func (c *Counter) Featurize(ctx context.Context, args ...any) ([]float64, error) {
	if len(c.vocab) == 0 {
		return nil, fmt.Errorf("composition: counter has no vocabulary; construct with elements or call Fit")
	}
	counts, err := compositionArg(args)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, n := range counts {
		total += n
	}
	idx := make(map[string]int, len(c.vocab))
	for i, e := range c.vocab {
		idx[e] = i
	}
	out := make([]float64, len(c.vocab))
	for e, n := range counts {
		i, ok := idx[e]
		if !ok {
			return nil, fmt.Errorf("composition: element %q not in vocabulary", e)
		}
		out[i] = n / total
	}
	return out, nil
}

// compositionArg resolves the single featurizer argument into an element
// count map. Compositions whose counts sum to zero (e.g. "H0") are
// rejected so downstream fraction weights never divide by zero.
func compositionArg(args []any) (map[string]float64, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("composition: want 1 argument, got %d", len(args))
	}
	var counts map[string]float64
	switch v := args[0].(type) {
	case string:
		c, err := ParseFormula(v)
		if err != nil {
			return nil, err
		}
		counts = c
	case map[string]float64:
		if len(v) == 0 {
			return nil, fmt.Errorf("composition: empty composition")
		}
		for e := range v {
			if _, ok := elements[e]; !ok {
				return nil, fmt.Errorf("composition: unknown element %q", e)
			}
		}
		counts = v
	case nil:
		return nil, fmt.Errorf("composition: nil input")
	default:
		return nil, fmt.Errorf("composition: unsupported input type %T", v)
	}
	var total float64
	for _, n := range counts {
		total += n
	}
	if total <= 0 {
		return nil, fmt.Errorf("composition: composition has no atoms")
	}
	return counts, nil
}

func sortedSymbols(counts map[string]float64) []string {
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}
