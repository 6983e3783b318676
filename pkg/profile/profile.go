// Package profile summarizes batch featurization results: per-label value
// statistics and failure counts, for a quick look at what a featurizer
// produced before handing the matrix to a model.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/matfeat/pkg/featurize"
)

// LabelStats holds summary statistics for one feature label across a batch.
// NaNs counts cells with no value (failed rows included).
type LabelStats struct {
	Label string
	Count int
	NaNs  int
	Min   float64
	Max   float64
	Mean  float64
	Std   float64
}

// Report is the profile of one batch result.
type Report struct {
	Rows   int
	Failed int // rows whose vector is entirely NaN
	Labels []LabelStats
}

// Profile computes a Report over a batch result. labels must match the
// featurizer that produced vecs.
func Profile(labels []string, vecs []featurize.Vector) (*Report, error) {
	for i, v := range vecs {
		if len(v.Values) != len(labels) {
			return nil, fmt.Errorf("profile: row %d has %d values, want %d", i, len(v.Values), len(labels))
		}
	}
	rep := &Report{Rows: len(vecs), Labels: make([]LabelStats, len(labels))}
	for _, v := range vecs {
		if len(v.Values) > 0 && allNaN(v.Values) {
			rep.Failed++
		}
	}
	for j, l := range labels {
		ls := LabelStats{Label: l, Min: math.Inf(1), Max: math.Inf(-1)}
		var vals []float64
		for _, v := range vecs {
			x := v.Values[j]
			if math.IsNaN(x) {
				ls.NaNs++
				continue
			}
			ls.Count++
			if x < ls.Min {
				ls.Min = x
			}
			if x > ls.Max {
				ls.Max = x
			}
			vals = append(vals, x)
		}
		if ls.Count > 0 {
			ls.Mean = stat.Mean(vals, nil)
			if ls.Count > 1 {
				ls.Std = stat.StdDev(vals, nil)
			}
		} else {
			ls.Min, ls.Max = math.NaN(), math.NaN()
			ls.Mean, ls.Std = math.NaN(), math.NaN()
		}
		rep.Labels[j] = ls
	}
	return rep, nil
}

// String renders a plain-text summary, labels sorted by NaN count then name.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rows=%d failed=%d\n", r.Rows, r.Failed)
	ls := append([]LabelStats(nil), r.Labels...)
	sort.Slice(ls, func(i, j int) bool {
		if ls[i].NaNs != ls[j].NaNs {
			return ls[i].NaNs > ls[j].NaNs
		}
		return ls[i].Label < ls[j].Label
	})
	for _, s := range ls {
		fmt.Fprintf(&b, "%-28s count=%-6d nan=%-6d min=%-12.5g max=%-12.5g mean=%-12.5g std=%.5g\n",
			s.Label, s.Count, s.NaNs, s.Min, s.Max, s.Mean, s.Std)
	}
	return b.String()
}

func allNaN(vals []float64) bool {
	for _, v := range vals {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
