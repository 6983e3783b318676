package featurize

import (
	"context"
	"fmt"

	"github.com/wdm0006/matfeat/pkg/frame"
)

// ApplyFrame featurizes every row of fr, taking the featurizer's arguments
// from the named input columns, and attaches one float column per feature
// label. With ReturnErrors set an extra "<name> errors" string column holds
// the per-row failure traces. The frame is extended in place and returned.
func ApplyFrame(ctx context.Context, f Featurizer, fr *frame.Frame, inputCols []string, opt Options) (*frame.Frame, error) {
	if len(inputCols) == 0 {
		return nil, fmt.Errorf("featurize: no input columns")
	}
	labels := f.Labels()
	for _, l := range labels {
		if fr.HasColumn(l) {
			return nil, fmt.Errorf("featurize: column %q already exists in frame", l)
		}
	}
	errCol := f.Name() + " errors"
	if opt.ReturnErrors && fr.HasColumn(errCol) {
		return nil, fmt.Errorf("featurize: column %q already exists in frame", errCol)
	}
	items, err := FrameItems(fr, inputCols)
	if err != nil {
		return nil, err
	}

	vecs, err := ApplyMany(ctx, f, items, opt)
	if err != nil {
		return nil, err
	}

	for j, l := range labels {
		col := make([]float64, len(vecs))
		for r, v := range vecs {
			col[r] = v.Values[j]
		}
		if err := fr.AddColumn(frame.NewFloatColumnFrom(l, col)); err != nil {
			return nil, err
		}
	}
	if opt.ReturnErrors {
		traces := make([]string, len(vecs))
		for r, v := range vecs {
			traces[r] = v.Trace
		}
		if err := fr.AddColumn(frame.NewStringColumnFrom(errCol, traces)); err != nil {
			return nil, err
		}
	}
	return fr, nil
}

// FrameItems builds one Item per frame row from the named columns. Null
// cells become nil arguments. Useful for fitting a featurizer on the same
// data it will be applied to.
func FrameItems(fr *frame.Frame, inputCols []string) ([]Item, error) {
	for _, name := range inputCols {
		if !fr.HasColumn(name) {
			return nil, fmt.Errorf("featurize: unknown input column %q", name)
		}
	}
	items := make([]Item, fr.Rows())
	for r := 0; r < fr.Rows(); r++ {
		it := make(Item, len(inputCols))
		for i, name := range inputCols {
			v, err := fr.Value(r, name)
			if err != nil {
				return nil, err
			}
			it[i] = v
		}
		items[r] = it
	}
	return items, nil
}
