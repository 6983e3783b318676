// Package golearn converts matfeat feature data into
// github.com/sjwhitworth/golearn/base DenseInstances for model training.
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	"github.com/wdm0006/matfeat/pkg/featurize"
	"github.com/wdm0006/matfeat/pkg/frame"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. Float and
// int columns become float attributes, string columns categorical ones. The
// last column is registered as the class attribute when classAttr is true.
func ToDenseInstances(f *frame.Frame, classAttr bool) (*base.DenseInstances, error) {
	cols := f.Schema().Columns
	attrs := make([]base.Attribute, len(cols))
	for i, cs := range cols {
		switch cs.Type {
		case frame.KindFloat, frame.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range cols {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case frame.KindInt:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				}
			default:
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
				}
			}
		}
	}
	if classAttr && len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// MatrixToDenseInstances converts a raw batch result into DenseInstances,
// one float attribute per feature label. Failed rows stay NaN.
func MatrixToDenseInstances(labels []string, vecs []featurize.Vector) (*base.DenseInstances, error) {
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(labels))
	for i, l := range labels {
		specs[i] = inst.AddAttribute(base.NewFloatAttribute(l))
	}
	if err := inst.Extend(len(vecs)); err != nil {
		return nil, err
	}
	for r, v := range vecs {
		for c := range labels {
			// NaN is packed as-is so failed rows stay visibly NaN.
			inst.Set(specs[c], r, base.PackFloatToBytes(v.Values[c]))
		}
	}
	return inst, nil
}
