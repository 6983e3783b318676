package featurize_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/wdm0006/matfeat/pkg/featurize"
	"github.com/wdm0006/matfeat/pkg/frame"
)

func lenFeat() *featurize.Func {
	return &featurize.Func{
		FeatName:   "strlen",
		FeatLabels: []string{"length"},
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			s, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("want string, got %T", args[0])
			}
			return []float64{float64(len(s))}, nil
		},
	}
}

func inputFrame(vals ...any) *frame.Frame {
	s := frame.Schema{Columns: []frame.ColumnSchema{{Name: "formula", Type: frame.KindString, Nullable: true}}}
	f := frame.NewFrame(s)
	for _, v := range vals {
		if err := f.AppendRow(v); err != nil {
			panic(err)
		}
	}
	return f
}

func TestApplyFrame(t *testing.T) {
	f := inputFrame("Fe", "NaCl")
	out, err := featurize.ApplyFrame(context.Background(), lenFeat(), f, []string{"formula"}, featurize.Options{})
	if err != nil {
		t.Fatal(err)
	}
	col, ok := out.ColumnByName("length")
	if !ok {
		t.Fatal("feature column missing")
	}
	c := col.(*frame.FloatColumn)
	if v, _ := c.Get(0); v != 2 {
		t.Fatalf("row 0 = %v", v)
	}
	if v, _ := c.Get(1); v != 4 {
		t.Fatalf("row 1 = %v", v)
	}
}

func TestApplyFrameNullCellTolerant(t *testing.T) {
	f := inputFrame("Fe", nil)
	out, err := featurize.ApplyFrame(context.Background(), lenFeat(), f, []string{"formula"}, featurize.Options{IgnoreErrors: true, ReturnErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	col, _ := out.ColumnByName("length")
	c := col.(*frame.FloatColumn)
	if v, _ := c.Get(1); !math.IsNaN(v) {
		t.Fatalf("null input row = %v, want NaN", v)
	}
	ecol, ok := out.ColumnByName("strlen errors")
	if !ok {
		t.Fatal("errors column missing")
	}
	ec := ecol.(*frame.StringColumn)
	if v, _ := ec.Get(0); v != "" {
		t.Fatalf("success row has trace %q", v)
	}
	if v, _ := ec.Get(1); v == "" {
		t.Fatal("failed row has no trace")
	}
}

func TestApplyFrameLabelCollision(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "formula", Type: frame.KindString, Nullable: true},
		{Name: "length", Type: frame.KindFloat, Nullable: true},
	}}
	f := frame.NewFrame(s)
	_ = f.AppendRow("Fe", 1.0)
	if _, err := featurize.ApplyFrame(context.Background(), lenFeat(), f, []string{"formula"}, featurize.Options{}); err == nil {
		t.Fatal("expected collision error")
	}
}

func TestApplyFrameUnknownColumn(t *testing.T) {
	f := inputFrame("Fe")
	if _, err := featurize.ApplyFrame(context.Background(), lenFeat(), f, []string{"nope"}, featurize.Options{}); err == nil {
		t.Fatal("expected unknown column error")
	}
}
