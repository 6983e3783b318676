package featurize

import (
	"context"
	"reflect"
	"testing"
)

func constFeat(name string, labels []string, vals []float64) *Func {
	return &Func{
		FeatName:   name,
		FeatLabels: labels,
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			return append([]float64(nil), vals...), nil
		},
	}
}

func TestSetConcat(t *testing.T) {
	a := constFeat("a", []string{"a1", "a2"}, []float64{1, 2})
	b := constFeat("b", []string{"b1"}, []float64{3})
	s, err := NewSet("combo", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Labels(); !reflect.DeepEqual(got, []string{"a1", "a2", "b1"}) {
		t.Fatalf("labels = %v", got)
	}
	vals, err := s.Featurize(context.Background(), "anything")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(vals, []float64{1, 2, 3}) {
		t.Fatalf("values = %v", vals)
	}
	if s.Name() != "combo" {
		t.Fatalf("name = %q", s.Name())
	}
}

func TestSetDuplicateLabels(t *testing.T) {
	a := constFeat("a", []string{"x"}, []float64{1})
	b := constFeat("b", []string{"x"}, []float64{2})
	if _, err := NewSet("", a, b); err == nil {
		t.Fatal("expected duplicate label error")
	}
}

func TestSetDefaultName(t *testing.T) {
	a := constFeat("a", []string{"a1"}, []float64{1})
	b := constFeat("b", []string{"b1"}, []float64{2})
	s, err := NewSet("", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "a+b" {
		t.Fatalf("name = %q", s.Name())
	}
}
