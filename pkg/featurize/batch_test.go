package featurize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// doubler returns [2x] for a numeric input and errors on anything else.
func doubler() *Func {
	return &Func{
		FeatName:   "doubler",
		FeatLabels: []string{"double"},
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			x, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("want float64, got %T", args[0])
			}
			return []float64{2 * x}, nil
		},
	}
}

func TestApplyManyOrder(t *testing.T) {
	items := Scalars(1.0, 2.0, 3.0, 4.0)
	for _, workers := range []int{1, 4} {
		vecs, err := ApplyMany(context.Background(), doubler(), items, Options{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if len(vecs) != len(items) {
			t.Fatalf("workers=%d: got %d vectors, want %d", workers, len(vecs), len(items))
		}
		for i, v := range vecs {
			want := 2 * float64(i+1)
			if len(v.Values) != 1 || v.Values[0] != want {
				t.Fatalf("workers=%d: item %d: got %v, want [%v]", workers, i, v.Values, want)
			}
		}
	}
}

func TestApplyManyEmpty(t *testing.T) {
	vecs, err := ApplyMany(context.Background(), doubler(), nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if vecs == nil || len(vecs) != 0 {
		t.Fatalf("got %v, want empty result", vecs)
	}
}

func TestApplyManyFailFast(t *testing.T) {
	items := []Item{{1.0}, {"x"}, {3.0}}
	vecs, err := ApplyMany(context.Background(), doubler(), items, Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if vecs != nil {
		t.Fatalf("fail-fast returned a partial result: %v", vecs)
	}
	if !strings.Contains(err.Error(), "item 1") {
		t.Fatalf("error does not identify the item: %v", err)
	}
}

func TestApplyManyTolerant(t *testing.T) {
	items := []Item{{1.0}, {"x"}}
	vecs, err := ApplyMany(context.Background(), doubler(), items, Options{IgnoreErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if vecs[0].Values[0] != 2 {
		t.Fatalf("good item affected: %v", vecs[0].Values)
	}
	if !math.IsNaN(vecs[1].Values[0]) {
		t.Fatalf("failed item not NaN: %v", vecs[1].Values)
	}
	if vecs[1].Trace != "" {
		t.Fatalf("trace recorded without ReturnErrors: %q", vecs[1].Trace)
	}
}

func TestApplyManyReturnErrors(t *testing.T) {
	items := []Item{{1.0}, {"x"}}
	vecs, err := ApplyMany(context.Background(), doubler(), items, Options{IgnoreErrors: true, ReturnErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if vecs[0].Trace != "" || vecs[0].Failed() {
		t.Fatalf("success row carries a trace: %q", vecs[0].Trace)
	}
	if vecs[1].Trace == "" || !vecs[1].Failed() {
		t.Fatal("failed row has no trace")
	}
	if !strings.Contains(vecs[1].Trace, "string") {
		t.Fatalf("trace does not describe the failure: %q", vecs[1].Trace)
	}
}

func TestReturnErrorsRequiresIgnore(t *testing.T) {
	calls := 0
	f := &Func{
		FeatName:   "counting",
		FeatLabels: []string{"x"},
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			calls++
			return []float64{0}, nil
		},
	}
	_, err := ApplyMany(context.Background(), f, Scalars(1.0), Options{ReturnErrors: true})
	if !errors.Is(err, ErrReturnErrors) {
		t.Fatalf("got %v, want ErrReturnErrors", err)
	}
	if calls != 0 {
		t.Fatalf("featurizer ran %d times before the config check", calls)
	}
}

func TestTolerantMatchesStrictWhenAllSucceed(t *testing.T) {
	items := Scalars(1.0, 2.0, 3.0)
	strict, err := ApplyMany(context.Background(), doubler(), items, Options{})
	if err != nil {
		t.Fatal(err)
	}
	tolerant, err := ApplyMany(context.Background(), doubler(), items, Options{IgnoreErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	for i := range strict {
		if strict[i].Values[0] != tolerant[i].Values[0] {
			t.Fatalf("item %d: strict %v != tolerant %v", i, strict[i].Values, tolerant[i].Values)
		}
	}
}

func TestApplyManyWrongArity(t *testing.T) {
	f := &Func{
		FeatName:   "short",
		FeatLabels: []string{"a", "b"},
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			return []float64{1}, nil
		},
	}
	if _, err := ApplyMany(context.Background(), f, Scalars(1.0), Options{}); err == nil {
		t.Fatal("expected arity mismatch error")
	}
	vecs, err := ApplyMany(context.Background(), f, Scalars(1.0), Options{IgnoreErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(vecs[0].Values) != 2 || !math.IsNaN(vecs[0].Values[0]) || !math.IsNaN(vecs[0].Values[1]) {
		t.Fatalf("arity mismatch not converted to NaN vector: %v", vecs[0].Values)
	}
}

func TestApplyManyPanicContained(t *testing.T) {
	f := &Func{
		FeatName:   "panicky",
		FeatLabels: []string{"x"},
		Fn: func(ctx context.Context, args ...any) ([]float64, error) {
			panic("boom")
		},
	}
	if _, err := ApplyMany(context.Background(), f, Scalars(1.0), Options{}); err == nil {
		t.Fatal("expected panic converted to error")
	}
	vecs, err := ApplyMany(context.Background(), f, Scalars(1.0), Options{IgnoreErrors: true, ReturnErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(vecs[0].Trace, "boom") {
		t.Fatalf("panic trace missing: %q", vecs[0].Trace)
	}
}

func TestApplyManyParallelTolerant(t *testing.T) {
	items := make([]Item, 100)
	for i := range items {
		if i%7 == 0 {
			items[i] = Item{"bad"}
		} else {
			items[i] = Item{float64(i)}
		}
	}
	vecs, err := ApplyMany(context.Background(), doubler(), items, Options{Workers: 8, IgnoreErrors: true})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vecs {
		if i%7 == 0 {
			if !math.IsNaN(v.Values[0]) {
				t.Fatalf("item %d: want NaN, got %v", i, v.Values[0])
			}
			continue
		}
		if v.Values[0] != 2*float64(i) {
			t.Fatalf("item %d: got %v, want %v", i, v.Values[0], 2*float64(i))
		}
	}
}

func TestFitNoop(t *testing.T) {
	if err := Fit(context.Background(), doubler(), Scalars(1.0)); err != nil {
		t.Fatal(err)
	}
}
