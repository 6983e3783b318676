package featurize

import (
	"context"
	"testing"
)

func BenchmarkApplyManySequential(b *testing.B) {
	items := make([]Item, 10000)
	for i := range items {
		items[i] = Item{float64(i)}
	}
	f := doubler()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ApplyMany(context.Background(), f, items, Options{Workers: 1})
	}
}

func BenchmarkApplyManyParallel(b *testing.B) {
	items := make([]Item, 10000)
	for i := range items {
		items[i] = Item{float64(i)}
	}
	f := doubler()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ApplyMany(context.Background(), f, items, Options{})
	}
}
