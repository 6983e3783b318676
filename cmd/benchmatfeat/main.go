package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/wdm0006/matfeat/pkg/featurize"
	comp "github.com/wdm0006/matfeat/pkg/featurizers/composition"
)

var symbols = []string{"H", "Li", "Be", "B", "C", "N", "O", "F", "Na", "Mg", "Al", "Si", "P", "S", "Cl", "K", "Ca", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn"}

// genFormulas produces random binary/ternary formulas, optionally with a
// share of broken inputs to exercise the tolerant path.
func genFormulas(n int, badp float64, rnd *rand.Rand) []featurize.Item {
	items := make([]featurize.Item, n)
	for i := range items {
		if rnd.Float64() < badp {
			items[i] = featurize.Item{"Xx9"}
			continue
		}
		k := 2 + rnd.Intn(2)
		s := ""
		for j := 0; j < k; j++ {
			s += symbols[rnd.Intn(len(symbols))]
			s += fmt.Sprint(1 + rnd.Intn(4))
		}
		items[i] = featurize.Item{s}
	}
	return items
}

func main() {
	var (
		rows    = flag.Int("rows", 200_000, "number of formulas to featurize")
		badp    = flag.Float64("bad", 0.01, "probability of a malformed formula")
		jsonOut = flag.Bool("json", false, "emit JSON summary")
		seed    = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	items := genFormulas(*rows, *badp, rnd)

	w, err := comp.NewWeighted(nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	type result struct {
		Workers int     `json:"workers"`
		Rows    int     `json:"rows"`
		Seconds float64 `json:"seconds"`
		RowsSec float64 `json:"rows_per_sec"`
	}
	var results []result
	for _, workers := range []int{1, runtime.NumCPU()} {
		start := time.Now()
		vecs, err := featurize.ApplyMany(context.Background(), w, items, featurize.Options{Workers: workers, IgnoreErrors: true})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		secs := time.Since(start).Seconds()
		results = append(results, result{Workers: workers, Rows: len(vecs), Seconds: secs, RowsSec: float64(len(vecs)) / secs})
	}

	if *jsonOut {
		_ = json.NewEncoder(os.Stdout).Encode(results)
		return
	}
	for _, r := range results {
		fmt.Printf("workers=%-3d rows=%d elapsed=%.3fs throughput=%.0f rows/s\n", r.Workers, r.Rows, r.Seconds, r.RowsSec)
	}
}
