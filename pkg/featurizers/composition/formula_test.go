package composition

import (
	"math"
	"testing"
)

func TestParseFormula(t *testing.T) {
	cases := []struct {
		in   string
		want map[string]float64
	}{
		{"Fe", map[string]float64{"Fe": 1}},
		{"Fe2O3", map[string]float64{"Fe": 2, "O": 3}},
		{"NaCl", map[string]float64{"Na": 1, "Cl": 1}},
		{"Ca(OH)2", map[string]float64{"Ca": 1, "O": 2, "H": 2}},
		{"Mg(Al(OH)2)2", map[string]float64{"Mg": 1, "Al": 2, "O": 4, "H": 4}},
		{"Fe0.5Ni0.5", map[string]float64{"Fe": 0.5, "Ni": 0.5}},
		{"CaCO3", map[string]float64{"Ca": 1, "C": 1, "O": 3}},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.in)
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v, want %v", c.in, got, c.want)
		}
		for el, n := range c.want {
			if math.Abs(got[el]-n) > 1e-12 {
				t.Fatalf("%s: %s = %v, want %v", c.in, el, got[el], n)
			}
		}
	}
}

func TestParseFormulaErrors(t *testing.T) {
	bad := []string{
		"",
		"Xx",       // unknown element
		"fe2O3",    // lowercase start
		"Fe2O3)",   // unbalanced
		"(Fe2O3",   // unbalanced
		"Fe2()3",   // empty group
		"2FeO",     // leading count
		"NotAForm", // unknown symbol run
	}
	for _, s := range bad {
		if _, err := ParseFormula(s); err == nil {
			t.Fatalf("%q: expected error", s)
		}
	}
}
