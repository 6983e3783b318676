package main

import "testing"

func TestDelimiterRune(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{"", ','},
		{",", ','},
		{"\t", '\t'},
		{";", ';'},
		{"§", '§'},
		{"。", '。'},
	}
	for _, c := range cases {
		if got := delimiterRune(c.in); got != c.want {
			t.Fatalf("delimiterRune(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
