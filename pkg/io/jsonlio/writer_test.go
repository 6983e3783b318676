package jsonlio

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/wdm0006/matfeat/pkg/frame"
)

func TestWriteJSONL(t *testing.T) {
	s := frame.Schema{Columns: []frame.ColumnSchema{
		{Name: "formula", Type: frame.KindString, Nullable: true},
		{Name: "feat", Type: frame.KindFloat, Nullable: true},
	}}
	f := frame.NewFrame(s)
	_ = f.AppendRow("Fe", 1.5)
	_ = f.AppendRow("Cu", math.NaN())

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatal(err)
	}
	dec := json.NewDecoder(&buf)
	var first, second map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatal(err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatal(err)
	}
	if first["formula"] != "Fe" || first["feat"] != 1.5 {
		t.Fatalf("row 0 = %v", first)
	}
	if v, ok := second["feat"]; !ok || v != nil {
		t.Fatalf("NaN cell = %v, want null", v)
	}
}
