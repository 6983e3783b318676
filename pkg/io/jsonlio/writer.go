// Package jsonlio writes frames as JSON lines, one object per row.
package jsonlio

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/wdm0006/matfeat/pkg/frame"
)

// WriteAll writes a Frame to a JSONL file. NaN feature values are emitted
// as null, since JSON has no NaN literal.
func WriteAll(path string, f *frame.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	return Write(out, f)
}

// Write writes a Frame as JSONL to an arbitrary writer.
func Write(out io.Writer, f *frame.Frame) error {
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for r := 0; r < f.Rows(); r++ {
		m := map[string]any{}
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case frame.KindFloat:
				if v, ok := col.(*frame.FloatColumn).Get(r); ok {
					if math.IsNaN(v) {
						m[cs.Name] = nil
					} else {
						m[cs.Name] = v
					}
				}
			case frame.KindInt:
				if v, ok := col.(*frame.IntColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case frame.KindString:
				if v, ok := col.(*frame.StringColumn).Get(r); ok {
					m[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return w.Flush()
}
