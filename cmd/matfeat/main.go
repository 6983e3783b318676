package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"unicode/utf8"

	csvio "github.com/wdm0006/matfeat/pkg/io/csvio"
	jsonlio "github.com/wdm0006/matfeat/pkg/io/jsonlio"
	parquetio "github.com/wdm0006/matfeat/pkg/io/parquetio"

	"github.com/wdm0006/matfeat/pkg/featurize"
	comp "github.com/wdm0006/matfeat/pkg/featurizers/composition"
	"github.com/wdm0006/matfeat/pkg/profile"
)

var (
	version = "0.1.0-dev"
)

// delimiterRune decodes a configured delimiter string, which may be a
// multibyte character such as "§". Empty means comma.
func delimiterRune(s string) rune {
	if s == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

type Config struct {
	Input struct {
		Path      string   `json:"path" yaml:"path" toml:"path"`
		HasHeader bool     `json:"has_header" yaml:"has_header" toml:"has_header"`
		Delimiter string   `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
		Columns   []string `json:"columns" yaml:"columns" toml:"columns"`
	} `json:"input" yaml:"input" toml:"input"`
	Output struct {
		Path      string `json:"path" yaml:"path" toml:"path"`
		Type      string `json:"type" yaml:"type" toml:"type"` // csv|jsonl|parquet (default csv)
		Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	} `json:"output" yaml:"output" toml:"output"`
	Featurizers []json.RawMessage `json:"featurizers" yaml:"featurizers" toml:"featurizers"`
}

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to featurization config (JSON, YAML or TOML by extension)")
	workers := flag.Int("workers", 0, "Worker pool size. 1 runs sequentially, 0 uses all CPUs.")
	ignoreErrors := flag.Bool("ignore-errors", false, "Emit NaN rows for inputs that fail instead of aborting")
	returnErrors := flag.Bool("return-errors", false, "Record failure traces in an errors column (implies a need for -ignore-errors)")
	showProfile := flag.Bool("profile", false, "Print a summary of the computed features to stderr")
	flag.Parse()

	if *showVersion {
		fmt.Println("matfeat", version)
		return
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(cfg.Input.Columns) == 0 {
		fmt.Fprintln(os.Stderr, "config: input.columns is required")
		os.Exit(2)
	}

	feat, err := buildFeaturizer(cfg.Featurizers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rdr, file, err := csvio.Open(cfg.Input.Path, csvio.ReaderOptions{HasHeader: cfg.Input.HasHeader, Delimiter: delimiterRune(cfg.Input.Delimiter), SampleRows: 100})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = file.Close() }()
	schema, err := rdr.InferSchema()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fr, err := rdr.ReadAll(schema)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Featurizers that learn a vocabulary fit on the input itself.
	items, err := featurize.FrameItems(fr, cfg.Input.Columns)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := featurize.Fit(context.Background(), feat, items); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := featurize.Options{Workers: *workers, IgnoreErrors: *ignoreErrors, ReturnErrors: *returnErrors}
	out, err := featurize.ApplyFrame(context.Background(), feat, fr, cfg.Input.Columns, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *showProfile {
		labels := feat.Labels()
		vecs := make([]featurize.Vector, out.Rows())
		for r := range vecs {
			vals := make([]float64, len(labels))
			for j, l := range labels {
				vals[j] = math.NaN()
				if v, err := out.Value(r, l); err == nil {
					if x, ok := v.(float64); ok {
						vals[j] = x
					}
				}
			}
			vecs[r] = featurize.Vector{Values: vals}
		}
		rep, err := profile.Profile(labels, vecs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprint(os.Stderr, rep.String())
	}

	switch cfg.Output.Type {
	case "", "csv":
		if err := csvio.WriteAll(cfg.Output.Path, out, csvio.WriterOptions{Delimiter: delimiterRune(cfg.Output.Delimiter)}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "jsonl":
		if err := jsonlio.WriteAll(cfg.Output.Path, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "parquet":
		if err := parquetio.WriteAll(cfg.Output.Path, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unsupported output type %q\n", cfg.Output.Type)
		os.Exit(2)
	}
}

// buildFeaturizer assembles the configured featurizers into a single Set.
// Each entry is an object with one key naming the featurizer kind.
func buildFeaturizer(raws []json.RawMessage) (featurize.Featurizer, error) {
	var fs []featurize.Featurizer
	for _, raw := range raws {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(raw, &probe); err != nil {
			return nil, err
		}
		for k, v := range probe {
			switch k {
			case "weighted":
				var s struct {
					Properties []string `json:"properties"`
					Stats      []string `json:"stats"`
				}
				if err := json.Unmarshal(v, &s); err != nil {
					return nil, err
				}
				w, err := comp.NewWeighted(s.Properties, s.Stats)
				if err != nil {
					return nil, err
				}
				fs = append(fs, w)
			case "counter":
				var s struct {
					Elements []string `json:"elements"`
				}
				if err := json.Unmarshal(v, &s); err != nil {
					return nil, err
				}
				c, err := comp.NewCounter(s.Elements...)
				if err != nil {
					return nil, err
				}
				fs = append(fs, c)
			default:
				return nil, fmt.Errorf("unknown featurizer %q", k)
			}
		}
	}
	if len(fs) == 0 {
		return nil, fmt.Errorf("config: no featurizers configured")
	}
	if len(fs) == 1 {
		return fs[0], nil
	}
	return featurize.NewSet("", fs...)
}
