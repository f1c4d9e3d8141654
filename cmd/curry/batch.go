package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// batch is the content of a --batch file.
//
// In YAML:
//
//	inputs: [0, 10]
//	exprs:
//	  - src: x + 5
//	  - src: sin(pi / 2)
//	    inputs: [1]
//
// In TOML:
//
//	inputs = [0.0, 10.0]
//
//	[[exprs]]
//	src = "x + 5"
type batch struct {
	// Inputs are the values of x for entries that don't list their own.
	Inputs []float32 `yaml:"inputs" toml:"inputs"`
	Exprs  []entry   `yaml:"exprs" toml:"exprs"`
}

type entry struct {
	Src    string    `yaml:"src" toml:"src"`
	Inputs []float32 `yaml:"inputs" toml:"inputs"`
}

// batchFormat is a file format for batches.
type batchFormat int

const (
	formatUnknown batchFormat = iota
	formatYAML
	formatTOML
)

func (f batchFormat) String() string {
	switch f {
	case formatYAML:
		return "yaml"
	case formatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// formatOf detects a batch file's format from its extension.
func formatOf(name string) batchFormat {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".toml":
		return formatTOML
	default:
		return formatUnknown
	}
}

func loadBatch(name string) (*batch, error) {
	format := formatOf(name)
	if format == formatUnknown {
		return nil, fmt.Errorf("unknown batch file format for %s: want .yaml, .yml, or .toml", name)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	b, err := decodeBatch(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", name, err)
	}
	return b, nil
}

func decodeBatch(data []byte, format batchFormat) (*batch, error) {
	var b batch
	switch format {
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil {
			return nil, err
		}
	case formatTOML:
		md, err := toml.Decode(string(data), &b)
		if err != nil {
			return nil, err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("unknown key %s", undec[0])
		}
	default:
		panic("curry: decodeBatch with format " + format.String())
	}
	for i, e := range b.Exprs {
		if strings.TrimSpace(e.Src) == "" {
			return nil, fmt.Errorf("expression %d has no src", i+1)
		}
	}
	return &b, nil
}

// jobs lists the batch's expressions. Entries without inputs use the batch's
// inputs, or def if the batch has none.
func (b *batch) jobs(def []float32) []job {
	if len(b.Inputs) > 0 {
		def = b.Inputs
	}
	r := make([]job, 0, len(b.Exprs))
	for _, e := range b.Exprs {
		at := e.Inputs
		if len(at) == 0 {
			at = def
		}
		r = append(r, job{src: e.Src, at: at})
	}
	return r
}
