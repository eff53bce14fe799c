// SPDX-License-Identifier: EPL-2.0

// Package config loads YAML preset files for the wavnoise CLI. A preset
// provides defaults for the tunable parameters; explicit command-line flags
// always win over preset values.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset holds optional parameter defaults. Pointer fields distinguish
// "not set in the file" from an explicit zero.
type Preset struct {
	// NoiseLevel is the Gaussian noise standard deviation in normalized
	// amplitude units.
	NoiseLevel *float64 `yaml:"noiseLevel"`
	// Seed for the noise generator; non-zero makes runs reproducible.
	Seed *int64 `yaml:"seed"`
	// BitDepth of the output file; 0 or absent means match the input.
	BitDepth *int `yaml:"bitDepth"`
}

// Load reads and parses the preset file at path.
func Load(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return p, nil
}

// LoadFromReader decodes a YAML preset from r. Unknown fields are an
// error so typos in preset files surface instead of being ignored.
func LoadFromReader(r io.Reader) (*Preset, error) {
	p := &Preset{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if err == io.EOF {
			// Empty file is a valid, empty preset.
			return p, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return p, nil
}
