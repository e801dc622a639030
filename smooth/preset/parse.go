package preset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type document struct {
	Presets []Preset `yaml:"presets"`
}

// Parse reads a YAML preset table. Presets without a kind default to
// linear. Duplicate names within one table are rejected.
func Parse(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("preset: parse: %w", err)
	}

	r := NewRegistry()
	for i, p := range doc.Presets {
		if p.Kind == "" {
			p.Kind = KindLinear
		}
		if err := r.Register(p); err != nil {
			return nil, fmt.Errorf("preset: entry %d: %w", i, err)
		}
	}
	return r, nil
}

// Load parses data and merges it over the built-in presets.
func Load(data []byte) (*Registry, error) {
	parsed, err := Parse(data)
	if err != nil {
		return nil, err
	}
	r := Defaults()
	r.Merge(parsed)
	return r, nil
}
