package profile

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileSchema mirrors the YAML layout of a profile file:
//
//	profiles:
//	  - position: K
//	    weights: {run: 0.10, pass: 0.10, kick: 0.80}
//	    retirement:
//	      min_career_years: 4
//	      force_retire_age: 45
//	      base_retire_age: 38
//	      base_probability_pct: 5
//	      skill_weight: 0.4
//	    age_curve:
//	      - {age: 38, multiplier: 1.0}
//	      - {age: 42, multiplier: 2.6}
type fileSchema struct {
	Profiles []Profile `koanf:"profiles"`
}

// LoadFile reads a YAML profile file and returns a validated registry.
// The file replaces the default set entirely; it does not merge with it.
func LoadFile(path string) (*Registry, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadProfiles, err)
	}

	var schema fileSchema
	if err := k.UnmarshalWithConf("", &schema, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadProfiles, err)
	}
	if len(schema.Profiles) == 0 {
		return nil, fmt.Errorf("%w: %s declares no profiles", ErrLoadProfiles, path)
	}
	return NewRegistry(schema.Profiles...)
}

// Load returns the registry for the given path, falling back to the stock
// set when the path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}
	return LoadFile(path)
}
