// Package config loads generation profiles from YAML.
//
// A profile captures everything one generation run needs, so an experiment's
// trial orders can be regenerated from a checked-in file:
//
//	length: 10
//	count: 5
//	tolerance: 0.1
//	choices: [L, R]
//	seed: 42
//	max_iterations: 1000
//	format: wide
//	output: orders.csv
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gellermann/predicate"
	"github.com/katalvlaran/gellermann/symbols"
)

// ErrInvalidProfile indicates a profile field with an unusable value.
var ErrInvalidProfile = errors.New("config: invalid profile")

// Output formats accepted in Profile.Format.
const (
	FormatWide = "wide"
	FormatLong = "long"
	FormatTSV  = "tsv"
)

// Default values.
const (
	DefaultLength        = 10
	DefaultCount         = 5
	DefaultMaxIterations = 1000
)

// Profile holds one generation run.
type Profile struct {
	Length        int       `yaml:"length"`         // n, even
	Count         int       `yaml:"count"`          // m, positive
	Tolerance     float64   `yaml:"tolerance"`      // [0, 0.5]
	Choices       [2]string `yaml:"choices"`        // true symbol first
	Seed          *int64    `yaml:"seed"`           // nil => clock-seeded
	MaxIterations int       `yaml:"max_iterations"` // per-series attempt budget, 0 => unbounded
	Format        string    `yaml:"format"`         // wide | long | tsv
	Output        string    `yaml:"output"`         // empty => stdout
}

// Default returns the profile used when no file is given.
func Default() Profile {
	return Profile{
		Length:        DefaultLength,
		Count:         DefaultCount,
		Tolerance:     predicate.DefaultTolerance,
		Choices:       [2]string(symbols.DefaultAlphabet),
		MaxIterations: DefaultMaxIterations,
		Format:        FormatWide,
	}
}

// Load reads and validates the profile at path. Missing keys keep their
// defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile over Default().
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Marshal renders p as YAML.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Alphabet returns the choices as an alphabet.
func (p Profile) Alphabet() (symbols.Alphabet[string], error) {
	return symbols.NewAlphabet(p.Choices[0], p.Choices[1])
}

// Validate checks every field; the first offending field is reported.
func (p Profile) Validate() error {
	switch {
	case p.Length < 0 || p.Length%2 != 0:
		return fmt.Errorf("length %d must be even and non-negative: %w", p.Length, ErrInvalidProfile)
	case p.Count <= 0:
		return fmt.Errorf("count %d must be positive: %w", p.Count, ErrInvalidProfile)
	case !predicate.ValidTolerance(p.Tolerance):
		return fmt.Errorf("tolerance %v must be within [0, 0.5]: %w", p.Tolerance, ErrInvalidProfile)
	case p.Choices[0] == p.Choices[1]:
		return fmt.Errorf("choices %q and %q must differ: %w", p.Choices[0], p.Choices[1], ErrInvalidProfile)
	case p.MaxIterations < 0:
		return fmt.Errorf("max_iterations %d must not be negative: %w", p.MaxIterations, ErrInvalidProfile)
	}
	switch p.Format {
	case FormatWide, FormatLong, FormatTSV:
		return nil
	default:
		return fmt.Errorf("format %q must be one of wide, long, tsv: %w", p.Format, ErrInvalidProfile)
	}
}
