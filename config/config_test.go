package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gellermann/config"
	"github.com/katalvlaran/gellermann/symbols"
)

func TestDefault_Valid(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, 10, p.Length)
	assert.Equal(t, 5, p.Count)
	assert.Equal(t, 0.1, p.Tolerance)
	assert.Equal(t, [2]string{"A", "B"}, p.Choices)
	assert.Nil(t, p.Seed)
	assert.Equal(t, config.FormatWide, p.Format)
}

// TestParse_PartialKeepsDefaults checks missing keys fall back to defaults.
func TestParse_PartialKeepsDefaults(t *testing.T) {
	p, err := config.Parse([]byte("length: 16\nchoices: [L, R]\nseed: 42\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, p.Length)
	assert.Equal(t, 5, p.Count)
	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(42), *p.Seed)

	a, err := p.Alphabet()
	require.NoError(t, err)
	assert.Equal(t, symbols.Alphabet[string]{"L", "R"}, a)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"odd length":     "length: 9",
		"zero count":     "count: 0",
		"tolerance":      "tolerance: 0.75",
		"same choices":   "choices: [X, X]",
		"negative":       "max_iterations: -1",
		"unknown format": "format: xlsx",
	} {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalidProfile, name)
	}

	_, err := config.Parse([]byte("length: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidProfile)
}

func TestLoad_RoundTrip(t *testing.T) {
	seed := int64(7)
	want := config.Default()
	want.Seed = &seed
	want.Format = config.FormatLong
	want.Output = "orders.csv"

	data, err := want.Marshal()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
