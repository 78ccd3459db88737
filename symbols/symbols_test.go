package symbols_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gellermann/generator"
	"github.com/katalvlaran/gellermann/predicate"
	"github.com/katalvlaran/gellermann/symbols"
)

// TestIsGellermannSeries_Known mirrors classic left/right orders, both as
// token lists and as plain strings.
func TestIsGellermannSeries_Known(t *testing.T) {
	for _, text := range []string{
		"R R R L L R L R L L",
		"L L L R R L R L R R",
		"R R L R L R R L L L",
		"L L R L R L L R R R",
		"R R L L R L R R L L",
		"L L R R L R L L R R",
		"LLRRLRLLRR",
		"AABBABAABB",
		"B,B,A,B,A,B,B,A,A,A",
	} {
		ok, err := symbols.IsGellermannSeries(symbols.Tokenize(text), predicate.DefaultTolerance)
		require.NoError(t, err, text)
		assert.True(t, ok, text)
	}
}

// TestIsGellermannSeries_AlphabetAgnostic checks validity survives any
// bijection onto another two-symbol alphabet.
func TestIsGellermannSeries_AlphabetAgnostic(t *testing.T) {
	seq, err := generator.Sample(12, 20, generator.WithSeed(11), generator.WithTolerance(0.3))
	require.NoError(t, err)
	for s := range seq {
		lr := symbols.FromBoolean(s, symbols.Alphabet[string]{"L", "R"})
		ab := symbols.FromBoolean(s, symbols.Alphabet[string]{"B", "A"})
		ints := symbols.FromBoolean(s, symbols.Alphabet[int]{7, -7})

		for _, tol := range []float64{0, 0.1, 0.3} {
			want, err := symbols.IsGellermannSeries(lr, tol)
			require.NoError(t, err)
			got, err := symbols.IsGellermannSeries(ab, tol)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			got, err = symbols.IsGellermannSeries(ints, tol)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

// TestIsGellermannSeries_SelfReference checks a series starting with the
// second alphabet symbol is judged by its own first element.
func TestIsGellermannSeries_SelfReference(t *testing.T) {
	ok, err := symbols.IsGellermannSeries(strings.Split("RRLLRLRRLL", ""), predicate.DefaultTolerance)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsGellermannSeries_Tolerance(t *testing.T) {
	s := symbols.Tokenize("1112212122122211")
	ok, err := symbols.IsGellermannSeries(s, 0.2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = symbols.IsGellermannSeries(s, 0.0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsGellermannSeries_Errors(t *testing.T) {
	_, err := symbols.IsGellermannSeries([]string{"A", "B", "A"}, 0.1)
	assert.ErrorIs(t, err, symbols.ErrInvalidLength)

	_, err = symbols.IsGellermannSeries([]string{"A", "B", "C", "A"}, 0.1)
	assert.ErrorIs(t, err, symbols.ErrTooManySymbols)

	_, err = symbols.IsGellermannSeries([]string{"A", "B"}, 0.7)
	assert.ErrorIs(t, err, predicate.ErrInvalidTolerance)

	// length is checked before the symbol count
	_, err = symbols.IsGellermannSeries([]string{"A", "B", "C"}, 0.1)
	assert.ErrorIs(t, err, symbols.ErrInvalidLength)
}

func TestIsGellermannSeries_Empty(t *testing.T) {
	ok, err := symbols.IsGellermannSeries([]rune{}, 0.1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = symbols.IsGellermannSeries([]rune{}, -1)
	assert.ErrorIs(t, err, predicate.ErrInvalidTolerance)
}

// TestIsGellermannSeries_SingleSymbol checks a one-symbol series is allowed
// as input but never balanced.
func TestIsGellermannSeries_SingleSymbol(t *testing.T) {
	ok, err := symbols.IsGellermannSeries([]string{"A", "A", "A", "A"}, 0.5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExplain(t *testing.T) {
	r, err := symbols.Explain(symbols.Tokenize("ABABABABAB"), predicate.DefaultTolerance)
	require.NoError(t, err)
	assert.False(t, r.Valid())
	assert.Contains(t, r.Failed(), "reversals-bounded")

	_, err = symbols.Explain(symbols.Tokenize("ABA"), predicate.DefaultTolerance)
	assert.ErrorIs(t, err, symbols.ErrInvalidLength)
}

func TestToBoolean_FromBoolean(t *testing.T) {
	s := []string{"R", "L", "L", "R"}
	assert.Equal(t, predicate.Series{true, false, false, true}, symbols.ToBoolean(s))
	assert.Empty(t, symbols.ToBoolean([]string{}))

	b := predicate.Series{true, false, false, true}
	assert.Equal(t, []string{"X", "O", "O", "X"}, symbols.FromBoolean(b, symbols.Alphabet[string]{"X", "O"}))
}

// TestMappingsDiffer pins the asymmetry between the two mappings.
func TestMappingsDiffer(t *testing.T) {
	s := []string{"B", "A", "A", "B"}
	b := symbols.ToBoolean(s)
	back := symbols.FromBoolean(b, symbols.DefaultAlphabet)
	assert.Equal(t, []string{"A", "B", "B", "A"}, back)
}

func TestNewAlphabet(t *testing.T) {
	a, err := symbols.NewAlphabet("left", "right")
	require.NoError(t, err)
	assert.Equal(t, symbols.Alphabet[string]{"left", "right"}, a)

	_, err = symbols.NewAlphabet(1, 1)
	assert.ErrorIs(t, err, symbols.ErrInvalidAlphabet)
}

func TestMapSeq(t *testing.T) {
	seq, err := generator.Enumerate(10)
	require.NoError(t, err)
	got := slices.Collect(symbols.MapSeq(seq, symbols.DefaultAlphabet))
	require.Len(t, got, 8)
	assert.Equal(t, "BBBAABABAA", strings.Join(got[0], ""))
	assert.Equal(t, "AAABBABABB", strings.Join(got[7], ""))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"L", "R", "R"}, symbols.Tokenize("LRR"))
	assert.Equal(t, []string{"left", "right"}, symbols.Tokenize("left  right"))
	assert.Equal(t, []string{"A", "B"}, symbols.Tokenize("A, B"))
	assert.Empty(t, symbols.Tokenize(""))
}
