package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/gellermann/config"
	"github.com/katalvlaran/gellermann/symbols"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// run executes the command tree with args and returns its stdout.
func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(&app{logger: zap.NewNop()})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerate_WideDeterministic(t *testing.T) {
	out, err := run(t, context.Background(), "generate", "-n", "10", "-m", "3", "--seed", "42")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 4)
	assert.Equal(t, "series_i,element_0,element_1,element_2,element_3,element_4,element_5,element_6,element_7,element_8,element_9", rows[0])
	for i, row := range rows[1:] {
		cells := strings.Split(row, ",")
		require.Len(t, cells, 11)
		assert.Equal(t, string(rune('0'+i)), cells[0])
		ok, err := symbols.IsGellermannSeries(cells[1:], 0.1)
		require.NoError(t, err)
		assert.True(t, ok, row)
	}

	again, err := run(t, context.Background(), "generate", "-n", "10", "-m", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_LongAndTSV(t *testing.T) {
	long, err := run(t, context.Background(), "generate", "-n", "10", "-m", "2", "--seed", "1", "--format", "long", "--choices", "L,R")
	require.NoError(t, err)
	rows := lines(long)
	require.Len(t, rows, 1+2*10)
	assert.Equal(t, "series_i,element_i,element", rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "0,0,"))
	assert.True(t, strings.HasPrefix(rows[20], "1,9,"))

	tsv, err := run(t, context.Background(), "generate", "-n", "10", "-m", "2", "--seed", "1", "--format", "tsv", "--choices", "L,R")
	require.NoError(t, err)
	trows := lines(tsv)
	require.Len(t, trows, 2)
	assert.Len(t, strings.Split(trows[0], "\t"), 10)

	// both renderings carry the same batch
	var fromLong []string
	for _, r := range rows[1:11] {
		fromLong = append(fromLong, r[strings.LastIndex(r, ",")+1:])
	}
	assert.Equal(t, strings.Join(fromLong, "\t"), trows[0])
}

// TestGenerate_ConfigAndOverride checks flags override the profile file and
// that output goes to the configured file.
func TestGenerate_ConfigAndOverride(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "orders.csv")
	profile := filepath.Join(dir, "profile.yaml")
	doc := "length: 14\ncount: 2\nseed: 9\nchoices: [X, O]\noutput: " + dest + "\n"
	require.NoError(t, os.WriteFile(profile, []byte(doc), 0o644))

	out, err := run(t, context.Background(), "--config", profile, "generate", "-m", "4")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	rows := lines(string(data))
	require.Len(t, rows, 5)
	assert.Len(t, strings.Split(rows[0], ","), 15)
	assert.NotContains(t, rows[1], "A")
}

func TestGenerate_NoProgress(t *testing.T) {
	_, err := run(t, context.Background(), "generate", "-n", "8", "-m", "1", "--seed", "1", "--max-iterations", "10", "--max-stalls", "3")
	assert.ErrorIs(t, err, errNoProgress)
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := run(t, ctx, "generate", "-n", "10", "-m", "3", "--seed", "1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out, "a cancelled run must not write a partial batch")
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := run(t, context.Background(), "generate", "-n", "9")
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
	_, err = run(t, context.Background(), "generate", "--choices", "A,B,C")
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
	_, err = run(t, context.Background(), "generate", "--tolerance", "0.9")
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
}

func TestEnumerate(t *testing.T) {
	out, err := run(t, context.Background(), "enumerate", "-n", "10", "--count-only")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	out, err = run(t, context.Background(), "enumerate", "-n", "10", "--choices", "L,R")
	require.NoError(t, err)
	rows := lines(out)
	require.Len(t, rows, 9)
	assert.Equal(t, "0,R,R,R,L,L,R,L,R,L,L", rows[1])
	assert.Equal(t, "7,L,L,L,R,R,L,R,L,R,R", rows[8])

	out, err = run(t, context.Background(), "enumerate", "-n", "10", "-t", "0.5", "--count-only")
	require.NoError(t, err)
	assert.Equal(t, "86\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, context.Background(), "check", "LLRRLRLLRR", "A B A B A B A B A B")
	require.NoError(t, err)
	assert.Equal(t, "LLRRLRLLRR\tvalid\nABABABABAB\tinvalid\treversals-bounded,near-chance-alternation\n", out)

	_, err = run(t, context.Background(), "check", "ABA")
	assert.ErrorIs(t, err, symbols.ErrInvalidLength)
	_, err = run(t, context.Background(), "check", "ABCA")
	assert.ErrorIs(t, err, symbols.ErrTooManySymbols)
}

func TestSweep(t *testing.T) {
	out, err := run(t, context.Background(), "sweep", "-n", "10")
	require.NoError(t, err)
	assert.Equal(t, "tolerance,count\n0.1,8\n0.2,32\n0.3,72\n0.4,84\n0.5,86\n", out)

	_, err = run(t, context.Background(), "sweep", "-n", "11")
	assert.Error(t, err)
}
