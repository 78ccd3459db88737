package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gellermann/config"
	"github.com/katalvlaran/gellermann/generator"
	"github.com/katalvlaran/gellermann/table"
)

// profileFlags mirrors config.Profile on the command line. Flags that are
// set override the loaded profile.
type profileFlags struct {
	length        int
	count         int
	tolerance     float64
	choices       []string
	seed          int64
	maxIterations int
	format        string
	output        string
}

// bind registers the flags on cmd. Count, seed and budget flags are only
// registered for sampling commands.
func (f *profileFlags) bind(cmd *cobra.Command, sampling bool) {
	d := config.Default()
	fs := cmd.Flags()
	fs.IntVarP(&f.length, "length", "n", d.Length, "series length (even)")
	fs.Float64VarP(&f.tolerance, "tolerance", "t", d.Tolerance, "alternation tolerance in [0, 0.5]")
	fs.StringSliceVar(&f.choices, "choices", d.Choices[:], "the two symbols, true symbol first")
	fs.StringVarP(&f.format, "format", "f", d.Format, "output format: wide, long or tsv")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	if sampling {
		fs.IntVarP(&f.count, "count", "m", d.Count, "number of series")
		fs.Int64Var(&f.seed, "seed", 0, "random seed (default: clock-seeded)")
		fs.IntVar(&f.maxIterations, "max-iterations", d.MaxIterations, "attempt budget per series, 0 for unbounded")
	}
}

// apply copies every changed flag into p and validates the result.
func (f *profileFlags) apply(cmd *cobra.Command, p *config.Profile) error {
	fs := cmd.Flags()
	if fs.Changed("length") {
		p.Length = f.length
	}
	if fs.Changed("tolerance") {
		p.Tolerance = f.tolerance
	}
	if fs.Changed("choices") {
		if len(f.choices) != 2 {
			return fmt.Errorf("--choices needs exactly two symbols, got %d: %w", len(f.choices), config.ErrInvalidProfile)
		}
		p.Choices = [2]string{f.choices[0], f.choices[1]}
	}
	if fs.Changed("format") {
		p.Format = f.format
	}
	if fs.Changed("output") {
		p.Output = f.output
	}
	if fs.Changed("count") {
		p.Count = f.count
	}
	if fs.Changed("seed") {
		seed := f.seed
		p.Seed = &seed
	}
	if fs.Changed("max-iterations") {
		p.MaxIterations = f.maxIterations
	}
	return p.Validate()
}

// generatorOptions returns the generator options every command shares.
func generatorOptions(p config.Profile) []generator.Option {
	return []generator.Option{generator.WithTolerance(p.Tolerance)}
}

// openOutput returns the destination named by path, or the command's
// output stream when path is empty. The returned closer is never nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}

// writeBatch renders batch in the profile format.
func writeBatch(w io.Writer, batch [][]string, format string) error {
	if format == config.FormatLong {
		l, err := table.ToLong(batch)
		if err != nil {
			return err
		}
		return table.Write(w, l, table.CSV)
	}

	wide, err := table.ToWide(batch)
	if err != nil {
		return err
	}
	if format == config.FormatTSV {
		return table.Write(w, wide, table.TSV)
	}
	return table.Write(w, wide, table.CSV)
}
