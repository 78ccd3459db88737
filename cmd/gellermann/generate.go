package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gellermann"
	"github.com/katalvlaran/gellermann/config"
	"github.com/katalvlaran/gellermann/generator"
)

// defaultMaxStalls bounds consecutive pulls that exhaust their budget
// without producing a series.
const defaultMaxStalls = 100

// errNoProgress is returned when generation keeps exhausting its budget.
var errNoProgress = errors.New("no series found within the attempt budget")

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags     profileFlags
		maxStalls int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random Gellermann series",
		Long: `Draws series one at a time by rejection sampling. Each draw gets its own
attempt budget (--max-iterations) on a shared random stream, so a run with a
fixed --seed is reproducible. Interrupting discards the partial batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			if err = flags.apply(cmd, &p); err != nil {
				return err
			}
			batch, err := a.generate(cmd.Context(), p, maxStalls)
			if err != nil {
				return err
			}
			w, closeOut, err := openOutput(cmd, p.Output)
			if err != nil {
				return err
			}
			if err = writeBatch(w, batch, p.Format); err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}
	flags.bind(cmd, true)
	cmd.Flags().IntVar(&maxStalls, "max-stalls", defaultMaxStalls, "give up after this many consecutive fruitless draws, 0 for never")
	return cmd
}

// generate collects p.Count series, pulling one per call so that progress
// is reported and cancellation is honoured between series.
func (a *app) generate(ctx context.Context, p config.Profile, maxStalls int) ([][]string, error) {
	alphabet, err := p.Alphabet()
	if err != nil {
		return nil, err
	}
	seed := time.Now().UnixNano()
	if p.Seed != nil {
		seed = *p.Seed
	}
	rng := rand.New(rand.NewSource(seed))
	opts := append(generatorOptions(p),
		generator.WithRand(rng),
		generator.WithMaxIterations(p.MaxIterations))

	a.logger.Info("Generating series",
		zap.Int("length", p.Length),
		zap.Int("count", p.Count),
		zap.Float64("tolerance", p.Tolerance),
		zap.Int64("seed", seed))

	batch := make([][]string, 0, p.Count)
	stalls := 0
	for len(batch) < p.Count {
		if err = ctx.Err(); err != nil {
			a.logger.Warn("Generation cancelled", zap.Int("generated", len(batch)))
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}
		seq, err := gellermann.GenerateGellermannSeries(p.Length, 1, alphabet, opts...)
		if err != nil {
			return nil, err
		}
		found := false
		for s := range seq {
			batch = append(batch, s)
			found = true
		}
		if found {
			stalls = 0
			a.logger.Debug("Progress", zap.Int("generated", len(batch)), zap.Int("count", p.Count))
			continue
		}
		stalls++
		a.logger.Debug("Attempt budget exhausted", zap.Int("stalls", stalls), zap.Int("max_iterations", p.MaxIterations))
		if maxStalls > 0 && stalls >= maxStalls {
			return nil, fmt.Errorf("length %d after %d draws of %d attempts: %w", p.Length, stalls, p.MaxIterations, errNoProgress)
		}
	}
	a.logger.Info("Generated series", zap.Int("count", len(batch)))
	return batch, nil
}
