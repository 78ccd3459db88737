package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gellermann/generator"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		length     int
		tolerances []float64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Count Gellermann series per tolerance",
		Long: `Counts the series of length n for every given tolerance. Each tolerance is
enumerated by its own worker; rows are printed in the order given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make([]int, len(tolerances))
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.GOMAXPROCS(0))
			for i, tol := range tolerances {
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					k, err := generator.Count(length, generator.WithTolerance(tol))
					if err != nil {
						return fmt.Errorf("tolerance %v: %w", tol, err)
					}
					a.logger.Debug("Counted series", zap.Float64("tolerance", tol), zap.Int("count", k))
					counts[i] = k
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				a.logger.Error("Sweep failed", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tolerance,count")
			for i, tol := range tolerances {
				fmt.Fprintf(out, "%s,%d\n", strconv.FormatFloat(tol, 'g', -1, 64), counts[i])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 10, "series length (even)")
	cmd.Flags().Float64SliceVar(&tolerances, "tolerances", []float64{0.1, 0.2, 0.3, 0.4, 0.5}, "tolerances to count")
	return cmd
}
