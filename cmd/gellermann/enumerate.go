package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gellermann"
)

func newEnumerateCmd(a *app) *cobra.Command {
	var (
		flags     profileFlags
		countOnly bool
	)
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "List every Gellermann series of a given length",
		Long: `Enumerates all 2^n candidates in counting order (second symbol first) and
writes the valid ones. The cost doubles with every extra element; lengths
beyond about 24 take a long time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			if err = flags.apply(cmd, &p); err != nil {
				return err
			}
			alphabet, err := p.Alphabet()
			if err != nil {
				return err
			}
			seq, err := gellermann.GenerateAllGellermannSeries(p.Length, alphabet, generatorOptions(p)...)
			if err != nil {
				return err
			}

			a.logger.Info("Enumerating series", zap.Int("length", p.Length), zap.Float64("tolerance", p.Tolerance))
			var (
				batch [][]string
				count int
			)
			for s := range seq {
				if err = cmd.Context().Err(); err != nil {
					return fmt.Errorf("enumeration cancelled: %w", err)
				}
				count++
				if !countOnly {
					batch = append(batch, s)
				}
			}
			a.logger.Info("Enumerated series", zap.Int("count", count))

			w, closeOut, err := openOutput(cmd, p.Output)
			if err != nil {
				return err
			}
			if countOnly {
				_, err = fmt.Fprintln(w, count)
			} else {
				err = writeBatch(w, batch, p.Format)
			}
			if err != nil {
				_ = closeOut()
				return err
			}
			return closeOut()
		},
	}
	flags.bind(cmd, false)
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "print only the number of series")
	return cmd
}
