package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gellermann/predicate"
	"github.com/katalvlaran/gellermann/symbols"
)

func newCheckCmd(a *app) *cobra.Command {
	var tolerance float64
	cmd := &cobra.Command{
		Use:   "check SERIES...",
		Short: "Check whether series are Gellermann series",
		Long: `Each argument is one series, written either as one symbol per character
("LLRRLRLLRR") or as symbols separated by spaces or commas ("L L R R").
Invalid series are reported with the criteria they fail.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				s := symbols.Tokenize(arg)
				report, err := symbols.Explain(s, tolerance)
				if err != nil {
					a.logger.Error("Rejected series", zap.String("series", arg), zap.Error(err))
					return fmt.Errorf("series %q: %w", arg, err)
				}
				a.logger.Debug("Checked series", zap.String("series", arg), zap.Bool("valid", report.Valid()))
				if report.Valid() {
					fmt.Fprintf(out, "%s\tvalid\n", strings.Join(s, ""))
					continue
				}
				fmt.Fprintf(out, "%s\tinvalid\t%s\n", strings.Join(s, ""), strings.Join(report.Failed(), ","))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", predicate.DefaultTolerance, "alternation tolerance in [0, 0.5]")
	return cmd
}
