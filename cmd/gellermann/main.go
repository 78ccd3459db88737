// Command gellermann checks and generates Gellermann series from the command
// line and exports them as CSV or TSV.
//
//	gellermann generate -n 10 -m 5 --seed 42 --choices L,R --format long -o orders.csv
//	gellermann enumerate -n 16 --count-only
//	gellermann check LLRRLRLLRR "A B B A"
//	gellermann sweep -n 10 --tolerances 0.1,0.2,0.3,0.4,0.5
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gellermann/config"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// newRootCmd wires the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gellermann",
		Short: "Check and generate Gellermann series",
		Long: `gellermann works with two-symbol trial orders for perception experiments.

A Gellermann series is balanced, has no run longer than three, keeps each half
balanced, reverses at most n/2 times and agrees with single and double
alternation on 50% ± tolerance of its positions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML generation profile")

	root.AddCommand(
		newGenerateCmd(a),
		newEnumerateCmd(a),
		newCheckCmd(a),
		newSweepCmd(a),
	)
	return root
}

// profile loads the --config file, or the defaults when none is given.
func (a *app) profile() (config.Profile, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	p, err := config.Load(a.configPath)
	if err != nil {
		return config.Profile{}, err
	}
	a.logger.Debug("Loaded profile", zap.String("path", a.configPath))
	return p, nil
}
