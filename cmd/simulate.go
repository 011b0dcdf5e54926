package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guess/game"
)

// simulate command flags
var (
	sessions       int
	workers        int
	simulationSeed uint64
	simJsonOutput  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games with a bisecting player and report attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		opts := game.SimulationOptions{
			Range:    config.Range,
			Sessions: sessions,
			Workers:  workers,
			Seed:     simulationSeed,
			Progress: cmd.ErrOrStderr(),
		}
		return runSimulation(ctx, logger, cmd.OutOrStdout(), opts, simJsonOutput)
	},
}

func init() {
	simulateCmd.Flags().IntVar(&sessions, "sessions", 1000, "Number of games to play")
	simulateCmd.Flags().IntVar(&workers, "workers", 0, "Games played concurrently (0 means one per CPU)")
	simulateCmd.Flags().Uint64Var(&simulationSeed, "seed", 1, "Base seed; game i uses seed+i")
	simulateCmd.Flags().BoolVar(&simJsonOutput, "json", false, "Output statistics in JSON format")
}

func runSimulation(ctx context.Context, logger *zap.Logger, out io.Writer, opts game.SimulationOptions, isJson bool) error {
	stats, err := game.Simulate(ctx, logger, opts)
	if err != nil {
		if logger != nil {
			logger.Error("Error running simulation", zap.Error(err))
		}
		return err
	}

	if isJson {
		d, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(d))
		return nil
	}

	fmt.Fprintf(out, "\nsessions: %d\n", stats.Sessions)
	fmt.Fprintf(out, "attempts: min %d, max %d, mean %.2f\n", stats.MinAttempts, stats.MaxAttempts, stats.MeanAttempts)

	buckets := make([]int, 0, len(stats.Histogram))
	for attempts := range stats.Histogram {
		buckets = append(buckets, attempts)
	}
	sort.Ints(buckets)
	for _, attempts := range buckets {
		fmt.Fprintf(out, "  %2d: %d\n", attempts, stats.Histogram[attempts])
	}
	return nil
}
