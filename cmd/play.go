package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guess/game"
	"github.com/gnoswap-labs/guess/internal"
	"github.com/gnoswap-labs/guess/internal/rng"
	"github.com/gnoswap-labs/guess/scanner"
)

var (
	seed           uint64
	rangeMin       int
	rangeMax       int
	noColor        bool
	noEcho         bool
	playJsonOutput bool
	outPath        string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game reading guesses from standard input",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig()
		if err != nil {
			logger.Error("Failed to load configuration", zap.String("path", cfgFile), zap.Error(err))
			return err
		}

		opts := playOptions{
			Config:  config,
			Seed:    seed,
			NoColor: noColor || !config.Color,
			NoEcho:  noEcho || !config.Echo,
			JSON:    playJsonOutput,
			OutPath: outPath,
		}
		if flagChanged(cmd, "min") {
			opts.Config.Range.Min = rangeMin
		}
		if flagChanged(cmd, "max") {
			opts.Config.Range.Max = rangeMax
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		return runPlay(ctx, logger, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command carries them
// too, since it behaves like play when given no subcommand.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the target (0 picks a random seed)")
	cmd.Flags().IntVar(&rangeMin, "min", 0, "Lowest possible target (overrides the config)")
	cmd.Flags().IntVar(&rangeMax, "max", 0, "Highest possible target (overrides the config)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&noEcho, "no-echo", false, "Do not print each guess back")
	cmd.Flags().BoolVar(&playJsonOutput, "json", false, "Print a JSON summary when the game ends")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the JSON summary to this path")
}

// flagChanged reports whether name was set on cmd or, as in
// `guess --min 5 play`, on the root command before the subcommand.
func flagChanged(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Changed(name) || cmd.Root().Flags().Changed(name)
}

type playOptions struct {
	Config  game.Config
	Seed    uint64
	NoColor bool
	NoEcho  bool
	JSON    bool
	OutPath string
}

func runPlay(ctx context.Context, logger *zap.Logger, in io.Reader, out io.Writer, opts playOptions) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	var src rng.Source = rng.NewRandomUniform()
	if opts.Seed != 0 {
		src = rng.NewUniform(opts.Seed)
	}

	session, err := game.NewSession(src, opts.Config.Range)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	printer := internal.NewPrinter(out, internal.PrinterOptions{
		NoColor: opts.NoColor,
		NoEcho:  opts.NoEcho,
	})

	summary, playErr := game.Play(ctx, logger, session, scanner.New(in), printer)
	if playErr != nil && !errors.Is(playErr, game.ErrInputExhausted) {
		logger.Error("Game aborted", zap.String("session", session.ID), zap.Error(playErr))
	}

	if err := writeSummary(logger, out, summary, opts.JSON, opts.OutPath); err != nil {
		return errors.Join(playErr, err)
	}
	return playErr
}

func writeSummary(logger *zap.Logger, out io.Writer, summary game.Summary, isJson bool, jsonOutput string) error {
	if !isJson && jsonOutput == "" {
		return nil
	}

	d, err := json.Marshal(summary)
	if err != nil {
		logger.Error("Error marshalling summary to JSON", zap.Error(err))
		return err
	}

	if jsonOutput == "" {
		fmt.Fprintln(out, string(d))
		return nil
	}

	if err := writeSummaryFile(jsonOutput, d); err != nil {
		logger.Error("Error writing JSON output file", zap.String("path", jsonOutput), zap.Error(err))
		return err
	}
	return nil
}

// writeSummaryFile writes d to path. A failed Close is reported, since that is
// where a write-back error surfaces.
func writeSummaryFile(path string, d []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(d)
	return err
}
