package game

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/guess/internal/rng"
	tt "github.com/gnoswap-labs/guess/internal/types"
)

// Bisector is an automated player. It always guesses the midpoint of the
// interval the target can still be in, so it acts as both the input source and
// the reporter of a session.
type Bisector struct {
	lo, hi int
	last   int
}

var (
	_ LineReader = (*Bisector)(nil)
	_ Reporter   = (*Bisector)(nil)
)

func NewBisector(r tt.Range) *Bisector {
	return &Bisector{lo: r.Min, hi: r.Max}
}

// ReadLine returns the next guess. It reports io.EOF once the interval is
// empty, which only happens if the target lies outside the range it was given.
func (b *Bisector) ReadLine() (string, error) {
	if b.lo > b.hi {
		return "", io.EOF
	}
	b.last = midpoint(b.lo, b.hi)
	return strconv.Itoa(b.last), nil
}

// midpoint rounds toward lo and does not overflow for any lo <= hi.
func midpoint(lo, hi int) int {
	return lo + int(uint(hi-lo)/2)
}

func (b *Bisector) Intro(tt.Range) {}
func (b *Bisector) Prompt()        {}
func (b *Bisector) Guessed(int)    {}

func (b *Bisector) Outcome(o tt.Outcome) {
	switch o {
	case tt.Less:
		b.lo = b.last + 1
	case tt.Greater:
		b.hi = b.last - 1
	}
}

// SimulationOptions configures a batch of automated sessions.
type SimulationOptions struct {
	Range    tt.Range
	Sessions int
	// Workers bounds the number of sessions played at once. Zero means NumCPU.
	Workers int
	// Session i draws its target from a generator seeded with Seed+i.
	Seed uint64
	// Progress receives the progress bar. Nil discards it.
	Progress io.Writer
}

// SimulationStats aggregates the attempt counts of a simulation.
type SimulationStats struct {
	Sessions      int         `json:"sessions"`
	TotalAttempts int         `json:"total_attempts"`
	MinAttempts   int         `json:"min_attempts"`
	MaxAttempts   int         `json:"max_attempts"`
	MeanAttempts  float64     `json:"mean_attempts"`
	Histogram     map[int]int `json:"histogram"`
}

func (st *SimulationStats) add(attempts int) {
	if st.Sessions == 0 || attempts < st.MinAttempts {
		st.MinAttempts = attempts
	}
	if attempts > st.MaxAttempts {
		st.MaxAttempts = attempts
	}
	st.Sessions++
	st.TotalAttempts += attempts
	st.Histogram[attempts]++
}

// Simulate plays opts.Sessions games with a Bisector and returns the
// attempt statistics.
func Simulate(ctx context.Context, logger *zap.Logger, opts SimulationOptions) (SimulationStats, error) {
	stats := SimulationStats{Histogram: make(map[int]int)}

	if opts.Sessions <= 0 {
		return stats, fmt.Errorf("number of sessions must be positive, got %d", opts.Sessions)
	}
	if err := opts.Range.Validate(); err != nil {
		return stats, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	bar := progressbar.NewOptions(opts.Sessions,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("simulating"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Sessions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			s, err := NewSession(rng.NewUniform(opts.Seed+uint64(i)), opts.Range)
			if err != nil {
				return err
			}
			player := NewBisector(opts.Range)
			summary, err := Play(gctx, logger, s, player, player)
			if err != nil {
				logger.Error("Error playing session", zap.Int("session", i), zap.Error(err))
				return fmt.Errorf("session %d: %w", i, err)
			}

			mu.Lock()
			stats.add(summary.Attempts)
			mu.Unlock()
			_ = bar.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	_ = bar.Finish()

	stats.MeanAttempts = float64(stats.TotalAttempts) / float64(stats.Sessions)
	logger.Info("Simulation finished",
		zap.Int("sessions", stats.Sessions),
		zap.Float64("mean_attempts", stats.MeanAttempts),
		zap.Int("max_attempts", stats.MaxAttempts))
	return stats, nil
}
