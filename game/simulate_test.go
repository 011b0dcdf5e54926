package game

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guess/internal/rng"
	tt "github.com/gnoswap-labs/guess/internal/types"
)

func TestBisectorFindsEveryTarget(t *testing.T) {
	t.Parallel()
	for target := tt.DefaultRange.Min; target <= tt.DefaultRange.Max; target++ {
		s, err := NewSession(rng.Fixed(target), tt.DefaultRange)
		require.NoError(t, err)
		player := NewBisector(tt.DefaultRange)

		summary, err := Play(context.Background(), nil, s, player, player)
		require.NoError(t, err, "target %d", target)
		assert.LessOrEqual(t, summary.Attempts, 7, "target %d", target)
	}
}

func TestBisectorGivesUpOutsideRange(t *testing.T) {
	t.Parallel()
	s, err := NewSession(rng.Fixed(500), tt.Range{Min: 1, Max: 1000})
	require.NoError(t, err)
	player := NewBisector(tt.Range{Min: 1, Max: 100})

	_, err = Play(context.Background(), nil, s, player, player)
	assert.ErrorIs(t, err, ErrInputExhausted)
}

func TestSimulate(t *testing.T) {
	t.Parallel()
	var progress bytes.Buffer

	stats, err := Simulate(context.Background(), zap.NewNop(), SimulationOptions{
		Range:    tt.DefaultRange,
		Sessions: 200,
		Workers:  4,
		Seed:     1,
		Progress: &progress,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, stats.Sessions)
	assert.GreaterOrEqual(t, stats.MinAttempts, 1)
	assert.LessOrEqual(t, stats.MaxAttempts, 7)
	assert.InDelta(t, float64(stats.TotalAttempts)/200, stats.MeanAttempts, 1e-9)

	total := 0
	for attempts, count := range stats.Histogram {
		assert.True(t, attempts >= stats.MinAttempts && attempts <= stats.MaxAttempts)
		total += count
	}
	assert.Equal(t, 200, total)
	assert.NotEmpty(t, progress.String())
}

func TestSimulateDeterministic(t *testing.T) {
	t.Parallel()
	opts := SimulationOptions{Range: tt.DefaultRange, Sessions: 50, Workers: 3, Seed: 7}

	a, err := Simulate(context.Background(), nil, opts)
	require.NoError(t, err)
	b, err := Simulate(context.Background(), nil, opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulateInvalidOptions(t *testing.T) {
	t.Parallel()
	_, err := Simulate(context.Background(), nil, SimulationOptions{Range: tt.DefaultRange})
	assert.Error(t, err)

	_, err = Simulate(context.Background(), nil, SimulationOptions{Range: tt.Range{Min: 9, Max: 1}, Sessions: 1})
	assert.ErrorIs(t, err, tt.ErrInvalidRange)
}

func TestSimulateCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, nil, SimulationOptions{Range: tt.DefaultRange, Sessions: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMidpoint(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		lo, hi   int
		expected int
	}{
		{"default range", 1, 100, 50},
		{"single value", 7, 7, 7},
		{"negative", -10, -1, -6},
		{"zero to max", 0, math.MaxInt, math.MaxInt / 2},
		{"full width", math.MinInt, math.MaxInt, -1},
		{"top two values", math.MaxInt - 1, math.MaxInt, math.MaxInt - 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, midpoint(tc.lo, tc.hi))
		})
	}
}

func TestBisectorFullWidthRange(t *testing.T) {
	t.Parallel()
	full := tt.Range{Min: math.MinInt, Max: math.MaxInt}

	for _, target := range []int{math.MinInt, math.MinInt + 1, -1, 0, 1, math.MaxInt - 1, math.MaxInt} {
		s, err := NewSession(rng.Fixed(target), full)
		require.NoError(t, err)
		player := NewBisector(full)

		summary, err := Play(context.Background(), nil, s, player, player)
		require.NoError(t, err, "target %d", target)
		assert.LessOrEqual(t, summary.Attempts, 65, "target %d", target)
	}
}

func TestSimulateWideRange(t *testing.T) {
	t.Parallel()
	stats, err := Simulate(context.Background(), nil, SimulationOptions{
		Range:    tt.Range{Min: 0, Max: math.MaxInt},
		Sessions: 20,
		Workers:  2,
		Seed:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Sessions)
	assert.LessOrEqual(t, stats.MaxAttempts, 64)
}
