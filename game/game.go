package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/guess/internal/rng"
	tt "github.com/gnoswap-labs/guess/internal/types"
)

// ErrInputExhausted is returned by Play when the input stream ends before the
// target has been guessed.
var ErrInputExhausted = errors.New("input exhausted before the number was guessed")

// LineReader supplies one line of text per call, blocking until it is available.
// End of stream is reported as io.EOF.
type LineReader interface {
	ReadLine() (string, error)
}

// Reporter receives everything a session wants to show the player.
type Reporter interface {
	Intro(r tt.Range)
	Prompt()
	Guessed(n int)
	Outcome(o tt.Outcome)
}

// Session holds the state of one game: a target drawn once and the guesses
// evaluated against it.
type Session struct {
	ID    string
	Range tt.Range

	target   int
	attempts int
	history  []int
	won      bool
}

// NewSession draws the target from src and returns a session ready to play.
func NewSession(src rng.Source, r tt.Range) (*Session, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:     uuid.NewString(),
		Range:  r,
		target: src.IntN(r.Min, r.Max),
	}, nil
}

// Target returns the secret value. It exists for summaries and tests.
func (s *Session) Target() int { return s.target }

func (s *Session) Attempts() int { return s.attempts }

func (s *Session) Won() bool { return s.won }

// Evaluate compares guess against the target and records it. Any integer is
// accepted; guesses outside the range are simply too small or too big.
func (s *Session) Evaluate(guess int) tt.Outcome {
	s.attempts++
	s.history = append(s.history, guess)

	switch {
	case guess < s.target:
		return tt.Less
	case guess > s.target:
		return tt.Greater
	default:
		s.won = true
		return tt.Equal
	}
}

// ParseGuess trims the line and parses it as a base-10 integer.
func ParseGuess(line string) tt.ParsedGuess {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return tt.ParsedGuess{}
	}
	return tt.ParsedGuess{Value: n, OK: true}
}

// Summary describes a session after (or during) play.
type Summary struct {
	ID       string `json:"id"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Target   int    `json:"target"`
	Attempts int    `json:"attempts"`
	Guesses  []int  `json:"guesses"`
	Won      bool   `json:"won"`
}

func (s *Session) Summary() Summary {
	guesses := make([]int, len(s.history))
	copy(guesses, s.history)
	return Summary{
		ID:       s.ID,
		Min:      s.Range.Min,
		Max:      s.Range.Max,
		Target:   s.target,
		Attempts: s.attempts,
		Guesses:  guesses,
		Won:      s.won,
	}
}

// Play runs the prompt/read/evaluate loop until the target is guessed.
// Lines that do not parse as integers are discarded and the player is prompted
// again. If the input ends first, Play returns an error wrapping
// ErrInputExhausted.
func Play(ctx context.Context, logger *zap.Logger, s *Session, in LineReader, out Reporter) (Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session", s.ID))
	logger.Debug("Session started", zap.Stringer("range", s.Range))

	out.Intro(s.Range)
	for {
		select {
		case <-ctx.Done():
			return s.Summary(), ctx.Err()
		default:
		}

		out.Prompt()
		line, err := readLine(ctx, in)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				logger.Debug("Session cancelled while waiting for input", zap.Error(err))
				return s.Summary(), err
			}
			if errors.Is(err, io.EOF) {
				return s.Summary(), fmt.Errorf("after %d attempts: %w", s.attempts, ErrInputExhausted)
			}
			return s.Summary(), fmt.Errorf("error reading guess: %w", err)
		}

		guess := ParseGuess(line)
		if !guess.OK {
			logger.Debug("Discarding malformed guess", zap.String("input", line))
			continue
		}

		out.Guessed(guess.Value)
		outcome := s.Evaluate(guess.Value)
		out.Outcome(outcome)
		logger.Debug("Guess evaluated",
			zap.Int("guess", guess.Value),
			zap.Stringer("outcome", outcome),
			zap.Int("attempts", s.attempts))

		if outcome.Terminal() {
			logger.Info("Session won", zap.Int("attempts", s.attempts))
			return s.Summary(), nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine returns as soon as either a line arrives or ctx is done. On
// cancellation the pending read is left to finish in the background; its
// result is dropped.
func readLine(ctx context.Context, in LineReader) (string, error) {
	if ctx.Done() == nil {
		return in.ReadLine()
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := in.ReadLine()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}
