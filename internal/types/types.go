package types

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range has Min greater than Max.
var ErrInvalidRange = errors.New("invalid range")

// Outcome is the result of comparing a guess against the session target.
type Outcome int

const (
	Less Outcome = iota
	Greater
	Equal
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool {
	return o == Equal
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// DefaultRange is the interval targets are drawn from unless configured otherwise.
var DefaultRange = Range{Min: 1, Max: 100}

func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// ParsedGuess is the tagged result of parsing one line of input.
// OK is false when the line did not hold an integer; Value is then zero.
type ParsedGuess struct {
	Value int
	OK    bool
}
