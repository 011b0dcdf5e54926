package cmd

import (
	"errors"

	"github.com/gnoswap-labs/guess/game"
)

// Exit codes returned by the guess CLI.
const (
	ExitSuccess = 0

	// ExitFailure covers any error without a more specific code.
	ExitFailure = 1

	// ExitInputExhausted means standard input ended before the number was guessed.
	ExitInputExhausted = 2

	// ExitConfigError means the configuration file could not be loaded or is invalid.
	ExitConfigError = 3
)

// ErrConfig marks errors caused by the configuration file.
var ErrConfig = errors.New("configuration error")

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, game.ErrInputExhausted):
		return ExitInputExhausted
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitFailure
	}
}
