// Package internal holds the terminal side of the guess CLI.
//
// Printer is the output sink of a game session. It writes the intro, the
// prompt before every read, an optional echo of each parsed guess, and the
// outcome of every comparison:
//
//	Guess the number!
//	Please input your guess.
//	You guessed: 50
//	Too big!
//
// Messages are styled with fatih/color. Styling is dropped when
// PrinterOptions.NoColor is set, or process-wide when fatih/color finds that
// os.Stdout is not a terminal or NO_COLOR is set. The writer a Printer is
// given plays no part in that decision.
//
// Usage:
//
//	p := internal.NewPrinter(os.Stdout, internal.PrinterOptions{})
//	summary, err := game.Play(ctx, logger, session, scanner.New(os.Stdin), p)
package internal
