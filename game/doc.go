// Package game implements a number-guessing session.
//
// A Session draws its target once from an injected rng.Source. Play then
// prompts, reads one line, and evaluates it until a guess equals the target.
// Lines that are not integers are dropped without comment. If the input ends
// before a win, Play returns ErrInputExhausted.
//
// Simulate runs many sessions against a Bisector, an automated binary-search
// player, and reports how many attempts they took.
package game
