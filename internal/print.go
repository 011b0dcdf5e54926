package internal

import (
	"io"

	"github.com/fatih/color"

	tt "github.com/gnoswap-labs/guess/internal/types"
)

const (
	introMessage    = "Guess the number!"
	promptMessage   = "Please input your guess."
	tooSmallMessage = "Too small!"
	tooBigMessage   = "Too big!"
	winMessage      = "You win!"
)

type styles struct {
	intro  *color.Color
	prompt *color.Color
	guess  *color.Color
	miss   *color.Color
	win    *color.Color
}

func newStyles(noColor bool) styles {
	s := styles{
		intro:  color.New(color.FgHiBlue, color.Bold),
		prompt: color.New(color.FgCyan),
		guess:  color.New(color.FgWhite),
		miss:   color.New(color.FgYellow, color.Bold),
		win:    color.New(color.FgGreen, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{s.intro, s.prompt, s.guess, s.miss, s.win} {
			c.DisableColor()
		}
	}
	return s
}

// PrinterOptions controls what a Printer writes.
type PrinterOptions struct {
	NoColor bool
	// NoEcho suppresses the "You guessed: n" line.
	NoEcho bool
}

// Printer writes game messages to a terminal or any other writer.
type Printer struct {
	w      io.Writer
	styles styles
	echo   bool
}

func NewPrinter(w io.Writer, opts PrinterOptions) *Printer {
	return &Printer{
		w:      w,
		styles: newStyles(opts.NoColor),
		echo:   !opts.NoEcho,
	}
}

func (p *Printer) Intro(r tt.Range) {
	if r == tt.DefaultRange {
		p.styles.intro.Fprintln(p.w, introMessage)
		return
	}
	p.styles.intro.Fprintf(p.w, "Guess the number between %d and %d!\n", r.Min, r.Max)
}

func (p *Printer) Prompt() {
	p.styles.prompt.Fprintln(p.w, promptMessage)
}

func (p *Printer) Guessed(n int) {
	if !p.echo {
		return
	}
	p.styles.guess.Fprintf(p.w, "You guessed: %d\n", n)
}

func (p *Printer) Outcome(o tt.Outcome) {
	switch o {
	case tt.Less:
		p.styles.miss.Fprintln(p.w, tooSmallMessage)
	case tt.Greater:
		p.styles.miss.Fprintln(p.w, tooBigMessage)
	case tt.Equal:
		p.styles.win.Fprintln(p.w, winMessage)
	}
}
