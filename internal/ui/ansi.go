package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// Printer writes themed, optionally colored output.
type Printer struct {
	out   io.Writer
	err   io.Writer
	theme Theme
	color bool
}

// NewPrinter colors output only when out is a terminal and the theme allows it.
// NO_COLOR in the environment turns color off.
func NewPrinter(out, errOut io.Writer, theme Theme) *Printer {
	color := !theme.NoColor && isTTY(out) && os.Getenv("NO_COLOR") == ""
	return &Printer{out: out, err: errOut, theme: theme, color: color}
}

// SetColor forces color on or off.
func (p *Printer) SetColor(on bool) { p.color = on && !p.theme.NoColor }

// Out is where normal output goes.
func (p *Printer) Out() io.Writer { return p.out }

// Err is where failures and hints go.
func (p *Printer) Err() io.Writer { return p.err }

func isTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// C wraps s in color when color is enabled.
func (p *Printer) C(color, s string) string {
	if !p.color || color == "" {
		return s
	}
	return color + s + reset
}

// Dim renders s faint.
func (p *Printer) Dim(s string) string { return p.C(dim, s) }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.C(p.theme.Success, symCheck+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.err, p.C(p.theme.Error, symCross+" "+msg))
}

// Hint prints a muted line to the error stream.
func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.err, p.C(p.theme.Muted, msg))
}
