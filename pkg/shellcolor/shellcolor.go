// Package shellcolor colors the prompt smash writes to an interactive
// terminal, and offers error and trace renderings that the shell does
// not currently call. It never touches the bit-exact transcript output
// of jobs, pwd, or diff, which tests compare verbatim.
package shellcolor

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Scheme decides whether output gets colored and renders the handful
// of roles smash's REPL needs: the prompt, an error line, and a trace
// annotation.
type Scheme struct {
	enabled bool
}

// New builds a Scheme for the given output stream. forceColor and
// noColor mirror the --no-color flag and auto-detection; when neither
// is set, color is enabled only if w is a terminal and NO_COLOR/
// FORCE_COLOR environment variables (https://no-color.org/) don't
// override that. A non-empty NO_COLOR disables color even when
// forceColor is set.
func New(w io.Writer, noColor, forceColor bool) *Scheme {
	enabled := isTerminal(w)
	if os.Getenv("FORCE_COLOR") != "" {
		enabled = true
	}
	if noColor {
		enabled = false
	}
	if forceColor {
		enabled = true
	}
	if os.Getenv("NO_COLOR") != "" {
		enabled = false
	}
	return &Scheme{enabled: enabled}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Scheme) colorize(c *color.Color, format string, args ...any) string {
	if !s.enabled {
		return fmt.Sprintf(format, args...)
	}
	return c.Sprintf(format, args...)
}

// Prompt renders the "smash > " prompt, cyan when color is enabled.
func (s *Scheme) Prompt(text string) string {
	return s.colorize(color.New(color.FgCyan), "%s", text)
}

// Error renders a "smash error: ..." line in red.
func (s *Scheme) Error(text string) string {
	return s.colorize(color.New(color.FgRed), "%s", text)
}

// Trace renders a --trace diagnostic annotation in yellow.
func (s *Scheme) Trace(text string) string {
	return s.colorize(color.New(color.FgYellow), "%s", text)
}

// Enabled reports whether this scheme colors its output.
func (s *Scheme) Enabled() bool {
	return s.enabled
}
