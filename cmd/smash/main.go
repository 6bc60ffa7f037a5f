// Command smash is an interactive Unix shell: a line-oriented parser
// and dispatcher, alias expansion, a job table for background
// processes, and a handful of built-ins.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"

	"smash/internal/config"
	"smash/internal/shell"
	"smash/pkg/clog"
	"smash/pkg/shellcolor"
)

var (
	app = kingpin.New("smash", "An interactive Unix command shell.")

	trace   = app.Flag("trace", "Echo each parsed command line to the diagnostic log.").Bool()
	noColor = app.Flag("no-color", "Disable ANSI color on the prompt.").Bool()
	lineMax = app.Flag("line-max", "Maximum accepted input line length in bytes.").Int()
	cfgPath = app.Flag("config", "Optional YAML file of ambient settings.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smash: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *cfgPath != "" {
		fileSettings, err := config.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "smash: failed to read %s: %v\n", *cfgPath, err)
			os.Exit(1)
		}
		env = env.Merge(fileSettings)
	}
	if *trace {
		env.Trace = true
	}
	if *noColor {
		env.Color = false
	}
	if *lineMax != 0 {
		env.LineMax = *lineMax
	}

	var handler slog.Handler = clog.NewTextHandler(os.Stderr,
		clog.WithColor(env.Color),
		clog.WithLevel(env.SlogLevel()),
	)
	handler = clog.NewAttributesHandler(handler)
	log := slog.New(handler)
	if !env.Trace {
		log = slog.New(discardHandler{})
	}

	// The shell ignores SIGINT/SIGTSTP itself so the terminal's default
	// process-group delivery only ever reaches a foreground child.
	signal.Ignore(syscall.SIGINT, syscall.SIGTSTP)

	state := shell.NewState(log)
	state.ShellPID = os.Getpid()
	state.StdinFd = int(os.Stdin.Fd())

	// forceColor stays false here: env.Color merely means color isn't
	// disabled, not that it should override isatty/FORCE_COLOR
	// detection. Only --no-color/SMASH_COLOR=false/NO_COLOR forces a
	// value; everything else is left to Scheme's own auto-detection.
	colors := shellcolor.New(os.Stdout, !env.Color, false)
	repl := shell.NewREPL(state, os.Stdin, os.Stdout, colors, env.Trace, env.LineMax)

	os.Exit(repl.Run())
}

// discardHandler is used when --trace/SMASH_TRACE is off, so the
// shell never pays for formatting log records nobody reads.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
