package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"smash/pkg/shellcolor"
	"smash/pkg/shellformat"
)

const prompt = "smash > "

// REPL is the prompt/read/parse/execute loop spec.md §4.8/§6 describes.
type REPL struct {
	state    *State
	executor *Executor
	in       *bufio.Scanner
	out      io.Writer
	colors   *shellcolor.Scheme
	trace    bool
}

// NewREPL builds a REPL reading from in and writing to out. lineMax
// sets the scanner's buffer size; spec.md documents an 80-byte line
// but requires accepting at least 512.
func NewREPL(state *State, in io.Reader, out io.Writer, colors *shellcolor.Scheme, trace bool, lineMax int) *REPL {
	if lineMax < 512 {
		lineMax = 512
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, lineMax), lineMax)
	return &REPL{
		state:    state,
		executor: NewExecutor(),
		in:       scanner,
		out:      out,
		colors:   colors,
		trace:    trace,
	}
}

// Run loops until quit or EOF, returning the process exit code: always
// 0 per spec.md §6 (non-zero is reserved for initialization failure,
// which happens before Run is ever called).
func (r *REPL) Run() int {
	defer r.state.Reaper.Stop()
	for {
		r.state.Reaper.Reconcile()
		fmt.Fprint(r.out, r.colors.Prompt(prompt))

		if !r.in.Scan() {
			return 0
		}
		line := r.in.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if r.trace {
			r.emitTrace(line)
		}

		r.executor.Execute(line, r.state, r.out)
		if r.state.Quit {
			return 0
		}
	}
}

// emitTrace logs the reformatted command line to the shell's
// diagnostic logger (never stdout) when --trace is on.
func (r *REPL) emitTrace(line string) {
	formatted, err := shellformat.Format(line)
	if err != nil {
		formatted = line
	}
	r.state.Log.DebugContext(r.state.LogCtx, "exec", "line", strings.TrimRight(formatted, "\n"))
}
