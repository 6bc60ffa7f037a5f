package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"smash/pkg/cerr"
	"smash/pkg/panicerr"
)

// Builtin is a verb handled directly inside the shell process, never
// forked. args excludes the verb itself.
type Builtin func(s *State, stdout io.Writer, args []string) error

var builtins map[string]Builtin

func init() {
	builtins = map[string]Builtin{
		"showpid": builtinShowpid,
		"pwd":     builtinPwd,
		"cd":      builtinCd,
		"jobs":    builtinJobs,
		"kill":    builtinKill,
		"fg":      builtinFg,
		"alias":   builtinAlias,
		"unalias": builtinUnalias,
		"diff":    builtinDiff,
		"quit":    builtinQuit,
	}
}

// Executor ties tokenizing, alias expansion, parsing, and dispatch
// into the per-line data flow spec.md §2 describes. It carries no
// state of its own; everything mutable lives on the State passed to
// Execute, including the stdin fd used for terminal-control handoff.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs one input line to completion: tokenize, parse, then
// fold the && chain, alias-expanding each command just before it is
// dispatched and stopping at the first non-zero exit status. Parse/tokenize errors and an empty line both return cleanly;
// the caller (the REPL) just re-prompts.
func (e *Executor) Execute(line string, s *State, stdout io.Writer) {
	s.Reaper.Reconcile()

	tokens, err := Tokenize(line)
	if err != nil {
		writeErr(stdout, err)
		s.LastStatus = 1
		return
	}

	cmdList, err := Parse(tokens)
	if err != nil {
		writeErr(stdout, err)
		s.LastStatus = 1
		return
	}
	if cmdList == nil {
		return
	}

	commandText := StripTrailingBackground(line)

	status := 0
	for i := range cmdList.Commands {
		sc := cmdList.Commands[i]

		if sc.Args[0] != "alias" && sc.Args[0] != "unalias" {
			expanded, err := s.Aliases.Expand(sc.Args)
			if err != nil {
				writeErr(stdout, err)
				status = 1
				break
			}
			sc.Args = expanded
		}
		if len(sc.Args) == 0 {
			break
		}

		verb := sc.Args[0]
		args := sc.Args[1:]

		if fn, ok := builtins[verb]; ok {
			status = e.runBuiltin(s, fn, verb, args, stdout)
		} else {
			status = e.runExternal(s, sc, commandText, stdout)
		}
		s.LastStatus = status

		if s.Quit {
			break
		}
		if status != 0 && i < len(cmdList.Commands)-1 {
			break
		}
	}
}

func (e *Executor) runBuiltin(s *State, fn Builtin, verb string, args []string, stdout io.Writer) int {
	safe := panicerr.Safe(func() error {
		return fn(s, stdout, args)
	})
	if err := safe(); err != nil {
		writeErr(stdout, err)
		return 1
	}
	return 0
}

func (e *Executor) runExternal(s *State, sc SimpleCommand, commandText string, stdout io.Writer) int {
	path, err := exec.LookPath(sc.Args[0])
	if err != nil {
		writeErr(stdout, cerr.New(cerr.Lookup, "", fmt.Sprintf("%s: command not found", sc.Args[0]), err))
		return 127
	}

	cmd := exec.Command(path, sc.Args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stdout
	cmd.Stdin = os.Stdin
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		writeErr(stdout, cerr.New(cerr.Subprocess, "", "failed to start process", err))
		return 1
	}

	if sc.Background {
		s.Jobs.Add(cmd.Process.Pid, commandText)
		return 0
	}

	_ = setForegroundGroup(s.StdinFd, cmd.Process.Pid)
	status := waitPID(cmd.Process.Pid)
	_ = setForegroundGroup(s.StdinFd, s.ShellPID)
	return status
}

// waitPID blocks for pid's termination and converts its wait status
// into a POSIX-style exit code: WEXITSTATUS on normal exit, 128+signal
// if the process was killed by a signal.
func waitPID(pid int) int {
	var ws syscall.WaitStatus
	for {
		_, err := syscall.Wait4(pid, &ws, 0, nil)
		if err == syscall.EINTR {
			continue
		}
		break
	}
	switch {
	case ws.Signaled():
		return 128 + int(ws.Signal())
	default:
		return ws.ExitStatus()
	}
}

func writeErr(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())
}
