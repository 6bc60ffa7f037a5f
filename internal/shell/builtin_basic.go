package shell

import (
	"fmt"
	"io"
	"os"

	"smash/pkg/cerr"
)

func builtinShowpid(s *State, stdout io.Writer, _ []string) error {
	fmt.Fprintf(stdout, "smash pid is %d\n", s.ShellPID)
	return nil
}

func builtinPwd(_ *State, stdout io.Writer, _ []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return cerr.New(cerr.Filesystem, "pwd", "failed to get working directory", err)
	}
	fmt.Fprintln(stdout, dir)
	return nil
}

func builtinCd(s *State, stdout io.Writer, args []string) error {
	if len(args) == 0 {
		return cerr.New(cerr.Arity, "cd", "expected 1 argument", nil)
	}
	if len(args) >= 2 {
		return cerr.New(cerr.Arity, "cd", "too many arguments", nil)
	}

	target := args[0]
	if target == "-" {
		if !s.OldPWDSet {
			return cerr.New(cerr.OldPWDUnset, "cd", "old pwd not set", nil)
		}
		target = s.OldPWD
	}

	info, err := os.Stat(target)
	if err != nil {
		return cerr.New(cerr.Filesystem, "cd", "target directory does not exist", err)
	}
	if !info.IsDir() {
		return cerr.New(cerr.Filesystem, "cd", "target is not a directory", nil)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cerr.New(cerr.Filesystem, "cd", "failed to get working directory", err)
	}
	if err := os.Chdir(target); err != nil {
		return cerr.New(cerr.Filesystem, "cd", "target directory does not exist", err)
	}
	s.SetOldPWD(cwd)
	return nil
}

func builtinQuit(s *State, stdout io.Writer, args []string) error {
	switch len(args) {
	case 0:
		s.Quit = true
		return nil
	case 1:
		if args[0] != "kill" {
			return cerr.New(cerr.BadArgs, "quit", "unexpected arguments", nil)
		}
		quitKill(s, stdout)
		s.Quit = true
		return nil
	default:
		return cerr.New(cerr.BadArgs, "quit", "unexpected arguments", nil)
	}
}
