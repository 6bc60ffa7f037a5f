package shell

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"smash/pkg/clog"
)

// State is the shell's single mutable state object: aliases, jobs,
// OLDPWD, the shell's own pid, and the status of the last command for
// && sequencing. It is mutated only from the main goroutine (the
// Reaper's background goroutine touches only the JobTable, which is
// itself safe for concurrent reconciliation).
type State struct {
	ShellPID  int
	SessionID string
	StdinFd   int

	OldPWD     string
	OldPWDSet  bool
	LastStatus int
	Quit       bool

	Aliases *AliasStore
	Jobs    *JobTable
	Reaper  *Reaper

	Log    *slog.Logger
	LogCtx context.Context
}

// NewState builds a fresh shell state. log may be a no-op logger
// (slog.New(slog.DiscardHandler) equivalent) when --trace is off.
// LogCtx carries the session id as a clog attribute so every record
// logged through it (via the *Context slog methods) is tagged with
// the run that produced it, letting concurrent smash runs sharing a
// log stream be told apart.
func NewState(log *slog.Logger) *State {
	jobs := NewJobTable()
	sessionID := ulid.Make().String()

	ctx := clog.ContextWithSlog(context.Background())
	clog.AddAttribute(ctx, "session", sessionID)

	return &State{
		ShellPID:  0,
		SessionID: sessionID,
		LogCtx:    ctx,
		Aliases:   NewAliasStore(),
		Jobs:      jobs,
		Reaper:    NewReaper(jobs),
		Log:       log,
	}
}

// SetOldPWD records dir as the previous working directory.
func (s *State) SetOldPWD(dir string) {
	s.OldPWD = dir
	s.OldPWDSet = true
}
