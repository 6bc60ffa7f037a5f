package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/sourcegraph/conc"

	"smash/pkg/cerr"
	"smash/pkg/procterm"
)

func builtinJobs(s *State, stdout io.Writer, _ []string) error {
	for _, j := range s.Jobs.List() {
		fmt.Fprintf(stdout, "[%d] %s : %d %d secs\n", j.ID, j.CommandText, j.PID, j.Elapsed())
	}
	return nil
}

func builtinKill(s *State, stdout io.Writer, args []string) error {
	if len(args) != 2 {
		return cerr.New(cerr.BadArgs, "kill", "invalid arguments", nil)
	}
	signum, err := strconv.Atoi(strings.TrimPrefix(args[0], "-"))
	if err != nil {
		return cerr.New(cerr.BadArgs, "kill", "invalid arguments", nil)
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return cerr.New(cerr.BadArgs, "kill", "invalid arguments", nil)
	}

	job, ok := s.Jobs.Lookup(id)
	if !ok {
		return cerr.New(cerr.Lookup, "kill", fmt.Sprintf("job id %d does not exist", id), nil)
	}

	if err := syscall.Kill(job.PID, syscall.Signal(signum)); err != nil {
		return cerr.New(cerr.Subprocess, "kill", "failed to send signal", err)
	}
	fmt.Fprintf(stdout, "signal number %d was sent to pid %d\n", signum, job.PID)
	return nil
}

func builtinFg(s *State, stdout io.Writer, args []string) error {
	var id int
	switch len(args) {
	case 0:
		found := false
		id, found = s.Jobs.LargestID()
		if !found {
			return cerr.New(cerr.Lookup, "fg", "jobs list is empty", nil)
		}
	case 1:
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return cerr.New(cerr.BadArgs, "fg", "invalid arguments", nil)
		}
		id = parsed
	default:
		return cerr.New(cerr.BadArgs, "fg", "invalid arguments", nil)
	}

	job, ok := s.Jobs.Lookup(id)
	if !ok {
		return cerr.New(cerr.Lookup, "fg", fmt.Sprintf("job id %d does not exist", id), nil)
	}

	fmt.Fprintf(stdout, "[%d] %s : %d\n", job.ID, job.CommandText, job.PID)
	s.Jobs.Remove(job.ID)

	_ = setForegroundGroup(s.StdinFd, job.PID)
	waitPID(job.PID)
	_ = setForegroundGroup(s.StdinFd, s.ShellPID)
	return nil
}

// quitKillGrace is the "short wait" spec.md §4.7 gives every running
// job before SIGKILL escalation during quit kill.
const quitKillGrace = 2 * time.Second

// quitKill sends SIGTERM to every Running job, concurrently escalating
// to SIGKILL for any still alive after quitKillGrace, printing the
// per-job transcript lines spec.md §4.7 and §8 scenario 8 require.
// "done" is only printed for jobs that were still alive after the
// grace wait and needed the SIGKILL escalation; a job that exits
// cleanly on SIGTERM gets no further transcript line.
func quitKill(s *State, stdout io.Writer) {
	jobs := s.Jobs.List()
	if len(jobs) == 0 {
		return
	}

	var mu sync.Mutex
	var wg conc.WaitGroup
	for _, job := range jobs {
		job := job
		mu.Lock()
		fmt.Fprintf(stdout, "[%d] %s - sending SIGTERM... %d\n", job.ID, job.CommandText, job.PID)
		mu.Unlock()

		wg.Go(func() {
			killed, _ := procterm.Escalate(context.Background(), job.PID, quitKillGrace)
			if killed {
				mu.Lock()
				fmt.Fprintf(stdout, "[%d] done\n", job.ID)
				mu.Unlock()
			}
			s.Jobs.Remove(job.ID)
		})
	}
	wg.Wait()
}
