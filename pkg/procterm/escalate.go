// Package procterm escalates termination of a running process: SIGTERM
// first, then SIGKILL if it hasn't exited within a grace period. The
// shell uses it to tear down background jobs on `quit kill`.
package procterm

import (
	"context"
	"syscall"
	"time"
)

// Escalate sends SIGTERM to pid, then polls until either pid exits or
// grace elapses, at which point it sends SIGKILL. It returns once the
// process is confirmed gone, along with whether SIGKILL actually had
// to be sent (the process didn't exit from SIGTERM within grace), so
// callers can report "done" only for the jobs that genuinely needed
// the forceful kill.
//
// pid is a process group id when negative, following the kill(2)
// convention; `quit kill` passes each job's positive pid.
func Escalate(ctx context.Context, pid int, grace time.Duration) (killed bool, err error) {
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		return false, err
	}

	deadline := time.Now().Add(grace)
	const pollInterval = 50 * time.Millisecond
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if !alive(pid) {
			return false, nil
		}
		if time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}

	if err := syscall.Kill(pid, syscall.SIGKILL); err != nil && err != syscall.ESRCH {
		return true, err
	}
	for alive(pid) {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case <-ticker.C:
		}
	}
	return true, nil
}

// alive reports whether pid (or process group -pid) still has at
// least one live member, using the signal-0 probe.
func alive(pid int) bool {
	err := syscall.Kill(pid, syscall.Signal(0))
	return err == nil
}
