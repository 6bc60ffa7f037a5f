package shell

import (
	"golang.org/x/sys/unix"
)

// setForegroundGroup makes pgid the terminal's controlling process
// group on fd. The standard library has no tcsetpgrp equivalent, so
// this goes straight through the TIOCSPGRP ioctl. TIOCSPGRP takes a
// pointer to the pgid, not the pgid as the argument value, so this
// must go through IoctlSetPointerInt rather than IoctlSetInt. Errors
// are returned rather than ignored, but callers running with stdin
// redirected from a pipe (no controlling terminal, e.g. under a test
// harness) should tolerate ENOTTY.
func setForegroundGroup(fd int, pgid int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid)
}
