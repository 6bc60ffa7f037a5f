package shell

import (
	"os"
	"os/signal"
	"syscall"
)

// Reaper turns SIGCHLD notifications into job-table reconciliation.
// The signal itself is caught by the Go runtime and forwarded onto a
// channel, never executed in true signal-handler context. Reaping runs
// in two places: on the Reaper's own goroutine for each SIGCHLD, and on
// the caller's goroutine whenever Reconcile is called. It is therefore
// not confined to the main goroutine; JobTable's mutex serialises the
// two.
type Reaper struct {
	table *JobTable
	sigCh chan os.Signal
	done  chan struct{}
}

// NewReaper starts watching for SIGCHLD and reconciling table in the
// background. Call Reconcile at every safe point (prompt emission,
// jobs/fg/kill dispatch) to pick up reaps synchronously too; the
// background goroutine exists only so exits aren't invisible while the
// REPL blocks reading stdin.
func NewReaper(table *JobTable) *Reaper {
	r := &Reaper{
		table: table,
		sigCh: make(chan os.Signal, 16),
		done:  make(chan struct{}),
	}
	signal.Notify(r.sigCh, syscall.SIGCHLD)
	go r.loop()
	return r
}

func (r *Reaper) loop() {
	for {
		select {
		case <-r.sigCh:
			r.table.Reap()
		case <-r.done:
			return
		}
	}
}

// Reconcile performs an immediate non-blocking reap. Idempotent.
func (r *Reaper) Reconcile() {
	r.table.Reap()
}

// Stop unregisters the signal channel; call once at shell exit.
func (r *Reaper) Stop() {
	signal.Stop(r.sigCh)
	close(r.done)
}
