package shell

import (
	"sort"
	"sync"
	"syscall"
	"time"
)

// JobState is a Job's lifecycle position. Stopped jobs (Ctrl-Z) are
// out of scope. This package only ever sets JobRunning: Reap deletes an
// exited job's entry rather than marking it Finished or Signaled.
type JobState int

const (
	JobRunning JobState = iota
	JobFinished
	JobSignaled
)

// Job is one backgrounded process.
type Job struct {
	ID          int
	PID         int
	CommandText string
	State       JobState
	StartedAt   time.Time
}

// Elapsed returns seconds since the job started, for the jobs listing.
func (j *Job) Elapsed() int {
	return int(time.Since(j.StartedAt).Seconds())
}

// JobTable assigns Running jobs the smallest non-negative id not
// currently held by another Running job, and reaps finished children
// at the safe points the executor calls Reconcile from.
type JobTable struct {
	mu   sync.Mutex
	jobs map[int]*Job
}

func NewJobTable() *JobTable {
	return &JobTable{jobs: make(map[int]*Job)}
}

// Add assigns the next free id to a new Running job and returns it.
func (t *JobTable) Add(pid int, commandText string) *Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := 0
	for {
		if j, used := t.jobs[id]; !used || j.State != JobRunning {
			break
		}
		id++
	}
	job := &Job{
		ID:          id,
		PID:         pid,
		CommandText: commandText,
		State:       JobRunning,
		StartedAt:   time.Now(),
	}
	t.jobs[id] = job
	return job
}

// Lookup returns the job with the given id, if any.
func (t *JobTable) Lookup(id int) (*Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	j, ok := t.jobs[id]
	return j, ok
}

// Remove deletes the job with the given id, e.g. once fg has taken it
// over or quit kill has finished terminating it.
func (t *JobTable) Remove(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.jobs, id)
}

// List returns Running jobs ascending by id.
func (t *JobTable) List() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Job, 0, len(t.jobs))
	for _, j := range t.jobs {
		if j.State == JobRunning {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

// LargestID returns the largest id held by a Running job, for fg with
// no argument.
func (t *JobTable) LargestID() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	found := false
	best := -1
	for id, j := range t.jobs {
		if j.State != JobRunning {
			continue
		}
		if !found || id > best {
			best = id
			found = true
		}
	}
	return best, found
}

// Reap performs a non-blocking reconciliation pass: every Running
// job whose pid has exited (WNOHANG) is removed. Safe to call
// repeatedly; a call with no new terminations is a no-op.
func (t *JobTable) Reap() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, j := range t.jobs {
		if j.State != JobRunning {
			continue
		}
		var ws syscall.WaitStatus
		wpid, err := syscall.Wait4(j.PID, &ws, syscall.WNOHANG, nil)
		if err != nil || wpid == 0 {
			continue
		}
		delete(t.jobs, id)
	}
}
