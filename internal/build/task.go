package build

import "sync"

// Status is the state of a build outcome.
type Status int

const (
	// NotAttempted means no build was requested.
	NotAttempted Status = iota

	// Succeeded means the build tool exited zero.
	Succeeded

	// Failed means the build could not run or exited non-zero.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NotAttempted:
		return "not-attempted"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of a background build.
type Outcome struct {
	Status Status

	// Reason is a free-text diagnostic for a failed build.
	Reason string

	// Err is the underlying error for a failed build.
	Err error
}

// Task tracks one background build. It is never cancelled.
type Task struct {
	done    chan struct{}
	once    sync.Once
	outcome Outcome
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

// finish records the outcome and releases waiters. Only the first call counts.
func (t *Task) finish(o Outcome) {
	t.once.Do(func() {
		t.outcome = o
		close(t.done)
	})
}

// Done returns a channel closed after the task's final log append.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its outcome.
func (t *Task) Wait() Outcome {
	<-t.done
	return t.outcome
}

// Outcome returns the outcome if the task has finished, and whether it has.
func (t *Task) Outcome() (Outcome, bool) {
	select {
	case <-t.done:
		return t.outcome, true
	default:
		return Outcome{}, false
	}
}
