package project

import (
	oerrors "github.com/gdxinit/cli/internal/errors"
	"github.com/gdxinit/cli/internal/progress"
)

// Creation tracks one project creation running on its own goroutine.
type Creation struct {
	// Name is the requested project name.
	Name string

	done   chan struct{}
	result *Result
	err    error
}

// Launch runs Materialize for req on a new goroutine and returns immediately.
// A failure is appended to log as "Error: <message>". The background build,
// if any, is not awaited by the creation itself.
func (m *Materializer) Launch(req Request, log *progress.Log) *Creation {
	c := &Creation{Name: req.Name, done: make(chan struct{})}

	go func() {
		defer close(c.done)
		c.result, c.err = m.Materialize(req, log)
		if c.err != nil {
			log.Append("Error: " + oerrors.Summary(c.err))
		}
	}()

	return c
}

// Done returns a channel closed once materialization has returned.
func (c *Creation) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until materialization returns.
func (c *Creation) Wait() (*Result, error) {
	<-c.done
	return c.result, c.err
}
