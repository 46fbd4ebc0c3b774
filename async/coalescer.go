// Package async runs work off the UI goroutine.
//
// Coalescer is shaped after the resource loader of
// https://github.com/egonelbre/expgio: a persistent goroutine does the
// blocking work and reports progress through a channel the event loop can
// select on.
package async

import (
	"context"
	"sync"
)

// Coalescer runs Work on demand, at most one call at a time. Requests made
// while Work is running collapse into a single follow-up call, so the last
// request is always honoured with the latest inputs but never queued twice.
//
// The zero value is ready to use once Work is set.
type Coalescer struct {
	// Work performs the recomputation. It should return promptly once ctx
	// is done.
	Work func(ctx context.Context)
	// pending holds at most one outstanding request.
	pending chan struct{}
	// updated reports finished runs. Useful for invalidating the window.
	updated chan struct{}
	// init allows Coalescer to have a useful zero value by lazily allocating
	// on first use.
	init sync.Once
}

func (c *Coalescer) initialize() {
	c.pending = make(chan struct{}, 1)
	c.updated = make(chan struct{}, 1)
}

// Request a run of Work. Request never blocks.
func (c *Coalescer) Request() {
	c.init.Do(c.initialize)
	select {
	case c.pending <- struct{}{}:
	default:
	}
}

// Updated returns a channel that reports that a run has finished.
// Integrate this into the gio event loop to invalidate the window.
//
//	case <-coalescer.Updated():
//		w.Invalidate()
func (c *Coalescer) Updated() <-chan struct{} {
	c.init.Do(c.initialize)
	return c.updated
}

// Run the worker loop until ctx is done.
func (c *Coalescer) Run(ctx context.Context) {
	c.init.Do(c.initialize)
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.pending:
		}
		if ctx.Err() != nil {
			return
		}
		if c.Work != nil {
			c.Work(ctx)
		}
		c.update()
	}
}

func (c *Coalescer) update() {
	select {
	case c.updated <- struct{}{}:
	default:
	}
}
