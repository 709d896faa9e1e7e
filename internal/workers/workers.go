// Package workers bounds the CPU-heavy parts of the application. Key
// derivation is deliberately slow, and a burst of logins must not be able to
// monopolise the process; routing derivations through a fixed-size pool keeps
// the rest of the request-serving loop responsive.
package workers

import "context"

// Pool limits how many tasks run concurrently. A task executes on the
// caller's goroutine once a slot is acquired, so results and errors flow
// back naturally.
type Pool struct {
	slots chan struct{}
}

// NewPool constructs a Pool with the given number of concurrent slots.
// A size below one falls back to one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Do runs task once a slot is free. If ctx is cancelled while waiting for a
// slot, the task never runs and the context error is returned.
func (p *Pool) Do(ctx context.Context, task func()) error {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.slots }()

	task()
	return nil
}
