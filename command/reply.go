// SPDX-License-Identifier: Unlicense OR MIT

package command

import (
	"errors"
	"fmt"
)

var (
	// ErrContextLost is returned for sends and waits on a channel whose
	// backend is gone.
	ErrContextLost = errors.New("command: context lost")
	// ErrNoReply is returned when a reply was never initialized.
	ErrNoReply = errors.New("command: missing reply channel")
)

// Result is the answer to a query: a value or a failure.
type Result[T any] struct {
	Value T
	Err   error
}

// Reply is the single-use answer slot of a query.
type Reply[T any] struct {
	ch chan Result[T]
}

func NewReply[T any]() Reply[T] {
	return Reply[T]{ch: make(chan Result[T], 1)}
}

// Send answers the query with v. Only the first answer is delivered.
func (r Reply[T]) Send(v T) {
	r.deliver(Result[T]{Value: v})
}

// Fail answers the query with the failure sentinel err.
func (r Reply[T]) Fail(err error) {
	if err == nil {
		err = errors.New("command: query failed")
	}
	r.deliver(Result[T]{Err: err})
}

func (r Reply[T]) deliver(res Result[T]) {
	if r.ch == nil {
		return
	}
	select {
	case r.ch <- res:
	default:
	}
}

// Wait blocks until the reply arrives or done is closed. There is no
// timeout.
func (r Reply[T]) Wait(done <-chan struct{}) (T, error) {
	var zero T
	if r.ch == nil {
		return zero, ErrNoReply
	}
	select {
	case res := <-r.ch:
		return res.Value, res.Err
	case <-done:
		// An answer sent before the backend stopped still counts.
		select {
		case res := <-r.ch:
			return res.Value, res.Err
		default:
			return zero, ErrContextLost
		}
	}
}

// Call sends q over c and waits for its reply r.
func Call[T any](c *Channel, ctx ContextID, q Query, r Reply[T]) (T, error) {
	if err := c.Send(ctx, q); err != nil {
		var zero T
		return zero, err
	}
	v, err := r.Wait(c.done)
	if err != nil && !errors.Is(err, ErrContextLost) {
		err = fmt.Errorf("command: %v: %w", q.Tag(), err)
	}
	return v, err
}
