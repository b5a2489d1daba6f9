// SPDX-License-Identifier: Unlicense OR MIT

package command

// Channel carries messages from contexts to a backend.
type Channel struct {
	inbox chan<- Message
	done  <-chan struct{}
}

// NewChannel returns a channel delivering to inbox. The backend closes done
// when it stops serving.
func NewChannel(inbox chan<- Message, done <-chan struct{}) *Channel {
	return &Channel{inbox: inbox, done: done}
}

// Send enqueues cmd without waiting for it to be applied. Messages sent by
// one goroutine arrive in order.
func (c *Channel) Send(ctx ContextID, cmd Command) error {
	select {
	case <-c.done:
		return ErrContextLost
	default:
	}
	select {
	case c.inbox <- Message{Context: ctx, Command: cmd}:
		return nil
	case <-c.done:
		return ErrContextLost
	}
}

// Done is closed when the backend stops.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// CreateContext asks the backend for a new context.
func (c *Channel) CreateContext(cmd CreateContext) (ContextInfo, error) {
	r := NewReply[ContextInfo]()
	cmd.Reply = r
	return Call(c, 0, cmd, r)
}
