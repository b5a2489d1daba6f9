// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"gioui.org/webgl/command"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                3,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// tap dumps the messages of its channel before forwarding them, in order,
// to the next channel.
type tap struct {
	inbox chan command.Message
	ch    *command.Channel
	next  *command.Channel
	w     io.Writer
}

func newTap(next *command.Channel, w io.Writer) *tap {
	t := &tap{inbox: make(chan command.Message), next: next, w: w}
	t.ch = command.NewChannel(t.inbox, next.Done())
	return t
}

func (t *tap) Channel() *command.Channel {
	return t.ch
}

// run forwards messages until the backend behind next stops.
func (t *tap) run() error {
	for {
		select {
		case <-t.next.Done():
			return nil
		case m := <-t.inbox:
			fmt.Fprintf(t.w, "context %d: %v\n", m.Context, m.Command.Tag())
			dumpConfig.Fdump(t.w, m.Command)
			if err := t.next.Send(m.Context, m.Command); err != nil {
				if errors.Is(err, command.ErrContextLost) {
					return nil
				}
				return err
			}
		}
	}
}
