// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"sync/atomic"

	"gioui.org/webgl/command"
)

// tokens hands out context identities. Objects remember the token of the
// context that created them instead of pointing back at it.
var tokens atomic.Uint64

type object struct {
	token uint64
	id    command.ObjectID
	// deleted is set by Delete*. The object may outlive it while
	// something still refers to it.
	deleted bool
	// released is set once the backend was told to delete the object.
	released bool
}

type owned interface {
	base() *object
}

func (o *object) base() *object { return o }

// ID returns the backend name of the object.
func (o *object) ID() command.ObjectID { return o.id }

func (c *Context) newObject() object {
	c.lastID++
	return object{token: c.token, id: c.lastID}
}

func (c *Context) validateOwnership(o owned) error {
	if o.base().token != c.token {
		return InvalidOperation
	}
	return nil
}
