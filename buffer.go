// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Buffer is a WebGL buffer object.
type Buffer struct {
	object
	// target is fixed by the first bind.
	target   gl.Enum
	capacity int
	usage    gl.Enum
	// attached counts the binding slots and vertex attributes referring to
	// the buffer.
	attached int
	// shadow mirrors the contents of element array buffers.
	shadow []byte
}

func (b *Buffer) name() command.ObjectID {
	if b == nil {
		return 0
	}
	return b.id
}

func (c *Context) attachBuffer(b *Buffer) {
	if b != nil {
		b.attached++
	}
}

func (c *Context) detachBuffer(b *Buffer) {
	if b == nil {
		return
	}
	b.attached--
	c.releaseBuffer(b)
}

func (c *Context) releaseBuffer(b *Buffer) {
	if !b.deleted || b.released || b.attached > 0 {
		return
	}
	b.released = true
	b.shadow = nil
	c.send(command.DeleteBuffer{ID: b.id})
}

func (c *Context) CreateBuffer() *Buffer {
	if c.isLost() {
		return nil
	}
	b := &Buffer{object: c.newObject()}
	c.send(command.CreateBuffer{ID: b.id})
	return b
}

// bufferSlot returns the binding slot of target.
func (c *Context) bufferSlot(target gl.Enum) (**Buffer, error) {
	switch target {
	case gl.ARRAY_BUFFER:
		return &c.arrayBuffer, nil
	case gl.ELEMENT_ARRAY_BUFFER:
		return &c.currentVAO().elements, nil
	default:
		return nil, InvalidEnum
	}
}

func (c *Context) boundBuffer(target gl.Enum) (*Buffer, error) {
	slot, err := c.bufferSlot(target)
	if err != nil {
		return nil, err
	}
	if *slot == nil {
		return nil, InvalidOperation
	}
	return *slot, nil
}

func (c *Context) BindBuffer(target gl.Enum, b *Buffer) {
	if c.isLost() {
		return
	}
	if b != nil && c.check(c.validateOwnership(b)) {
		return
	}
	slot, err := c.bufferSlot(target)
	if c.check(err) {
		return
	}
	if b != nil {
		if b.deleted {
			c.fail(InvalidOperation)
			return
		}
		if b.target != 0 && b.target != target {
			c.fail(InvalidOperation)
			return
		}
		b.target = target
	}
	c.send(command.BindBuffer{Target: target, ID: b.name()})
	c.attachBuffer(b)
	old := *slot
	*slot = b
	c.detachBuffer(old)
}

// BufferData replaces the contents of the buffer bound to target with a
// copy of data.
func (c *Context) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	if c.isLost() {
		return
	}
	b, err := c.boundBuffer(target)
	if c.check(err) || c.check(checkEnum(usage, bufferUsages)) {
		return
	}
	c.bufferData(b, target, append([]byte(nil), data...), usage)
}

// BufferDataSize allocates size zeroed bytes for the buffer bound to
// target.
func (c *Context) BufferDataSize(target gl.Enum, size int, usage gl.Enum) {
	if c.isLost() {
		return
	}
	b, err := c.boundBuffer(target)
	if c.check(err) || c.check(checkNonNegative(size)) || c.check(checkEnum(usage, bufferUsages)) {
		return
	}
	c.bufferData(b, target, make([]byte, size), usage)
}

func (c *Context) bufferData(b *Buffer, target gl.Enum, data []byte, usage gl.Enum) {
	b.capacity = len(data)
	b.usage = usage
	b.shadow = nil
	if target == gl.ELEMENT_ARRAY_BUFFER {
		// The shadow must not alias the data of the sent command.
		b.shadow = append([]byte(nil), data...)
	}
	c.send(command.BufferData{Target: target, Data: data, Usage: usage})
}

func (c *Context) BufferSubData(target gl.Enum, offset int, data []byte) {
	if c.isLost() {
		return
	}
	b, err := c.boundBuffer(target)
	if c.check(err) || c.check(checkNonNegative(offset)) {
		return
	}
	if !fits(offset, len(data), b.capacity) {
		c.fail(InvalidValue)
		return
	}
	data = append([]byte(nil), data...)
	if b.shadow != nil {
		copy(b.shadow[offset:], data)
	}
	c.send(command.BufferSubData{Target: target, Offset: offset, Data: data})
}

// DeleteBuffer marks b for deletion and unbinds it from the array buffer
// slot and the current vertex array.
func (c *Context) DeleteBuffer(b *Buffer) {
	if c.isLost() || b == nil || c.check(c.validateOwnership(b)) || b.deleted {
		return
	}
	b.deleted = true
	vao := c.currentVAO()
	if vao.elements == b {
		vao.elements = nil
		c.send(command.BindBuffer{Target: gl.ELEMENT_ARRAY_BUFFER})
		c.detachBuffer(b)
	}
	for i := range vao.attribs {
		if a := &vao.attribs[i]; a.buffer == b {
			a.buffer = nil
			c.detachBuffer(b)
		}
	}
	if c.arrayBuffer == b {
		c.arrayBuffer = nil
		c.send(command.BindBuffer{Target: gl.ARRAY_BUFFER})
		c.detachBuffer(b)
	}
	c.releaseBuffer(b)
}

func (c *Context) IsBuffer(b *Buffer) bool {
	if c.isLost() || b == nil {
		return false
	}
	return c.validateOwnership(b) == nil && b.target != 0 && !b.deleted
}

// GetBufferParameter returns BUFFER_SIZE or BUFFER_USAGE of the buffer
// bound to target.
func (c *Context) GetBufferParameter(target, param gl.Enum) int32 {
	if c.isLost() {
		return 0
	}
	b, err := c.boundBuffer(target)
	if c.check(err) {
		return 0
	}
	switch param {
	case gl.BUFFER_SIZE:
		return int32(b.capacity)
	case gl.BUFFER_USAGE:
		return int32(b.usage)
	default:
		c.fail(InvalidEnum)
		return 0
	}
}
