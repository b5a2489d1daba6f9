// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Renderbuffer is a WebGL renderbuffer object.
type Renderbuffer struct {
	object
	everBound      bool
	internalFormat gl.Enum
	width, height  int32
	// initialized is cleared by RenderbufferStorage. The contents are
	// cleared before first use.
	initialized bool
	// attached counts framebuffer attachments.
	attached int
}

var renderbufferFormats = []gl.Enum{gl.RGBA4, gl.RGB565, gl.RGB5_A1, gl.DEPTH_COMPONENT16, gl.STENCIL_INDEX8, gl.DEPTH_STENCIL}

func (r *Renderbuffer) name() command.ObjectID {
	if r == nil {
		return 0
	}
	return r.id
}

func (c *Context) releaseRenderbuffer(r *Renderbuffer) {
	if !r.deleted || r.released || r.attached > 0 {
		return
	}
	r.released = true
	c.send(command.DeleteRenderbuffer{ID: r.id})
}

func (c *Context) CreateRenderbuffer() *Renderbuffer {
	if c.isLost() {
		return nil
	}
	r := &Renderbuffer{object: c.newObject(), internalFormat: gl.RGBA4}
	c.send(command.CreateRenderbuffer{ID: r.id})
	return r
}

// BindRenderbuffer binds r. Binding a deleted renderbuffer fails and
// leaves no renderbuffer bound.
func (c *Context) BindRenderbuffer(target gl.Enum, r *Renderbuffer) {
	if c.isLost() {
		return
	}
	if r != nil && c.check(c.validateOwnership(r)) {
		return
	}
	if target != gl.RENDERBUFFER {
		c.fail(InvalidEnum)
		return
	}
	if r != nil && r.deleted {
		c.fail(InvalidOperation)
		r = nil
	}
	if r != nil {
		r.everBound = true
	}
	c.renderbuffer = r
	c.send(command.BindRenderbuffer{Target: target, ID: r.name()})
}

func (c *Context) DeleteRenderbuffer(r *Renderbuffer) {
	if c.isLost() || r == nil || c.check(c.validateOwnership(r)) || r.deleted {
		return
	}
	r.deleted = true
	if c.renderbuffer == r {
		c.renderbuffer = nil
		c.send(command.BindRenderbuffer{Target: gl.RENDERBUFFER})
	}
	if fb := c.framebuffer; fb != nil {
		c.detachFromFramebuffer(fb, func(a *attachment) bool { return a.renderbuffer == r })
	}
	c.releaseRenderbuffer(r)
}

func (c *Context) IsRenderbuffer(r *Renderbuffer) bool {
	if c.isLost() || r == nil {
		return false
	}
	return c.validateOwnership(r) == nil && r.everBound && !r.deleted
}

func (c *Context) RenderbufferStorage(target, internalFormat gl.Enum, width, height int32) {
	if c.isLost() {
		return
	}
	if target != gl.RENDERBUFFER {
		c.fail(InvalidEnum)
		return
	}
	limit := int32(c.info.Limits.MaxRenderbufferSize)
	if width < 0 || width > limit || height < 0 || height > limit {
		c.fail(InvalidValue)
		return
	}
	r := c.renderbuffer
	if r == nil {
		c.fail(InvalidOperation)
		return
	}
	if c.check(checkEnum(internalFormat, renderbufferFormats)) {
		return
	}
	r.internalFormat = internalFormat
	r.width, r.height = width, height
	r.initialized = false
	c.send(command.RenderbufferStorage{Target: target, InternalFormat: internalFormat, Width: width, Height: height})
}

var renderbufferParams = []gl.Enum{
	gl.RENDERBUFFER_WIDTH, gl.RENDERBUFFER_HEIGHT, gl.RENDERBUFFER_INTERNAL_FORMAT,
	gl.RENDERBUFFER_RED_SIZE, gl.RENDERBUFFER_GREEN_SIZE, gl.RENDERBUFFER_BLUE_SIZE, gl.RENDERBUFFER_ALPHA_SIZE,
	gl.RENDERBUFFER_DEPTH_SIZE, gl.RENDERBUFFER_STENCIL_SIZE,
}

func (c *Context) GetRenderbufferParameter(target, param gl.Enum) int32 {
	if c.isLost() {
		return 0
	}
	if target != gl.RENDERBUFFER || c.check(checkEnum(param, renderbufferParams)) {
		c.fail(InvalidEnum)
		return 0
	}
	r := c.renderbuffer
	if r == nil {
		c.fail(InvalidOperation)
		return 0
	}
	switch param {
	case gl.RENDERBUFFER_INTERNAL_FORMAT:
		return int32(r.internalFormat)
	case gl.RENDERBUFFER_WIDTH:
		return r.width
	case gl.RENDERBUFFER_HEIGHT:
		return r.height
	}
	reply := command.NewReply[int32]()
	v, _ := query(c, command.GetRenderbufferParameter{Target: target, Param: param, Reply: reply}, reply)
	return v
}
