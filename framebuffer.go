// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"image"
	"slices"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Framebuffer is a WebGL framebuffer object.
type Framebuffer struct {
	object
	everBound   bool
	attachments [attachmentCount]attachment
}

type attachmentPoint int

const (
	colorAttachment attachmentPoint = iota
	depthAttachment
	stencilAttachment
	depthStencilAttachment

	attachmentCount
)

// attachment is the image attached at one point: a renderbuffer, a
// texture image, or nothing.
type attachment struct {
	renderbuffer *Renderbuffer
	texture      *Texture
	texTarget    gl.Enum
	level        int32
}

func attachmentIndex(a gl.Enum) (attachmentPoint, error) {
	i := slices.Index(attachments, a)
	if i < 0 {
		return 0, InvalidEnum
	}
	return attachmentPoint(i), nil
}

func (a *attachment) empty() bool {
	return a.renderbuffer == nil && a.texture == nil
}

func (a *attachment) size() image.Point {
	switch {
	case a.renderbuffer != nil:
		return image.Pt(int(a.renderbuffer.width), int(a.renderbuffer.height))
	case a.texture != nil:
		face, _, _ := faceIndex(a.texTarget)
		if img, ok := a.texture.image(face, a.level); ok {
			return image.Pt(int(img.width), int(img.height))
		}
	}
	return image.Point{}
}

// complete reports whether the attached image suits point p.
func (a *attachment) complete(p attachmentPoint) bool {
	if a.size().X == 0 || a.size().Y == 0 {
		return false
	}
	if r := a.renderbuffer; r != nil {
		switch p {
		case colorAttachment:
			return r.internalFormat == gl.RGBA4 || r.internalFormat == gl.RGB5_A1 || r.internalFormat == gl.RGB565
		case depthAttachment:
			return r.internalFormat == gl.DEPTH_COMPONENT16
		case stencilAttachment:
			return r.internalFormat == gl.STENCIL_INDEX8
		default:
			return r.internalFormat == gl.DEPTH_STENCIL
		}
	}
	if p != colorAttachment {
		return false
	}
	face, _, _ := faceIndex(a.texTarget)
	img, ok := a.texture.image(face, a.level)
	return ok && !img.compressed && (img.internalFormat == gl.RGB || img.internalFormat == gl.RGBA) && img.dataType == gl.UNSIGNED_BYTE
}

func (f *Framebuffer) name() command.ObjectID {
	if f == nil {
		return 0
	}
	return f.id
}

func (f *Framebuffer) status() gl.Enum {
	a := &f.attachments
	hasDepth := !a[depthAttachment].empty()
	hasStencil := !a[stencilAttachment].empty()
	hasDepthStencil := !a[depthStencilAttachment].empty()
	if hasDepthStencil && (hasDepth || hasStencil) || hasDepth && hasStencil {
		return gl.FRAMEBUFFER_UNSUPPORTED
	}
	var size image.Point
	attached := false
	for p := range a {
		att := &a[p]
		if att.empty() {
			continue
		}
		if !att.complete(attachmentPoint(p)) {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if attached && att.size() != size {
			return gl.FRAMEBUFFER_INCOMPLETE_DIMENSIONS
		}
		size = att.size()
		attached = true
	}
	if !attached {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

// size returns the common size of the attachments.
func (f *Framebuffer) size() image.Point {
	for i := range f.attachments {
		if a := &f.attachments[i]; !a.empty() {
			return a.size()
		}
	}
	return image.Point{}
}

// framebufferSize returns the size of the bound framebuffer.
func (c *Context) framebufferSize() image.Point {
	if c.framebuffer == nil {
		return c.size
	}
	return c.framebuffer.size()
}

// validateFramebuffer checks the bound framebuffer before a draw, clear or
// read, and clears renderbuffers whose contents were never defined.
func (c *Context) validateFramebuffer() error {
	fb := c.framebuffer
	if fb == nil {
		return nil
	}
	if fb.status() != gl.FRAMEBUFFER_COMPLETE {
		return InvalidFramebufferOperation
	}
	if fb.attachments[colorAttachment].empty() {
		return InvalidOperation
	}
	var init command.InitializeFramebuffer
	for p := range fb.attachments {
		r := fb.attachments[p].renderbuffer
		if r == nil || r.initialized {
			continue
		}
		r.initialized = true
		switch attachmentPoint(p) {
		case colorAttachment:
			init.Color = true
		case depthAttachment:
			init.Depth = true
		case stencilAttachment:
			init.Stencil = true
		case depthStencilAttachment:
			init.Depth, init.Stencil = true, true
		}
	}
	if init.Color || init.Depth || init.Stencil {
		c.send(init)
	}
	return nil
}

func (c *Context) attach(a attachment) {
	if a.renderbuffer != nil {
		a.renderbuffer.attached++
	}
	if a.texture != nil {
		a.texture.attached++
	}
}

func (c *Context) detach(a attachment) {
	if r := a.renderbuffer; r != nil {
		r.attached--
		c.releaseRenderbuffer(r)
	}
	if t := a.texture; t != nil {
		t.attached--
		c.releaseTexture(t)
	}
}

// setAttachment replaces the image at point p of fb.
func (c *Context) setAttachment(fb *Framebuffer, p attachmentPoint, a attachment) {
	old := fb.attachments[p]
	c.attach(a)
	fb.attachments[p] = a
	c.detach(old)
}

// detachFromFramebuffer clears the attachments of the bound framebuffer
// fb selected by match.
func (c *Context) detachFromFramebuffer(fb *Framebuffer, match func(a *attachment) bool) {
	for p := range fb.attachments {
		a := &fb.attachments[p]
		if a.empty() || !match(a) {
			continue
		}
		point := attachments[p]
		if a.renderbuffer != nil {
			c.send(command.FramebufferRenderbuffer{Target: gl.FRAMEBUFFER, Attachment: point, RenderbufferTarget: gl.RENDERBUFFER})
		} else {
			c.send(command.FramebufferTexture2D{Target: gl.FRAMEBUFFER, Attachment: point, TexTarget: a.texTarget})
		}
		c.setAttachment(fb, attachmentPoint(p), attachment{})
	}
}

func (c *Context) releaseFramebuffer(fb *Framebuffer) {
	if fb.released {
		return
	}
	fb.released = true
	// The backend drops the attachments along with the framebuffer.
	c.send(command.DeleteFramebuffer{ID: fb.id})
	for p := range fb.attachments {
		c.setAttachment(fb, attachmentPoint(p), attachment{})
	}
}

func (c *Context) CreateFramebuffer() *Framebuffer {
	if c.isLost() {
		return nil
	}
	fb := &Framebuffer{object: c.newObject()}
	c.send(command.CreateFramebuffer{ID: fb.id})
	return fb
}

// BindFramebuffer binds fb, or the default framebuffer for nil. Binding a
// deleted framebuffer fails and keeps the current binding.
func (c *Context) BindFramebuffer(target gl.Enum, fb *Framebuffer) {
	if c.isLost() {
		return
	}
	if fb != nil && c.check(c.validateOwnership(fb)) {
		return
	}
	if target != gl.FRAMEBUFFER {
		c.fail(InvalidEnum)
		return
	}
	if fb != nil {
		if fb.deleted {
			c.fail(InvalidOperation)
			return
		}
		fb.everBound = true
	}
	c.framebuffer = fb
	c.send(command.BindFramebuffer{Target: target, ID: fb.name()})
}

// DeleteFramebuffer deletes fb. Deleting the bound framebuffer binds the
// default one.
func (c *Context) DeleteFramebuffer(fb *Framebuffer) {
	if c.isLost() || fb == nil || c.check(c.validateOwnership(fb)) || fb.deleted {
		return
	}
	fb.deleted = true
	if c.framebuffer == fb {
		c.framebuffer = nil
		c.send(command.BindFramebuffer{Target: gl.FRAMEBUFFER})
	}
	c.releaseFramebuffer(fb)
}

func (c *Context) IsFramebuffer(fb *Framebuffer) bool {
	if c.isLost() || fb == nil {
		return false
	}
	return c.validateOwnership(fb) == nil && fb.everBound && !fb.deleted
}

func (c *Context) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	if c.isLost() {
		return 0
	}
	if target != gl.FRAMEBUFFER {
		c.fail(InvalidEnum)
		return 0
	}
	if c.framebuffer == nil {
		return gl.FRAMEBUFFER_COMPLETE
	}
	return c.framebuffer.status()
}

func (c *Context) FramebufferRenderbuffer(target, point, rbTarget gl.Enum, r *Renderbuffer) {
	if c.isLost() {
		return
	}
	if r != nil && c.check(c.validateOwnership(r)) {
		return
	}
	if target != gl.FRAMEBUFFER || rbTarget != gl.RENDERBUFFER {
		c.fail(InvalidEnum)
		return
	}
	p, err := attachmentIndex(point)
	if c.check(err) {
		return
	}
	fb := c.framebuffer
	if fb == nil || r != nil && r.deleted {
		c.fail(InvalidOperation)
		return
	}
	c.setAttachment(fb, p, attachment{renderbuffer: r})
	c.send(command.FramebufferRenderbuffer{Target: target, Attachment: point, RenderbufferTarget: rbTarget, ID: r.name()})
}

func (c *Context) FramebufferTexture2D(target, point, texTarget gl.Enum, t *Texture, level int32) {
	if c.isLost() {
		return
	}
	if t != nil && c.check(c.validateOwnership(t)) {
		return
	}
	if target != gl.FRAMEBUFFER {
		c.fail(InvalidEnum)
		return
	}
	p, err := attachmentIndex(point)
	if c.check(err) {
		return
	}
	_, binding, err := faceIndex(texTarget)
	if t != nil && c.check(err) {
		return
	}
	if t != nil && level != 0 {
		c.fail(InvalidValue)
		return
	}
	fb := c.framebuffer
	if fb == nil {
		c.fail(InvalidOperation)
		return
	}
	if t != nil && (t.deleted || t.target != 0 && t.target != binding) {
		c.fail(InvalidOperation)
		return
	}
	a := attachment{}
	if t != nil {
		a = attachment{texture: t, texTarget: texTarget, level: level}
	}
	c.setAttachment(fb, p, a)
	c.send(command.FramebufferTexture2D{Target: target, Attachment: point, TexTarget: texTarget, ID: t.name(), Level: level})
}

// GetFramebufferAttachmentParameter returns a gl.Enum for the object type
// and cube map face, a *Renderbuffer or *Texture for the object name, and
// an int32 for the texture level. It returns nil on error.
func (c *Context) GetFramebufferAttachmentParameter(target, point, param gl.Enum) any {
	if c.isLost() {
		return nil
	}
	fb := c.framebuffer
	if fb == nil {
		c.fail(InvalidOperation)
		return nil
	}
	p, err := attachmentIndex(point)
	if target != gl.FRAMEBUFFER || err != nil {
		c.fail(InvalidEnum)
		return nil
	}
	a := fb.attachments[p]
	switch {
	case param == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:
		switch {
		case a.renderbuffer != nil:
			return gl.Enum(gl.RENDERBUFFER)
		case a.texture != nil:
			return gl.Enum(gl.TEXTURE)
		default:
			return gl.Enum(gl.NONE)
		}
	case param == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME && a.renderbuffer != nil:
		return a.renderbuffer
	case param == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME && a.texture != nil:
		return a.texture
	case a.texture != nil && (param == gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL || param == gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE):
		r := command.NewReply[int32]()
		v, ok := query(c, command.GetFramebufferAttachmentParameter{Target: target, Attachment: point, Param: param, Reply: r}, r)
		if !ok {
			return nil
		}
		if param == gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE {
			return gl.Enum(v)
		}
		return v
	default:
		c.fail(InvalidEnum)
		return nil
	}
}
