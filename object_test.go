// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

func TestDeleteTextureKeepsActiveUnit(t *testing.T) {
	c, r := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	c.ActiveTexture(gl.TEXTURE2)
	c.BindTexture(gl.TEXTURE_2D, tex)
	c.ActiveTexture(gl.TEXTURE1)
	r.sent(c)

	c.DeleteTexture(tex)
	cmds := r.commands(c)
	require.Len(t, cmds, 6)
	assert.Equal(t, command.ActiveTexture{Unit: gl.TEXTURE0}, cmds[0])
	assert.Equal(t, command.BindTexture{Target: gl.TEXTURE_2D}, cmds[1])
	assert.Equal(t, command.ActiveTexture{Unit: gl.TEXTURE2}, cmds[2])
	assert.Equal(t, command.BindTexture{Target: gl.TEXTURE_2D}, cmds[3])
	assert.Equal(t, command.ActiveTexture{Unit: gl.TEXTURE1}, cmds[4])
	assert.Equal(t, command.DeleteTexture{ID: tex.ID()}, cmds[5])

	assert.Equal(t, gl.Enum(gl.TEXTURE1), c.GetParameter(gl.ACTIVE_TEXTURE))
	for i := range c.units.units {
		assert.Nil(t, c.units.units[i].tex2D, "unit %d", i)
	}
	assert.False(t, c.IsTexture(tex))
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.backend.Violations())
}

func TestDeleteTextureOnActiveUnit(t *testing.T) {
	c, r := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_CUBE_MAP, tex)
	r.sent(c)

	c.DeleteTexture(tex)
	assert.Equal(t, []command.Tag{command.TagBindTexture, command.TagDeleteTexture}, r.sent(c))
	assert.Nil(t, c.GetParameter(gl.TEXTURE_BINDING_CUBE_MAP))
	// Deleting twice is a no-op.
	c.DeleteTexture(tex)
	assert.Empty(t, r.sent(c))
	checkError(t, c, gl.NO_ERROR)
}

func TestDeleteBoundBuffers(t *testing.T) {
	c, r := newTestContext(t)
	vertices, indices := c.CreateBuffer(), c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, vertices)
	c.BufferDataSize(gl.ARRAY_BUFFER, 24, gl.STATIC_DRAW)
	c.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, 0)
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices)
	r.sent(c)

	c.DeleteBuffer(indices)
	assert.Equal(t, []command.Tag{command.TagBindBuffer, command.TagDeleteBuffer}, r.sent(c))
	assert.Nil(t, c.GetParameter(gl.ELEMENT_ARRAY_BUFFER_BINDING))

	c.DeleteBuffer(vertices)
	assert.Equal(t, []command.Tag{command.TagBindBuffer, command.TagDeleteBuffer}, r.sent(c))
	assert.Nil(t, c.GetParameter(gl.ARRAY_BUFFER_BINDING))
	assert.Nil(t, c.GetVertexAttrib(0, gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING))

	c.BindBuffer(gl.ARRAY_BUFFER, vertices)
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.backend.Violations())
}

func TestBufferKeepsTarget(t *testing.T) {
	c, _ := newTestContext(t)
	b := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, b)
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Nil(t, c.GetParameter(gl.ELEMENT_ARRAY_BUFFER_BINDING))
}

func TestBufferSubDataRange(t *testing.T) {
	c, r := newTestContext(t)
	b := c.CreateBuffer()
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	c.BufferData(gl.ELEMENT_ARRAY_BUFFER, make([]byte, 8), gl.STATIC_DRAW)
	r.sent(c)

	for _, offset := range []int{math.MaxInt, math.MaxInt - 1, 7, 9} {
		c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, offset, []byte{1, 2})
		checkError(t, c, gl.INVALID_VALUE)
	}
	c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, -1, []byte{1})
	checkError(t, c, gl.INVALID_VALUE)
	assert.Empty(t, r.sent(c))
	assert.Equal(t, make([]byte, 8), b.shadow)

	c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 6, []byte{1, 2})
	c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 8, nil)
	checkError(t, c, gl.NO_ERROR)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, b.shadow)
	assert.Equal(t, []command.Tag{command.TagBufferSubData, command.TagBufferSubData}, r.sent(c))
	assert.Empty(t, r.backend.Violations())
}

func TestDeleteBoundFramebuffer(t *testing.T) {
	c, r := newTestContext(t)
	rb := c.CreateRenderbuffer()
	c.BindRenderbuffer(gl.RENDERBUFFER, rb)
	c.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA4, 2, 2)
	fb := c.CreateFramebuffer()
	c.BindFramebuffer(gl.FRAMEBUFFER, fb)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, rb)
	assert.Equal(t, gl.Enum(gl.FRAMEBUFFER_COMPLETE), c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	r.sent(c)

	c.DeleteRenderbuffer(rb)
	cmds := r.commands(c)
	require.Len(t, cmds, 3)
	assert.Equal(t, command.BindRenderbuffer{Target: gl.RENDERBUFFER}, cmds[0])
	assert.Equal(t, command.FramebufferRenderbuffer{Target: gl.FRAMEBUFFER, Attachment: gl.COLOR_ATTACHMENT0, RenderbufferTarget: gl.RENDERBUFFER}, cmds[1])
	assert.Equal(t, command.DeleteRenderbuffer{ID: rb.ID()}, cmds[2])
	assert.Equal(t, gl.Enum(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT), c.CheckFramebufferStatus(gl.FRAMEBUFFER))

	c.DeleteFramebuffer(fb)
	assert.Equal(t, []command.Tag{command.TagBindFramebuffer, command.TagDeleteFramebuffer}, r.sent(c))
	assert.Nil(t, c.GetParameter(gl.FRAMEBUFFER_BINDING))
	assert.Equal(t, gl.Enum(gl.FRAMEBUFFER_COMPLETE), c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.backend.Violations())
}

func TestDeferredRenderbufferRelease(t *testing.T) {
	c, r := newTestContext(t)
	rb := c.CreateRenderbuffer()
	c.BindRenderbuffer(gl.RENDERBUFFER, rb)
	c.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, 4, 4)
	fb := c.CreateFramebuffer()
	c.BindFramebuffer(gl.FRAMEBUFFER, fb)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, rb)
	c.BindFramebuffer(gl.FRAMEBUFFER, nil)
	r.sent(c)

	// Attached to an unbound framebuffer, the renderbuffer outlives its
	// deletion.
	c.DeleteRenderbuffer(rb)
	assert.Equal(t, []command.Tag{command.TagBindRenderbuffer}, r.sent(c))
	assert.False(t, c.IsRenderbuffer(rb))
	c.BindRenderbuffer(gl.RENDERBUFFER, rb)
	checkError(t, c, gl.INVALID_OPERATION)
	r.sent(c)

	c.DeleteFramebuffer(fb)
	cmds := r.commands(c)
	require.Len(t, cmds, 2)
	assert.Equal(t, command.DeleteFramebuffer{ID: fb.ID()}, cmds[0])
	assert.Equal(t, command.DeleteRenderbuffer{ID: rb.ID()}, cmds[1])
	assert.Empty(t, r.backend.Violations())
}

func TestDeferredShaderRelease(t *testing.T) {
	c, r := newTestContext(t)
	p, vs, fs := newTestProgram(t, c)
	r.sent(c)

	c.DeleteShader(vs)
	assert.Empty(t, r.sent(c))
	assert.False(t, c.IsShader(vs))
	assert.Equal(t, true, c.GetShaderParameter(vs, gl.DELETE_STATUS))

	// p is current, so deleting it defers the release as well.
	c.DeleteProgram(p)
	assert.Empty(t, r.sent(c))
	assert.Equal(t, p, c.GetParameter(gl.CURRENT_PROGRAM))

	c.UseProgram(nil)
	cmds := r.commands(c)
	require.Len(t, cmds, 3)
	assert.Equal(t, command.UseProgram{}, cmds[0])
	assert.Equal(t, command.DeleteProgram{ID: p.ID()}, cmds[1])
	assert.Equal(t, command.DeleteShader{ID: vs.ID()}, cmds[2])

	// fs was never deleted and survives its program.
	assert.True(t, c.IsShader(fs))
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.backend.Violations())
}

func TestDeleteBoundVertexArray(t *testing.T) {
	c, r := newTestContext(t)
	_, ok := c.GetExtension("oes_vertex_array_object")
	require.True(t, ok)
	vao := c.CreateVertexArray()
	c.BindVertexArray(vao)
	b := c.CreateBuffer()
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	c.BindVertexArray(nil)
	r.sent(c)

	// The element binding of an unbound vertex array keeps the deleted
	// buffer alive.
	c.DeleteBuffer(b)
	assert.Empty(t, r.sent(c))
	c.BindVertexArray(vao)
	assert.Equal(t, b, c.GetParameter(gl.ELEMENT_ARRAY_BUFFER_BINDING))
	r.sent(c)

	c.DeleteVertexArray(vao)
	cmds := r.commands(c)
	require.Len(t, cmds, 3)
	assert.Equal(t, command.BindVertexArray{}, cmds[0])
	assert.Equal(t, command.DeleteVertexArray{ID: vao.ID()}, cmds[1])
	assert.Equal(t, command.DeleteBuffer{ID: b.ID()}, cmds[2])
	assert.Nil(t, c.GetParameter(gl.VERTEX_ARRAY_BINDING_OES))
	assert.Nil(t, c.GetParameter(gl.ELEMENT_ARRAY_BUFFER_BINDING))
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.backend.Violations())
}
