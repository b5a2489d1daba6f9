// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// bindTriangle feeds attribute 0 of the current program three vec2
// vertices.
func bindTriangle(t *testing.T, c *Context) *Buffer {
	t.Helper()
	b := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, b)
	c.BufferData(gl.ARRAY_BUFFER, Float32Array([]float32{0, 0, 1, 0, 0, 1}).Data, gl.STATIC_DRAW)
	c.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, 0)
	c.EnableVertexAttribArray(0)
	checkError(t, c, gl.NO_ERROR)
	return b
}

func bindIndices(c *Context, indices ...uint16) *Buffer {
	b := c.CreateBuffer()
	c.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b)
	c.BufferData(gl.ELEMENT_ARRAY_BUFFER, Uint16Array(indices).Data, gl.STATIC_DRAW)
	return b
}

func TestEmptyDraws(t *testing.T) {
	c, r := newTestContext(t)
	_, ok := c.GetExtension("ANGLE_instanced_arrays")
	require.True(t, ok)
	newTestProgram(t, c)
	bindTriangle(t, c)
	bindIndices(c, 0, 1, 2)
	r.sent(c)

	c.DrawArrays(gl.TRIANGLES, 0, 0)
	// With nothing to draw, first may point past the vertices.
	c.DrawArrays(gl.TRIANGLES, 10, 0)
	c.DrawElements(gl.TRIANGLES, 0, gl.UNSIGNED_SHORT, 0)
	c.DrawArraysInstancedANGLE(gl.TRIANGLES, 0, 3, 0)
	c.DrawElementsInstancedANGLE(gl.TRIANGLES, 3, gl.UNSIGNED_SHORT, 0, 0)
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.sent(c))
	assert.Zero(t, r.backend.Stats().Draws)

	// Empty draws are still validated.
	c.DrawArrays(gl.TEXTURE_2D, 0, 0)
	checkError(t, c, gl.INVALID_ENUM)
	c.DrawArrays(gl.TRIANGLES, -1, 0)
	checkError(t, c, gl.INVALID_VALUE)
	c.UseProgram(nil)
	c.DrawArrays(gl.TRIANGLES, 0, 0)
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.backend.Violations())
}

func TestDrawArrays(t *testing.T) {
	c, r := newTestContext(t)
	c.DrawArrays(gl.TRIANGLES, 0, 3)
	checkError(t, c, gl.INVALID_OPERATION)

	newTestProgram(t, c)
	c.EnableVertexAttribArray(0)
	c.DrawArrays(gl.TRIANGLES, 0, 3)
	checkError(t, c, gl.INVALID_OPERATION)
	bindTriangle(t, c)
	r.sent(c)

	c.DrawArrays(gl.TRIANGLES, 0, 3)
	assert.Equal(t, []command.Tag{command.TagDrawArrays}, r.sent(c))
	c.DrawArrays(gl.TRIANGLES, 1, 3)
	checkError(t, c, gl.INVALID_OPERATION)
	c.DrawArrays(gl.TRIANGLES, 0, -3)
	checkError(t, c, gl.INVALID_VALUE)
	assert.Empty(t, r.sent(c))

	// A disabled attribute reads the current value and needs no buffer.
	c.DisableVertexAttribArray(0)
	c.DrawArrays(gl.TRIANGLES, 0, 300)
	checkError(t, c, gl.NO_ERROR)
	// Draws are not acknowledged, so wait for the backend to apply them.
	c.Finish()
	assert.Equal(t, 2, r.backend.Stats().Draws)
	assert.Empty(t, r.backend.Violations())
}

func TestDrawElementsRange(t *testing.T) {
	c, r := newTestContext(t)
	newTestProgram(t, c)
	bindTriangle(t, c)
	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_SHORT, 0)
	checkError(t, c, gl.INVALID_OPERATION)
	bindIndices(c, 0, 1, 2, 3)
	r.sent(c)

	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_SHORT, 0)
	assert.Equal(t, []command.Tag{command.TagDrawElements}, r.sent(c))

	tests := []struct {
		name   string
		count  int32
		typ    gl.Enum
		offset int64
		want   gl.Enum
	}{
		{"index past vertices", 4, gl.UNSIGNED_SHORT, 0, gl.INVALID_OPERATION},
		{"offset index past vertices", 3, gl.UNSIGNED_SHORT, 2, gl.INVALID_OPERATION},
		{"misaligned offset", 2, gl.UNSIGNED_SHORT, 1, gl.INVALID_OPERATION},
		{"past buffer end", 3, gl.UNSIGNED_SHORT, 4, gl.INVALID_OPERATION},
		{"negative offset", 3, gl.UNSIGNED_SHORT, -2, gl.INVALID_VALUE},
		{"uint without extension", 1, gl.UNSIGNED_INT, 0, gl.INVALID_ENUM},
		{"float indices", 1, gl.FLOAT, 0, gl.INVALID_ENUM},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.DrawElements(gl.TRIANGLES, tt.count, tt.typ, tt.offset)
			checkError(t, c, tt.want)
			assert.Empty(t, r.sent(c))
		})
	}

	// Bytes read as small indices stay in range.
	c.DrawElements(gl.TRIANGLES, 3, gl.UNSIGNED_BYTE, 0)
	checkError(t, c, gl.NO_ERROR)

	// Rewriting the last index brings it in range.
	c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 6, Uint16Array([]uint16{2}).Data)
	c.DrawElements(gl.TRIANGLES, 4, gl.UNSIGNED_SHORT, 0)
	checkError(t, c, gl.NO_ERROR)

	_, ok := c.GetExtension("OES_element_index_uint")
	require.True(t, ok)
	c.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, make([]byte, 8))
	c.DrawElements(gl.TRIANGLES, 2, gl.UNSIGNED_INT, 0)
	checkError(t, c, gl.NO_ERROR)
	c.Finish()
	assert.Equal(t, 4, r.backend.Stats().Draws)
	assert.Empty(t, r.backend.Violations())
}

func TestMaxIndex(t *testing.T) {
	data := Uint16Array([]uint16{4, 9, 1, 7}).Data
	assert.Equal(t, uint32(9), maxIndex(data, 0, 4, 2))
	assert.Equal(t, uint32(7), maxIndex(data, 4, 2, 2))
	assert.Equal(t, uint32(0), maxIndex(data, 0, 0, 2))
	assert.Equal(t, uint32(9), maxIndex([]byte{3, 9, 2}, 0, 3, 1))
}

func TestInstancedDraws(t *testing.T) {
	c, r := newTestContext(t)
	newTestProgram(t, c)
	bindTriangle(t, c)
	c.DrawArraysInstancedANGLE(gl.TRIANGLES, 0, 3, 2)
	checkError(t, c, gl.INVALID_OPERATION)
	c.VertexAttribDivisorANGLE(0, 1)
	checkError(t, c, gl.INVALID_OPERATION)

	_, ok := c.GetExtension("ANGLE_instanced_arrays")
	require.True(t, ok)
	c.VertexAttribDivisorANGLE(0, 1)
	assert.Equal(t, uint32(1), c.GetVertexAttrib(0, gl.VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE))
	r.sent(c)

	// At least one attribute must advance per vertex.
	c.DrawArraysInstancedANGLE(gl.TRIANGLES, 0, 3, 2)
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.sent(c))

	c.VertexAttribDivisorANGLE(0, 0)
	r.sent(c)
	c.DrawArraysInstancedANGLE(gl.TRIANGLES, 0, 3, 2)
	checkError(t, c, gl.NO_ERROR)
	cmds := r.commands(c)
	require.Len(t, cmds, 1)
	assert.Equal(t, command.DrawArraysInstanced{Mode: gl.TRIANGLES, Count: 3, Primcount: 2}, cmds[0])
	assert.Empty(t, r.backend.Violations())
}

func TestExtensionGating(t *testing.T) {
	c, r := newTestContext(t)
	c.BlendEquation(gl.MIN_EXT)
	checkError(t, c, gl.INVALID_ENUM)
	assert.Nil(t, c.CreateVertexArray())
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.sent(c))

	assert.Contains(t, c.GetSupportedExtensions(), "EXT_blend_minmax")
	assert.NotContains(t, c.GetSupportedExtensions(), "OES_texture_half_float")
	_, ok := c.GetExtension("OES_texture_half_float")
	assert.False(t, ok)
	name, ok := c.GetExtension("ext_blend_minmax")
	require.True(t, ok)
	assert.Equal(t, "EXT_blend_minmax", name)

	c.BlendEquation(gl.MIN_EXT)
	checkError(t, c, gl.NO_ERROR)
	assert.Equal(t, []command.Tag{command.TagBlendEquation}, r.sent(c))
	assert.Empty(t, r.backend.Violations())
}
