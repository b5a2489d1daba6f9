// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
)

// VertexArray is an OES_vertex_array_object vertex array. The default
// vertex array of a context has the zero ID and is never handed out.
type VertexArray struct {
	object
	everBound bool
	elements  *Buffer
	attribs   []vertexAttrib
}

type vertexAttrib struct {
	enabled    bool
	buffer     *Buffer
	size       int32
	typ        gl.Enum
	normalized bool
	stride     int32
	offset     int32
	divisor    uint32
}

func (a *vertexAttrib) elemSize() int {
	return int(a.size) * attribTypeSize(a.typ)
}

// effectiveStride is the distance between consecutive elements.
func (a *vertexAttrib) effectiveStride() int {
	if a.stride != 0 {
		return int(a.stride)
	}
	return a.elemSize()
}

func attribTypeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT:
		return 2
	case gl.FLOAT:
		return 4
	default:
		return 0
	}
}

func (c *Context) newVertexArray(o object) *VertexArray {
	v := &VertexArray{object: o, attribs: make([]vertexAttrib, c.info.Limits.MaxVertexAttribs)}
	for i := range v.attribs {
		v.attribs[i].size = 4
		v.attribs[i].typ = gl.FLOAT
	}
	return v
}

func (v *VertexArray) name() command.ObjectID {
	if v == nil {
		return 0
	}
	return v.id
}

// currentVAO returns the bound vertex array, creating the default one on
// first use.
func (c *Context) currentVAO() *VertexArray {
	if c.vao != nil {
		return c.vao
	}
	if c.defaultVAO == nil {
		c.defaultVAO = c.newVertexArray(object{token: c.token})
	}
	return c.defaultVAO
}

func (c *Context) releaseVertexArray(v *VertexArray) {
	if v.released {
		return
	}
	v.released = true
	c.send(command.DeleteVertexArray{ID: v.id})
	old := v.elements
	v.elements = nil
	c.detachBuffer(old)
	for i := range v.attribs {
		a := &v.attribs[i]
		b := a.buffer
		a.buffer = nil
		c.detachBuffer(b)
	}
}

func (c *Context) checkVertexArrayExt() error {
	if !c.exts.IsEnabled("OES_vertex_array_object") {
		return InvalidOperation
	}
	return nil
}

func (c *Context) CreateVertexArray() *VertexArray {
	if c.isLost() || c.check(c.checkVertexArrayExt()) {
		return nil
	}
	v := c.newVertexArray(c.newObject())
	c.send(command.CreateVertexArray{ID: v.id})
	return v
}

// DeleteVertexArray deletes v. Deleting the bound vertex array binds the
// default one.
func (c *Context) DeleteVertexArray(v *VertexArray) {
	if c.isLost() || c.check(c.checkVertexArrayExt()) || v == nil {
		return
	}
	if c.check(c.validateOwnership(v)) || v.deleted {
		return
	}
	v.deleted = true
	if c.vao == v {
		c.vao = nil
		c.send(command.BindVertexArray{})
	}
	c.releaseVertexArray(v)
}

func (c *Context) BindVertexArray(v *VertexArray) {
	if c.isLost() || c.check(c.checkVertexArrayExt()) {
		return
	}
	if v != nil {
		if c.check(c.validateOwnership(v)) {
			return
		}
		if v.deleted {
			c.fail(InvalidOperation)
			return
		}
		v.everBound = true
	}
	c.send(command.BindVertexArray{ID: v.name()})
	c.vao = v
}

func (c *Context) IsVertexArray(v *VertexArray) bool {
	if c.isLost() || c.check(c.checkVertexArrayExt()) || v == nil {
		return false
	}
	return c.validateOwnership(v) == nil && v.everBound && !v.deleted
}

func (c *Context) checkAttribIndex(index uint32) error {
	if int(index) >= c.info.Limits.MaxVertexAttribs {
		return InvalidValue
	}
	return nil
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	if c.isLost() || c.check(c.checkAttribIndex(index)) {
		return
	}
	c.currentVAO().attribs[index].enabled = true
	c.send(command.EnableVertexAttribArray{Index: index})
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	if c.isLost() || c.check(c.checkAttribIndex(index)) {
		return
	}
	c.currentVAO().attribs[index].enabled = false
	c.send(command.DisableVertexAttribArray{Index: index})
}

func (c *Context) vertexAttrib(index uint32, v [4]float32) {
	if c.isLost() || c.check(c.checkAttribIndex(index)) {
		return
	}
	if index == 0 {
		c.vertexAttrib0 = v
	}
	c.send(command.VertexAttrib{Index: index, Value: v})
}

func (c *Context) VertexAttrib1f(index uint32, x float32) {
	c.vertexAttrib(index, [4]float32{x, 0, 0, 1})
}

func (c *Context) VertexAttrib2f(index uint32, x, y float32) {
	c.vertexAttrib(index, [4]float32{x, y, 0, 1})
}

func (c *Context) VertexAttrib3f(index uint32, x, y, z float32) {
	c.vertexAttrib(index, [4]float32{x, y, z, 1})
}

func (c *Context) VertexAttrib4f(index uint32, x, y, z, w float32) {
	c.vertexAttrib(index, [4]float32{x, y, z, w})
}

// vertexAttribv fills the first n components from values.
func (c *Context) vertexAttribv(index uint32, n int, values []float32) {
	if c.isLost() {
		return
	}
	if len(values) < n {
		c.fail(InvalidValue)
		return
	}
	v := [4]float32{0, 0, 0, 1}
	copy(v[:n], values)
	c.vertexAttrib(index, v)
}

func (c *Context) VertexAttrib1fv(index uint32, v []float32) { c.vertexAttribv(index, 1, v) }
func (c *Context) VertexAttrib2fv(index uint32, v []float32) { c.vertexAttribv(index, 2, v) }
func (c *Context) VertexAttrib3fv(index uint32, v []float32) { c.vertexAttribv(index, 3, v) }
func (c *Context) VertexAttrib4fv(index uint32, v []float32) { c.vertexAttribv(index, 4, v) }

// VertexAttribPointer sources attribute index from the bound array buffer.
func (c *Context) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride, offset int32) {
	if c.isLost() || c.check(c.checkAttribIndex(index)) {
		return
	}
	if size < 1 || size > 4 {
		c.fail(InvalidValue)
		return
	}
	tsize := int32(attribTypeSize(typ))
	if tsize == 0 {
		c.fail(InvalidEnum)
		return
	}
	if c.check(checkNonNegative(stride, offset)) {
		return
	}
	if stride > 255 {
		c.fail(InvalidValue)
		return
	}
	if offset%tsize != 0 || stride%tsize != 0 {
		c.fail(InvalidOperation)
		return
	}
	b := c.arrayBuffer
	if b == nil {
		c.fail(InvalidOperation)
		return
	}
	a := &c.currentVAO().attribs[index]
	c.attachBuffer(b)
	old := a.buffer
	a.buffer = b
	a.size = size
	a.typ = typ
	a.normalized = normalized
	a.stride = stride
	a.offset = offset
	c.detachBuffer(old)
	c.send(command.VertexAttribPointer{
		Index:      index,
		Size:       size,
		Type:       typ,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
}

func (c *Context) checkInstancingExt() error {
	if !c.exts.IsEnabled("ANGLE_instanced_arrays") {
		return InvalidOperation
	}
	return nil
}

// VertexAttribDivisorANGLE sets the instance divisor of attribute index.
func (c *Context) VertexAttribDivisorANGLE(index, divisor uint32) {
	if c.isLost() || c.check(c.checkInstancingExt()) || c.check(c.checkAttribIndex(index)) {
		return
	}
	c.currentVAO().attribs[index].divisor = divisor
	c.send(command.VertexAttribDivisor{Index: index, Divisor: divisor})
}

// GetVertexAttrib returns the parameter of attribute index: a bool, an
// int32, a gl.Enum, a *Buffer or a [4]float32 for CURRENT_VERTEX_ATTRIB.
// It returns nil on error.
func (c *Context) GetVertexAttrib(index uint32, param gl.Enum) any {
	if c.isLost() || c.check(c.checkAttribIndex(index)) {
		return nil
	}
	if param == gl.CURRENT_VERTEX_ATTRIB {
		if index == 0 {
			return c.vertexAttrib0
		}
		r := command.NewReply[[4]float32]()
		v, ok := query(c, command.GetCurrentVertexAttrib{Index: index, Reply: r}, r)
		if !ok {
			return nil
		}
		return v
	}
	if !c.exts.IsEnumEnabled(ext.VertexAttrib, param) {
		c.fail(InvalidEnum)
		return nil
	}
	a := c.currentVAO().attribs[index]
	switch param {
	case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
		return a.enabled
	case gl.VERTEX_ATTRIB_ARRAY_SIZE:
		return a.size
	case gl.VERTEX_ATTRIB_ARRAY_TYPE:
		return a.typ
	case gl.VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return a.normalized
	case gl.VERTEX_ATTRIB_ARRAY_STRIDE:
		return a.stride
	case gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		if a.buffer == nil {
			return nil
		}
		return a.buffer
	case gl.VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE:
		return a.divisor
	default:
		c.fail(InvalidEnum)
		return nil
	}
}

func (c *Context) GetVertexAttribOffset(index uint32, param gl.Enum) int {
	if c.isLost() {
		return 0
	}
	if param != gl.VERTEX_ATTRIB_ARRAY_POINTER {
		c.fail(InvalidEnum)
		return 0
	}
	if c.check(c.checkAttribIndex(index)) {
		return 0
	}
	return int(c.currentVAO().attribs[index].offset)
}
