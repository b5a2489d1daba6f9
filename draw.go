// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"encoding/binary"
	"math"

	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
)

func indexTypeSize(typ gl.Enum) int {
	switch typ {
	case gl.UNSIGNED_BYTE:
		return 1
	case gl.UNSIGNED_SHORT:
		return 2
	case gl.UNSIGNED_INT:
		return 4
	default:
		return 0
	}
}

// maxIndex returns the largest of count indices of the given size stored
// at offset in data.
func maxIndex(data []byte, offset, count, size int) uint32 {
	var m uint32
	idx := data[offset : offset+count*size]
	for i := 0; i < count; i++ {
		var v uint32
		switch size {
		case 1:
			v = uint32(idx[i])
		case 2:
			v = uint32(binary.NativeEndian.Uint16(idx[i*2:]))
		default:
			v = binary.NativeEndian.Uint32(idx[i*4:])
		}
		m = max(m, v)
	}
	return m
}

// covers reports whether the buffer of a holds n elements.
func (a *vertexAttrib) covers(n uint64) bool {
	if n == 0 {
		return true
	}
	if a.buffer == nil {
		return false
	}
	need := uint64(a.offset) + (n-1)*uint64(a.effectiveStride()) + uint64(a.elemSize())
	return need <= uint64(a.buffer.capacity)
}

// validateAttribs checks that the attributes read by the current program
// hold the vertices and instances a draw reads.
func (c *Context) validateAttribs(p *Program, vertices uint64, primcount int32) error {
	vao := c.currentVAO()
	divisor0 := false
	for _, info := range p.attribs {
		if info.Location < 0 || int(info.Location) >= len(vao.attribs) {
			continue
		}
		a := &vao.attribs[info.Location]
		if a.divisor == 0 {
			divisor0 = true
		}
		if !a.enabled {
			continue
		}
		if a.buffer == nil {
			return InvalidOperation
		}
		n := vertices
		if a.divisor != 0 {
			n = (uint64(primcount) + uint64(a.divisor) - 1) / uint64(a.divisor)
		}
		if !a.covers(n) {
			return InvalidOperation
		}
	}
	if len(p.attribs) > 0 && !divisor0 {
		return InvalidOperation
	}
	return nil
}

// currentProgram returns the program draws use.
func (c *Context) currentProgram() (*Program, error) {
	p := c.program
	if p == nil || !p.linked {
		return nil, InvalidOperation
	}
	return p, nil
}

func (c *Context) drawArrays(mode gl.Enum, first, count, primcount int32) error {
	if err := checkEnum(mode, topologies); err != nil {
		return err
	}
	if err := checkNonNegative(first, count, primcount); err != nil {
		return err
	}
	p, err := c.currentProgram()
	if err != nil {
		return err
	}
	var vertices uint64
	if count > 0 {
		end := int64(first) + int64(count)
		if end > math.MaxInt32 {
			return InvalidOperation
		}
		vertices = uint64(end)
	}
	if err := c.validateAttribs(p, vertices, primcount); err != nil {
		return err
	}
	if err := c.validateFramebuffer(); err != nil {
		return err
	}
	switch {
	case count == 0 || primcount == 0:
	case primcount == 1:
		c.send(command.DrawArrays{Mode: mode, First: first, Count: count})
	default:
		c.send(command.DrawArraysInstanced{Mode: mode, First: first, Count: count, Primcount: primcount})
	}
	return nil
}

func (c *Context) drawElements(mode gl.Enum, count int32, typ gl.Enum, offset int64, primcount int32) error {
	if err := checkEnum(mode, topologies); err != nil {
		return err
	}
	if err := checkNonNegative(int64(count), offset, int64(primcount)); err != nil {
		return err
	}
	size := indexTypeSize(typ)
	if size == 0 || !c.exts.IsEnumEnabled(ext.IndexType, typ) {
		return InvalidEnum
	}
	if offset%int64(size) != 0 {
		return InvalidOperation
	}
	p, err := c.currentProgram()
	if err != nil {
		return err
	}
	elems := c.currentVAO().elements
	if elems == nil {
		return InvalidOperation
	}
	var vertices uint64
	if count > 0 && primcount > 0 {
		end := uint64(offset) + uint64(count)*uint64(size)
		if end > uint64(elems.capacity) {
			return InvalidOperation
		}
		vertices = uint64(maxIndex(elems.shadow, int(offset), int(count), size)) + 1
	}
	if err := c.validateAttribs(p, vertices, primcount); err != nil {
		return err
	}
	if err := c.validateFramebuffer(); err != nil {
		return err
	}
	switch {
	case count == 0 || primcount == 0:
	case primcount == 1:
		c.send(command.DrawElements{Mode: mode, Count: count, Type: typ, Offset: offset})
	default:
		c.send(command.DrawElementsInstanced{Mode: mode, Count: count, Type: typ, Offset: offset, Primcount: primcount})
	}
	return nil
}

func (c *Context) DrawArrays(mode gl.Enum, first, count int32) {
	if c.isLost() {
		return
	}
	c.check(c.drawArrays(mode, first, count, 1))
}

// DrawElements draws count indices of type typ read at byte offset from
// the element array buffer.
func (c *Context) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int64) {
	if c.isLost() {
		return
	}
	c.check(c.drawElements(mode, count, typ, offset, 1))
}

func (c *Context) DrawArraysInstancedANGLE(mode gl.Enum, first, count, primcount int32) {
	if c.isLost() || c.check(c.checkInstancingExt()) {
		return
	}
	c.check(c.drawArrays(mode, first, count, primcount))
}

func (c *Context) DrawElementsInstancedANGLE(mode gl.Enum, count int32, typ gl.Enum, offset int64, primcount int32) {
	if c.isLost() || c.check(c.checkInstancingExt()) {
		return
	}
	c.check(c.drawElements(mode, count, typ, offset, primcount))
}
