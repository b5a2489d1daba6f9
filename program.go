// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"strings"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// maxNameLength bounds attribute and uniform names.
const maxNameLength = 256

// Program is a WebGL program object.
type Program struct {
	object
	vertex, fragment *Shader
	linked           bool
	// generation counts link attempts. Uniform locations of an earlier
	// generation are stale.
	generation uint32
	infoLog    string
	attribs    []command.ActiveAttrib
	uniforms   []command.ActiveInfo
	inUse      bool
}

func (p *Program) name() command.ObjectID {
	if p == nil {
		return 0
	}
	return p.id
}

func (p *Program) slot(typ gl.Enum) **Shader {
	if typ == gl.VERTEX_SHADER {
		return &p.vertex
	}
	return &p.fragment
}

// attribLocation returns the location of the active attribute called
// name, or -1.
func (p *Program) attribLocation(name string) int32 {
	for _, a := range p.attribs {
		if a.Name == name {
			return a.Location
		}
	}
	return -1
}

func isReservedName(name string) bool {
	return strings.HasPrefix(name, "webgl_") || strings.HasPrefix(name, "_webgl_")
}

func (c *Context) releaseProgram(p *Program) {
	if !p.deleted || p.released || p.inUse {
		return
	}
	p.released = true
	c.send(command.DeleteProgram{ID: p.id})
	for _, s := range []*Shader{p.vertex, p.fragment} {
		if s == nil {
			continue
		}
		s.attached--
		c.releaseShader(s)
	}
	p.vertex, p.fragment = nil, nil
}

func (c *Context) CreateProgram() *Program {
	if c.isLost() {
		return nil
	}
	p := &Program{object: c.newObject()}
	c.send(command.CreateProgram{ID: p.id})
	return p
}

// DeleteProgram marks p for deletion. A program in use is released when it
// stops being current.
func (c *Context) DeleteProgram(p *Program) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) || p.deleted {
		return
	}
	p.deleted = true
	c.releaseProgram(p)
}

func (c *Context) IsProgram(p *Program) bool {
	if c.isLost() || p == nil {
		return false
	}
	return c.validateOwnership(p) == nil && !p.deleted
}

func (c *Context) AttachShader(p *Program, s *Shader) {
	if c.isLost() || p == nil || s == nil {
		return
	}
	if c.check(c.validateOwnership(p)) || c.check(c.validateOwnership(s)) {
		return
	}
	if p.released || s.released {
		c.fail(InvalidValue)
		return
	}
	slot := p.slot(s.typ)
	if *slot != nil {
		c.fail(InvalidOperation)
		return
	}
	*slot = s
	s.attached++
	c.send(command.AttachShader{Program: p.id, Shader: s.id})
}

func (c *Context) DetachShader(p *Program, s *Shader) {
	if c.isLost() || p == nil || s == nil {
		return
	}
	if c.check(c.validateOwnership(p)) || c.check(c.validateOwnership(s)) {
		return
	}
	if p.released || s.released {
		c.fail(InvalidValue)
		return
	}
	slot := p.slot(s.typ)
	if *slot != s {
		c.fail(InvalidOperation)
		return
	}
	*slot = nil
	c.send(command.DetachShader{Program: p.id, Shader: s.id})
	s.attached--
	c.releaseShader(s)
}

func (c *Context) GetAttachedShaders(p *Program) ([]*Shader, bool) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return nil, false
	}
	if p.released {
		c.fail(InvalidValue)
		return nil, false
	}
	var shaders []*Shader
	for _, s := range []*Shader{p.vertex, p.fragment} {
		if s != nil {
			shaders = append(shaders, s)
		}
	}
	return shaders, true
}

func (c *Context) BindAttribLocation(p *Program, index uint32, name string) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return
	}
	switch {
	case len(name) > maxNameLength:
		c.fail(InvalidValue)
		return
	case isReservedName(name):
		c.fail(InvalidOperation)
		return
	case index >= uint32(c.info.Limits.MaxVertexAttribs):
		c.fail(InvalidValue)
		return
	case p.released:
		c.fail(InvalidValue)
		return
	}
	c.send(command.BindAttribLocation{Program: p.id, Index: index, Name: name})
}

// LinkProgram links p and waits for the outcome. Every attempt, failed or
// not, invalidates the uniform locations obtained before it.
func (c *Context) LinkProgram(p *Program) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return
	}
	if p.released {
		c.fail(InvalidValue)
		return
	}
	p.generation++
	p.linked = false
	p.attribs, p.uniforms = nil, nil
	if p.vertex == nil || p.fragment == nil || !p.vertex.compiled || !p.fragment.compiled {
		p.infoLog = "missing or uncompiled shader"
		return
	}
	r := command.NewReply[command.LinkInfo]()
	info, ok := query(c, command.LinkProgram{ID: p.id, Reply: r}, r)
	if !ok {
		return
	}
	p.linked = info.Linked
	p.infoLog = info.Log
	if p.linked {
		p.attribs = info.Attribs
		p.uniforms = info.Uniforms
	}
}

func (c *Context) ValidateProgram(p *Program) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return
	}
	if p.released {
		c.fail(InvalidValue)
		return
	}
	c.send(command.ValidateProgram{ID: p.id})
}

// UseProgram makes p current. nil clears the current program.
func (c *Context) UseProgram(p *Program) {
	if c.isLost() {
		return
	}
	if p != nil {
		if c.check(c.validateOwnership(p)) {
			return
		}
		if p.deleted || !p.linked {
			c.fail(InvalidOperation)
			return
		}
	}
	old := c.program
	if old == p {
		return
	}
	if p != nil {
		p.inUse = true
	}
	c.program = p
	c.send(command.UseProgram{ID: p.name()})
	if old != nil {
		old.inUse = false
		c.releaseProgram(old)
	}
}

// GetProgramParameter returns a bool for DELETE_STATUS, LINK_STATUS and
// VALIDATE_STATUS and an int32 for the counts.
func (c *Context) GetProgramParameter(p *Program, param gl.Enum) any {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return nil
	}
	if p.released {
		c.fail(InvalidOperation)
		return nil
	}
	switch param {
	case gl.DELETE_STATUS:
		return p.deleted
	case gl.LINK_STATUS:
		return p.linked
	case gl.VALIDATE_STATUS:
		r := command.NewReply[bool]()
		v, ok := query(c, command.GetProgramValidateStatus{ID: p.id, Reply: r}, r)
		if !ok {
			return nil
		}
		return v
	case gl.ATTACHED_SHADERS:
		n := int32(0)
		if p.vertex != nil {
			n++
		}
		if p.fragment != nil {
			n++
		}
		return n
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(p.attribs))
	case gl.ACTIVE_UNIFORMS:
		return int32(len(p.uniforms))
	default:
		c.fail(InvalidEnum)
		return nil
	}
}

func (c *Context) GetProgramInfoLog(p *Program) (string, bool) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return "", false
	}
	if p.released {
		c.fail(InvalidValue)
		return "", false
	}
	return p.infoLog, true
}

func (c *Context) GetActiveAttrib(p *Program, index uint32) (command.ActiveInfo, bool) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return command.ActiveInfo{}, false
	}
	if p.released || index >= uint32(len(p.attribs)) {
		c.fail(InvalidValue)
		return command.ActiveInfo{}, false
	}
	return p.attribs[index].ActiveInfo, true
}

func (c *Context) GetActiveUniform(p *Program, index uint32) (command.ActiveInfo, bool) {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return command.ActiveInfo{}, false
	}
	if p.released || index >= uint32(len(p.uniforms)) {
		c.fail(InvalidValue)
		return command.ActiveInfo{}, false
	}
	return p.uniforms[index], true
}

// GetAttribLocation returns the location of the named attribute of the
// linked program p, or -1.
func (c *Context) GetAttribLocation(p *Program, name string) int32 {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return -1
	}
	if len(name) > maxNameLength {
		c.fail(InvalidValue)
		return -1
	}
	if !p.linked || p.released {
		c.fail(InvalidOperation)
		return -1
	}
	if isReservedName(name) {
		return -1
	}
	return p.attribLocation(name)
}
