// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Shader is a WebGL shader object. The backend compiles it; the context
// only keeps its source and the outcome of the last compile.
type Shader struct {
	object
	typ      gl.Enum
	source   string
	compiled bool
	infoLog  string
	// attached counts the programs the shader is attached to.
	attached int
}

func (s *Shader) name() command.ObjectID {
	if s == nil {
		return 0
	}
	return s.id
}

func (c *Context) releaseShader(s *Shader) {
	if !s.deleted || s.released || s.attached > 0 {
		return
	}
	s.released = true
	c.send(command.DeleteShader{ID: s.id})
}

func (c *Context) CreateShader(typ gl.Enum) *Shader {
	if c.isLost() {
		return nil
	}
	if typ != gl.VERTEX_SHADER && typ != gl.FRAGMENT_SHADER {
		c.fail(InvalidEnum)
		return nil
	}
	s := &Shader{object: c.newObject(), typ: typ}
	c.send(command.CreateShader{ID: s.id, Type: typ})
	return s
}

// DeleteShader marks s for deletion. The backend shader lives on while a
// program holds it.
func (c *Context) DeleteShader(s *Shader) {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) || s.deleted {
		return
	}
	s.deleted = true
	c.releaseShader(s)
}

func (c *Context) IsShader(s *Shader) bool {
	if c.isLost() || s == nil {
		return false
	}
	return c.validateOwnership(s) == nil && !s.deleted
}

func (c *Context) ShaderSource(s *Shader, source string) {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) {
		return
	}
	if s.released {
		c.fail(InvalidValue)
		return
	}
	s.source = source
}

func (c *Context) GetShaderSource(s *Shader) (string, bool) {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) {
		return "", false
	}
	return s.source, true
}

// CompileShader compiles the current source of s and waits for the
// outcome.
func (c *Context) CompileShader(s *Shader) {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) {
		return
	}
	if s.released {
		c.fail(InvalidValue)
		return
	}
	r := command.NewReply[command.CompileInfo]()
	info, ok := query(c, command.CompileShader{ID: s.id, Source: s.source, Reply: r}, r)
	if !ok {
		return
	}
	s.compiled = info.Compiled
	s.infoLog = info.Log
}

func (c *Context) GetShaderInfoLog(s *Shader) (string, bool) {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) {
		return "", false
	}
	return s.infoLog, true
}

// GetShaderParameter returns a bool for DELETE_STATUS and COMPILE_STATUS
// and a gl.Enum for SHADER_TYPE.
func (c *Context) GetShaderParameter(s *Shader, param gl.Enum) any {
	if c.isLost() || s == nil || c.check(c.validateOwnership(s)) {
		return nil
	}
	if s.released {
		c.fail(InvalidValue)
		return nil
	}
	switch param {
	case gl.DELETE_STATUS:
		return s.deleted
	case gl.COMPILE_STATUS:
		return s.compiled
	case gl.SHADER_TYPE:
		return s.typ
	default:
		c.fail(InvalidEnum)
		return nil
	}
}

var (
	shaderTypes    = []gl.Enum{gl.VERTEX_SHADER, gl.FRAGMENT_SHADER}
	precisionTypes = []gl.Enum{gl.LOW_FLOAT, gl.MEDIUM_FLOAT, gl.HIGH_FLOAT, gl.LOW_INT, gl.MEDIUM_INT, gl.HIGH_INT}
)

func (c *Context) GetShaderPrecisionFormat(shaderType, precisionType gl.Enum) (command.PrecisionFormat, bool) {
	if c.isLost() {
		return command.PrecisionFormat{}, false
	}
	if c.check(checkEnum(shaderType, shaderTypes)) || c.check(checkEnum(precisionType, precisionTypes)) {
		return command.PrecisionFormat{}, false
	}
	r := command.NewReply[command.PrecisionFormat]()
	return query(c, command.GetShaderPrecisionFormat{ShaderType: shaderType, PrecisionType: precisionType, Reply: r}, r)
}
