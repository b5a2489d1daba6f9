// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"slices"
	"strconv"
	"strings"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// UniformLocation names a uniform, or one element of a uniform array, of a
// linked program. It is valid until the program is linked again.
type UniformLocation struct {
	program    command.ObjectID
	generation uint32
	location   int32
	typ        gl.Enum
	// size is the number of array elements from the location to the end
	// of the array, or 0 for a uniform that is not an array.
	size int32
}

type uniformBase uint8

const (
	baseFloat uniformBase = iota
	baseInt
	baseBool
	baseSampler
)

// uniformShape is the value layout of a uniform type.
type uniformShape struct {
	base       uniformBase
	components int
	// matrix is the dimension of a square matrix type, 0 otherwise.
	matrix int
}

var uniformShapes = map[gl.Enum]uniformShape{
	gl.FLOAT:        {baseFloat, 1, 0},
	gl.FLOAT_VEC2:   {baseFloat, 2, 0},
	gl.FLOAT_VEC3:   {baseFloat, 3, 0},
	gl.FLOAT_VEC4:   {baseFloat, 4, 0},
	gl.INT:          {baseInt, 1, 0},
	gl.INT_VEC2:     {baseInt, 2, 0},
	gl.INT_VEC3:     {baseInt, 3, 0},
	gl.INT_VEC4:     {baseInt, 4, 0},
	gl.BOOL:         {baseBool, 1, 0},
	gl.BOOL_VEC2:    {baseBool, 2, 0},
	gl.BOOL_VEC3:    {baseBool, 3, 0},
	gl.BOOL_VEC4:    {baseBool, 4, 0},
	gl.SAMPLER_2D:   {baseSampler, 1, 0},
	gl.SAMPLER_CUBE: {baseSampler, 1, 0},
	gl.FLOAT_MAT2:   {baseFloat, 4, 2},
	gl.FLOAT_MAT3:   {baseFloat, 9, 3},
	gl.FLOAT_MAT4:   {baseFloat, 16, 4},
}

// accepts reports whether a call passing n-component values of base b may
// set a uniform of shape s. Booleans take either base; samplers take ints.
func (s uniformShape) accepts(b uniformBase, n int) bool {
	if s.matrix != 0 || s.components != n {
		return false
	}
	switch s.base {
	case baseBool:
		return true
	case baseSampler:
		return b == baseInt
	default:
		return s.base == b
	}
}

// parseUniformName splits "name[i]" into name and i. Names without a
// subscript return -1.
func parseUniformName(name string) (string, int, bool) {
	if !strings.HasSuffix(name, "]") {
		return name, -1, true
	}
	open := strings.LastIndexByte(name, '[')
	if open <= 0 {
		return "", 0, false
	}
	i, err := strconv.Atoi(name[open+1 : len(name)-1])
	if err != nil || i < 0 {
		return "", 0, false
	}
	return name[:open], i, true
}

// lookupUniform finds the active uniform a location name refers to and the
// number of array elements from the name's index on.
func (p *Program) lookupUniform(name string) (command.ActiveInfo, int32, bool) {
	base, index, ok := parseUniformName(name)
	if !ok {
		return command.ActiveInfo{}, 0, false
	}
	for _, u := range p.uniforms {
		uname, isArray := strings.CutSuffix(u.Name, "[0]")
		if uname != base {
			continue
		}
		isArray = isArray || u.Size > 1
		switch {
		case !isArray && index < 0:
			return u, 0, true
		case isArray && index < int(u.Size):
			idx := max(index, 0)
			return u, u.Size - int32(idx), true
		}
		return command.ActiveInfo{}, 0, false
	}
	return command.ActiveInfo{}, 0, false
}

// GetUniformLocation returns the location of a uniform of the linked
// program p, or nil for an unknown or reserved name.
func (c *Context) GetUniformLocation(p *Program, name string) *UniformLocation {
	if c.isLost() || p == nil || c.check(c.validateOwnership(p)) {
		return nil
	}
	if len(name) > maxNameLength {
		c.fail(InvalidValue)
		return nil
	}
	if !p.linked || p.released {
		c.fail(InvalidOperation)
		return nil
	}
	if isReservedName(name) {
		return nil
	}
	u, size, ok := p.lookupUniform(name)
	if !ok {
		return nil
	}
	r := command.NewReply[int32]()
	loc, ok := query(c, command.GetUniformLocation{Program: p.id, Name: name, Reply: r}, r)
	if !ok || loc < 0 {
		return nil
	}
	return &UniformLocation{program: p.id, generation: p.generation, location: loc, typ: u.Type, size: size}
}

// locate checks that loc belongs to the current link of the current
// program and returns the shape of its uniform.
func (c *Context) locate(loc *UniformLocation) (uniformShape, error) {
	p := c.program
	if p == nil || p.id != loc.program || p.generation != loc.generation {
		return uniformShape{}, InvalidOperation
	}
	s, ok := uniformShapes[loc.typ]
	if !ok {
		return uniformShape{}, InvalidOperation
	}
	return s, nil
}

// checkArray validates a vector upload of n-component elements.
func checkArray(loc *UniformLocation, n, length int) error {
	if length < n || length%n != 0 {
		return InvalidValue
	}
	if loc.size == 0 && length != n {
		return InvalidOperation
	}
	return nil
}

// clip drops the values past the end of the array loc points into.
func clip[T any](loc *UniformLocation, n int, vs []T) []T {
	if loc.size > 0 && len(vs) > int(loc.size)*n {
		return vs[:int(loc.size)*n]
	}
	return vs
}

// checkSamplers checks the units written by a sampler upload.
func (c *Context) checkSamplers(loc *UniformLocation, vs []int32) error {
	n := len(vs)
	if loc.size > 0 {
		n = min(n, int(loc.size))
	}
	units := int32(c.info.Limits.MaxCombinedTextureImageUnits)
	for _, v := range vs[:n] {
		if v < 0 || v >= units {
			return InvalidValue
		}
	}
	return nil
}

func (c *Context) uniformf(loc *UniformLocation, n int, vs []float32, array bool) {
	if c.isLost() || loc == nil {
		return
	}
	s, err := c.locate(loc)
	if c.check(err) {
		return
	}
	if !s.accepts(baseFloat, n) {
		c.fail(InvalidOperation)
		return
	}
	if array && c.check(checkArray(loc, n, len(vs))) {
		return
	}
	c.send(command.UniformFloat{Location: loc.location, Components: n, Values: slices.Clone(clip(loc, n, vs))})
}

func (c *Context) uniformi(loc *UniformLocation, n int, vs []int32, array bool) {
	if c.isLost() || loc == nil {
		return
	}
	s, err := c.locate(loc)
	if c.check(err) {
		return
	}
	if !s.accepts(baseInt, n) {
		c.fail(InvalidOperation)
		return
	}
	if array && c.check(checkArray(loc, n, len(vs))) {
		return
	}
	if s.base == baseSampler && c.check(c.checkSamplers(loc, vs)) {
		return
	}
	c.send(command.UniformInt{Location: loc.location, Components: n, Values: slices.Clone(clip(loc, n, vs))})
}

func (c *Context) uniformMatrix(loc *UniformLocation, dim int, transpose bool, vs []float32) {
	if c.isLost() || loc == nil {
		return
	}
	s, err := c.locate(loc)
	if c.check(err) {
		return
	}
	if s.matrix != dim {
		c.fail(InvalidOperation)
		return
	}
	if transpose {
		c.fail(InvalidValue)
		return
	}
	if c.check(checkArray(loc, dim*dim, len(vs))) {
		return
	}
	c.send(command.UniformMatrix{Location: loc.location, Dim: dim, Values: slices.Clone(clip(loc, dim*dim, vs))})
}

func (c *Context) Uniform1f(loc *UniformLocation, x float32) {
	c.uniformf(loc, 1, []float32{x}, false)
}

func (c *Context) Uniform2f(loc *UniformLocation, x, y float32) {
	c.uniformf(loc, 2, []float32{x, y}, false)
}

func (c *Context) Uniform3f(loc *UniformLocation, x, y, z float32) {
	c.uniformf(loc, 3, []float32{x, y, z}, false)
}

func (c *Context) Uniform4f(loc *UniformLocation, x, y, z, w float32) {
	c.uniformf(loc, 4, []float32{x, y, z, w}, false)
}

func (c *Context) Uniform1fv(loc *UniformLocation, v []float32) { c.uniformf(loc, 1, v, true) }
func (c *Context) Uniform2fv(loc *UniformLocation, v []float32) { c.uniformf(loc, 2, v, true) }
func (c *Context) Uniform3fv(loc *UniformLocation, v []float32) { c.uniformf(loc, 3, v, true) }
func (c *Context) Uniform4fv(loc *UniformLocation, v []float32) { c.uniformf(loc, 4, v, true) }

func (c *Context) Uniform1i(loc *UniformLocation, x int32) {
	c.uniformi(loc, 1, []int32{x}, false)
}

func (c *Context) Uniform2i(loc *UniformLocation, x, y int32) {
	c.uniformi(loc, 2, []int32{x, y}, false)
}

func (c *Context) Uniform3i(loc *UniformLocation, x, y, z int32) {
	c.uniformi(loc, 3, []int32{x, y, z}, false)
}

func (c *Context) Uniform4i(loc *UniformLocation, x, y, z, w int32) {
	c.uniformi(loc, 4, []int32{x, y, z, w}, false)
}

func (c *Context) Uniform1iv(loc *UniformLocation, v []int32) { c.uniformi(loc, 1, v, true) }
func (c *Context) Uniform2iv(loc *UniformLocation, v []int32) { c.uniformi(loc, 2, v, true) }
func (c *Context) Uniform3iv(loc *UniformLocation, v []int32) { c.uniformi(loc, 3, v, true) }
func (c *Context) Uniform4iv(loc *UniformLocation, v []int32) { c.uniformi(loc, 4, v, true) }

// UniformMatrix2fv sets a mat2 uniform. Transposition is not supported in
// WebGL 1 and always fails.
func (c *Context) UniformMatrix2fv(loc *UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(loc, 2, transpose, v)
}

func (c *Context) UniformMatrix3fv(loc *UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(loc, 3, transpose, v)
}

func (c *Context) UniformMatrix4fv(loc *UniformLocation, transpose bool, v []float32) {
	c.uniformMatrix(loc, 4, transpose, v)
}

// GetUniform returns the value of the uniform at loc: a bool, int32 or
// float32 for scalar types and a slice of them for vector and matrix
// types. Samplers read as int32.
func (c *Context) GetUniform(p *Program, loc *UniformLocation) any {
	if c.isLost() || p == nil || loc == nil || c.check(c.validateOwnership(p)) {
		return nil
	}
	if p.deleted || !p.linked || p.id != loc.program || p.generation != loc.generation {
		c.fail(InvalidOperation)
		return nil
	}
	s, ok := uniformShapes[loc.typ]
	if !ok {
		c.fail(InvalidOperation)
		return nil
	}
	r := command.NewReply[command.UniformValue]()
	v, ok := query(c, command.GetUniform{Program: p.id, Location: loc.location, Type: loc.typ, Reply: r}, r)
	if !ok {
		return nil
	}
	switch s.base {
	case baseBool:
		if len(v.Ints) < s.components {
			return nil
		}
		bs := make([]bool, s.components)
		for i := range bs {
			bs[i] = v.Ints[i] != 0
		}
		if s.components == 1 {
			return bs[0]
		}
		return bs
	case baseInt, baseSampler:
		if len(v.Ints) < s.components {
			return nil
		}
		if s.components == 1 {
			return v.Ints[0]
		}
		return v.Ints[:s.components]
	default:
		if len(v.Floats) < s.components {
			return nil
		}
		if s.components == 1 {
			return v.Floats[0]
		}
		return v.Floats[:s.components]
	}
}
