// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

const (
	testVertexShader = `
attribute vec2 pos;
uniform mat4 mvp;
uniform vec4 tint;
void main() {
	gl_Position = mvp * vec4(pos, 0.0, 1.0) * tint;
}
`
	testFragmentShader = `
precision mediump float;
uniform vec4 colors[2];
void main() {
	gl_FragColor = colors[0];
}
`
)

func compileShader(t *testing.T, c *Context, typ gl.Enum, src string) *Shader {
	t.Helper()
	s := c.CreateShader(typ)
	require.NotNil(t, s)
	c.ShaderSource(s, src)
	c.CompileShader(s)
	log, _ := c.GetShaderInfoLog(s)
	require.Equal(t, true, c.GetShaderParameter(s, gl.COMPILE_STATUS), log)
	return s
}

// newTestProgram links a program from the test shaders and makes it
// current.
func newTestProgram(t *testing.T, c *Context) (*Program, *Shader, *Shader) {
	t.Helper()
	vs := compileShader(t, c, gl.VERTEX_SHADER, testVertexShader)
	fs := compileShader(t, c, gl.FRAGMENT_SHADER, testFragmentShader)
	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	log, _ := c.GetProgramInfoLog(p)
	require.Equal(t, true, c.GetProgramParameter(p, gl.LINK_STATUS), log)
	c.UseProgram(p)
	return p, vs, fs
}

func identity4() []float32 {
	return []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TestLinkWithoutShaders(t *testing.T) {
	c, r := newTestContext(t)
	p := c.CreateProgram()
	vs := compileShader(t, c, gl.VERTEX_SHADER, testVertexShader)
	c.AttachShader(p, vs)
	r.sent(c)

	c.LinkProgram(p)
	assert.Empty(t, r.sent(c))
	assert.Equal(t, false, c.GetProgramParameter(p, gl.LINK_STATUS))
	log, ok := c.GetProgramInfoLog(p)
	assert.True(t, ok)
	assert.NotEmpty(t, log)
	c.UseProgram(p)
	checkError(t, c, gl.INVALID_OPERATION)
}

func TestCompileFailure(t *testing.T) {
	c, _ := newTestContext(t)
	s := c.CreateShader(gl.FRAGMENT_SHADER)
	c.ShaderSource(s, "precision mediump float;\n")
	c.CompileShader(s)
	assert.Equal(t, false, c.GetShaderParameter(s, gl.COMPILE_STATUS))
	log, ok := c.GetShaderInfoLog(s)
	require.True(t, ok)
	assert.Contains(t, log, "main")
	src, _ := c.GetShaderSource(s)
	assert.Equal(t, "precision mediump float;\n", src)
	checkError(t, c, gl.NO_ERROR)
}

func TestActiveUniforms(t *testing.T) {
	c, _ := newTestContext(t)
	p, _, _ := newTestProgram(t, c)
	assert.Equal(t, int32(3), c.GetProgramParameter(p, gl.ACTIVE_UNIFORMS))
	assert.Equal(t, int32(1), c.GetProgramParameter(p, gl.ACTIVE_ATTRIBUTES))
	var names []string
	for i := uint32(0); i < 3; i++ {
		info, ok := c.GetActiveUniform(p, i)
		require.True(t, ok)
		names = append(names, info.Name)
	}
	assert.ElementsMatch(t, []string{"mvp", "tint", "colors[0]"}, names)
	_, ok := c.GetActiveUniform(p, 3)
	assert.False(t, ok)
	checkError(t, c, gl.INVALID_VALUE)
	assert.Equal(t, int32(0), c.GetAttribLocation(p, "pos"))
	assert.Equal(t, int32(-1), c.GetAttribLocation(p, "webgl_pos"))
}

func TestUniformLocations(t *testing.T) {
	c, _ := newTestContext(t)
	p, _, _ := newTestProgram(t, c)
	for name, found := range map[string]bool{
		"mvp":        true,
		"tint":       true,
		"colors":     true,
		"colors[0]":  true,
		"colors[1]":  true,
		"colors[2]":  false,
		"tint[0]":    false,
		"missing":    false,
		"webgl_tint": false,
	} {
		loc := c.GetUniformLocation(p, name)
		assert.Equal(t, found, loc != nil, name)
	}
	checkError(t, c, gl.NO_ERROR)
	assert.Nil(t, c.GetUniformLocation(p, strings.Repeat("x", 300)))
	checkError(t, c, gl.INVALID_VALUE)
}

func TestMatrixTranspose(t *testing.T) {
	c, r := newTestContext(t)
	p, _, _ := newTestProgram(t, c)
	mvp := c.GetUniformLocation(p, "mvp")
	require.NotNil(t, mvp)
	r.sent(c)

	c.UniformMatrix4fv(mvp, true, identity4())
	assert.Empty(t, r.sent(c))
	checkError(t, c, gl.INVALID_VALUE)
	// The transpose check comes before the data is looked at.
	c.UniformMatrix4fv(mvp, true, []float32{1})
	assert.Empty(t, r.sent(c))
	checkError(t, c, gl.INVALID_VALUE)

	c.UniformMatrix4fv(mvp, false, identity4())
	assert.Equal(t, []command.Tag{command.TagUniformMatrix}, r.sent(c))
	assert.Equal(t, identity4(), c.GetUniform(p, mvp))
	c.UniformMatrix3fv(mvp, false, make([]float32, 9))
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.backend.Violations())
}

func TestStaleUniformLocation(t *testing.T) {
	c, r := newTestContext(t)
	p, _, _ := newTestProgram(t, c)
	tint := c.GetUniformLocation(p, "tint")
	require.NotNil(t, tint)
	c.Uniform4f(tint, 1, 0, 0, 1)
	c.LinkProgram(p)
	require.Equal(t, true, c.GetProgramParameter(p, gl.LINK_STATUS))
	r.sent(c)

	c.Uniform4f(tint, 0, 1, 0, 1)
	assert.Empty(t, r.sent(c))
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Nil(t, c.GetUniform(p, tint))
	checkError(t, c, gl.INVALID_OPERATION)

	fresh := c.GetUniformLocation(p, "tint")
	require.NotNil(t, fresh)
	c.Uniform4f(fresh, 0, 1, 0, 1)
	assert.Equal(t, []float32{0, 1, 0, 1}, c.GetUniform(p, fresh))
	checkError(t, c, gl.NO_ERROR)
	assert.Empty(t, r.backend.Violations())
}

func TestUniformTypeChecks(t *testing.T) {
	c, r := newTestContext(t)
	p, _, _ := newTestProgram(t, c)
	tint := c.GetUniformLocation(p, "tint")
	colors := c.GetUniformLocation(p, "colors")
	second := c.GetUniformLocation(p, "colors[1]")
	mvp := c.GetUniformLocation(p, "mvp")
	require.NotNil(t, tint)
	require.NotNil(t, colors)
	require.NotNil(t, second)
	r.sent(c)

	tests := []struct {
		name string
		call func()
		want gl.Enum
	}{
		{"int to vec4", func() { c.Uniform1i(tint, 1) }, gl.INVALID_OPERATION},
		{"vec3 to vec4", func() { c.Uniform3f(tint, 1, 1, 1) }, gl.INVALID_OPERATION},
		{"array to non-array", func() { c.Uniform4fv(tint, make([]float32, 8)) }, gl.INVALID_OPERATION},
		{"partial element", func() { c.Uniform4fv(tint, make([]float32, 3)) }, gl.INVALID_VALUE},
		{"empty array", func() { c.Uniform4fv(colors, nil) }, gl.INVALID_VALUE},
		{"matrix as vector", func() { c.Uniform4fv(mvp, make([]float32, 16)) }, gl.INVALID_OPERATION},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			checkError(t, c, tt.want)
			assert.Empty(t, r.sent(c))
		})
	}

	c.Uniform4fv(colors, []float32{1, 0, 0, 1, 0, 1, 0, 1})
	assert.Equal(t, []float32{0, 1, 0, 1}, c.GetUniform(p, second))
	// Values past the end of the array are ignored.
	c.Uniform4fv(second, []float32{0, 0, 1, 1, 9, 9, 9, 9})
	assert.Equal(t, []float32{0, 0, 1, 1}, c.GetUniform(p, second))
	assert.Equal(t, []float32{1, 0, 0, 1}, c.GetUniform(p, colors))
	// A nil location is ignored.
	c.Uniform4f(nil, 1, 1, 1, 1)
	checkError(t, c, gl.NO_ERROR)

	c.UseProgram(nil)
	r.sent(c)
	c.Uniform4f(tint, 1, 1, 1, 1)
	checkError(t, c, gl.INVALID_OPERATION)
	assert.Empty(t, r.sent(c))
	assert.Empty(t, r.backend.Violations())
}

func TestParseUniformName(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		index int
		ok    bool
	}{
		{"tint", "tint", -1, true},
		{"colors[3]", "colors", 3, true},
		{"s.field[0]", "s.field", 0, true},
		{"[1]", "", 0, false},
		{"colors[x]", "", 0, false},
		{"colors[-1]", "", 0, false},
		{"colors[]", "", 0, false},
	}
	for _, tt := range tests {
		name, index, ok := parseUniformName(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.name, name, tt.in)
			assert.Equal(t, tt.index, index, tt.in)
		}
	}
}
