// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/gl"
)

const testVertexShader = `
// Positions and texture coordinates.
attribute vec2 pos;
attribute highp vec2 uv;
uniform mat4 mvp; /* uniform float hidden; */
void main() {
	gl_Position = mvp * vec4(pos, 0, 1);
}
`

const testFragmentShader = `
precision mediump float;
uniform vec4 colors[3];
uniform sampler2D tex;
void main(void) {
	gl_FragColor = colors[0];
}
`

func TestScanShader(t *testing.T) {
	vs, err := scanShader(gl.VERTEX_SHADER, testVertexShader)
	require.NoError(t, err)
	assert.Equal(t, []variable{
		{name: "pos", typ: gl.FLOAT_VEC2, size: 1},
		{name: "uv", typ: gl.FLOAT_VEC2, size: 1},
	}, vs.attribs)
	assert.Equal(t, []variable{{name: "mvp", typ: gl.FLOAT_MAT4, size: 1}}, vs.uniforms)

	fs, err := scanShader(gl.FRAGMENT_SHADER, testFragmentShader)
	require.NoError(t, err)
	assert.Empty(t, fs.attribs)
	assert.Equal(t, []variable{
		{name: "colors", typ: gl.FLOAT_VEC4, size: 3},
		{name: "tex", typ: gl.SAMPLER_2D, size: 1},
	}, fs.uniforms)
}

func TestScanShaderErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  gl.Enum
		src  string
		log  string
	}{
		{"no main", gl.VERTEX_SHADER, "attribute vec4 p;", "'main'"},
		{"commented main", gl.VERTEX_SHADER, "// void main() {}", "'main'"},
		{"version", gl.VERTEX_SHADER, "#version 300 es\nvoid main() {}", "version 300"},
		{"fragment attribute", gl.FRAGMENT_SHADER, "attribute vec4 p;\nvoid main() {}", "attribute in fragment shader"},
		{"int attribute", gl.VERTEX_SHADER, "attribute ivec2 p;\nvoid main() {}", "invalid attribute type"},
		{"unknown type", gl.VERTEX_SHADER, "uniform sampler3D s;\nvoid main() {}", "unknown type"},
		{"reserved", gl.VERTEX_SHADER, "uniform vec4 webgl_x;\nvoid main() {}", "reserved name"},
		{"redefinition", gl.VERTEX_SHADER, "uniform vec4 a;\nuniform vec3 a;\nvoid main() {}", "redefinition"},
		{"zero array", gl.VERTEX_SHADER, "uniform vec4 a[0];\nvoid main() {}", "invalid array size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scanShader(tt.typ, tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.log)
		})
	}
}

func TestUniformComponents(t *testing.T) {
	assert.Equal(t, 1, uniformComponents(gl.SAMPLER_CUBE))
	assert.Equal(t, 3, uniformComponents(gl.BOOL_VEC3))
	assert.Equal(t, 4, uniformComponents(gl.FLOAT_MAT2))
	assert.Equal(t, 16, uniformComponents(gl.FLOAT_MAT4))
	assert.Equal(t, int32(3), attribSlots(gl.FLOAT_MAT3))
	assert.True(t, isFloatType(gl.FLOAT_MAT3))
	assert.False(t, isFloatType(gl.BOOL))
}
