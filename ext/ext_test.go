// SPDX-License-Identifier: Unlicense OR MIT

package ext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

func gles(names ...string) *Manager {
	return New(command.APIGLES, func() ([]string, error) { return names, nil })
}

func TestLazyQuery(t *testing.T) {
	calls := 0
	m := New(command.APIGLES, func() ([]string, error) {
		calls++
		return []string{"GL_OES_texture_float"}, nil
	})
	assert.Equal(t, 0, calls)
	m.Supported()
	m.IsSupported("OES_texture_float")
	m.Supported()
	assert.Equal(t, 1, calls)
}

func TestQueryFailure(t *testing.T) {
	m := New(command.APIGLES, func() ([]string, error) { return nil, errors.New("lost") })
	assert.Empty(t, m.Supported())
}

func TestDesktopImplied(t *testing.T) {
	m := New(command.APIGL, nil)
	assert.True(t, m.IsSupported("OES_vertex_array_object"))
	assert.False(t, m.IsSupported("WEBGL_compressed_texture_s3tc"))
}

func TestEnableCaseInsensitive(t *testing.T) {
	m := gles("GL_EXT_blend_minmax")
	name, ok := m.Enable("ext_BLEND_minmax")
	require.True(t, ok)
	assert.Equal(t, "EXT_blend_minmax", name)
	assert.True(t, m.IsEnabled("EXT_blend_minmax"))

	_, ok = m.Enable("OES_texture_float")
	assert.False(t, ok)
	_, ok = m.Enable("WEBGL_no_such_thing")
	assert.False(t, ok)
}

func TestGating(t *testing.T) {
	m := gles("GL_EXT_blend_minmax", "GL_OES_standard_derivatives")
	assert.True(t, m.IsEnumEnabled(BlendEquation, gl.FUNC_ADD))
	assert.False(t, m.IsEnumEnabled(BlendEquation, gl.MIN_EXT))
	assert.False(t, m.IsEnumEnabled(HintTarget, gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES))
	m.Enable("EXT_blend_minmax")
	m.Enable("OES_standard_derivatives")
	assert.True(t, m.IsEnumEnabled(BlendEquation, gl.MAX_EXT))
	assert.True(t, m.IsEnumEnabled(HintTarget, gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES))
	assert.True(t, m.IsEnumEnabled(GetParameter, gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES))
	// FLOAT is only gated as a texture type.
	assert.True(t, m.IsEnumEnabled(VertexAttrib, gl.FLOAT))
	assert.False(t, m.IsEnumEnabled(TexType, gl.FLOAT))
	assert.True(t, Gated(TexType, gl.FLOAT))
	assert.False(t, Gated(TexType, gl.UNSIGNED_BYTE))
}

func TestFilterable(t *testing.T) {
	m := gles("GL_OES_texture_float", "GL_OES_texture_float_linear")
	assert.True(t, m.IsFilterable(gl.UNSIGNED_BYTE))
	assert.True(t, m.IsFilterable(gl.UNSIGNED_SHORT_5_6_5))
	assert.False(t, m.IsFilterable(gl.FLOAT))
	m.Enable("OES_texture_float")
	assert.False(t, m.IsFilterable(gl.FLOAT))
	m.Enable("OES_texture_float_linear")
	assert.True(t, m.IsFilterable(gl.FLOAT))
}

func TestCompressedFormats(t *testing.T) {
	m := gles("GL_EXT_texture_compression_s3tc", "GL_OES_compressed_ETC1_RGB8_texture")
	assert.Empty(t, m.CompressedFormats())
	m.Enable("WEBGL_compressed_texture_etc1")
	assert.Equal(t, []gl.Enum{gl.COMPRESSED_RGB_ETC1_WEBGL}, m.CompressedFormats())
	assert.True(t, m.IsEnumEnabled(CompressedFormat, gl.COMPRESSED_RGB_ETC1_WEBGL))
	assert.False(t, m.IsEnumEnabled(CompressedFormat, gl.COMPRESSED_RGBA_S3TC_DXT5_EXT))
}

func TestEffectiveFormats(t *testing.T) {
	desktop := New(command.APIGL, nil)
	assert.Equal(t, gl.Enum(gl.RGBA32F), desktop.EffectiveInternalFormat(gl.RGBA, gl.FLOAT))
	assert.Equal(t, gl.Enum(gl.LUMINANCE16F_ARB), desktop.EffectiveInternalFormat(gl.LUMINANCE, gl.HALF_FLOAT_OES))
	assert.Equal(t, gl.Enum(gl.RGBA), desktop.EffectiveInternalFormat(gl.RGBA, gl.UNSIGNED_BYTE))
	assert.Equal(t, gl.Enum(gl.HALF_FLOAT), desktop.EffectiveType(gl.HALF_FLOAT_OES))

	es := gles()
	assert.Equal(t, gl.Enum(gl.RGBA), es.EffectiveInternalFormat(gl.RGBA, gl.FLOAT))
	assert.Equal(t, gl.Enum(gl.HALF_FLOAT_OES), es.EffectiveType(gl.HALF_FLOAT_OES))
}

func TestSupportedSorted(t *testing.T) {
	m := New(command.APIGL, func() ([]string, error) {
		return []string{"GL_EXT_texture_compression_s3tc"}, nil
	})
	names := m.Supported()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("%q sorts after %q", names[i-1], names[i])
		}
	}
	assert.Contains(t, names, "WEBGL_compressed_texture_s3tc")
}
