// SPDX-License-Identifier: Unlicense OR MIT

package ext

import "gioui.org/webgl/gl"

// Kind is a class of enum arguments an extension can introduce.
type Kind uint8

const (
	// GetParameter names accepted by GetParameter.
	GetParameter Kind = iota
	// TexParameter names accepted by TexParameter and GetTexParameter.
	TexParameter
	// VertexAttrib names accepted by GetVertexAttrib.
	VertexAttrib
	// HintTarget targets accepted by Hint.
	HintTarget
	// TexType pixel data types accepted by texture uploads.
	TexType
	// CompressedFormat internal formats of compressed uploads.
	CompressedFormat
	// BlendEquation modes accepted by BlendEquation.
	BlendEquation
	// IndexType element types accepted by indexed draws.
	IndexType

	kindCount
)

type extension struct {
	name string
	// native lists backend extension names implying support.
	native []string
	// desktop is set when every desktop GL backend supports the extension.
	desktop    bool
	enums      map[Kind][]gl.Enum
	filterable []gl.Enum
}

// extensions is sorted by name.
var extensions = []extension{
	{
		name:    "ANGLE_instanced_arrays",
		native:  []string{"GL_ANGLE_instanced_arrays", "GL_ARB_instanced_arrays", "GL_EXT_instanced_arrays", "GL_NV_instanced_arrays"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			VertexAttrib: {gl.VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE},
		},
	},
	{
		name:    "EXT_blend_minmax",
		native:  []string{"GL_EXT_blend_minmax"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			BlendEquation: {gl.MIN_EXT, gl.MAX_EXT},
		},
	},
	{
		name:    "EXT_shader_texture_lod",
		native:  []string{"GL_EXT_shader_texture_lod", "GL_ARB_shader_texture_lod"},
		desktop: true,
	},
	{
		name:   "EXT_texture_filter_anisotropic",
		native: []string{"GL_EXT_texture_filter_anisotropic", "GL_ARB_texture_filter_anisotropic"},
		enums: map[Kind][]gl.Enum{
			GetParameter: {gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT},
			TexParameter: {gl.TEXTURE_MAX_ANISOTROPY_EXT},
		},
	},
	{
		name:    "OES_element_index_uint",
		native:  []string{"GL_OES_element_index_uint"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			IndexType: {gl.UNSIGNED_INT},
		},
	},
	{
		name:    "OES_standard_derivatives",
		native:  []string{"GL_OES_standard_derivatives"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			GetParameter: {gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES},
			HintTarget:   {gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES},
		},
	},
	{
		name:    "OES_texture_float",
		native:  []string{"GL_OES_texture_float", "GL_ARB_texture_float"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			TexType: {gl.FLOAT},
		},
	},
	{
		name:       "OES_texture_float_linear",
		native:     []string{"GL_OES_texture_float_linear"},
		desktop:    true,
		filterable: []gl.Enum{gl.FLOAT},
	},
	{
		name:    "OES_texture_half_float",
		native:  []string{"GL_OES_texture_half_float", "GL_ARB_half_float_pixel"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			TexType: {gl.HALF_FLOAT_OES},
		},
	},
	{
		name:       "OES_texture_half_float_linear",
		native:     []string{"GL_OES_texture_half_float_linear"},
		desktop:    true,
		filterable: []gl.Enum{gl.HALF_FLOAT_OES},
	},
	{
		name:    "OES_vertex_array_object",
		native:  []string{"GL_OES_vertex_array_object", "GL_ARB_vertex_array_object", "GL_APPLE_vertex_array_object"},
		desktop: true,
		enums: map[Kind][]gl.Enum{
			GetParameter: {gl.VERTEX_ARRAY_BINDING_OES},
		},
	},
	{
		name:   "WEBGL_compressed_texture_etc1",
		native: []string{"GL_OES_compressed_ETC1_RGB8_texture"},
		enums: map[Kind][]gl.Enum{
			CompressedFormat: {gl.COMPRESSED_RGB_ETC1_WEBGL},
		},
	},
	{
		name:   "WEBGL_compressed_texture_s3tc",
		native: []string{"GL_EXT_texture_compression_s3tc"},
		enums: map[Kind][]gl.Enum{
			CompressedFormat: {
				gl.COMPRESSED_RGB_S3TC_DXT1_EXT,
				gl.COMPRESSED_RGBA_S3TC_DXT1_EXT,
				gl.COMPRESSED_RGBA_S3TC_DXT3_EXT,
				gl.COMPRESSED_RGBA_S3TC_DXT5_EXT,
			},
		},
	},
}

// baseFilterable are the data types every implementation filters linearly.
var baseFilterable = []gl.Enum{
	gl.UNSIGNED_BYTE,
	gl.UNSIGNED_SHORT_4_4_4_4,
	gl.UNSIGNED_SHORT_5_5_5_1,
	gl.UNSIGNED_SHORT_5_6_5,
}

// desktopFormats maps (internal format, type) pairs to the sized formats
// desktop GL requires for float uploads.
var desktopFormats = map[[2]gl.Enum]gl.Enum{
	{gl.RGBA, gl.FLOAT}:                    gl.RGBA32F,
	{gl.RGB, gl.FLOAT}:                     gl.RGB32F,
	{gl.ALPHA, gl.FLOAT}:                   gl.ALPHA32F_ARB,
	{gl.LUMINANCE, gl.FLOAT}:               gl.LUMINANCE32F_ARB,
	{gl.LUMINANCE_ALPHA, gl.FLOAT}:         gl.LUMINANCE_ALPHA32F_ARB,
	{gl.RGBA, gl.HALF_FLOAT_OES}:           gl.RGBA16F,
	{gl.RGB, gl.HALF_FLOAT_OES}:            gl.RGB16F,
	{gl.ALPHA, gl.HALF_FLOAT_OES}:          gl.ALPHA16F_ARB,
	{gl.LUMINANCE, gl.HALF_FLOAT_OES}:      gl.LUMINANCE16F_ARB,
	{gl.LUMINANCE_ALPHA, gl.HALF_FLOAT_OES}: gl.LUMINANCE_ALPHA16F_ARB,
}

// gates maps each gated enum of a kind to the extension introducing it.
var gates [kindCount]map[gl.Enum]string

func init() {
	for k := range gates {
		gates[k] = make(map[gl.Enum]string)
	}
	for _, e := range extensions {
		for k, enums := range e.enums {
			for _, v := range enums {
				gates[k][v] = e.name
			}
		}
	}
}
