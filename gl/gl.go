// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the WebGL 1 enum space, including the enums of the
// extensions a context can enable.
package gl

import "fmt"

type Enum uint32

func (e Enum) String() string {
	return fmt.Sprintf("%#x", uint32(e))
}

const (
	ACTIVE_ATTRIBUTES                            = 0x8b89
	ACTIVE_TEXTURE                               = 0x84e0
	ACTIVE_UNIFORMS                              = 0x8b86
	ALIASED_LINE_WIDTH_RANGE                     = 0x846e
	ALIASED_POINT_SIZE_RANGE                     = 0x846d
	ALPHA                                        = 0x1906
	ALPHA_BITS                                   = 0xd55
	ALWAYS                                       = 0x207
	ARRAY_BUFFER                                 = 0x8892
	ARRAY_BUFFER_BINDING                         = 0x8894
	ATTACHED_SHADERS                             = 0x8b85
	BACK                                         = 0x0405
	BLEND                                        = 0xbe2
	BLEND_COLOR                                  = 0x8005
	BLEND_DST_ALPHA                              = 0x80ca
	BLEND_DST_RGB                                = 0x80c8
	BLEND_EQUATION_ALPHA                         = 0x883d
	BLEND_EQUATION_RGB                           = 0x8009
	BLEND_SRC_ALPHA                              = 0x80cb
	BLEND_SRC_RGB                                = 0x80c9
	BLUE_BITS                                    = 0xd54
	BOOL                                         = 0x8b56
	BOOL_VEC2                                    = 0x8b57
	BOOL_VEC3                                    = 0x8b58
	BOOL_VEC4                                    = 0x8b59
	BROWSER_DEFAULT_WEBGL                        = 0x9244
	BUFFER_SIZE                                  = 0x8764
	BUFFER_USAGE                                 = 0x8765
	BYTE                                         = 0x1400
	CCW                                          = 0x901
	CLAMP_TO_EDGE                                = 0x812f
	COLOR_ATTACHMENT0                            = 0x8ce0
	COLOR_BUFFER_BIT                             = 0x4000
	COLOR_CLEAR_VALUE                            = 0xc22
	COLOR_WRITEMASK                              = 0xc23
	COMPILE_STATUS                               = 0x8b81
	COMPRESSED_TEXTURE_FORMATS                   = 0x86a3
	CONSTANT_ALPHA                               = 0x8003
	CONSTANT_COLOR                               = 0x8001
	CONTEXT_LOST_WEBGL                           = 0x9242
	CULL_FACE                                    = 0xb44
	CULL_FACE_MODE                               = 0xb45
	CURRENT_PROGRAM                              = 0x8b8d
	CURRENT_VERTEX_ATTRIB                        = 0x8626
	CW                                           = 0x900
	DECR                                         = 0x1e03
	DECR_WRAP                                    = 0x8508
	DELETE_STATUS                                = 0x8b80
	DEPTH_ATTACHMENT                             = 0x8d00
	DEPTH_BITS                                   = 0xd56
	DEPTH_BUFFER_BIT                             = 0x100
	DEPTH_CLEAR_VALUE                            = 0xb73
	DEPTH_COMPONENT                              = 0x1902
	DEPTH_COMPONENT16                            = 0x81a5
	DEPTH_FUNC                                   = 0xb74
	DEPTH_RANGE                                  = 0xb70
	DEPTH_STENCIL                                = 0x84f9
	DEPTH_STENCIL_ATTACHMENT                     = 0x821a
	DEPTH_TEST                                   = 0xb71
	DEPTH_WRITEMASK                              = 0xb72
	DITHER                                       = 0xbd0
	DONT_CARE                                    = 0x1100
	DST_ALPHA                                    = 0x304
	DST_COLOR                                    = 0x306
	DYNAMIC_DRAW                                 = 0x88e8
	ELEMENT_ARRAY_BUFFER                         = 0x8893
	ELEMENT_ARRAY_BUFFER_BINDING                 = 0x8895
	EQUAL                                        = 0x202
	FALSE                                        = 0
	FASTEST                                      = 0x1101
	FLOAT                                        = 0x1406
	FLOAT_MAT2                                   = 0x8b5a
	FLOAT_MAT3                                   = 0x8b5b
	FLOAT_MAT4                                   = 0x8b5c
	FLOAT_VEC2                                   = 0x8b50
	FLOAT_VEC3                                   = 0x8b51
	FLOAT_VEC4                                   = 0x8b52
	FRAGMENT_SHADER                              = 0x8b30
	FRAMEBUFFER                                  = 0x8d40
	FRAMEBUFFER_ATTACHMENT_OBJECT_NAME           = 0x8cd1
	FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE           = 0x8cd0
	FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE = 0x8cd3
	FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL         = 0x8cd2
	FRAMEBUFFER_BINDING                          = 0x8ca6
	FRAMEBUFFER_COMPLETE                         = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT            = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS            = 0x8cd9
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT    = 0x8cd7
	FRAMEBUFFER_UNSUPPORTED                      = 0x8cdd
	FRONT                                        = 0x0404
	FRONT_AND_BACK                               = 0x0408
	FRONT_FACE                                   = 0xb46
	FUNC_ADD                                     = 0x8006
	FUNC_REVERSE_SUBTRACT                        = 0x800b
	FUNC_SUBTRACT                                = 0x800a
	GENERATE_MIPMAP_HINT                         = 0x8192
	GEQUAL                                       = 0x206
	GREATER                                      = 0x204
	GREEN_BITS                                   = 0xd53
	HALF_FLOAT                                   = 0x140b
	HIGH_FLOAT                                   = 0x8df2
	HIGH_INT                                     = 0x8df5
	IMPLEMENTATION_COLOR_READ_FORMAT             = 0x8b9b
	IMPLEMENTATION_COLOR_READ_TYPE               = 0x8b9a
	INCR                                         = 0x1e02
	INCR_WRAP                                    = 0x8507
	INT                                          = 0x1404
	INT_VEC2                                     = 0x8b53
	INT_VEC3                                     = 0x8b54
	INT_VEC4                                     = 0x8b55
	INVALID_ENUM                                 = 0x0500
	INVALID_FRAMEBUFFER_OPERATION                = 0x0506
	INVALID_OPERATION                            = 0x0502
	INVALID_VALUE                                = 0x0501
	INVERT                                       = 0x150a
	KEEP                                         = 0x1e00
	LEQUAL                                       = 0x203
	LESS                                         = 0x201
	LINEAR                                       = 0x2601
	LINEAR_MIPMAP_LINEAR                         = 0x2703
	LINEAR_MIPMAP_NEAREST                        = 0x2701
	LINES                                        = 0x1
	LINE_LOOP                                    = 0x2
	LINE_STRIP                                   = 0x3
	LINE_WIDTH                                   = 0xb21
	LINK_STATUS                                  = 0x8b82
	LOW_FLOAT                                    = 0x8df0
	LOW_INT                                      = 0x8df3
	LUMINANCE                                    = 0x1909
	LUMINANCE_ALPHA                              = 0x190a
	MAX_COMBINED_TEXTURE_IMAGE_UNITS             = 0x8b4d
	MAX_CUBE_MAP_TEXTURE_SIZE                    = 0x851c
	MAX_FRAGMENT_UNIFORM_VECTORS                 = 0x8dfd
	MAX_RENDERBUFFER_SIZE                        = 0x84e8
	MAX_TEXTURE_IMAGE_UNITS                      = 0x8872
	MAX_TEXTURE_SIZE                             = 0xd33
	MAX_VARYING_VECTORS                          = 0x8dfc
	MAX_VERTEX_ATTRIBS                           = 0x8869
	MAX_VERTEX_TEXTURE_IMAGE_UNITS               = 0x8b4c
	MAX_VERTEX_UNIFORM_VECTORS                   = 0x8dfb
	MAX_VIEWPORT_DIMS                            = 0xd3a
	MEDIUM_FLOAT                                 = 0x8df1
	MEDIUM_INT                                   = 0x8df4
	MIRRORED_REPEAT                              = 0x8370
	NEAREST                                      = 0x2600
	NEAREST_MIPMAP_LINEAR                        = 0x2702
	NEAREST_MIPMAP_NEAREST                       = 0x2700
	NEVER                                        = 0x200
	NICEST                                       = 0x1102
	NONE                                         = 0
	NOTEQUAL                                     = 0x205
	NO_ERROR                                     = 0x0
	ONE                                          = 0x1
	ONE_MINUS_CONSTANT_ALPHA                     = 0x8004
	ONE_MINUS_CONSTANT_COLOR                     = 0x8002
	ONE_MINUS_DST_ALPHA                          = 0x305
	ONE_MINUS_DST_COLOR                          = 0x307
	ONE_MINUS_SRC_ALPHA                          = 0x303
	ONE_MINUS_SRC_COLOR                          = 0x301
	OUT_OF_MEMORY                                = 0x0505
	PACK_ALIGNMENT                               = 0xd05
	POINTS                                       = 0x0
	POLYGON_OFFSET_FACTOR                        = 0x8038
	POLYGON_OFFSET_FILL                          = 0x8037
	POLYGON_OFFSET_UNITS                         = 0x2a00
	RED_BITS                                     = 0xd52
	RENDERBUFFER                                 = 0x8d41
	RENDERBUFFER_ALPHA_SIZE                      = 0x8d53
	RENDERBUFFER_BINDING                         = 0x8ca7
	RENDERBUFFER_BLUE_SIZE                       = 0x8d52
	RENDERBUFFER_DEPTH_SIZE                      = 0x8d54
	RENDERBUFFER_GREEN_SIZE                      = 0x8d51
	RENDERBUFFER_HEIGHT                          = 0x8d43
	RENDERBUFFER_INTERNAL_FORMAT                 = 0x8d44
	RENDERBUFFER_RED_SIZE                        = 0x8d50
	RENDERBUFFER_STENCIL_SIZE                    = 0x8d55
	RENDERBUFFER_WIDTH                           = 0x8d42
	RENDERER                                     = 0x1f01
	REPEAT                                       = 0x2901
	REPLACE                                      = 0x1e01
	RGB                                          = 0x1907
	RGB565                                       = 0x8d62
	RGB5_A1                                      = 0x8057
	RGBA                                         = 0x1908
	RGBA4                                        = 0x8056
	SAMPLER_2D                                   = 0x8b5e
	SAMPLER_CUBE                                 = 0x8b60
	SAMPLES                                      = 0x80a9
	SAMPLE_ALPHA_TO_COVERAGE                     = 0x809e
	SAMPLE_BUFFERS                               = 0x80a8
	SAMPLE_COVERAGE                              = 0x80a0
	SAMPLE_COVERAGE_INVERT                       = 0x80ab
	SAMPLE_COVERAGE_VALUE                        = 0x80aa
	SCISSOR_BOX                                  = 0xc10
	SCISSOR_TEST                                 = 0xc11
	SHADER_TYPE                                  = 0x8b4f
	SHADING_LANGUAGE_VERSION                     = 0x8b8c
	SHORT                                        = 0x1402
	SRC_ALPHA                                    = 0x302
	SRC_ALPHA_SATURATE                           = 0x308
	SRC_COLOR                                    = 0x300
	STATIC_DRAW                                  = 0x88e4
	STENCIL_ATTACHMENT                           = 0x8d20
	STENCIL_BACK_FAIL                            = 0x8801
	STENCIL_BACK_FUNC                            = 0x8800
	STENCIL_BACK_PASS_DEPTH_FAIL                 = 0x8802
	STENCIL_BACK_PASS_DEPTH_PASS                 = 0x8803
	STENCIL_BACK_REF                             = 0x8ca3
	STENCIL_BACK_VALUE_MASK                      = 0x8ca4
	STENCIL_BACK_WRITEMASK                       = 0x8ca5
	STENCIL_BITS                                 = 0xd57
	STENCIL_BUFFER_BIT                           = 0x00000400
	STENCIL_CLEAR_VALUE                          = 0xb91
	STENCIL_FAIL                                 = 0xb94
	STENCIL_FUNC                                 = 0xb92
	STENCIL_INDEX8                               = 0x8d48
	STENCIL_PASS_DEPTH_FAIL                      = 0xb95
	STENCIL_PASS_DEPTH_PASS                      = 0xb96
	STENCIL_REF                                  = 0xb97
	STENCIL_TEST                                 = 0xb90
	STENCIL_VALUE_MASK                           = 0xb93
	STENCIL_WRITEMASK                            = 0xb98
	STREAM_DRAW                                  = 0x88e0
	SUBPIXEL_BITS                                = 0xd50
	TEXTURE                                      = 0x1702
	TEXTURE0                                     = 0x84c0
	TEXTURE1                                     = 0x84c1
	TEXTURE2                                     = 0x84c2
	TEXTURE3                                     = 0x84c3
	TEXTURE4                                     = 0x84c4
	TEXTURE5                                     = 0x84c5
	TEXTURE6                                     = 0x84c6
	TEXTURE7                                     = 0x84c7
	TEXTURE8                                     = 0x84c8
	TEXTURE9                                     = 0x84c9
	TEXTURE10                                    = 0x84ca
	TEXTURE11                                    = 0x84cb
	TEXTURE12                                    = 0x84cc
	TEXTURE13                                    = 0x84cd
	TEXTURE14                                    = 0x84ce
	TEXTURE15                                    = 0x84cf
	TEXTURE16                                    = 0x84d0
	TEXTURE17                                    = 0x84d1
	TEXTURE18                                    = 0x84d2
	TEXTURE19                                    = 0x84d3
	TEXTURE20                                    = 0x84d4
	TEXTURE21                                    = 0x84d5
	TEXTURE22                                    = 0x84d6
	TEXTURE23                                    = 0x84d7
	TEXTURE24                                    = 0x84d8
	TEXTURE25                                    = 0x84d9
	TEXTURE26                                    = 0x84da
	TEXTURE27                                    = 0x84db
	TEXTURE28                                    = 0x84dc
	TEXTURE29                                    = 0x84dd
	TEXTURE30                                    = 0x84de
	TEXTURE31                                    = 0x84df
	TEXTURE_2D                                   = 0xde1
	TEXTURE_BINDING_2D                           = 0x8069
	TEXTURE_BINDING_CUBE_MAP                     = 0x8514
	TEXTURE_CUBE_MAP                             = 0x8513
	TEXTURE_CUBE_MAP_NEGATIVE_X                  = 0x8516
	TEXTURE_CUBE_MAP_NEGATIVE_Y                  = 0x8518
	TEXTURE_CUBE_MAP_NEGATIVE_Z                  = 0x851a
	TEXTURE_CUBE_MAP_POSITIVE_X                  = 0x8515
	TEXTURE_CUBE_MAP_POSITIVE_Y                  = 0x8517
	TEXTURE_CUBE_MAP_POSITIVE_Z                  = 0x8519
	TEXTURE_MAG_FILTER                           = 0x2800
	TEXTURE_MIN_FILTER                           = 0x2801
	TEXTURE_WRAP_S                               = 0x2802
	TEXTURE_WRAP_T                               = 0x2803
	TRIANGLES                                    = 0x4
	TRIANGLE_FAN                                 = 0x6
	TRIANGLE_STRIP                               = 0x5
	TRUE                                         = 1
	UNPACK_ALIGNMENT                             = 0xcf5
	UNPACK_COLORSPACE_CONVERSION_WEBGL           = 0x9243
	UNPACK_FLIP_Y_WEBGL                          = 0x9240
	UNPACK_PREMULTIPLY_ALPHA_WEBGL               = 0x9241
	UNSIGNED_BYTE                                = 0x1401
	UNSIGNED_INT                                 = 0x1405
	UNSIGNED_SHORT                               = 0x1403
	UNSIGNED_SHORT_4_4_4_4                       = 0x8033
	UNSIGNED_SHORT_5_5_5_1                       = 0x8034
	UNSIGNED_SHORT_5_6_5                         = 0x8363
	VALIDATE_STATUS                              = 0x8b83
	VENDOR                                       = 0x1f00
	VERSION                                      = 0x1f02
	VERTEX_ATTRIB_ARRAY_BUFFER_BINDING           = 0x889f
	VERTEX_ATTRIB_ARRAY_ENABLED                  = 0x8622
	VERTEX_ATTRIB_ARRAY_NORMALIZED               = 0x886a
	VERTEX_ATTRIB_ARRAY_POINTER                  = 0x8645
	VERTEX_ATTRIB_ARRAY_SIZE                     = 0x8623
	VERTEX_ATTRIB_ARRAY_STRIDE                   = 0x8624
	VERTEX_ATTRIB_ARRAY_TYPE                     = 0x8625
	VERTEX_SHADER                                = 0x8b31
	VIEWPORT                                     = 0xba2
	ZERO                                         = 0x0

	// ANGLE_instanced_arrays
	VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE = 0x88fe

	// EXT_blend_minmax
	MIN_EXT = 0x8007
	MAX_EXT = 0x8008

	// EXT_texture_filter_anisotropic
	TEXTURE_MAX_ANISOTROPY_EXT     = 0x84fe
	MAX_TEXTURE_MAX_ANISOTROPY_EXT = 0x84ff

	// OES_standard_derivatives
	FRAGMENT_SHADER_DERIVATIVE_HINT_OES = 0x8b8b

	// OES_texture_half_float
	HALF_FLOAT_OES = 0x8d61

	// OES_vertex_array_object
	VERTEX_ARRAY_BINDING_OES = 0x85b5

	// WEBGL_compressed_texture_s3tc
	COMPRESSED_RGB_S3TC_DXT1_EXT  = 0x83f0
	COMPRESSED_RGBA_S3TC_DXT1_EXT = 0x83f1
	COMPRESSED_RGBA_S3TC_DXT3_EXT = 0x83f2
	COMPRESSED_RGBA_S3TC_DXT5_EXT = 0x83f3

	// WEBGL_compressed_texture_etc1
	COMPRESSED_RGB_ETC1_WEBGL = 0x8d64

	// Sized float formats of desktop GL backends.
	RGBA32F                = 0x8814
	RGB32F                 = 0x8815
	ALPHA32F_ARB           = 0x8816
	LUMINANCE32F_ARB       = 0x8818
	LUMINANCE_ALPHA32F_ARB = 0x8819
	RGBA16F                = 0x881a
	RGB16F                 = 0x881b
	ALPHA16F_ARB           = 0x881c
	LUMINANCE16F_ARB       = 0x881e
	LUMINANCE_ALPHA16F_ARB = 0x881f
)
