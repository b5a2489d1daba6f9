// SPDX-License-Identifier: Unlicense OR MIT

package gl

// names maps the constant names of this package to their values.
var names = map[string]Enum{
	"ACTIVE_ATTRIBUTES":                            ACTIVE_ATTRIBUTES,
	"ACTIVE_TEXTURE":                               ACTIVE_TEXTURE,
	"ACTIVE_UNIFORMS":                              ACTIVE_UNIFORMS,
	"ALIASED_LINE_WIDTH_RANGE":                     ALIASED_LINE_WIDTH_RANGE,
	"ALIASED_POINT_SIZE_RANGE":                     ALIASED_POINT_SIZE_RANGE,
	"ALPHA":                                        ALPHA,
	"ALPHA16F_ARB":                                 ALPHA16F_ARB,
	"ALPHA32F_ARB":                                 ALPHA32F_ARB,
	"ALPHA_BITS":                                   ALPHA_BITS,
	"ALWAYS":                                       ALWAYS,
	"ARRAY_BUFFER":                                 ARRAY_BUFFER,
	"ARRAY_BUFFER_BINDING":                         ARRAY_BUFFER_BINDING,
	"ATTACHED_SHADERS":                             ATTACHED_SHADERS,
	"BACK":                                         BACK,
	"BLEND":                                        BLEND,
	"BLEND_COLOR":                                  BLEND_COLOR,
	"BLEND_DST_ALPHA":                              BLEND_DST_ALPHA,
	"BLEND_DST_RGB":                                BLEND_DST_RGB,
	"BLEND_EQUATION_ALPHA":                         BLEND_EQUATION_ALPHA,
	"BLEND_EQUATION_RGB":                           BLEND_EQUATION_RGB,
	"BLEND_SRC_ALPHA":                              BLEND_SRC_ALPHA,
	"BLEND_SRC_RGB":                                BLEND_SRC_RGB,
	"BLUE_BITS":                                    BLUE_BITS,
	"BOOL":                                         BOOL,
	"BOOL_VEC2":                                    BOOL_VEC2,
	"BOOL_VEC3":                                    BOOL_VEC3,
	"BOOL_VEC4":                                    BOOL_VEC4,
	"BROWSER_DEFAULT_WEBGL":                        BROWSER_DEFAULT_WEBGL,
	"BUFFER_SIZE":                                  BUFFER_SIZE,
	"BUFFER_USAGE":                                 BUFFER_USAGE,
	"BYTE":                                         BYTE,
	"CCW":                                          CCW,
	"CLAMP_TO_EDGE":                                CLAMP_TO_EDGE,
	"COLOR_ATTACHMENT0":                            COLOR_ATTACHMENT0,
	"COLOR_BUFFER_BIT":                             COLOR_BUFFER_BIT,
	"COLOR_CLEAR_VALUE":                            COLOR_CLEAR_VALUE,
	"COLOR_WRITEMASK":                              COLOR_WRITEMASK,
	"COMPILE_STATUS":                               COMPILE_STATUS,
	"COMPRESSED_RGBA_S3TC_DXT1_EXT":                COMPRESSED_RGBA_S3TC_DXT1_EXT,
	"COMPRESSED_RGBA_S3TC_DXT3_EXT":                COMPRESSED_RGBA_S3TC_DXT3_EXT,
	"COMPRESSED_RGBA_S3TC_DXT5_EXT":                COMPRESSED_RGBA_S3TC_DXT5_EXT,
	"COMPRESSED_RGB_ETC1_WEBGL":                    COMPRESSED_RGB_ETC1_WEBGL,
	"COMPRESSED_RGB_S3TC_DXT1_EXT":                 COMPRESSED_RGB_S3TC_DXT1_EXT,
	"COMPRESSED_TEXTURE_FORMATS":                   COMPRESSED_TEXTURE_FORMATS,
	"CONSTANT_ALPHA":                               CONSTANT_ALPHA,
	"CONSTANT_COLOR":                               CONSTANT_COLOR,
	"CONTEXT_LOST_WEBGL":                           CONTEXT_LOST_WEBGL,
	"CULL_FACE":                                    CULL_FACE,
	"CULL_FACE_MODE":                               CULL_FACE_MODE,
	"CURRENT_PROGRAM":                              CURRENT_PROGRAM,
	"CURRENT_VERTEX_ATTRIB":                        CURRENT_VERTEX_ATTRIB,
	"CW":                                           CW,
	"DECR":                                         DECR,
	"DECR_WRAP":                                    DECR_WRAP,
	"DELETE_STATUS":                                DELETE_STATUS,
	"DEPTH_ATTACHMENT":                             DEPTH_ATTACHMENT,
	"DEPTH_BITS":                                   DEPTH_BITS,
	"DEPTH_BUFFER_BIT":                             DEPTH_BUFFER_BIT,
	"DEPTH_CLEAR_VALUE":                            DEPTH_CLEAR_VALUE,
	"DEPTH_COMPONENT":                              DEPTH_COMPONENT,
	"DEPTH_COMPONENT16":                            DEPTH_COMPONENT16,
	"DEPTH_FUNC":                                   DEPTH_FUNC,
	"DEPTH_RANGE":                                  DEPTH_RANGE,
	"DEPTH_STENCIL":                                DEPTH_STENCIL,
	"DEPTH_STENCIL_ATTACHMENT":                     DEPTH_STENCIL_ATTACHMENT,
	"DEPTH_TEST":                                   DEPTH_TEST,
	"DEPTH_WRITEMASK":                              DEPTH_WRITEMASK,
	"DITHER":                                       DITHER,
	"DONT_CARE":                                    DONT_CARE,
	"DST_ALPHA":                                    DST_ALPHA,
	"DST_COLOR":                                    DST_COLOR,
	"DYNAMIC_DRAW":                                 DYNAMIC_DRAW,
	"ELEMENT_ARRAY_BUFFER":                         ELEMENT_ARRAY_BUFFER,
	"ELEMENT_ARRAY_BUFFER_BINDING":                 ELEMENT_ARRAY_BUFFER_BINDING,
	"EQUAL":                                        EQUAL,
	"FALSE":                                        FALSE,
	"FASTEST":                                      FASTEST,
	"FLOAT":                                        FLOAT,
	"FLOAT_MAT2":                                   FLOAT_MAT2,
	"FLOAT_MAT3":                                   FLOAT_MAT3,
	"FLOAT_MAT4":                                   FLOAT_MAT4,
	"FLOAT_VEC2":                                   FLOAT_VEC2,
	"FLOAT_VEC3":                                   FLOAT_VEC3,
	"FLOAT_VEC4":                                   FLOAT_VEC4,
	"FRAGMENT_SHADER":                              FRAGMENT_SHADER,
	"FRAGMENT_SHADER_DERIVATIVE_HINT_OES":          FRAGMENT_SHADER_DERIVATIVE_HINT_OES,
	"FRAMEBUFFER":                                  FRAMEBUFFER,
	"FRAMEBUFFER_ATTACHMENT_OBJECT_NAME":           FRAMEBUFFER_ATTACHMENT_OBJECT_NAME,
	"FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE":           FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE,
	"FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE": FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE,
	"FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL":         FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL,
	"FRAMEBUFFER_BINDING":                          FRAMEBUFFER_BINDING,
	"FRAMEBUFFER_COMPLETE":                         FRAMEBUFFER_COMPLETE,
	"FRAMEBUFFER_INCOMPLETE_ATTACHMENT":            FRAMEBUFFER_INCOMPLETE_ATTACHMENT,
	"FRAMEBUFFER_INCOMPLETE_DIMENSIONS":            FRAMEBUFFER_INCOMPLETE_DIMENSIONS,
	"FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT":    FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT,
	"FRAMEBUFFER_UNSUPPORTED":                      FRAMEBUFFER_UNSUPPORTED,
	"FRONT":                                        FRONT,
	"FRONT_AND_BACK":                               FRONT_AND_BACK,
	"FRONT_FACE":                                   FRONT_FACE,
	"FUNC_ADD":                                     FUNC_ADD,
	"FUNC_REVERSE_SUBTRACT":                        FUNC_REVERSE_SUBTRACT,
	"FUNC_SUBTRACT":                                FUNC_SUBTRACT,
	"GENERATE_MIPMAP_HINT":                         GENERATE_MIPMAP_HINT,
	"GEQUAL":                                       GEQUAL,
	"GREATER":                                      GREATER,
	"GREEN_BITS":                                   GREEN_BITS,
	"HALF_FLOAT":                                   HALF_FLOAT,
	"HALF_FLOAT_OES":                               HALF_FLOAT_OES,
	"HIGH_FLOAT":                                   HIGH_FLOAT,
	"HIGH_INT":                                     HIGH_INT,
	"IMPLEMENTATION_COLOR_READ_FORMAT":             IMPLEMENTATION_COLOR_READ_FORMAT,
	"IMPLEMENTATION_COLOR_READ_TYPE":               IMPLEMENTATION_COLOR_READ_TYPE,
	"INCR":                                         INCR,
	"INCR_WRAP":                                    INCR_WRAP,
	"INT":                                          INT,
	"INT_VEC2":                                     INT_VEC2,
	"INT_VEC3":                                     INT_VEC3,
	"INT_VEC4":                                     INT_VEC4,
	"INVALID_ENUM":                                 INVALID_ENUM,
	"INVALID_FRAMEBUFFER_OPERATION":                INVALID_FRAMEBUFFER_OPERATION,
	"INVALID_OPERATION":                            INVALID_OPERATION,
	"INVALID_VALUE":                                INVALID_VALUE,
	"INVERT":                                       INVERT,
	"KEEP":                                         KEEP,
	"LEQUAL":                                       LEQUAL,
	"LESS":                                         LESS,
	"LINEAR":                                       LINEAR,
	"LINEAR_MIPMAP_LINEAR":                         LINEAR_MIPMAP_LINEAR,
	"LINEAR_MIPMAP_NEAREST":                        LINEAR_MIPMAP_NEAREST,
	"LINES":                                        LINES,
	"LINE_LOOP":                                    LINE_LOOP,
	"LINE_STRIP":                                   LINE_STRIP,
	"LINE_WIDTH":                                   LINE_WIDTH,
	"LINK_STATUS":                                  LINK_STATUS,
	"LOW_FLOAT":                                    LOW_FLOAT,
	"LOW_INT":                                      LOW_INT,
	"LUMINANCE":                                    LUMINANCE,
	"LUMINANCE16F_ARB":                             LUMINANCE16F_ARB,
	"LUMINANCE32F_ARB":                             LUMINANCE32F_ARB,
	"LUMINANCE_ALPHA":                              LUMINANCE_ALPHA,
	"LUMINANCE_ALPHA16F_ARB":                       LUMINANCE_ALPHA16F_ARB,
	"LUMINANCE_ALPHA32F_ARB":                       LUMINANCE_ALPHA32F_ARB,
	"MAX_COMBINED_TEXTURE_IMAGE_UNITS":             MAX_COMBINED_TEXTURE_IMAGE_UNITS,
	"MAX_CUBE_MAP_TEXTURE_SIZE":                    MAX_CUBE_MAP_TEXTURE_SIZE,
	"MAX_EXT":                                      MAX_EXT,
	"MAX_FRAGMENT_UNIFORM_VECTORS":                 MAX_FRAGMENT_UNIFORM_VECTORS,
	"MAX_RENDERBUFFER_SIZE":                        MAX_RENDERBUFFER_SIZE,
	"MAX_TEXTURE_IMAGE_UNITS":                      MAX_TEXTURE_IMAGE_UNITS,
	"MAX_TEXTURE_MAX_ANISOTROPY_EXT":               MAX_TEXTURE_MAX_ANISOTROPY_EXT,
	"MAX_TEXTURE_SIZE":                             MAX_TEXTURE_SIZE,
	"MAX_VARYING_VECTORS":                          MAX_VARYING_VECTORS,
	"MAX_VERTEX_ATTRIBS":                           MAX_VERTEX_ATTRIBS,
	"MAX_VERTEX_TEXTURE_IMAGE_UNITS":               MAX_VERTEX_TEXTURE_IMAGE_UNITS,
	"MAX_VERTEX_UNIFORM_VECTORS":                   MAX_VERTEX_UNIFORM_VECTORS,
	"MAX_VIEWPORT_DIMS":                            MAX_VIEWPORT_DIMS,
	"MEDIUM_FLOAT":                                 MEDIUM_FLOAT,
	"MEDIUM_INT":                                   MEDIUM_INT,
	"MIN_EXT":                                      MIN_EXT,
	"MIRRORED_REPEAT":                              MIRRORED_REPEAT,
	"NEAREST":                                      NEAREST,
	"NEAREST_MIPMAP_LINEAR":                        NEAREST_MIPMAP_LINEAR,
	"NEAREST_MIPMAP_NEAREST":                       NEAREST_MIPMAP_NEAREST,
	"NEVER":                                        NEVER,
	"NICEST":                                       NICEST,
	"NONE":                                         NONE,
	"NOTEQUAL":                                     NOTEQUAL,
	"NO_ERROR":                                     NO_ERROR,
	"ONE":                                          ONE,
	"ONE_MINUS_CONSTANT_ALPHA":                     ONE_MINUS_CONSTANT_ALPHA,
	"ONE_MINUS_CONSTANT_COLOR":                     ONE_MINUS_CONSTANT_COLOR,
	"ONE_MINUS_DST_ALPHA":                          ONE_MINUS_DST_ALPHA,
	"ONE_MINUS_DST_COLOR":                          ONE_MINUS_DST_COLOR,
	"ONE_MINUS_SRC_ALPHA":                          ONE_MINUS_SRC_ALPHA,
	"ONE_MINUS_SRC_COLOR":                          ONE_MINUS_SRC_COLOR,
	"OUT_OF_MEMORY":                                OUT_OF_MEMORY,
	"PACK_ALIGNMENT":                               PACK_ALIGNMENT,
	"POINTS":                                       POINTS,
	"POLYGON_OFFSET_FACTOR":                        POLYGON_OFFSET_FACTOR,
	"POLYGON_OFFSET_FILL":                          POLYGON_OFFSET_FILL,
	"POLYGON_OFFSET_UNITS":                         POLYGON_OFFSET_UNITS,
	"RED_BITS":                                     RED_BITS,
	"RENDERBUFFER":                                 RENDERBUFFER,
	"RENDERBUFFER_ALPHA_SIZE":                      RENDERBUFFER_ALPHA_SIZE,
	"RENDERBUFFER_BINDING":                         RENDERBUFFER_BINDING,
	"RENDERBUFFER_BLUE_SIZE":                       RENDERBUFFER_BLUE_SIZE,
	"RENDERBUFFER_DEPTH_SIZE":                      RENDERBUFFER_DEPTH_SIZE,
	"RENDERBUFFER_GREEN_SIZE":                      RENDERBUFFER_GREEN_SIZE,
	"RENDERBUFFER_HEIGHT":                          RENDERBUFFER_HEIGHT,
	"RENDERBUFFER_INTERNAL_FORMAT":                 RENDERBUFFER_INTERNAL_FORMAT,
	"RENDERBUFFER_RED_SIZE":                        RENDERBUFFER_RED_SIZE,
	"RENDERBUFFER_STENCIL_SIZE":                    RENDERBUFFER_STENCIL_SIZE,
	"RENDERBUFFER_WIDTH":                           RENDERBUFFER_WIDTH,
	"RENDERER":                                     RENDERER,
	"REPEAT":                                       REPEAT,
	"REPLACE":                                      REPLACE,
	"RGB":                                          RGB,
	"RGB16F":                                       RGB16F,
	"RGB32F":                                       RGB32F,
	"RGB565":                                       RGB565,
	"RGB5_A1":                                      RGB5_A1,
	"RGBA":                                         RGBA,
	"RGBA16F":                                      RGBA16F,
	"RGBA32F":                                      RGBA32F,
	"RGBA4":                                        RGBA4,
	"SAMPLER_2D":                                   SAMPLER_2D,
	"SAMPLER_CUBE":                                 SAMPLER_CUBE,
	"SAMPLES":                                      SAMPLES,
	"SAMPLE_ALPHA_TO_COVERAGE":                     SAMPLE_ALPHA_TO_COVERAGE,
	"SAMPLE_BUFFERS":                               SAMPLE_BUFFERS,
	"SAMPLE_COVERAGE":                              SAMPLE_COVERAGE,
	"SAMPLE_COVERAGE_INVERT":                       SAMPLE_COVERAGE_INVERT,
	"SAMPLE_COVERAGE_VALUE":                        SAMPLE_COVERAGE_VALUE,
	"SCISSOR_BOX":                                  SCISSOR_BOX,
	"SCISSOR_TEST":                                 SCISSOR_TEST,
	"SHADER_TYPE":                                  SHADER_TYPE,
	"SHADING_LANGUAGE_VERSION":                     SHADING_LANGUAGE_VERSION,
	"SHORT":                                        SHORT,
	"SRC_ALPHA":                                    SRC_ALPHA,
	"SRC_ALPHA_SATURATE":                           SRC_ALPHA_SATURATE,
	"SRC_COLOR":                                    SRC_COLOR,
	"STATIC_DRAW":                                  STATIC_DRAW,
	"STENCIL_ATTACHMENT":                           STENCIL_ATTACHMENT,
	"STENCIL_BACK_FAIL":                            STENCIL_BACK_FAIL,
	"STENCIL_BACK_FUNC":                            STENCIL_BACK_FUNC,
	"STENCIL_BACK_PASS_DEPTH_FAIL":                 STENCIL_BACK_PASS_DEPTH_FAIL,
	"STENCIL_BACK_PASS_DEPTH_PASS":                 STENCIL_BACK_PASS_DEPTH_PASS,
	"STENCIL_BACK_REF":                             STENCIL_BACK_REF,
	"STENCIL_BACK_VALUE_MASK":                      STENCIL_BACK_VALUE_MASK,
	"STENCIL_BACK_WRITEMASK":                       STENCIL_BACK_WRITEMASK,
	"STENCIL_BITS":                                 STENCIL_BITS,
	"STENCIL_BUFFER_BIT":                           STENCIL_BUFFER_BIT,
	"STENCIL_CLEAR_VALUE":                          STENCIL_CLEAR_VALUE,
	"STENCIL_FAIL":                                 STENCIL_FAIL,
	"STENCIL_FUNC":                                 STENCIL_FUNC,
	"STENCIL_INDEX8":                               STENCIL_INDEX8,
	"STENCIL_PASS_DEPTH_FAIL":                      STENCIL_PASS_DEPTH_FAIL,
	"STENCIL_PASS_DEPTH_PASS":                      STENCIL_PASS_DEPTH_PASS,
	"STENCIL_REF":                                  STENCIL_REF,
	"STENCIL_TEST":                                 STENCIL_TEST,
	"STENCIL_VALUE_MASK":                           STENCIL_VALUE_MASK,
	"STENCIL_WRITEMASK":                            STENCIL_WRITEMASK,
	"STREAM_DRAW":                                  STREAM_DRAW,
	"SUBPIXEL_BITS":                                SUBPIXEL_BITS,
	"TEXTURE":                                      TEXTURE,
	"TEXTURE0":                                     TEXTURE0,
	"TEXTURE1":                                     TEXTURE1,
	"TEXTURE2":                                     TEXTURE2,
	"TEXTURE3":                                     TEXTURE3,
	"TEXTURE4":                                     TEXTURE4,
	"TEXTURE5":                                     TEXTURE5,
	"TEXTURE6":                                     TEXTURE6,
	"TEXTURE7":                                     TEXTURE7,
	"TEXTURE8":                                     TEXTURE8,
	"TEXTURE9":                                     TEXTURE9,
	"TEXTURE10":                                    TEXTURE10,
	"TEXTURE11":                                    TEXTURE11,
	"TEXTURE12":                                    TEXTURE12,
	"TEXTURE13":                                    TEXTURE13,
	"TEXTURE14":                                    TEXTURE14,
	"TEXTURE15":                                    TEXTURE15,
	"TEXTURE16":                                    TEXTURE16,
	"TEXTURE17":                                    TEXTURE17,
	"TEXTURE18":                                    TEXTURE18,
	"TEXTURE19":                                    TEXTURE19,
	"TEXTURE20":                                    TEXTURE20,
	"TEXTURE21":                                    TEXTURE21,
	"TEXTURE22":                                    TEXTURE22,
	"TEXTURE23":                                    TEXTURE23,
	"TEXTURE24":                                    TEXTURE24,
	"TEXTURE25":                                    TEXTURE25,
	"TEXTURE26":                                    TEXTURE26,
	"TEXTURE27":                                    TEXTURE27,
	"TEXTURE28":                                    TEXTURE28,
	"TEXTURE29":                                    TEXTURE29,
	"TEXTURE30":                                    TEXTURE30,
	"TEXTURE31":                                    TEXTURE31,
	"TEXTURE_2D":                                   TEXTURE_2D,
	"TEXTURE_BINDING_2D":                           TEXTURE_BINDING_2D,
	"TEXTURE_BINDING_CUBE_MAP":                     TEXTURE_BINDING_CUBE_MAP,
	"TEXTURE_CUBE_MAP":                             TEXTURE_CUBE_MAP,
	"TEXTURE_CUBE_MAP_NEGATIVE_X":                  TEXTURE_CUBE_MAP_NEGATIVE_X,
	"TEXTURE_CUBE_MAP_NEGATIVE_Y":                  TEXTURE_CUBE_MAP_NEGATIVE_Y,
	"TEXTURE_CUBE_MAP_NEGATIVE_Z":                  TEXTURE_CUBE_MAP_NEGATIVE_Z,
	"TEXTURE_CUBE_MAP_POSITIVE_X":                  TEXTURE_CUBE_MAP_POSITIVE_X,
	"TEXTURE_CUBE_MAP_POSITIVE_Y":                  TEXTURE_CUBE_MAP_POSITIVE_Y,
	"TEXTURE_CUBE_MAP_POSITIVE_Z":                  TEXTURE_CUBE_MAP_POSITIVE_Z,
	"TEXTURE_MAG_FILTER":                           TEXTURE_MAG_FILTER,
	"TEXTURE_MAX_ANISOTROPY_EXT":                   TEXTURE_MAX_ANISOTROPY_EXT,
	"TEXTURE_MIN_FILTER":                           TEXTURE_MIN_FILTER,
	"TEXTURE_WRAP_S":                               TEXTURE_WRAP_S,
	"TEXTURE_WRAP_T":                               TEXTURE_WRAP_T,
	"TRIANGLES":                                    TRIANGLES,
	"TRIANGLE_FAN":                                 TRIANGLE_FAN,
	"TRIANGLE_STRIP":                               TRIANGLE_STRIP,
	"TRUE":                                         TRUE,
	"UNPACK_ALIGNMENT":                             UNPACK_ALIGNMENT,
	"UNPACK_COLORSPACE_CONVERSION_WEBGL":           UNPACK_COLORSPACE_CONVERSION_WEBGL,
	"UNPACK_FLIP_Y_WEBGL":                          UNPACK_FLIP_Y_WEBGL,
	"UNPACK_PREMULTIPLY_ALPHA_WEBGL":               UNPACK_PREMULTIPLY_ALPHA_WEBGL,
	"UNSIGNED_BYTE":                                UNSIGNED_BYTE,
	"UNSIGNED_INT":                                 UNSIGNED_INT,
	"UNSIGNED_SHORT":                               UNSIGNED_SHORT,
	"UNSIGNED_SHORT_4_4_4_4":                       UNSIGNED_SHORT_4_4_4_4,
	"UNSIGNED_SHORT_5_5_5_1":                       UNSIGNED_SHORT_5_5_5_1,
	"UNSIGNED_SHORT_5_6_5":                         UNSIGNED_SHORT_5_6_5,
	"VALIDATE_STATUS":                              VALIDATE_STATUS,
	"VENDOR":                                       VENDOR,
	"VERSION":                                      VERSION,
	"VERTEX_ARRAY_BINDING_OES":                     VERTEX_ARRAY_BINDING_OES,
	"VERTEX_ATTRIB_ARRAY_BUFFER_BINDING":           VERTEX_ATTRIB_ARRAY_BUFFER_BINDING,
	"VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE":            VERTEX_ATTRIB_ARRAY_DIVISOR_ANGLE,
	"VERTEX_ATTRIB_ARRAY_ENABLED":                  VERTEX_ATTRIB_ARRAY_ENABLED,
	"VERTEX_ATTRIB_ARRAY_NORMALIZED":               VERTEX_ATTRIB_ARRAY_NORMALIZED,
	"VERTEX_ATTRIB_ARRAY_POINTER":                  VERTEX_ATTRIB_ARRAY_POINTER,
	"VERTEX_ATTRIB_ARRAY_SIZE":                     VERTEX_ATTRIB_ARRAY_SIZE,
	"VERTEX_ATTRIB_ARRAY_STRIDE":                   VERTEX_ATTRIB_ARRAY_STRIDE,
	"VERTEX_ATTRIB_ARRAY_TYPE":                     VERTEX_ATTRIB_ARRAY_TYPE,
	"VERTEX_SHADER":                                VERTEX_SHADER,
	"VIEWPORT":                                     VIEWPORT,
	"ZERO":                                         ZERO,
}

// Lookup returns the enum named name, such as "TEXTURE_2D".
func Lookup(name string) (Enum, bool) {
	e, ok := names[name]
	return e, ok
}
