// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
)

const (
	versionString  = "WebGL 1.0"
	glslString     = "WebGL GLSL ES 1.0"
	vendorString   = "gioui.org"
	rendererString = "gioui.org/webgl"
)

// queryParams lists the GetParameter names the backend answers, with the
// shape of their value.
var queryParams = map[gl.Enum]command.ParamKind{
	gl.DEPTH_WRITEMASK:        command.ParamBool,
	gl.SAMPLE_COVERAGE_INVERT: command.ParamBool,

	gl.COLOR_WRITEMASK: command.ParamBool4,

	gl.ALPHA_BITS:              command.ParamInt,
	gl.RED_BITS:                command.ParamInt,
	gl.GREEN_BITS:              command.ParamInt,
	gl.BLUE_BITS:               command.ParamInt,
	gl.DEPTH_BITS:              command.ParamInt,
	gl.STENCIL_BITS:            command.ParamInt,
	gl.SUBPIXEL_BITS:           command.ParamInt,
	gl.SAMPLE_BUFFERS:          command.ParamInt,
	gl.SAMPLES:                 command.ParamInt,
	gl.STENCIL_REF:             command.ParamInt,
	gl.STENCIL_BACK_REF:        command.ParamInt,
	gl.STENCIL_CLEAR_VALUE:     command.ParamInt,
	gl.STENCIL_VALUE_MASK:      command.ParamInt,
	gl.STENCIL_WRITEMASK:       command.ParamInt,
	gl.STENCIL_BACK_VALUE_MASK: command.ParamInt,
	gl.STENCIL_BACK_WRITEMASK:  command.ParamInt,

	gl.VIEWPORT: command.ParamInt4,

	gl.DEPTH_CLEAR_VALUE:              command.ParamFloat,
	gl.LINE_WIDTH:                     command.ParamFloat,
	gl.POLYGON_OFFSET_FACTOR:          command.ParamFloat,
	gl.POLYGON_OFFSET_UNITS:           command.ParamFloat,
	gl.SAMPLE_COVERAGE_VALUE:          command.ParamFloat,
	gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT: command.ParamFloat,

	gl.ALIASED_LINE_WIDTH_RANGE: command.ParamFloat2,
	gl.ALIASED_POINT_SIZE_RANGE: command.ParamFloat2,
	gl.DEPTH_RANGE:              command.ParamFloat2,

	gl.BLEND_COLOR: command.ParamFloat4,
}

// enumParams are integer parameters whose value is an enum.
var enumParams = []gl.Enum{
	gl.BLEND_DST_ALPHA, gl.BLEND_DST_RGB, gl.BLEND_SRC_ALPHA, gl.BLEND_SRC_RGB,
	gl.BLEND_EQUATION_ALPHA, gl.BLEND_EQUATION_RGB,
	gl.CULL_FACE_MODE, gl.DEPTH_FUNC, gl.FRONT_FACE,
	gl.GENERATE_MIPMAP_HINT, gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES,
	gl.STENCIL_FUNC, gl.STENCIL_FAIL, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_PASS_DEPTH_PASS,
	gl.STENCIL_BACK_FUNC, gl.STENCIL_BACK_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_PASS,
}

// nilIfNone turns a nil object pointer into an untyped nil.
func nilIfNone[T any](o *T) any {
	if o == nil {
		return nil
	}
	return o
}

// GetParameter returns the value of a context parameter. Scalars come back
// as bool, int32, float32, gl.Enum or string, tuples as arrays, and
// bindings as object pointers or nil.
func (c *Context) GetParameter(param gl.Enum) any {
	if c.isLost() {
		return nil
	}
	if !c.exts.IsEnumEnabled(ext.GetParameter, param) {
		c.fail(InvalidEnum)
		return nil
	}
	if v, ok := c.cachedParameter(param); ok {
		return v
	}
	if on, err := c.caps.isEnabled(param); err == nil {
		return on
	}
	kind, ok := queryParams[param]
	isEnum := checkEnum(param, enumParams) == nil
	if isEnum {
		kind, ok = command.ParamInt, true
	}
	if !ok {
		c.fail(InvalidEnum)
		return nil
	}
	r := command.NewReply[command.ParamValue]()
	v, ok := query(c, command.GetParameter{Param: param, Kind: kind, Reply: r}, r)
	if !ok {
		return nil
	}
	switch kind {
	case command.ParamBool:
		return v.Bools[0]
	case command.ParamBool4:
		return v.Bools
	case command.ParamInt:
		if isEnum {
			return gl.Enum(v.Ints[0])
		}
		return v.Ints[0]
	case command.ParamInt2:
		return [2]int32{v.Ints[0], v.Ints[1]}
	case command.ParamInt4:
		return v.Ints
	case command.ParamFloat:
		return v.Floats[0]
	case command.ParamFloat2:
		return [2]float32{v.Floats[0], v.Floats[1]}
	default:
		return v.Floats
	}
}

// cachedParameter answers the parameters the context tracks itself.
func (c *Context) cachedParameter(param gl.Enum) (any, bool) {
	l := c.info.Limits
	switch param {
	case gl.ARRAY_BUFFER_BINDING:
		return nilIfNone(c.arrayBuffer), true
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return nilIfNone(c.currentVAO().elements), true
	case gl.FRAMEBUFFER_BINDING:
		return nilIfNone(c.framebuffer), true
	case gl.RENDERBUFFER_BINDING:
		return nilIfNone(c.renderbuffer), true
	case gl.CURRENT_PROGRAM:
		return nilIfNone(c.program), true
	case gl.TEXTURE_BINDING_2D:
		t, _ := c.units.bound(gl.TEXTURE_2D)
		return nilIfNone(t), true
	case gl.TEXTURE_BINDING_CUBE_MAP:
		t, _ := c.units.bound(gl.TEXTURE_CUBE_MAP)
		return nilIfNone(t), true
	case gl.VERTEX_ARRAY_BINDING_OES:
		return nilIfNone(c.vao), true
	case gl.ACTIVE_TEXTURE:
		return c.units.activeEnum(), true
	case gl.IMPLEMENTATION_COLOR_READ_FORMAT:
		return gl.Enum(gl.RGBA), true
	case gl.IMPLEMENTATION_COLOR_READ_TYPE:
		return gl.Enum(gl.UNSIGNED_BYTE), true
	case gl.VERSION:
		return versionString, true
	case gl.SHADING_LANGUAGE_VERSION:
		return glslString, true
	case gl.VENDOR:
		return vendorString, true
	case gl.RENDERER:
		return rendererString, true
	case gl.COMPRESSED_TEXTURE_FORMATS:
		return c.exts.CompressedFormats(), true
	case gl.PACK_ALIGNMENT:
		return c.pixels.packAlignment, true
	case gl.UNPACK_ALIGNMENT:
		return c.pixels.unpackAlignment, true
	case gl.UNPACK_FLIP_Y_WEBGL:
		return c.pixels.flipY, true
	case gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		return c.pixels.premultiply, true
	case gl.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		return c.pixels.colorspace, true
	case gl.SCISSOR_BOX:
		s := c.scissor
		return [4]int32{s.X, s.Y, s.Width, s.Height}, true
	case gl.COLOR_CLEAR_VALUE:
		return c.clearColor, true
	case gl.MAX_VERTEX_ATTRIBS:
		return int32(l.MaxVertexAttribs), true
	case gl.MAX_TEXTURE_SIZE:
		return int32(l.MaxTextureSize), true
	case gl.MAX_CUBE_MAP_TEXTURE_SIZE:
		return int32(l.MaxCubeMapTextureSize), true
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return int32(l.MaxCombinedTextureImageUnits), true
	case gl.MAX_TEXTURE_IMAGE_UNITS:
		return int32(l.MaxTextureImageUnits), true
	case gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS:
		return int32(l.MaxVertexTextureImageUnits), true
	case gl.MAX_RENDERBUFFER_SIZE:
		return int32(l.MaxRenderbufferSize), true
	case gl.MAX_VIEWPORT_DIMS:
		return [2]int32{int32(l.MaxViewportDims[0]), int32(l.MaxViewportDims[1])}, true
	case gl.MAX_FRAGMENT_UNIFORM_VECTORS:
		return int32(l.MaxFragmentUniformVectors), true
	case gl.MAX_VERTEX_UNIFORM_VECTORS:
		return int32(l.MaxVertexUniformVectors), true
	case gl.MAX_VARYING_VECTORS:
		return int32(l.MaxVaryingVectors), true
	}
	return nil, false
}
