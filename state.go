// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"math"

	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
)

// pixelStore holds the PixelStorei settings. They never reach the backend
// directly; uploads and reads carry what they need.
type pixelStore struct {
	packAlignment   int32
	unpackAlignment int32
	flipY           bool
	premultiply     bool
	colorspace      gl.Enum
}

var defaultPixelStore = pixelStore{
	packAlignment:   4,
	unpackAlignment: 4,
	colorspace:      gl.BROWSER_DEFAULT_WEBGL,
}

func (c *Context) PixelStorei(param gl.Enum, value int32) {
	if c.isLost() {
		return
	}
	switch param {
	case gl.UNPACK_FLIP_Y_WEBGL:
		c.pixels.flipY = value != 0
	case gl.UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		c.pixels.premultiply = value != 0
	case gl.UNPACK_COLORSPACE_CONVERSION_WEBGL:
		switch v := gl.Enum(value); v {
		case gl.BROWSER_DEFAULT_WEBGL, gl.NONE:
			c.pixels.colorspace = v
		default:
			c.fail(InvalidEnum)
		}
	case gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT:
		if !validAlignment(value) {
			c.fail(InvalidValue)
			return
		}
		if param == gl.PACK_ALIGNMENT {
			c.pixels.packAlignment = value
		} else {
			c.pixels.unpackAlignment = value
		}
	default:
		c.fail(InvalidEnum)
	}
}

func (c *Context) BlendColor(r, g, b, a float32) {
	if c.isLost() {
		return
	}
	c.send(command.BlendColor{Color: [4]float32{r, g, b, a}})
}

func (c *Context) checkBlendEquation(mode gl.Enum) error {
	switch mode {
	case gl.FUNC_ADD, gl.FUNC_SUBTRACT, gl.FUNC_REVERSE_SUBTRACT:
		return nil
	}
	if ext.Gated(ext.BlendEquation, mode) && c.exts.IsEnumEnabled(ext.BlendEquation, mode) {
		return nil
	}
	return InvalidEnum
}

func (c *Context) BlendEquation(mode gl.Enum) {
	if c.isLost() || c.check(c.checkBlendEquation(mode)) {
		return
	}
	c.send(command.BlendEquation{Mode: mode})
}

func (c *Context) BlendEquationSeparate(rgb, alpha gl.Enum) {
	if c.isLost() || c.check(c.checkBlendEquation(rgb)) || c.check(c.checkBlendEquation(alpha)) {
		return
	}
	c.send(command.BlendEquationSeparate{RGB: rgb, Alpha: alpha})
}

// constantBlendConflict reports whether a factor pair mixes the constant
// color and constant alpha factors.
func constantBlendConflict(a, b gl.Enum) bool {
	color := func(f gl.Enum) bool { return f == gl.CONSTANT_COLOR || f == gl.ONE_MINUS_CONSTANT_COLOR }
	alpha := func(f gl.Enum) bool { return f == gl.CONSTANT_ALPHA || f == gl.ONE_MINUS_CONSTANT_ALPHA }
	return color(a) && alpha(b) || alpha(a) && color(b)
}

func (c *Context) BlendFunc(src, dst gl.Enum) {
	if c.isLost() {
		return
	}
	if c.check(checkEnum(src, blendFactors)) || c.check(checkEnum(dst, blendFactors)) {
		return
	}
	if constantBlendConflict(src, dst) {
		c.fail(InvalidOperation)
		return
	}
	c.send(command.BlendFunc{Src: src, Dst: dst})
}

func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	if c.isLost() {
		return
	}
	for _, f := range [...]gl.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha} {
		if c.check(checkEnum(f, blendFactors)) {
			return
		}
	}
	if constantBlendConflict(srcRGB, dstRGB) {
		c.fail(InvalidOperation)
		return
	}
	c.send(command.BlendFuncSeparate{SrcRGB: srcRGB, DstRGB: dstRGB, SrcAlpha: srcAlpha, DstAlpha: dstAlpha})
}

func (c *Context) ClearColor(r, g, b, a float32) {
	if c.isLost() {
		return
	}
	c.clearColor = [4]float32{r, g, b, a}
	c.send(command.ClearColor{Color: c.clearColor})
}

func (c *Context) ClearDepth(depth float32) {
	if c.isLost() {
		return
	}
	c.send(command.ClearDepth{Depth: depth})
}

func (c *Context) ClearStencil(s int32) {
	if c.isLost() {
		return
	}
	c.send(command.ClearStencil{Stencil: s})
}

func (c *Context) ColorMask(r, g, b, a bool) {
	if c.isLost() {
		return
	}
	c.send(command.ColorMask{Mask: [4]bool{r, g, b, a}})
}

func (c *Context) CullFace(mode gl.Enum) {
	if c.isLost() || c.check(checkEnum(mode, faces)) {
		return
	}
	c.send(command.CullFace{Mode: mode})
}

func (c *Context) FrontFace(mode gl.Enum) {
	if c.isLost() || c.check(checkEnum(mode, []gl.Enum{gl.CW, gl.CCW})) {
		return
	}
	c.send(command.FrontFace{Mode: mode})
}

func (c *Context) DepthFunc(fn gl.Enum) {
	if c.isLost() || c.check(checkEnum(fn, comparisonFuncs)) {
		return
	}
	c.send(command.DepthFunc{Func: fn})
}

func (c *Context) DepthMask(flag bool) {
	if c.isLost() {
		return
	}
	c.send(command.DepthMask{Flag: flag})
}

func (c *Context) DepthRange(near, far float32) {
	if c.isLost() {
		return
	}
	if near > far {
		c.fail(InvalidOperation)
		return
	}
	c.send(command.DepthRange{Near: near, Far: far})
}

func (c *Context) Hint(target, mode gl.Enum) {
	if c.isLost() {
		return
	}
	if target != gl.GENERATE_MIPMAP_HINT && !(ext.Gated(ext.HintTarget, target) && c.exts.IsEnumEnabled(ext.HintTarget, target)) {
		c.fail(InvalidEnum)
		return
	}
	if c.check(checkEnum(mode, hintModes)) {
		return
	}
	c.send(command.Hint{Target: target, Mode: mode})
}

func (c *Context) LineWidth(width float32) {
	if c.isLost() {
		return
	}
	if math.IsNaN(float64(width)) || width <= 0 {
		c.fail(InvalidValue)
		return
	}
	c.send(command.LineWidth{Width: width})
}

func (c *Context) PolygonOffset(factor, units float32) {
	if c.isLost() {
		return
	}
	c.send(command.PolygonOffset{Factor: factor, Units: units})
}

func (c *Context) SampleCoverage(value float32, invert bool) {
	if c.isLost() {
		return
	}
	c.send(command.SampleCoverage{Value: value, Invert: invert})
}

func (c *Context) Scissor(x, y, width, height int32) {
	if c.isLost() || c.check(checkNonNegative(width, height)) {
		return
	}
	c.scissor = command.Rect{X: x, Y: y, Width: width, Height: height}
	c.send(command.Scissor{Rect: c.scissor})
}

func (c *Context) Viewport(x, y, width, height int32) {
	if c.isLost() || c.check(checkNonNegative(width, height)) {
		return
	}
	c.send(command.Viewport{Rect: command.Rect{X: x, Y: y, Width: width, Height: height}})
}

func (c *Context) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	if c.isLost() || c.check(checkEnum(fn, comparisonFuncs)) {
		return
	}
	c.send(command.StencilFunc{Func: fn, Ref: ref, Mask: mask})
}

func (c *Context) StencilFuncSeparate(face, fn gl.Enum, ref int32, mask uint32) {
	if c.isLost() || c.check(checkEnum(face, faces)) || c.check(checkEnum(fn, comparisonFuncs)) {
		return
	}
	c.send(command.StencilFuncSeparate{Face: face, Func: fn, Ref: ref, Mask: mask})
}

func (c *Context) StencilMask(mask uint32) {
	if c.isLost() {
		return
	}
	c.send(command.StencilMask{Mask: mask})
}

func (c *Context) StencilMaskSeparate(face gl.Enum, mask uint32) {
	if c.isLost() || c.check(checkEnum(face, faces)) {
		return
	}
	c.send(command.StencilMaskSeparate{Face: face, Mask: mask})
}

func checkStencilActions(fail, zfail, zpass gl.Enum) error {
	for _, a := range [...]gl.Enum{fail, zfail, zpass} {
		if err := checkEnum(a, stencilActions); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) StencilOp(fail, zfail, zpass gl.Enum) {
	if c.isLost() || c.check(checkStencilActions(fail, zfail, zpass)) {
		return
	}
	c.send(command.StencilOp{Fail: fail, ZFail: zfail, ZPass: zpass})
}

func (c *Context) StencilOpSeparate(face, fail, zfail, zpass gl.Enum) {
	if c.isLost() || c.check(checkEnum(face, faces)) || c.check(checkStencilActions(fail, zfail, zpass)) {
		return
	}
	c.send(command.StencilOpSeparate{Face: face, Fail: fail, ZFail: zfail, ZPass: zpass})
}

// Clear clears the buffers in mask, a combination of COLOR_BUFFER_BIT,
// DEPTH_BUFFER_BIT and STENCIL_BUFFER_BIT.
func (c *Context) Clear(mask gl.Enum) {
	if c.isLost() || c.check(c.validateFramebuffer()) {
		return
	}
	if mask&^(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
		c.fail(InvalidValue)
		return
	}
	c.send(command.Clear{Mask: mask})
}
