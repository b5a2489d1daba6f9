// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/binary"
	"math"

	"gioui.org/webgl"
	"gioui.org/webgl/gl"
)

type callFunc func(r *runner, a *args) (any, error)

// do adapts a call without a result.
func do(f func(c *webgl.Context, a *args)) callFunc {
	return func(r *runner, a *args) (any, error) {
		f(r.c, a)
		return nil, nil
	}
}

// get adapts a call with a result.
func get(f func(c *webgl.Context, a *args) any) callFunc {
	return func(r *runner, a *args) (any, error) {
		return f(r.c, a), nil
	}
}

// bufferBytes encodes list data for target: indices for element arrays,
// floats otherwise.
func bufferBytes(target gl.Enum, v []float32) []byte {
	var out []byte
	for _, x := range v {
		if target == gl.ELEMENT_ARRAY_BUFFER {
			out = binary.NativeEndian.AppendUint16(out, uint16(x))
		} else {
			out = binary.NativeEndian.AppendUint32(out, math.Float32bits(x))
		}
	}
	return out
}

var calls = map[string]callFunc{
	// Context.
	"getError":      get(func(c *webgl.Context, a *args) any { return c.GetError() }),
	"isContextLost": get(func(c *webgl.Context, a *args) any { return c.IsContextLost() }),
	"finish":        do(func(c *webgl.Context, a *args) { c.Finish() }),
	"flush":         do(func(c *webgl.Context, a *args) { c.Flush() }),
	"resize": func(r *runner, a *args) (any, error) {
		return nil, r.c.Resize(int(a.int(0)), int(a.int(1)))
	},
	"drawingBufferSize": get(func(c *webgl.Context, a *args) any {
		return []int{c.DrawingBufferWidth(), c.DrawingBufferHeight()}
	}),
	"getExtension": get(func(c *webgl.Context, a *args) any {
		_, ok := c.GetExtension(a.str(0))
		return ok
	}),
	"getParameter": get(func(c *webgl.Context, a *args) any { return c.GetParameter(a.enum(0)) }),

	// Fixed function state.
	"enable":    do(func(c *webgl.Context, a *args) { c.Enable(a.enum(0)) }),
	"disable":   do(func(c *webgl.Context, a *args) { c.Disable(a.enum(0)) }),
	"isEnabled": get(func(c *webgl.Context, a *args) any { return c.IsEnabled(a.enum(0)) }),
	"clearColor": do(func(c *webgl.Context, a *args) {
		c.ClearColor(a.float(0), a.float(1), a.float(2), a.float(3))
	}),
	"clear": do(func(c *webgl.Context, a *args) { c.Clear(a.enum(0)) }),
	"colorMask": do(func(c *webgl.Context, a *args) {
		c.ColorMask(a.bool(0), a.bool(1), a.bool(2), a.bool(3))
	}),
	"viewport": do(func(c *webgl.Context, a *args) {
		c.Viewport(a.int(0), a.int(1), a.int(2), a.int(3))
	}),
	"scissor": do(func(c *webgl.Context, a *args) {
		c.Scissor(a.int(0), a.int(1), a.int(2), a.int(3))
	}),
	"blendFunc":   do(func(c *webgl.Context, a *args) { c.BlendFunc(a.enum(0), a.enum(1)) }),
	"depthFunc":   do(func(c *webgl.Context, a *args) { c.DepthFunc(a.enum(0)) }),
	"lineWidth":   do(func(c *webgl.Context, a *args) { c.LineWidth(a.float(0)) }),
	"pixelStorei": do(func(c *webgl.Context, a *args) { c.PixelStorei(a.enum(0), a.int(1)) }),

	// Buffers.
	"createBuffer": get(func(c *webgl.Context, a *args) any { return c.CreateBuffer() }),
	"deleteBuffer": do(func(c *webgl.Context, a *args) { c.DeleteBuffer(handle[webgl.Buffer](a, 0)) }),
	"bindBuffer": do(func(c *webgl.Context, a *args) {
		c.BindBuffer(a.enum(0), handle[webgl.Buffer](a, 1))
	}),
	"bufferData": do(func(c *webgl.Context, a *args) {
		target := a.enum(0)
		if _, ok := a.list(1); ok {
			c.BufferData(target, bufferBytes(target, a.floats(1)), a.enum(2))
			return
		}
		c.BufferDataSize(target, int(a.int(1)), a.enum(2))
	}),
	"bufferSubData": do(func(c *webgl.Context, a *args) {
		target := a.enum(0)
		c.BufferSubData(target, int(a.int(1)), bufferBytes(target, a.floats(2)))
	}),

	// Textures.
	"createTexture": get(func(c *webgl.Context, a *args) any { return c.CreateTexture() }),
	"deleteTexture": do(func(c *webgl.Context, a *args) { c.DeleteTexture(handle[webgl.Texture](a, 0)) }),
	"activeTexture": do(func(c *webgl.Context, a *args) { c.ActiveTexture(a.enum(0)) }),
	"bindTexture": do(func(c *webgl.Context, a *args) {
		c.BindTexture(a.enum(0), handle[webgl.Texture](a, 1))
	}),
	// texImage2D takes target, level, internal format, width, height,
	// border, format, type and optional byte data.
	"texImage2D": do(func(c *webgl.Context, a *args) {
		var data *webgl.ArrayBufferView
		if a.len() > 8 {
			fs := a.floats(8)
			pix := make([]byte, len(fs))
			for i, f := range fs {
				pix[i] = byte(f)
			}
			data = webgl.Uint8Array(pix)
		}
		c.TexImage2D(a.enum(0), a.int(1), a.enum(2), a.int(3), a.int(4), a.int(5), a.enum(6), a.enum(7), data)
	}),
	"texParameteri": do(func(c *webgl.Context, a *args) {
		c.TexParameteri(a.enum(0), a.enum(1), int32(a.enum(2)))
	}),
	"generateMipmap": do(func(c *webgl.Context, a *args) { c.GenerateMipmap(a.enum(0)) }),

	// Framebuffers and renderbuffers.
	"createFramebuffer": get(func(c *webgl.Context, a *args) any { return c.CreateFramebuffer() }),
	"deleteFramebuffer": do(func(c *webgl.Context, a *args) { c.DeleteFramebuffer(handle[webgl.Framebuffer](a, 0)) }),
	"bindFramebuffer": do(func(c *webgl.Context, a *args) {
		c.BindFramebuffer(a.enum(0), handle[webgl.Framebuffer](a, 1))
	}),
	"checkFramebufferStatus": get(func(c *webgl.Context, a *args) any { return c.CheckFramebufferStatus(a.enum(0)) }),
	"framebufferTexture2D": do(func(c *webgl.Context, a *args) {
		c.FramebufferTexture2D(a.enum(0), a.enum(1), a.enum(2), handle[webgl.Texture](a, 3), a.int(4))
	}),
	"framebufferRenderbuffer": do(func(c *webgl.Context, a *args) {
		c.FramebufferRenderbuffer(a.enum(0), a.enum(1), a.enum(2), handle[webgl.Renderbuffer](a, 3))
	}),
	"createRenderbuffer": get(func(c *webgl.Context, a *args) any { return c.CreateRenderbuffer() }),
	"deleteRenderbuffer": do(func(c *webgl.Context, a *args) { c.DeleteRenderbuffer(handle[webgl.Renderbuffer](a, 0)) }),
	"bindRenderbuffer": do(func(c *webgl.Context, a *args) {
		c.BindRenderbuffer(a.enum(0), handle[webgl.Renderbuffer](a, 1))
	}),
	"renderbufferStorage": do(func(c *webgl.Context, a *args) {
		c.RenderbufferStorage(a.enum(0), a.enum(1), a.int(2), a.int(3))
	}),

	// Shaders and programs.
	"createShader": get(func(c *webgl.Context, a *args) any { return c.CreateShader(a.enum(0)) }),
	"deleteShader": do(func(c *webgl.Context, a *args) { c.DeleteShader(handle[webgl.Shader](a, 0)) }),
	"shaderSource": do(func(c *webgl.Context, a *args) {
		c.ShaderSource(handle[webgl.Shader](a, 0), a.str(1))
	}),
	"compileShader": do(func(c *webgl.Context, a *args) { c.CompileShader(handle[webgl.Shader](a, 0)) }),
	"getShaderParameter": get(func(c *webgl.Context, a *args) any {
		return c.GetShaderParameter(handle[webgl.Shader](a, 0), a.enum(1))
	}),
	"getShaderInfoLog": get(func(c *webgl.Context, a *args) any {
		log, _ := c.GetShaderInfoLog(handle[webgl.Shader](a, 0))
		return log
	}),
	"createProgram": get(func(c *webgl.Context, a *args) any { return c.CreateProgram() }),
	"deleteProgram": do(func(c *webgl.Context, a *args) { c.DeleteProgram(handle[webgl.Program](a, 0)) }),
	"attachShader": do(func(c *webgl.Context, a *args) {
		c.AttachShader(handle[webgl.Program](a, 0), handle[webgl.Shader](a, 1))
	}),
	"detachShader": do(func(c *webgl.Context, a *args) {
		c.DetachShader(handle[webgl.Program](a, 0), handle[webgl.Shader](a, 1))
	}),
	"bindAttribLocation": do(func(c *webgl.Context, a *args) {
		c.BindAttribLocation(handle[webgl.Program](a, 0), a.uint(1), a.str(2))
	}),
	"linkProgram": do(func(c *webgl.Context, a *args) { c.LinkProgram(handle[webgl.Program](a, 0)) }),
	"getProgramParameter": get(func(c *webgl.Context, a *args) any {
		return c.GetProgramParameter(handle[webgl.Program](a, 0), a.enum(1))
	}),
	"getProgramInfoLog": get(func(c *webgl.Context, a *args) any {
		log, _ := c.GetProgramInfoLog(handle[webgl.Program](a, 0))
		return log
	}),
	"useProgram": do(func(c *webgl.Context, a *args) { c.UseProgram(handle[webgl.Program](a, 0)) }),
	"getAttribLocation": get(func(c *webgl.Context, a *args) any {
		return c.GetAttribLocation(handle[webgl.Program](a, 0), a.str(1))
	}),
	"getUniformLocation": get(func(c *webgl.Context, a *args) any {
		if loc := c.GetUniformLocation(handle[webgl.Program](a, 0), a.str(1)); loc != nil {
			return loc
		}
		return nil
	}),
	"getUniform": get(func(c *webgl.Context, a *args) any {
		return c.GetUniform(handle[webgl.Program](a, 0), handle[webgl.UniformLocation](a, 1))
	}),
	"uniform1f": do(func(c *webgl.Context, a *args) {
		c.Uniform1f(handle[webgl.UniformLocation](a, 0), a.float(1))
	}),
	"uniform4f": do(func(c *webgl.Context, a *args) {
		c.Uniform4f(handle[webgl.UniformLocation](a, 0), a.float(1), a.float(2), a.float(3), a.float(4))
	}),
	"uniform1i": do(func(c *webgl.Context, a *args) {
		c.Uniform1i(handle[webgl.UniformLocation](a, 0), a.int(1))
	}),
	"uniformMatrix4fv": do(func(c *webgl.Context, a *args) {
		c.UniformMatrix4fv(handle[webgl.UniformLocation](a, 0), a.bool(1), a.floats(2))
	}),

	// Vertex arrays and draws.
	"createVertexArray": get(func(c *webgl.Context, a *args) any { return c.CreateVertexArray() }),
	"deleteVertexArray": do(func(c *webgl.Context, a *args) { c.DeleteVertexArray(handle[webgl.VertexArray](a, 0)) }),
	"bindVertexArray": do(func(c *webgl.Context, a *args) {
		c.BindVertexArray(handle[webgl.VertexArray](a, 0))
	}),
	"enableVertexAttribArray":  do(func(c *webgl.Context, a *args) { c.EnableVertexAttribArray(a.uint(0)) }),
	"disableVertexAttribArray": do(func(c *webgl.Context, a *args) { c.DisableVertexAttribArray(a.uint(0)) }),
	"vertexAttribPointer": do(func(c *webgl.Context, a *args) {
		c.VertexAttribPointer(a.uint(0), a.int(1), a.enum(2), a.bool(3), a.int(4), a.int(5))
	}),
	"vertexAttribDivisorANGLE": do(func(c *webgl.Context, a *args) {
		c.VertexAttribDivisorANGLE(a.uint(0), a.uint(1))
	}),
	"drawArrays": do(func(c *webgl.Context, a *args) {
		c.DrawArrays(a.enum(0), a.int(1), a.int(2))
	}),
	"drawElements": do(func(c *webgl.Context, a *args) {
		c.DrawElements(a.enum(0), a.int(1), a.enum(2), int64(a.int(3)))
	}),
	"drawArraysInstancedANGLE": do(func(c *webgl.Context, a *args) {
		c.DrawArraysInstancedANGLE(a.enum(0), a.int(1), a.int(2), a.int(3))
	}),
	"drawElementsInstancedANGLE": do(func(c *webgl.Context, a *args) {
		c.DrawElementsInstancedANGLE(a.enum(0), a.int(1), a.enum(2), int64(a.int(3)), a.int(4))
	}),

	// readPixels reads RGBA/UNSIGNED_BYTE pixels of x, y, width, height.
	"readPixels": get(func(c *webgl.Context, a *args) any {
		w, h := a.int(2), a.int(3)
		if w < 0 || h < 0 {
			w, h = 0, 0
		}
		dst := make([]byte, w*h*4)
		c.ReadPixels(a.int(0), a.int(1), w, h, gl.RGBA, gl.UNSIGNED_BYTE, webgl.Uint8Array(dst))
		return dst
	}),
}
