// SPDX-License-Identifier: Unlicense OR MIT

package headless_test

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl"
	"gioui.org/webgl/backend/headless"
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// serve runs b until the test ends or stop is called.
func serve(t *testing.T, b *headless.Backend) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Serve(ctx) }()
	var stopped bool
	stop = func() {
		if stopped {
			return
		}
		stopped = true
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v", err)
		}
	}
	t.Cleanup(stop)
	return stop
}

func newContext(t *testing.T, cfg headless.Config) (*headless.Backend, *webgl.Context, func()) {
	t.Helper()
	b, err := headless.New(cfg)
	require.NoError(t, err)
	stop := serve(t, b)
	c, err := webgl.NewContext(b.Channel(), image.Pt(4, 4), command.Attributes{Alpha: true, Antialias: true})
	require.NoError(t, err)
	return b, c, stop
}

func TestClearReadPixels(t *testing.T) {
	b, c, _ := newContext(t, headless.DefaultConfig())
	c.ClearColor(1, 0, 0, 1)
	c.Clear(gl.COLOR_BUFFER_BIT)
	dst := make([]byte, 2*2*4)
	c.ReadPixels(0, 0, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, webgl.Uint8Array(dst))
	require.Equal(t, gl.Enum(gl.NO_ERROR), c.GetError())
	for i := 0; i < len(dst); i += 4 {
		assert.Equal(t, []byte{0xff, 0, 0, 0xff}, dst[i:i+4])
	}
	assert.Empty(t, b.Violations())
}

const (
	vertexSource = `
attribute vec2 pos;
uniform vec4 tint;
void main() { gl_Position = vec4(pos, 0, 1) * tint; }
`
	fragmentSource = `
precision mediump float;
uniform sampler2D tex;
void main() { gl_FragColor = texture2D(tex, vec2(0)); }
`
)

func buildProgram(t *testing.T, c *webgl.Context) *webgl.Program {
	t.Helper()
	p := c.CreateProgram()
	for typ, src := range map[gl.Enum]string{gl.VERTEX_SHADER: vertexSource, gl.FRAGMENT_SHADER: fragmentSource} {
		s := c.CreateShader(typ)
		c.ShaderSource(s, src)
		c.CompileShader(s)
		log, _ := c.GetShaderInfoLog(s)
		require.Equal(t, true, c.GetShaderParameter(s, gl.COMPILE_STATUS), log)
		c.AttachShader(p, s)
	}
	c.LinkProgram(p)
	log, _ := c.GetProgramInfoLog(p)
	require.Equal(t, true, c.GetProgramParameter(p, gl.LINK_STATUS), log)
	return p
}

func TestProgramRoundTrip(t *testing.T) {
	b, c, _ := newContext(t, headless.DefaultConfig())
	p := buildProgram(t, c)
	c.UseProgram(p)
	tint := c.GetUniformLocation(p, "tint")
	require.NotNil(t, tint)
	assert.Nil(t, c.GetUniformLocation(p, "missing"))
	c.Uniform4f(tint, 1, 0.5, 0.25, 1)
	assert.Equal(t, []float32{1, 0.5, 0.25, 1}, c.GetUniform(p, tint))
	tex := c.GetUniformLocation(p, "tex")
	c.Uniform1i(tex, 3)
	assert.Equal(t, int32(3), c.GetUniform(p, tex))

	// A sampler takes no floats.
	c.Uniform1f(tex, 1)
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), c.GetError())

	pos := c.GetAttribLocation(p, "pos")
	require.GreaterOrEqual(t, pos, int32(0))
	buf := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	c.BufferData(gl.ARRAY_BUFFER, make([]byte, 3*2*4), gl.STATIC_DRAW)
	c.VertexAttribPointer(uint32(pos), 2, gl.FLOAT, false, 0, 0)
	c.EnableVertexAttribArray(uint32(pos))
	c.DrawArrays(gl.TRIANGLES, 0, 3)
	// Four vertices overrun the buffer and never reach the backend.
	c.DrawArrays(gl.TRIANGLES, 0, 4)
	assert.Equal(t, gl.Enum(gl.INVALID_OPERATION), c.GetError())
	c.Finish()
	assert.Equal(t, gl.Enum(gl.NO_ERROR), c.GetError())
	assert.Equal(t, 1, b.Stats().Draws)
	assert.Empty(t, b.Violations())
}

func TestDeferredDeletes(t *testing.T) {
	b, c, _ := newContext(t, headless.DefaultConfig())
	p := buildProgram(t, c)
	c.UseProgram(p)
	shaders, ok := c.GetAttachedShaders(p)
	require.True(t, ok)
	for _, s := range shaders {
		c.DeleteShader(s)
	}
	c.DeleteProgram(p)
	assert.Equal(t, true, c.GetProgramParameter(p, gl.DELETE_STATUS))

	fb := c.CreateFramebuffer()
	rb := c.CreateRenderbuffer()
	c.BindRenderbuffer(gl.RENDERBUFFER, rb)
	c.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA4, 2, 2)
	c.BindFramebuffer(gl.FRAMEBUFFER, fb)
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, rb)
	assert.Equal(t, gl.Enum(gl.FRAMEBUFFER_COMPLETE), c.CheckFramebufferStatus(gl.FRAMEBUFFER))
	c.DeleteRenderbuffer(rb)
	c.BindFramebuffer(gl.FRAMEBUFFER, nil)
	c.DeleteFramebuffer(fb)

	c.UseProgram(nil)
	c.Finish()
	assert.Equal(t, gl.Enum(gl.NO_ERROR), c.GetError())
	assert.Empty(t, b.Violations())
}

func TestQueriesAnsweredByBackend(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Antialias = false
	_, c, _ := newContext(t, cfg)
	attrs, ok := c.GetContextAttributes()
	require.True(t, ok)
	assert.True(t, attrs.Alpha)
	assert.False(t, attrs.Antialias)
	assert.Equal(t, 4, c.DrawingBufferWidth())

	c.Viewport(1, 1, 2, 2)
	assert.Equal(t, [4]int32{1, 1, 2, 2}, c.GetParameter(gl.VIEWPORT))
	c.DepthFunc(gl.GREATER)
	assert.Equal(t, gl.Enum(gl.GREATER), c.GetParameter(gl.DEPTH_FUNC))

	f, ok := c.GetShaderPrecisionFormat(gl.FRAGMENT_SHADER, gl.HIGH_FLOAT)
	require.True(t, ok)
	assert.Equal(t, command.PrecisionFormat{RangeMin: 127, RangeMax: 127, Precision: 23}, f)

	require.NoError(t, c.Resize(8, 2))
	assert.Equal(t, 8, c.DrawingBufferWidth())
	assert.Equal(t, 2, c.DrawingBufferHeight())
}

func TestContextLost(t *testing.T) {
	b, c, stop := newContext(t, headless.DefaultConfig())
	buf := c.CreateBuffer()
	stop()
	c.Finish()
	assert.True(t, c.IsContextLost())
	assert.Equal(t, gl.Enum(gl.CONTEXT_LOST_WEBGL), c.GetError())
	// Every later entrypoint records the loss again.
	c.BindBuffer(gl.ARRAY_BUFFER, buf)
	assert.Equal(t, gl.Enum(gl.CONTEXT_LOST_WEBGL), c.GetError())
	assert.Equal(t, 1, b.Stats().Contexts)
}

func TestExtensionsFromConfig(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Extensions = []string{"GL_OES_texture_float", "GL_ANGLE_instanced_arrays"}
	_, c, _ := newContext(t, cfg)
	assert.Contains(t, c.GetSupportedExtensions(), "OES_texture_float")
	assert.NotContains(t, c.GetSupportedExtensions(), "WEBGL_compressed_texture_s3tc")
	_, ok := c.GetExtension("WEBGL_compressed_texture_s3tc")
	assert.False(t, ok)
}
