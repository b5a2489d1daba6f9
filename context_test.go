// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"bytes"
	"context"
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/backend/headless"
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// recorder sits between contexts and a headless backend and keeps every
// command it forwards.
type recorder struct {
	inbox   chan command.Message
	ch      *command.Channel
	backend *headless.Backend
	cancel  context.CancelFunc

	mu   sync.Mutex
	cmds []command.Command
	// uploads holds copies of the TexImage2D pixels, which the backend
	// unmaps once applied.
	uploads [][]byte
}

func newRecorder(t *testing.T, cfg headless.Config) *recorder {
	t.Helper()
	b, err := headless.New(cfg)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	next := b.Channel()
	r := &recorder{inbox: make(chan command.Message), backend: b, cancel: cancel}
	r.ch = command.NewChannel(r.inbox, next.Done())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		b.Serve(ctx)
	}()
	go func() {
		defer wg.Done()
		r.forward(next)
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return r
}

func (r *recorder) forward(next *command.Channel) {
	for {
		select {
		case <-next.Done():
			return
		case m := <-r.inbox:
			r.mu.Lock()
			r.cmds = append(r.cmds, m.Command)
			if ti, ok := m.Command.(command.TexImage2D); ok && ti.Pixels != nil {
				r.uploads = append(r.uploads, bytes.Clone(ti.Pixels.Bytes()))
			}
			r.mu.Unlock()
			if next.Send(m.Context, m.Command) != nil {
				return
			}
		}
	}
}

// commands returns the commands c sent since the last call, leaving out
// the round trips the test harness and the extension manager make.
func (r *recorder) commands(c *Context) []command.Command {
	if !c.IsContextLost() {
		c.Finish()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var cmds []command.Command
	for _, cmd := range r.cmds {
		switch cmd.Tag() {
		case command.TagFinish, command.TagGetExtensions:
		default:
			cmds = append(cmds, cmd)
		}
	}
	r.cmds = nil
	return cmds
}

func (r *recorder) sent(c *Context) []command.Tag {
	var tags []command.Tag
	for _, cmd := range r.commands(c) {
		tags = append(tags, cmd.Tag())
	}
	return tags
}

// lastUpload returns the pixels of the last TexImage2D forwarded.
func (r *recorder) lastUpload() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.uploads) == 0 {
		return nil
	}
	return r.uploads[len(r.uploads)-1]
}

// lose stops the backend and waits for the channel to report it.
func (r *recorder) lose() {
	r.cancel()
	<-r.ch.Done()
}

func (r *recorder) newContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(r.ch, image.Pt(4, 4), command.Attributes{Alpha: true, Depth: true, Stencil: true})
	require.NoError(t, err)
	r.sent(c)
	return c
}

func testConfig() headless.Config {
	cfg := headless.DefaultConfig()
	cfg.Extensions = []string{
		"GL_ANGLE_instanced_arrays",
		"GL_EXT_blend_minmax",
		"GL_OES_element_index_uint",
		"GL_OES_texture_float",
		"GL_OES_vertex_array_object",
	}
	return cfg
}

func newTestContext(t *testing.T) (*Context, *recorder) {
	t.Helper()
	r := newRecorder(t, testConfig())
	return r.newContext(t), r
}

func checkError(t *testing.T, c *Context, want gl.Enum) {
	t.Helper()
	assert.Equal(t, want, c.GetError())
}

func TestErrorRegister(t *testing.T) {
	c, _ := newTestContext(t)
	checkError(t, c, gl.NO_ERROR)
	c.Enable(gl.TEXTURE_2D)
	c.LineWidth(-1)
	c.BindBuffer(gl.ARRAY_BUFFER, nil)
	checkError(t, c, gl.INVALID_ENUM)
	checkError(t, c, gl.NO_ERROR)
	c.LineWidth(0)
	checkError(t, c, gl.INVALID_VALUE)
	checkError(t, c, gl.NO_ERROR)
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err  Error
		code gl.Enum
		text string
	}{
		{InvalidEnum, gl.INVALID_ENUM, "webgl: invalid enum"},
		{InvalidValue, gl.INVALID_VALUE, "webgl: invalid value"},
		{InvalidOperation, gl.INVALID_OPERATION, "webgl: invalid operation"},
		{InvalidFramebufferOperation, gl.INVALID_FRAMEBUFFER_OPERATION, "webgl: invalid framebuffer operation"},
		{OutOfMemory, gl.OUT_OF_MEMORY, "webgl: out of memory"},
		{ContextLost, 0x9242, "webgl: context lost"},
		{0, gl.NO_ERROR, "webgl: unknown error"},
	}
	for _, test := range tests {
		assert.Equal(t, test.code, test.err.Code())
		assert.EqualError(t, test.err, test.text)
	}
}

func TestInvalidEnums(t *testing.T) {
	c, r := newTestContext(t)
	b := c.CreateBuffer()
	tex := c.CreateTexture()
	r.sent(c)
	tests := []struct {
		name string
		call func()
	}{
		{"Enable", func() { c.Enable(gl.TEXTURE_2D) }},
		{"Disable", func() { c.Disable(gl.LINES) }},
		{"BlendFunc", func() { c.BlendFunc(gl.TRIANGLES, gl.ONE) }},
		{"BlendEquation", func() { c.BlendEquation(gl.MIN_EXT) }},
		{"DepthFunc", func() { c.DepthFunc(gl.BLEND) }},
		{"CullFace", func() { c.CullFace(gl.LINES) }},
		{"FrontFace", func() { c.FrontFace(gl.FRONT) }},
		{"Hint", func() { c.Hint(gl.TEXTURE_2D, gl.NICEST) }},
		{"PixelStorei", func() { c.PixelStorei(gl.BLEND, 1) }},
		{"BindBuffer", func() { c.BindBuffer(gl.TEXTURE_2D, b) }},
		{"BindTexture", func() { c.BindTexture(gl.ARRAY_BUFFER, tex) }},
		{"ActiveTexture", func() { c.ActiveTexture(gl.TEXTURE0 + 100) }},
		{"CreateShader", func() { c.CreateShader(gl.TEXTURE_2D) }},
		{"DrawArrays", func() { c.DrawArrays(gl.BLEND, 0, 3) }},
		{"GetParameter", func() { c.GetParameter(gl.TEXTURE_2D) }},
		{"BindFramebuffer", func() { c.BindFramebuffer(gl.RENDERBUFFER, nil) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.call()
			checkError(t, c, gl.INVALID_ENUM)
			assert.Empty(t, r.sent(c))
		})
	}
	assert.Equal(t, defaultCapabilities, c.caps)
	assert.Zero(t, b.target)
	assert.Zero(t, tex.target)
	assert.Equal(t, 0, c.units.active)
}

func TestForeignObjects(t *testing.T) {
	r := newRecorder(t, testConfig())
	c1, c2 := r.newContext(t), r.newContext(t)
	b := c2.CreateBuffer()
	tex := c2.CreateTexture()
	p := c2.CreateProgram()
	r.sent(c2)

	c1.BindBuffer(gl.ARRAY_BUFFER, b)
	checkError(t, c1, gl.INVALID_OPERATION)
	c1.BindTexture(gl.TEXTURE_2D, tex)
	checkError(t, c1, gl.INVALID_OPERATION)
	c1.UseProgram(p)
	checkError(t, c1, gl.INVALID_OPERATION)
	c1.DeleteBuffer(b)
	checkError(t, c1, gl.INVALID_OPERATION)
	assert.Empty(t, r.sent(c1))

	assert.Nil(t, c1.arrayBuffer)
	assert.Nil(t, c1.GetParameter(gl.TEXTURE_BINDING_2D))
	assert.False(t, b.deleted)
	assert.Zero(t, b.target)
	assert.Zero(t, tex.target)
	assert.False(t, c1.IsBuffer(b))
}

func TestCapabilityChanges(t *testing.T) {
	c, r := newTestContext(t)
	assert.True(t, c.IsEnabled(gl.DITHER))
	c.Enable(gl.DITHER)
	c.Disable(gl.BLEND)
	assert.Empty(t, r.sent(c))

	c.Enable(gl.BLEND)
	c.Enable(gl.BLEND)
	c.Disable(gl.DITHER)
	assert.Equal(t, []command.Tag{command.TagEnable, command.TagDisable}, r.sent(c))
	assert.True(t, c.IsEnabled(gl.BLEND))
	assert.False(t, c.IsEnabled(gl.DITHER))
	assert.Equal(t, true, c.GetParameter(gl.BLEND))
	checkError(t, c, gl.NO_ERROR)
}

func TestResize(t *testing.T) {
	c, r := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(gl.TEXTURE_2D, tex)
	c.ClearColor(0, 0.5, 1, 1)
	c.Scissor(1, 1, 2, 2)
	r.sent(c)

	require.NoError(t, c.Resize(8, 6))
	cmds := r.commands(c)
	var tags []command.Tag
	for _, cmd := range cmds {
		tags = append(tags, cmd.Tag())
	}
	assert.Equal(t, []command.Tag{
		command.TagResize,
		command.TagClearColor,
		command.TagScissor,
		command.TagBindTexture,
		command.TagBindFramebuffer,
	}, tags)
	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, cmds[1].(command.ClearColor).Color)
	assert.Equal(t, command.Rect{X: 1, Y: 1, Width: 2, Height: 2}, cmds[2].(command.Scissor).Rect)
	assert.Equal(t, tex.ID(), cmds[3].(command.BindTexture).ID)
	assert.Zero(t, cmds[4].(command.BindFramebuffer).ID)
	assert.Equal(t, 8, c.DrawingBufferWidth())
	assert.Equal(t, 6, c.DrawingBufferHeight())
}

func TestResizeFailure(t *testing.T) {
	c, r := newTestContext(t)
	assert.Error(t, c.Resize(-1, 4))
	assert.Empty(t, r.sent(c))
	assert.Equal(t, 4, c.DrawingBufferWidth())
	assert.Equal(t, image.Pt(4, 4), c.size)
}

func TestContextLost(t *testing.T) {
	c, r := newTestContext(t)
	b := c.CreateBuffer()
	r.sent(c)
	r.lose()

	c.Clear(gl.COLOR_BUFFER_BIT)
	assert.True(t, c.IsContextLost())
	checkError(t, c, gl.CONTEXT_LOST_WEBGL)
	assert.Nil(t, c.CreateBuffer())
	assert.False(t, c.IsBuffer(b))
	checkError(t, c, gl.CONTEXT_LOST_WEBGL)
	assert.ErrorIs(t, c.Resize(8, 8), command.ErrContextLost)
	assert.Nil(t, c.GetSupportedExtensions())
	assert.Empty(t, r.sent(c))
}

func TestGetParameterCached(t *testing.T) {
	c, r := newTestContext(t)
	b := c.CreateBuffer()
	c.BindBuffer(gl.ARRAY_BUFFER, b)
	c.ClearColor(1, 0, 0, 1)
	c.Scissor(0, 1, 2, 3)
	r.sent(c)

	assert.Equal(t, b, c.GetParameter(gl.ARRAY_BUFFER_BINDING))
	assert.Nil(t, c.GetParameter(gl.FRAMEBUFFER_BINDING))
	assert.Equal(t, [4]float32{1, 0, 0, 1}, c.GetParameter(gl.COLOR_CLEAR_VALUE))
	assert.Equal(t, [4]int32{0, 1, 2, 3}, c.GetParameter(gl.SCISSOR_BOX))
	assert.Equal(t, gl.Enum(gl.TEXTURE0), c.GetParameter(gl.ACTIVE_TEXTURE))
	assert.Equal(t, int32(8), c.GetParameter(gl.MAX_VERTEX_ATTRIBS))
	assert.Equal(t, versionString, c.GetParameter(gl.VERSION))
	assert.Equal(t, int32(4), c.GetParameter(gl.UNPACK_ALIGNMENT))
	// Cached answers never reach the backend.
	assert.Empty(t, r.sent(c))

	assert.Equal(t, gl.Enum(gl.LESS), c.GetParameter(gl.DEPTH_FUNC))
	checkError(t, c, gl.NO_ERROR)
}
