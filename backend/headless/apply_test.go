// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
	"gioui.org/webgl/shm"
)

func newTestState(t *testing.T) (*Backend, *contextState) {
	t.Helper()
	b, err := New(DefaultConfig())
	require.NoError(t, err)
	s := newContextState(1, image.Pt(4, 4), command.Attributes{Alpha: true}, b.cfg.Limits)
	return b, s
}

// answer waits for the reply of a query applied in the calling goroutine.
func answer[T any](t *testing.T, r command.Reply[T]) T {
	t.Helper()
	v, err := r.Wait(nil)
	require.NoError(t, err)
	return v
}

func apply(b *Backend, s *contextState, cmds ...command.Command) {
	for _, cmd := range cmds {
		b.apply(s, cmd)
	}
}

func reasons(b *Backend) []string {
	var rs []string
	for _, v := range b.Violations() {
		rs = append(rs, v.Reason)
	}
	return rs
}

func linkTestProgram(t *testing.T, b *Backend, s *contextState) command.LinkInfo {
	t.Helper()
	vr := command.NewReply[command.CompileInfo]()
	fr := command.NewReply[command.CompileInfo]()
	lr := command.NewReply[command.LinkInfo]()
	apply(b, s,
		command.CreateShader{ID: 1, Type: gl.VERTEX_SHADER},
		command.CompileShader{ID: 1, Source: testVertexShader, Reply: vr},
		command.CreateShader{ID: 2, Type: gl.FRAGMENT_SHADER},
		command.CompileShader{ID: 2, Source: testFragmentShader, Reply: fr},
		command.CreateProgram{ID: 3},
		command.AttachShader{Program: 3, Shader: 1},
		command.AttachShader{Program: 3, Shader: 2},
		command.BindAttribLocation{Program: 3, Index: 2, Name: "pos"},
		command.LinkProgram{ID: 3, Reply: lr},
	)
	require.True(t, answer(t, vr).Compiled)
	require.True(t, answer(t, fr).Compiled)
	return answer(t, lr)
}

func TestLink(t *testing.T) {
	b, s := newTestState(t)
	info := linkTestProgram(t, b, s)
	require.True(t, info.Linked, info.Log)
	assert.Equal(t, []command.ActiveAttrib{
		{ActiveInfo: command.ActiveInfo{Name: "pos", Size: 1, Type: gl.FLOAT_VEC2}, Location: 2},
		{ActiveInfo: command.ActiveInfo{Name: "uv", Size: 1, Type: gl.FLOAT_VEC2}, Location: 0},
	}, info.Attribs)
	assert.Equal(t, []command.ActiveInfo{
		{Name: "mvp", Size: 1, Type: gl.FLOAT_MAT4},
		{Name: "colors[0]", Size: 3, Type: gl.FLOAT_VEC4},
		{Name: "tex", Size: 1, Type: gl.SAMPLER_2D},
	}, info.Uniforms)

	for name, want := range map[string]int32{
		"mvp": 0, "colors": 1, "colors[0]": 1, "colors[2]": 3, "tex": 4, "mvp[0]": -1, "colors[3]": -1, "nope": -1,
	} {
		r := command.NewReply[int32]()
		b.apply(s, command.GetUniformLocation{Program: 3, Name: name, Reply: r})
		assert.Equal(t, want, answer(t, r), name)
	}
	assert.Empty(t, b.Violations())
}

func TestLinkFailures(t *testing.T) {
	b, s := newTestState(t)
	lr := command.NewReply[command.LinkInfo]()
	apply(b, s,
		command.CreateShader{ID: 1, Type: gl.VERTEX_SHADER},
		command.CreateProgram{ID: 2},
		command.AttachShader{Program: 2, Shader: 1},
		command.LinkProgram{ID: 2, Reply: lr},
	)
	info := answer(t, lr)
	assert.False(t, info.Linked)
	assert.Equal(t, "missing shader", info.Log)

	// A binding past the attribute limit cannot be honored, and the
	// failed relink drops the old locations.
	b, s = newTestState(t)
	require.True(t, linkTestProgram(t, b, s).Linked)
	lr = command.NewReply[command.LinkInfo]()
	apply(b, s,
		command.BindAttribLocation{Program: 3, Index: 64, Name: "uv"},
		command.LinkProgram{ID: 3, Reply: lr},
	)
	info = answer(t, lr)
	assert.False(t, info.Linked)
	assert.Equal(t, "attribute uv: location 64 unavailable", info.Log)
	r := command.NewReply[int32]()
	b.apply(s, command.GetUniformLocation{Program: 3, Name: "mvp", Reply: r})
	_, err := r.Wait(nil)
	assert.ErrorIs(t, err, errUnanswerable)
}

func TestUniformValues(t *testing.T) {
	b, s := newTestState(t)
	require.True(t, linkTestProgram(t, b, s).Linked)
	apply(b, s,
		command.UseProgram{ID: 3},
		command.UniformFloat{Location: 2, Components: 4, Values: []float32{1, 2, 3, 4, 5, 6, 7, 8}},
		command.UniformInt{Location: 4, Components: 1, Values: []int32{1}},
	)
	r := command.NewReply[command.UniformValue]()
	b.apply(s, command.GetUniform{Program: 3, Location: 3, Type: gl.FLOAT_VEC4, Reply: r})
	assert.Equal(t, []float32{5, 6, 7, 8}, answer(t, r).Floats)
	r = command.NewReply[command.UniformValue]()
	b.apply(s, command.GetUniform{Program: 3, Location: 4, Type: gl.SAMPLER_2D, Reply: r})
	assert.Equal(t, []int32{1}, answer(t, r).Ints)
	// Unset uniforms read as zero.
	r = command.NewReply[command.UniformValue]()
	b.apply(s, command.GetUniform{Program: 3, Location: 0, Type: gl.FLOAT_MAT4, Reply: r})
	assert.Equal(t, make([]float32, 16), answer(t, r).Floats)
	assert.Empty(t, b.Violations())

	apply(b, s,
		command.UniformInt{Location: 0, Components: 1, Values: []int32{1}},
		command.UniformFloat{Location: 3, Components: 4, Values: []float32{1, 2, 3, 4, 5, 6, 7, 8}},
		command.UniformFloat{Location: 1, Components: 3, Values: []float32{1, 2, 3}},
	)
	assert.Len(t, b.Violations(), 3)
}

func TestDeleteReferenced(t *testing.T) {
	b, s := newTestState(t)
	require.True(t, linkTestProgram(t, b, s).Linked)
	apply(b, s,
		command.CreateBuffer{ID: 10},
		command.CreateVertexArray{ID: 11},
		command.BindVertexArray{ID: 11},
		command.BindBuffer{Target: gl.ELEMENT_ARRAY_BUFFER, ID: 10},
		command.BindVertexArray{ID: 0},
		command.DeleteBuffer{ID: 10},
		command.DeleteShader{ID: 1},
	)
	assert.Equal(t, []string{
		"buffer 10 deleted while bound to element array of vertex array 11",
		"shader 1 deleted while attached to program 3",
	}, reasons(b))
}

func TestDeleteUnbinds(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateBuffer{ID: 1},
		command.BindBuffer{Target: gl.ARRAY_BUFFER, ID: 1},
		command.VertexAttribPointer{Index: 0, Size: 2, Type: gl.FLOAT},
		command.CreateTexture{ID: 2},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 2},
		command.DeleteBuffer{ID: 1},
		command.DeleteTexture{ID: 2},
	)
	assert.Empty(t, b.Violations())
	assert.Zero(t, s.arrayBuffer)
	assert.Zero(t, s.currentVAO().attribs[0].buffer)
	assert.Zero(t, s.units[0][0])
}

func TestProtocolViolations(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.DeleteBuffer{ID: 7},
		command.CreateBuffer{ID: 1},
		command.CreateBuffer{ID: 1},
		command.BindBuffer{Target: gl.ARRAY_BUFFER, ID: 1},
		command.BindBuffer{Target: gl.ELEMENT_ARRAY_BUFFER, ID: 1},
		command.BindFramebuffer{Target: gl.FRAMEBUFFER, ID: 5},
		command.DrawArrays{Mode: gl.TRIANGLES, Count: 3},
		command.ActiveTexture{Unit: gl.TEXTURE0 + 8},
	)
	assert.Equal(t, []string{
		"unknown buffer 7",
		"buffer 1 exists",
		"buffer 1 rebound from 0x8892 to 0x8893",
		"unknown framebuffer 5",
		"no linked program in use",
		"texture unit 0x84c8 out of range",
	}, reasons(b))
	v := b.Violations()[0]
	assert.Equal(t, command.TagDeleteBuffer, v.Tag)
	assert.Equal(t, "headless: context 1: DeleteBuffer: unknown buffer 7", v.Error())
	assert.Zero(t, b.Stats().Draws)
}

func TestGetParameter(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.BlendFuncSeparate{SrcRGB: gl.SRC_ALPHA, DstRGB: gl.ONE_MINUS_SRC_ALPHA, SrcAlpha: gl.ONE, DstAlpha: gl.ZERO},
		command.StencilMaskSeparate{Face: gl.BACK, Mask: 0xf},
		command.DepthRange{Near: -1, Far: 0.5},
	)
	get := func(param gl.Enum) (command.ParamValue, error) {
		r := command.NewReply[command.ParamValue]()
		b.apply(s, command.GetParameter{Param: param, Reply: r})
		return r.Wait(nil)
	}
	v, err := get(gl.BLEND_DST_RGB)
	require.NoError(t, err)
	assert.Equal(t, int32(gl.ONE_MINUS_SRC_ALPHA), v.Ints[0])
	v, err = get(gl.STENCIL_WRITEMASK)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v.Ints[0])
	v, err = get(gl.STENCIL_BACK_WRITEMASK)
	require.NoError(t, err)
	assert.Equal(t, int32(0xf), v.Ints[0])
	v, err = get(gl.DEPTH_RANGE)
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 0.5, 0, 0}, v.Floats)
	v, err = get(gl.VIEWPORT)
	require.NoError(t, err)
	assert.Equal(t, [4]int32{0, 0, 4, 4}, v.Ints)

	_, err = get(gl.TEXTURE_2D)
	assert.ErrorIs(t, err, errUnanswerable)
	assert.Equal(t, []string{"unknown parameter 0xde1"}, reasons(b))
}

func readBack(t *testing.T, b *Backend, s *contextState, rect command.Rect) []byte {
	t.Helper()
	r := command.NewReply[*shm.Buffer]()
	b.apply(s, command.ReadPixels{Rect: rect, Format: gl.RGBA, Type: gl.UNSIGNED_BYTE, Reply: r})
	buf := answer(t, r)
	defer buf.Close()
	return append([]byte(nil), buf.Bytes()...)
}

func TestScissoredClear(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.ClearColor{Color: [4]float32{0, 1, 0, 1}},
		command.Enable{Cap: gl.SCISSOR_TEST},
		command.Scissor{Rect: command.Rect{X: 0, Y: 0, Width: 2, Height: 1}},
		command.Clear{Mask: gl.COLOR_BUFFER_BIT},
	)
	pix := readBack(t, b, s, command.Rect{X: 0, Y: 0, Width: 3, Height: 2})
	green := []byte{0, 0xff, 0, 0xff}
	zero := []byte{0, 0, 0, 0}
	assert.Equal(t, concat(green, green, zero, zero, zero, zero), pix)

	// Reads outside the drawing buffer are zero.
	pix = readBack(t, b, s, command.Rect{X: 3, Y: 3, Width: 2, Height: 1})
	assert.Equal(t, concat(zero, zero), pix)
	assert.Empty(t, b.Violations())
}

func concat(pixels ...[]byte) []byte {
	var out []byte
	for _, p := range pixels {
		out = append(out, p...)
	}
	return out
}

func sharedPixels(t *testing.T, pix []byte) *shm.Buffer {
	t.Helper()
	buf, err := shm.FromBytes(pix)
	require.NoError(t, err)
	return buf
}

func texImageCmd(t *testing.T, pix []byte, w, h int32, flipY bool, alpha command.AlphaTreatment) command.TexImage2D {
	t.Helper()
	return command.TexImage2D{
		Target: gl.TEXTURE_2D, InternalFormat: gl.RGBA, Width: w, Height: h,
		Format: gl.RGBA, Type: gl.UNSIGNED_BYTE, Pixels: sharedPixels(t, pix), UnpackAlignment: 4,
		FlipY: flipY, Alpha: alpha,
	}
}

func TestTextureFramebuffer(t *testing.T) {
	b, s := newTestState(t)
	red := []byte{0xff, 0, 0, 0xff}
	blue := []byte{0, 0, 0xff, 0xff}
	up := texImageCmd(t, concat(red, red, blue, blue), 2, 2, true, command.AlphaNone)
	apply(b, s,
		command.CreateTexture{ID: 1},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 1},
		up,
		command.CreateFramebuffer{ID: 2},
		command.BindFramebuffer{Target: gl.FRAMEBUFFER, ID: 2},
		command.FramebufferTexture2D{Target: gl.FRAMEBUFFER, Attachment: gl.COLOR_ATTACHMENT0, TexTarget: gl.TEXTURE_2D, ID: 1},
	)
	assert.Nil(t, up.Pixels.Bytes(), "upload buffer must be closed")
	// Flipped rows: the last uploaded row is GL row 0.
	assert.Equal(t, concat(blue, blue, red, red), readBack(t, b, s, command.Rect{Width: 2, Height: 2}))

	b.apply(s, command.TexSubImage2D{
		Target: gl.TEXTURE_2D, X: 1, Y: 0, Width: 1, Height: 1,
		Format: gl.RGBA, Type: gl.UNSIGNED_BYTE, Pixels: sharedPixels(t, red), UnpackAlignment: 4,
	})
	assert.Equal(t, concat(blue, red), readBack(t, b, s, command.Rect{Width: 2, Height: 1}))

	r := command.NewReply[int32]()
	b.apply(s, command.GetFramebufferAttachmentParameter{
		Target: gl.FRAMEBUFFER, Attachment: gl.COLOR_ATTACHMENT0, Param: gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL, Reply: r,
	})
	assert.Equal(t, int32(0), answer(t, r))
	assert.Empty(t, b.Violations())

	b.apply(s, command.FramebufferTexture2D{Target: gl.FRAMEBUFFER, Attachment: gl.COLOR_ATTACHMENT0, TexTarget: gl.TEXTURE_2D})
	b.apply(s, command.Clear{Mask: gl.COLOR_BUFFER_BIT})
	assert.Equal(t, []string{"framebuffer 2 has no attachments"}, reasons(b))
}

func TestPremultiply(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateTexture{ID: 1},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 1},
		texImageCmd(t, []byte{0xff, 0, 0, 0x80}, 1, 1, false, command.AlphaPremultiply),
	)
	img := s.textures[1].images[imageKey{gl.TEXTURE_2D, 0}]
	require.NotNil(t, img)
	assert.Equal(t, []byte{0x80, 0, 0, 0x80}, img.rgba.Pix)
}

func TestShortUpload(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateTexture{ID: 1},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 1},
		texImageCmd(t, make([]byte, 12), 2, 2, false, command.AlphaNone),
	)
	require.Len(t, b.Violations(), 1)
	assert.Empty(t, s.textures[1].images)
}

func TestGenerateMipmap(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateTexture{ID: 1},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 1},
		texImageCmd(t, make([]byte, 4*3*4), 4, 3, false, command.AlphaNone),
		command.GenerateMipmap{Target: gl.TEXTURE_2D},
	)
	images := s.textures[1].images
	require.Len(t, images, 3)
	assert.Equal(t, int32(2), images[imageKey{gl.TEXTURE_2D, 1}].width)
	assert.Equal(t, int32(1), images[imageKey{gl.TEXTURE_2D, 1}].height)
	assert.Equal(t, int32(1), images[imageKey{gl.TEXTURE_2D, 2}].width)
}

func TestRenderbufferParameters(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateRenderbuffer{ID: 1},
		command.BindRenderbuffer{Target: gl.RENDERBUFFER, ID: 1},
		command.RenderbufferStorage{Target: gl.RENDERBUFFER, InternalFormat: gl.RGB565, Width: 3, Height: 2},
	)
	for param, want := range map[gl.Enum]int32{
		gl.RENDERBUFFER_WIDTH:           3,
		gl.RENDERBUFFER_HEIGHT:          2,
		gl.RENDERBUFFER_INTERNAL_FORMAT: gl.RGB565,
		gl.RENDERBUFFER_GREEN_SIZE:      6,
		gl.RENDERBUFFER_ALPHA_SIZE:      0,
	} {
		r := command.NewReply[int32]()
		b.apply(s, command.GetRenderbufferParameter{Target: gl.RENDERBUFFER, Param: param, Reply: r})
		assert.Equal(t, want, answer(t, r), param.String())
	}
	assert.NotNil(t, s.renderbuffers[1].color)
}

func TestDraw(t *testing.T) {
	b, s := newTestState(t)
	require.True(t, linkTestProgram(t, b, s).Linked)
	apply(b, s,
		command.UseProgram{ID: 3},
		command.EnableVertexAttribArray{Index: 2},
		command.DrawArrays{Mode: gl.TRIANGLES, Count: 3},
	)
	assert.Equal(t, []string{"enabled attribute 2 has no buffer"}, reasons(b))
	apply(b, s,
		command.CreateBuffer{ID: 20},
		command.BindBuffer{Target: gl.ARRAY_BUFFER, ID: 20},
		command.BufferData{Target: gl.ARRAY_BUFFER, Data: make([]byte, 24), Usage: gl.STATIC_DRAW},
		command.VertexAttribPointer{Index: 2, Size: 2, Type: gl.FLOAT},
		command.DrawArrays{Mode: gl.TRIANGLES, Count: 3},
		command.DrawElements{Mode: gl.TRIANGLES, Count: 3, Type: gl.UNSIGNED_SHORT},
	)
	assert.Equal(t, 1, b.Stats().Draws)
	assert.Len(t, b.Violations(), 2)
	assert.Equal(t, "no element array buffer bound", b.Violations()[1].Reason)
}

func TestCurrentVertexAttrib(t *testing.T) {
	b, s := newTestState(t)
	r := command.NewReply[[4]float32]()
	b.apply(s, command.GetCurrentVertexAttrib{Index: 1, Reply: r})
	assert.Equal(t, [4]float32{0, 0, 0, 1}, answer(t, r))
	b.apply(s, command.VertexAttrib{Index: 1, Value: [4]float32{1, 2, 3, 4}})
	r = command.NewReply[[4]float32]()
	b.apply(s, command.GetCurrentVertexAttrib{Index: 1, Reply: r})
	assert.Equal(t, [4]float32{1, 2, 3, 4}, answer(t, r))

	r = command.NewReply[[4]float32]()
	b.apply(s, command.GetCurrentVertexAttrib{Index: 8, Reply: r})
	_, err := r.Wait(nil)
	assert.ErrorIs(t, err, errUnanswerable)
}

func TestOutOfRangeUpdates(t *testing.T) {
	b, s := newTestState(t)
	apply(b, s,
		command.CreateBuffer{ID: 1},
		command.BindBuffer{Target: gl.ARRAY_BUFFER, ID: 1},
		command.BufferData{Target: gl.ARRAY_BUFFER, Data: make([]byte, 8), Usage: gl.STATIC_DRAW},
		command.BufferSubData{Target: gl.ARRAY_BUFFER, Offset: math.MaxInt, Data: []byte{1, 2}},
		command.CreateTexture{ID: 2},
		command.BindTexture{Target: gl.TEXTURE_2D, ID: 2},
		texImageCmd(t, make([]byte, 16), 2, 2, false, command.AlphaNone),
		command.TexSubImage2D{
			Target: gl.TEXTURE_2D, X: math.MaxInt32, Width: 1, Height: 1,
			Format: gl.RGBA, Type: gl.UNSIGNED_BYTE, Pixels: sharedPixels(t, make([]byte, 4)), UnpackAlignment: 4,
		},
	)
	rs := reasons(b)
	require.Len(t, rs, 2)
	assert.Contains(t, rs[0], "outside buffer of 8 bytes")
	assert.Contains(t, rs[1], "outside 2x2 image")
}
