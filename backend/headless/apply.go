// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// apply executes cmd against s.
func (b *Backend) apply(s *contextState, cmd command.Command) {
	tag := cmd.Tag()
	bad := func(format string, args ...any) {
		b.violate(s, tag, format, args...)
	}
	switch cmd := cmd.(type) {
	case command.Resize:
		s.size = clampSize(cmd.Size, b.cfg.Limits)
		s.colorBuffer = image.NewRGBA(image.Rectangle{Max: s.size})
		cmd.Send(struct{}{})
	case command.GetContextAttributes:
		cmd.Send(s.attrs)
	case command.GetDrawingBufferSize:
		cmd.Send(s.size)
	case command.GetExtensions:
		cmd.Send(append([]string(nil), b.cfg.Extensions...))
	case command.Finish:
		cmd.Send(struct{}{})
	case command.Flush:

	// Object lifetime.
	case command.CreateBuffer:
		if create(s.buffers, cmd.ID, &buffer{}) {
			bad("buffer %d exists", cmd.ID)
		}
	case command.CreateTexture:
		if create(s.textures, cmd.ID, newTexture()) {
			bad("texture %d exists", cmd.ID)
		}
	case command.CreateRenderbuffer:
		if create(s.renderbuffers, cmd.ID, &renderbuffer{internalFormat: gl.RGBA4}) {
			bad("renderbuffer %d exists", cmd.ID)
		}
	case command.CreateFramebuffer:
		if create(s.framebuffers, cmd.ID, &framebuffer{attachments: make(map[gl.Enum]fbAttachment)}) {
			bad("framebuffer %d exists", cmd.ID)
		}
	case command.CreateProgram:
		if create(s.programs, cmd.ID, &program{bindings: make(map[string]uint32)}) {
			bad("program %d exists", cmd.ID)
		}
	case command.CreateShader:
		if create(s.shaders, cmd.ID, &shader{typ: cmd.Type}) {
			bad("shader %d exists", cmd.ID)
		}
	case command.CreateVertexArray:
		if create(s.vaos, cmd.ID, &vertexArray{attribs: make([]vertexAttrib, b.cfg.Limits.MaxVertexAttribs)}) {
			bad("vertex array %d exists", cmd.ID)
		}
	case command.DeleteBuffer:
		if s.buffers[cmd.ID] == nil {
			bad("unknown buffer %d", cmd.ID)
			return
		}
		if ref := s.bufferReferences(cmd.ID); ref != "" {
			bad("buffer %d deleted while bound to %s", cmd.ID, ref)
		}
		if s.arrayBuffer == cmd.ID {
			s.arrayBuffer = 0
		}
		vao := s.currentVAO()
		if vao.elements == cmd.ID {
			vao.elements = 0
		}
		for i := range vao.attribs {
			if vao.attribs[i].buffer == cmd.ID {
				vao.attribs[i].buffer = 0
			}
		}
		delete(s.buffers, cmd.ID)
	case command.DeleteTexture:
		if s.textures[cmd.ID] == nil {
			bad("unknown texture %d", cmd.ID)
			return
		}
		if ref := s.attachmentReferences(func(a fbAttachment) bool { return a.texture == cmd.ID }); ref != "" {
			bad("texture %d deleted while bound to %s", cmd.ID, ref)
		}
		for i := range s.units {
			for j := range s.units[i] {
				if s.units[i][j] == cmd.ID {
					s.units[i][j] = 0
				}
			}
		}
		s.detach(func(a fbAttachment) bool { return a.texture == cmd.ID })
		delete(s.textures, cmd.ID)
	case command.DeleteRenderbuffer:
		if s.renderbuffers[cmd.ID] == nil {
			bad("unknown renderbuffer %d", cmd.ID)
			return
		}
		if ref := s.attachmentReferences(func(a fbAttachment) bool { return a.renderbuffer == cmd.ID }); ref != "" {
			bad("renderbuffer %d deleted while bound to %s", cmd.ID, ref)
		}
		if s.renderbuffer == cmd.ID {
			s.renderbuffer = 0
		}
		s.detach(func(a fbAttachment) bool { return a.renderbuffer == cmd.ID })
		delete(s.renderbuffers, cmd.ID)
	case command.DeleteFramebuffer:
		if s.framebuffers[cmd.ID] == nil {
			bad("unknown framebuffer %d", cmd.ID)
			return
		}
		if s.framebuffer == cmd.ID {
			s.framebuffer = 0
		}
		delete(s.framebuffers, cmd.ID)
	case command.DeleteProgram:
		if s.programs[cmd.ID] == nil {
			bad("unknown program %d", cmd.ID)
			return
		}
		if s.program == cmd.ID {
			bad("program %d deleted while in use", cmd.ID)
			s.program = 0
		}
		delete(s.programs, cmd.ID)
	case command.DeleteShader:
		if s.shaders[cmd.ID] == nil {
			bad("unknown shader %d", cmd.ID)
			return
		}
		for pid, p := range s.programs {
			for _, id := range p.shaders {
				if id == cmd.ID {
					bad("shader %d deleted while attached to program %d", cmd.ID, pid)
				}
			}
		}
		delete(s.shaders, cmd.ID)
	case command.DeleteVertexArray:
		if cmd.ID == 0 || s.vaos[cmd.ID] == nil {
			bad("unknown vertex array %d", cmd.ID)
			return
		}
		if s.vao == cmd.ID {
			s.vao = 0
		}
		delete(s.vaos, cmd.ID)

	// Bindings.
	case command.ActiveTexture:
		unit := int(cmd.Unit) - gl.TEXTURE0
		if unit < 0 || unit >= len(s.units) {
			bad("texture unit %v out of range", cmd.Unit)
			return
		}
		s.activeUnit = unit
	case command.BindBuffer:
		buf := s.buffers[cmd.ID]
		if cmd.ID != 0 {
			if buf == nil {
				bad("unknown buffer %d", cmd.ID)
				return
			}
			if buf.target != 0 && buf.target != cmd.Target {
				bad("buffer %d rebound from %v to %v", cmd.ID, buf.target, cmd.Target)
				return
			}
			buf.target = cmd.Target
		}
		switch cmd.Target {
		case gl.ARRAY_BUFFER:
			s.arrayBuffer = cmd.ID
		case gl.ELEMENT_ARRAY_BUFFER:
			s.currentVAO().elements = cmd.ID
		default:
			bad("invalid buffer target %v", cmd.Target)
		}
	case command.BindTexture:
		slot := 0
		switch cmd.Target {
		case gl.TEXTURE_2D:
		case gl.TEXTURE_CUBE_MAP:
			slot = 1
		default:
			bad("invalid texture target %v", cmd.Target)
			return
		}
		if cmd.ID != 0 {
			t := s.textures[cmd.ID]
			if t == nil {
				bad("unknown texture %d", cmd.ID)
				return
			}
			if t.target != 0 && t.target != cmd.Target {
				bad("texture %d rebound from %v to %v", cmd.ID, t.target, cmd.Target)
				return
			}
			t.target = cmd.Target
		}
		s.units[s.activeUnit][slot] = cmd.ID
	case command.BindFramebuffer:
		if cmd.ID != 0 && s.framebuffers[cmd.ID] == nil {
			bad("unknown framebuffer %d", cmd.ID)
			return
		}
		s.framebuffer = cmd.ID
	case command.BindRenderbuffer:
		if cmd.ID != 0 && s.renderbuffers[cmd.ID] == nil {
			bad("unknown renderbuffer %d", cmd.ID)
			return
		}
		s.renderbuffer = cmd.ID
	case command.BindVertexArray:
		if s.vaos[cmd.ID] == nil {
			bad("unknown vertex array %d", cmd.ID)
			return
		}
		s.vao = cmd.ID
	case command.UseProgram:
		if cmd.ID != 0 {
			p := s.programs[cmd.ID]
			if p == nil {
				bad("unknown program %d", cmd.ID)
				return
			}
			if !p.linked {
				bad("program %d is not linked", cmd.ID)
			}
		}
		s.program = cmd.ID

	// Buffer contents.
	case command.BufferData:
		buf := s.boundBuffer(cmd.Target)
		if buf == nil {
			bad("no buffer bound to %v", cmd.Target)
			return
		}
		buf.data = cmd.Data
		buf.usage = cmd.Usage
	case command.BufferSubData:
		buf := s.boundBuffer(cmd.Target)
		if buf == nil {
			bad("no buffer bound to %v", cmd.Target)
			return
		}
		if cmd.Offset < 0 || cmd.Offset > len(buf.data) || len(cmd.Data) > len(buf.data)-cmd.Offset {
			bad("range %d+%d outside buffer of %d bytes", cmd.Offset, len(cmd.Data), len(buf.data))
			return
		}
		copy(buf.data[cmd.Offset:], cmd.Data)

	// Fixed function state.
	case command.BlendColor:
		s.params[gl.BLEND_COLOR] = floats(cmd.Color[:]...)
	case command.BlendEquation:
		s.params[gl.BLEND_EQUATION_RGB] = ints(int32(cmd.Mode))
		s.params[gl.BLEND_EQUATION_ALPHA] = ints(int32(cmd.Mode))
	case command.BlendEquationSeparate:
		s.params[gl.BLEND_EQUATION_RGB] = ints(int32(cmd.RGB))
		s.params[gl.BLEND_EQUATION_ALPHA] = ints(int32(cmd.Alpha))
	case command.BlendFunc:
		s.params[gl.BLEND_SRC_RGB] = ints(int32(cmd.Src))
		s.params[gl.BLEND_SRC_ALPHA] = ints(int32(cmd.Src))
		s.params[gl.BLEND_DST_RGB] = ints(int32(cmd.Dst))
		s.params[gl.BLEND_DST_ALPHA] = ints(int32(cmd.Dst))
	case command.BlendFuncSeparate:
		s.params[gl.BLEND_SRC_RGB] = ints(int32(cmd.SrcRGB))
		s.params[gl.BLEND_SRC_ALPHA] = ints(int32(cmd.SrcAlpha))
		s.params[gl.BLEND_DST_RGB] = ints(int32(cmd.DstRGB))
		s.params[gl.BLEND_DST_ALPHA] = ints(int32(cmd.DstAlpha))
	case command.ClearColor:
		s.clearColor = cmd.Color
	case command.ClearDepth:
		s.params[gl.DEPTH_CLEAR_VALUE] = floats(cmd.Depth)
	case command.ClearStencil:
		s.params[gl.STENCIL_CLEAR_VALUE] = ints(cmd.Stencil)
	case command.ColorMask:
		s.params[gl.COLOR_WRITEMASK] = bools(cmd.Mask[:]...)
	case command.CullFace:
		s.params[gl.CULL_FACE_MODE] = ints(int32(cmd.Mode))
	case command.DepthFunc:
		s.params[gl.DEPTH_FUNC] = ints(int32(cmd.Func))
	case command.DepthMask:
		s.params[gl.DEPTH_WRITEMASK] = bools(cmd.Flag)
	case command.DepthRange:
		if cmd.Near > cmd.Far {
			bad("depth range %v > %v", cmd.Near, cmd.Far)
			return
		}
		s.params[gl.DEPTH_RANGE] = floats(clamp01(cmd.Near), clamp01(cmd.Far))
	case command.Enable:
		s.enabled[cmd.Cap] = true
	case command.Disable:
		s.enabled[cmd.Cap] = false
	case command.FrontFace:
		s.params[gl.FRONT_FACE] = ints(int32(cmd.Mode))
	case command.Hint:
		s.params[cmd.Target] = ints(int32(cmd.Mode))
	case command.LineWidth:
		if !(cmd.Width > 0) {
			bad("line width %v", cmd.Width)
			return
		}
		s.params[gl.LINE_WIDTH] = floats(cmd.Width)
	case command.PolygonOffset:
		s.params[gl.POLYGON_OFFSET_FACTOR] = floats(cmd.Factor)
		s.params[gl.POLYGON_OFFSET_UNITS] = floats(cmd.Units)
	case command.SampleCoverage:
		s.params[gl.SAMPLE_COVERAGE_VALUE] = floats(clamp01(cmd.Value))
		s.params[gl.SAMPLE_COVERAGE_INVERT] = bools(cmd.Invert)
	case command.Scissor:
		if cmd.Rect.Width < 0 || cmd.Rect.Height < 0 {
			bad("negative scissor size")
			return
		}
		s.params[gl.SCISSOR_BOX] = ints(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case command.Viewport:
		if cmd.Rect.Width < 0 || cmd.Rect.Height < 0 {
			bad("negative viewport size")
			return
		}
		s.params[gl.VIEWPORT] = ints(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case command.StencilFunc:
		s.stencilFunc(gl.FRONT_AND_BACK, cmd.Func, cmd.Ref, cmd.Mask)
	case command.StencilFuncSeparate:
		s.stencilFunc(cmd.Face, cmd.Func, cmd.Ref, cmd.Mask)
	case command.StencilMask:
		s.stencilMask(gl.FRONT_AND_BACK, cmd.Mask)
	case command.StencilMaskSeparate:
		s.stencilMask(cmd.Face, cmd.Mask)
	case command.StencilOp:
		s.stencilOp(gl.FRONT_AND_BACK, cmd.Fail, cmd.ZFail, cmd.ZPass)
	case command.StencilOpSeparate:
		s.stencilOp(cmd.Face, cmd.Fail, cmd.ZFail, cmd.ZPass)
	case command.Clear:
		if msg := s.framebufferProblem(); msg != "" {
			bad("%s", msg)
			return
		}
		if cmd.Mask&gl.COLOR_BUFFER_BIT != 0 {
			s.clear()
		}

	// Framebuffers.
	case command.FramebufferRenderbuffer:
		fb := s.framebuffers[s.framebuffer]
		if fb == nil {
			bad("no framebuffer bound")
			return
		}
		if cmd.ID != 0 && s.renderbuffers[cmd.ID] == nil {
			bad("unknown renderbuffer %d", cmd.ID)
			return
		}
		s.attach(fb, cmd.Attachment, fbAttachment{renderbuffer: cmd.ID})
	case command.FramebufferTexture2D:
		fb := s.framebuffers[s.framebuffer]
		if fb == nil {
			bad("no framebuffer bound")
			return
		}
		if cmd.ID != 0 && s.textures[cmd.ID] == nil {
			bad("unknown texture %d", cmd.ID)
			return
		}
		if cmd.ID != 0 && cmd.Level != 0 {
			bad("attachment level %d", cmd.Level)
			return
		}
		s.attach(fb, cmd.Attachment, fbAttachment{texture: cmd.ID, texTarget: cmd.TexTarget, level: cmd.Level})
	case command.RenderbufferStorage:
		r := s.renderbuffers[s.renderbuffer]
		if r == nil {
			bad("no renderbuffer bound")
			return
		}
		r.internalFormat, r.width, r.height = cmd.InternalFormat, cmd.Width, cmd.Height
		r.color = nil
		if isColorRenderbuffer(cmd.InternalFormat) {
			r.color = image.NewRGBA(image.Rect(0, 0, int(cmd.Width), int(cmd.Height)))
		}
	case command.InitializeFramebuffer:
		if s.framebuffers[s.framebuffer] == nil {
			bad("no framebuffer to initialize")
			return
		}
		if img := s.colorTarget(); cmd.Color && img != nil {
			clear(img.Pix)
		}
	case command.GetFramebufferAttachmentParameter:
		fb := s.framebuffers[s.framebuffer]
		if fb == nil {
			bad("no framebuffer bound")
			cmd.Fail(errUnanswerable)
			return
		}
		a := fb.attachments[cmd.Attachment]
		switch cmd.Param {
		case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
			cmd.Send(a.level)
		case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE:
			if a.texTarget == gl.TEXTURE_2D {
				cmd.Send(0)
			} else {
				cmd.Send(int32(a.texTarget))
			}
		default:
			bad("attachment parameter %v", cmd.Param)
			cmd.Fail(errUnanswerable)
		}
	case command.GetRenderbufferParameter:
		r := s.renderbuffers[s.renderbuffer]
		if r == nil {
			bad("no renderbuffer bound")
			cmd.Fail(errUnanswerable)
			return
		}
		v, ok := renderbufferParam(r, cmd.Param)
		if !ok {
			bad("renderbuffer parameter %v", cmd.Param)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(v)

	// Textures.
	case command.TexImage2D:
		defer closePixels(cmd.Pixels)
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		img, err := decodeImage(cmd.Width, cmd.Height, cmd.Format, cmd.Type, cmd.Pixels.Bytes(), cmd.UnpackAlignment, cmd.FlipY, cmd.Alpha)
		if err != nil {
			bad("%v", err)
			return
		}
		img.internalFormat = cmd.InternalFormat
		t.images[imageKey{cmd.Target, cmd.Level}] = img
	case command.TexSubImage2D:
		defer closePixels(cmd.Pixels)
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		dst := t.images[imageKey{cmd.Target, cmd.Level}]
		if dst == nil {
			bad("level %d of %v has no image", cmd.Level, cmd.Target)
			return
		}
		src, err := decodeImage(cmd.Width, cmd.Height, cmd.Format, cmd.Type, cmd.Pixels.Bytes(), cmd.UnpackAlignment, cmd.FlipY, cmd.Alpha)
		if err != nil {
			bad("%v", err)
			return
		}
		if err := dst.update(cmd.X, cmd.Y, src); err != nil {
			bad("%v", err)
		}
	case command.CompressedTexImage2D:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		t.images[imageKey{cmd.Target, cmd.Level}] = &texImage{
			width: cmd.Width, height: cmd.Height, internalFormat: cmd.InternalFormat, format: cmd.InternalFormat,
			raw: cmd.Data,
		}
	case command.CompressedTexSubImage2D:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		img := t.images[imageKey{cmd.Target, cmd.Level}]
		if img == nil || img.internalFormat != cmd.Format {
			bad("compressed update of a different format")
		}
	case command.CopyTexImage2D:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		if msg := s.framebufferProblem(); msg != "" {
			bad("%s", msg)
			return
		}
		img := &texImage{width: cmd.Rect.Width, height: cmd.Rect.Height, internalFormat: cmd.InternalFormat, format: cmd.InternalFormat, typ: gl.UNSIGNED_BYTE}
		img.rgba = image.NewRGBA(image.Rect(0, 0, int(cmd.Rect.Width), int(cmd.Rect.Height)))
		if src := s.colorTarget(); src != nil {
			copyRect(img.rgba, image.Point{}, src, cmd.Rect.Image())
		}
		t.images[imageKey{cmd.Target, cmd.Level}] = img
	case command.CopyTexSubImage2D:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		dst := t.images[imageKey{cmd.Target, cmd.Level}]
		if dst == nil {
			bad("level %d of %v has no image", cmd.Level, cmd.Target)
			return
		}
		if src := s.colorTarget(); src != nil && dst.rgba != nil {
			copyRect(dst.rgba, image.Pt(int(cmd.XOffset), int(cmd.YOffset)), src, cmd.Rect.Image())
		}
	case command.GenerateMipmap:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			return
		}
		t.generateMipmaps(cmd.Target)
	case command.TexParameterf:
		if t, _ := s.boundTexture(cmd.Target); t != nil {
			t.params[cmd.Param] = cmd.Value
		} else {
			bad("no texture bound to %v", cmd.Target)
		}
	case command.TexParameteri:
		if t, _ := s.boundTexture(cmd.Target); t != nil {
			t.params[cmd.Param] = float32(cmd.Value)
		} else {
			bad("no texture bound to %v", cmd.Target)
		}
	case command.GetTexParameterInt:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(int32(t.params[cmd.Param]))
	case command.GetTexParameterFloat:
		t, _ := s.boundTexture(cmd.Target)
		if t == nil {
			bad("no texture bound to %v", cmd.Target)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(t.params[cmd.Param])

	// Programs and shaders.
	case command.AttachShader:
		p, sh := s.programs[cmd.Program], s.shaders[cmd.Shader]
		if p == nil || sh == nil {
			bad("unknown program %d or shader %d", cmd.Program, cmd.Shader)
			return
		}
		p.shaders = append(p.shaders, cmd.Shader)
	case command.DetachShader:
		p := s.programs[cmd.Program]
		if p == nil {
			bad("unknown program %d", cmd.Program)
			return
		}
		n := len(p.shaders)
		p.shaders = deleteID(p.shaders, cmd.Shader)
		if len(p.shaders) == n {
			bad("shader %d is not attached to program %d", cmd.Shader, cmd.Program)
		}
	case command.BindAttribLocation:
		p := s.programs[cmd.Program]
		if p == nil {
			bad("unknown program %d", cmd.Program)
			return
		}
		p.bindings[cmd.Name] = cmd.Index
	case command.CompileShader:
		sh := s.shaders[cmd.ID]
		if sh == nil {
			bad("unknown shader %d", cmd.ID)
			cmd.Fail(errUnanswerable)
			return
		}
		iface, err := scanShader(sh.typ, cmd.Source)
		sh.compiled = err == nil
		sh.iface = iface
		info := command.CompileInfo{Compiled: sh.compiled}
		if err != nil {
			info.Log = err.Error()
		}
		cmd.Send(info)
	case command.LinkProgram:
		p := s.programs[cmd.ID]
		if p == nil {
			bad("unknown program %d", cmd.ID)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(s.link(p, b.cfg.Limits.MaxVertexAttribs))
	case command.ValidateProgram:
		if p := s.programs[cmd.ID]; p != nil {
			p.validated = p.linked
		} else {
			bad("unknown program %d", cmd.ID)
		}
	case command.GetProgramValidateStatus:
		p := s.programs[cmd.ID]
		if p == nil {
			bad("unknown program %d", cmd.ID)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(p.validated)
	case command.GetShaderPrecisionFormat:
		cmd.Send(precisionFormat(cmd.PrecisionType))
	case command.GetUniformLocation:
		p := s.programs[cmd.Program]
		if p == nil || !p.linked {
			bad("program %d is not linked", cmd.Program)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(p.uniformLocation(cmd.Name))
	case command.UniformFloat:
		if msg := s.setUniform(cmd.Location, cmd.Components, nil, cmd.Values); msg != "" {
			bad("%s", msg)
		}
	case command.UniformInt:
		if msg := s.setUniform(cmd.Location, cmd.Components, cmd.Values, nil); msg != "" {
			bad("%s", msg)
		}
	case command.UniformMatrix:
		if msg := s.setUniform(cmd.Location, cmd.Dim*cmd.Dim, nil, cmd.Values); msg != "" {
			bad("%s", msg)
		}
	case command.GetUniform:
		p := s.programs[cmd.Program]
		if p == nil || !p.linked || p.values[cmd.Location] == nil {
			bad("no uniform %d in program %d", cmd.Location, cmd.Program)
			cmd.Fail(errUnanswerable)
			return
		}
		u := p.values[cmd.Location]
		n := uniformComponents(u.typ)
		v := command.UniformValue{}
		if isFloatType(u.typ) {
			v.Floats = make([]float32, n)
			copy(v.Floats, u.floats)
		} else {
			v.Ints = make([]int32, n)
			copy(v.Ints, u.ints)
		}
		cmd.Send(v)

	// Vertex attributes.
	case command.EnableVertexAttribArray:
		if a := s.attrib(cmd.Index); a != nil {
			a.enabled = true
		} else {
			bad("attribute %d out of range", cmd.Index)
		}
	case command.DisableVertexAttribArray:
		if a := s.attrib(cmd.Index); a != nil {
			a.enabled = false
		} else {
			bad("attribute %d out of range", cmd.Index)
		}
	case command.VertexAttrib:
		if int(cmd.Index) >= b.cfg.Limits.MaxVertexAttribs {
			bad("attribute %d out of range", cmd.Index)
			return
		}
		s.current[cmd.Index] = cmd.Value
	case command.VertexAttribPointer:
		a := s.attrib(cmd.Index)
		if a == nil {
			bad("attribute %d out of range", cmd.Index)
			return
		}
		if s.arrayBuffer == 0 {
			bad("no array buffer bound")
			return
		}
		a.buffer = s.arrayBuffer
	case command.VertexAttribDivisor:
		if a := s.attrib(cmd.Index); a != nil {
			a.divisor = cmd.Divisor
		} else {
			bad("attribute %d out of range", cmd.Index)
		}
	case command.GetCurrentVertexAttrib:
		if int(cmd.Index) >= b.cfg.Limits.MaxVertexAttribs {
			bad("attribute %d out of range", cmd.Index)
			cmd.Fail(errUnanswerable)
			return
		}
		v, ok := s.current[cmd.Index]
		if !ok {
			v = [4]float32{0, 0, 0, 1}
		}
		cmd.Send(v)

	// Draws.
	case command.DrawArrays, command.DrawArraysInstanced, command.DrawElements, command.DrawElementsInstanced:
		indexed := tag == command.TagDrawElements || tag == command.TagDrawElementsInstanced
		if msg := s.drawProblem(indexed); msg != "" {
			bad("%s", msg)
			return
		}
		s.draws++
		b.mu.Lock()
		b.stats.Draws++
		b.mu.Unlock()

	// Reads.
	case command.ReadPixels:
		if msg := s.framebufferProblem(); msg != "" {
			bad("%s", msg)
			cmd.Fail(errUnanswerable)
			return
		}
		buf, err := s.readPixels(cmd.Rect)
		if err != nil {
			cmd.Fail(err)
			return
		}
		cmd.Send(buf)
	case command.GetParameter:
		v, ok := s.parameter(cmd.Param)
		if !ok {
			bad("unknown parameter %v", cmd.Param)
			cmd.Fail(errUnanswerable)
			return
		}
		cmd.Send(v)
	default:
		bad("unexpected command")
		if q, ok := cmd.(command.Query); ok {
			q.Fail(errUnanswerable)
		}
	}
}

// create adds v under id and reports whether id was already taken.
func create[T any](m map[command.ObjectID]*T, id command.ObjectID, v *T) bool {
	if _, ok := m[id]; ok || id == 0 {
		return true
	}
	m[id] = v
	return false
}

func deleteID(ids []command.ObjectID, id command.ObjectID) []command.ObjectID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
