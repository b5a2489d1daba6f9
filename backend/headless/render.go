// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"image"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// stencilFunc sets the stencil test of face, which is FRONT, BACK or
// FRONT_AND_BACK.
func (s *contextState) stencilFunc(face, fn gl.Enum, ref int32, mask uint32) {
	if face != gl.BACK {
		s.params[gl.STENCIL_FUNC] = ints(int32(fn))
		s.params[gl.STENCIL_REF] = ints(ref)
		s.params[gl.STENCIL_VALUE_MASK] = ints(int32(mask))
	}
	if face != gl.FRONT {
		s.params[gl.STENCIL_BACK_FUNC] = ints(int32(fn))
		s.params[gl.STENCIL_BACK_REF] = ints(ref)
		s.params[gl.STENCIL_BACK_VALUE_MASK] = ints(int32(mask))
	}
}

func (s *contextState) stencilMask(face gl.Enum, mask uint32) {
	if face != gl.BACK {
		s.params[gl.STENCIL_WRITEMASK] = ints(int32(mask))
	}
	if face != gl.FRONT {
		s.params[gl.STENCIL_BACK_WRITEMASK] = ints(int32(mask))
	}
}

func (s *contextState) stencilOp(face, fail, zfail, zpass gl.Enum) {
	if face != gl.BACK {
		s.params[gl.STENCIL_FAIL] = ints(int32(fail))
		s.params[gl.STENCIL_PASS_DEPTH_FAIL] = ints(int32(zfail))
		s.params[gl.STENCIL_PASS_DEPTH_PASS] = ints(int32(zpass))
	}
	if face != gl.FRONT {
		s.params[gl.STENCIL_BACK_FAIL] = ints(int32(fail))
		s.params[gl.STENCIL_BACK_PASS_DEPTH_FAIL] = ints(int32(zfail))
		s.params[gl.STENCIL_BACK_PASS_DEPTH_PASS] = ints(int32(zpass))
	}
}

// parameter answers GetParameter from the mirrored state.
func (s *contextState) parameter(param gl.Enum) (command.ParamValue, bool) {
	if param == gl.COLOR_CLEAR_VALUE {
		return floats(s.clearColor[:]...), true
	}
	v, ok := s.params[param]
	return v, ok
}

// attach sets an attachment point of fb. DEPTH_STENCIL_ATTACHMENT
// replaces the separate depth and stencil attachments.
func (s *contextState) attach(fb *framebuffer, point gl.Enum, a fbAttachment) {
	if point == gl.DEPTH_STENCIL_ATTACHMENT {
		delete(fb.attachments, gl.DEPTH_ATTACHMENT)
		delete(fb.attachments, gl.STENCIL_ATTACHMENT)
	}
	if a.empty() {
		delete(fb.attachments, point)
		return
	}
	fb.attachments[point] = a
}

// detach clears the attachments of the bound framebuffer that match.
// GL detaches deleted objects from the bound framebuffer only.
func (s *contextState) detach(match func(fbAttachment) bool) {
	fb := s.framebuffers[s.framebuffer]
	if fb == nil {
		return
	}
	for point, a := range fb.attachments {
		if match(a) {
			delete(fb.attachments, point)
		}
	}
}

// attachmentSize returns the size of the image behind a, or false when
// a names nothing that exists.
func (s *contextState) attachmentSize(a fbAttachment) (image.Point, bool) {
	if a.renderbuffer != 0 {
		r := s.renderbuffers[a.renderbuffer]
		if r == nil {
			return image.Point{}, false
		}
		return image.Pt(int(r.width), int(r.height)), true
	}
	t := s.textures[a.texture]
	if t == nil {
		return image.Point{}, false
	}
	img := t.images[imageKey{a.texTarget, a.level}]
	if img == nil {
		return image.Point{}, false
	}
	return image.Pt(int(img.width), int(img.height)), true
}

// framebufferProblem describes why the bound framebuffer cannot be drawn
// to or read from, or returns "".
func (s *contextState) framebufferProblem() string {
	if s.framebuffer == 0 {
		return ""
	}
	fb := s.framebuffers[s.framebuffer]
	if fb == nil {
		return fmt.Sprintf("framebuffer %d is gone", s.framebuffer)
	}
	if len(fb.attachments) == 0 {
		return fmt.Sprintf("framebuffer %d has no attachments", s.framebuffer)
	}
	var size image.Point
	first := true
	for point, a := range fb.attachments {
		sz, ok := s.attachmentSize(a)
		if !ok || sz.X == 0 || sz.Y == 0 {
			return fmt.Sprintf("framebuffer %d: attachment %v has no image", s.framebuffer, point)
		}
		if !first && sz != size {
			return fmt.Sprintf("framebuffer %d: attachment sizes differ", s.framebuffer)
		}
		size, first = sz, false
	}
	return ""
}

// clear fills the color target with the clear color, limited to the
// scissor box when the scissor test is enabled.
func (s *contextState) clear() {
	img := s.colorTarget()
	if img == nil {
		return
	}
	r := img.Bounds()
	if s.enabled[gl.SCISSOR_TEST] {
		if box, ok := s.params[gl.SCISSOR_BOX]; ok {
			b := box.Ints
			r = r.Intersect(image.Rect(int(b[0]), int(b[1]), int(b[0]+b[2]), int(b[1]+b[3])))
		}
	}
	mask := s.params[gl.COLOR_WRITEMASK].Bools
	var px [4]uint8
	for i, c := range s.clearColor {
		px[i] = uint8(clamp01(c)*255 + 0.5)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			o := img.PixOffset(x, y)
			for i := range px {
				if mask[i] {
					img.Pix[o+i] = px[i]
				}
			}
		}
	}
}

func (s *contextState) attrib(index uint32) *vertexAttrib {
	vao := s.currentVAO()
	if int(index) >= len(vao.attribs) {
		return nil
	}
	return &vao.attribs[index]
}

// drawProblem describes why a draw cannot run, or returns "".
func (s *contextState) drawProblem(indexed bool) string {
	p := s.programs[s.program]
	if p == nil || !p.linked {
		return "no linked program in use"
	}
	if msg := s.framebufferProblem(); msg != "" {
		return msg
	}
	vao := s.currentVAO()
	for i, a := range vao.attribs {
		if a.enabled && s.buffers[a.buffer] == nil {
			return fmt.Sprintf("enabled attribute %d has no buffer", i)
		}
	}
	if indexed && s.buffers[vao.elements] == nil {
		return "no element array buffer bound"
	}
	return ""
}

// setUniform stores values at consecutive locations from loc of the
// program in use.
func (s *contextState) setUniform(loc int32, n int, iv []int32, fv []float32) string {
	p := s.programs[s.program]
	if p == nil || !p.linked {
		return "no linked program in use"
	}
	count := max(len(iv), len(fv))
	if n <= 0 || count == 0 || count%n != 0 {
		return fmt.Sprintf("%d values for elements of %d components", count, n)
	}
	first := p.values[loc]
	if first == nil {
		return fmt.Sprintf("unknown uniform location %d", loc)
	}
	if uniformComponents(first.typ) != n {
		return fmt.Sprintf("uniform of type %v set with %d components", first.typ, n)
	}
	float := isFloatType(first.typ)
	if float && fv == nil {
		return fmt.Sprintf("uniform of type %v set with integers", first.typ)
	}
	for i := 0; i < count/n; i++ {
		u := p.values[loc+int32(i)]
		if u == nil || u.typ != first.typ {
			return fmt.Sprintf("uniform location %d out of range", loc+int32(i))
		}
		if float {
			u.floats = append(u.floats[:0], fv[i*n:(i+1)*n]...)
			continue
		}
		u.ints = u.ints[:0]
		if iv != nil {
			u.ints = append(u.ints, iv[i*n:(i+1)*n]...)
			continue
		}
		for _, f := range fv[i*n : (i+1)*n] {
			u.ints = append(u.ints, bits(f != 0, 1))
		}
	}
	return ""
}

func isColorRenderbuffer(f gl.Enum) bool {
	switch f {
	case gl.RGBA4, gl.RGB5_A1, gl.RGB565:
		return true
	}
	return false
}

// renderbufferBits are the RED, GREEN, BLUE, ALPHA, DEPTH and STENCIL
// sizes of each renderbuffer format.
var renderbufferBits = map[gl.Enum][6]int32{
	gl.RGBA4:             {4, 4, 4, 4, 0, 0},
	gl.RGB5_A1:           {5, 5, 5, 1, 0, 0},
	gl.RGB565:            {5, 6, 5, 0, 0, 0},
	gl.DEPTH_COMPONENT16: {0, 0, 0, 0, 16, 0},
	gl.STENCIL_INDEX8:    {0, 0, 0, 0, 0, 8},
	gl.DEPTH_STENCIL:     {0, 0, 0, 0, 24, 8},
}

func renderbufferParam(r *renderbuffer, param gl.Enum) (int32, bool) {
	sizes := renderbufferBits[r.internalFormat]
	switch param {
	case gl.RENDERBUFFER_WIDTH:
		return r.width, true
	case gl.RENDERBUFFER_HEIGHT:
		return r.height, true
	case gl.RENDERBUFFER_INTERNAL_FORMAT:
		return int32(r.internalFormat), true
	case gl.RENDERBUFFER_RED_SIZE:
		return sizes[0], true
	case gl.RENDERBUFFER_GREEN_SIZE:
		return sizes[1], true
	case gl.RENDERBUFFER_BLUE_SIZE:
		return sizes[2], true
	case gl.RENDERBUFFER_ALPHA_SIZE:
		return sizes[3], true
	case gl.RENDERBUFFER_DEPTH_SIZE:
		return sizes[4], true
	case gl.RENDERBUFFER_STENCIL_SIZE:
		return sizes[5], true
	}
	return 0, false
}

// precisionFormat answers with the precision of IEEE single floats and
// 32-bit integers for every precision type.
func precisionFormat(typ gl.Enum) command.PrecisionFormat {
	switch typ {
	case gl.LOW_INT, gl.MEDIUM_INT, gl.HIGH_INT:
		return command.PrecisionFormat{RangeMin: 31, RangeMax: 30, Precision: 0}
	}
	return command.PrecisionFormat{RangeMin: 127, RangeMax: 127, Precision: 23}
}
