// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"image"
	"slices"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

type buffer struct {
	target gl.Enum
	data   []byte
	usage  gl.Enum
}

type imageKey struct {
	target gl.Enum
	level  int32
}

// texImage is one image of a texture. RGBA/UNSIGNED_BYTE images are kept
// as rgba, everything else as the bytes uploaded.
type texImage struct {
	width, height  int32
	internalFormat gl.Enum
	format, typ    gl.Enum
	rgba           *image.RGBA
	raw            []byte
}

type texture struct {
	target gl.Enum
	images map[imageKey]*texImage
	params map[gl.Enum]float32
}

type renderbuffer struct {
	internalFormat gl.Enum
	width, height  int32
	// color holds the contents of color renderbuffers.
	color *image.RGBA
}

type fbAttachment struct {
	renderbuffer command.ObjectID
	texture      command.ObjectID
	texTarget    gl.Enum
	level        int32
}

func (a fbAttachment) empty() bool {
	return a.renderbuffer == 0 && a.texture == 0
}

type framebuffer struct {
	attachments map[gl.Enum]fbAttachment
}

type shader struct {
	typ      gl.Enum
	compiled bool
	iface    shaderInterface
}

type uniformSlot struct {
	typ    gl.Enum
	ints   []int32
	floats []float32
}

type program struct {
	shaders   []command.ObjectID
	bindings  map[string]uint32
	linked    bool
	validated bool
	attribs   []command.ActiveAttrib
	uniforms  []command.ActiveInfo
	// locations maps uniform names, with and without subscripts, to
	// locations.
	locations map[string]int32
	values    map[int32]*uniformSlot
}

type vertexAttrib struct {
	enabled bool
	buffer  command.ObjectID
	divisor uint32
}

type vertexArray struct {
	elements command.ObjectID
	attribs  []vertexAttrib
}

// contextState mirrors the GL state of one context.
type contextState struct {
	id    command.ContextID
	size  image.Point
	attrs command.Attributes

	buffers       map[command.ObjectID]*buffer
	textures      map[command.ObjectID]*texture
	renderbuffers map[command.ObjectID]*renderbuffer
	framebuffers  map[command.ObjectID]*framebuffer
	programs      map[command.ObjectID]*program
	shaders       map[command.ObjectID]*shader
	// vaos always holds the default vertex array under the zero ID.
	vaos map[command.ObjectID]*vertexArray

	activeUnit   int
	units        [][2]command.ObjectID
	arrayBuffer  command.ObjectID
	vao          command.ObjectID
	framebuffer  command.ObjectID
	renderbuffer command.ObjectID
	program      command.ObjectID

	enabled     map[gl.Enum]bool
	params      map[gl.Enum]command.ParamValue
	current     map[uint32][4]float32
	clearColor  [4]float32
	colorBuffer *image.RGBA

	draws int
}

func newContextState(id command.ContextID, size image.Point, attrs command.Attributes, l command.Limits) *contextState {
	s := &contextState{
		id:            id,
		size:          size,
		attrs:         attrs,
		buffers:       make(map[command.ObjectID]*buffer),
		textures:      make(map[command.ObjectID]*texture),
		renderbuffers: make(map[command.ObjectID]*renderbuffer),
		framebuffers:  make(map[command.ObjectID]*framebuffer),
		programs:      make(map[command.ObjectID]*program),
		shaders:       make(map[command.ObjectID]*shader),
		vaos:          make(map[command.ObjectID]*vertexArray),
		units:         make([][2]command.ObjectID, l.MaxCombinedTextureImageUnits),
		enabled:       map[gl.Enum]bool{gl.DITHER: true},
		current:       make(map[uint32][4]float32),
		colorBuffer:   image.NewRGBA(image.Rectangle{Max: size}),
	}
	s.vaos[0] = &vertexArray{attribs: make([]vertexAttrib, l.MaxVertexAttribs)}
	s.params = defaultParams(size, attrs)
	return s
}

func bits(on bool, n int32) int32 {
	if on {
		return n
	}
	return 0
}

func ints(v ...int32) command.ParamValue {
	var p command.ParamValue
	copy(p.Ints[:], v)
	return p
}

func floats(v ...float32) command.ParamValue {
	var p command.ParamValue
	copy(p.Floats[:], v)
	return p
}

func bools(v ...bool) command.ParamValue {
	var p command.ParamValue
	copy(p.Bools[:], v)
	return p
}

// defaultParams returns the initial values of the queryable GL state.
func defaultParams(size image.Point, attrs command.Attributes) map[gl.Enum]command.ParamValue {
	return map[gl.Enum]command.ParamValue{
		gl.DEPTH_WRITEMASK:                     bools(true),
		gl.SAMPLE_COVERAGE_INVERT:              bools(false),
		gl.COLOR_WRITEMASK:                     bools(true, true, true, true),
		gl.RED_BITS:                            ints(8),
		gl.GREEN_BITS:                          ints(8),
		gl.BLUE_BITS:                           ints(8),
		gl.ALPHA_BITS:                          ints(bits(attrs.Alpha, 8)),
		gl.DEPTH_BITS:                          ints(bits(attrs.Depth, 24)),
		gl.STENCIL_BITS:                        ints(bits(attrs.Stencil, 8)),
		gl.SUBPIXEL_BITS:                       ints(4),
		gl.SAMPLE_BUFFERS:                      ints(bits(attrs.Antialias, 1)),
		gl.SAMPLES:                             ints(bits(attrs.Antialias, 4)),
		gl.STENCIL_REF:                         ints(0),
		gl.STENCIL_BACK_REF:                    ints(0),
		gl.STENCIL_CLEAR_VALUE:                 ints(0),
		gl.STENCIL_VALUE_MASK:                  ints(-1),
		gl.STENCIL_WRITEMASK:                   ints(-1),
		gl.STENCIL_BACK_VALUE_MASK:             ints(-1),
		gl.STENCIL_BACK_WRITEMASK:              ints(-1),
		gl.VIEWPORT:                            ints(0, 0, int32(size.X), int32(size.Y)),
		gl.DEPTH_CLEAR_VALUE:                   floats(1),
		gl.LINE_WIDTH:                          floats(1),
		gl.POLYGON_OFFSET_FACTOR:               floats(0),
		gl.POLYGON_OFFSET_UNITS:                floats(0),
		gl.SAMPLE_COVERAGE_VALUE:               floats(1),
		gl.MAX_TEXTURE_MAX_ANISOTROPY_EXT:      floats(16),
		gl.ALIASED_LINE_WIDTH_RANGE:            floats(1, 1),
		gl.ALIASED_POINT_SIZE_RANGE:            floats(1, 1024),
		gl.DEPTH_RANGE:                         floats(0, 1),
		gl.BLEND_COLOR:                         floats(0, 0, 0, 0),
		gl.BLEND_SRC_RGB:                       ints(gl.ONE),
		gl.BLEND_SRC_ALPHA:                     ints(gl.ONE),
		gl.BLEND_DST_RGB:                       ints(gl.ZERO),
		gl.BLEND_DST_ALPHA:                     ints(gl.ZERO),
		gl.BLEND_EQUATION_RGB:                  ints(gl.FUNC_ADD),
		gl.BLEND_EQUATION_ALPHA:                ints(gl.FUNC_ADD),
		gl.CULL_FACE_MODE:                      ints(gl.BACK),
		gl.DEPTH_FUNC:                          ints(gl.LESS),
		gl.FRONT_FACE:                          ints(gl.CCW),
		gl.GENERATE_MIPMAP_HINT:                ints(gl.DONT_CARE),
		gl.FRAGMENT_SHADER_DERIVATIVE_HINT_OES: ints(gl.DONT_CARE),
		gl.STENCIL_FUNC:                        ints(gl.ALWAYS),
		gl.STENCIL_FAIL:                        ints(gl.KEEP),
		gl.STENCIL_PASS_DEPTH_FAIL:             ints(gl.KEEP),
		gl.STENCIL_PASS_DEPTH_PASS:             ints(gl.KEEP),
		gl.STENCIL_BACK_FUNC:                   ints(gl.ALWAYS),
		gl.STENCIL_BACK_FAIL:                   ints(gl.KEEP),
		gl.STENCIL_BACK_PASS_DEPTH_FAIL:        ints(gl.KEEP),
		gl.STENCIL_BACK_PASS_DEPTH_PASS:        ints(gl.KEEP),
	}
}

func newTexture() *texture {
	return &texture{
		images: make(map[imageKey]*texImage),
		params: map[gl.Enum]float32{
			gl.TEXTURE_MIN_FILTER:         gl.NEAREST_MIPMAP_LINEAR,
			gl.TEXTURE_MAG_FILTER:         gl.LINEAR,
			gl.TEXTURE_WRAP_S:             gl.REPEAT,
			gl.TEXTURE_WRAP_T:             gl.REPEAT,
			gl.TEXTURE_MAX_ANISOTROPY_EXT: 1,
		},
	}
}

// boundTexture returns the texture bound to the binding target of an
// image target on the active unit.
func (s *contextState) boundTexture(target gl.Enum) (*texture, command.ObjectID) {
	slot := 0
	if target != gl.TEXTURE_2D {
		slot = 1
	}
	id := s.units[s.activeUnit][slot]
	return s.textures[id], id
}

func (s *contextState) boundBuffer(target gl.Enum) *buffer {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		return s.buffers[s.currentVAO().elements]
	}
	return s.buffers[s.arrayBuffer]
}

func (s *contextState) currentVAO() *vertexArray {
	return s.vaos[s.vao]
}

// colorTarget returns the color image draws and clears write and reads
// read, or nil when the color attachment has no RGBA contents.
func (s *contextState) colorTarget() *image.RGBA {
	if s.framebuffer == 0 {
		return s.colorBuffer
	}
	fb := s.framebuffers[s.framebuffer]
	if fb == nil {
		return nil
	}
	a := fb.attachments[gl.COLOR_ATTACHMENT0]
	switch {
	case a.renderbuffer != 0:
		if r := s.renderbuffers[a.renderbuffer]; r != nil {
			return r.color
		}
	case a.texture != 0:
		if t := s.textures[a.texture]; t != nil {
			if img := t.images[imageKey{a.texTarget, a.level}]; img != nil {
				return img.rgba
			}
		}
	}
	return nil
}

// bufferReferences describes a reference to buffer id that deleting it
// would not clear, or returns "".
func (s *contextState) bufferReferences(id command.ObjectID) string {
	for vid, v := range s.vaos {
		if vid == s.vao {
			continue
		}
		if v.elements == id {
			return fmt.Sprintf("element array of vertex array %d", vid)
		}
		for i, a := range v.attribs {
			if a.buffer == id {
				return fmt.Sprintf("attribute %d of vertex array %d", i, vid)
			}
		}
	}
	return ""
}

func (s *contextState) attachmentReferences(match func(fbAttachment) bool) string {
	for fid, fb := range s.framebuffers {
		if fid == s.framebuffer {
			continue
		}
		for point, a := range fb.attachments {
			if match(a) {
				return fmt.Sprintf("attachment %v of framebuffer %d", point, fid)
			}
		}
	}
	return ""
}

// link links p from its attached shaders.
func (s *contextState) link(p *program, maxAttribs int) command.LinkInfo {
	p.linked, p.validated = false, false
	p.attribs, p.uniforms = nil, nil
	p.locations = make(map[string]int32)
	p.values = make(map[int32]*uniformSlot)
	fail := func(format string, args ...any) command.LinkInfo {
		return command.LinkInfo{Log: fmt.Sprintf(format, args...)}
	}
	var vs, fs *shader
	for _, id := range p.shaders {
		sh := s.shaders[id]
		if sh == nil {
			continue
		}
		if sh.typ == gl.VERTEX_SHADER {
			vs = sh
		} else {
			fs = sh
		}
	}
	if vs == nil || fs == nil {
		return fail("missing shader")
	}
	if !vs.compiled || !fs.compiled {
		return fail("shader not compiled")
	}
	used := make([]bool, maxAttribs)
	claim := func(loc, n int32) bool {
		if loc < 0 || int(loc+n) > maxAttribs {
			return false
		}
		for i := loc; i < loc+n; i++ {
			if used[i] {
				return false
			}
		}
		for i := loc; i < loc+n; i++ {
			used[i] = true
		}
		return true
	}
	locs := make(map[string]int32)
	for _, a := range vs.iface.attribs {
		if loc, ok := p.bindings[a.name]; ok {
			if !claim(int32(loc), attribSlots(a.typ)) {
				return fail("attribute %s: location %d unavailable", a.name, loc)
			}
			locs[a.name] = int32(loc)
		}
	}
	for _, a := range vs.iface.attribs {
		if _, ok := locs[a.name]; ok {
			continue
		}
		loc := int32(-1)
		for l := int32(0); int(l) < maxAttribs; l++ {
			if claim(l, attribSlots(a.typ)) {
				loc = l
				break
			}
		}
		if loc < 0 {
			return fail("too many attributes")
		}
		locs[a.name] = loc
	}
	for _, a := range vs.iface.attribs {
		p.attribs = append(p.attribs, command.ActiveAttrib{
			ActiveInfo: command.ActiveInfo{Name: a.name, Size: 1, Type: a.typ},
			Location:   locs[a.name],
		})
	}
	var uniforms []variable
	for _, u := range slices.Concat(vs.iface.uniforms, fs.iface.uniforms) {
		i := slices.IndexFunc(uniforms, func(v variable) bool { return v.name == u.name })
		if i < 0 {
			uniforms = append(uniforms, u)
			continue
		}
		if uniforms[i] != u {
			return fail("uniform %s: declarations differ", u.name)
		}
	}
	next := int32(0)
	for _, u := range uniforms {
		name := u.name
		if u.size > 1 {
			name += "[0]"
		}
		p.uniforms = append(p.uniforms, command.ActiveInfo{Name: name, Size: u.size, Type: u.typ})
		for i := int32(0); i < u.size; i++ {
			loc := next + i
			p.values[loc] = &uniformSlot{typ: u.typ}
			if u.size > 1 {
				p.locations[fmt.Sprintf("%s[%d]", u.name, i)] = loc
			}
		}
		p.locations[u.name] = next
		next += u.size
	}
	p.linked = true
	return command.LinkInfo{Linked: true, Attribs: p.attribs, Uniforms: p.uniforms}
}

// uniformLocation resolves a name accepted by GetUniformLocation.
func (p *program) uniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}
