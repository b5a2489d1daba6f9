// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
)

// Texture is a WebGL texture object.
type Texture struct {
	object
	// target is fixed by the first bind.
	target    gl.Enum
	minFilter gl.Enum
	magFilter gl.Enum
	images    map[imageKey]imageInfo
	// attached counts framebuffer attachments.
	attached int
}

type imageKey struct {
	face  int
	level int32
}

// imageInfo describes one uploaded image of a texture.
type imageInfo struct {
	width, height  int32
	internalFormat gl.Enum
	dataType       gl.Enum
	compressed     bool
}

func (t *Texture) name() command.ObjectID {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Texture) bind(target gl.Enum) error {
	if t.deleted {
		return InvalidOperation
	}
	if t.target != 0 && t.target != target {
		return InvalidOperation
	}
	t.target = target
	return nil
}

func (t *Texture) image(face int, level int32) (imageInfo, bool) {
	img, ok := t.images[imageKey{face, level}]
	return img, ok
}

func (t *Texture) setImage(face int, level int32, img imageInfo) {
	t.images[imageKey{face, level}] = img
}

func (t *Texture) usesLinearFilter() bool {
	switch t.minFilter {
	case gl.LINEAR, gl.LINEAR_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR:
		return true
	}
	return t.magFilter == gl.LINEAR
}

// faceIndex maps an image target to its face, 0 for TEXTURE_2D, and
// returns the binding target the image belongs to.
func faceIndex(target gl.Enum) (int, gl.Enum, error) {
	if target == gl.TEXTURE_2D {
		return 0, gl.TEXTURE_2D, nil
	}
	for i, f := range cubeFaces {
		if f == target {
			return i, gl.TEXTURE_CUBE_MAP, nil
		}
	}
	return 0, 0, InvalidEnum
}

func (c *Context) releaseTexture(t *Texture) {
	if !t.deleted || t.released || t.attached > 0 {
		return
	}
	t.released = true
	c.send(command.DeleteTexture{ID: t.id})
}

func (c *Context) CreateTexture() *Texture {
	if c.isLost() {
		return nil
	}
	t := &Texture{
		object:    c.newObject(),
		minFilter: gl.NEAREST_MIPMAP_LINEAR,
		magFilter: gl.LINEAR,
		images:    make(map[imageKey]imageInfo),
	}
	c.send(command.CreateTexture{ID: t.id})
	return t
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	if c.isLost() || c.check(c.units.setActive(unit)) {
		return
	}
	c.send(command.ActiveTexture{Unit: unit})
}

func (c *Context) BindTexture(target gl.Enum, t *Texture) {
	if c.isLost() {
		return
	}
	if t != nil && c.check(c.validateOwnership(t)) {
		return
	}
	slot, err := c.units.slot(target)
	if c.check(err) {
		return
	}
	if t != nil && c.check(t.bind(target)) {
		return
	}
	c.send(command.BindTexture{Target: target, ID: t.name()})
	*slot = t
}

// DeleteTexture marks t for deletion. Every unit it is bound to is reset
// to no texture and the active unit is left as it was.
func (c *Context) DeleteTexture(t *Texture) {
	if c.isLost() || t == nil || c.check(c.validateOwnership(t)) || t.deleted {
		return
	}
	active := c.units.active
	current := active
	for _, s := range c.units.sweep(t) {
		if s.unit != current {
			c.send(command.ActiveTexture{Unit: gl.TEXTURE0 + gl.Enum(s.unit)})
			current = s.unit
		}
		c.send(command.BindTexture{Target: s.target})
	}
	if current != active {
		c.send(command.ActiveTexture{Unit: c.units.activeEnum()})
	}
	t.deleted = true
	if fb := c.framebuffer; fb != nil {
		c.detachFromFramebuffer(fb, func(a *attachment) bool { return a.texture == t })
	}
	c.releaseTexture(t)
}

func (c *Context) IsTexture(t *Texture) bool {
	if c.isLost() || t == nil {
		return false
	}
	return c.validateOwnership(t) == nil && t.target != 0 && !t.deleted
}

// boundTexture returns the texture bound to target on the active unit.
func (c *Context) boundTexture(target gl.Enum) (*Texture, error) {
	t, err := c.units.bound(target)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, InvalidOperation
	}
	return t, nil
}

func (c *Context) TexParameterf(target, param gl.Enum, value float32) {
	c.texParameter(target, param, value, command.TexParameterf{Target: target, Param: param, Value: value})
}

func (c *Context) TexParameteri(target, param gl.Enum, value int32) {
	c.texParameter(target, param, float32(value), command.TexParameteri{Target: target, Param: param, Value: value})
}

func (c *Context) texParameter(target, param gl.Enum, value float32, cmd command.Command) {
	if c.isLost() {
		return
	}
	t, err := c.boundTexture(target)
	if c.check(err) {
		return
	}
	if !c.exts.IsEnumEnabled(ext.TexParameter, param) {
		c.fail(InvalidEnum)
		return
	}
	e := gl.Enum(value)
	switch param {
	case gl.TEXTURE_MIN_FILTER:
		if c.check(checkEnum(e, []gl.Enum{gl.NEAREST, gl.LINEAR, gl.NEAREST_MIPMAP_NEAREST, gl.LINEAR_MIPMAP_NEAREST, gl.NEAREST_MIPMAP_LINEAR, gl.LINEAR_MIPMAP_LINEAR})) {
			return
		}
		t.minFilter = e
	case gl.TEXTURE_MAG_FILTER:
		if c.check(checkEnum(e, []gl.Enum{gl.NEAREST, gl.LINEAR})) {
			return
		}
		t.magFilter = e
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T:
		if c.check(checkEnum(e, []gl.Enum{gl.CLAMP_TO_EDGE, gl.MIRRORED_REPEAT, gl.REPEAT})) {
			return
		}
	case gl.TEXTURE_MAX_ANISOTROPY_EXT:
		if value < 1 {
			c.fail(InvalidValue)
			return
		}
	default:
		c.fail(InvalidEnum)
		return
	}
	c.send(cmd)
	if target != gl.TEXTURE_2D {
		return
	}
	if img, ok := t.image(0, 0); ok && !img.compressed {
		c.checkFilterable(t, gl.TEXTURE_2D, 0, img.width, img.height, img.internalFormat, img.dataType)
	}
}

// GetTexParameter returns a gl.Enum for filters and wrap modes or a float32
// for TEXTURE_MAX_ANISOTROPY_EXT. It returns nil on error.
func (c *Context) GetTexParameter(target, param gl.Enum) any {
	if c.isLost() {
		return nil
	}
	t, err := c.boundTexture(target)
	if c.check(err) {
		return nil
	}
	if !c.exts.IsEnumEnabled(ext.TexParameter, param) {
		c.fail(InvalidEnum)
		return nil
	}
	switch param {
	case gl.TEXTURE_MIN_FILTER:
		return t.minFilter
	case gl.TEXTURE_MAG_FILTER:
		return t.magFilter
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T:
		r := command.NewReply[int32]()
		v, ok := query(c, command.GetTexParameterInt{Target: target, Param: param, Reply: r}, r)
		if !ok {
			return nil
		}
		return gl.Enum(v)
	case gl.TEXTURE_MAX_ANISOTROPY_EXT:
		r := command.NewReply[float32]()
		v, ok := query(c, command.GetTexParameterFloat{Target: target, Param: param, Reply: r}, r)
		if !ok {
			return nil
		}
		return v
	default:
		c.fail(InvalidEnum)
		return nil
	}
}

// GenerateMipmap needs an uncompressed power-of-two base level. Cube maps
// must also be cube complete.
func (c *Context) GenerateMipmap(target gl.Enum) {
	if c.isLost() {
		return
	}
	t, err := c.boundTexture(target)
	if c.check(err) {
		return
	}
	base, ok := t.image(0, 0)
	if !ok || base.compressed || !isPowerOfTwo(base.width) || !isPowerOfTwo(base.height) {
		c.fail(InvalidOperation)
		return
	}
	n := 1
	if target == gl.TEXTURE_CUBE_MAP {
		n = len(cubeFaces)
		if base.width != base.height {
			c.fail(InvalidOperation)
			return
		}
		for f := 1; f < n; f++ {
			if img, ok := t.image(f, 0); !ok || img != base {
				c.fail(InvalidOperation)
				return
			}
		}
	}
	c.send(command.GenerateMipmap{Target: target})
	for f := 0; f < n; f++ {
		img := base
		for level := int32(1); img.width > 1 || img.height > 1; level++ {
			img.width = max(img.width/2, 1)
			img.height = max(img.height/2, 1)
			t.setImage(f, level, img)
		}
	}
}
