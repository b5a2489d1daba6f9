// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"math/bits"

	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
	"gioui.org/webgl/shm"
)

var (
	uncompressedFormats = []gl.Enum{gl.ALPHA, gl.LUMINANCE, gl.LUMINANCE_ALPHA, gl.RGB, gl.RGBA}
	baseTexTypes        = []gl.Enum{gl.UNSIGNED_BYTE, gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1}
)

// texTarget is a validated image target.
type texTarget struct {
	tex    *Texture
	target gl.Enum
	face   int
}

func (c *Context) checkTexType(typ gl.Enum) error {
	if checkEnum(typ, baseTexTypes) == nil {
		return nil
	}
	if ext.Gated(ext.TexType, typ) && c.exts.IsEnumEnabled(ext.TexType, typ) {
		return nil
	}
	return InvalidEnum
}

// imageTarget resolves target to the texture bound for it on the active
// unit.
func (c *Context) imageTarget(target gl.Enum) (texTarget, error) {
	face, binding, err := faceIndex(target)
	if err != nil {
		return texTarget{}, err
	}
	t, err := c.boundTexture(binding)
	if err != nil {
		return texTarget{}, err
	}
	return texTarget{tex: t, target: target, face: face}, nil
}

func (c *Context) maxTextureSize(target gl.Enum) int32 {
	if target == gl.TEXTURE_2D {
		return int32(c.info.Limits.MaxTextureSize)
	}
	return int32(c.info.Limits.MaxCubeMapTextureSize)
}

// checkImageSize validates the level, size and border of an upload that
// defines a whole image level.
func (c *Context) checkImageSize(target gl.Enum, level, width, height, border int32) error {
	if err := checkNonNegative(level, width, height); err != nil {
		return err
	}
	maxSize := c.maxTextureSize(target)
	if maxSize > 0 && int(level) > bits.Len32(uint32(maxSize))-1 {
		return InvalidValue
	}
	if maxSize > 0 && (width > maxSize>>level || height > maxSize>>level) {
		return InvalidValue
	}
	if target != gl.TEXTURE_2D && width != height {
		return InvalidValue
	}
	if border != 0 {
		return InvalidValue
	}
	if level > 0 && (!isPowerOfTwo(width) || !isPowerOfTwo(height)) {
		return InvalidValue
	}
	return nil
}

func (c *Context) validateTexImage(target gl.Enum, level int32, internalFormat gl.Enum, width, height, border int32, format, typ gl.Enum) (texTarget, error) {
	if err := c.checkTexType(typ); err != nil {
		return texTarget{}, err
	}
	tt, err := c.imageTarget(target)
	if err != nil {
		return texTarget{}, err
	}
	if err := checkEnum(internalFormat, uncompressedFormats); err != nil {
		return texTarget{}, err
	}
	if err := c.checkImageSize(target, level, width, height, border); err != nil {
		return texTarget{}, err
	}
	if err := checkEnum(format, uncompressedFormats); err != nil {
		return texTarget{}, err
	}
	if format != internalFormat {
		return texTarget{}, InvalidOperation
	}
	return tt, checkFormatType(format, typ)
}

// arrayPixels validates and copies the client data of an upload. Nil
// data stands for zeros.
func arrayPixels(data *ArrayBufferView, width, height int32, format, typ gl.Enum, align int32) ([]byte, error) {
	n := imageByteLength(int(width), int(height), format, typ, int(align))
	if data == nil {
		return make([]byte, n), nil
	}
	if data.Type != elementTypeFor(typ) {
		return nil, InvalidOperation
	}
	if len(data.Data) < n {
		return nil, InvalidOperation
	}
	return append([]byte(nil), data.Data[:n]...), nil
}

// upload describes the pixels of one TexImage2D or TexSubImage2D.
type upload struct {
	pix    []byte
	align  int32
	alpha  command.AlphaTreatment
	flipY  bool
	width  int32
	height int32
}

// arrayUpload applies the unpack settings to client array data.
func (c *Context) arrayUpload(pix []byte, width, height int32) upload {
	u := upload{pix: pix, align: c.pixels.unpackAlignment, flipY: c.pixels.flipY, width: width, height: height}
	if c.pixels.premultiply {
		u.alpha = command.AlphaPremultiply
	}
	return u
}

// sourceUpload converts an image source on the client side.
func (c *Context) sourceUpload(src PixelSource, format, typ gl.Enum) upload {
	return upload{
		pix:    convertSource(src, format, typ, c.pixels.premultiply, c.pixels.flipY),
		align:  1,
		width:  int32(src.Width),
		height: int32(src.Height),
	}
}

func (c *Context) sharePixels(pix []byte) (*shm.Buffer, bool) {
	buf, err := shm.FromBytes(pix)
	if err != nil {
		c.fail(OutOfMemory)
		return nil, false
	}
	return buf, true
}

// checkFilterable uploads an opaque black UNSIGNED_BYTE placeholder in
// format when t filters linearly but typ is not filterable, and then
// reports false.
func (c *Context) checkFilterable(t *Texture, target gl.Enum, level, width, height int32, format, typ gl.Enum) bool {
	if c.exts.IsFilterable(typ) || !t.usesLinearFilter() {
		return true
	}
	tt := texTarget{tex: t, target: target}
	tt.face, _, _ = faceIndex(target)
	c.texImage(tt, level, format, gl.UNSIGNED_BYTE, upload{
		pix:    packPixels(placeholderPixels(int(width), int(height)), format, gl.UNSIGNED_BYTE),
		align:  1,
		width:  width,
		height: height,
	})
	return false
}

func (c *Context) texImage(tt texTarget, level int32, format, typ gl.Enum, u upload) {
	buf, ok := c.sharePixels(u.pix)
	if !ok {
		return
	}
	tt.tex.setImage(tt.face, level, imageInfo{width: u.width, height: u.height, internalFormat: format, dataType: typ})
	c.send(command.TexImage2D{
		Target:          tt.target,
		Level:           level,
		InternalFormat:  c.exts.EffectiveInternalFormat(format, typ),
		Width:           u.width,
		Height:          u.height,
		Format:          format,
		Type:            c.exts.EffectiveType(typ),
		Pixels:          buf,
		UnpackAlignment: u.align,
		Alpha:           u.alpha,
		FlipY:           u.flipY,
	})
}

// TexImage2D specifies a texture image from typed array data. Nil data
// allocates a zeroed image.
func (c *Context) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, border int32, format, typ gl.Enum, data *ArrayBufferView) {
	if c.isLost() {
		return
	}
	tt, err := c.validateTexImage(target, level, internalFormat, width, height, border, format, typ)
	if c.check(err) {
		return
	}
	pix, err := arrayPixels(data, width, height, format, typ, c.pixels.unpackAlignment)
	if c.check(err) {
		return
	}
	if !c.checkFilterable(tt.tex, target, level, width, height, format, typ) {
		return
	}
	c.texImage(tt, level, format, typ, c.arrayUpload(pix, width, height))
}

// TexImage2DSource specifies a texture image from a decoded image.
func (c *Context) TexImage2DSource(target gl.Enum, level int32, internalFormat, format, typ gl.Enum, src PixelSource) {
	if c.isLost() {
		return
	}
	if !src.valid() {
		c.fail(InvalidValue)
		return
	}
	w, h := int32(src.Width), int32(src.Height)
	tt, err := c.validateTexImage(target, level, internalFormat, w, h, 0, format, typ)
	if c.check(err) {
		return
	}
	if !c.checkFilterable(tt.tex, target, level, w, h, format, typ) {
		return
	}
	c.texImage(tt, level, format, typ, c.sourceUpload(src, format, typ))
}

// validateTexSubImage returns the target and the image being updated.
func (c *Context) validateTexSubImage(target gl.Enum, level, x, y, width, height int32, format, typ gl.Enum) (texTarget, error) {
	if err := c.checkTexType(typ); err != nil {
		return texTarget{}, err
	}
	tt, err := c.imageTarget(target)
	if err != nil {
		return texTarget{}, err
	}
	if err := checkNonNegative(level, width, height); err != nil {
		return texTarget{}, err
	}
	if err := checkEnum(format, uncompressedFormats); err != nil {
		return texTarget{}, err
	}
	if err := checkFormatType(format, typ); err != nil {
		return texTarget{}, err
	}
	img, ok := tt.tex.image(tt.face, level)
	if !ok || img.compressed {
		return texTarget{}, InvalidOperation
	}
	if !fits(x, width, img.width) || !fits(y, height, img.height) {
		return texTarget{}, InvalidValue
	}
	if format != img.internalFormat || typ != img.dataType {
		return texTarget{}, InvalidOperation
	}
	return tt, nil
}

func (c *Context) texSubImage(tt texTarget, level, x, y int32, format, typ gl.Enum, u upload) {
	buf, ok := c.sharePixels(u.pix)
	if !ok {
		return
	}
	c.send(command.TexSubImage2D{
		Target:          tt.target,
		Level:           level,
		X:               x,
		Y:               y,
		Width:           u.width,
		Height:          u.height,
		Format:          format,
		Type:            c.exts.EffectiveType(typ),
		Pixels:          buf,
		UnpackAlignment: u.align,
		Alpha:           u.alpha,
		FlipY:           u.flipY,
	})
}

func (c *Context) TexSubImage2D(target gl.Enum, level, x, y, width, height int32, format, typ gl.Enum, data *ArrayBufferView) {
	if c.isLost() {
		return
	}
	tt, err := c.validateTexSubImage(target, level, x, y, width, height, format, typ)
	if c.check(err) {
		return
	}
	if data == nil {
		c.fail(InvalidValue)
		return
	}
	pix, err := arrayPixels(data, width, height, format, typ, c.pixels.unpackAlignment)
	if c.check(err) {
		return
	}
	c.texSubImage(tt, level, x, y, format, typ, c.arrayUpload(pix, width, height))
}

func (c *Context) TexSubImage2DSource(target gl.Enum, level, x, y int32, format, typ gl.Enum, src PixelSource) {
	if c.isLost() {
		return
	}
	if !src.valid() {
		c.fail(InvalidValue)
		return
	}
	tt, err := c.validateTexSubImage(target, level, x, y, int32(src.Width), int32(src.Height), format, typ)
	if c.check(err) {
		return
	}
	c.texSubImage(tt, level, x, y, format, typ, c.sourceUpload(src, format, typ))
}

// compressedSize returns the byte length of a compressed image.
func compressedSize(format gl.Enum, width, height int32) int {
	blocks := int((width+3)/4) * int((height+3)/4)
	switch format {
	case gl.COMPRESSED_RGB_S3TC_DXT1_EXT, gl.COMPRESSED_RGBA_S3TC_DXT1_EXT, gl.COMPRESSED_RGB_ETC1_WEBGL:
		return blocks * 8
	default:
		return blocks * 16
	}
}

func (c *Context) checkCompressedFormat(format gl.Enum) error {
	if !ext.Gated(ext.CompressedFormat, format) || !c.exts.IsEnumEnabled(ext.CompressedFormat, format) {
		return InvalidEnum
	}
	return nil
}

func (c *Context) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, border int32, data []byte) {
	if c.isLost() {
		return
	}
	tt, err := c.imageTarget(target)
	if c.check(err) {
		return
	}
	if c.check(c.checkCompressedFormat(internalFormat)) || c.check(c.checkImageSize(target, level, width, height, border)) {
		return
	}
	if len(data) != compressedSize(internalFormat, width, height) {
		c.fail(InvalidValue)
		return
	}
	tt.tex.setImage(tt.face, level, imageInfo{
		width:          width,
		height:         height,
		internalFormat: internalFormat,
		dataType:       gl.UNSIGNED_BYTE,
		compressed:     true,
	})
	c.send(command.CompressedTexImage2D{
		Target:         target,
		Level:          level,
		InternalFormat: internalFormat,
		Width:          width,
		Height:         height,
		Data:           append([]byte(nil), data...),
	})
}

// CompressedTexSubImage2D updates a block aligned region of a compressed
// image. ETC1 images cannot be updated.
func (c *Context) CompressedTexSubImage2D(target gl.Enum, level, x, y, width, height int32, format gl.Enum, data []byte) {
	if c.isLost() {
		return
	}
	tt, err := c.imageTarget(target)
	if c.check(err) || c.check(c.checkCompressedFormat(format)) || c.check(checkNonNegative(level, width, height)) {
		return
	}
	img, ok := tt.tex.image(tt.face, level)
	if !ok || !img.compressed || img.internalFormat != format || format == gl.COMPRESSED_RGB_ETC1_WEBGL {
		c.fail(InvalidOperation)
		return
	}
	if !fits(x, width, img.width) || !fits(y, height, img.height) {
		c.fail(InvalidValue)
		return
	}
	if x%4 != 0 || y%4 != 0 || (width%4 != 0 && x+width != img.width) || (height%4 != 0 && y+height != img.height) {
		c.fail(InvalidOperation)
		return
	}
	if len(data) != compressedSize(format, width, height) {
		c.fail(InvalidValue)
		return
	}
	c.send(command.CompressedTexSubImage2D{
		Target: target,
		Level:  level,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Format: format,
		Data:   append([]byte(nil), data...),
	})
}

// CopyTexImage2D specifies a texture image from the bound framebuffer.
func (c *Context) CopyTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, x, y, width, height, border int32) {
	if c.isLost() || c.check(c.validateFramebuffer()) {
		return
	}
	tt, err := c.imageTarget(target)
	if c.check(err) || c.check(checkEnum(internalFormat, uncompressedFormats)) {
		return
	}
	if c.check(c.checkImageSize(target, level, width, height, border)) {
		return
	}
	tt.tex.setImage(tt.face, level, imageInfo{width: width, height: height, internalFormat: internalFormat, dataType: gl.UNSIGNED_BYTE})
	c.send(command.CopyTexImage2D{
		Target:         target,
		Level:          level,
		InternalFormat: internalFormat,
		Rect:           command.Rect{X: x, Y: y, Width: width, Height: height},
	})
}

func (c *Context) CopyTexSubImage2D(target gl.Enum, level, xoffset, yoffset, x, y, width, height int32) {
	if c.isLost() || c.check(c.validateFramebuffer()) {
		return
	}
	tt, err := c.imageTarget(target)
	if c.check(err) || c.check(checkNonNegative(level, width, height)) {
		return
	}
	img, ok := tt.tex.image(tt.face, level)
	if !ok || img.compressed {
		c.fail(InvalidOperation)
		return
	}
	if !fits(xoffset, width, img.width) || !fits(yoffset, height, img.height) {
		c.fail(InvalidValue)
		return
	}
	c.send(command.CopyTexSubImage2D{
		Target:  target,
		Level:   level,
		XOffset: xoffset,
		YOffset: yoffset,
		Rect:    command.Rect{X: x, Y: y, Width: width, Height: height},
	})
}
