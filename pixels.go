// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"encoding/binary"
	"image"
	"math"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
	"gioui.org/webgl/shm"
)

// ElementType is the element type of an ArrayBufferView.
type ElementType uint8

const (
	Int8 ElementType = iota + 1
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// ArrayBufferView is typed array data in native byte order.
type ArrayBufferView struct {
	Type ElementType
	Data []byte
}

func Uint8Array(b []byte) *ArrayBufferView {
	return &ArrayBufferView{Type: Uint8, Data: b}
}

func Uint16Array(v []uint16) *ArrayBufferView {
	data := make([]byte, 0, len(v)*2)
	for _, x := range v {
		data = binary.NativeEndian.AppendUint16(data, x)
	}
	return &ArrayBufferView{Type: Uint16, Data: data}
}

func Float32Array(v []float32) *ArrayBufferView {
	data := make([]byte, 0, len(v)*4)
	for _, x := range v {
		data = binary.NativeEndian.AppendUint32(data, math.Float32bits(x))
	}
	return &ArrayBufferView{Type: Float32, Data: data}
}

// elementTypeFor returns the view type matching pixel data type typ.
func elementTypeFor(typ gl.Enum) ElementType {
	switch typ {
	case gl.UNSIGNED_BYTE:
		return Uint8
	case gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1, gl.HALF_FLOAT_OES:
		return Uint16
	case gl.FLOAT:
		return Float32
	}
	return 0
}

// PixelFormat is the memory layout of a PixelSource.
type PixelFormat uint8

const (
	PixelRGBA8 PixelFormat = iota
	PixelBGRA8
)

// PixelSource is a decoded image handed in by an image cache. Pix holds
// Width×Height 4 byte pixels without padding, top row first.
type PixelSource struct {
	Pix           []byte
	Width, Height int
	Format        PixelFormat
	Premultiplied bool
}

func (s PixelSource) valid() bool {
	return s.Width >= 0 && s.Height >= 0 && len(s.Pix) >= s.Width*s.Height*4 &&
		(s.Format == PixelRGBA8 || s.Format == PixelBGRA8)
}

// ReadPixels reads a rectangle of the bound framebuffer into dst as
// RGBA/UNSIGNED_BYTE rows aligned to PACK_ALIGNMENT. Pixels outside the
// framebuffer are left untouched.
func (c *Context) ReadPixels(x, y, width, height int32, format, typ gl.Enum, dst *ArrayBufferView) {
	if c.isLost() {
		return
	}
	if dst == nil {
		c.fail(InvalidValue)
		return
	}
	if c.check(checkNonNegative(width, height)) {
		return
	}
	if format != gl.RGBA || typ != gl.UNSIGNED_BYTE || dst.Type != Uint8 {
		c.fail(InvalidOperation)
		return
	}
	if c.check(c.validateFramebuffer()) {
		return
	}
	if width == 0 || height == 0 {
		return
	}
	row := int(width) * 4
	stride := alignUp(row, int(c.pixels.packAlignment))
	if len(dst.Data) < stride*(int(height)-1)+row {
		c.fail(InvalidOperation)
		return
	}
	want := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height))
	src := want.Intersect(image.Rectangle{Max: c.framebufferSize()})
	if src.Empty() {
		return
	}
	r := command.NewReply[*shm.Buffer]()
	rect := command.Rect{X: int32(src.Min.X), Y: int32(src.Min.Y), Width: int32(src.Dx()), Height: int32(src.Dy())}
	buf, ok := query(c, command.ReadPixels{Rect: rect, Format: format, Type: typ, Reply: r}, r)
	if !ok || buf == nil {
		return
	}
	defer buf.Close()
	data := buf.Bytes()
	srcRow := src.Dx() * 4
	off := (src.Min.X-want.Min.X)*4 + (src.Min.Y-want.Min.Y)*stride
	for i := 0; i < src.Dy() && (i+1)*srcRow <= len(data); i++ {
		copy(dst.Data[off+i*stride:], data[i*srcRow:(i+1)*srcRow])
	}
}
