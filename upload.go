// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"encoding/binary"
	"image"
	"math"

	"golang.org/x/image/draw"

	"gioui.org/webgl/gl"
)

// typeInfo describes the memory layout of a pixel data type.
type typeInfo struct {
	elemSize int
	// components is the number of color components packed into one
	// element. Unpacked types store one component per element.
	components int
}

func pixelType(typ gl.Enum) (typeInfo, bool) {
	switch typ {
	case gl.UNSIGNED_BYTE:
		return typeInfo{elemSize: 1, components: 1}, true
	case gl.UNSIGNED_SHORT_5_6_5:
		return typeInfo{elemSize: 2, components: 3}, true
	case gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		return typeInfo{elemSize: 2, components: 4}, true
	case gl.FLOAT:
		return typeInfo{elemSize: 4, components: 1}, true
	case gl.HALF_FLOAT_OES:
		return typeInfo{elemSize: 2, components: 1}, true
	}
	return typeInfo{}, false
}

func formatComponents(format gl.Enum) int {
	switch format {
	case gl.ALPHA, gl.LUMINANCE:
		return 1
	case gl.LUMINANCE_ALPHA:
		return 2
	case gl.RGB:
		return 3
	case gl.RGBA:
		return 4
	}
	return 0
}

// checkFormatType returns InvalidOperation for packed types used with a
// format of a different component count.
func checkFormatType(format, typ gl.Enum) error {
	switch typ {
	case gl.UNSIGNED_SHORT_5_6_5:
		if format != gl.RGB {
			return InvalidOperation
		}
	case gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		if format != gl.RGBA {
			return InvalidOperation
		}
	}
	return nil
}

// bytesPerPixel is elemSize*components/componentsPerElement.
func bytesPerPixel(format, typ gl.Enum) int {
	t, _ := pixelType(typ)
	if t.components == 0 {
		return 0
	}
	return t.elemSize * formatComponents(format) / t.components
}

// imageByteLength is the length of a width×height image whose rows start
// at multiples of align. The last row is not padded.
func imageByteLength(width, height int, format, typ gl.Enum, align int) int {
	if height == 0 {
		return 0
	}
	row := width * bytesPerPixel(format, typ)
	return alignUp(row, align)*(height-1) + row
}

// placeholderPixels is opaque black RGBA/UNSIGNED_BYTE data.
func placeholderPixels(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return pix
}

// convertSource turns src into tightly packed pixels of format and typ,
// applying the alpha treatment and vertical flip.
func convertSource(src PixelSource, format, typ gl.Enum, premultiply, flipY bool) []byte {
	w, h := src.Width, src.Height
	rect := image.Rect(0, 0, w, h)
	pix := append([]byte(nil), src.Pix[:w*h*4]...)
	if src.Format == PixelBGRA8 {
		for i := 0; i < len(pix); i += 4 {
			pix[i], pix[i+2] = pix[i+2], pix[i]
		}
	}
	switch {
	case src.Premultiplied && !premultiply:
		dst := image.NewNRGBA(rect)
		draw.Copy(dst, image.Point{}, &image.RGBA{Pix: pix, Stride: w * 4, Rect: rect}, rect, draw.Src, nil)
		pix = dst.Pix
	case !src.Premultiplied && premultiply:
		dst := image.NewRGBA(rect)
		draw.Copy(dst, image.Point{}, &image.NRGBA{Pix: pix, Stride: w * 4, Rect: rect}, rect, draw.Src, nil)
		pix = dst.Pix
	}
	if flipY {
		stride := w * 4
		for y := 0; y < h/2; y++ {
			top := pix[y*stride : (y+1)*stride]
			bot := pix[(h-1-y)*stride : (h-y)*stride]
			for i := range top {
				top[i], bot[i] = bot[i], top[i]
			}
		}
	}
	return packPixels(pix, format, typ)
}

// packPixels converts RGBA8 pixels to format and typ.
func packPixels(rgba []byte, format, typ gl.Enum) []byte {
	if format == gl.RGBA && typ == gl.UNSIGNED_BYTE {
		return rgba
	}
	n := len(rgba) / 4
	out := make([]byte, 0, n*bytesPerPixel(format, typ))
	for i := 0; i < n; i++ {
		r, g, b, a := rgba[i*4], rgba[i*4+1], rgba[i*4+2], rgba[i*4+3]
		var comps []byte
		switch format {
		case gl.ALPHA:
			comps = []byte{a}
		case gl.LUMINANCE:
			comps = []byte{r}
		case gl.LUMINANCE_ALPHA:
			comps = []byte{r, a}
		case gl.RGB:
			comps = []byte{r, g, b}
		default:
			comps = []byte{r, g, b, a}
		}
		switch typ {
		case gl.UNSIGNED_BYTE:
			out = append(out, comps...)
		case gl.UNSIGNED_SHORT_5_6_5:
			v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
			out = binary.NativeEndian.AppendUint16(out, v)
		case gl.UNSIGNED_SHORT_4_4_4_4:
			v := uint16(r>>4)<<12 | uint16(g>>4)<<8 | uint16(b>>4)<<4 | uint16(a>>4)
			out = binary.NativeEndian.AppendUint16(out, v)
		case gl.UNSIGNED_SHORT_5_5_5_1:
			v := uint16(r>>3)<<11 | uint16(g>>3)<<6 | uint16(b>>3)<<1 | uint16(a>>7)
			out = binary.NativeEndian.AppendUint16(out, v)
		case gl.FLOAT:
			for _, c := range comps {
				out = binary.NativeEndian.AppendUint32(out, math.Float32bits(float32(c)/255))
			}
		case gl.HALF_FLOAT_OES:
			for _, c := range comps {
				out = binary.NativeEndian.AppendUint16(out, float16(float32(c)/255))
			}
		}
	}
	return out
}

// float16 converts a value in [0, 1] to IEEE 754 half precision,
// truncating the mantissa.
func float16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23&0xff) - 127 + 15
	mant := bits & 0x7fffff
	switch {
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		return sign | uint16(mant>>uint32(14-exp))
	case exp >= 0x1f:
		return sign | 0x7c00
	}
	return sign | uint16(exp)<<10 | uint16(mant>>13)
}
