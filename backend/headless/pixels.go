// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
	"gioui.org/webgl/internal/log"
	"gioui.org/webgl/shm"
)

// closePixels releases an upload buffer once its contents are copied.
func closePixels(b *shm.Buffer) {
	if b == nil {
		return
	}
	if err := b.Close(); err != nil {
		log.Logger().Debug("headless: closing pixel buffer", "error", err)
	}
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

// pixelSize is the size in bytes of one pixel, or 0 for unknown
// combinations.
func pixelSize(format, typ gl.Enum) int {
	n := formatComponents(format)
	switch typ {
	case gl.UNSIGNED_BYTE:
		return n
	case gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		if n == 0 {
			return 0
		}
		return 2
	case gl.HALF_FLOAT, gl.HALF_FLOAT_OES:
		return 2 * n
	case gl.FLOAT:
		return 4 * n
	}
	return 0
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

// decodeImage copies uploaded pixels into a texture image. Rows are
// stored bottom up in GL order, so image row y is GL row y.
func decodeImage(width, height int32, format, typ gl.Enum, data []byte, align int32, flipY bool, alpha command.AlphaTreatment) (*texImage, error) {
	bpp := pixelSize(format, typ)
	if bpp == 0 {
		return nil, fmt.Errorf("unsupported format %v and type %v", format, typ)
	}
	w, h := int(width), int(height)
	row := w * bpp
	stride := alignUp(row, int(align))
	if h > 0 {
		if need := stride*(h-1) + row; len(data) < need {
			return nil, fmt.Errorf("%d bytes of pixels for %dx%d image of %d", len(data), w, h, need)
		}
	}
	tight := make([]byte, row*h)
	for y := 0; y < h; y++ {
		src := y
		if flipY {
			src = h - 1 - y
		}
		copy(tight[y*row:(y+1)*row], data[src*stride:])
	}
	img := &texImage{width: width, height: height, internalFormat: format, format: format, typ: typ}
	if typ != gl.UNSIGNED_BYTE {
		img.raw = tight
		return img, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		px := rgba.Pix[i*4 : i*4+4]
		src := tight[i*bpp : (i+1)*bpp]
		switch format {
		case gl.ALPHA:
			px[3] = src[0]
		case gl.LUMINANCE:
			px[0], px[1], px[2], px[3] = src[0], src[0], src[0], 0xff
		case gl.LUMINANCE_ALPHA:
			px[0], px[1], px[2], px[3] = src[0], src[0], src[0], src[1]
		case gl.RGB:
			copy(px, src)
			px[3] = 0xff
		default:
			copy(px, src)
		}
	}
	switch alpha {
	case command.AlphaPremultiply:
		dst := image.NewRGBA(rgba.Rect)
		xdraw.Copy(dst, image.Point{}, &image.NRGBA{Pix: rgba.Pix, Stride: rgba.Stride, Rect: rgba.Rect}, rgba.Rect, xdraw.Src, nil)
		rgba = dst
	case command.AlphaUnmultiply:
		dst := image.NewNRGBA(rgba.Rect)
		xdraw.Copy(dst, image.Point{}, rgba, rgba.Rect, xdraw.Src, nil)
		rgba = &image.RGBA{Pix: dst.Pix, Stride: dst.Stride, Rect: dst.Rect}
	}
	img.rgba = rgba
	return img, nil
}

// update replaces the region of img at (x, y) with src.
func (img *texImage) update(x, y int32, src *texImage) error {
	if x < 0 || y < 0 || x > img.width-src.width || y > img.height-src.height {
		return fmt.Errorf("update %dx%d at (%d,%d) outside %dx%d image", src.width, src.height, x, y, img.width, img.height)
	}
	switch {
	case img.rgba != nil && src.rgba != nil:
		xdraw.Copy(img.rgba, image.Pt(int(x), int(y)), src.rgba, src.rgba.Rect, xdraw.Src, nil)
	case img.raw != nil && src.raw != nil && pixelSize(img.format, img.typ) == pixelSize(src.format, src.typ):
		bpp := pixelSize(img.format, img.typ)
		row := int(src.width) * bpp
		for i := 0; i < int(src.height); i++ {
			off := ((int(y)+i)*int(img.width) + int(x)) * bpp
			copy(img.raw[off:off+row], src.raw[i*row:])
		}
	default:
		return fmt.Errorf("update of %v/%v image with %v/%v", img.format, img.typ, src.format, src.typ)
	}
	return nil
}

// copyRect copies the part of r inside src to dst at dp, leaving the rest
// of the destination untouched.
func copyRect(dst *image.RGBA, dp image.Point, src *image.RGBA, r image.Rectangle) {
	sr := r.Intersect(src.Rect)
	if sr.Empty() {
		return
	}
	xdraw.Copy(dst, dp.Add(sr.Min.Sub(r.Min)), src, sr, xdraw.Src, nil)
}

var cubeFaces = []gl.Enum{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// generateMipmaps rebuilds every level below the base level of the faces
// of target. Images without RGBA contents keep no mipmaps.
func (t *texture) generateMipmaps(target gl.Enum) {
	faces := []gl.Enum{gl.TEXTURE_2D}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = cubeFaces
	}
	for _, face := range faces {
		base := t.images[imageKey{face, 0}]
		if base == nil {
			continue
		}
		for k := range t.images {
			if k.target == face && k.level > 0 {
				delete(t.images, k)
			}
		}
		if base.rgba == nil {
			continue
		}
		w, h := base.width, base.height
		for level := int32(1); w > 1 || h > 1; level++ {
			w, h = max(w/2, 1), max(h/2, 1)
			dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
			xdraw.BiLinear.Scale(dst, dst.Rect, base.rgba, base.rgba.Rect, xdraw.Src, nil)
			t.images[imageKey{face, level}] = &texImage{
				width: w, height: h,
				internalFormat: base.internalFormat, format: base.format, typ: base.typ,
				rgba: dst,
			}
		}
	}
}

// readPixels returns the RGBA contents of r in the color target, tightly
// packed from the bottom row up. Pixels outside the target read as zero.
func (s *contextState) readPixels(r command.Rect) (*shm.Buffer, error) {
	rect := r.Image()
	row := rect.Dx() * 4
	buf, err := shm.New(row * rect.Dy())
	if err != nil {
		return nil, err
	}
	img := s.colorTarget()
	if img == nil {
		return buf, nil
	}
	out := buf.Bytes()
	src := rect.Intersect(img.Rect)
	for y := src.Min.Y; y < src.Max.Y; y++ {
		off := (y-rect.Min.Y)*row + (src.Min.X-rect.Min.X)*4
		o := img.PixOffset(src.Min.X, y)
		copy(out[off:off+src.Dx()*4], img.Pix[o:o+src.Dx()*4])
	}
	return buf, nil
}
