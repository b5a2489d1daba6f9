// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"slices"

	"golang.org/x/exp/constraints"

	"gioui.org/webgl/gl"
)

// Closed enum domains shared by several entrypoints.
var (
	comparisonFuncs = []gl.Enum{gl.NEVER, gl.LESS, gl.EQUAL, gl.LEQUAL, gl.GREATER, gl.NOTEQUAL, gl.GEQUAL, gl.ALWAYS}
	faces           = []gl.Enum{gl.FRONT, gl.BACK, gl.FRONT_AND_BACK}
	stencilActions  = []gl.Enum{0, gl.KEEP, gl.REPLACE, gl.INCR, gl.DECR, gl.INVERT, gl.INCR_WRAP, gl.DECR_WRAP}
	blendFactors    = []gl.Enum{
		gl.ZERO, gl.ONE,
		gl.SRC_COLOR, gl.ONE_MINUS_SRC_COLOR, gl.DST_COLOR, gl.ONE_MINUS_DST_COLOR,
		gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.DST_ALPHA, gl.ONE_MINUS_DST_ALPHA,
		gl.CONSTANT_COLOR, gl.ONE_MINUS_CONSTANT_COLOR, gl.CONSTANT_ALPHA, gl.ONE_MINUS_CONSTANT_ALPHA,
		gl.SRC_ALPHA_SATURATE,
	}
	hintModes    = []gl.Enum{gl.FASTEST, gl.NICEST, gl.DONT_CARE}
	bufferUsages = []gl.Enum{gl.STREAM_DRAW, gl.STATIC_DRAW, gl.DYNAMIC_DRAW}
	topologies   = []gl.Enum{gl.POINTS, gl.LINES, gl.LINE_LOOP, gl.LINE_STRIP, gl.TRIANGLES, gl.TRIANGLE_STRIP, gl.TRIANGLE_FAN}
	attachments  = []gl.Enum{gl.COLOR_ATTACHMENT0, gl.DEPTH_ATTACHMENT, gl.STENCIL_ATTACHMENT, gl.DEPTH_STENCIL_ATTACHMENT}
	cubeFaces    = []gl.Enum{
		gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
		gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
	}
)

// checkEnum returns InvalidEnum unless e is in domain.
func checkEnum(e gl.Enum, domain []gl.Enum) error {
	if !slices.Contains(domain, e) {
		return InvalidEnum
	}
	return nil
}

// checkNonNegative returns InvalidValue if any of vs is negative.
func checkNonNegative[T constraints.Signed](vs ...T) error {
	for _, v := range vs {
		if v < 0 {
			return InvalidValue
		}
	}
	return nil
}

func alignUp[T constraints.Integer](v, align T) T {
	if align <= 1 {
		return v
	}
	return (v + align - 1) / align * align
}

func isPowerOfTwo[T constraints.Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

func validAlignment(a int32) bool {
	switch a {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// fits reports whether size elements starting at off stay within limit,
// without computing off+size.
func fits[T constraints.Signed](off, size, limit T) bool {
	return off >= 0 && size >= 0 && off <= limit && size <= limit-off
}
