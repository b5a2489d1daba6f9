// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gioui.org/webgl/gl"
)

// The scanner recognizes the declarations of GLSL ES 1.00 sources well
// enough to report their interface. It does not parse expressions.
var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	versionDecl  = regexp.MustCompile(`(?m)^\s*#\s*version\s+(\d+)`)
	mainDecl     = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	varDecl      = regexp.MustCompile(`(?m)^\s*(attribute|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
)

var glslTypes = map[string]gl.Enum{
	"float":       gl.FLOAT,
	"vec2":        gl.FLOAT_VEC2,
	"vec3":        gl.FLOAT_VEC3,
	"vec4":        gl.FLOAT_VEC4,
	"int":         gl.INT,
	"ivec2":       gl.INT_VEC2,
	"ivec3":       gl.INT_VEC3,
	"ivec4":       gl.INT_VEC4,
	"bool":        gl.BOOL,
	"bvec2":       gl.BOOL_VEC2,
	"bvec3":       gl.BOOL_VEC3,
	"bvec4":       gl.BOOL_VEC4,
	"mat2":        gl.FLOAT_MAT2,
	"mat3":        gl.FLOAT_MAT3,
	"mat4":        gl.FLOAT_MAT4,
	"sampler2D":   gl.SAMPLER_2D,
	"samplerCube": gl.SAMPLER_CUBE,
}

// attribute types are restricted to floating point.
var attribTypes = map[gl.Enum]bool{
	gl.FLOAT: true, gl.FLOAT_VEC2: true, gl.FLOAT_VEC3: true, gl.FLOAT_VEC4: true,
	gl.FLOAT_MAT2: true, gl.FLOAT_MAT3: true, gl.FLOAT_MAT4: true,
}

type variable struct {
	name string
	typ  gl.Enum
	// size is the array length, 1 for scalars.
	size int32
}

// shaderInterface is the outcome of scanning one shader.
type shaderInterface struct {
	attribs  []variable
	uniforms []variable
}

func stripComments(src string) string {
	src = blockComment.ReplaceAllString(src, " ")
	return lineComment.ReplaceAllString(src, "")
}

// scanShader checks src and extracts its attributes and uniforms. The
// error text is the compile log.
func scanShader(typ gl.Enum, src string) (shaderInterface, error) {
	src = stripComments(src)
	if m := versionDecl.FindStringSubmatch(src); m != nil && m[1] != "100" {
		return shaderInterface{}, fmt.Errorf("ERROR: unsupported version %s", m[1])
	}
	if !mainDecl.MatchString(src) {
		return shaderInterface{}, fmt.Errorf("ERROR: 'main' : function not defined")
	}
	var si shaderInterface
	seen := make(map[string]bool)
	for _, m := range varDecl.FindAllStringSubmatch(src, -1) {
		qual, tname, name, count := m[1], m[2], m[3], m[4]
		t, ok := glslTypes[tname]
		if !ok {
			return shaderInterface{}, fmt.Errorf("ERROR: '%s' : unknown type", tname)
		}
		if strings.HasPrefix(name, "gl_") || strings.HasPrefix(name, "webgl_") || strings.HasPrefix(name, "_webgl_") {
			return shaderInterface{}, fmt.Errorf("ERROR: '%s' : reserved name", name)
		}
		if seen[name] {
			return shaderInterface{}, fmt.Errorf("ERROR: '%s' : redefinition", name)
		}
		seen[name] = true
		v := variable{name: name, typ: t, size: 1}
		if count != "" {
			n, err := strconv.Atoi(count)
			if err != nil || n <= 0 {
				return shaderInterface{}, fmt.Errorf("ERROR: '%s' : invalid array size", name)
			}
			v.size = int32(n)
		}
		switch qual {
		case "attribute":
			if typ != gl.VERTEX_SHADER {
				return shaderInterface{}, fmt.Errorf("ERROR: '%s' : attribute in fragment shader", name)
			}
			if !attribTypes[t] || count != "" {
				return shaderInterface{}, fmt.Errorf("ERROR: '%s' : invalid attribute type", name)
			}
			si.attribs = append(si.attribs, v)
		default:
			si.uniforms = append(si.uniforms, v)
		}
	}
	return si, nil
}

// attribSlots is the number of locations an attribute of type t takes.
func attribSlots(t gl.Enum) int32 {
	switch t {
	case gl.FLOAT_MAT2:
		return 2
	case gl.FLOAT_MAT3:
		return 3
	case gl.FLOAT_MAT4:
		return 4
	}
	return 1
}

// uniformComponents is the number of scalars in one element of type t.
func uniformComponents(t gl.Enum) int {
	switch t {
	case gl.FLOAT_VEC2, gl.INT_VEC2, gl.BOOL_VEC2:
		return 2
	case gl.FLOAT_VEC3, gl.INT_VEC3, gl.BOOL_VEC3:
		return 3
	case gl.FLOAT_VEC4, gl.INT_VEC4, gl.BOOL_VEC4, gl.FLOAT_MAT2:
		return 4
	case gl.FLOAT_MAT3:
		return 9
	case gl.FLOAT_MAT4:
		return 16
	}
	return 1
}

func isFloatType(t gl.Enum) bool {
	switch t {
	case gl.FLOAT, gl.FLOAT_VEC2, gl.FLOAT_VEC3, gl.FLOAT_VEC4, gl.FLOAT_MAT2, gl.FLOAT_MAT3, gl.FLOAT_MAT4:
		return true
	}
	return false
}
