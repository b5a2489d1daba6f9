// SPDX-License-Identifier: Unlicense OR MIT

/*
Package command defines the wire boundary between a WebGL context and the
backend that executes its commands.

Every backend-bound operation is a value implementing Command, identified by
a Tag from a closed set. Mutations are sent without waiting. Queries embed a
single-use Reply that the backend answers exactly once, with either a value
or a failure.

Commands of one context travel in FIFO order over a Channel. A Channel whose
backend has gone away reports ErrContextLost for every later send or wait.
*/
package command

import (
	"image"

	"gioui.org/webgl/gl"
)

// Version is the protocol version of the command set.
const Version = 1

// ObjectID names a GL object within its context. The zero ID is the
// default object (or none) of its kind.
type ObjectID uint32

// ContextID names a context within its backend.
type ContextID uint64

// Command is a backend-bound operation.
type Command interface {
	Tag() Tag
}

// Query is a Command that expects a reply.
type Query interface {
	Command
	// Fail answers the query with the failure sentinel.
	Fail(err error)
}

// Message is the unit sent over a channel.
type Message struct {
	Context ContextID
	Command Command
}

// API is the native API flavor of a backend.
type API uint8

const (
	APIGL API = iota
	APIGLES
)

func (a API) String() string {
	switch a {
	case APIGL:
		return "GL"
	case APIGLES:
		return "GLES"
	default:
		return "unknown"
	}
}

// Limits are the implementation limits reported at context creation.
type Limits struct {
	MaxVertexAttribs             int    `yaml:"max_vertex_attribs"`
	MaxTextureSize               int    `yaml:"max_texture_size"`
	MaxCubeMapTextureSize        int    `yaml:"max_cube_map_texture_size"`
	MaxCombinedTextureImageUnits int    `yaml:"max_combined_texture_image_units"`
	MaxTextureImageUnits         int    `yaml:"max_texture_image_units"`
	MaxVertexTextureImageUnits   int    `yaml:"max_vertex_texture_image_units"`
	MaxRenderbufferSize          int    `yaml:"max_renderbuffer_size"`
	MaxViewportDims              [2]int `yaml:"max_viewport_dims"`
	MaxFragmentUniformVectors    int    `yaml:"max_fragment_uniform_vectors"`
	MaxVertexUniformVectors      int    `yaml:"max_vertex_uniform_vectors"`
	MaxVaryingVectors            int    `yaml:"max_varying_vectors"`
}

// Attributes are the drawing buffer attributes of a context.
type Attributes struct {
	Alpha                 bool `yaml:"alpha"`
	Depth                 bool `yaml:"depth"`
	Stencil               bool `yaml:"stencil"`
	Antialias             bool `yaml:"antialias"`
	PremultipliedAlpha    bool `yaml:"premultiplied_alpha"`
	PreserveDrawingBuffer bool `yaml:"preserve_drawing_buffer"`
}

// ContextInfo answers CreateContext.
type ContextInfo struct {
	ID          ContextID
	Version     int
	API         API
	GLSLVersion string
	Limits      Limits
	Attributes  Attributes
}

// AlphaTreatment is the alpha conversion a backend applies to uploaded
// pixels.
type AlphaTreatment uint8

const (
	AlphaNone AlphaTreatment = iota
	AlphaPremultiply
	AlphaUnmultiply
)

// ParamKind is the value shape of a GetParameter query.
type ParamKind uint8

const (
	ParamBool ParamKind = iota
	ParamBool4
	ParamInt
	ParamInt2
	ParamInt4
	ParamFloat
	ParamFloat2
	ParamFloat4
)

// ParamValue holds the answer to GetParameter. Only the fields matching the
// query's kind are meaningful.
type ParamValue struct {
	Bools  [4]bool
	Ints   [4]int32
	Floats [4]float32
}

type ActiveInfo struct {
	Name string
	Size int32
	Type gl.Enum
}

type ActiveAttrib struct {
	ActiveInfo
	Location int32
}

type CompileInfo struct {
	Compiled bool
	Log      string
}

type LinkInfo struct {
	Linked   bool
	Log      string
	Attribs  []ActiveAttrib
	Uniforms []ActiveInfo
}

type PrecisionFormat struct {
	RangeMin, RangeMax int32
	Precision          int32
}

// UniformValue answers GetUniform. Booleans travel as Ints.
type UniformValue struct {
	Ints   []int32
	Floats []float32
}

// Rect is a GL window rectangle.
type Rect struct {
	X, Y, Width, Height int32
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.Width), int(r.Y)+int(r.Height))
}
