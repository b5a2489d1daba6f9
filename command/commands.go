// SPDX-License-Identifier: Unlicense OR MIT

package command

import (
	"image"

	"gioui.org/webgl/gl"
	"gioui.org/webgl/shm"
)

// Context lifecycle.

type CreateContext struct {
	Size       image.Point
	Attributes Attributes
	Reply[ContextInfo]
}

type RemoveContext struct{}

type Resize struct {
	Size image.Point
	Reply[struct{}]
}

type GetContextAttributes struct {
	Reply[Attributes]
}

type GetDrawingBufferSize struct {
	Reply[image.Point]
}

// GetExtensions answers the native extension names of the backend.
type GetExtensions struct {
	Reply[[]string]
}

type Finish struct {
	Reply[struct{}]
}

type Flush struct{}

// Object creation and deletion.

type CreateBuffer struct{ ID ObjectID }

type CreateFramebuffer struct{ ID ObjectID }

type CreateRenderbuffer struct{ ID ObjectID }

type CreateTexture struct{ ID ObjectID }

type CreateProgram struct{ ID ObjectID }

type CreateShader struct {
	ID   ObjectID
	Type gl.Enum
}

type CreateVertexArray struct{ ID ObjectID }

type DeleteBuffer struct{ ID ObjectID }

type DeleteFramebuffer struct{ ID ObjectID }

type DeleteRenderbuffer struct{ ID ObjectID }

type DeleteTexture struct{ ID ObjectID }

type DeleteProgram struct{ ID ObjectID }

type DeleteShader struct{ ID ObjectID }

type DeleteVertexArray struct{ ID ObjectID }

// Bindings. A zero ID unbinds, or binds the default object.

type ActiveTexture struct{ Unit gl.Enum }

type BindBuffer struct {
	Target gl.Enum
	ID     ObjectID
}

type BindFramebuffer struct {
	Target gl.Enum
	ID     ObjectID
}

type BindRenderbuffer struct {
	Target gl.Enum
	ID     ObjectID
}

type BindTexture struct {
	Target gl.Enum
	ID     ObjectID
}

type BindVertexArray struct{ ID ObjectID }

type UseProgram struct{ ID ObjectID }

// Buffer contents.

type BufferData struct {
	Target gl.Enum
	Data   []byte
	Usage  gl.Enum
}

type BufferSubData struct {
	Target gl.Enum
	Offset int
	Data   []byte
}

// Fixed function state.

type BlendColor struct{ Color [4]float32 }

type BlendEquation struct{ Mode gl.Enum }

type BlendEquationSeparate struct{ RGB, Alpha gl.Enum }

type BlendFunc struct{ Src, Dst gl.Enum }

type BlendFuncSeparate struct {
	SrcRGB, DstRGB     gl.Enum
	SrcAlpha, DstAlpha gl.Enum
}

type Clear struct{ Mask gl.Enum }

type ClearColor struct{ Color [4]float32 }

type ClearDepth struct{ Depth float32 }

type ClearStencil struct{ Stencil int32 }

type ColorMask struct{ Mask [4]bool }

type CullFace struct{ Mode gl.Enum }

type DepthFunc struct{ Func gl.Enum }

type DepthMask struct{ Flag bool }

type DepthRange struct{ Near, Far float32 }

type Enable struct{ Cap gl.Enum }

type Disable struct{ Cap gl.Enum }

type FrontFace struct{ Mode gl.Enum }

type Hint struct{ Target, Mode gl.Enum }

type LineWidth struct{ Width float32 }

type PolygonOffset struct{ Factor, Units float32 }

type SampleCoverage struct {
	Value  float32
	Invert bool
}

type Scissor struct{ Rect Rect }

type Viewport struct{ Rect Rect }

type StencilFunc struct {
	Func gl.Enum
	Ref  int32
	Mask uint32
}

type StencilFuncSeparate struct {
	Face gl.Enum
	Func gl.Enum
	Ref  int32
	Mask uint32
}

type StencilMask struct{ Mask uint32 }

type StencilMaskSeparate struct {
	Face gl.Enum
	Mask uint32
}

type StencilOp struct{ Fail, ZFail, ZPass gl.Enum }

type StencilOpSeparate struct {
	Face              gl.Enum
	Fail, ZFail, ZPass gl.Enum
}

// Framebuffers and renderbuffers.

type FramebufferRenderbuffer struct {
	Target             gl.Enum
	Attachment         gl.Enum
	RenderbufferTarget gl.Enum
	ID                 ObjectID
}

type FramebufferTexture2D struct {
	Target     gl.Enum
	Attachment gl.Enum
	TexTarget  gl.Enum
	ID         ObjectID
	Level      int32
}

type RenderbufferStorage struct {
	Target         gl.Enum
	InternalFormat gl.Enum
	Width, Height  int32
}

// InitializeFramebuffer clears the listed buffers of the bound framebuffer
// before their first use.
type InitializeFramebuffer struct {
	Color, Depth, Stencil bool
}

type GetFramebufferAttachmentParameter struct {
	Target, Attachment, Param gl.Enum
	Reply[int32]
}

type GetRenderbufferParameter struct {
	Target, Param gl.Enum
	Reply[int32]
}

// Textures.

// TexImage2D uploads level of the texture bound to Target. A nil Pixels
// allocates zeroed storage. The backend owns Pixels and closes it once the
// upload is applied.
type TexImage2D struct {
	Target          gl.Enum
	Level           int32
	InternalFormat  gl.Enum
	Width, Height   int32
	Format, Type    gl.Enum
	Pixels          *shm.Buffer
	UnpackAlignment int32
	Alpha           AlphaTreatment
	FlipY           bool
}

// TexSubImage2D replaces a region of an existing level. Pixels is owned
// as in TexImage2D.
type TexSubImage2D struct {
	Target          gl.Enum
	Level           int32
	X, Y            int32
	Width, Height   int32
	Format, Type    gl.Enum
	Pixels          *shm.Buffer
	UnpackAlignment int32
	Alpha           AlphaTreatment
	FlipY           bool
}

type CompressedTexImage2D struct {
	Target         gl.Enum
	Level          int32
	InternalFormat gl.Enum
	Width, Height  int32
	Data           []byte
}

type CompressedTexSubImage2D struct {
	Target        gl.Enum
	Level         int32
	X, Y          int32
	Width, Height int32
	Format        gl.Enum
	Data          []byte
}

type CopyTexImage2D struct {
	Target         gl.Enum
	Level          int32
	InternalFormat gl.Enum
	Rect           Rect
}

type CopyTexSubImage2D struct {
	Target           gl.Enum
	Level            int32
	XOffset, YOffset int32
	Rect             Rect
}

type GenerateMipmap struct{ Target gl.Enum }

type TexParameterf struct {
	Target, Param gl.Enum
	Value         float32
}

type TexParameteri struct {
	Target, Param gl.Enum
	Value         int32
}

type GetTexParameterInt struct {
	Target, Param gl.Enum
	Reply[int32]
}

type GetTexParameterFloat struct {
	Target, Param gl.Enum
	Reply[float32]
}

// Shaders and programs.

type AttachShader struct{ Program, Shader ObjectID }

type DetachShader struct{ Program, Shader ObjectID }

type BindAttribLocation struct {
	Program ObjectID
	Index   uint32
	Name    string
}

type CompileShader struct {
	ID     ObjectID
	Source string
	Reply[CompileInfo]
}

type LinkProgram struct {
	ID ObjectID
	Reply[LinkInfo]
}

type ValidateProgram struct{ ID ObjectID }

type GetProgramValidateStatus struct {
	ID ObjectID
	Reply[bool]
}

type GetShaderPrecisionFormat struct {
	ShaderType, PrecisionType gl.Enum
	Reply[PrecisionFormat]
}

// GetUniformLocation answers -1 for names without a location.
type GetUniformLocation struct {
	Program ObjectID
	Name    string
	Reply[int32]
}

// Uniforms.

type UniformFloat struct {
	Location   int32
	Components int
	Values     []float32
}

type UniformInt struct {
	Location   int32
	Components int
	Values     []int32
}

type UniformMatrix struct {
	Location int32
	Dim      int
	Values   []float32
}

type GetUniform struct {
	Program  ObjectID
	Location int32
	Type     gl.Enum
	Reply[UniformValue]
}

// Vertex attributes.

type EnableVertexAttribArray struct{ Index uint32 }

type DisableVertexAttribArray struct{ Index uint32 }

type VertexAttrib struct {
	Index uint32
	Value [4]float32
}

type VertexAttribPointer struct {
	Index      uint32
	Size       int32
	Type       gl.Enum
	Normalized bool
	Stride     int32
	Offset     int32
}

type VertexAttribDivisor struct {
	Index   uint32
	Divisor uint32
}

type GetCurrentVertexAttrib struct {
	Index uint32
	Reply[[4]float32]
}

// Draws.

type DrawArrays struct {
	Mode         gl.Enum
	First, Count int32
}

type DrawArraysInstanced struct {
	Mode         gl.Enum
	First, Count int32
	Primcount    int32
}

type DrawElements struct {
	Mode   gl.Enum
	Count  int32
	Type   gl.Enum
	Offset int64
}

type DrawElementsInstanced struct {
	Mode      gl.Enum
	Count     int32
	Type      gl.Enum
	Offset    int64
	Primcount int32
}

// Reads and generic state queries.

// ReadPixels answers a tightly packed RGBA/UNSIGNED_BYTE region.
type ReadPixels struct {
	Rect         Rect
	Format, Type gl.Enum
	Reply[*shm.Buffer]
}

type GetParameter struct {
	Param gl.Enum
	Kind  ParamKind
	Reply[ParamValue]
}
