// SPDX-License-Identifier: Unlicense OR MIT

package command

// Tag identifies the kind of a Command.
type Tag uint8

const (
	TagCreateContext Tag = iota
	TagRemoveContext
	TagResize
	TagGetContextAttributes
	TagGetDrawingBufferSize
	TagGetExtensions
	TagFinish
	TagFlush
	TagCreateBuffer
	TagCreateFramebuffer
	TagCreateRenderbuffer
	TagCreateTexture
	TagCreateProgram
	TagCreateShader
	TagCreateVertexArray
	TagDeleteBuffer
	TagDeleteFramebuffer
	TagDeleteRenderbuffer
	TagDeleteTexture
	TagDeleteProgram
	TagDeleteShader
	TagDeleteVertexArray
	TagActiveTexture
	TagBindBuffer
	TagBindFramebuffer
	TagBindRenderbuffer
	TagBindTexture
	TagBindVertexArray
	TagUseProgram
	TagBufferData
	TagBufferSubData
	TagBlendColor
	TagBlendEquation
	TagBlendEquationSeparate
	TagBlendFunc
	TagBlendFuncSeparate
	TagClear
	TagClearColor
	TagClearDepth
	TagClearStencil
	TagColorMask
	TagCullFace
	TagDepthFunc
	TagDepthMask
	TagDepthRange
	TagEnable
	TagDisable
	TagFrontFace
	TagHint
	TagLineWidth
	TagPolygonOffset
	TagSampleCoverage
	TagScissor
	TagViewport
	TagStencilFunc
	TagStencilFuncSeparate
	TagStencilMask
	TagStencilMaskSeparate
	TagStencilOp
	TagStencilOpSeparate
	TagFramebufferRenderbuffer
	TagFramebufferTexture2D
	TagRenderbufferStorage
	TagInitializeFramebuffer
	TagGetFramebufferAttachmentParameter
	TagGetRenderbufferParameter
	TagTexImage2D
	TagTexSubImage2D
	TagCompressedTexImage2D
	TagCompressedTexSubImage2D
	TagCopyTexImage2D
	TagCopyTexSubImage2D
	TagGenerateMipmap
	TagTexParameterf
	TagTexParameteri
	TagGetTexParameterInt
	TagGetTexParameterFloat
	TagAttachShader
	TagDetachShader
	TagBindAttribLocation
	TagCompileShader
	TagLinkProgram
	TagValidateProgram
	TagGetProgramValidateStatus
	TagGetShaderPrecisionFormat
	TagGetUniformLocation
	TagUniformFloat
	TagUniformInt
	TagUniformMatrix
	TagGetUniform
	TagEnableVertexAttribArray
	TagDisableVertexAttribArray
	TagVertexAttrib
	TagVertexAttribPointer
	TagVertexAttribDivisor
	TagGetCurrentVertexAttrib
	TagDrawArrays
	TagDrawArraysInstanced
	TagDrawElements
	TagDrawElementsInstanced
	TagReadPixels
	TagGetParameter
)

var tagNames = [...]string{
	TagCreateContext:                     "CreateContext",
	TagRemoveContext:                     "RemoveContext",
	TagResize:                            "Resize",
	TagGetContextAttributes:              "GetContextAttributes",
	TagGetDrawingBufferSize:              "GetDrawingBufferSize",
	TagGetExtensions:                     "GetExtensions",
	TagFinish:                            "Finish",
	TagFlush:                             "Flush",
	TagCreateBuffer:                      "CreateBuffer",
	TagCreateFramebuffer:                 "CreateFramebuffer",
	TagCreateRenderbuffer:                "CreateRenderbuffer",
	TagCreateTexture:                     "CreateTexture",
	TagCreateProgram:                     "CreateProgram",
	TagCreateShader:                      "CreateShader",
	TagCreateVertexArray:                 "CreateVertexArray",
	TagDeleteBuffer:                      "DeleteBuffer",
	TagDeleteFramebuffer:                 "DeleteFramebuffer",
	TagDeleteRenderbuffer:                "DeleteRenderbuffer",
	TagDeleteTexture:                     "DeleteTexture",
	TagDeleteProgram:                     "DeleteProgram",
	TagDeleteShader:                      "DeleteShader",
	TagDeleteVertexArray:                 "DeleteVertexArray",
	TagActiveTexture:                     "ActiveTexture",
	TagBindBuffer:                        "BindBuffer",
	TagBindFramebuffer:                   "BindFramebuffer",
	TagBindRenderbuffer:                  "BindRenderbuffer",
	TagBindTexture:                       "BindTexture",
	TagBindVertexArray:                   "BindVertexArray",
	TagUseProgram:                        "UseProgram",
	TagBufferData:                        "BufferData",
	TagBufferSubData:                     "BufferSubData",
	TagBlendColor:                        "BlendColor",
	TagBlendEquation:                     "BlendEquation",
	TagBlendEquationSeparate:             "BlendEquationSeparate",
	TagBlendFunc:                         "BlendFunc",
	TagBlendFuncSeparate:                 "BlendFuncSeparate",
	TagClear:                             "Clear",
	TagClearColor:                        "ClearColor",
	TagClearDepth:                        "ClearDepth",
	TagClearStencil:                      "ClearStencil",
	TagColorMask:                         "ColorMask",
	TagCullFace:                          "CullFace",
	TagDepthFunc:                         "DepthFunc",
	TagDepthMask:                         "DepthMask",
	TagDepthRange:                        "DepthRange",
	TagEnable:                            "Enable",
	TagDisable:                           "Disable",
	TagFrontFace:                         "FrontFace",
	TagHint:                              "Hint",
	TagLineWidth:                         "LineWidth",
	TagPolygonOffset:                     "PolygonOffset",
	TagSampleCoverage:                    "SampleCoverage",
	TagScissor:                           "Scissor",
	TagViewport:                          "Viewport",
	TagStencilFunc:                       "StencilFunc",
	TagStencilFuncSeparate:               "StencilFuncSeparate",
	TagStencilMask:                       "StencilMask",
	TagStencilMaskSeparate:               "StencilMaskSeparate",
	TagStencilOp:                         "StencilOp",
	TagStencilOpSeparate:                 "StencilOpSeparate",
	TagFramebufferRenderbuffer:           "FramebufferRenderbuffer",
	TagFramebufferTexture2D:              "FramebufferTexture2D",
	TagRenderbufferStorage:               "RenderbufferStorage",
	TagInitializeFramebuffer:             "InitializeFramebuffer",
	TagGetFramebufferAttachmentParameter: "GetFramebufferAttachmentParameter",
	TagGetRenderbufferParameter:          "GetRenderbufferParameter",
	TagTexImage2D:                        "TexImage2D",
	TagTexSubImage2D:                     "TexSubImage2D",
	TagCompressedTexImage2D:              "CompressedTexImage2D",
	TagCompressedTexSubImage2D:           "CompressedTexSubImage2D",
	TagCopyTexImage2D:                    "CopyTexImage2D",
	TagCopyTexSubImage2D:                 "CopyTexSubImage2D",
	TagGenerateMipmap:                    "GenerateMipmap",
	TagTexParameterf:                     "TexParameterf",
	TagTexParameteri:                     "TexParameteri",
	TagGetTexParameterInt:                "GetTexParameterInt",
	TagGetTexParameterFloat:              "GetTexParameterFloat",
	TagAttachShader:                      "AttachShader",
	TagDetachShader:                      "DetachShader",
	TagBindAttribLocation:                "BindAttribLocation",
	TagCompileShader:                     "CompileShader",
	TagLinkProgram:                       "LinkProgram",
	TagValidateProgram:                   "ValidateProgram",
	TagGetProgramValidateStatus:          "GetProgramValidateStatus",
	TagGetShaderPrecisionFormat:          "GetShaderPrecisionFormat",
	TagGetUniformLocation:                "GetUniformLocation",
	TagUniformFloat:                      "UniformFloat",
	TagUniformInt:                        "UniformInt",
	TagUniformMatrix:                     "UniformMatrix",
	TagGetUniform:                        "GetUniform",
	TagEnableVertexAttribArray:           "EnableVertexAttribArray",
	TagDisableVertexAttribArray:          "DisableVertexAttribArray",
	TagVertexAttrib:                      "VertexAttrib",
	TagVertexAttribPointer:               "VertexAttribPointer",
	TagVertexAttribDivisor:               "VertexAttribDivisor",
	TagGetCurrentVertexAttrib:            "GetCurrentVertexAttrib",
	TagDrawArrays:                        "DrawArrays",
	TagDrawArraysInstanced:               "DrawArraysInstanced",
	TagDrawElements:                      "DrawElements",
	TagDrawElementsInstanced:             "DrawElementsInstanced",
	TagReadPixels:                        "ReadPixels",
	TagGetParameter:                      "GetParameter",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Unknown"
}

func (CreateContext) Tag() Tag { return TagCreateContext }
func (RemoveContext) Tag() Tag { return TagRemoveContext }
func (Resize) Tag() Tag { return TagResize }
func (GetContextAttributes) Tag() Tag { return TagGetContextAttributes }
func (GetDrawingBufferSize) Tag() Tag { return TagGetDrawingBufferSize }
func (GetExtensions) Tag() Tag { return TagGetExtensions }
func (Finish) Tag() Tag { return TagFinish }
func (Flush) Tag() Tag { return TagFlush }
func (CreateBuffer) Tag() Tag { return TagCreateBuffer }
func (CreateFramebuffer) Tag() Tag { return TagCreateFramebuffer }
func (CreateRenderbuffer) Tag() Tag { return TagCreateRenderbuffer }
func (CreateTexture) Tag() Tag { return TagCreateTexture }
func (CreateProgram) Tag() Tag { return TagCreateProgram }
func (CreateShader) Tag() Tag { return TagCreateShader }
func (CreateVertexArray) Tag() Tag { return TagCreateVertexArray }
func (DeleteBuffer) Tag() Tag { return TagDeleteBuffer }
func (DeleteFramebuffer) Tag() Tag { return TagDeleteFramebuffer }
func (DeleteRenderbuffer) Tag() Tag { return TagDeleteRenderbuffer }
func (DeleteTexture) Tag() Tag { return TagDeleteTexture }
func (DeleteProgram) Tag() Tag { return TagDeleteProgram }
func (DeleteShader) Tag() Tag { return TagDeleteShader }
func (DeleteVertexArray) Tag() Tag { return TagDeleteVertexArray }
func (ActiveTexture) Tag() Tag { return TagActiveTexture }
func (BindBuffer) Tag() Tag { return TagBindBuffer }
func (BindFramebuffer) Tag() Tag { return TagBindFramebuffer }
func (BindRenderbuffer) Tag() Tag { return TagBindRenderbuffer }
func (BindTexture) Tag() Tag { return TagBindTexture }
func (BindVertexArray) Tag() Tag { return TagBindVertexArray }
func (UseProgram) Tag() Tag { return TagUseProgram }
func (BufferData) Tag() Tag { return TagBufferData }
func (BufferSubData) Tag() Tag { return TagBufferSubData }
func (BlendColor) Tag() Tag { return TagBlendColor }
func (BlendEquation) Tag() Tag { return TagBlendEquation }
func (BlendEquationSeparate) Tag() Tag { return TagBlendEquationSeparate }
func (BlendFunc) Tag() Tag { return TagBlendFunc }
func (BlendFuncSeparate) Tag() Tag { return TagBlendFuncSeparate }
func (Clear) Tag() Tag { return TagClear }
func (ClearColor) Tag() Tag { return TagClearColor }
func (ClearDepth) Tag() Tag { return TagClearDepth }
func (ClearStencil) Tag() Tag { return TagClearStencil }
func (ColorMask) Tag() Tag { return TagColorMask }
func (CullFace) Tag() Tag { return TagCullFace }
func (DepthFunc) Tag() Tag { return TagDepthFunc }
func (DepthMask) Tag() Tag { return TagDepthMask }
func (DepthRange) Tag() Tag { return TagDepthRange }
func (Enable) Tag() Tag { return TagEnable }
func (Disable) Tag() Tag { return TagDisable }
func (FrontFace) Tag() Tag { return TagFrontFace }
func (Hint) Tag() Tag { return TagHint }
func (LineWidth) Tag() Tag { return TagLineWidth }
func (PolygonOffset) Tag() Tag { return TagPolygonOffset }
func (SampleCoverage) Tag() Tag { return TagSampleCoverage }
func (Scissor) Tag() Tag { return TagScissor }
func (Viewport) Tag() Tag { return TagViewport }
func (StencilFunc) Tag() Tag { return TagStencilFunc }
func (StencilFuncSeparate) Tag() Tag { return TagStencilFuncSeparate }
func (StencilMask) Tag() Tag { return TagStencilMask }
func (StencilMaskSeparate) Tag() Tag { return TagStencilMaskSeparate }
func (StencilOp) Tag() Tag { return TagStencilOp }
func (StencilOpSeparate) Tag() Tag { return TagStencilOpSeparate }
func (FramebufferRenderbuffer) Tag() Tag { return TagFramebufferRenderbuffer }
func (FramebufferTexture2D) Tag() Tag { return TagFramebufferTexture2D }
func (RenderbufferStorage) Tag() Tag { return TagRenderbufferStorage }
func (InitializeFramebuffer) Tag() Tag { return TagInitializeFramebuffer }
func (GetFramebufferAttachmentParameter) Tag() Tag { return TagGetFramebufferAttachmentParameter }
func (GetRenderbufferParameter) Tag() Tag { return TagGetRenderbufferParameter }
func (TexImage2D) Tag() Tag { return TagTexImage2D }
func (TexSubImage2D) Tag() Tag { return TagTexSubImage2D }
func (CompressedTexImage2D) Tag() Tag { return TagCompressedTexImage2D }
func (CompressedTexSubImage2D) Tag() Tag { return TagCompressedTexSubImage2D }
func (CopyTexImage2D) Tag() Tag { return TagCopyTexImage2D }
func (CopyTexSubImage2D) Tag() Tag { return TagCopyTexSubImage2D }
func (GenerateMipmap) Tag() Tag { return TagGenerateMipmap }
func (TexParameterf) Tag() Tag { return TagTexParameterf }
func (TexParameteri) Tag() Tag { return TagTexParameteri }
func (GetTexParameterInt) Tag() Tag { return TagGetTexParameterInt }
func (GetTexParameterFloat) Tag() Tag { return TagGetTexParameterFloat }
func (AttachShader) Tag() Tag { return TagAttachShader }
func (DetachShader) Tag() Tag { return TagDetachShader }
func (BindAttribLocation) Tag() Tag { return TagBindAttribLocation }
func (CompileShader) Tag() Tag { return TagCompileShader }
func (LinkProgram) Tag() Tag { return TagLinkProgram }
func (ValidateProgram) Tag() Tag { return TagValidateProgram }
func (GetProgramValidateStatus) Tag() Tag { return TagGetProgramValidateStatus }
func (GetShaderPrecisionFormat) Tag() Tag { return TagGetShaderPrecisionFormat }
func (GetUniformLocation) Tag() Tag { return TagGetUniformLocation }
func (UniformFloat) Tag() Tag { return TagUniformFloat }
func (UniformInt) Tag() Tag { return TagUniformInt }
func (UniformMatrix) Tag() Tag { return TagUniformMatrix }
func (GetUniform) Tag() Tag { return TagGetUniform }
func (EnableVertexAttribArray) Tag() Tag { return TagEnableVertexAttribArray }
func (DisableVertexAttribArray) Tag() Tag { return TagDisableVertexAttribArray }
func (VertexAttrib) Tag() Tag { return TagVertexAttrib }
func (VertexAttribPointer) Tag() Tag { return TagVertexAttribPointer }
func (VertexAttribDivisor) Tag() Tag { return TagVertexAttribDivisor }
func (GetCurrentVertexAttrib) Tag() Tag { return TagGetCurrentVertexAttrib }
func (DrawArrays) Tag() Tag { return TagDrawArrays }
func (DrawArraysInstanced) Tag() Tag { return TagDrawArraysInstanced }
func (DrawElements) Tag() Tag { return TagDrawElements }
func (DrawElementsInstanced) Tag() Tag { return TagDrawElementsInstanced }
func (ReadPixels) Tag() Tag { return TagReadPixels }
func (GetParameter) Tag() Tag { return TagGetParameter }
