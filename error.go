// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/gl"
)

// Error is a WebGL error code.
type Error uint8

const (
	InvalidEnum Error = iota + 1
	InvalidValue
	InvalidOperation
	InvalidFramebufferOperation
	OutOfMemory
	ContextLost
)

var errorNames = [...]string{
	InvalidEnum:                 "invalid enum",
	InvalidValue:                "invalid value",
	InvalidOperation:            "invalid operation",
	InvalidFramebufferOperation: "invalid framebuffer operation",
	OutOfMemory:                 "out of memory",
	ContextLost:                 "context lost",
}

func (e Error) Error() string {
	if int(e) < len(errorNames) && errorNames[e] != "" {
		return "webgl: " + errorNames[e]
	}
	return "webgl: unknown error"
}

// Code returns the GL error constant of e.
func (e Error) Code() gl.Enum {
	switch e {
	case InvalidEnum:
		return gl.INVALID_ENUM
	case InvalidValue:
		return gl.INVALID_VALUE
	case InvalidOperation:
		return gl.INVALID_OPERATION
	case InvalidFramebufferOperation:
		return gl.INVALID_FRAMEBUFFER_OPERATION
	case OutOfMemory:
		return gl.OUT_OF_MEMORY
	case ContextLost:
		return gl.CONTEXT_LOST_WEBGL
	default:
		return gl.NO_ERROR
	}
}

// errorRegister keeps the first error recorded since the last poll.
type errorRegister struct {
	err Error
}

func (r *errorRegister) set(e Error) bool {
	if r.err != 0 {
		return false
	}
	r.err = e
	return true
}

func (r *errorRegister) take() Error {
	e := r.err
	r.err = 0
	return e
}
