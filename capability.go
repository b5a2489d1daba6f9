// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// capabilities lists the toggles of Enable and Disable. The index of a
// capability is its bit in a capabilitySet.
var capabilities = [...]gl.Enum{
	gl.BLEND,
	gl.CULL_FACE,
	gl.DEPTH_TEST,
	gl.DITHER,
	gl.POLYGON_OFFSET_FILL,
	gl.SAMPLE_ALPHA_TO_COVERAGE,
	gl.SAMPLE_COVERAGE,
	gl.SCISSOR_TEST,
	gl.STENCIL_TEST,
}

type capabilitySet uint16

var defaultCapabilities = capabilitySet(1 << capabilityBit(gl.DITHER))

func capabilityBit(cap gl.Enum) int {
	for i, c := range capabilities {
		if c == cap {
			return i
		}
	}
	return -1
}

// set updates cap and reports whether its value changed.
func (s *capabilitySet) set(cap gl.Enum, enable bool) (bool, error) {
	bit := capabilityBit(cap)
	if bit < 0 {
		return false, InvalidEnum
	}
	mask := capabilitySet(1) << bit
	old := *s
	if enable {
		*s |= mask
	} else {
		*s &^= mask
	}
	return old != *s, nil
}

func (s capabilitySet) isEnabled(cap gl.Enum) (bool, error) {
	bit := capabilityBit(cap)
	if bit < 0 {
		return false, InvalidEnum
	}
	return s&(1<<bit) != 0, nil
}

func (c *Context) Enable(cap gl.Enum) {
	if c.isLost() {
		return
	}
	changed, err := c.caps.set(cap, true)
	if c.check(err) || !changed {
		return
	}
	c.send(command.Enable{Cap: cap})
}

func (c *Context) Disable(cap gl.Enum) {
	if c.isLost() {
		return
	}
	changed, err := c.caps.set(cap, false)
	if c.check(err) || !changed {
		return
	}
	c.send(command.Disable{Cap: cap})
}

func (c *Context) IsEnabled(cap gl.Enum) bool {
	if c.isLost() {
		return false
	}
	on, err := c.caps.isEnabled(cap)
	if c.check(err) {
		return false
	}
	return on
}
