// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"gioui.org/webgl/gl"
)

type textureUnit struct {
	tex2D   *Texture
	cubeMap *Texture
}

// textureUnits is the per-unit binding table selected by ActiveTexture.
type textureUnits struct {
	units  []textureUnit
	active int
}

// boundSlot names one (unit, target) binding.
type boundSlot struct {
	unit   int
	target gl.Enum
}

func newTextureUnits(n int) textureUnits {
	if n < 1 {
		n = 1
	}
	return textureUnits{units: make([]textureUnit, n)}
}

func (u *textureUnits) setActive(unit gl.Enum) error {
	if unit < gl.TEXTURE0 || int(unit-gl.TEXTURE0) >= len(u.units) {
		return InvalidEnum
	}
	u.active = int(unit - gl.TEXTURE0)
	return nil
}

func (u *textureUnits) activeEnum() gl.Enum {
	return gl.TEXTURE0 + gl.Enum(u.active)
}

func (u *textureUnits) slot(target gl.Enum) (**Texture, error) {
	unit := &u.units[u.active]
	switch target {
	case gl.TEXTURE_2D:
		return &unit.tex2D, nil
	case gl.TEXTURE_CUBE_MAP:
		return &unit.cubeMap, nil
	default:
		return nil, InvalidEnum
	}
}

// bound returns the texture bound to target on the active unit.
func (u *textureUnits) bound(target gl.Enum) (*Texture, error) {
	s, err := u.slot(target)
	if err != nil {
		return nil, err
	}
	return *s, nil
}

func (u *textureUnits) active2D() *Texture {
	return u.units[u.active].tex2D
}

// sweep clears every slot holding t and returns the cleared slots in unit
// order.
func (u *textureUnits) sweep(t *Texture) []boundSlot {
	var cleared []boundSlot
	for i := range u.units {
		unit := &u.units[i]
		if unit.tex2D == t {
			unit.tex2D = nil
			cleared = append(cleared, boundSlot{unit: i, target: gl.TEXTURE_2D})
		}
		if unit.cubeMap == t {
			unit.cubeMap = nil
			cleared = append(cleared, boundSlot{unit: i, target: gl.TEXTURE_CUBE_MAP})
		}
	}
	return cleared
}
