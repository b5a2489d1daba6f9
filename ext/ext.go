// SPDX-License-Identifier: Unlicense OR MIT

// Package ext tracks the optional WebGL extensions of a context: which ones
// the backend supports, which ones the caller enabled, and the enums and
// format substitutions they introduce.
package ext

import (
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Manager is not safe for concurrent use.
type Manager struct {
	api   command.API
	query func() ([]string, error)

	loaded     bool
	supported  mapset.Set[string]
	enabled    mapset.Set[string]
	filterable mapset.Set[gl.Enum]
}

// New returns a manager for a backend of the given API flavor. query is
// called at most once, the first time extension support matters.
func New(api command.API, query func() ([]string, error)) *Manager {
	return &Manager{
		api:        api,
		query:      query,
		supported:  mapset.NewThreadUnsafeSet[string](),
		enabled:    mapset.NewThreadUnsafeSet[string](),
		filterable: mapset.NewThreadUnsafeSet(baseFilterable...),
	}
}

func (m *Manager) load() {
	if m.loaded {
		return
	}
	m.loaded = true
	var names []string
	if m.query != nil {
		// A failed query leaves the backend with no optional extensions.
		names, _ = m.query()
	}
	native := mapset.NewThreadUnsafeSet(names...)
	for _, e := range extensions {
		if (e.desktop && m.api == command.APIGL) || containsAny(native, e.native) {
			m.supported.Add(e.name)
		}
	}
}

func containsAny(s mapset.Set[string], names []string) bool {
	for _, n := range names {
		if s.Contains(n) {
			return true
		}
	}
	return false
}

func lookup(name string) (extension, bool) {
	for _, e := range extensions {
		if strings.EqualFold(e.name, name) {
			return e, true
		}
	}
	return extension{}, false
}

// Supported returns the names of the supported extensions, sorted.
func (m *Manager) Supported() []string {
	m.load()
	names := m.supported.ToSlice()
	slices.Sort(names)
	return names
}

// IsSupported reports whether the extension name, compared without regard to
// case, is supported by the backend.
func (m *Manager) IsSupported(name string) bool {
	e, ok := lookup(name)
	if !ok {
		return false
	}
	m.load()
	return m.supported.Contains(e.name)
}

// Enable enables a supported extension and returns its canonical name.
func (m *Manager) Enable(name string) (string, bool) {
	e, ok := lookup(name)
	if !ok || !m.IsSupported(e.name) {
		return "", false
	}
	if m.enabled.Add(e.name) {
		for _, t := range e.filterable {
			m.filterable.Add(t)
		}
	}
	return e.name, true
}

func (m *Manager) IsEnabled(name string) bool {
	e, ok := lookup(name)
	return ok && m.enabled.Contains(e.name)
}

// IsEnumEnabled reports whether e is legal as an argument of kind k. Enums
// no extension introduces are always legal.
func (m *Manager) IsEnumEnabled(k Kind, e gl.Enum) bool {
	name, gated := gates[k][e]
	return !gated || m.enabled.Contains(name)
}

// Gated reports whether e of kind k is introduced by an extension.
func Gated(k Kind, e gl.Enum) bool {
	_, ok := gates[k][e]
	return ok
}

// IsFilterable reports whether textures of data type typ may be sampled with
// linear filtering.
func (m *Manager) IsFilterable(typ gl.Enum) bool {
	return m.filterable.Contains(typ)
}

// CompressedFormats lists the compressed formats of enabled extensions.
func (m *Manager) CompressedFormats() []gl.Enum {
	var formats []gl.Enum
	for _, e := range extensions {
		if m.enabled.Contains(e.name) {
			formats = append(formats, e.enums[CompressedFormat]...)
		}
	}
	return formats
}

// EffectiveInternalFormat returns the internal format the backend needs for
// an upload of type typ.
func (m *Manager) EffectiveInternalFormat(internal, typ gl.Enum) gl.Enum {
	if m.api != command.APIGL {
		return internal
	}
	if f, ok := desktopFormats[[2]gl.Enum{internal, typ}]; ok {
		return f
	}
	return internal
}

// EffectiveType returns the data type the backend needs for typ.
func (m *Manager) EffectiveType(typ gl.Enum) gl.Enum {
	if m.api == command.APIGL && typ == gl.HALF_FLOAT_OES {
		return gl.HALF_FLOAT
	}
	return typ
}
