// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gioui.org/webgl/command"
)

// Config describes the implementation a Backend pretends to be.
type Config struct {
	// API is "gl" or "gles".
	API         string         `yaml:"api"`
	GLSLVersion string         `yaml:"glsl_version"`
	Limits      command.Limits `yaml:"limits"`
	// Extensions are the native extension names reported to contexts.
	Extensions []string `yaml:"extensions"`
	// Antialias and PreserveDrawingBuffer cap the requested context
	// attributes.
	Antialias             bool `yaml:"antialias"`
	PreserveDrawingBuffer bool `yaml:"preserve_drawing_buffer"`
	// Inbox is the capacity of the command queue.
	Inbox int `yaml:"inbox"`
}

// DefaultConfig returns a GLES implementation with the minimum limits of
// WebGL 1 and no extensions.
func DefaultConfig() Config {
	return Config{
		API:         "gles",
		GLSLVersion: "100",
		Limits: command.Limits{
			MaxVertexAttribs:             8,
			MaxTextureSize:               2048,
			MaxCubeMapTextureSize:        1024,
			MaxCombinedTextureImageUnits: 8,
			MaxTextureImageUnits:         8,
			MaxVertexTextureImageUnits:   0,
			MaxRenderbufferSize:          2048,
			MaxViewportDims:              [2]int{2048, 2048},
			MaxFragmentUniformVectors:    16,
			MaxVertexUniformVectors:      128,
			MaxVaryingVectors:            8,
		},
		Antialias:             true,
		PreserveDrawingBuffer: true,
		Inbox:                 64,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("headless: reading config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("headless: %s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) api() (command.API, error) {
	switch strings.ToLower(c.API) {
	case "gl":
		return command.APIGL, nil
	case "gles", "":
		return command.APIGLES, nil
	default:
		return 0, fmt.Errorf("unknown api %q", c.API)
	}
}

func (c Config) validate() error {
	if _, err := c.api(); err != nil {
		return err
	}
	l := c.Limits
	switch {
	case l.MaxVertexAttribs <= 0:
		return fmt.Errorf("max_vertex_attribs must be positive, got %d", l.MaxVertexAttribs)
	case l.MaxCombinedTextureImageUnits <= 0:
		return fmt.Errorf("max_combined_texture_image_units must be positive, got %d", l.MaxCombinedTextureImageUnits)
	case l.MaxTextureSize <= 0 || l.MaxCubeMapTextureSize <= 0 || l.MaxRenderbufferSize <= 0:
		return fmt.Errorf("texture and renderbuffer sizes must be positive")
	case c.Inbox < 0:
		return fmt.Errorf("negative inbox capacity %d", c.Inbox)
	}
	return nil
}
