// SPDX-License-Identifier: Unlicense OR MIT

/*
Package webgl implements the validation and command dispatch core of a
WebGL 1 rendering context.

A Context checks every call against the WebGL rules, mirrors the binding
state of its objects, and forwards legal operations to a backend over a
command.Channel. Illegal calls record an error, retrievable with GetError,
and never reach the backend.

A Context is not safe for concurrent use.
*/
package webgl

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"
	"strings"
	"unicode"

	"gioui.org/webgl/command"
	"gioui.org/webgl/ext"
	"gioui.org/webgl/gl"
	"gioui.org/webgl/internal/log"
)

type Context struct {
	ch    *command.Channel
	id    command.ContextID
	token uint64
	info  command.ContextInfo
	exts  *ext.Manager

	errs   errorRegister
	lost   bool
	lastID command.ObjectID

	size          image.Point
	caps          capabilitySet
	units         textureUnits
	pixels        pixelStore
	clearColor    [4]float32
	scissor       command.Rect
	vertexAttrib0 [4]float32

	arrayBuffer  *Buffer
	framebuffer  *Framebuffer
	renderbuffer *Renderbuffer
	program      *Program
	// vao is the bound vertex array, nil for the default one.
	vao        *VertexArray
	defaultVAO *VertexArray
}

// NewContext creates a context of the given drawing buffer size on the
// backend behind ch.
func NewContext(ch *command.Channel, size image.Point, attrs command.Attributes) (*Context, error) {
	info, err := ch.CreateContext(command.CreateContext{Size: size, Attributes: attrs})
	if err != nil {
		return nil, fmt.Errorf("webgl: creating context: %w", err)
	}
	if info.Version != command.Version {
		return nil, fmt.Errorf("webgl: backend speaks protocol version %d, expected %d", info.Version, command.Version)
	}
	c := &Context{
		ch:            ch,
		id:            info.ID,
		token:         tokens.Add(1),
		info:          info,
		size:          size,
		caps:          defaultCapabilities,
		units:         newTextureUnits(info.Limits.MaxCombinedTextureImageUnits),
		pixels:        defaultPixelStore,
		scissor:       command.Rect{Width: int32(size.X), Height: int32(size.Y)},
		vertexAttrib0: [4]float32{0, 0, 0, 1},
	}
	c.exts = ext.New(info.API, c.queryExtensions)
	log.Logger().Debug("webgl: context created", "id", info.ID, "api", info.API, "size", size)
	return c, nil
}

func (c *Context) queryExtensions() ([]string, error) {
	r := command.NewReply[[]string]()
	names, ok := query(c, command.GetExtensions{Reply: r}, r)
	if !ok {
		return nil, errors.New("webgl: extension query failed")
	}
	return names, nil
}

// Limits returns the implementation limits of the backend.
func (c *Context) Limits() command.Limits {
	return c.info.Limits
}

// send enqueues a validated command.
func (c *Context) send(cmd command.Command) {
	if c.lost {
		return
	}
	if err := c.ch.Send(c.id, cmd); err != nil {
		c.loseContext(err)
	}
}

// query performs a round trip and reports whether a value arrived.
func query[T any](c *Context, q command.Query, r command.Reply[T]) (T, bool) {
	var zero T
	if c.lost {
		return zero, false
	}
	v, err := command.Call(c.ch, c.id, q, r)
	switch {
	case errors.Is(err, command.ErrContextLost):
		c.loseContext(err)
		return zero, false
	case err != nil:
		log.Logger().Debug("webgl: query failed", "query", q.Tag(), "error", err)
		return zero, false
	}
	return v, true
}

func (c *Context) loseContext(err error) {
	if c.lost {
		return
	}
	c.lost = true
	log.Logger().Warn("webgl: context lost", "id", c.id, "error", err)
	c.errs.set(ContextLost)
}

// isLost records ContextLost and reports true for a lost context.
func (c *Context) isLost() bool {
	if c.lost {
		c.errs.set(ContextLost)
	}
	return c.lost
}

// fail records err. Errors outside the WebGL taxonomy count as
// InvalidOperation.
func (c *Context) fail(err error) {
	var e Error
	if !errors.As(err, &e) {
		e = InvalidOperation
	}
	if !c.errs.set(e) {
		return
	}
	if l := log.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("webgl: error", "call", entrypoint(), "error", err)
	}
}

// entrypoint returns the name of the exported Context method on the call
// stack.
func entrypoint() string {
	const method = ".(*Context)."
	var pcs [32]uintptr
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs[:])])
	for {
		f, more := frames.Next()
		if i := strings.LastIndex(f.Function, method); i >= 0 {
			name := f.Function[i+len(method):]
			if name != "" && unicode.IsUpper(rune(name[0])) {
				return name
			}
		}
		if !more {
			return "unknown"
		}
	}
}

// check records err, if any, and reports whether there was one.
func (c *Context) check(err error) bool {
	if err != nil {
		c.fail(err)
		return true
	}
	return false
}

// GetError returns and clears the first error recorded since the last call.
func (c *Context) GetError() gl.Enum {
	return c.errs.take().Code()
}

func (c *Context) IsContextLost() bool {
	return c.lost
}

// Close releases the context and every backend resource it owns.
func (c *Context) Close() {
	if c.lost {
		return
	}
	c.send(command.RemoveContext{})
	c.lost = true
}

// Resize changes the drawing buffer size. The backend recreates its
// rendering target, so the transient bindings are sent again afterwards.
func (c *Context) Resize(width, height int) error {
	if c.lost {
		return command.ErrContextLost
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("webgl: invalid size %dx%d", width, height)
	}
	size := image.Pt(width, height)
	r := command.NewReply[struct{}]()
	if err := c.ch.Send(c.id, command.Resize{Size: size, Reply: r}); err != nil {
		c.loseContext(err)
		return err
	}
	if _, err := r.Wait(c.ch.Done()); err != nil {
		if errors.Is(err, command.ErrContextLost) {
			c.loseContext(err)
		}
		return fmt.Errorf("webgl: resize to %v: %w", size, err)
	}
	c.size = size
	c.send(command.ClearColor{Color: c.clearColor})
	c.send(command.Scissor{Rect: c.scissor})
	c.send(command.BindTexture{Target: gl.TEXTURE_2D, ID: c.units.active2D().name()})
	c.send(command.BindFramebuffer{Target: gl.FRAMEBUFFER, ID: c.framebuffer.name()})
	return nil
}

func (c *Context) DrawingBufferWidth() int {
	return c.drawingBufferSize().X
}

func (c *Context) DrawingBufferHeight() int {
	return c.drawingBufferSize().Y
}

func (c *Context) drawingBufferSize() image.Point {
	r := command.NewReply[image.Point]()
	if sz, ok := query(c, command.GetDrawingBufferSize{Reply: r}, r); ok {
		return sz
	}
	return image.Point{}
}

// GetContextAttributes returns the actual attributes of the drawing buffer.
// It reports false for a lost context.
func (c *Context) GetContextAttributes() (command.Attributes, bool) {
	r := command.NewReply[command.Attributes]()
	return query(c, command.GetContextAttributes{Reply: r}, r)
}

// Finish blocks until the backend applied every command sent before it.
func (c *Context) Finish() {
	if c.isLost() {
		return
	}
	r := command.NewReply[struct{}]()
	query(c, command.Finish{Reply: r}, r)
}

func (c *Context) Flush() {
	if c.isLost() {
		return
	}
	c.send(command.Flush{})
}

func (c *Context) GetSupportedExtensions() []string {
	if c.lost {
		return nil
	}
	return c.exts.Supported()
}

// GetExtension enables the named extension and returns its canonical name.
// It reports false for unsupported names.
func (c *Context) GetExtension(name string) (string, bool) {
	if c.lost {
		return "", false
	}
	return c.exts.Enable(name)
}
