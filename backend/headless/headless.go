// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements an in-process backend for webgl contexts.
//
// A Backend applies the commands of its contexts to a mirror of the GL
// state and answers their queries from it. It renders nothing beyond
// clears, but it reports every command that a conforming context would
// never send as a protocol violation.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"gioui.org/webgl/command"
	"gioui.org/webgl/internal/log"
)

var (
	errUnknownContext = errors.New("headless: unknown context")
	errUnanswerable   = errors.New("headless: query cannot be answered")
)

// Backend serves any number of contexts from one goroutine.
type Backend struct {
	cfg   Config
	inbox chan command.Message
	done  chan struct{}
	ch    *command.Channel

	contexts map[command.ContextID]*contextState
	lastID   command.ContextID

	mu         sync.Mutex
	violations []Violation
	stats      Stats
}

// Violation is a command a conforming context would not have sent.
type Violation struct {
	Context command.ContextID
	Tag     command.Tag
	Reason  string
}

func (v Violation) Error() string {
	return fmt.Sprintf("headless: context %d: %v: %s", v.Context, v.Tag, v.Reason)
}

// Stats counts the work of a backend.
type Stats struct {
	Contexts int
	Commands int
	Draws    int
}

// SetLogger configures the logger of the webgl packages. It is the same
// logger webgl.SetLogger installs.
func SetLogger(l *slog.Logger) {
	log.Set(l)
}

func New(cfg Config) (*Backend, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("headless: invalid config: %w", err)
	}
	b := &Backend{
		cfg:      cfg,
		inbox:    make(chan command.Message, cfg.Inbox),
		done:     make(chan struct{}),
		contexts: make(map[command.ContextID]*contextState),
	}
	b.ch = command.NewChannel(b.inbox, b.done)
	return b, nil
}

// Channel returns the channel contexts use to reach b.
func (b *Backend) Channel() *command.Channel {
	return b.ch
}

// Serve applies commands until ctx is done. Contexts see every later
// send and wait fail with command.ErrContextLost. Serve must be called
// once.
func (b *Backend) Serve(ctx context.Context) error {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			log.Logger().Debug("headless: backend stopped", "contexts", len(b.contexts))
			return ctx.Err()
		case m := <-b.inbox:
			b.dispatch(m)
		}
	}
}

// Violations returns the protocol violations seen so far.
func (b *Backend) Violations() []Violation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Violation(nil), b.violations...)
}

func (b *Backend) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

func (b *Backend) violate(s *contextState, tag command.Tag, format string, args ...any) {
	v := Violation{Context: s.id, Tag: tag, Reason: fmt.Sprintf(format, args...)}
	log.Logger().Warn("headless: protocol violation", "context", v.Context, "command", v.Tag, "reason", v.Reason)
	b.mu.Lock()
	b.violations = append(b.violations, v)
	b.mu.Unlock()
}

func (b *Backend) dispatch(m command.Message) {
	b.mu.Lock()
	b.stats.Commands++
	b.mu.Unlock()
	if cmd, ok := m.Command.(command.CreateContext); ok {
		b.createContext(cmd)
		return
	}
	s := b.contexts[m.Context]
	if s == nil {
		if q, ok := m.Command.(command.Query); ok {
			q.Fail(errUnknownContext)
		}
		log.Logger().Warn("headless: command for unknown context", "context", m.Context, "command", m.Command.Tag())
		return
	}
	if _, ok := m.Command.(command.RemoveContext); ok {
		delete(b.contexts, m.Context)
		b.mu.Lock()
		b.stats.Contexts--
		b.mu.Unlock()
		log.Logger().Debug("headless: context removed", "context", m.Context)
		return
	}
	b.apply(s, m.Command)
}

func (b *Backend) createContext(cmd command.CreateContext) {
	api, _ := b.cfg.api()
	if cmd.Size.X < 0 || cmd.Size.Y < 0 {
		cmd.Fail(fmt.Errorf("headless: invalid size %v", cmd.Size))
		return
	}
	attrs := cmd.Attributes
	attrs.Antialias = attrs.Antialias && b.cfg.Antialias
	attrs.PreserveDrawingBuffer = attrs.PreserveDrawingBuffer && b.cfg.PreserveDrawingBuffer
	b.lastID++
	id := b.lastID
	b.contexts[id] = newContextState(id, clampSize(cmd.Size, b.cfg.Limits), attrs, b.cfg.Limits)
	b.mu.Lock()
	b.stats.Contexts++
	b.mu.Unlock()
	log.Logger().Debug("headless: context created", "context", id, "size", cmd.Size)
	cmd.Send(command.ContextInfo{
		ID:          id,
		Version:     command.Version,
		API:         api,
		GLSLVersion: b.cfg.GLSLVersion,
		Limits:      b.cfg.Limits,
		Attributes:  attrs,
	})
}

// clampSize limits a drawing buffer to the viewport limits.
func clampSize(sz image.Point, l command.Limits) image.Point {
	if m := l.MaxViewportDims[0]; m > 0 {
		sz.X = min(sz.X, m)
	}
	if m := l.MaxViewportDims[1]; m > 0 {
		sz.Y = min(sz.Y, m)
	}
	return sz
}
