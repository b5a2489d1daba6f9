// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"math"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"gioui.org/webgl"
	"gioui.org/webgl/backend/headless"
	"gioui.org/webgl/command"
	"gioui.org/webgl/gl"
)

// Script is a sequence of context calls replayed against one context.
type Script struct {
	Size       [2]int             `yaml:"size"`
	Attributes command.Attributes `yaml:"attributes"`
	Calls      []Call             `yaml:"calls"`
}

// Call is one entrypoint invocation. The result is stored under As, for
// later arguments of the form "$name", and compared with Expect when
// present. Enum arguments are constant names, joined by "|" for masks.
type Call struct {
	Call   string `yaml:"call"`
	Args   []any  `yaml:"args"`
	As     string `yaml:"as"`
	Expect any    `yaml:"expect"`
}

// Failure is a call whose result did not match its expectation.
type Failure struct {
	Step   int
	Call   string
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Call, f.Reason)
}

// Report is the outcome of a replay.
type Report struct {
	Calls      int
	Failures   []Failure
	Stats      headless.Stats
	Violations []headless.Violation
}

func (r *Report) Failed() bool {
	return len(r.Failures) > 0 || len(r.Violations) > 0
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("webglreplay: reading script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("webglreplay: %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (*Script, error) {
	s := &Script{Size: [2]int{300, 150}, Attributes: command.Attributes{Alpha: true, Depth: true, Antialias: true, PremultipliedAlpha: true}}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, c := range s.Calls {
		if _, ok := calls[c.Call]; !ok {
			return nil, fmt.Errorf("step %d: unknown call %q", i+1, c.Call)
		}
	}
	return s, nil
}

// Run replays s on a new context of the backend behind ch. Errors are
// reserved for scripts that cannot run; mismatches are reported as
// failures.
func (s *Script) Run(ch *command.Channel) (*Report, error) {
	c, err := webgl.NewContext(ch, image.Pt(s.Size[0], s.Size[1]), s.Attributes)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	r := &runner{c: c, handles: make(map[string]any)}
	rep := new(Report)
	for i, call := range s.Calls {
		step := i + 1
		a := &args{vals: call.Args, r: r}
		got, err := calls[call.Call](r, a)
		if a.err != nil {
			return nil, fmt.Errorf("webglreplay: step %d (%s): %w", step, call.Call, a.err)
		}
		rep.Calls++
		if err != nil {
			rep.Failures = append(rep.Failures, Failure{Step: step, Call: call.Call, Reason: err.Error()})
			continue
		}
		if call.As != "" {
			r.handles[call.As] = got
		}
		if call.Expect != nil && !matches(got, call.Expect) {
			rep.Failures = append(rep.Failures, Failure{
				Step:   step,
				Call:   call.Call,
				Reason: fmt.Sprintf("got %v, expected %v", describe(got), call.Expect),
			})
		}
	}
	// Every command is applied before the backend is inspected.
	c.Finish()
	return rep, nil
}

type runner struct {
	c       *webgl.Context
	handles map[string]any
}

// args decodes call arguments. The first decoding error sticks.
type args struct {
	vals []any
	r    *runner
	err  error
}

func (a *args) fail(format string, v ...any) {
	if a.err == nil {
		a.err = fmt.Errorf(format, v...)
	}
}

func (a *args) len() int { return len(a.vals) }

func (a *args) arg(i int) any {
	if i >= len(a.vals) {
		a.fail("missing argument %d", i+1)
		return nil
	}
	v := a.vals[i]
	if s, ok := v.(string); ok {
		if name, ok := strings.CutPrefix(s, "$"); ok {
			h, ok := a.r.handles[name]
			if !ok {
				a.fail("argument %d: unknown handle %q", i+1, name)
			}
			return h
		}
	}
	return v
}

func (a *args) enum(i int) gl.Enum {
	switch v := a.arg(i).(type) {
	case string:
		e, err := parseEnum(v)
		if err != nil {
			a.fail("argument %d: %v", i+1, err)
		}
		return e
	case gl.Enum:
		return v
	case int:
		return gl.Enum(v)
	default:
		a.fail("argument %d: %v is not an enum", i+1, v)
		return 0
	}
}

func (a *args) int(i int) int32 {
	v := a.arg(i)
	n, ok := numeric(v)
	if !ok || n != math.Trunc(n) {
		a.fail("argument %d: %v is not an integer", i+1, v)
	}
	return int32(n)
}

func (a *args) uint(i int) uint32 {
	n := a.int(i)
	if n < 0 {
		a.fail("argument %d: %d is negative", i+1, n)
	}
	return uint32(n)
}

func (a *args) float(i int) float32 {
	v := a.arg(i)
	n, ok := numeric(v)
	if !ok {
		a.fail("argument %d: %v is not a number", i+1, v)
	}
	return float32(n)
}

func (a *args) bool(i int) bool {
	v, ok := a.arg(i).(bool)
	if !ok {
		a.fail("argument %d is not a boolean", i+1)
	}
	return v
}

func (a *args) str(i int) string {
	v, ok := a.arg(i).(string)
	if !ok {
		a.fail("argument %d is not a string", i+1)
	}
	return v
}

// list returns argument i as a list, or false when it is a scalar.
func (a *args) list(i int) ([]any, bool) {
	v, ok := a.arg(i).([]any)
	return v, ok
}

func (a *args) floats(i int) []float32 {
	l, ok := a.list(i)
	if !ok {
		a.fail("argument %d is not a list", i+1)
	}
	out := make([]float32, len(l))
	for j, v := range l {
		n, ok := numeric(v)
		if !ok {
			a.fail("argument %d: element %d is not a number", i+1, j)
		}
		out[j] = float32(n)
	}
	return out
}

// handle returns argument i as an object of type T. Null arguments are
// nil handles.
func handle[T any](a *args, i int) *T {
	switch v := a.arg(i).(type) {
	case nil:
		return nil
	case *T:
		return v
	default:
		var zero T
		a.fail("argument %d: %v is not a %T", i+1, v, zero)
		return nil
	}
}

func parseEnum(s string) (gl.Enum, error) {
	var e gl.Enum
	for _, name := range strings.Split(s, "|") {
		v, ok := gl.Lookup(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("unknown enum %q", name)
		}
		e |= v
	}
	return e, nil
}

func numeric(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint32:
		return float64(v), true
	case gl.Enum:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// matches compares a call result with an expectation decoded from YAML.
func matches(got, want any) bool {
	switch w := want.(type) {
	case string:
		if e, ok := got.(gl.Enum); ok {
			v, err := parseEnum(w)
			return err == nil && v == e
		}
		s, ok := got.(string)
		return ok && s == w
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	case int, float64:
		g, ok := numeric(got)
		n, _ := numeric(w)
		return ok && math.Abs(g-n) <= 1e-6
	case []any:
		v := reflect.ValueOf(got)
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array || v.Len() != len(w) {
			return false
		}
		for i := range w {
			if !matches(v.Index(i).Interface(), w[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func describe(v any) string {
	if e, ok := v.(gl.Enum); ok {
		for _, name := range commonEnums {
			if c, _ := gl.Lookup(name); c == e {
				return name
			}
		}
	}
	return fmt.Sprint(v)
}

// commonEnums are the results worth naming in failure messages.
var commonEnums = []string{
	"NO_ERROR", "INVALID_ENUM", "INVALID_VALUE", "INVALID_OPERATION",
	"INVALID_FRAMEBUFFER_OPERATION", "OUT_OF_MEMORY", "CONTEXT_LOST_WEBGL",
	"FRAMEBUFFER_COMPLETE", "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	"FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT", "FRAMEBUFFER_INCOMPLETE_DIMENSIONS",
	"FRAMEBUFFER_UNSUPPORTED",
}
