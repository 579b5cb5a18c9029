package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Task represents a named unit of work in the task graph.
// Dependencies name tasks that must complete before this one runs.
type Task struct {
	Name         InternedString
	Dependencies []InternedString
	Body         Body
}

// NewTask creates a Task from plain strings.
func NewTask(name string, dependencies []string, body Body) Task {
	return Task{
		Name:         NewInternedString(name),
		Dependencies: NewInternedStrings(dependencies),
		Body:         body,
	}
}

// Synopsis describes how the task is invoked, e.g. "deploy <target> [mode=debug]".
func (t *Task) Synopsis() string {
	var b strings.Builder
	b.WriteString(t.Name.String())
	for _, p := range t.Body.Params {
		b.WriteByte(' ')
		if p.HasDefault {
			_, _ = fmt.Fprintf(&b, "[%s=%v]", p.Name, p.Default)
			continue
		}
		b.WriteString("<" + p.Name + ">")
	}
	return b.String()
}

// RunFunc is the callable part of a task body.
// It receives only the parameters the body declared, already bound.
type RunFunc func(ctx context.Context, args Args) (any, error)

// Param declares a named parameter of a task body.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required declares a parameter that must be supplied by the caller.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter that falls back to def when not supplied.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Body couples a RunFunc with its parameter descriptors.
type Body struct {
	Params []Param
	Run    RunFunc
}

// NewBody creates a Body from a RunFunc and its parameters.
func NewBody(run RunFunc, params ...Param) Body {
	return Body{Params: params, Run: run}
}

// NoOp returns a body that does nothing. Alias tasks use it.
func NoOp() Body {
	return Body{Run: func(context.Context, Args) (any, error) { return nil, nil }}
}

// Bind resolves every declared parameter against supplied.
// A supplied nil value counts as absent. It returns the names of parameters
// that could not be satisfied, in declaration order.
func (b Body) Bind(supplied map[string]any) (Args, []string) {
	args := make(Args, len(b.Params))
	var missing []string
	for _, p := range b.Params {
		if v, ok := supplied[p.Name]; ok && v != nil {
			args[p.Name] = v
			continue
		}
		if p.HasDefault {
			args[p.Name] = p.Default
			continue
		}
		missing = append(missing, p.Name)
	}
	return args, missing
}

// Args holds the bound arguments of a task invocation.
type Args map[string]any

// String returns the value bound to name formatted as a string.
func (a Args) String(name string) string {
	v, ok := a[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the value bound to name if it is an integer or a string
// holding one. Values from the command line arrive as strings.
func (a Args) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool returns the value bound to name if it is a boolean or a string
// strconv.ParseBool accepts.
func (a Args) Bool(name string) (bool, bool) {
	switch v := a[name].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}
