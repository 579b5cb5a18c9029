package app

import (
	"context"
	"fmt"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/zerr"
)

// acceptedForms lists the call shapes Register understands.
const acceptedForms = "(name, body), (name, []dependency), (name, []dependency, body)"

// Register adds a task using one of three shapes:
//
//	Register(name, body)
//	Register(name, []string{"dep", ...})        // alias with a no-op body
//	Register(name, []string{"dep", ...}, body)
//
// body may be a domain.Body, a domain.RunFunc or a plain
// func(context.Context, domain.Args) (any, error). Any other shape fails with
// domain.ErrInvalidRegistration. Registering a name again stacks another task
// rather than replacing the first.
func (a *App) Register(name string, form ...any) error {
	if name == "" {
		return invalidRegistration(name, "task name is empty")
	}

	switch len(form) {
	case 1:
		if deps, ok := form[0].([]string); ok {
			return a.add(name, deps, domain.NoOp())
		}
		body, ok := asBody(form[0])
		if !ok {
			return invalidRegistration(name, fmt.Sprintf("unsupported argument of type %T", form[0]))
		}
		return a.add(name, nil, body)
	case 2:
		deps, ok := form[0].([]string)
		if !ok {
			return invalidRegistration(name, fmt.Sprintf("dependencies must be []string, got %T", form[0]))
		}
		body, ok := asBody(form[1])
		if !ok {
			return invalidRegistration(name, fmt.Sprintf("unsupported body of type %T", form[1]))
		}
		return a.add(name, deps, body)
	default:
		return invalidRegistration(name, fmt.Sprintf("got %d arguments after the name", len(form)))
	}
}

// Task registers a task without dependencies.
func (a *App) Task(name string, body domain.Body) error {
	return a.Register(name, body)
}

// Alias registers a task that only runs its dependencies.
func (a *App) Alias(name string, deps ...string) error {
	return a.Register(name, deps)
}

// TaskWithDeps registers a task that runs after deps.
func (a *App) TaskWithDeps(name string, deps []string, body domain.Body) error {
	return a.Register(name, deps, body)
}

func (a *App) add(name string, deps []string, body domain.Body) error {
	if body.Run == nil {
		return invalidRegistration(name, "task body has no run function")
	}
	task := domain.NewTask(name, deps, body)
	a.graph.AddTask(&task)
	return nil
}

func asBody(v any) (domain.Body, bool) {
	switch b := v.(type) {
	case domain.Body:
		return b, true
	case domain.RunFunc:
		return domain.NewBody(b), true
	case func(context.Context, domain.Args) (any, error):
		return domain.NewBody(b), true
	default:
		return domain.Body{}, false
	}
}

func invalidRegistration(name, reason string) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidRegistration, reason), "task", name)
	return zerr.With(err, "accepted", acceptedForms)
}
