// Package domain contains the core domain models and business logic for the task dependency graph.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the insertion-ordered registry of tasks.
// Registering a name twice stacks the registrations instead of replacing the first.
type Graph struct {
	tasks  []Task
	byName map[InternedString][]int
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[InternedString][]int),
	}
}

// AddTask appends a task to the graph.
// The body's parameters are not inspected here.
func (g *Graph) AddTask(t *Task) {
	g.byName[t.Name] = append(g.byName[t.Name], len(g.tasks))
	g.tasks = append(g.tasks, *t)
}

// TaskCount returns the number of registrations.
func (g *Graph) TaskCount() int {
	return len(g.tasks)
}

// Tasks returns an iterator over every registration in registration order.
func (g *Graph) Tasks() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range g.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Names returns the distinct task names in first-registration order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.byName))
	seen := make(map[InternedString]bool, len(g.byName))
	for _, t := range g.tasks {
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		names = append(names, t.Name.String())
	}
	return names
}

const (
	unvisited = iota
	visiting
	visited
)

// ResolveExecutionOrder returns the tasks that must run for name, dependencies first.
// Every task appears once; when a task is reachable through several paths the
// first occurrence wins. The order only depends on the registration order.
func (g *Graph) ResolveExecutionOrder(name string) ([]Task, error) {
	target := NewInternedString(name)
	if len(g.byName[target]) == 0 {
		return nil, zerr.With(zerr.Wrap(ErrTaskNotFound, "no task registered under this name"), "task", name)
	}

	state := make(map[InternedString]int)
	var path []InternedString
	var order []Task

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		state[u] = visiting
		path = append(path, u)

		for _, idx := range g.byName[u] {
			task := g.tasks[idx]
			for _, dep := range task.Dependencies {
				switch state[dep] {
				case visiting:
					return g.buildCycleError(path, dep)
				case unvisited:
					if len(g.byName[dep]) == 0 {
						err := zerr.With(zerr.Wrap(ErrTaskNotFound, "unknown dependency"), "dependency", dep.String())
						return zerr.With(err, "required_by", u.String())
					}
					if err := visit(dep); err != nil {
						return err
					}
				}
			}
			order = append(order, task)
		}

		state[u] = visited
		path = path[:len(path)-1]
		return nil
	}

	if err := visit(target); err != nil {
		return nil, err
	}
	return order, nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	names := make([]string, 0, len(path)-startIdx+1)
	for _, node := range path[startIdx:] {
		names = append(names, node.String())
	}
	names = append(names, dep.String())
	return zerr.With(zerr.Wrap(ErrCycleDetected, "cyclic dependency"), "cycle", strings.Join(names, " -> "))
}
