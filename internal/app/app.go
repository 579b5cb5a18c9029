// Package app implements the application layer for fred.
package app

import (
	"context"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/lazy"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/fred/internal/engine/pipeline"
	"go.trai.ch/fred/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App owns the task graph and exposes task execution and file pipelines.
type App struct {
	graph     *domain.Graph
	scheduler *scheduler.Scheduler
	logger    ports.Logger
}

// New creates a new App instance with an empty task graph.
func New(sched *scheduler.Scheduler, logger ports.Logger) *App {
	return &App{
		graph:     domain.NewGraph(),
		scheduler: sched,
		logger:    logger,
	}
}

// Graph returns the task graph. It must not be modified while a task runs.
func (a *App) Graph() *domain.Graph {
	return a.graph
}

// Execute runs the task named name after its dependencies and returns the
// result of name's body. args supplies the named arguments for every task
// in the plan.
func (a *App) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	if name == "" {
		return nil, domain.ErrNoTargetsSpecified
	}
	result, err := a.scheduler.Run(ctx, a.graph, name, args)
	if err != nil {
		return nil, zerr.With(err, "target", name)
	}
	return result, nil
}

// Create seeds a pipeline with a single empty virtual file called name.
func (a *App) Create(ctx context.Context, name string) *pipeline.Pipeline {
	return pipeline.New(ctx, lazy.Of[domain.File](domain.NewVirtualFile(name)))
}

// Load wraps the handles produced by src as real files. Handles are resolved
// and files read only as the pipeline is iterated.
func (a *App) Load(ctx context.Context, src ports.FileSource) *pipeline.Pipeline {
	handles := lazy.New(src.Files())
	files := lazy.Map(handles, func(h ports.FileHandle) (domain.File, error) {
		path, err := h.AbsPath()
		if err != nil {
			return nil, err
		}
		return domain.NewRealFile(path), nil
	})
	return pipeline.New(ctx, files)
}
