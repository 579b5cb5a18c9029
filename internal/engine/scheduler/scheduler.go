// Package scheduler implements the task execution scheduler.
package scheduler

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler runs a task and its dependencies one after another.
type Scheduler struct {
	logger ports.Logger
	tracer ports.Tracer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(logger ports.Logger, tracer ports.Tracer) *Scheduler {
	return &Scheduler{
		logger: logger,
		tracer: tracer,
	}
}

type boundTask struct {
	task domain.Task
	args domain.Args
}

// Run executes name and its transitive dependencies in resolved order and
// returns the result of the last task. Every task in the plan is bound
// against supplied before the first body runs, so a missing argument
// anywhere aborts the run without side effects.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, name string, supplied map[string]any) (any, error) {
	order, err := graph.ResolveExecutionOrder(name)
	if err != nil {
		return nil, err
	}

	plan, err := bind(order, supplied)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(plan))
	for i, bt := range plan {
		names[i] = bt.task.Name.String()
	}
	s.tracer.EmitPlan(ctx, names)

	var result any
	for i, bt := range plan {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "execution cancelled")
		}

		result, err = s.execute(ctx, &bt)
		if err != nil {
			return nil, err
		}

		if i < len(plan)-1 && result != nil {
			s.logger.Info(fmt.Sprintf("task %s returned %v", names[i], result))
		}
	}

	return result, nil
}

func (s *Scheduler) execute(ctx context.Context, bt *boundTask) (any, error) {
	taskName := bt.task.Name.String()
	s.logger.Info("running task " + taskName)

	ctx, span := s.tracer.Start(ctx, taskName)
	defer span.End()

	for k, v := range bt.args {
		span.SetAttribute("arg."+k, v)
	}

	result, err := bt.task.Body.Run(ctx, bt.args)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrTaskExecutionFailed, err), "task", taskName)
	}
	return result, nil
}

func bind(order []domain.Task, supplied map[string]any) ([]boundTask, error) {
	plan := make([]boundTask, 0, len(order))
	for _, task := range order {
		args, missing := task.Body.Bind(supplied)
		if len(missing) > 0 {
			err := zerr.With(zerr.Wrap(domain.ErrMissingArguments, "task requires arguments"), "task", task.Name.String())
			err = zerr.With(err, "missing", strings.Join(missing, ", "))
			return nil, zerr.With(err, "synopsis", task.Synopsis())
		}
		plan = append(plan, boundTask{task: task, args: args})
	}
	return plan, nil
}
