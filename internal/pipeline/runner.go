package pipeline

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"generationscli/internal/infrastructure"
)

// Runner executes steps in order
type Runner struct {
	steps  []Step
	tracer trace.Tracer
	logger *slog.Logger
}

// NewRunner creates a runner. A nil tracer disables tracing.
func NewRunner(tracer trace.Tracer, logger *slog.Logger, steps ...Step) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.TracerName)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{steps: steps, tracer: tracer, logger: logger}
}

// Steps returns the steps in execution order
func (r *Runner) Steps() []Step {
	return r.steps
}

// Run executes every step in order and stops at the first failure
func (r *Runner) Run(ctx context.Context, state *RunState) error {
	ctx, span := r.tracer.Start(ctx, "report.run",
		trace.WithAttributes(attribute.String("run.id", state.RunID)))
	defer span.End()

	for _, step := range r.steps {
		state.GetStep(step.ID(), step.Name())
	}

	for _, step := range r.steps {
		if err := ctx.Err(); err != nil {
			state.GetStep(step.ID(), step.Name()).Fail(err)
			span.SetStatus(codes.Error, err.Error())
			r.logger.WarnContext(ctx, "Report run cancelled", slog.String("step", step.ID()))
			return &StepError{StepID: step.ID(), Cause: err}
		}
		if err := r.runStep(ctx, state, step); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	r.logger.InfoContext(ctx, "Report run completed", slog.Int("steps", len(r.steps)))
	return nil
}

func (r *Runner) runStep(ctx context.Context, state *RunState, step Step) error {
	st := state.GetStep(step.ID(), step.Name())

	ctx, span := r.tracer.Start(ctx, step.ID(),
		trace.WithAttributes(
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
		))
	defer span.End()

	logger := infrastructure.WithComponent(r.logger, "pipeline")
	logger.InfoContext(ctx, "Step started", slog.String("step", step.ID()))
	st.Start()

	if err := step.Execute(ctx, state); err != nil {
		st.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Step failed",
			slog.String("step", step.ID()),
			slog.Duration("duration", st.Duration()))
		return &StepError{StepID: step.ID(), Cause: err}
	}

	st.Complete()
	span.SetStatus(codes.Ok, "")
	logger.InfoContext(ctx, "Step completed",
		slog.String("step", step.ID()),
		slog.Duration("duration", st.Duration()))
	return nil
}
