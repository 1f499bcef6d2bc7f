package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext holds observability context for one plan execution.
type RunContext struct {
	PlanName  string
	RunID     string
	StartTime time.Time
	Metrics   *Metrics
}

// NewRunContext creates a new run context.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(planName, runID string, metrics *Metrics) *RunContext {
	return &RunContext{
		PlanName:  planName,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

// runContextKey is the context key for RunContext.
type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// StartRunSpan starts a traced span tagged with the plan name and run ID.
func (rc *RunContext) StartRunSpan(ctx context.Context, tracerName string) (context.Context, trace.Span) {
	tracer := Tracer(tracerName)
	if tracerName == "" {
		tracer = Tracer(defaultTracerName)
	}
	ctx, span := tracer.Start(ctx, SpanRun)
	span.SetAttributes(
		attribute.String(AttrPlanName, rc.PlanName),
		attribute.String(AttrRunID, rc.RunID),
	)
	return ctx, span
}

// EndRun ends the span and records run metrics.
func (rc *RunContext) EndRun(ctx context.Context, span trace.Span, status string, visited int, err error) {
	duration := time.Since(rc.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrVisited, visited),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRun(ctx, rc.PlanName, status, duration)
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
