package instrument

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awpr/collate"
	"github.com/awpr/collate/logger"
	"github.com/awpr/collate/observability"
)

const defaultPlanName = "plan"

// options collects the instrumentation configured for one run.
type options struct {
	planName   string
	log        *logger.Logger
	metrics    *observability.Metrics
	tracerName string
}

// Option configures an instrumented run.
type Option func(*options)

// WithPlanName tags the run's logs, metrics, and spans with the plan's name.
func WithPlanName(name string) Option {
	return func(o *options) { o.planName = name }
}

// WithLogger enables start and finish logs for the run.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics records run, feed, and unfulfilled metrics for the run.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracerName selects the tracer used for the run and feed spans.
// Without it, spans come from the observability package's default tracer.
func WithTracerName(name string) Option {
	return func(o *options) { o.tracerName = name }
}

// Run executes the plan against the sequence with logging, metrics, and
// tracing as configured. Each run is tagged with a fresh UUID run ID.
//
// The sequence is scanned once, starting at index 0, and scanning stops
// after the plan's deepest requirement. Plan construction errors surface
// before the sequence is touched.
func Run[E, A any](ctx context.Context, p *collate.Plan[E, A], seq collate.Sequence[E], opts ...Option) (A, error) {
	var zero A

	o := options{planName: defaultPlanName}
	for _, opt := range opts {
		opt(&o)
	}

	runID := uuid.New().String()

	x, err := p.Open()
	if err != nil {
		if o.log != nil {
			o.log.Error("run rejected", logger.Fields(
				logger.FieldRunID, runID,
				logger.FieldPlan, o.planName,
				logger.FieldError, err.Error(),
			))
		}
		return zero, err
	}

	rc := observability.NewRunContext(o.planName, runID, o.metrics)
	ctx = observability.WithRunContext(ctx, rc)
	ctx, span := rc.StartRunSpan(ctx, o.tracerName)

	c := x.Collator()
	observability.SetSpanAttribute(ctx, observability.AttrPlanSize, c.Len())
	max, bounded := c.MaxIndex()
	if bounded {
		observability.SetSpanAttribute(ctx, observability.AttrMaxIndex, max)
	}

	if o.log != nil {
		fields := logger.Fields(
			logger.FieldRunID, runID,
			logger.FieldPlan, o.planName,
		)
		if bounded {
			fields[logger.FieldMaxIndex] = max
		}
		o.log.Debug("run started", fields)
	}

	visited := scan(ctx, x, seq, rc)

	result, err := x.Result()
	status := "ok"
	if err != nil {
		status = "error"
		if errors.Is(err, collate.ErrUnfulfilled) && rc.Metrics != nil {
			rc.Metrics.RecordUnfulfilled(ctx, o.planName)
		}
	}
	rc.EndRun(ctx, span, status, visited, err)

	if o.log != nil {
		fields := logger.Fields(
			logger.FieldRunID, runID,
			logger.FieldPlan, o.planName,
			logger.FieldVisited, visited,
			logger.FieldDuration, rc.Duration().Milliseconds(),
			logger.FieldStatus, status,
		)
		if err != nil {
			fields[logger.FieldError] = err.Error()
			o.log.Error("run failed", fields)
		} else {
			o.log.Info("run completed", fields)
		}
	}

	if err != nil {
		return zero, err
	}
	return result, nil
}

// scan feeds the sequence inside a child span and records feed metrics.
// It returns the number of elements the execution consumed.
func scan[E, A any](ctx context.Context, x *collate.Execution[E, A], seq collate.Sequence[E], rc *observability.RunContext) int {
	ctx, span := observability.StartSpan(ctx, observability.SpanFeed)
	defer span.End()

	x.FeedSeq(seq)
	visited := x.Pos()

	observability.SetSpanAttribute(ctx, observability.AttrVisited, visited)
	if rc.Metrics != nil {
		rc.Metrics.RecordFeed(ctx, rc.PlanName, visited)
	}
	return visited
}
