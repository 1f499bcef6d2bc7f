// Package instrument layers logging, metrics, and tracing onto plan runs.
//
// # Middleware
//
// Middleware[E] is a function that wraps a collate.Sequence. Use Chain to
// compose multiple middlewares:
//
//	seq := instrument.Chain(
//	    instrument.WithLogging[Frame](log),
//	)(source.Slices(frames))
//
// # Instrumented runs
//
// Run executes a plan against a sequence and tags every run with a UUID
// run ID. Options select which signals are emitted:
//
//	result, err := instrument.Run(ctx, plan, seq,
//	    instrument.WithPlanName("frame-header"),
//	    instrument.WithLogger(log),
//	    instrument.WithMetrics(metrics),
//	    instrument.WithTracerName("ingest"),
//	)
//
// Each run produces a "collate.run" span with a "collate.feed" child span
// around the scan, run and feed counters, a duration histogram, and start
// and finish logs. All signals carry the run ID and plan name.
package instrument
