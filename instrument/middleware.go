package instrument

import (
	"time"

	"github.com/awpr/collate"
	"github.com/awpr/collate/logger"
)

// Middleware transforms a Sequence by wrapping it. The returned sequence
// typically delegates to the original while adding cross-cutting behavior
// (logging, counting, etc.).
type Middleware[E any] func(collate.Sequence[E]) collate.Sequence[E]

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (observes each Visit first
// on the way in, last on the way out).
//
// Chain(a, b, c)(seq) is equivalent to a(b(c(seq))).
func Chain[E any](middlewares ...Middleware[E]) Middleware[E] {
	return func(inner collate.Sequence[E]) collate.Sequence[E] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// WithLogging returns a Middleware that logs each Visit call at debug
// level. Logs: start index, limit, elements visited, and duration.
func WithLogging[E any](log *logger.Logger) Middleware[E] {
	return func(inner collate.Sequence[E]) collate.Sequence[E] {
		return &loggingSeq[E]{inner: inner, log: log.WithComponent("sequence")}
	}
}

type loggingSeq[E any] struct {
	inner collate.Sequence[E]
	log   *logger.Logger
}

func (l *loggingSeq[E]) Visit(start, limit int, fn func(index int, elem E) bool) int {
	begin := time.Now()

	visited := 0
	next := l.inner.Visit(start, limit, func(index int, elem E) bool {
		visited++
		return fn(index, elem)
	})

	l.log.Debug("sequence visit", logger.Fields(
		logger.FieldStart, start,
		logger.FieldLimit, limit,
		logger.FieldVisited, visited,
		logger.FieldDuration, time.Since(begin).Milliseconds(),
	))

	return next
}
