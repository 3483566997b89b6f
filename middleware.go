package ripple

import (
	"time"

	"go.uber.org/zap"
)

// DispatchFunc is one step of the dispatch pipeline.
type DispatchFunc func(Action)

// Middleware wraps the dispatch pipeline. It receives the store and the
// next step, and returns the step to run in its place.
//
// Middleware runs inside the dispatch critical section: it must not call
// Dispatch, State, Subscribe or JumpTo on the store it wraps.
type Middleware[S any] func(s *Store[S], next DispatchFunc) DispatchFunc

// Logging returns middleware that logs each action's kind and how long the
// rest of the pipeline took, at debug level.
func Logging[S any](lg *zap.Logger) Middleware[S] {
	return func(_ *Store[S], next DispatchFunc) DispatchFunc {
		return func(a Action) {
			start := time.Now()
			next(a)
			lg.Debug("dispatched",
				zap.String("kind", a.Kind()),
				zap.Duration("took", time.Since(start)),
			)
		}
	}
}
