package hooks

import (
	"log/slog"

	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/uber-go/tally/v4"
)

// Reconciler turns committed trees into visible UI. Commit must be
// all-or-nothing: on error the previously committed tree stays in place.
type Reconciler interface {
	Commit(target Target, tree *vdom.Node) error
	Remove(target Target) error
}

type Option func(*Scheduler)

func WithReconciler(r Reconciler) Option {
	return func(s *Scheduler) {
		s.reconciler = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithMetrics reports render, commit and effect counts and render latency
// to scope.
func WithMetrics(scope tally.Scope) Option {
	return func(s *Scheduler) {
		s.metrics = scope
	}
}

// WithMaxPasses bounds the number of render passes one Flush may run. Zero,
// the default, means unbounded: an effect that sets state without a
// dependency gate then loops forever, as it would in any hooks runtime.
func WithMaxPasses(n int) Option {
	return func(s *Scheduler) {
		s.maxPasses = n
	}
}

// WithAutoFlush makes state updates made while the scheduler is idle flush
// synchronously, at the end of the outermost Batch if one is open. Errors
// from those flushes go to the error handler.
func WithAutoFlush() Option {
	return func(s *Scheduler) {
		s.autoFlush = true
	}
}

// WithErrorHandler receives errors from flushes that have no caller to
// return to, such as auto flushes.
func WithErrorHandler(fn func(err error)) Option {
	return func(s *Scheduler) {
		s.onError = fn
	}
}

type nopReconciler struct{}

func (nopReconciler) Commit(Target, *vdom.Node) error { return nil }
func (nopReconciler) Remove(Target) error { return nil }
