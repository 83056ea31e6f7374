package hooks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/uber-go/tally/v4"
)

// Phase is the scheduler's position in the render cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRendering
	PhaseCommitting
	PhaseRunningEffects
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRendering:
		return "rendering"
	case PhaseCommitting:
		return "committing"
	case PhaseRunningEffects:
		return "running-effects"
	default:
		return "unknown"
	}
}

// Scheduler owns the dirty queue and drives render, commit and effects for
// every instance mounted on it, one instance per pass.
//
// A Scheduler is NOT thread-safe. Mount, Flush, Unmount and every setter
// must be called from the goroutine that owns it.
type Scheduler struct {
	queue  []*Instance
	queued mapset.Set[*Instance]

	phase      Phase
	current    *Instance
	flushing   bool
	batchDepth int
	setterIDs  uint64

	reconciler Reconciler
	logger     *slog.Logger
	metrics    tally.Scope
	maxPasses  int
	autoFlush  bool
	onError    func(err error)

	// OnSchedule is called when an instance is enqueued while no flush is
	// running, so a host loop knows a Flush is needed.
	OnSchedule func()
}

func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{
		queued:     mapset.NewThreadUnsafeSet[*Instance](),
		reconciler: nopReconciler{},
		logger:     slog.Default(),
		metrics:    tally.NoopScope,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.onError == nil {
		s.onError = func(err error) {
			s.logger.Error("flush failed", "error", err)
		}
	}
	return s
}

func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Pending is the number of instances waiting for a render pass.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Queued reports whether inst is waiting for a render pass.
func (s *Scheduler) Queued(inst *Instance) bool {
	return s.queued.Contains(inst)
}

func (s *Scheduler) nextSetterID() uint64 {
	s.setterIDs++
	return s.setterIDs
}

// enqueue appends inst to the dirty queue unless it is already there.
func (s *Scheduler) enqueue(inst *Instance) bool {
	if !inst.mounted || inst.broken != nil {
		return false
	}
	inst.dirty = true
	if s.queued.Contains(inst) {
		return false
	}
	s.queued.Add(inst)
	s.queue = append(s.queue, inst)
	s.logger.Debug("enqueue", "instance", inst.id, "component", inst.name, "pending", len(s.queue))
	return true
}

func (s *Scheduler) dequeue(inst *Instance) {
	if !s.queued.Contains(inst) {
		return
	}
	s.queued.Remove(inst)
	s.queue = slices.DeleteFunc(s.queue, func(q *Instance) bool { return q == inst })
}

// schedule is the setter path: enqueue, then wake the host or flush.
func (s *Scheduler) schedule(inst *Instance) {
	if !s.enqueue(inst) || s.flushing {
		return
	}
	if s.OnSchedule != nil {
		s.OnSchedule()
	}
	if s.autoFlush && s.batchDepth == 0 {
		if err := s.Flush(); err != nil {
			s.onError(err)
		}
	}
}

// Batch runs fn and holds auto flushes until the outermost batch returns,
// so several updates cost one render per instance.
func (s *Scheduler) Batch(fn func()) {
	s.batchDepth++
	defer func() {
		s.batchDepth--
		if s.batchDepth == 0 && s.autoFlush && !s.flushing && len(s.queue) > 0 {
			if err := s.Flush(); err != nil {
				s.onError(err)
			}
		}
	}()
	fn()
}

// Flush runs render passes in FIFO order until the dirty queue is empty.
// Updates made during a pass enqueue further passes. The first error stops
// the flush; instances still queued stay queued. Flush called from inside a
// pass returns nil at once and leaves the work to the running flush.
func (s *Scheduler) Flush() error {
	if s.flushing {
		return nil
	}
	s.flushing = true
	defer func() {
		s.flushing = false
		s.phase = PhaseIdle
		s.current = nil
	}()

	passes := 0
	for len(s.queue) > 0 {
		if s.maxPasses > 0 && passes >= s.maxPasses {
			return fmt.Errorf("%w: %d passes, %d instances still queued", ErrPassLimit, passes, len(s.queue))
		}
		inst := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.queued.Remove(inst)
		passes++

		if err := s.pass(inst); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) pass(inst *Instance) error {
	if !inst.mounted || inst.broken != nil {
		return nil
	}
	start := time.Now()
	log := s.logger.With("instance", inst.id, "component", inst.name)

	s.phase = PhaseRendering
	s.current = inst
	tree, err := inst.render()
	s.current = nil
	if err != nil {
		s.metrics.Counter("render_errors").Inc(1)
		log.Debug("render failed", "error", err)
		return err
	}
	s.metrics.Counter("renders").Inc(1)

	s.phase = PhaseCommitting
	if err := s.reconciler.Commit(inst.target, tree); err != nil {
		inst.store.dropStaged()
		s.metrics.Counter("render_errors").Inc(1)
		return &CommitError{Instance: inst.id, Target: inst.target, Err: err}
	}
	inst.committed = tree
	inst.commits++
	s.metrics.Counter("commits").Inc(1)

	s.phase = PhaseRunningEffects
	s.current = inst
	err = inst.runEffects()
	s.current = nil
	s.metrics.Timer("render_latency").Record(time.Since(start))
	if err != nil {
		return err
	}
	log.Debug("pass complete", "renders", inst.renders, "pending", len(s.queue))
	return nil
}

// Unmount removes inst from the dirty queue without rendering it, runs the
// cleanups of its last committed effects in slot order, discards its hook
// slots and removes its output from the reconciler. Every cleanup runs even
// if an earlier one panics; their errors are joined.
func (s *Scheduler) Unmount(inst *Instance) error {
	if !inst.mounted {
		return ErrUnmounted
	}
	if s.phase == PhaseRendering && s.current == inst {
		return ErrUnmountDuringRender
	}

	s.dequeue(inst)
	inst.mounted = false
	inst.dirty = false

	errs := inst.runCleanups()
	inst.store.discard()
	if inst.commits > 0 {
		if err := s.reconciler.Remove(inst.target); err != nil {
			errs = append(errs, &CommitError{Instance: inst.id, Target: inst.target, Err: err})
		}
	}
	s.logger.Debug("unmount", "instance", inst.id, "component", inst.name, "errors", len(errs))
	return errors.Join(errs...)
}
