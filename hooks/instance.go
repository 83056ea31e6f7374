package hooks

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/google/uuid"
)

// Component is a function-shaped component. It may call hooks through s, in
// the same order and number on every render of an instance.
type Component[P any] func(s *Scope, props P) *vdom.Node

// Instance binds one mounted component to its hook slots. All of its state
// is owned by the scheduler that created it and must only be touched from
// the goroutine driving that scheduler.
type Instance struct {
	id     uuid.UUID
	name   string
	target Target
	sched  *Scheduler

	renderFn func(*Scope) *vdom.Node
	store    *slotStore
	scope    *Scope

	mounted bool
	dirty   bool
	broken  error

	committed *vdom.Node
	commits   int
	renders   int
}

func (s *Scheduler) newInstance(name string, target Target, renderFn func(*Scope) *vdom.Node) *Instance {
	inst := &Instance{
		id:       uuid.New(),
		name:     name,
		target:   target,
		sched:    s,
		renderFn: renderFn,
		store:    &slotStore{},
		mounted:  true,
	}
	inst.scope = &Scope{inst: inst}
	return inst
}

func (inst *Instance) ID() uuid.UUID {
	return inst.id
}

// Name is the component function's name, used in logs and errors.
func (inst *Instance) Name() string {
	return inst.name
}

func (inst *Instance) Target() Target {
	return inst.target
}

func (inst *Instance) Mounted() bool {
	return inst.mounted
}

// Dirty reports whether a render is pending.
func (inst *Instance) Dirty() bool {
	return inst.dirty
}

// Renders counts completed renders.
func (inst *Instance) Renders() int {
	return inst.renders
}

func (inst *Instance) Commits() int {
	return inst.commits
}

// Committed is the tree of the last successful commit.
func (inst *Instance) Committed() *vdom.Node {
	return inst.committed
}

// Broken returns the hook order violation that disabled the instance, if
// any.
func (inst *Instance) Broken() error {
	return inst.broken
}

// Slots describes the hook slots recorded by the last completed render.
func (inst *Instance) Slots() []SlotInfo {
	return inst.store.info()
}

// Signature digests the hook kind sequence of the last completed render.
func (inst *Instance) Signature() uint64 {
	return inst.store.sig
}

// Invalidate schedules a render without any state change.
func (inst *Instance) Invalidate() error {
	if !inst.mounted {
		return ErrUnmounted
	}
	if inst.broken != nil {
		return fmt.Errorf("%w: %v", ErrBroken, inst.broken)
	}
	inst.schedule()
	return nil
}

// Unmount tears the instance down; see Scheduler.Unmount.
func (inst *Instance) Unmount() error {
	return inst.sched.Unmount(inst)
}

func (inst *Instance) schedule() {
	inst.sched.schedule(inst)
}

// render runs the component against the instance's slots. A failed render
// rolls the slots back and produces no tree.
func (inst *Instance) render() (tree *vdom.Node, err error) {
	inst.dirty = false
	inst.store.reset()
	inst.scope.active = true

	defer func() {
		inst.scope.active = false
		r := recover()
		if r == nil && err == nil {
			return
		}
		inst.store.rollback()
		if r == nil {
			return
		}
		if orderErr, ok := r.(*HookOrderError); ok {
			err = inst.breakOn(orderErr)
			return
		}
		err = &RenderPanicError{
			Instance:   inst.id,
			Component:  inst.name,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		}
	}()

	tree = inst.renderFn(inst.scope)
	if finishErr := inst.store.finish(); finishErr != nil {
		orderErr, _ := finishErr.(*HookOrderError)
		return nil, inst.breakOn(orderErr)
	}
	inst.renders++
	return tree, nil
}

func (inst *Instance) breakOn(err *HookOrderError) error {
	err.Instance = inst.id
	err.Component = inst.name
	inst.broken = err
	inst.dirty = false
	inst.sched.dequeue(inst)
	return err
}

// Handle is a mounted instance together with its props.
type Handle[P any] struct {
	*Instance
	fn    Component[P]
	props P
}

func (h *Handle[P]) Props() P {
	return h.props
}

// SetProps replaces the props and schedules a render, as a parent re-render
// would.
func (h *Handle[P]) SetProps(props P) {
	if !h.mounted {
		return
	}
	h.props = props
	h.schedule()
}

// Mount creates an instance of fn rendering into target and drives the
// scheduler until its queue is empty, so the first render, its commit and
// its effects are done when Mount returns. Called from inside a render or
// effect, Mount only enqueues; the running Flush picks the instance up.
//
// On error the handle is still returned so the caller can unmount it.
func Mount[P any](s *Scheduler, fn Component[P], props P, target Target) (*Handle[P], error) {
	h := &Handle[P]{fn: fn, props: props}
	h.Instance = s.newInstance(componentName(fn), target, func(sc *Scope) *vdom.Node {
		return h.fn(sc, h.props)
	})
	s.logger.Debug("mount", "instance", h.id, "component", h.name, "target", target)
	s.enqueue(h.Instance)
	if err := s.Flush(); err != nil {
		return h, err
	}
	return h, nil
}

func componentName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "component"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
