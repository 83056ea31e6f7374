package hooks

import "time"

// Cleanup undoes an effect. A nil Cleanup means there is nothing to undo.
type Cleanup func()

// EffectFunc is an effect body; it runs after its render is committed.
type EffectFunc func() Cleanup

type effectSlot struct {
	flags   effectFlags
	deps    []any
	cleanup Cleanup

	staged     EffectFunc
	stagedDeps []any
}

func (*effectSlot) kind() SlotKind { return SlotEffect }

func (sl *effectSlot) describe(info *SlotInfo) {
	if sl.deps != nil {
		info.Deps = cloneDeps(sl.deps)
	}
	info.HasCleanup = sl.cleanup != nil
}

func (sl *effectSlot) unstage() {
	sl.flags &^= fPending
	sl.staged = nil
	sl.stagedDeps = nil
}

// UseEffect runs body after every commit of the instance.
func UseEffect(s *Scope, body EffectFunc) {
	useEffect(s, body, nil, true)
}

// UseEffectWithDeps runs body after the first commit and after every commit
// whose deps differ from those of the last run. With no deps it runs once,
// on mount.
func UseEffectWithDeps(s *Scope, body EffectFunc, deps ...any) {
	useEffect(s, body, deps, false)
}

// useEffect only stages the body. Deps are recorded when the body actually
// runs, so a render that never commits cannot suppress a later run.
func useEffect(s *Scope, body EffectFunc, deps []any, always bool) {
	sl := use(s, SlotEffect, func() *effectSlot {
		return &effectSlot{}
	})
	if !always && sl.flags&fRan != 0 && sl.deps != nil && depsEqual(sl.deps, deps) {
		sl.unstage()
		return
	}
	sl.staged = body
	if always {
		sl.stagedDeps = nil
	} else {
		sl.stagedDeps = cloneDeps(deps)
	}
	sl.flags |= fPending
}

// runEffects drains the staged effects of inst in slot order. For each slot
// the previous cleanup runs strictly before the new body, and the new deps
// are recorded only once the body is reached. A panic stops the drain and
// drops whatever is still staged. A cleanup that unmounts the instance
// skips the body.
func (inst *Instance) runEffects() error {
	slots := inst.store.slots
	for i, sl := range slots {
		if !inst.mounted {
			return nil
		}
		e, ok := sl.(*effectSlot)
		if !ok || e.flags&fPending == 0 {
			continue
		}

		body, deps := e.staged, e.stagedDeps
		e.unstage()

		if cleanup := e.cleanup; cleanup != nil {
			e.cleanup = nil
			if err := inst.runCleanup(i, cleanup); err != nil {
				inst.store.dropStaged()
				return err
			}
			if !inst.mounted {
				return nil
			}
		}

		e.deps = deps
		e.flags |= fRan
		cleanup, err := inst.runBody(i, body)
		if err != nil {
			inst.store.dropStaged()
			return err
		}
		if !inst.mounted {
			// The body unmounted its own instance; unmount already ran every
			// stored cleanup, so this one runs now.
			if cleanup != nil {
				return inst.runCleanup(i, cleanup)
			}
			return nil
		}
		e.cleanup = cleanup
	}
	return nil
}

// runCleanups runs every stored cleanup in slot order. Each runs exactly
// once, even when an earlier one panics.
func (inst *Instance) runCleanups() []error {
	var errs []error
	for i, sl := range inst.store.slots {
		e, ok := sl.(*effectSlot)
		if !ok {
			continue
		}
		e.unstage()
		cleanup := e.cleanup
		e.cleanup = nil
		if cleanup == nil {
			continue
		}
		if err := inst.runCleanup(i, cleanup); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (inst *Instance) runBody(slot int, body EffectFunc) (cleanup Cleanup, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EffectPanicError{
				Instance:   inst.id,
				Component:  inst.name,
				Slot:       slot,
				Value:      r,
				StackTrace: CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
	}()
	inst.sched.metrics.Counter("effects").Inc(1)
	if body == nil {
		return nil, nil
	}
	return body(), nil
}

func (inst *Instance) runCleanup(slot int, cleanup Cleanup) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &EffectPanicError{
				Instance:   inst.id,
				Component:  inst.name,
				Slot:       slot,
				Cleanup:    true,
				Value:      r,
				StackTrace: CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
	}()
	inst.sched.metrics.Counter("cleanups").Inc(1)
	cleanup()
	return nil
}
