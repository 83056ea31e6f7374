package hooks

import "fmt"

// Scope is handed to a component's render function and is the only way to
// reach the instance's hook slots. It is valid only while that render runs.
type Scope struct {
	inst   *Instance
	active bool
}

// Instance returns the instance being rendered.
func (s *Scope) Instance() *Instance {
	return s.inst
}

// use visits the next slot, creating it on first render, and checks that
// both the kind and the concrete slot type match what was stored there.
// Violations panic with a *HookOrderError; the scheduler recovers it and
// aborts the render.
func use[S slot](s *Scope, kind SlotKind, create func() S) S {
	if s == nil || !s.active {
		panic(ErrHookOutsideRender)
	}
	store := s.inst.store
	sl, err := store.next(kind, func() slot { return create() })
	if err != nil {
		panic(err)
	}
	typed, ok := sl.(S)
	if !ok {
		var want S
		panic(&HookOrderError{
			Position: store.cursor - 1,
			Want:     kind,
			Got:      kind,
			Reason:   fmt.Sprintf("slot type changed from %T to %T", sl, want),
		})
	}
	return typed
}
