package hooks

type stateSlot[T any] struct {
	value  T
	setter *Setter[T]
}

func (*stateSlot[T]) kind() SlotKind { return SlotState }

func (sl *stateSlot[T]) describe(info *SlotInfo) {
	info.SetterID = sl.setter.id
}

// Setter writes a state slot and schedules its owner for a render. The same
// Setter is returned on every render of the instance.
type Setter[T any] struct {
	id   uint64
	inst *Instance
	slot *stateSlot[T]
}

// ID is the setter's identity, unique within its scheduler.
func (st *Setter[T]) ID() uint64 {
	return st.id
}

// Set stores v and enqueues the owning instance. The render happens on a
// later scheduler pass, never inside this call.
func (st *Setter[T]) Set(v T) {
	if !st.live() {
		return
	}
	st.slot.value = v
	st.inst.schedule()
}

// Update stores fn applied to the latest written value, so consecutive
// updates within one pass compose.
func (st *Setter[T]) Update(fn func(T) T) {
	if !st.live() {
		return
	}
	st.slot.value = fn(st.slot.value)
	st.inst.schedule()
}

func (st *Setter[T]) live() bool {
	if st.inst.mounted {
		return true
	}
	st.inst.sched.logger.Warn("state update on unmounted instance ignored",
		"instance", st.inst.id,
		"component", st.inst.name,
		"setter", st.id,
	)
	return false
}

// UseState returns the slot's current value and its setter. initial is
// stored on the first render only.
func UseState[T any](s *Scope, initial T) (T, *Setter[T]) {
	return UseStateFunc(s, func() T { return initial })
}

// UseStateFunc is UseState with a lazily computed default; init runs once,
// on the first render.
func UseStateFunc[T any](s *Scope, init func() T) (T, *Setter[T]) {
	sl := use(s, SlotState, func() *stateSlot[T] {
		sl := &stateSlot[T]{value: init()}
		sl.setter = &Setter[T]{
			id:   s.inst.sched.nextSetterID(),
			inst: s.inst,
			slot: sl,
		}
		return sl
	})
	return sl.value, sl.setter
}

// Dispatch feeds an action to a reducer hook.
type Dispatch[A any] func(action A)

// UseReducer keeps state that changes only through reducer. It occupies one
// state slot. Actions are reduced against the latest written state with the
// reducer of the render that produced the dispatch.
func UseReducer[S, A any](s *Scope, reducer func(state S, action A) S, initial S) (S, Dispatch[A]) {
	state, set := UseState(s, initial)
	return state, func(action A) {
		set.Update(func(cur S) S {
			return reducer(cur, action)
		})
	}
}

// Ref is a mutable box that survives renders without scheduling any.
type Ref[T any] struct {
	Current T
}

type refSlot[T any] struct {
	ref *Ref[T]
}

func (*refSlot[T]) kind() SlotKind { return SlotRef }

// UseRef returns the same *Ref on every render of the instance.
func UseRef[T any](s *Scope, initial T) *Ref[T] {
	sl := use(s, SlotRef, func() *refSlot[T] {
		return &refSlot[T]{ref: &Ref[T]{Current: initial}}
	})
	return sl.ref
}
