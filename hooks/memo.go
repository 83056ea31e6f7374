package hooks

type memoSlot[T any] struct {
	value T
	deps  []any
}

func (*memoSlot[T]) kind() SlotKind { return SlotMemo }

func (sl *memoSlot[T]) describe(info *SlotInfo) {
	info.Deps = cloneDeps(sl.deps)
}

// UseMemo returns the value compute produced for the current dependency
// tuple. compute runs on the first render and again only when deps differ
// from the previous render's tuple (see depsEqual for the shallow policy).
// With no deps at all the value is computed once for the life of the
// instance.
//
// compute may be skipped on any render, so it must not have side effects.
// Only its result and deps are kept; the closure itself is dropped.
func UseMemo[T any](s *Scope, compute func() T, deps ...any) T {
	created := false
	sl := use(s, SlotMemo, func() *memoSlot[T] {
		created = true
		return &memoSlot[T]{}
	})
	if created || !depsEqual(sl.deps, deps) {
		sl.value = compute()
		sl.deps = cloneDeps(deps)
	}
	return sl.value
}

// UseCallback returns fn as it was on the last render whose deps differed,
// so the callback keeps its identity while deps are unchanged.
func UseCallback[F any](s *Scope, fn F, deps ...any) F {
	return UseMemo(s, func() F { return fn }, deps...)
}
