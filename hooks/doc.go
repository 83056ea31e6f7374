// Package hooks is a hooks-and-render runtime for function-shaped
// components.
//
// A component is a function of a *Scope and props that returns a vdom tree.
// While it runs it may call hooks (UseState, UseReducer, UseRef, UseMemo,
// UseCallback, UseEffect, UseEffectWithDeps). Each hook call owns the slot
// at its call position, so a component must call the same hooks in the
// same order on every render; a change of kind, slot type or count is
// reported as a *HookOrderError and disables the instance.
//
// State setters never render synchronously. They enqueue the owning
// instance on its Scheduler, and Flush runs one pass per queued instance:
//
//	render -> commit (Reconciler) -> effects (slot order, cleanup before body)
//
// Updates made during a pass enqueue another pass. The scheduler has no
// fixed-point detection: an effect that sets state on every run without a
// dependency gate re-renders forever unless WithMaxPasses bounds it.
//
//	sched := hooks.NewScheduler(hooks.WithReconciler(doc))
//	counter := func(s *hooks.Scope, _ struct{}) *vdom.Node {
//	    count, set := hooks.UseState(s, 0)
//	    hooks.UseEffect(s, func() hooks.Cleanup {
//	        if count < 3 {
//	            set.Set(count + 1)
//	        }
//	        return nil
//	    })
//	    return vdom.El("span", nil, vdom.Textf("%d", count))
//	}
//	h, err := hooks.Mount(sched, counter, struct{}{}, "app")
package hooks
