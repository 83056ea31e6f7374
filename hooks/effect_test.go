package hooks_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEffect(log *[]string, name string, arg any) hooks.EffectFunc {
	return func() hooks.Cleanup {
		*log = append(*log, fmt.Sprintf("%s body %v", name, arg))
		return func() {
			*log = append(*log, fmt.Sprintf("%s cleanup %v", name, arg))
		}
	}
}

func TestEffectsRunInDeclarationOrder(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	comp := func(s *hooks.Scope, _ struct{}) *vdom.Node {
		hooks.UseEffectWithDeps(s, logEffect(&log, "A", 0))
		hooks.UseEffectWithDeps(s, logEffect(&log, "B", 0))
		return nil
	}
	h, err := hooks.Mount(sched, comp, struct{}{}, "app")
	require.NoError(t, err)
	assert.Equal(t, []string{"A body 0", "B body 0"}, log)

	require.NoError(t, h.Invalidate())
	require.NoError(t, sched.Flush())
	assert.Len(t, log, 2, "mount-only effects ran again")

	log = nil
	require.NoError(t, h.Unmount())
	assert.Equal(t, []string{"A cleanup 0", "B cleanup 0"}, log)
}

func TestAlwaysEffectsCleanupPerSlot(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	comp := func(s *hooks.Scope, n int) *vdom.Node {
		hooks.UseEffect(s, logEffect(&log, "A", n))
		hooks.UseEffect(s, logEffect(&log, "B", n))
		return nil
	}
	h, err := hooks.Mount(sched, comp, 1, "app")
	require.NoError(t, err)

	log = nil
	h.SetProps(2)
	require.NoError(t, sched.Flush())
	assert.Equal(t, []string{
		"A cleanup 1", "A body 2",
		"B cleanup 1", "B body 2",
	}, log)
}

type effectProps struct {
	a, b int
}

func TestEffectDepsGateEachSlot(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	comp := func(s *hooks.Scope, p effectProps) *vdom.Node {
		hooks.UseEffectWithDeps(s, logEffect(&log, "A", p.a), p.a)
		hooks.UseEffectWithDeps(s, logEffect(&log, "B", p.b), p.b)
		return nil
	}
	h, err := hooks.Mount(sched, comp, effectProps{1, 1}, "app")
	require.NoError(t, err)

	log = nil
	h.SetProps(effectProps{1, 2})
	require.NoError(t, sched.Flush())
	assert.Equal(t, []string{"B cleanup 1", "B body 2"}, log)

	log = nil
	h.SetProps(effectProps{1, 2})
	require.NoError(t, sched.Flush())
	assert.Empty(t, log)

	slots := h.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, []any{2}, slots[1].Deps)
	assert.True(t, slots[1].HasCleanup)
}

func TestEffectSeesCommittedOutput(t *testing.T) {
	sched, doc := newScheduler(t)
	var seen []string
	comp := func(s *hooks.Scope, n int) *vdom.Node {
		hooks.UseEffect(s, func() hooks.Cleanup {
			text, _ := doc.TextByID("app", "count")
			seen = append(seen, text)
			return nil
		})
		return vdom.El("i", vdom.ID("count"), vdom.Textf("%d", n))
	}
	h, err := hooks.Mount(sched, comp, 1, "app")
	require.NoError(t, err)
	h.SetProps(2)
	require.NoError(t, sched.Flush())

	assert.Equal(t, []string{"1", "2"}, seen)
}

func TestEffectPanicStopsRemainingEffects(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	boom := errors.New("boom")
	comp := func(s *hooks.Scope, fail bool) *vdom.Node {
		hooks.UseEffect(s, func() hooks.Cleanup {
			if fail {
				panic(boom)
			}
			return nil
		})
		hooks.UseEffect(s, logEffect(&log, "B", fail))
		return nil
	}
	h, err := hooks.Mount(sched, comp, false, "app")
	require.NoError(t, err)
	log = nil

	h.SetProps(true)
	err = sched.Flush()

	var effectErr *hooks.EffectPanicError
	require.ErrorAs(t, err, &effectErr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, effectErr.Slot)
	assert.False(t, effectErr.Cleanup)
	assert.NotEmpty(t, effectErr.StackTrace)
	assert.Empty(t, log)

	// the next successful pass re-runs the dropped effect
	h.SetProps(false)
	require.NoError(t, sched.Flush())
	assert.Equal(t, []string{"B cleanup false", "B body false"}, log)
}

func TestUnmountRunsEveryCleanupDespitePanics(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	comp := func(s *hooks.Scope, _ struct{}) *vdom.Node {
		hooks.UseEffectWithDeps(s, func() hooks.Cleanup {
			return func() { panic("first cleanup") }
		})
		hooks.UseEffectWithDeps(s, logEffect(&log, "B", 0))
		return nil
	}
	h, err := hooks.Mount(sched, comp, struct{}{}, "app")
	require.NoError(t, err)

	err = h.Unmount()
	var effectErr *hooks.EffectPanicError
	require.ErrorAs(t, err, &effectErr)
	assert.True(t, effectErr.Cleanup)
	assert.Equal(t, []string{"B body 0", "B cleanup 0"}, log)
	assert.Empty(t, h.Slots())
}

func TestEffectUnmountingItsOwnInstance(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	var self *hooks.Instance
	comp := func(s *hooks.Scope, _ struct{}) *vdom.Node {
		self = s.Instance()
		hooks.UseEffectWithDeps(s, logEffect(&log, "A", 0))
		hooks.UseEffectWithDeps(s, func() hooks.Cleanup {
			require.NoError(t, self.Unmount())
			return func() { log = append(log, "B cleanup") }
		})
		hooks.UseEffectWithDeps(s, logEffect(&log, "C", 0))
		return nil
	}
	_, err := hooks.Mount(sched, comp, struct{}{}, "app")
	require.NoError(t, err)

	assert.Equal(t, []string{"A body 0", "A cleanup 0", "B cleanup"}, log)
	assert.False(t, self.Mounted())
}

func TestCleanupPanicKeepsNextBodyPending(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	comp := func(s *hooks.Scope, n int) *vdom.Node {
		hooks.UseEffectWithDeps(s, func() hooks.Cleanup {
			log = append(log, fmt.Sprintf("body %d", n))
			return func() {
				if n == 1 {
					panic("cleanup failed")
				}
				log = append(log, fmt.Sprintf("cleanup %d", n))
			}
		}, n)
		return nil
	}
	h, err := hooks.Mount(sched, comp, 1, "app")
	require.NoError(t, err)

	h.SetProps(2)
	err = sched.Flush()
	var effectErr *hooks.EffectPanicError
	require.ErrorAs(t, err, &effectErr)
	assert.True(t, effectErr.Cleanup)
	assert.Equal(t, []string{"body 1"}, log)

	// same deps as the failed pass: the body for 2 has still not run
	require.NoError(t, h.Invalidate())
	require.NoError(t, sched.Flush())
	assert.Equal(t, []string{"body 1", "body 2"}, log)
	assert.Equal(t, []any{2}, h.Slots()[0].Deps)

	require.NoError(t, h.Unmount())
	assert.Equal(t, []string{"body 1", "body 2", "cleanup 2"}, log)
}

func TestCleanupUnmountingItsOwnInstanceSkipsBody(t *testing.T) {
	sched, _ := newScheduler(t)
	var log []string
	var self *hooks.Instance
	comp := func(s *hooks.Scope, n int) *vdom.Node {
		self = s.Instance()
		hooks.UseEffect(s, logEffect(&log, "A", n))
		hooks.UseEffect(s, func() hooks.Cleanup {
			log = append(log, fmt.Sprintf("B body %d", n))
			return func() {
				log = append(log, fmt.Sprintf("B cleanup %d", n))
				if n == 1 {
					require.NoError(t, self.Unmount())
				}
			}
		})
		return nil
	}
	h, err := hooks.Mount(sched, comp, 1, "app")
	require.NoError(t, err)

	h.SetProps(2)
	require.NoError(t, sched.Flush())
	assert.Equal(t, []string{
		"A body 1", "B body 1",
		"A cleanup 1", "A body 2",
		"B cleanup 1", "A cleanup 2",
	}, log)
	assert.False(t, self.Mounted())
}
