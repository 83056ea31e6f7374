package hooks_test

import (
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoWithoutDepsComputesOnce(t *testing.T) {
	sched, _ := newScheduler(t)
	computes := 0
	var set *hooks.Setter[int]
	comp := func(s *hooks.Scope, _ struct{}) *vdom.Node {
		unrelated, st := hooks.UseState(s, 0)
		set = st
		v := hooks.UseMemo(s, func() string {
			computes++
			return "memo"
		})
		return vdom.Textf("%s %d", v, unrelated)
	}
	h, err := hooks.Mount(sched, comp, struct{}{}, "app")
	require.NoError(t, err)

	const forced = 10
	for i := 1; i <= forced; i++ {
		set.Set(i)
		require.NoError(t, sched.Flush())
	}

	assert.Equal(t, forced+1, h.Renders())
	assert.Equal(t, 1, computes)
	assert.Equal(t, "memo 10", h.Committed().Text)
}

type memoProps struct {
	x     int
	other int
}

func TestMemoRecomputesOnlyWhenDepsChange(t *testing.T) {
	sched, _ := newScheduler(t)
	computes := 0
	comp := func(s *hooks.Scope, p memoProps) *vdom.Node {
		doubled := hooks.UseMemo(s, func() int {
			computes++
			return p.x * 2
		}, p.x)
		return vdom.Textf("%d/%d", doubled, p.other)
	}
	h, err := hooks.Mount(sched, comp, memoProps{x: 1}, "app")
	require.NoError(t, err)
	require.Equal(t, 1, computes)

	h.SetProps(memoProps{x: 1, other: 1})
	require.NoError(t, sched.Flush())
	assert.Equal(t, 1, computes)
	assert.Equal(t, "2/1", h.Committed().Text)

	h.SetProps(memoProps{x: 3, other: 1})
	require.NoError(t, sched.Flush())
	assert.Equal(t, 2, computes)
	assert.Equal(t, "6/1", h.Committed().Text)

	slots := h.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, hooks.SlotMemo, slots[0].Kind)
	assert.Equal(t, []any{3}, slots[0].Deps)
}

func TestMemoCompositeDepsCompareByReference(t *testing.T) {
	sched, _ := newScheduler(t)
	computes := 0
	shared := []string{"a", "b"}
	comp := func(s *hooks.Scope, items []string) *vdom.Node {
		n := hooks.UseMemo(s, func() int {
			computes++
			return len(items)
		}, items)
		return vdom.Textf("%d", n)
	}
	h, err := hooks.Mount(sched, comp, shared, "app")
	require.NoError(t, err)

	h.SetProps(shared)
	require.NoError(t, sched.Flush())
	assert.Equal(t, 1, computes)

	// equal contents, fresh backing array
	h.SetProps([]string{"a", "b"})
	require.NoError(t, sched.Flush())
	assert.Equal(t, 2, computes)
}

func TestUseCallbackKeepsClosureWhileDepsEqual(t *testing.T) {
	sched, _ := newScheduler(t)
	var cb func() int
	comp := func(s *hooks.Scope, p memoProps) *vdom.Node {
		captured := p.other
		cb = hooks.UseCallback(s, func() int { return captured }, p.x)
		return nil
	}
	h, err := hooks.Mount(sched, comp, memoProps{x: 1, other: 100}, "app")
	require.NoError(t, err)

	h.SetProps(memoProps{x: 1, other: 200})
	require.NoError(t, sched.Flush())
	assert.Equal(t, 100, cb())

	h.SetProps(memoProps{x: 2, other: 300})
	require.NoError(t, sched.Flush())
	assert.Equal(t, 300, cb())
}
