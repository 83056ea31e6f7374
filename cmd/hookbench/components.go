package main

import (
	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/vdom"
)

// counterRow is the bench workload: one state slot, a fixed number of memos
// keyed on the count's parity and an effect keyed on the count.
type counterRow struct {
	memos   int
	set     *hooks.Setter[int]
	effects int
}

func counterComponent(s *hooks.Scope, row *counterRow) *vdom.Node {
	count, set := hooks.UseState(s, 0)
	row.set = set

	sum := 0
	for i := 0; i < row.memos; i++ {
		sum += hooks.UseMemo(s, func() int { return (count % 2) * i }, count%2)
	}
	hooks.UseEffectWithDeps(s, func() hooks.Cleanup {
		row.effects++
		return nil
	}, count)

	return vdom.El("li", nil,
		vdom.El("span", vdom.ID("count"), vdom.Textf("%d", count)),
		vdom.El("span", vdom.ID("sum"), vdom.Textf("%d", sum)),
	)
}

// memoSeed counts itself up to 5 from an always-run effect, next to a memo
// that must only ever be computed once.
func memoSeed(s *hooks.Scope, computes *int) *vdom.Node {
	state, set := hooks.UseState(s, 0)
	memoed := hooks.UseMemo(s, func() string {
		*computes++
		return "true"
	})
	hooks.UseEffect(s, func() hooks.Cleanup {
		if state < 5 {
			set.Set(state + 1)
		}
		return func() {}
	})
	return vdom.El("div", nil,
		vdom.Text("The test output is: "),
		vdom.El("div", vdom.ID("result"), vdom.Text(memoed)),
		vdom.Text("\n"),
	)
}
