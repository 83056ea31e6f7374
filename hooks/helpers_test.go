package hooks_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/dom"
	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newScheduler(t *testing.T, opts ...hooks.Option) (*hooks.Scheduler, *dom.Document) {
	t.Helper()
	doc := dom.New()
	base := []hooks.Option{
		hooks.WithReconciler(doc),
		hooks.WithLogger(quietLogger()),
	}
	return hooks.NewScheduler(append(base, opts...)...), doc
}

// counterProbe exposes a counter instance's hook handles to the test.
type counterProbe struct {
	name    string
	value   int
	set     *hooks.Setter[int]
	renders int
	log     *[]string
}

func counter(s *hooks.Scope, p *counterProbe) *vdom.Node {
	count, set := hooks.UseState(s, 0)
	p.value = count
	p.set = set
	p.renders++
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
	return vdom.El("span", vdom.ID("count"), vdom.Textf("%d", count))
}

func mountCounter(t *testing.T, sched *hooks.Scheduler, target hooks.Target, p *counterProbe) *hooks.Handle[*counterProbe] {
	t.Helper()
	h, err := hooks.Mount(sched, counter, p, target)
	require.NoError(t, err)
	return h
}

func countText(t *testing.T, doc *dom.Document, target hooks.Target) string {
	t.Helper()
	text, ok := doc.TextByID(target, "count")
	require.True(t, ok, "no #count in %s", target)
	return text
}
