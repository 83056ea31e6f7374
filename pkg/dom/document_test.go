package dom_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/dom"
	"github.com/delaneyj/hookparty/pkg/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitReplacesTree(t *testing.T) {
	doc := dom.New()
	require.NoError(t, doc.Commit("app", vdom.El("p", vdom.ID("msg"), vdom.Text("one"))))
	require.NoError(t, doc.Commit("app", vdom.El("p", vdom.ID("msg"), vdom.Text("two"))))

	text, ok := doc.TextByID("app", "msg")
	require.True(t, ok)
	assert.Equal(t, "two", text)
	assert.Equal(t, 2, doc.Commits("app"))
	assert.Equal(t, `<p id="msg">two</p>`, doc.HTML("app"))
}

func TestRejectKeepsPreviousTree(t *testing.T) {
	doc := dom.New()
	first := vdom.El("p", nil, vdom.Text("kept"))
	require.NoError(t, doc.Commit("app", first))

	boom := errors.New("boom")
	doc.Reject = func(hooks.Target, *vdom.Node) error { return boom }
	err := doc.Commit("app", vdom.Text("dropped"))
	require.ErrorIs(t, err, boom)

	tree, ok := doc.Tree("app")
	require.True(t, ok)
	assert.Same(t, first, tree)
	assert.Equal(t, 1, doc.Commits("app"))
}

func TestRemove(t *testing.T) {
	doc := dom.New()
	require.NoError(t, doc.Commit("b", vdom.Text("b")))
	require.NoError(t, doc.Commit("a", vdom.Text("a")))
	assert.Equal(t, []hooks.Target{"a", "b"}, doc.Targets())

	require.NoError(t, doc.Remove("a"))
	require.NoError(t, doc.Remove("missing"))
	assert.Equal(t, []hooks.Target{"b"}, doc.Targets())

	_, ok := doc.TextByID("a", "anything")
	assert.False(t, ok)
	assert.Empty(t, doc.HTML("a"))
	assert.Equal(t, 1, doc.Commits("a"))
}
