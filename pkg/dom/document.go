// Package dom is an in-memory reconciler. It keeps the last committed tree
// per target and answers queries about it, which is all tests and tools
// need to observe a render.
package dom

import (
	"fmt"
	"slices"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/pkg/vdom"
)

// Document implements hooks.Reconciler.
type Document struct {
	trees   map[hooks.Target]*vdom.Node
	commits map[hooks.Target]int

	// Reject, when set, is consulted before every commit; a non-nil error
	// rejects the commit and leaves the previous tree in place.
	Reject func(target hooks.Target, tree *vdom.Node) error
}

var _ hooks.Reconciler = (*Document)(nil)

func New() *Document {
	return &Document{
		trees:   map[hooks.Target]*vdom.Node{},
		commits: map[hooks.Target]int{},
	}
}

func (d *Document) Commit(target hooks.Target, tree *vdom.Node) error {
	if d.Reject != nil {
		if err := d.Reject(target, tree); err != nil {
			return fmt.Errorf("commit rejected: %w", err)
		}
	}
	d.trees[target] = tree
	d.commits[target]++
	return nil
}

// Remove forgets target. Removing an unknown target is not an error.
func (d *Document) Remove(target hooks.Target) error {
	delete(d.trees, target)
	return nil
}

// Tree returns the last tree committed to target.
func (d *Document) Tree(target hooks.Target) (*vdom.Node, bool) {
	tree, ok := d.trees[target]
	return tree, ok
}

// Commits counts successful commits to target, including removed ones.
func (d *Document) Commits(target hooks.Target) int {
	return d.commits[target]
}

func (d *Document) HTML(target hooks.Target) string {
	return vdom.HTML(d.trees[target])
}

// TextByID returns the text content of the element with the given id in
// target's committed tree.
func (d *Document) TextByID(target hooks.Target, id string) (string, bool) {
	n := d.trees[target].FindByID(id)
	if n == nil {
		return "", false
	}
	return n.TextContent(), true
}

// Targets lists the targets that currently hold a tree, sorted.
func (d *Document) Targets() []hooks.Target {
	targets := make([]hooks.Target, 0, len(d.trees))
	for t := range d.trees {
		targets = append(targets, t)
	}
	slices.Sort(targets)
	return targets
}
