// Package vdom holds the output tree a component render produces. The tree is
// a plain value; turning it into visible UI is the job of a reconciler.
package vdom

import (
	"fmt"
	"strings"
)

type Kind uint8

const (
	KindElement Kind = iota
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type Attr struct {
	Key   string
	Value string
}

// Node is either an element with attributes and children, or a text leaf.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// El builds an element node. Nil children are dropped so components can
// inline conditionals.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	n := &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: attrs,
	}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Attrs pairs up alternating keys and values. A trailing key without a value
// is ignored.
func Attrs(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attr{Key: kv[i], Value: kv[i+1]})
	}
	return attrs
}

func ID(id string) []Attr {
	return []Attr{{Key: "id", Value: id}}
}

// Attr returns the value of the first attribute named key.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Find walks the tree depth-first, pre-order, and returns the first node
// matching predicate.
func (n *Node) Find(predicate func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if predicate(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(predicate); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) FindByID(id string) *Node {
	return n.Find(func(candidate *Node) bool {
		v, ok := candidate.Attr("id")
		return ok && v == id
	})
}

// TextContent concatenates every text leaf below n in document order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == KindText {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(sb)
	}
}
