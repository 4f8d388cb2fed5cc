package ast

import (
	"fmt"
	"strings"
)

// Field names used in keypath steps.
const (
	FieldChildren   = "children"
	FieldAttributes = "attributes"
	FieldArguments  = "arguments"
	FieldCallee     = "callee"
	FieldExpression = "expression"
	FieldObject     = "object"
	FieldProperty   = "property"
)

// Step addresses one child of a node: a field name plus, for slice fields,
// an index. Scalar fields carry index 0.
type Step struct {
	Field string
	Index int
}

// Keypath locates a node from a tree root. A keypath is stable only until an
// ancestor along the path is replaced or a sibling slice is reindexed.
type Keypath []Step

func (kp Keypath) String() string {
	parts := make([]string, len(kp))
	for i, s := range kp {
		parts[i] = fmt.Sprintf("%s[%d]", s.Field, s.Index)
	}
	return strings.Join(parts, ".")
}

// Get resolves kp against root. It panics on a dangling path; callers only
// resolve keypaths enumerated from the same tree shape.
func Get(root *Node, kp Keypath) *Node {
	n := root
	for _, step := range kp {
		n = n.child(step)
		if n == nil {
			panic(fmt.Sprintf("ast: dangling keypath step %s[%d]", step.Field, step.Index))
		}
	}
	return n
}

// Set returns a new tree equal to root with the node at kp replaced by repl.
// Nodes along the path are shallow-copied; everything off the path is shared
// with the input tree. root itself is never mutated.
func Set(root *Node, kp Keypath, repl *Node) *Node {
	if len(kp) == 0 {
		return repl
	}
	step := kp[0]
	c := *root
	switch step.Field {
	case FieldChildren:
		c.Children = replaceAt(root.Children, step.Index, Set(root.Children[step.Index], kp[1:], repl))
	case FieldAttributes:
		c.Attributes = replaceAt(root.Attributes, step.Index, Set(root.Attributes[step.Index], kp[1:], repl))
	case FieldArguments:
		c.Arguments = replaceAt(root.Arguments, step.Index, Set(root.Arguments[step.Index], kp[1:], repl))
	case FieldCallee:
		c.Callee = Set(root.Callee, kp[1:], repl)
	case FieldExpression:
		c.Expression = Set(root.Expression, kp[1:], repl)
	case FieldObject:
		c.Object = Set(root.Object, kp[1:], repl)
	case FieldProperty:
		c.Property = Set(root.Property, kp[1:], repl)
	default:
		panic(fmt.Sprintf("ast: unhandled keypath field %q", step.Field))
	}
	return &c
}

func (n *Node) child(step Step) *Node {
	switch step.Field {
	case FieldChildren:
		return at(n.Children, step.Index)
	case FieldAttributes:
		return at(n.Attributes, step.Index)
	case FieldArguments:
		return at(n.Arguments, step.Index)
	case FieldCallee:
		return n.Callee
	case FieldExpression:
		return n.Expression
	case FieldObject:
		return n.Object
	case FieldProperty:
		return n.Property
	default:
		panic(fmt.Sprintf("ast: unhandled keypath field %q", step.Field))
	}
}

func at(nodes []*Node, i int) *Node {
	if i < 0 || i >= len(nodes) {
		return nil
	}
	return nodes[i]
}

func replaceAt(nodes []*Node, i int, repl *Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	out[i] = repl
	return out
}

// Keypaths enumerates the keypath of every node reachable from root in
// pre-order: a node always precedes its descendants, fields are visited in
// document order, and slices by ascending index. The root's keypath is the
// empty path.
func Keypaths(root *Node) []Keypath {
	var out []Keypath
	var visit func(n *Node, kp Keypath)
	visit = func(n *Node, kp Keypath) {
		out = append(out, append(Keypath(nil), kp...))
		for _, s := range n.slots() {
			for i, child := range s.nodes {
				visit(child, append(kp, Step{Field: s.field, Index: i}))
			}
		}
	}
	visit(root, nil)
	return out
}
