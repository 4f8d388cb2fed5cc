// Package ast defines the immutable syntax tree the translation pipeline
// operates on, along with keypaths for locating and persistently rewriting
// nodes within a tree.
//
// Nodes are never mutated after construction. Every rewrite goes through
// [Set], which returns a new root sharing all untouched subtrees with its
// input, so intermediate trees stay valid for diagnostics after later
// rewrites proceed.
package ast

import "fmt"

// Kind tags a Node with its syntactic shape.
type Kind string

const (
	// KindProgram is the document root.
	KindProgram Kind = "Program"
	// KindRaw is any source construct the pipeline does not model. A Raw
	// node keeps the verbatim source text around its converted children in
	// Segments, so untouched code prints back byte-exact.
	KindRaw Kind = "Raw"
	// KindElement is a JSX element (self-closing or not).
	KindElement Kind = "Element"
	// KindAttribute is a single JSX attribute. Its value, when present, is
	// a Literal (string form) or an ExpressionContainer (brace form).
	KindAttribute Kind = "Attribute"
	// KindContainer is a braced JSX expression container.
	KindContainer Kind = "ExpressionContainer"
	// KindEmpty is the hole inside an empty container: {}.
	KindEmpty Kind = "EmptyExpression"
	// KindCall is a call expression.
	KindCall Kind = "CallExpression"
	// KindLiteral is a string literal. Value holds the decoded string,
	// Raw the exact token to print.
	KindLiteral Kind = "Literal"
	// KindText is literal JSX text between element tags.
	KindText Kind = "Text"
	// KindIdentifier is a bare identifier.
	KindIdentifier Kind = "Identifier"
	// KindMember is a non-computed member expression (a.b.c). Computed
	// access parses as a distinct construct and lands in KindRaw.
	KindMember Kind = "MemberExpression"
)

// Node is one immutable syntax tree node. Only the fields relevant to a
// node's Kind are populated; the rest stay zero.
type Node struct {
	Kind Kind

	// Name is the element tag (possibly namespaced, "a:link"), the
	// attribute name, or the identifier name.
	Name string

	// Value is the decoded string value of a Literal, or the exact source
	// text of a Text node.
	Value string

	// Raw is the exact source token of a Literal, quotes included. A
	// Literal synthesized as a translator-facing placeholder carries the
	// placeholder name here and prints bare.
	Raw string

	Attributes []*Node // Element
	Children   []*Node // Program, Raw, Element
	Expression *Node   // Container, Attribute value
	Callee     *Node   // Call
	Arguments  []*Node // Call
	Object     *Node   // Member
	Property   *Node   // Member

	SelfClosing bool // Element

	// Segments is the verbatim source text interleaved with Children on
	// Program and Raw nodes: len(Segments) == len(Children)+1, and the
	// original source is Segments[0] + print(Children[0]) + Segments[1] + …
	Segments []string

	// Line is the 1-based source line the node starts on; 0 for nodes
	// synthesized after parsing.
	Line int
}

// Field returns the value of a named field for pattern matching. The second
// return is false when the field does not apply to any node.
func (n *Node) Field(name string) (any, bool) {
	switch name {
	case "kind":
		return n.Kind, true
	case "name":
		return n.Name, true
	case "value":
		return n.Value, true
	case "selfClosing":
		return n.SelfClosing, true
	case "callee":
		return n.Callee, true
	case "expression":
		return n.Expression, true
	case "object":
		return n.Object, true
	case "property":
		return n.Property, true
	default:
		return nil, false
	}
}

// slot is one child-bearing field of a node, in document order.
type slot struct {
	field string
	nodes []*Node
}

// slots returns the node's child-bearing fields in document order. Scalar
// fields are wrapped as single-element slices; a nil scalar contributes
// nothing.
func (n *Node) slots() []slot {
	switch n.Kind {
	case KindProgram, KindRaw:
		return []slot{{FieldChildren, n.Children}}
	case KindElement:
		return []slot{{FieldAttributes, n.Attributes}, {FieldChildren, n.Children}}
	case KindAttribute:
		return []slot{{FieldExpression, scalar(n.Expression)}}
	case KindContainer:
		return []slot{{FieldExpression, scalar(n.Expression)}}
	case KindCall:
		return []slot{{FieldCallee, scalar(n.Callee)}, {FieldArguments, n.Arguments}}
	case KindMember:
		return []slot{{FieldObject, scalar(n.Object)}, {FieldProperty, scalar(n.Property)}}
	case KindLiteral, KindText, KindIdentifier, KindEmpty:
		return nil
	default:
		panic(fmt.Sprintf("ast: unhandled node kind %q", n.Kind))
	}
}

func scalar(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return []*Node{n}
}
