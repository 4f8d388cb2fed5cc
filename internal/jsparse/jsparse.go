// Package jsparse adapts the tree-sitter JavaScript grammar (which includes
// JSX) to the pipeline's node model.
//
// Conversion is deliberately shallow outside messages: only marker-shaped
// constructs and the markup inside them are modeled. Everything else becomes
// an ast.KindRaw node carrying its verbatim source text, so a document prints
// back byte-exact everywhere the pipeline did not rewrite.
package jsparse

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/zbyte64/jsxlate/internal/ast"
)

// Markers names the reserved lexical markers recognized during conversion.
type Markers struct {
	// Function is the call-style marker identifier, e.g. "i18n".
	Function string
	// Element is the element-style marker tag, e.g. "I18N".
	Element string
}

// Parse parses src as a JavaScript/JSX module and converts it to the node
// model. It fails on any syntax error the grammar reports.
func Parse(src string, m Markers) (*ast.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("jsparse: parse: %w", err)
	}
	root := tree.RootNode()
	if bad := firstSyntaxError(root); bad != nil {
		return nil, fmt.Errorf("jsparse: syntax error at line %d, column %d",
			bad.StartPoint().Row+1, bad.StartPoint().Column+1)
	}

	c := &converter{src: []byte(src), markers: m}
	return c.program(root), nil
}

// firstSyntaxError returns the first error or missing node in the tree, or
// nil when the parse is clean.
func firstSyntaxError(n *sitter.Node) *sitter.Node {
	if !n.HasError() {
		return nil
	}
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstSyntaxError(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}

type converter struct {
	src     []byte
	markers Markers
}

func (c *converter) program(n *sitter.Node) *ast.Node {
	out := c.segmented(n)
	out.Kind = ast.KindProgram
	return out
}

// outside converts a node found outside any message. Marker-shaped nodes
// switch into full modeling; anything else stays Raw, recursing only to keep
// finding markers deeper down.
func (c *converter) outside(n *sitter.Node) *ast.Node {
	switch {
	case c.isMarkerCall(n):
		return c.markerCall(n)
	case c.isMarkerElement(n):
		return c.element(n)
	case n.Type() == "string":
		// A Literal prints its exact token, so modeling strings everywhere
		// costs no fidelity and lets translated string markers surface as
		// literals.
		return c.stringLiteral(n)
	default:
		return c.segmented(n)
	}
}

// segmented converts n to a Raw node: converted named children interleaved
// with the verbatim source text between them.
func (c *converter) segmented(n *sitter.Node) *ast.Node {
	count := int(n.NamedChildCount())
	children := make([]*ast.Node, 0, count)
	segments := make([]string, 0, count+1)
	pos := n.StartByte()
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		segments = append(segments, string(c.src[pos:child.StartByte()]))
		children = append(children, c.outside(child))
		pos = child.EndByte()
	}
	segments = append(segments, string(c.src[pos:n.EndByte()]))
	return &ast.Node{
		Kind:     ast.KindRaw,
		Children: children,
		Segments: segments,
		Line:     line(n),
	}
}

func (c *converter) isMarkerElement(n *sitter.Node) bool {
	if n.Type() != "jsx_element" || n.NamedChildCount() == 0 {
		return false
	}
	return c.content(c.elementName(n.NamedChild(0))) == c.markers.Element
}

func (c *converter) isMarkerCall(n *sitter.Node) bool {
	if n.Type() != "call_expression" {
		return false
	}
	callee := n.ChildByFieldName("function")
	return callee != nil && callee.Type() == "identifier" && c.content(callee) == c.markers.Function
}

// markerCall models a call whose callee is the function marker. Argument
// shape is not validated here; the finder rejects malformed marker calls
// with a proper input error.
func (c *converter) markerCall(n *sitter.Node) *ast.Node {
	callee := n.ChildByFieldName("function")
	out := &ast.Node{
		Kind:   ast.KindCall,
		Callee: &ast.Node{Kind: ast.KindIdentifier, Name: c.content(callee), Line: line(callee)},
		Line:   line(n),
	}
	args := n.ChildByFieldName("arguments")
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() == "string" {
			out.Arguments = append(out.Arguments, c.stringLiteral(arg))
		} else {
			out.Arguments = append(out.Arguments, c.outside(arg))
		}
	}
	return out
}

// element fully models a JSX element and its contents. Used for element
// markers and for all markup inside a message.
func (c *converter) element(n *sitter.Node) *ast.Node {
	out := &ast.Node{Kind: ast.KindElement, Line: line(n)}
	var opening *sitter.Node
	if n.Type() == "jsx_self_closing_element" {
		out.SelfClosing = true
		opening = n
	} else {
		opening = n.NamedChild(0) // jsx_opening_element
		closing := n.NamedChild(int(n.NamedChildCount()) - 1)
		// The grammar trims whitespace around jsx_text; recover the gaps as
		// verbatim Text nodes so message content stays byte-exact.
		pos := opening.EndByte()
		for i := 1; i < int(n.NamedChildCount())-1; i++ {
			child := n.NamedChild(i)
			if child.StartByte() > pos {
				out.Children = append(out.Children, c.gapText(pos, child.StartByte()))
			}
			out.Children = append(out.Children, c.jsxChild(child))
			pos = child.EndByte()
		}
		if closing.StartByte() > pos {
			out.Children = append(out.Children, c.gapText(pos, closing.StartByte()))
		}
		out.Children = coalesceText(out.Children)
	}
	name := c.elementName(opening)
	if name != nil {
		out.Name = c.content(name)
	}
	for i := 0; i < int(opening.NamedChildCount()); i++ {
		child := opening.NamedChild(i)
		switch {
		case name != nil && child.StartByte() == name.StartByte() && child.EndByte() == name.EndByte():
			// The tag name itself.
		case child.Type() == "jsx_attribute":
			out.Attributes = append(out.Attributes, c.attribute(child))
		default:
			// Spread attributes and anything else the grammar may produce
			// stay verbatim.
			out.Attributes = append(out.Attributes, c.segmented(child))
		}
	}
	return out
}

// elementName returns the tag-name node of an opening or self-closing
// element, or nil for a fragment.
func (c *converter) elementName(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if byField := n.ChildByFieldName("name"); byField != nil {
		return byField
	}
	if n.NamedChildCount() == 0 {
		return nil
	}
	first := n.NamedChild(0)
	if first.Type() == "jsx_attribute" {
		return nil
	}
	return first
}

func (c *converter) gapText(start, end uint32) *ast.Node {
	return &ast.Node{Kind: ast.KindText, Value: string(c.src[start:end])}
}

// coalesceText merges runs of adjacent text children. The grammar splits
// text around character references and trimmed whitespace; one Text node per
// textual run keeps trees and message keys stable.
func coalesceText(children []*ast.Node) []*ast.Node {
	out := children[:0:0]
	for _, child := range children {
		last := len(out) - 1
		if child.Kind == ast.KindText && last >= 0 && out[last].Kind == ast.KindText {
			merged := *out[last]
			merged.Value += child.Value
			out[last] = &merged
			continue
		}
		out = append(out, child)
	}
	return out
}

func (c *converter) jsxChild(n *sitter.Node) *ast.Node {
	switch n.Type() {
	case "jsx_element", "jsx_self_closing_element":
		return c.element(n)
	case "jsx_expression":
		return c.container(n)
	case "jsx_text":
		return &ast.Node{Kind: ast.KindText, Value: c.content(n), Line: line(n)}
	default:
		// Character references and other textual children print verbatim.
		return &ast.Node{Kind: ast.KindText, Value: c.content(n), Line: line(n)}
	}
}

func (c *converter) attribute(n *sitter.Node) *ast.Node {
	out := &ast.Node{Kind: ast.KindAttribute, Line: line(n)}
	out.Name = c.content(n.NamedChild(0))
	if n.NamedChildCount() > 1 {
		value := n.NamedChild(1)
		switch value.Type() {
		case "string":
			out.Expression = c.stringLiteral(value)
		case "jsx_expression":
			out.Expression = c.container(value)
		default:
			out.Expression = c.segmented(value)
		}
	}
	return out
}

func (c *converter) container(n *sitter.Node) *ast.Node {
	out := &ast.Node{Kind: ast.KindContainer, Line: line(n)}
	if n.NamedChildCount() == 0 {
		out.Expression = &ast.Node{Kind: ast.KindEmpty, Line: line(n)}
		return out
	}
	out.Expression = c.expression(n.NamedChild(0))
	return out
}

// expression models the named-expression forms the sanitizer accepts;
// everything else stays Raw and is rejected later, with its text intact for
// the error message.
func (c *converter) expression(n *sitter.Node) *ast.Node {
	switch n.Type() {
	case "identifier":
		return &ast.Node{Kind: ast.KindIdentifier, Name: c.content(n), Line: line(n)}
	case "member_expression":
		object := n.ChildByFieldName("object")
		property := n.ChildByFieldName("property")
		// Only a plain dotted access models as a member. Optional chaining
		// (?.) changes runtime semantics and must survive verbatim, so it
		// stays Raw like any other unmodeled expression.
		if strings.TrimSpace(string(c.src[object.EndByte():property.StartByte()])) != "." {
			return c.segmented(n)
		}
		obj := c.expression(object)
		if obj.Kind != ast.KindIdentifier && obj.Kind != ast.KindMember {
			return c.segmented(n)
		}
		return &ast.Node{
			Kind:     ast.KindMember,
			Object:   obj,
			Property: &ast.Node{Kind: ast.KindIdentifier, Name: c.content(property), Line: line(property)},
			Line:     line(n),
		}
	default:
		return c.outside(n)
	}
}

func (c *converter) stringLiteral(n *sitter.Node) *ast.Node {
	raw := c.content(n)
	return &ast.Node{
		Kind:  ast.KindLiteral,
		Raw:   raw,
		Value: decodeString(raw),
		Line:  line(n),
	}
}

func (c *converter) content(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(c.src)
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}
