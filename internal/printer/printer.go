// Package printer renders syntax trees back to source text.
//
// Constructs the pipeline never modeled (ast.KindRaw, ast.KindProgram) carry
// their verbatim source in Segments and print back byte-exact. Modeled
// constructs print canonically; formatting fidelity inside rewritten
// messages is delegated here and is not a round-trip guarantee.
package printer

import (
	"fmt"
	"strings"

	"github.com/zbyte64/jsxlate/internal/ast"
)

// Print renders n as source text.
func Print(n *ast.Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

func write(b *strings.Builder, n *ast.Node) {
	switch n.Kind {
	case ast.KindProgram, ast.KindRaw:
		writeSegmented(b, n)
	case ast.KindElement:
		writeElement(b, n)
	case ast.KindAttribute:
		writeAttribute(b, n)
	case ast.KindContainer:
		b.WriteString("{")
		if n.Expression != nil {
			write(b, n.Expression)
		}
		b.WriteString("}")
	case ast.KindEmpty:
		// The braces belong to the enclosing container.
	case ast.KindCall:
		write(b, n.Callee)
		b.WriteString("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			write(b, arg)
		}
		b.WriteString(")")
	case ast.KindLiteral:
		b.WriteString(n.Raw)
	case ast.KindText:
		b.WriteString(n.Value)
	case ast.KindIdentifier:
		b.WriteString(n.Name)
	case ast.KindMember:
		write(b, n.Object)
		b.WriteString(".")
		write(b, n.Property)
	default:
		panic(fmt.Sprintf("printer: unhandled node kind %q", n.Kind))
	}
}

// writeSegmented alternates verbatim source segments with printed children.
// Replacing a child leaves the surrounding segments valid, so a rewrite deep
// in a document never disturbs the text around it.
func writeSegmented(b *strings.Builder, n *ast.Node) {
	if len(n.Segments) != len(n.Children)+1 {
		panic(fmt.Sprintf("printer: %s node with %d segments for %d children",
			n.Kind, len(n.Segments), len(n.Children)))
	}
	for i, child := range n.Children {
		b.WriteString(n.Segments[i])
		write(b, child)
	}
	b.WriteString(n.Segments[len(n.Children)])
}

func writeElement(b *strings.Builder, n *ast.Node) {
	b.WriteString("<")
	b.WriteString(n.Name)
	for _, attr := range n.Attributes {
		b.WriteString(" ")
		write(b, attr)
	}
	if n.SelfClosing {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	for _, child := range n.Children {
		write(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteString(">")
}

func writeAttribute(b *strings.Builder, n *ast.Node) {
	b.WriteString(n.Name)
	if n.Expression == nil {
		return
	}
	b.WriteString("=")
	write(b, n.Expression)
}
