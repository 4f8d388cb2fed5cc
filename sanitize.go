package jsxlate

import (
	"fmt"
	"strings"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// sanitizeMessage validates a message subtree and projects it into its
// translator-safe form. The validation pass enforces the preconditions the
// recursive projection assumes: no directly nested element markers, a
// designation on every element hiding attributes, and no duplicate
// designation or placeholder names anywhere in the message.
func (c *Config) sanitizeMessage(msg *ast.Node) (*ast.Node, error) {
	if err := c.checkDirectNesting(msg); err != nil {
		return nil, err
	}
	if _, err := c.collectDefinitions(msg); err != nil {
		return nil, err
	}
	return c.sanitize(msg)
}

// checkDirectNesting rejects an element marker with another element marker
// as a direct child. Deeper nesting is legal.
func (c *Config) checkDirectNesting(n *ast.Node) error {
	if !isJsxElement(n) {
		return nil
	}
	for _, child := range n.Children {
		if c.isElementMarker(n) && c.isElementMarker(child) {
			return inputErrorf(child, "message markers cannot be directly nested inside each other")
		}
		if err := c.checkDirectNesting(child); err != nil {
			return err
		}
	}
	return nil
}

// sanitize is pure: it returns a new subtree sharing untouched structure
// with its input and raises only input errors. It never discards anything
// reconstitute cannot recover from the original's definition map.
func (c *Config) sanitize(n *ast.Node) (*ast.Node, error) {
	switch n.Kind {
	case ast.KindLiteral, ast.KindText, ast.KindEmpty, ast.KindCall:
		// The marker call itself and plain text are already translator-safe.
		return n, nil

	case ast.KindElement:
		return c.sanitizeElement(n)

	case ast.KindContainer:
		if n.Expression.Kind == ast.KindEmpty {
			return n, nil
		}
		if !isNamedExpression(n.Expression) {
			return nil, inputErrorf(n, "message contains a non-named expression: {%s}",
				printer.Print(n.Expression))
		}
		name := printer.Print(n.Expression)
		out := *n
		// The placeholder is inert data holding the expression's printed
		// name; the translator sees literal text, never executable code.
		out.Expression = &ast.Node{Kind: ast.KindLiteral, Value: name, Raw: name, Line: n.Expression.Line}
		return &out, nil

	default:
		panic(fmt.Sprintf("jsxlate: unhandled node kind %q in sanitize", n.Kind))
	}
}

// sanitizeElement embeds any attribute-form designation into the element's
// name as namespace form, drops everything outside the component's
// allow-list, and recurses over children.
func (c *Config) sanitizeElement(n *ast.Node) (*ast.Node, error) {
	parts, err := c.splitElement(n)
	if err != nil {
		return nil, err
	}
	base, _ := splitName(n.Name)

	out := *n
	if parts.designation != "" {
		out.Name = base + ":" + parts.designation
	}
	out.Attributes = c.allowedAttributes(base, parts.attrs)
	out.Children = make([]*ast.Node, len(n.Children))
	for i, child := range n.Children {
		out.Children[i], err = c.sanitize(child)
		if err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// messageKey computes the canonical key of a sanitized message: the literal
// string value for a string marker, or the concatenated printed children for
// an element marker, with textual children emitted raw and unescaped.
func (c *Config) messageKey(sanitized *ast.Node) string {
	if c.isStringMarker(sanitized) {
		return sanitized.Arguments[0].Value
	}
	var b strings.Builder
	for _, child := range sanitized.Children {
		switch child.Kind {
		case ast.KindText, ast.KindLiteral:
			b.WriteString(child.Value)
		default:
			b.WriteString(printer.Print(child))
		}
	}
	return b.String()
}
