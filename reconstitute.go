package jsxlate

import (
	"fmt"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// reconstitute merges a translated subtree with the original message it
// translates, restoring the hidden detail the sanitizer elided. The
// definition map is re-derived from the original on every call; it is never
// cached or passed in stale.
//
// The translator's tree shape is authoritative: element nesting, ordering,
// added or removed wrappers, and attribute order are all preserved. Only
// attribute values behind a designation and expression subtrees behind a
// placeholder are pulled from the original.
func (c *Config) reconstitute(translated, original *ast.Node) (*ast.Node, error) {
	defs, err := c.collectDefinitions(original)
	if err != nil {
		return nil, err
	}
	return c.reconstituteNode(translated, defs)
}

func (c *Config) reconstituteNode(n *ast.Node, defs map[string]definition) (*ast.Node, error) {
	switch n.Kind {
	case ast.KindLiteral, ast.KindText, ast.KindEmpty:
		return n, nil

	case ast.KindElement:
		return c.reconstituteElement(n, defs)

	case ast.KindContainer:
		if n.Expression.Kind == ast.KindEmpty {
			return n, nil
		}
		if !isNamedExpression(n.Expression) {
			return nil, inputErrorf(n, "translated message has a non-placeholder expression: {%s}",
				printer.Print(n.Expression))
		}
		name := printer.Print(n.Expression)
		def, ok := defs[name]
		if !ok || def.expression == nil {
			return nil, inputErrorf(n, "placeholder {%s} does not appear in the original message", name)
		}
		out := *n
		// Restore the original expression subtree verbatim: exact original
		// code, not a re-derivation.
		out.Expression = def.expression
		return &out, nil

	default:
		panic(fmt.Sprintf("jsxlate: unhandled node kind %q in reconstitute", n.Kind))
	}
}

// reconstituteElement resolves a translated element against the definition
// map: a designated element gets its elided attributes back (translator
// values win on collision) and its designation marking stripped; an
// undesignated element must not carry attributes outside the allow-list.
func (c *Config) reconstituteElement(n *ast.Node, defs map[string]definition) (*ast.Node, error) {
	parts, err := c.splitElement(n)
	if err != nil {
		return nil, err
	}
	base, _ := splitName(n.Name)

	out := *n
	out.Name = base

	if parts.designation == "" {
		if hidden := c.hiddenAttributes(base, parts.attrs); len(hidden) > 0 {
			return nil, inputErrorf(n, "translated message has an attribute not allowed on <%s>: %s",
				base, printer.Print(hidden[0]))
		}
		out.Attributes = parts.attrs
	} else {
		def, ok := defs[parts.designation]
		if !ok || def.attributes == nil {
			return nil, inputErrorf(n, "designation %q does not appear in the original message", parts.designation)
		}
		out.Attributes = mergeAttributes(parts.attrs, def.attributes)
	}

	out.Children = make([]*ast.Node, len(n.Children))
	for i, child := range n.Children {
		out.Children[i], err = c.reconstituteNode(child, defs)
		if err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// mergeAttributes keeps the translator's attributes in their written order,
// then restores every hidden attribute the translator did not override, in
// original order.
func mergeAttributes(kept, hidden []*ast.Node) []*ast.Node {
	overridden := make(map[string]bool, len(kept))
	for _, attr := range kept {
		if attr.Kind == ast.KindAttribute {
			overridden[attr.Name] = true
		}
	}
	merged := append([]*ast.Node(nil), kept...)
	for _, attr := range hidden {
		if attr.Kind == ast.KindAttribute && overridden[attr.Name] {
			continue
		}
		merged = append(merged, attr)
	}
	return merged
}
