package jsxlate

import (
	"reflect"

	"github.com/zbyte64/jsxlate/internal/ast"
)

// pattern is a declarative, partial description of a node shape. Each entry
// maps a field name to a literal value, a nested pattern, or a predicate.
// Fields absent from the pattern are ignored.
type pattern map[string]any

// predicate tests a single node field.
type predicate func(*ast.Node) bool

// matches reports whether n satisfies p: nested patterns recurse, predicates
// are applied, and anything else must be deeply equal to the field value.
func matches(n *ast.Node, p pattern) bool {
	if n == nil {
		return false
	}
	for field, want := range p {
		got, ok := n.Field(field)
		if !ok {
			return false
		}
		switch w := want.(type) {
		case pattern:
			child, ok := got.(*ast.Node)
			if !ok || !matches(child, w) {
				return false
			}
		case predicate:
			child, ok := got.(*ast.Node)
			if !ok || child == nil || !w(child) {
				return false
			}
		default:
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
	}
	return true
}

var (
	stringLiteralPattern = pattern{"kind": ast.KindLiteral}
	jsxElementPattern    = pattern{"kind": ast.KindElement}
	identifierPattern    = pattern{"kind": ast.KindIdentifier}
)

func isStringLiteral(n *ast.Node) bool { return matches(n, stringLiteralPattern) }
func isJsxElement(n *ast.Node) bool    { return matches(n, jsxElementPattern) }
func isIdentifier(n *ast.Node) bool    { return matches(n, identifierPattern) }

// isSimpleMemberExpression accepts a non-computed dotted chain of
// identifiers: the object is itself an identifier or simple member
// expression, the property an identifier. Computed access never parses to
// ast.KindMember, so it is excluded structurally.
func isSimpleMemberExpression(n *ast.Node) bool {
	return matches(n, pattern{
		"kind":     ast.KindMember,
		"object":   predicate(isNamedExpression),
		"property": identifierPattern,
	})
}

// isNamedExpression accepts the only expression forms permitted inside
// translatable markup: a bare identifier or a simple member expression.
func isNamedExpression(n *ast.Node) bool {
	return isIdentifier(n) || isSimpleMemberExpression(n)
}

// isStringMarker matches the call-style message shape: the marker identifier
// applied to arguments. Argument shape is validated by the finder.
func (c *Config) isStringMarker(n *ast.Node) bool {
	return matches(n, pattern{
		"kind":   ast.KindCall,
		"callee": pattern{"kind": ast.KindIdentifier, "name": c.FunctionMarker},
	})
}

// isElementMarker matches the element-style message shape: a non-self-closing
// element named by the marker tag.
func (c *Config) isElementMarker(n *ast.Node) bool {
	return matches(n, pattern{
		"kind":        ast.KindElement,
		"name":        c.ElementMarker,
		"selfClosing": false,
	})
}

func (c *Config) isMarker(n *ast.Node) bool {
	return c.isStringMarker(n) || c.isElementMarker(n)
}
