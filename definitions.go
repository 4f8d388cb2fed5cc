package jsxlate

import (
	"slices"
	"strings"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// definition is the hidden detail a single designation or placeholder stands
// for: the elided attributes of a designated element, or the original
// expression subtree behind a placeholder. Exactly one field is set.
type definition struct {
	attributes []*ast.Node
	expression *ast.Node
}

// elementParts is an element's attribute list split for the pipeline: its
// designation (namespace form or the reserved attribute, already removed
// from attrs) and every remaining attribute in document order.
type elementParts struct {
	designation string
	attrs       []*ast.Node
}

// splitElement extracts an element's designation and remaining attributes.
// An element carrying both namespace-form and attribute-form designations is
// an input error.
func (c *Config) splitElement(el *ast.Node) (elementParts, error) {
	_, nsDesignation := splitName(el.Name)
	parts := elementParts{designation: nsDesignation}
	for _, attr := range el.Attributes {
		if attr.Kind == ast.KindAttribute && attr.Name == c.DesignationAttribute {
			if attr.Expression == nil || !isStringLiteral(attr.Expression) {
				return parts, inputErrorf(attr, "%s must be a string literal", c.DesignationAttribute)
			}
			if nsDesignation != "" {
				return parts, inputErrorf(el, "element <%s> carries two designations: %q and %q",
					el.Name, nsDesignation, attr.Expression.Value)
			}
			parts.designation = attr.Expression.Value
			continue
		}
		parts.attrs = append(parts.attrs, attr)
	}
	return parts, nil
}

// hiddenAttributes filters attrs down to the ones outside the component's
// allow-list. Spread attributes count as hidden.
func (c *Config) hiddenAttributes(component string, attrs []*ast.Node) []*ast.Node {
	var hidden []*ast.Node
	for _, attr := range attrs {
		if attr.Kind != ast.KindAttribute || !c.attributeAllowed(component, attr.Name) {
			hidden = append(hidden, attr)
		}
	}
	return hidden
}

// allowedAttributes is the complement of hiddenAttributes.
func (c *Config) allowedAttributes(component string, attrs []*ast.Node) []*ast.Node {
	var allowed []*ast.Node
	for _, attr := range attrs {
		if attr.Kind == ast.KindAttribute && c.attributeAllowed(component, attr.Name) {
			allowed = append(allowed, attr)
		}
	}
	return allowed
}

// collectDefinitions walks a single message subtree and gathers, in document
// order, the mapping from designation or placeholder name to the hidden
// detail it stands for. The map is rebuilt fresh from the original subtree on
// every call and is never shared across messages.
//
// A designated element always contributes an entry, even with nothing
// hidden, so a translation that keeps the designation still resolves. An
// element hiding attributes without a designation, and any duplicated name,
// are input errors.
func (c *Config) collectDefinitions(msg *ast.Node) (map[string]definition, error) {
	defs := make(map[string]definition)
	var duplicates []string

	record := func(name string, def definition) {
		if _, seen := defs[name]; seen {
			if !slices.Contains(duplicates, name) {
				duplicates = append(duplicates, name)
			}
			return
		}
		defs[name] = def
	}

	var visit func(n *ast.Node) error
	visit = func(n *ast.Node) error {
		switch n.Kind {
		case ast.KindElement:
			parts, err := c.splitElement(n)
			if err != nil {
				return err
			}
			base, _ := splitName(n.Name)
			hidden := c.hiddenAttributes(base, parts.attrs)
			if len(hidden) > 0 && parts.designation == "" {
				return inputErrorf(n, "element <%s> has attributes not allowed for translation and needs a designation", n.Name)
			}
			if parts.designation != "" {
				if hidden == nil {
					hidden = []*ast.Node{}
				}
				record(parts.designation, definition{attributes: hidden})
			}
			for _, child := range n.Children {
				if err := visit(child); err != nil {
					return err
				}
			}
		case ast.KindContainer:
			if isNamedExpression(n.Expression) {
				record(printer.Print(n.Expression), definition{expression: n.Expression})
			}
		}
		return nil
	}
	if err := visit(msg); err != nil {
		return nil, err
	}

	if len(duplicates) > 0 {
		return nil, inputErrorf(msg, "duplicate designation or placeholder names: %s",
			strings.Join(duplicates, ", "))
	}
	return defs, nil
}
