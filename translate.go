package jsxlate

import (
	"slices"
	"strings"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/jsparse"
	"github.com/zbyte64/jsxlate/internal/printer"
)

// translateDocument rewrites every message in the document against the
// translations table.
//
// Keypaths are processed in reverse document order: deepest and latest
// messages first. Rewriting a message then never invalidates the keypath of
// a not-yet-processed one, because no rewrite can relocate or reindex an
// ancestor's still-pending sibling. Each iteration re-fetches its node from
// the current, partially rewritten document, so an outer message containing
// an already-translated inner message sees the updated inner content. This
// ordering is a correctness requirement, not an optimization.
func (c *Config) translateDocument(doc *ast.Node, translations map[string]string) (*ast.Node, error) {
	keypaths, err := c.findMessageKeypaths(doc)
	if err != nil {
		return nil, err
	}
	for i := len(keypaths) - 1; i >= 0; i-- {
		node := ast.Get(doc, keypaths[i])
		replacement, raw, err := c.translateMessage(node, translations)
		if err != nil {
			return nil, annotate(err, node, raw)
		}
		doc = ast.Set(doc, keypaths[i], replacement)
	}
	return doc, nil
}

// translateMessage runs one message through sanitize, lookup, parse, and
// reconstitute. It returns the raw translator text alongside any error so
// the caller can attach it as context.
func (c *Config) translateMessage(msg *ast.Node, translations map[string]string) (*ast.Node, string, error) {
	sanitized, err := c.sanitizeMessage(msg)
	if err != nil {
		return nil, "", err
	}
	key := c.messageKey(sanitized)

	text, ok := translations[key]
	if !ok {
		return nil, "", inputErrorf(msg, "missing translation for message: %q", key)
	}

	parsed, err := c.parseTranslation(msg, text)
	if err != nil {
		return nil, text, err
	}
	if err := c.checkTranslationNames(parsed); err != nil {
		return nil, text, err
	}

	replacement, err := c.reconstitute(parsed, msg)
	return replacement, text, err
}

// parseTranslation wraps the raw translator text so the external parser
// accepts it: quoted as a string literal for a string marker, wrapped in the
// reserved marker tags for an element marker. It then unwraps the subtree of
// interest from the parse.
func (c *Config) parseTranslation(msg *ast.Node, text string) (*ast.Node, error) {
	var wrapped string
	var want func(*ast.Node) bool
	if c.isStringMarker(msg) {
		wrapped = jsparse.Quote(text)
		want = isStringLiteral
	} else {
		wrapped = "<" + c.ElementMarker + ">" + text + "</" + c.ElementMarker + ">"
		want = c.isElementMarker
	}

	parsed, err := jsparse.Parse(wrapped, c.markers())
	if err != nil {
		return nil, inputErrorf(msg, "could not parse translation: %v", err)
	}
	for _, kp := range ast.Keypaths(parsed) {
		if n := ast.Get(parsed, kp); want(n) {
			return n, nil
		}
	}
	return nil, inputErrorf(msg, "translation did not parse to the expected message shape")
}

// checkTranslationNames rejects a parsed translation with duplicate
// designation or placeholder names. Unlike definition collection over an
// original message, it imposes no other requirement: designation resolution
// and attribute checks happen during reconstitution.
func (c *Config) checkTranslationNames(translated *ast.Node) error {
	seen := make(map[string]bool)
	var duplicates []string

	record := func(name string) {
		if seen[name] && !slices.Contains(duplicates, name) {
			duplicates = append(duplicates, name)
		}
		seen[name] = true
	}

	var visit func(n *ast.Node) error
	visit = func(n *ast.Node) error {
		switch n.Kind {
		case ast.KindElement:
			parts, err := c.splitElement(n)
			if err != nil {
				return err
			}
			if parts.designation != "" {
				record(parts.designation)
			}
			for _, child := range n.Children {
				if err := visit(child); err != nil {
					return err
				}
			}
		case ast.KindContainer:
			if isNamedExpression(n.Expression) {
				record(printer.Print(n.Expression))
			}
		}
		return nil
	}
	if err := visit(translated); err != nil {
		return err
	}

	if len(duplicates) > 0 {
		return inputErrorf(translated, "translation repeats designation or placeholder names: %s",
			strings.Join(duplicates, ", "))
	}
	return nil
}
