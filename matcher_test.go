package jsxlate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zbyte64/jsxlate/internal/ast"
)

func ident(name string) *ast.Node {
	return &ast.Node{Kind: ast.KindIdentifier, Name: name}
}

func member(object *ast.Node, property string) *ast.Node {
	return &ast.Node{Kind: ast.KindMember, Object: object, Property: ident(property)}
}

func TestMatches_LiteralNestedAndPredicateFields(t *testing.T) {
	call := &ast.Node{
		Kind:      ast.KindCall,
		Callee:    ident("i18n"),
		Arguments: []*ast.Node{{Kind: ast.KindLiteral, Value: "hi"}},
	}

	assert.True(t, matches(call, pattern{"kind": ast.KindCall}))
	assert.True(t, matches(call, pattern{"callee": pattern{"name": "i18n"}}))
	assert.True(t, matches(call, pattern{"callee": predicate(isIdentifier)}))

	assert.False(t, matches(call, pattern{"kind": ast.KindElement}))
	assert.False(t, matches(call, pattern{"callee": pattern{"name": "gettext"}}))
	assert.False(t, matches(nil, pattern{"kind": ast.KindCall}))

	// A field no node has never matches.
	assert.False(t, matches(call, pattern{"bogus": "x"}))
}

func TestNamedExpressionForms(t *testing.T) {
	assert.True(t, isNamedExpression(ident("name")))
	assert.True(t, isNamedExpression(member(ident("user"), "name")))
	assert.True(t, isNamedExpression(member(member(ident("a"), "b"), "c")))

	assert.False(t, isNamedExpression(&ast.Node{Kind: ast.KindLiteral, Value: "name"}))
	assert.False(t, isNamedExpression(&ast.Node{Kind: ast.KindRaw, Segments: []string{"f()"}}))
	// A chain rooted in something other than an identifier is not named.
	assert.False(t, isNamedExpression(member(&ast.Node{Kind: ast.KindRaw, Segments: []string{"f()"}}, "x")))
}

func TestMarkerPatterns(t *testing.T) {
	cfg := testConfig(t)

	stringMarker := &ast.Node{Kind: ast.KindCall, Callee: ident("i18n")}
	assert.True(t, cfg.isStringMarker(stringMarker))
	assert.True(t, cfg.isMarker(stringMarker))
	assert.False(t, cfg.isStringMarker(&ast.Node{Kind: ast.KindCall, Callee: ident("fmt")}))

	elementMarker := &ast.Node{Kind: ast.KindElement, Name: "I18N"}
	assert.True(t, cfg.isElementMarker(elementMarker))
	assert.True(t, cfg.isMarker(elementMarker))

	// A self-closing marker element wraps nothing and is not a message.
	assert.False(t, cfg.isElementMarker(&ast.Node{Kind: ast.KindElement, Name: "I18N", SelfClosing: true}))
	assert.False(t, cfg.isElementMarker(&ast.Node{Kind: ast.KindElement, Name: "div"}))
}
