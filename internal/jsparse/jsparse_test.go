package jsparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbyte64/jsxlate/internal/ast"
	"github.com/zbyte64/jsxlate/internal/printer"
)

var testMarkers = Markers{Function: "i18n", Element: "I18N"}

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	doc, err := Parse(src, testMarkers)
	require.NoError(t, err)
	return doc
}

func TestParse_RoundTripsUnmarkedSource(t *testing.T) {
	sources := []string{
		"const x = foo.bar(1, 2);\n",
		"function f(a, b) {\n  return a + b; // sum\n}\n",
		"const s = 'it\\'s';\nconst t = \"two\\nlines\";\n",
		"const el = <div className={cls}>hi there</div>;\n",
		"export default function App() {\n  return <ul>{items.map(i => <li key={i}>{i}</li>)}</ul>;\n}\n",
	}
	for _, src := range sources {
		doc := parse(t, src)
		assert.Equal(t, src, printer.Print(doc), "source: %s", src)
	}
}

func TestParse_RejectsSyntaxErrors(t *testing.T) {
	_, err := Parse("const x = ;", testMarkers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestParse_ModelsMarkerCall(t *testing.T) {
	doc := parse(t, `const greeting = i18n("Hello, world!");`)

	call := findKind(t, doc, ast.KindCall)
	require.Equal(t, ast.KindIdentifier, call.Callee.Kind)
	assert.Equal(t, "i18n", call.Callee.Name)
	require.Len(t, call.Arguments, 1)
	assert.Equal(t, ast.KindLiteral, call.Arguments[0].Kind)
	assert.Equal(t, "Hello, world!", call.Arguments[0].Value)
	assert.Equal(t, `"Hello, world!"`, call.Arguments[0].Raw)
	assert.Equal(t, 1, call.Line)
}

func TestParse_NonMarkerCallStaysRaw(t *testing.T) {
	doc := parse(t, `const x = translate("nope");`)
	for _, kp := range ast.Keypaths(doc) {
		assert.NotEqual(t, ast.KindCall, ast.Get(doc, kp).Kind)
	}
}

func TestParse_ModelsMarkerElement(t *testing.T) {
	doc := parse(t, `const m = <I18N>Hello, <a:my-link href="example.com" target="_blank">Example</a:my-link>!</I18N>;`)

	marker := findKind(t, doc, ast.KindElement)
	assert.Equal(t, "I18N", marker.Name)
	assert.False(t, marker.SelfClosing)
	require.Len(t, marker.Children, 3)

	assert.Equal(t, ast.KindText, marker.Children[0].Kind)
	assert.Equal(t, "Hello, ", marker.Children[0].Value)

	link := marker.Children[1]
	require.Equal(t, ast.KindElement, link.Kind)
	assert.Equal(t, "a:my-link", link.Name)
	require.Len(t, link.Attributes, 2)
	assert.Equal(t, "href", link.Attributes[0].Name)
	assert.Equal(t, `"example.com"`, link.Attributes[0].Expression.Raw)
	assert.Equal(t, "target", link.Attributes[1].Name)

	assert.Equal(t, "!", marker.Children[2].Value)
}

func TestParse_ModelsContainerExpressions(t *testing.T) {
	doc := parse(t, `const m = <I18N>Hi {user.name} and {friend}{} but not {f()}</I18N>;`)

	marker := findKind(t, doc, ast.KindElement)
	var containers []*ast.Node
	for _, child := range marker.Children {
		if child.Kind == ast.KindContainer {
			containers = append(containers, child)
		}
	}
	require.Len(t, containers, 4)

	member := containers[0].Expression
	require.Equal(t, ast.KindMember, member.Kind)
	assert.Equal(t, "user", member.Object.Name)
	assert.Equal(t, "name", member.Property.Name)

	assert.Equal(t, ast.KindIdentifier, containers[1].Expression.Kind)
	assert.Equal(t, ast.KindEmpty, containers[2].Expression.Kind)

	// A call is not a named expression; it stays raw with its text intact.
	assert.Equal(t, ast.KindRaw, containers[3].Expression.Kind)
	assert.Equal(t, "f()", printer.Print(containers[3].Expression))
}

func TestParse_ComputedMemberStaysRaw(t *testing.T) {
	doc := parse(t, `const m = <I18N>{users[0].name}</I18N>;`)
	marker := findKind(t, doc, ast.KindElement)
	require.Len(t, marker.Children, 1)
	assert.Equal(t, ast.KindRaw, marker.Children[0].Expression.Kind)
}

func TestParse_OptionalChainStaysRaw(t *testing.T) {
	src := `const m = <I18N>Hi {user?.name}</I18N>;`
	doc := parse(t, src)

	marker := findKind(t, doc, ast.KindElement)
	container := marker.Children[len(marker.Children)-1]
	require.Equal(t, ast.KindContainer, container.Kind)
	assert.Equal(t, ast.KindRaw, container.Expression.Kind,
		"?. must never collapse into a plain member access")
	assert.Equal(t, "user?.name", printer.Print(container.Expression))
	assert.Equal(t, src, printer.Print(doc))
}

func TestParse_DottedAccessAcrossWhitespaceIsMember(t *testing.T) {
	doc := parse(t, "const m = <I18N>{user\n  .name}</I18N>;")
	marker := findKind(t, doc, ast.KindElement)
	container := marker.Children[len(marker.Children)-1]
	require.Equal(t, ast.KindContainer, container.Kind)
	assert.Equal(t, ast.KindMember, container.Expression.Kind)
}

func TestParse_PreservesWhitespaceInsideMarkers(t *testing.T) {
	src := "const m = <I18N>Hello, <b>big</b> world </I18N>;"
	doc := parse(t, src)
	assert.Equal(t, src, printer.Print(doc))
}

func TestParse_FindsMarkersNestedInPlainCode(t *testing.T) {
	doc := parse(t, `
function Greeting({ user }) {
  const label = cond ? i18n("Yes") : i18n("No");
  return <span title={i18n("Hover me")}>{label}</span>;
}
`)
	var calls int
	for _, kp := range ast.Keypaths(doc) {
		if ast.Get(doc, kp).Kind == ast.KindCall {
			calls++
		}
	}
	assert.Equal(t, 3, calls)
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{`"plain"`, "plain"},
		{`'single'`, "single"},
		{`"a\nb\tc"`, "a\nb\tc"},
		{`"quote: \""`, `quote: "`},
		{`'it\'s'`, "it's"},
		{`"\x41B"`, "AB"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\u00e9!"`, "é!"},
		{`"\q"`, "q"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeString(tt.token), "token %s", tt.token)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", `"plain"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{`quote " back \`, `"quote \" back \\"`},
		// JavaScript reads "\a" as the letter a; control characters must
		// escape to \u form, never a Go-only mnemonic.
		{"bell\a", `"bell\u0007"`},
		{"sep\u2028", `"sep\u2028"`},
		{"caféす\U0001F600", `"caféす` + "\U0001F600" + `"`},
	}
	for _, tt := range tests {
		got := Quote(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.in, decodeString(got), "input %q", tt.in)
	}
}

// findKind returns the first node of the wanted kind in pre-order.
func findKind(t *testing.T, root *ast.Node, kind ast.Kind) *ast.Node {
	t.Helper()
	for _, kp := range ast.Keypaths(root) {
		if n := ast.Get(root, kp); n.Kind == kind {
			return n
		}
	}
	t.Fatalf("no %s node found", kind)
	return nil
}
