package jsxlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zbyte64/jsxlate/internal/printer"
)

// reconstituted runs a raw translation through parse and reconstitute
// against the given original message.
func reconstituted(t *testing.T, original string, translation string) (string, error) {
	t.Helper()
	cfg := testConfig(t)
	msg := firstMessage(t, original)
	parsed, err := cfg.parseTranslation(msg, translation)
	require.NoError(t, err)
	merged, err := cfg.reconstitute(parsed, msg)
	if err != nil {
		return "", err
	}
	return printer.Print(merged), nil
}

func TestReconstitute_RestoresHiddenAttributesAndKeepsWrappers(t *testing.T) {
	out, err := reconstituted(t,
		`const m = <I18N><a:my-link href="example.com" target="_blank">Example</a:my-link></I18N>;`,
		`<i>Click me: <a:my-link href="example.fr">Example</a:my-link></i>`,
	)
	require.NoError(t, err)

	// href overridden by the translator, target restored from the original,
	// designation stripped, and the translator's <i> wrapper kept verbatim.
	assert.Equal(t, `<I18N><i>Click me: <a href="example.fr" target="_blank">Example</a></i></I18N>`, out)
}

func TestReconstitute_RestoresOriginalExpressionVerbatim(t *testing.T) {
	cfg := testConfig(t)
	msg := firstMessage(t, `const m = <I18N>Hello {user.name}!</I18N>;`)

	parsed, err := cfg.parseTranslation(msg, "Bonjour {user.name} !")
	require.NoError(t, err)
	merged, err := cfg.reconstitute(parsed, msg)
	require.NoError(t, err)

	assert.Equal(t, "<I18N>Bonjour {user.name} !</I18N>", printer.Print(merged))

	// Not a reprint of the placeholder: the exact original subtree.
	assert.Same(t, msg.Children[1].Expression, merged.Children[1].Expression)
}

func TestReconstitute_UnknownDesignation(t *testing.T) {
	_, err := reconstituted(t,
		`const m = <I18N><a:my-link href="/">x</a:my-link></I18N>;`,
		`<a:other href="/">x</a:other>`,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `designation "other" does not appear in the original message`)
}

func TestReconstitute_UnknownPlaceholder(t *testing.T) {
	_, err := reconstituted(t,
		`const m = <I18N>Hi {name}</I18N>;`,
		`Salut {nom}`,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholder {nom} does not appear")
}

func TestReconstitute_PlaceholderUsedAsDesignation(t *testing.T) {
	_, err := reconstituted(t,
		`const m = <I18N>Hi {name}</I18N>;`,
		`<a:name href="/">Salut</a:name>`,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `designation "name" does not appear`)
}

func TestReconstitute_DisallowedAttributeWithoutDesignation(t *testing.T) {
	_, err := reconstituted(t,
		`const m = <I18N>plain</I18N>;`,
		`<b class="loud">plain</b>`,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attribute not allowed")
}

func TestReconstitute_NonPlaceholderExpressionInTranslation(t *testing.T) {
	_, err := reconstituted(t,
		`const m = <I18N>Hi {name}</I18N>;`,
		`Salut {evil()}`,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-placeholder expression")
}

func TestReconstitute_TranslatorMayDropDesignatedElements(t *testing.T) {
	out, err := reconstituted(t,
		`const m = <I18N>See <a:docs href="/docs" rel="nofollow">docs</a:docs></I18N>;`,
		`Voir la documentation`,
	)
	require.NoError(t, err)
	assert.Equal(t, "<I18N>Voir la documentation</I18N>", out)
}
