package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnippetNodeNormalizesFlags(t *testing.T) {
	node := NewSnippetNode(Flags{Hide: True, Babel: "yes"})

	assert.Equal(t, True, node.Flags.Hide)
	assert.Equal(t, Null, node.Flags.Console)
	assert.Equal(t, Null, node.Flags.Babel)
	assert.Equal(t, Null, node.Flags.BabelPresetReact)
	assert.Equal(t, Null, node.Flags.BabelPresetTS)
}

func TestNewLangNodeValidatesLanguage(t *testing.T) {
	for _, lang := range []Language{JS, CSS, HTML} {
		_, err := NewLangNode(lang, "body")
		assert.NoError(t, err)
	}

	_, err := NewLangNode("ruby", "body")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestAddChildRejectsDuplicateLanguage(t *testing.T) {
	node := NewSnippetNode(Flags{})

	first, err := NewLangNode(CSS, "a {}")
	require.NoError(t, err)
	require.NoError(t, node.AddChild(first))

	second, err := NewLangNode(CSS, "b {}")
	require.NoError(t, err)

	assert.ErrorIs(t, node.AddChild(second), ErrDuplicateLanguage)
	assert.Len(t, node.Children(), 1)
}

func TestChildLookup(t *testing.T) {
	node := parseEnvelope(t, sampleEnvelope)

	js := node.Child(JS)
	require.NotNil(t, js)
	assert.Equal(t, `console.log("hi");`, js.Content)

	assert.Nil(t, node.Child(HTML))
}

func TestChildrenPreserveDocumentOrder(t *testing.T) {
	text := beginAllNull + "\n\n<!-- language: lang-css -->\n\n    a {}\n\n<!-- language: lang-js -->\n\n    f();\n\n<!-- end snippet -->\n"

	node := parseEnvelope(t, text)

	require.Len(t, node.Children(), 2)
	assert.Equal(t, CSS, node.Children()[0].Language)
	assert.Equal(t, JS, node.Children()[1].Language)
}
