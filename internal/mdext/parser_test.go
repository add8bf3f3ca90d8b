package mdext

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ezerfernandes/snipmd/internal/snippet"
)

const sampleEnvelope = `<!-- begin snippet: js hide: null console: true babel: false babelPresetReact: null babelPresetTS: null -->

<!-- language: lang-js -->

    console.log("hi");

<!-- language: lang-css -->

    body { color: red; }

<!-- end snippet -->
`

const sampleDoc = "# Title\n\nSome prose.\n\n" + sampleEnvelope + "\nMore prose.\n"

func parseSnippets(t *testing.T, source []byte) []*Snippet {
	t.Helper()

	root := New().Parser().Parse(text.NewReader(source)).OwnerDocument()

	var found []*Snippet

	err := gast.Walk(root, func(node gast.Node, entering bool) (gast.WalkStatus, error) {
		if sn := asSnippet(node, entering); sn != nil {
			found = append(found, sn)
		}

		return gast.WalkContinue, nil
	})
	require.NoError(t, err)

	return found
}

func TestParserRecognizesEnvelope(t *testing.T) {
	snippets := parseSnippets(t, []byte(sampleDoc))

	require.Len(t, snippets, 1)
	sn := snippets[0]

	assert.Equal(t, snippet.True, sn.Flags.Console)
	assert.Equal(t, snippet.False, sn.Flags.Babel)
	assert.Equal(t, snippet.Null, sn.Flags.Hide)

	assert.Equal(t, 4, sn.LineStart)
	assert.Equal(t, 14, sn.LineEnd)

	var langs []*SnippetLang
	for c := sn.FirstChild(); c != nil; c = c.NextSibling() {
		langs = append(langs, c.(*SnippetLang))
	}

	require.Len(t, langs, 2)
	assert.Equal(t, snippet.JS, langs[0].Language)
	assert.Equal(t, `console.log("hi");`, langs[0].Content)
	assert.Equal(t, snippet.CSS, langs[1].Language)
	assert.Equal(t, `body { color: red; }`, langs[1].Content)
}

func TestParserByteBoundsCoverEnvelope(t *testing.T) {
	source := []byte(sampleDoc)

	snippets := parseSnippets(t, source)

	require.Len(t, snippets, 1)
	sn := snippets[0]

	assert.Equal(t, sampleEnvelope, string(source[sn.ByteStart:sn.ByteStop]))
}

func TestParserLeavesInvalidEnvelopeToHTMLBlock(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate language",
			doc:  "<!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n<!-- language: lang-js -->\n\n    a();\n\n<!-- language: lang-js -->\n\n    b();\n\n<!-- end snippet -->\n",
		},
		{
			name: "missing end marker",
			doc:  "<!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n<!-- language: lang-js -->\n\n    a();\n",
		},
		{
			name: "plain html comment",
			doc:  "<!-- not a snippet -->\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, parseSnippets(t, []byte(tt.doc)))
		})
	}
}

func TestParserIgnoresIndentedEnvelope(t *testing.T) {
	doc := "    <!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n    <!-- end snippet -->\n"

	assert.Empty(t, parseSnippets(t, []byte(doc)))
}

func TestParserIgnoresQuotedEnvelope(t *testing.T) {
	var quoted bytes.Buffer
	for _, line := range bytes.Split([]byte(sampleEnvelope), []byte("\n")) {
		quoted.WriteString("> ")
		quoted.Write(line)
		quoted.WriteString("\n")
	}

	assert.Empty(t, parseSnippets(t, quoted.Bytes()))
}

func TestParserEmptyEnvelope(t *testing.T) {
	doc := "<!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n<!-- end snippet -->\n"

	snippets := parseSnippets(t, []byte(doc))

	require.Len(t, snippets, 1)
	assert.Nil(t, snippets[0].FirstChild())
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer

	err := New().Convert([]byte(sampleDoc), &buf)
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, `<div class="snippet" data-hide="null" data-console="true" data-babel="false" data-babel-preset-react="null" data-babel-preset-ts="null">`)
	assert.Contains(t, out, `<pre class="lang-js prettyprint-override"><code>console.log(&quot;hi&quot;);`)
	assert.Contains(t, out, `<pre class="lang-css prettyprint-override"><code>body { color: red; }`)
	assert.Contains(t, out, "</div>")
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "More prose.")
}

func TestRenderEscapesContent(t *testing.T) {
	doc := "<!-- begin snippet: js hide: null console: null babel: null babelPresetReact: null babelPresetTS: null -->\n\n<!-- language: lang-html -->\n\n    <script>alert(1)</script>\n\n<!-- end snippet -->\n"

	var buf bytes.Buffer

	err := New().Convert([]byte(doc), &buf)
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>alert(1)</script>")
}
