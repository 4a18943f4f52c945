package parser

import (
	"strings"
	"testing"

	"github.com/heathj/htmlobj/parser/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) *spec.Node {
	t.Helper()
	doc := spec.NewHTMLDocumentNode()
	return doc.Document.CreateElement("div")
}

func TestParseHTMLFragment(t *testing.T) {
	ctx := newContext(t)
	nodes, err := ParseHTMLFragment(ctx, `a<b title="t" id="i">b</b><!--c-->`, true)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, spec.TextNode, nodes[0].NodeType)
	assert.Equal(t, "a", nodes[0].CharacterData.Data)

	b := nodes[1]
	assert.Equal(t, "b", b.NodeName)
	assert.Equal(t, spec.Htmlns, b.Element.NamespaceURI)
	assert.Equal(t, []string{"title", "id"}, b.Element.GetAttributeNames())
	assert.Same(t, ctx.OwnerDocument, b.OwnerDocument)
	assert.Same(t, ctx, b.ParentNode)

	assert.Equal(t, spec.CommentNode, nodes[2].NodeType)
	assert.Equal(t, "c", nodes[2].CharacterData.Data)

	// a second parse replaces the children of the context
	nodes, err = ParseHTMLFragment(ctx, "<i></i>", true)
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
	assert.Len(t, ctx.ChildNodes, 1)
}

func TestParseHTMLFragmentForeign(t *testing.T) {
	ctx := newContext(t)
	nodes, err := ParseHTMLFragment(ctx,
		`<svg xmlns:xlink="http://www.w3.org/1999/xlink" viewbox="0 0 1 1"><use xlink:href="#a"/><foreignObject><p>x</p></foreignObject></svg>`, true)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	svg := nodes[0]
	assert.Equal(t, spec.Svgns, svg.Element.NamespaceURI)
	require.Equal(t, 2, svg.Attributes.Length())
	xmlns := svg.Attributes.Item(0)
	assert.Equal(t, spec.Xmlnsns, xmlns.NamespaceURI)
	assert.Equal(t, "xmlns:xlink", xmlns.Name)
	assert.Equal(t, "viewBox", svg.Attributes.Item(1).Name)

	use := svg.ChildNodes[0]
	assert.Equal(t, "#a", use.Element.GetAttributeNS(spec.Xlinkns, "href"))

	fo := svg.ChildNodes[1]
	assert.Equal(t, "foreignObject", fo.NodeName)
	assert.Equal(t, spec.Htmlns, fo.ChildNodes[0].Element.NamespaceURI)
}

func TestParseHTMLFragmentNoContext(t *testing.T) {
	_, err := ParseHTMLFragment(nil, "<p>", true)
	assert.ErrorIs(t, err, ErrNoContext)

	doc := spec.NewHTMLDocumentNode()
	_, err = ParseHTMLFragment(doc, "<p>", true)
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestOuterHTML(t *testing.T) {
	for _, in := range []string{
		`<p class="a" id="b">text &amp; <b>bold</b></p>`,
		`<ul><li>1</li><li>2</li></ul>`,
		`<p>one<br>two<img src="a.png" alt="A"></p>`,
		`<input type="checkbox" checked="">`,
		`<p>it's "quoted"</p>`,
		`<a title="it's &quot;x&quot;">x</a>`,
		`<p>a&nbsp;b &lt; c &gt; d</p>`,
		`<pre>` + "\n" + `x</pre>`,
		`<pre>` + "\n\n" + `x</pre>`,
		`<pre>x</pre>`,
		`<textarea>` + "\n" + `a &lt;b&gt;</textarea>`,
		`<svg xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 1 1"><use xlink:href="#a"></use></svg>`,
		`<!--note-->`,
		`<script>a < b && c > "d"</script>`,
		`<style>p > b { content: "&"; }</style>`,
		`<noscript><b>x</b></noscript>`,
	} {
		ctx := newContext(t)
		nodes, err := ParseHTMLFragment(ctx, in, true)
		require.NoError(t, err)
		var out strings.Builder
		for _, n := range nodes {
			out.WriteString(OuterHTML(n))
		}
		assert.Equal(t, in, out.String())
		assert.Equal(t, in, InnerHTML(ctx))
	}
}

func TestLeadingNewlineKept(t *testing.T) {
	ctx := newContext(t)
	nodes, err := ParseHTMLFragment(ctx, "<pre>\nx</pre><textarea>\r\ny</textarea><pre>z</pre>", true)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "\nx", nodes[0].ChildNodes[0].CharacterData.Data)
	assert.Equal(t, "\ny", nodes[1].ChildNodes[0].CharacterData.Data)
	assert.Equal(t, "z", nodes[2].ChildNodes[0].CharacterData.Data)
}

func TestSerializeNoscriptScripting(t *testing.T) {
	doc := spec.NewHTMLDocumentNode()
	ns := doc.Document.CreateElement("noscript")
	ns.AppendChild(doc.Document.CreateTextNode("<b>"))
	wrapper := doc.Document.CreateElement("div")
	wrapper.AppendChild(ns)

	assert.Equal(t, "<noscript><b></noscript>", SerializeHTMLFragment(wrapper, true))
	assert.Equal(t, "<noscript>&lt;b&gt;</noscript>", SerializeHTMLFragment(wrapper, false))
}

func TestSerializeVoidSkipsChildren(t *testing.T) {
	doc := spec.NewHTMLDocumentNode()
	br := doc.Document.CreateElement("br")
	br.AppendChild(doc.Document.CreateTextNode("x"))
	assert.Equal(t, "<br>", OuterHTML(br))
}

func TestSerializeAttributeNames(t *testing.T) {
	doc := spec.NewHTMLDocumentNode()
	el := doc.Document.CreateElementNS(spec.Svgns, "svg")
	el.Element.SetAttributeNS(spec.Xmlnsns, "xmlns", string(spec.Svgns))
	el.Element.SetAttributeNS(spec.Xmlns, "xml:lang", "en")
	el.Element.SetAttributeNS(spec.Xlinkns, "xl:href", "#a")
	el.Element.SetAttributeNS("urn:x", "x:y", "1")
	el.Element.SetAttribute("data-v", "a\u00a0\"&<")

	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" xml:lang="en" xlink:href="#a" x:y="1" data-v="a&nbsp;&quot;&amp;<"></svg>`,
		OuterHTML(el))

	custom := doc.Document.CreateElementNS("urn:x", "x:widget")
	assert.Equal(t, "<x:widget></x:widget>", OuterHTML(custom))
}

func TestOuterHTMLFragment(t *testing.T) {
	doc := spec.NewHTMLDocumentNode()
	frag := doc.Document.CreateDocumentFragment()
	frag.AppendChild(doc.Document.CreateElement("a"))
	frag.AppendChild(doc.Document.CreateTextNode("x"))
	frag.AppendChild(doc.Document.CreateProcessingInstruction("php", "echo 1"))

	assert.Equal(t, "<a></a>x<?php echo 1>", OuterHTML(frag))
	assert.Equal(t, "", OuterHTML(doc.Document.CreateDocumentFragment()))
}

func TestOuterHTMLPropertiesNotReflected(t *testing.T) {
	doc := spec.NewHTMLDocumentNode()
	in := doc.Document.CreateElement("input")
	in.Element.SetValue("typed")
	in.Element.SetChecked(true)

	assert.Equal(t, "<input>", OuterHTML(in))
}

func TestQuerySelectorAll(t *testing.T) {
	doc, err := ParseHTMLDocument(strings.NewReader(
		`<body><div id="a"><div class="x">1</div></div><div class="x">2</div><p class="x">3</p></body>`))
	require.NoError(t, err)

	found, err := QuerySelectorAll(doc, "body > div")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].Element.GetAttribute("id"))
	assert.Equal(t, "2", found[1].ChildNodes[0].CharacterData.Data)

	found, err = QuerySelectorAll(doc, ".x")
	require.NoError(t, err)
	assert.Len(t, found, 3)

	first, err := QuerySelector(found[0].ParentNode, "div")
	require.NoError(t, err)
	assert.Same(t, found[0], first)

	none, err := QuerySelector(doc, "span")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = QuerySelectorAll(doc, "div[")
	assert.Error(t, err)
}

func TestParserDoctype(t *testing.T) {
	doc, err := NewParser(strings.NewReader(
		`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"><p>x`)).Start()
	require.NoError(t, err)
	require.NotNil(t, doc.Document.Doctype)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", doc.Document.Doctype.DocumentType.PublicID)
	assert.Equal(t, "html", doc.Document.DocumentElement().NodeName)

	assert.Equal(t, "<!DOCTYPE html><html><head></head><body><p>x</p></body></html>", OuterHTML(doc))
}
