package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypeCodes(t *testing.T) {
	assert.EqualValues(t, 1, ElementNode)
	assert.EqualValues(t, 3, TextNode)
	assert.EqualValues(t, 8, CommentNode)
	assert.EqualValues(t, 9, DocumentNode)
	assert.EqualValues(t, 11, DocumentFragmentNode)
	assert.Equal(t, "comment", CommentNode.String())
}

func TestCreateElement(t *testing.T) {
	doc := NewHTMLDocumentNode()
	div := doc.Document.CreateElement("DIV")
	assert.Equal(t, "div", div.NodeName)
	assert.Equal(t, "div", div.Element.LocalName)
	assert.Equal(t, Htmlns, div.Element.NamespaceURI)
	assert.Same(t, doc, div.OwnerDocument)

	svg := doc.Document.CreateElementNS(Svgns, "foreignObject")
	assert.Equal(t, "foreignObject", svg.NodeName)
	assert.Equal(t, Svgns, svg.Element.NamespaceURI)

	prefixed := doc.Document.CreateElementNS(Svgns, "svg:rect")
	assert.Equal(t, "svg:rect", prefixed.NodeName)
	assert.Equal(t, "svg", prefixed.Element.Prefix)
	assert.Equal(t, "rect", prefixed.Element.LocalName)
}

func TestAttributeOrder(t *testing.T) {
	doc := NewHTMLDocumentNode()
	el := doc.Document.CreateElement("a")
	el.Element.SetAttribute("href", "/1")
	el.Element.SetAttribute("Title", "t")
	el.Element.SetAttribute("class", "c")
	el.Element.SetAttribute("href", "/2")

	assert.Equal(t, []string{"href", "title", "class"}, el.Element.GetAttributeNames())
	assert.Equal(t, "/2", el.Element.GetAttribute("HREF"))
	assert.True(t, el.Element.HasAttribute("title"))

	el.Element.RemoveAttribute("title")
	assert.Equal(t, []string{"href", "class"}, el.Element.GetAttributeNames())
	assert.Nil(t, el.Attributes.Item(5))
}

func TestSetAttributeNS(t *testing.T) {
	doc := NewHTMLDocumentNode()
	svg := doc.Document.CreateElementNS(Svgns, "svg")
	svg.Element.SetAttributeNS(Xmlnsns, "xmlns:xlink", string(Xlinkns))
	svg.Element.SetAttributeNS(Xlinkns, "xlink:href", "#a")
	svg.Element.SetAttributeNS(Xlinkns, "xlink:href", "#b")

	require.Equal(t, 2, svg.Attributes.Length())
	a := svg.Attributes.GetNamedItemNS(Xlinkns, "href")
	require.NotNil(t, a)
	assert.Equal(t, "xlink:href", a.Name)
	assert.Equal(t, "#b", a.Value)
	assert.Same(t, svg, a.OwnerElement)
	assert.Equal(t, "xmlns", svg.Attributes.Item(0).Prefix)
}

func TestProperties(t *testing.T) {
	doc := NewHTMLDocumentNode()
	in := doc.Document.CreateElement("input")
	assert.False(t, in.Element.HasOwnProperty("checked"))
	_, ok := in.Element.Checked()
	assert.False(t, ok)

	in.Element.SetChecked(false)
	v, ok := in.Element.Checked()
	assert.True(t, ok)
	assert.False(t, v)
	assert.True(t, in.Element.HasOwnProperty("checked"))
	assert.False(t, in.Element.HasOwnProperty("value"))
	assert.False(t, in.Element.HasOwnProperty("nodeType"))
}

func TestAppendAndRemoveChild(t *testing.T) {
	doc := NewHTMLDocumentNode()
	ul := doc.Document.CreateElement("ul")
	a := ul.AppendChild(doc.Document.CreateElement("li"))
	b := ul.AppendChild(doc.Document.CreateElement("li"))
	c := ul.AppendChild(doc.Document.CreateElement("li"))

	assert.Same(t, a, ul.FirstChild)
	assert.Same(t, c, ul.LastChild)
	assert.Same(t, b, a.NextSibling)
	assert.Same(t, a, b.PreviousSibling)

	assert.Same(t, b, ul.RemoveChild(b))
	assert.Same(t, c, a.NextSibling)
	assert.Same(t, a, c.PreviousSibling)
	assert.Nil(t, b.ParentNode)
	assert.Nil(t, ul.RemoveChild(b))

	ul.InsertBefore(b, a)
	assert.Same(t, b, ul.FirstChild)
	assert.Equal(t, NodeList{b, a, c}, ul.ChildNodes)
	assert.True(t, ul.Contains(c))
	assert.Same(t, ul, c.GetRootNode(GetRootNodeOptions{}))
}

func TestAppendFragmentMovesChildren(t *testing.T) {
	doc := NewHTMLDocumentNode()
	frag := doc.Document.CreateDocumentFragment()
	frag.AppendChild(doc.Document.CreateTextNode("a"))
	frag.AppendChild(doc.Document.CreateComment("b"))

	p := doc.Document.CreateElement("p")
	p.AppendChild(frag)
	assert.Len(t, p.ChildNodes, 2)
	assert.False(t, frag.HasChildNodes())
	assert.Same(t, p, p.ChildNodes[1].ParentNode)
}

func TestCloneNode(t *testing.T) {
	doc := NewHTMLDocumentNode()
	sel := doc.Document.CreateElement("select")
	opt := sel.AppendChild(doc.Document.CreateElement("option"))
	opt.Element.SetAttribute("value", "1")
	opt.Element.SetSelected(true)
	opt.AppendChild(doc.Document.CreateTextNode("One"))

	shallow := sel.CloneNode(false)
	assert.False(t, shallow.HasChildNodes())

	deep := sel.CloneNode(true)
	require.Len(t, deep.ChildNodes, 1)
	copied := deep.ChildNodes[0]
	assert.NotSame(t, opt, copied)
	assert.Equal(t, "1", copied.Element.GetAttribute("value"))
	v, ok := copied.Element.Selected()
	assert.True(t, ok && v)

	opt.Element.SetSelected(false)
	v, _ = copied.Element.Selected()
	assert.True(t, v)

	other := NewHTMLDocumentNode()
	imported := other.Document.ImportNode(sel, true)
	assert.Same(t, other, imported.OwnerDocument)
	assert.Same(t, other, imported.ChildNodes[0].ChildNodes[0].OwnerDocument)
}

func TestNodeString(t *testing.T) {
	doc := NewHTMLDocumentNode()
	div := doc.AppendChild(doc.Document.CreateElement("div"))
	div.Element.SetAttribute("id", "x")
	svg := div.AppendChild(doc.Document.CreateElementNS(Svgns, "svg"))
	svg.Element.SetAttributeNS(Xlinkns, "xlink:href", "#a")
	div.AppendChild(doc.Document.CreateTextNode("hi"))
	div.AppendChild(doc.Document.CreateComment("c"))

	want := "#document\n" +
		"| <div>\n" +
		"|   id=\"x\"\n" +
		"|   <svg svg>\n" +
		"|     xlink href=\"#a\"\n" +
		"|   \"hi\"\n" +
		"|   <!-- c -->"
	assert.Equal(t, want, doc.String())
	assert.Same(t, div, doc.Document.DocumentElement())
}

func TestNamespacePrefixes(t *testing.T) {
	for _, ns := range []Namespace{Mathmlns, Svgns, Xlinkns, Xmlns, Xmlnsns} {
		assert.Equal(t, ns, NamespaceForPrefix(ns.Prefix()))
	}
	assert.Equal(t, "", Htmlns.Prefix())
	assert.Equal(t, Namespace(""), NamespaceForPrefix(""))
}
