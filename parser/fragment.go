package parser

import (
	"strings"

	"github.com/heathj/htmlobj/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoContext is returned when fragment parsing is asked to run without an
// element context.
var ErrNoContext = errors.New("fragment parsing needs an element context")

// ParseHTMLFragment runs the HTML fragment parsing algorithm for input in
// the context of the element context, the same way assigning innerHTML
// does. The resulting nodes replace the children of context and are
// returned in document order.
// https://html.spec.whatwg.org/#parsing-html-fragments
func ParseHTMLFragment(context *spec.Node, input string, scriptingEnabled bool) ([]*spec.Node, error) {
	if context == nil || context.NodeType != spec.ElementNode {
		return nil, ErrNoContext
	}
	hctx := &html.Node{
		Type: html.ElementNode,
		Data: context.Element.LocalName,
	}
	if ns := context.Element.NamespaceURI; ns == spec.Htmlns || ns == "" {
		hctx.DataAtom = atom.Lookup([]byte(hctx.Data))
	} else {
		hctx.Namespace = ns.Prefix()
	}

	src, err := keepLeadingNewlines(strings.NewReader(input))
	if err != nil {
		return nil, err
	}
	nodes, err := html.ParseFragmentWithOptions(src, hctx,
		html.ParseOptionEnableScripting(scriptingEnabled))
	if err != nil {
		return nil, err
	}

	for len(context.ChildNodes) > 0 {
		context.RemoveChild(context.ChildNodes[0])
	}
	od := context.OwnerDocument
	for _, h := range nodes {
		if n := fromHTMLNode(od, h); n != nil {
			context.AppendChild(n)
		}
	}
	logrus.WithField("context", context.NodeName).
		Debugf("parsed fragment into %d nodes", len(context.ChildNodes))
	return context.ChildNodes, nil
}

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// https://html.spec.whatwg.org/#void-elements
func isVoid(name string) bool {
	switch name {
	case "area", "base", "basefont", "bgsound", "br", "col", "embed", "frame",
		"hr", "img", "input", "keygen", "link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}

func tagName(n *spec.Node) string {
	switch n.Element.NamespaceURI {
	case spec.Htmlns, spec.Svgns, spec.Mathmlns:
		return n.Element.LocalName
	}
	return n.NodeName
}

// https://html.spec.whatwg.org/#attribute's-serialized-name
func attrName(a *spec.Attr) string {
	switch a.NamespaceURI {
	case "":
		return a.LocalName
	case spec.Xmlns:
		return "xml:" + a.LocalName
	case spec.Xmlnsns:
		if a.LocalName == "xmlns" {
			return "xmlns"
		}
		return "xmlns:" + a.LocalName
	case spec.Xlinkns:
		return "xlink:" + a.LocalName
	}
	return a.Name
}

// literalText reports whether text children of parent are written without
// escaping.
func literalText(parent *spec.Node, scriptingEnabled bool) bool {
	if parent == nil || parent.NodeType != spec.ElementNode {
		return false
	}
	switch parent.Element.LocalName {
	case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext":
		return true
	case "noscript":
		return scriptingEnabled
	}
	return false
}

func serializeNode(b *strings.Builder, n *spec.Node, scriptingEnabled bool) {
	switch n.NodeType {
	case spec.ElementNode:
		name := tagName(n)
		b.WriteString("<" + name)
		for _, a := range n.Attributes.Attrs {
			b.WriteString(" " + attrName(a) + "=\"" + escapeString(a.Value, true) + "\"")
		}
		b.WriteString(">")
		if isVoid(n.Element.LocalName) {
			return
		}
		serializeChildren(b, n, scriptingEnabled)
		b.WriteString("</" + name + ">")
	case spec.TextNode:
		if literalText(n.ParentNode, scriptingEnabled) {
			b.WriteString(n.CharacterData.Data)
		} else {
			b.WriteString(escapeString(n.CharacterData.Data, false))
		}
	case spec.CommentNode:
		b.WriteString("<!--" + n.CharacterData.Data + "-->")
	case spec.ProcessingInstructionNode:
		b.WriteString("<?" + n.CharacterData.Target + " " + n.CharacterData.Data + ">")
	case spec.DocumentTypeNode:
		b.WriteString("<!DOCTYPE " + n.DocumentType.Name + ">")
	case spec.DocumentNode, spec.DocumentFragmentNode:
		serializeChildren(b, n, scriptingEnabled)
	default:
		logrus.WithField("nodeType", n.NodeType).Debug("cannot serialize node")
	}
}

func serializeChildren(b *strings.Builder, n *spec.Node, scriptingEnabled bool) {
	for _, child := range n.ChildNodes {
		serializeNode(b, child, scriptingEnabled)
	}
}

// SerializeHTMLFragment returns the markup of the children of fragment.
// Text below noscript is written literally when scripting is enabled. The
// children of void elements are never written.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeHTMLFragment(fragment *spec.Node, scriptingEnabled bool) string {
	var b strings.Builder
	serializeChildren(&b, fragment, scriptingEnabled)
	return b.String()
}

// InnerHTML serializes the children of n with scripting enabled.
func InnerHTML(n *spec.Node) string {
	return SerializeHTMLFragment(n, true)
}

// OuterHTML serializes n together with its descendants. Fragments and
// documents have no markup of their own and serialize their children.
func OuterHTML(n *spec.Node) string {
	var b strings.Builder
	serializeNode(&b, n, true)
	return b.String()
}
