package parser

import (
	"github.com/heathj/htmlobj/parser/spec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fromHTMLNode builds the spec.Node counterpart of h, owned by od. Nodes of a
// type the DOM has no counterpart for are returned as nil.
func fromHTMLNode(od *spec.Node, h *html.Node) *spec.Node {
	var n *spec.Node
	switch h.Type {
	case html.ElementNode:
		ns := spec.Htmlns
		if h.Namespace != "" {
			ns = spec.NamespaceForPrefix(h.Namespace)
		}
		n = spec.NewDOMElement(od, h.Data, ns)
		for _, a := range h.Attr {
			if a.Namespace != "" {
				n.Attributes.SetNamedItem(spec.NewAttr(spec.NamespaceForPrefix(a.Namespace), a.Namespace, a.Key, a.Val))
				continue
			}
			n.Attributes.SetNamedItem(spec.NewAttr("", "", a.Key, a.Val))
		}
	case html.TextNode, html.RawNode:
		return spec.NewTextNode(od, h.Data)
	case html.CommentNode:
		return spec.NewComment(h.Data, od)
	case html.DoctypeNode:
		var pub, sys string
		for _, a := range h.Attr {
			switch a.Key {
			case "public":
				pub = a.Val
			case "system":
				sys = a.Val
			}
		}
		n = spec.NewDocTypeNode(h.Data, pub, sys)
		n.OwnerDocument = od
		if od != nil && od.Document != nil {
			od.Document.Doctype = n
		}
		return n
	default:
		return nil
	}

	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := fromHTMLNode(od, c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

// toHTMLNode builds the x/net/html tree for n, for selector matching.
// Fragments and documents become document nodes. index, when non-nil,
// records which spec node each html node came from.
func toHTMLNode(n *spec.Node, index map[*html.Node]*spec.Node) *html.Node {
	h := &html.Node{}
	switch n.NodeType {
	case spec.ElementNode:
		h.Type = html.ElementNode
		h.Data = n.Element.LocalName
		if n.Element.NamespaceURI == spec.Htmlns || n.Element.NamespaceURI == "" {
			h.DataAtom = atom.Lookup([]byte(h.Data))
		} else {
			h.Namespace = n.Element.NamespaceURI.Prefix()
		}
		h.Attr = make([]html.Attribute, 0, n.Attributes.Length())
		for _, a := range n.Attributes.Attrs {
			if a.Prefix != "" && a.NamespaceURI != "" {
				h.Attr = append(h.Attr, html.Attribute{Namespace: a.Prefix, Key: a.LocalName, Val: a.Value})
				continue
			}
			h.Attr = append(h.Attr, html.Attribute{Key: a.LocalName, Val: a.Value})
		}
	case spec.TextNode:
		h.Type = html.TextNode
		h.Data = n.CharacterData.Data
	case spec.CommentNode:
		h.Type = html.CommentNode
		h.Data = n.CharacterData.Data
	case spec.ProcessingInstructionNode:
		// https://html.spec.whatwg.org/#serialising-html-fragments
		h.Type = html.RawNode
		h.Data = "<?" + n.CharacterData.Target + " " + n.CharacterData.Data + ">"
	case spec.DocumentTypeNode:
		h.Type = html.DoctypeNode
		h.Data = n.DocumentType.Name
		if n.DocumentType.PublicID != "" || n.DocumentType.SystemID != "" {
			h.Attr = []html.Attribute{
				{Key: "public", Val: n.DocumentType.PublicID},
				{Key: "system", Val: n.DocumentType.SystemID},
			}
		}
	default:
		h.Type = html.DocumentNode
	}
	if index != nil {
		index[h] = n
	}

	for _, c := range n.ChildNodes {
		h.AppendChild(toHTMLNode(c, index))
	}
	return h
}
