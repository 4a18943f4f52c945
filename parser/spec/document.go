package spec

import (
	"strings"
)

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL, ContentType string
	Doctype          *Node

	Mode string
	Type string

	node *Node
}

// NewHTMLDocumentNode creates an empty HTML document. Every call returns an
// independent document.
func NewHTMLDocumentNode() *Node {
	d := &Document{
		URL:         "about:blank",
		ContentType: "text/html",
		Mode:        "no-quirks",
		Type:        "html",
	}
	d.node = &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: d,
	}
	return d.node
}

// DocumentElement returns the first element child of the document.
func (d *Document) DocumentElement() *Node {
	for _, c := range d.node.ChildNodes {
		if c.NodeType == ElementNode {
			return c
		}
	}
	return nil
}

// CreateElement creates an HTML element. In HTML documents the name is
// lowercased.
// https://dom.spec.whatwg.org/#dom-document-createelement
func (d *Document) CreateElement(localName string) *Node {
	if d.Type == "html" {
		localName = strings.ToLower(localName)
	}
	return NewDOMElement(d.node, localName, Htmlns)
}

// CreateElementNS creates an element in namespace. A prefix in
// qualifiedName is kept on the element.
// https://dom.spec.whatwg.org/#dom-document-createelementns
func (d *Document) CreateElementNS(namespace Namespace, qualifiedName string) *Node {
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		return NewDOMElement(d.node, qualifiedName[i+1:], namespace, qualifiedName[:i])
	}
	return NewDOMElement(d.node, qualifiedName, namespace)
}

func (d *Document) CreateDocumentFragment() *Node {
	return NewDocumentFragment(d.node)
}

func (d *Document) CreateTextNode(data string) *Node {
	return NewTextNode(d.node, data)
}

func (d *Document) CreateComment(data string) *Node {
	return NewComment(data, d.node)
}

func (d *Document) CreateProcessingInstruction(target, data string) *Node {
	return NewProcessingInstructionNode(d.node, target, data)
}

// ImportNode returns a copy of node owned by this document.
// https://dom.spec.whatwg.org/#dom-document-importnode
func (d *Document) ImportNode(node *Node, deep bool) *Node {
	c := node.CloneNode(deep)
	c.adopt(d.node)
	return c
}
