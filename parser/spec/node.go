package spec

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type NodeType uint16

// https://dom.spec.whatwg.org/#dom-node-nodetype
const (
	ElementNode               NodeType = 1
	AttrNode                  NodeType = 2
	TextNode                  NodeType = 3
	CDATASectionNode          NodeType = 4
	ProcessingInstructionNode NodeType = 7
	CommentNode               NodeType = 8
	DocumentNode              NodeType = 9
	DocumentTypeNode          NodeType = 10
	DocumentFragmentNode      NodeType = 11
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttrNode:
		return "attr"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata-section"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case DocumentFragmentNode:
		return "document-fragment"
	}
	return "unknown"
}

// https://dom.spec.whatwg.org/#dictdef-getrootnodeoptions
type GetRootNodeOptions struct {
	Composed bool
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        string
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*CharacterData
	*Document
	*DocumentType
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		CharacterData: NewCharacterData(data),
	}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		CharacterData: NewCharacterData(text),
	}
}

func NewProcessingInstructionNode(od *Node, target, data string) *Node {
	cd := NewCharacterData(data)
	cd.Target = target
	return &Node{
		NodeType:      ProcessingInstructionNode,
		NodeName:      target,
		OwnerDocument: od,
		CharacterData: cd,
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func NewDocumentFragment(od *Node) *Node {
	return &Node{
		NodeType:      DocumentFragmentNode,
		NodeName:      "#document-fragment",
		OwnerDocument: od,
	}
}

// NewDOMElement creates an element owned by od. The optional argument is the
// namespace prefix of the qualified name.
func NewDOMElement(od *Node, name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	qualifiedName := name
	if prefix != "" {
		qualifiedName = prefix + ":" + name
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      qualifiedName,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
			Attributes:   NewNamedNodeMap(nil),
		},
	}
	n.Attributes.AssociatedElement = n
	return n
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		if p := node.Element.NamespaceURI.Prefix(); p == "svg" || p == "math" {
			e += p + " "
		}
		e += node.Element.LocalName
		e += ">"
		if node.Attributes != nil && node.Attributes.Length() != 0 {
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, attr := range node.Attributes.Attrs {
				var ns string
				if attr.NamespaceURI != "" {
					ns = attr.NamespaceURI.Prefix() + " "
				}
				e += "\n" + spaces + ns + attr.LocalName + "=\"" + attr.Value + "\""
			}
		}
		return e
	case TextNode:
		return "\"" + node.CharacterData.Data + "\""
	case CommentNode:
		return "<!-- " + node.CharacterData.Data + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if len(node.DocumentType.PublicID) == 0 && len(node.DocumentType.SystemID) == 0 {
			return d + ">"
		}
		d += " \"" + node.DocumentType.PublicID + "\""
		d += " \"" + node.DocumentType.SystemID + "\""
		return d + ">"
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	case ProcessingInstructionNode:
		return "<?" + node.CharacterData.Target + " " + node.CharacterData.Data + ">"
	default:
		logrus.WithField("nodeType", node.NodeType).Debug("cannot serialize node")
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode && node.NodeType != DocumentFragmentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the subtree rooted at node in the html5lib tree test format.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}

// GetRootNode returns the topmost ancestor of n.
func (n *Node) GetRootNode(o GetRootNodeOptions) *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.spec.whatwg.org/#concept-node-clone
func (n *Node) CloneNode(deep bool) *Node {
	var copy *Node
	switch n.NodeType {
	case ElementNode:
		copy = NewDOMElement(n.OwnerDocument, n.Element.LocalName, n.Element.NamespaceURI, n.Element.Prefix)
		for _, attr := range n.Attributes.Attrs {
			a := *attr
			copy.Attributes.SetNamedItem(&a)
		}
		copy.Element.props = n.Element.props.clone()
	case TextNode:
		copy = NewTextNode(n.OwnerDocument, n.CharacterData.Data)
	case CommentNode:
		copy = NewComment(n.CharacterData.Data, n.OwnerDocument)
	case ProcessingInstructionNode:
		copy = NewProcessingInstructionNode(n.OwnerDocument, n.CharacterData.Target, n.CharacterData.Data)
	case DocumentTypeNode:
		copy = NewDocTypeNode(n.DocumentType.Name, n.DocumentType.PublicID, n.DocumentType.SystemID)
		copy.OwnerDocument = n.OwnerDocument
	case DocumentFragmentNode:
		copy = NewDocumentFragment(n.OwnerDocument)
	case DocumentNode:
		copy = NewHTMLDocumentNode()
		copy.Document.ContentType = n.Document.ContentType
		copy.Document.Mode = n.Document.Mode
	default:
		copy = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			c := child.CloneNode(true)
			if copy.NodeType == DocumentNode {
				c.adopt(copy)
			}
			copy.AppendChild(c)
		}
	}

	return copy
}

// adopt moves n and its descendants into the document od.
func (n *Node) adopt(od *Node) {
	if n.NodeType == DocumentNode {
		return
	}
	n.OwnerDocument = od
	for _, child := range n.ChildNodes {
		child.adopt(od)
	}
}

// https://dom.spec.whatwg.org/#dom-node-contains
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// InsertBefore inserts on into n's children in front of child. A nil child
// appends.
// https://dom.spec.whatwg.org/#dom-node-insertbefore
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	if on.NodeType == DocumentFragmentNode {
		for _, c := range on.takeChildren() {
			n.InsertBefore(c, child)
		}
		return on
	}
	i := n.ChildNodes.Contains(child)
	if i < 0 {
		return nil
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	}
	child.PreviousSibling = on
	if i == 0 {
		n.FirstChild = on
	}
	return on
}

// AppendChild appends on to the children of n. Appending a document
// fragment moves the fragment's children instead.
// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if on.NodeType == DocumentFragmentNode {
		for _, c := range on.takeChildren() {
			n.AppendChild(c)
		}
		return on
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// RemoveChild detaches child from n. It returns nil if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	}
	if len(n.ChildNodes) == 0 {
		n.FirstChild, n.LastChild = nil, nil
	} else {
		n.FirstChild = n.ChildNodes[0]
		n.LastChild = n.ChildNodes[len(n.ChildNodes)-1]
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil
	return node
}

func (n *Node) takeChildren() NodeList {
	children := make(NodeList, len(n.ChildNodes))
	copy(children, n.ChildNodes)
	for _, c := range children {
		n.RemoveChild(c)
	}
	return children
}
