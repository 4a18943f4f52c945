package objectify

import (
	"strings"

	"github.com/heathj/htmlobj/parser"
	"github.com/heathj/htmlobj/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ToNode builds the node described by rec, owned by doc. A nil doc, or a
// node that is neither a document nor owned by one, gets a fresh document.
//
// A fragment record becomes a document fragment holding the decoded
// children. An element record named "svg" is created in the SVG namespace,
// and so is every element below it.
func (c *Codec) ToNode(rec *Record, doc *spec.Node) (*spec.Node, error) {
	if doc != nil && doc.NodeType != spec.DocumentNode {
		doc = doc.OwnerDocument
	}
	if doc == nil || doc.Document == nil {
		doc = spec.NewHTMLDocumentNode()
	}
	return c.toNode(rec, doc, spec.Htmlns, 1)
}

// ToHTML decodes rec into a fresh document and serializes the result.
// Fragment records serialize to the markup of their children.
func (c *Codec) ToHTML(rec *Record) (string, error) {
	node, err := c.ToNode(rec, nil)
	if err != nil {
		return "", err
	}
	return parser.OuterHTML(node), nil
}

// toNode decodes rec. ns is the namespace elements are created in unless
// rec switches it.
func (c *Codec) toNode(rec *Record, doc *spec.Node, ns spec.Namespace, depth int) (*spec.Node, error) {
	if rec == nil {
		return nil, errors.Wrap(ErrUnsupportedNodeType, "nil record")
	}
	if c.maxDepth > 0 && depth > c.maxDepth {
		return nil, errors.Wrapf(ErrMaxDepth, "limit %d", c.maxDepth)
	}

	switch rec.NodeType {
	case FragmentNode:
		frag := doc.Document.CreateDocumentFragment()
		for _, child := range rec.ChildNodes {
			n, err := c.toNode(child, doc, spec.Htmlns, depth+1)
			if err != nil {
				return nil, err
			}
			frag.AppendChild(n)
		}
		return frag, nil
	case TextNode:
		return doc.Document.CreateTextNode(rec.Data), nil
	case CommentNode:
		return doc.Document.CreateComment(rec.Data), nil
	case ElementNode:
		var node *spec.Node
		if rec.NodeName == "svg" {
			logrus.WithField("depth", depth).Debug("switching to svg namespace")
			ns = spec.Svgns
		}
		if ns == spec.Svgns {
			node = doc.Document.CreateElementNS(spec.Svgns, rec.NodeName)
		} else {
			node = doc.Document.CreateElement(rec.NodeName)
		}

		if rec.Value != nil {
			node.Element.SetValue(*rec.Value)
		}
		if rec.Checked != nil {
			node.Element.SetChecked(*rec.Checked)
		}
		if rec.Selected != nil {
			node.Element.SetSelected(*rec.Selected)
		}

		for _, attr := range rec.Attributes {
			if strings.HasPrefix(attr.Name, "xmlns:") {
				node.Element.SetAttributeNS(spec.Xmlnsns, attr.Name, attr.Value)
			} else {
				node.Element.SetAttribute(attr.Name, attr.Value)
			}
		}

		for _, child := range rec.ChildNodes {
			n, err := c.toNode(child, node.OwnerDocument, ns, depth+1)
			if err != nil {
				return nil, err
			}
			node.AppendChild(n)
		}
		return node, nil
	}

	logrus.WithField("nodeType", rec.NodeType).Debug("refusing to decode record")
	return nil, unsupportedNodeType(int(rec.NodeType))
}
