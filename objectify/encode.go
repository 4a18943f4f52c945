package objectify

import (
	"github.com/heathj/htmlobj/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FromNode returns the record of node and its descendants. Only element,
// text and comment nodes can be encoded; any other node type anywhere in
// the tree fails the whole call with ErrUnsupportedNodeType.
func (c *Codec) FromNode(node *spec.Node) (*Record, error) {
	return c.fromNode(node, 1)
}

func (c *Codec) fromNode(node *spec.Node, depth int) (*Record, error) {
	if node == nil {
		return nil, errors.Wrap(ErrUnsupportedNodeType, "nil node")
	}
	if c.maxDepth > 0 && depth > c.maxDepth {
		return nil, errors.Wrapf(ErrMaxDepth, "limit %d", c.maxDepth)
	}

	switch node.NodeType {
	case spec.TextNode, spec.CommentNode:
		return &Record{
			NodeType: NodeType(node.NodeType),
			Data:     node.CharacterData.Data,
		}, nil
	case spec.ElementNode:
		rec := &Record{
			NodeType: ElementNode,
			NodeName: node.NodeName,
		}
		if v, ok := node.Element.Value(); ok {
			rec.Value = &v
		}
		if v, ok := node.Element.Checked(); ok {
			rec.Checked = &v
		}
		if v, ok := node.Element.Selected(); ok {
			rec.Selected = &v
		}

		if n := node.Attributes.Length(); n > 0 {
			rec.Attributes = make([]Attribute, 0, n)
			for _, attr := range node.Attributes.Attrs {
				rec.Attributes = append(rec.Attributes, Attribute{Name: attr.Name, Value: attr.Value})
			}
		}

		if len(node.ChildNodes) > 0 {
			rec.ChildNodes = make([]*Record, 0, len(node.ChildNodes))
			for _, child := range node.ChildNodes {
				cr, err := c.fromNode(child, depth+1)
				if err != nil {
					return nil, err
				}
				rec.ChildNodes = append(rec.ChildNodes, cr)
			}
		}
		return rec, nil
	}

	logrus.WithField("nodeType", node.NodeType).Debug("refusing to encode node")
	return nil, unsupportedNodeType(int(node.NodeType))
}
