package objectify

import (
	"github.com/heathj/htmlobj/parser"
	"github.com/heathj/htmlobj/parser/spec"
	"github.com/sirupsen/logrus"
)

// FromHTML parses the markup fragment html inside a div of a fresh
// document and encodes the resulting top-level nodes. A single top-level
// node is returned as its own record; zero or several are wrapped in a
// fragment record. Parser errors are returned unmodified.
func (c *Codec) FromHTML(html string) (*Record, error) {
	doc := spec.NewHTMLDocumentNode()
	wrapper := doc.Document.CreateElement("div")
	nodes, err := parser.ParseHTMLFragment(wrapper, html, true)
	if err != nil {
		return nil, err
	}

	var children []*Record
	for _, n := range nodes {
		rec, err := c.fromNode(n, 1)
		if err != nil {
			return nil, err
		}
		children = append(children, rec)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	logrus.WithField("roots", len(children)).Debug("wrapping top-level nodes in a fragment record")
	return Fragment(children...), nil
}
