package parser

import (
	"github.com/andybalholm/cascadia"
	"github.com/heathj/htmlobj/parser/spec"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// QuerySelectorAll returns the elements below root matching the CSS
// selector, in document order.
// https://dom.spec.whatwg.org/#dom-parentnode-queryselectorall
func QuerySelectorAll(root *spec.Node, selector string) ([]*spec.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid selector %q", selector)
	}

	index := make(map[*html.Node]*spec.Node)
	h := toHTMLNode(root, index)
	var found []*spec.Node
	for _, m := range sel.MatchAll(h) {
		if m == h {
			continue
		}
		found = append(found, index[m])
	}
	return found, nil
}

// QuerySelector returns the first match of selector below root, or nil.
func QuerySelector(root *spec.Node, selector string) (*spec.Node, error) {
	found, err := QuerySelectorAll(root, selector)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}
