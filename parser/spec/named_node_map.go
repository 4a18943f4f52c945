package spec

import (
	"strings"
)

func NewNamedNodeMap(oe *Node, attrs ...*Attr) *NamedNodeMap {
	m := &NamedNodeMap{AssociatedElement: oe}
	for _, a := range attrs {
		m.SetNamedItem(a)
	}
	return m
}

// NamedNodeMap keeps an element's attributes in the order they were set.
// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             []*Attr
	AssociatedElement *Node
}

func (n *NamedNodeMap) Length() int {
	if n == nil {
		return 0
	}
	return len(n.Attrs)
}

func (n *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= n.Length() {
		return nil
	}
	return n.Attrs[i]
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	return n.getAttributeByName(qn)
}

// https://dom.spec.whatwg.org/#concept-element-attributes-get-by-name
func (n *NamedNodeMap) getAttributeByName(qn string) *Attr {
	if n.AssociatedElement != nil &&
		n.AssociatedElement.OwnerDocument != nil &&
		n.AssociatedElement.Element.NamespaceURI == Htmlns &&
		n.AssociatedElement.OwnerDocument.Document != nil &&
		n.AssociatedElement.OwnerDocument.Document.Type == "html" {
		qn = strings.ToLower(qn)
	}

	for _, a := range n.Attrs {
		if a.Name == qn {
			return a
		}
	}
	return nil
}

func (n *NamedNodeMap) getAttributeByNSLocalName(ns Namespace, ln string) *Attr {
	for _, a := range n.Attrs {
		if a.NamespaceURI == ns && a.LocalName == ln {
			return a
		}
	}
	return nil
}

// SetNamedItem adds s, or replaces the attribute with the same namespace
// and local name in place. It returns the replaced attribute, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement

	for i, old := range n.Attrs {
		if old.NamespaceURI == s.NamespaceURI && old.LocalName == s.LocalName {
			n.Attrs[i] = s
			return old
		}
	}
	n.Attrs = append(n.Attrs, s)
	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln string) *Attr {
	return n.getAttributeByNSLocalName(ns, ln)
}

func (n *NamedNodeMap) RemoveNamedItem(attr *Attr) *Attr {
	for i, a := range n.Attrs {
		if a == attr {
			n.Attrs = append(n.Attrs[:i], n.Attrs[i+1:]...)
			a.OwnerElement = nil
			return a
		}
	}
	return nil
}
