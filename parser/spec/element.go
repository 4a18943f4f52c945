package spec

import (
	"strings"
)

// Namespace is a namespace URI.
// https://infra.spec.whatwg.org/#namespaces
type Namespace string

const (
	Htmlns   Namespace = "http://www.w3.org/1999/xhtml"
	Mathmlns Namespace = "http://www.w3.org/1998/Math/MathML"
	Svgns    Namespace = "http://www.w3.org/2000/svg"
	Xlinkns  Namespace = "http://www.w3.org/1999/xlink"
	Xmlns    Namespace = "http://www.w3.org/XML/1998/namespace"
	Xmlnsns  Namespace = "http://www.w3.org/2000/xmlns/"
)

// Prefix returns the prefix the HTML syntax uses for ns. HTML and unknown
// namespaces have none.
func (ns Namespace) Prefix() string {
	switch ns {
	case Mathmlns:
		return "math"
	case Svgns:
		return "svg"
	case Xlinkns:
		return "xlink"
	case Xmlns:
		return "xml"
	case Xmlnsns:
		return "xmlns"
	}
	return ""
}

// NamespaceForPrefix is the inverse of Namespace.Prefix. The empty prefix
// maps to the empty namespace.
func NamespaceForPrefix(prefix string) Namespace {
	switch prefix {
	case "math":
		return Mathmlns
	case "svg":
		return Svgns
	case "xlink":
		return Xlinkns
	case "xml":
		return Xmlns
	case "xmlns":
		return Xmlnsns
	}
	return ""
}

// Element is an individual HTML element that gets added to the DOM.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI      Namespace
	Prefix, LocalName string
	Attributes        *NamedNodeMap

	props properties
}

// properties holds the IDL attributes a script may set on an element
// without touching its content attributes. A nil field was never set.
type properties struct {
	value    *string
	checked  *bool
	selected *bool
}

func (p properties) clone() properties {
	var c properties
	if p.value != nil {
		v := *p.value
		c.value = &v
	}
	if p.checked != nil {
		v := *p.checked
		c.checked = &v
	}
	if p.selected != nil {
		v := *p.selected
		c.selected = &v
	}
	return c
}

func (e *Element) HasAttributes() bool {
	return e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []string {
	names := make([]string, 0, e.Attributes.Length())
	for _, attr := range e.Attributes.Attrs {
		names = append(names, attr.Name)
	}
	return names
}

// GetAttribute returns the value of the first attribute whose qualified
// name is qualifiedName, or "" if there is none.
func (e *Element) GetAttribute(qualifiedName string) string {
	if attr := e.Attributes.GetNamedItem(qualifiedName); attr != nil {
		return attr.Value
	}
	return ""
}

func (e *Element) GetAttributeNS(namespace Namespace, localName string) string {
	if attr := e.Attributes.GetNamedItemNS(namespace, localName); attr != nil {
		return attr.Value
	}
	return ""
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}

// SetAttribute sets a namespace-less attribute.
// https://dom.spec.whatwg.org/#dom-element-setattribute
func (e *Element) SetAttribute(qualifiedName, value string) {
	if e.NamespaceURI == Htmlns {
		qualifiedName = strings.ToLower(qualifiedName)
	}
	if attr := e.Attributes.GetNamedItem(qualifiedName); attr != nil {
		attr.Value = value
		return
	}
	e.Attributes.SetNamedItem(NewAttr("", "", qualifiedName, value))
}

// SetAttributeNS sets an attribute in namespace, splitting qualifiedName
// into prefix and local name.
// https://dom.spec.whatwg.org/#dom-element-setattributens
func (e *Element) SetAttributeNS(namespace Namespace, qualifiedName, value string) {
	var prefix, localName = "", qualifiedName
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		prefix, localName = qualifiedName[:i], qualifiedName[i+1:]
	}
	e.Attributes.SetNamedItem(NewAttr(namespace, prefix, localName, value))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	if attr := e.Attributes.GetNamedItem(qualifiedName); attr != nil {
		e.Attributes.RemoveNamedItem(attr)
	}
}

func (e *Element) SetValue(v string) {
	e.props.value = &v
}

func (e *Element) SetChecked(v bool) {
	e.props.checked = &v
}

func (e *Element) SetSelected(v bool) {
	e.props.selected = &v
}

// Value returns the value property and whether it was ever set.
func (e *Element) Value() (string, bool) {
	if e.props.value == nil {
		return "", false
	}
	return *e.props.value, true
}

func (e *Element) Checked() (bool, bool) {
	if e.props.checked == nil {
		return false, false
	}
	return *e.props.checked, true
}

func (e *Element) Selected() (bool, bool) {
	if e.props.selected == nil {
		return false, false
	}
	return *e.props.selected, true
}

// HasOwnProperty reports whether the named property was set on this
// element explicitly.
func (e *Element) HasOwnProperty(name string) bool {
	switch name {
	case "value":
		return e.props.value != nil
	case "checked":
		return e.props.checked != nil
	case "selected":
		return e.props.selected != nil
	}
	return false
}
