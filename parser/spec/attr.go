package spec

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	NamespaceURI Namespace
	Prefix       string
	LocalName    string
	Name         string
	Value        string
	OwnerElement *Node
}

func NewAttr(namespace Namespace, prefix, localName, value string) *Attr {
	name := localName
	if prefix != "" {
		name = prefix + ":" + localName
	}
	return &Attr{
		NamespaceURI: namespace,
		Prefix:       prefix,
		LocalName:    localName,
		Name:         name,
		Value:        value,
	}
}
