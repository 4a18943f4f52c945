package objectify

// NodeType is the node type code of a record. The codes are the ones the
// DOM uses. A record without a node type is a fragment.
type NodeType int

const (
	FragmentNode NodeType = 0
	ElementNode  NodeType = 1
	TextNode     NodeType = 3
	CommentNode  NodeType = 8
)

// Attribute is a single name/value pair of an element record. It is
// serialized as a two-element array.
type Attribute struct {
	Name  string
	Value string
}

// Record is the serializable counterpart of a DOM node.
//
// Attributes and ChildNodes are nil when empty. Value, Checked and Selected
// are set only when the source element had the property set explicitly, so
// that an unset property stays distinct from one set to its zero value.
type Record struct {
	NodeType   NodeType
	NodeName   string
	Data       string
	Attributes []Attribute
	Value      *string
	Checked    *bool
	Selected   *bool
	ChildNodes []*Record
}

// Element returns an element record named name with the given children.
func Element(name string, attrs []Attribute, children ...*Record) *Record {
	rec := &Record{NodeType: ElementNode, NodeName: name}
	if len(attrs) > 0 {
		rec.Attributes = attrs
	}
	if len(children) > 0 {
		rec.ChildNodes = children
	}
	return rec
}

func Text(data string) *Record {
	return &Record{NodeType: TextNode, Data: data}
}

func Comment(data string) *Record {
	return &Record{NodeType: CommentNode, Data: data}
}

// Fragment returns a record grouping several top-level records.
func Fragment(children ...*Record) *Record {
	rec := &Record{}
	if len(children) > 0 {
		rec.ChildNodes = children
	}
	return rec
}

func (r *Record) IsElement() bool  { return r.NodeType == ElementNode }
func (r *Record) IsText() bool     { return r.NodeType == TextNode }
func (r *Record) IsComment() bool  { return r.NodeType == CommentNode }
func (r *Record) IsFragment() bool { return r.NodeType == FragmentNode }

// Attr returns the value of the first attribute called name.
func (r *Record) Attr(name string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (r *Record) String() string {
	return Dump(r)
}
