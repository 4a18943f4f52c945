package objectify

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// wireRecord is the serialized shape of a Record. Which fields are set
// depends on the record's variant, see toWire.
type wireRecord struct {
	NodeName   string      `json:"nodeName,omitempty" yaml:"nodeName,omitempty"`
	NodeType   *NodeType   `json:"nodeType,omitempty" yaml:"nodeType,omitempty"`
	Data       *string     `json:"data,omitempty" yaml:"data,omitempty"`
	Value      *string     `json:"value,omitempty" yaml:"value,omitempty"`
	Checked    *bool       `json:"checked,omitempty" yaml:"checked,omitempty"`
	Selected   *bool       `json:"selected,omitempty" yaml:"selected,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	ChildNodes []*Record   `json:"childNodes,omitempty" yaml:"childNodes,omitempty"`
}

func (r Record) toWire() wireRecord {
	var w wireRecord
	switch r.NodeType {
	case FragmentNode:
	case TextNode, CommentNode:
		t, data := r.NodeType, r.Data
		w.NodeType, w.Data = &t, &data
		return w
	default:
		t := r.NodeType
		w.NodeType = &t
		w.NodeName = r.NodeName
		w.Value, w.Checked, w.Selected = r.Value, r.Checked, r.Selected
		if len(r.Attributes) > 0 {
			w.Attributes = r.Attributes
		}
	}
	if len(r.ChildNodes) > 0 {
		w.ChildNodes = r.ChildNodes
	}
	return w
}

func (w wireRecord) toRecord() (Record, error) {
	r := Record{
		NodeName:   w.NodeName,
		Value:      w.Value,
		Checked:    w.Checked,
		Selected:   w.Selected,
		Attributes: w.Attributes,
		ChildNodes: w.ChildNodes,
	}
	if w.NodeType != nil {
		if *w.NodeType == FragmentNode {
			return r, unsupportedNodeType(0)
		}
		r.NodeType = *w.NodeType
	}
	if w.Data != nil {
		r.Data = *w.Data
	}
	if len(r.Attributes) == 0 {
		r.Attributes = nil
	}
	if len(r.ChildNodes) == 0 {
		r.ChildNodes = nil
	}
	return r, nil
}

// MarshalJSON writes the record in its wire form: node type, name,
// properties, attributes and children for elements, node type and data for
// text and comments, and only children for fragments.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toWire())
}

// UnmarshalJSON reads a record in wire form. An explicit node type of 0 is
// rejected; fragments are written without a node type.
func (r *Record) UnmarshalJSON(b []byte) error {
	var w wireRecord
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	rec, err := w.toRecord()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

func (r Record) MarshalYAML() (interface{}, error) {
	return r.toWire(), nil
}

func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var w wireRecord
	if err := value.Decode(&w); err != nil {
		return err
	}
	rec, err := w.toRecord()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

var errAttributePair = errors.New("attribute must be a [name, value] pair")

func (a Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{a.Name, a.Value})
}

func (a *Attribute) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return errors.Wrap(errAttributePair, err.Error())
	}
	if len(pair) != 2 {
		return errors.Wrapf(errAttributePair, "got %d elements", len(pair))
	}
	a.Name, a.Value = pair[0], pair[1]
	return nil
}

func (a Attribute) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range []string{a.Name, a.Value} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}
	return node, nil
}

func (a *Attribute) UnmarshalYAML(value *yaml.Node) error {
	var pair []string
	if err := value.Decode(&pair); err != nil {
		return errors.Wrap(errAttributePair, err.Error())
	}
	if len(pair) != 2 {
		return errors.Wrapf(errAttributePair, "got %d elements", len(pair))
	}
	a.Name, a.Value = pair[0], pair[1]
	return nil
}
