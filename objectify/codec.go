package objectify

import (
	"github.com/heathj/htmlobj/parser/spec"
)

// Codec converts between nodes and records. The zero value has no depth
// limit. A Codec is never modified after construction and may be shared
// between goroutines.
type Codec struct {
	maxDepth int
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxDepth limits how deeply nested a tree may be before encoding or
// decoding fails with ErrMaxDepth. Zero or less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(c *Codec) {
		c.maxDepth = depth
	}
}

func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = NewCodec()

// FromHTML parses markup and returns its record. See Codec.FromHTML.
func FromHTML(html string) (*Record, error) {
	return defaultCodec.FromHTML(html)
}

// FromNode returns the record of node. See Codec.FromNode.
func FromNode(node *spec.Node) (*Record, error) {
	return defaultCodec.FromNode(node)
}

// ToNode builds the node for rec in doc. See Codec.ToNode.
func ToNode(rec *Record, doc *spec.Node) (*spec.Node, error) {
	return defaultCodec.ToNode(rec, doc)
}

// ToHTML returns the markup for rec. See Codec.ToHTML.
func ToHTML(rec *Record) (string, error) {
	return defaultCodec.ToHTML(rec)
}
