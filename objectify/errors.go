package objectify

import (
	"github.com/pkg/errors"
)

// ErrUnsupportedNodeType is returned when a node other than an element,
// text or comment is encoded, or a record with a node type outside of
// fragment, element, text and comment is decoded. Test for it with
// errors.Is.
var ErrUnsupportedNodeType = errors.New("unsupported node type: element, text or comment expected")

// ErrMaxDepth is returned by a codec with a depth limit when a tree nests
// deeper than the limit.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

func unsupportedNodeType(code int) error {
	return errors.Wrapf(ErrUnsupportedNodeType, "nodeType %d", code)
}
