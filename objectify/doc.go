/*
Package objectify converts HTML into a plain tree of records and back.

A record mirrors the structure of a DOM node: elements carry their name,
attributes in document order and children; text and comment nodes carry
their data. Records hold no references into a document, so they can be
stored, sent over the wire as JSON or YAML, and rebuilt into nodes of any
document later.

	rec, err := objectify.FromHTML(`<p class="x">hi</p>`)
	...
	out, err := objectify.ToHTML(rec) // <p class="x">hi</p>

Markup with more than one top-level node is represented by a fragment
record, a record without a node type whose children are the top-level
nodes.

Parsing and serialization are done by package parser, on top of
golang.org/x/net/html.
*/
package objectify
