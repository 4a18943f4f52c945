package objectify

import (
	"fmt"
	"strconv"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump renders rec and its descendants as an indented tree, one record
// per line.
func Dump(rec *Record) string {
	p := tp.New()
	dumpRecord(p, rec)
	return p.String()
}

func dumpRecord(p tp.Tree, rec *Record) {
	if rec == nil {
		p.AddNode("<nil>")
		return
	}
	if len(rec.ChildNodes) == 0 {
		p.AddNode(rec.label())
		return
	}
	branch := p.AddBranch(rec.label())
	for _, ch := range rec.ChildNodes {
		dumpRecord(branch, ch)
	}
}

func (r *Record) label() string {
	switch r.NodeType {
	case FragmentNode:
		return "#document-fragment"
	case TextNode:
		return "#text " + strconv.Quote(r.Data)
	case CommentNode:
		return "#comment " + strconv.Quote(r.Data)
	case ElementNode:
	default:
		return fmt.Sprintf("#%d?", r.NodeType)
	}

	var b strings.Builder
	b.WriteString("<" + r.NodeName)
	for _, a := range r.Attributes {
		b.WriteString(" " + a.Name + "=" + strconv.Quote(a.Value))
	}
	b.WriteString(">")
	if r.Value != nil {
		b.WriteString(" value=" + strconv.Quote(*r.Value))
	}
	if r.Checked != nil {
		b.WriteString(" checked=" + strconv.FormatBool(*r.Checked))
	}
	if r.Selected != nil {
		b.WriteString(" selected=" + strconv.FormatBool(*r.Selected))
	}
	return b.String()
}
