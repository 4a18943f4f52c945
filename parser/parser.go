package parser

import (
	"bytes"
	"io"

	"github.com/heathj/htmlobj/parser/spec"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// Parser turns a complete HTML document into a spec document tree.
type Parser struct {
	input            io.Reader
	scriptingEnabled bool
}

func NewParser(htmlIn io.Reader) *Parser {
	return &Parser{
		input:            htmlIn,
		scriptingEnabled: true,
	}
}

// WithScripting sets the scripting flag of the parser, which decides
// whether noscript content is parsed as markup or as raw text.
func (p *Parser) WithScripting(enabled bool) *Parser {
	p.scriptingEnabled = enabled
	return p
}

// Start runs the parser and returns the document node. Errors of the
// underlying HTML parser are returned unmodified.
func (p *Parser) Start() (*spec.Node, error) {
	src, err := keepLeadingNewlines(p.input)
	if err != nil {
		return nil, err
	}
	root, err := html.ParseWithOptions(src, html.ParseOptionEnableScripting(p.scriptingEnabled))
	if err != nil {
		return nil, err
	}

	doc := spec.NewHTMLDocumentNode()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if child := fromHTMLNode(doc, c); child != nil {
			doc.AppendChild(child)
		}
	}
	logrus.WithField("children", len(doc.ChildNodes)).Debug("parsed html document")
	return doc, nil
}

// ParseHTMLDocument is a shorthand for NewParser(r).Start().
func ParseHTMLDocument(r io.Reader) (*spec.Node, error) {
	return NewParser(r).Start()
}

// keepLeadingNewlines doubles a newline directly following a pre, listing
// or textarea start tag. Tree construction drops the first one, so the text
// node keeps the newline written in the source and serializing the tree
// gives back the same markup.
// https://html.spec.whatwg.org/#parsing-main-inbody (start tag "pre")
func keepLeadingNewlines(r io.Reader) (io.Reader, error) {
	z := html.NewTokenizer(r)
	var buf bytes.Buffer
	afterStart := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return &buf, nil
		}
		raw := z.Raw()
		if afterStart && tt == html.TextToken && len(raw) > 0 && (raw[0] == '\n' || raw[0] == '\r') {
			buf.WriteByte('\n')
		}
		// TagName lowercases the token buffer in place, so raw is copied first.
		buf.Write(raw)

		afterStart = false
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			switch name, _ := z.TagName(); string(name) {
			case "pre", "listing", "textarea":
				afterStart = true
			}
		}
	}
}
