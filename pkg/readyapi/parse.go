package readyapi

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

const (
	defaultName   = "Request"
	defaultMethod = "GET"
)

var (
	// ErrEmptyDocument is returned when the input holds no root element.
	ErrEmptyDocument = errors.New("no root element found")
	// ErrNotWellFormed is wrapped by every well-formedness violation the
	// tokenizer lets through.
	ErrNotWellFormed = errors.New("document not well-formed")
)

// Parser reads project files. Elements are matched by local name and
// resolved namespace URI, so any prefix bound to Namespace works.
type Parser struct {
	Namespace string
}

// NewParser returns a Parser for the ReadyAPI namespace.
func NewParser() *Parser {
	return &Parser{Namespace: Namespace}
}

// ParseFile parses the project file at path.
func (p *Parser) ParseFile(path string) (Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return Project{}, err
	}
	defer f.Close()
	return p.Parse(f)
}

// Parse reads a project document from r and collects its requests.
func (p *Parser) Parse(r io.Reader) (Project, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Project{}, fmt.Errorf("invalid XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return Project{}, ErrEmptyDocument
	}
	if err := wellFormed(doc); err != nil {
		return Project{}, fmt.Errorf("invalid XML: %w", err)
	}

	var project Project
	for _, el := range p.descendants(root, "request") {
		project.Requests = append(project.Requests, p.request(el))
	}
	return project, nil
}

func (p *Parser) request(el *etree.Element) Request {
	req := Request{
		Name:     el.SelectAttrValue("name", defaultName),
		Method:   el.SelectAttrValue("method", defaultMethod),
		Endpoint: p.childText(el, "endpoint"),
		Content:  p.childText(el, "requestContent"),
	}
	for _, h := range p.descendants(el, "header") {
		req.Headers = append(req.Headers, Header{
			Name:  h.SelectAttrValue("name", ""),
			Value: h.Text(),
		})
	}
	for _, a := range p.descendants(el, "assertion") {
		req.Assertions = append(req.Assertions, a.Text())
	}
	return req
}

// descendants returns every element below el (el excluded) named local in
// the parser namespace, in depth-first document order.
func (p *Parser) descendants(el *etree.Element, local string) []*etree.Element {
	var found []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if p.is(child, local) {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(el)
	return found
}

// childText returns the text of the first direct child named local, or "".
func (p *Parser) childText(el *etree.Element, local string) string {
	for _, child := range el.ChildElements() {
		if p.is(child, local) {
			return child.Text()
		}
	}
	return ""
}

func (p *Parser) is(el *etree.Element, local string) bool {
	return el.Tag == local && el.NamespaceURI() == p.Namespace
}

// -------------------------------------------------------------
// Well-formedness
// -------------------------------------------------------------

// wellFormed rejects what the tokenizer accepts but XML forbids: more than
// one root, text outside the root, and prefixes without a namespace binding.
func wellFormed(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if !t.IsWhitespace() {
				return fmt.Errorf("%w: junk after document element", ErrNotWellFormed)
			}
		}
	}
	if roots > 1 {
		return fmt.Errorf("%w: junk after document element", ErrNotWellFormed)
	}
	return boundPrefixes(doc.Root())
}

func boundPrefixes(el *etree.Element) error {
	if !reservedPrefix(el.Space) && !declared(el, el.Space) {
		return fmt.Errorf("%w: unbound prefix %q on <%s>", ErrNotWellFormed, el.Space, el.FullTag())
	}
	for _, a := range el.Attr {
		if !reservedPrefix(a.Space) && !declared(el, a.Space) {
			return fmt.Errorf("%w: unbound prefix %q on attribute %s", ErrNotWellFormed, a.Space, a.FullKey())
		}
	}
	for _, child := range el.ChildElements() {
		if err := boundPrefixes(child); err != nil {
			return err
		}
	}
	return nil
}

func reservedPrefix(prefix string) bool {
	return prefix == "" || prefix == "xml" || prefix == "xmlns"
}

// declared reports whether an xmlns:prefix attribute is in scope at el.
func declared(el *etree.Element, prefix string) bool {
	for e := el; e != nil; e = e.Parent() {
		if e.SelectAttr("xmlns:"+prefix) != nil {
			return true
		}
	}
	return false
}
