package browser

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Document is a Page over static HTML, such as a work page saved from the
// archive. Reads behave like a live page; every write fails with ErrReadOnly.
type Document struct {
	doc *goquery.Document
	url string
}

// NewDocument parses the HTML in r as the page found at pageURL.
func NewDocument(r io.Reader, pageURL string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc, url: pageURL}, nil
}

// Goto records url as the current address. The content does not change.
func (d *Document) Goto(url string) error {
	d.url = url
	return nil
}

// URL returns the current address.
func (d *Document) URL() string {
	return d.url
}

// WaitForID returns the element with the given id. There is nothing to wait
// for in a static document, so absence is reported immediately.
func (d *Document) WaitForID(id string, _ time.Duration) (Element, error) {
	return first(d.doc.Selection, IDSelector(id))
}

// QuerySelector returns the first element matching selector.
func (d *Document) QuerySelector(selector string) (Element, error) {
	return first(d.doc.Selection, selector)
}

// QuerySelectorAll returns every element matching selector.
func (d *Document) QuerySelectorAll(selector string) ([]Element, error) {
	return all(d.doc.Selection, selector), nil
}

func first(sel *goquery.Selection, selector string) (Element, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return staticElement{sel: found}, nil
}

func all(sel *goquery.Selection, selector string) []Element {
	var els []Element
	sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		els = append(els, staticElement{sel: s})
	})
	return els
}

// staticElement is a read-only Element over a goquery selection.
type staticElement struct {
	sel *goquery.Selection
}

// Text collapses whitespace the way rendered text does.
func (e staticElement) Text() (string, error) {
	return strings.Join(strings.Fields(e.sel.Text()), " "), nil
}

func (e staticElement) InnerHTML() (string, error) {
	return e.sel.Html()
}

func (e staticElement) Attribute(name string) (string, error) {
	value, _ := e.sel.Attr(name)
	return value, nil
}

func (e staticElement) QuerySelector(selector string) (Element, error) {
	return first(e.sel, selector)
}

func (e staticElement) QuerySelectorAll(selector string) ([]Element, error) {
	return all(e.sel, selector), nil
}

func (e staticElement) Click() error {
	return e.readOnly("click")
}

func (e staticElement) Check() error {
	return e.readOnly("check")
}

func (e staticElement) Type(string) error {
	return e.readOnly("type")
}

func (e staticElement) Press(string) error {
	return e.readOnly("press")
}

func (e staticElement) SelectByLabel(string) error {
	return e.readOnly("select")
}

func (e staticElement) readOnly(action string) error {
	return fmt.Errorf("%s <%s>: %w", action, goquery.NodeName(e.sel), ErrReadOnly)
}
