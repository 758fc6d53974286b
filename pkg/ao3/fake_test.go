package ao3

import (
	"fmt"
	"strings"
	"time"

	"github.com/podfickle/podfickle/pkg/browser"
)

// fakePage is a browser.Page where every element exists unless marked absent.
// Actions on elements are recorded in order.
type fakePage struct {
	url     string
	actions []string

	// absent names ids and selectors that are never found
	absent map[string]bool

	// flaky counts how many more times an action on an element fails as
	// not interactable
	flaky map[string]int
}

func newFakePage() *fakePage {
	return &fakePage{
		absent: make(map[string]bool),
		flaky:  make(map[string]int),
	}
}

func (p *fakePage) Goto(url string) error {
	p.url = url
	p.actions = append(p.actions, "goto "+url)
	return nil
}

func (p *fakePage) URL() string {
	return p.url
}

func (p *fakePage) WaitForID(id string, _ time.Duration) (browser.Element, error) {
	return p.find("#" + id)
}

func (p *fakePage) QuerySelector(selector string) (browser.Element, error) {
	return p.find(selector)
}

func (p *fakePage) QuerySelectorAll(selector string) ([]browser.Element, error) {
	if p.absent[selector] {
		return nil, nil
	}
	el, _ := p.find(selector)
	return []browser.Element{el}, nil
}

func (p *fakePage) find(name string) (browser.Element, error) {
	if p.absent[name] {
		return nil, fmt.Errorf("%w: %s", browser.ErrNotFound, name)
	}
	return &fakeElement{page: p, name: name}, nil
}

// actionsMatching returns the recorded actions that start with prefix.
func (p *fakePage) actionsMatching(prefix string) []string {
	var matched []string
	for _, action := range p.actions {
		if strings.HasPrefix(action, prefix) {
			matched = append(matched, action)
		}
	}
	return matched
}

type fakeElement struct {
	page *fakePage
	name string
}

func (e *fakeElement) record(action string, args ...string) error {
	if e.page.flaky[e.name] > 0 {
		e.page.flaky[e.name]--
		e.page.actions = append(e.page.actions, "failed "+action+" "+e.name)
		return fmt.Errorf("%s %s: %w", action, e.name, browser.ErrNotInteractable)
	}
	e.page.actions = append(e.page.actions, strings.Join(append([]string{action, e.name}, args...), " "))
	return nil
}

func (e *fakeElement) Text() (string, error)            { return e.name, nil }
func (e *fakeElement) InnerHTML() (string, error)       { return "", nil }
func (e *fakeElement) Attribute(string) (string, error) { return "", nil }
func (e *fakeElement) QuerySelector(s string) (browser.Element, error) {
	return e.page.find(s)
}
func (e *fakeElement) QuerySelectorAll(s string) ([]browser.Element, error) {
	return e.page.QuerySelectorAll(s)
}
func (e *fakeElement) Click() error                     { return e.record("click") }
func (e *fakeElement) Check() error                     { return e.record("check") }
func (e *fakeElement) Type(text string) error           { return e.record("type", text) }
func (e *fakeElement) Press(key string) error           { return e.record("press", key) }
func (e *fakeElement) SelectByLabel(label string) error { return e.record("select", label) }

type staticPassword string

func (s staticPassword) Password() (string, error) {
	return string(s), nil
}

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
