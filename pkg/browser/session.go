package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Goto navigates the session's page to url and waits for the load event.
func (s *Session) Goto(url string) error {
	waitUntil := playwright.WaitUntilState("load")
	if _, err := s.Page.Goto(url, playwright.PageGotoOptions{WaitUntil: &waitUntil}); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// URL returns the address of the current page.
func (s *Session) URL() string {
	return s.Page.URL()
}

// WaitForID waits until an element with the given id is attached to the DOM.
func (s *Session) WaitForID(id string, timeout time.Duration) (Element, error) {
	state := playwright.WaitForSelectorState("attached")
	ms := float64(timeout.Milliseconds())

	handle, err := s.Page.WaitForSelector(IDSelector(id), playwright.PageWaitForSelectorOptions{
		State:   &state,
		Timeout: &ms,
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return nil, fmt.Errorf("%w: #%s after %s", ErrNotFound, id, timeout)
		}
		return nil, fmt.Errorf("wait failed: %w", err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	return s.element(handle), nil
}

// QuerySelector returns the first element matching selector without waiting.
func (s *Session) QuerySelector(selector string) (Element, error) {
	handle, err := s.Page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return s.element(handle), nil
}

// QuerySelectorAll returns every element matching selector.
func (s *Session) QuerySelectorAll(selector string) ([]Element, error) {
	handles, err := s.Page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	return s.elements(handles), nil
}

// Disconnected is closed once the browser goes away, for example when the
// user closes its window.
func (s *Session) Disconnected() <-chan struct{} {
	return s.disconnected
}

func (s *Session) element(handle playwright.ElementHandle) *liveElement {
	return &liveElement{handle: handle, session: s}
}

func (s *Session) elements(handles []playwright.ElementHandle) []Element {
	els := make([]Element, 0, len(handles))
	for _, h := range handles {
		els = append(els, s.element(h))
	}
	return els
}

// liveElement is an Element backed by a Playwright element handle.
type liveElement struct {
	handle  playwright.ElementHandle
	session *Session
}

func (e *liveElement) Text() (string, error) {
	text, err := e.handle.InnerText()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (e *liveElement) InnerHTML() (string, error) {
	markup, err := e.handle.InnerHTML()
	if err != nil {
		return "", fmt.Errorf("html extraction failed: %w", err)
	}
	return markup, nil
}

func (e *liveElement) Attribute(name string) (string, error) {
	value, err := e.handle.GetAttribute(name)
	if err != nil {
		return "", fmt.Errorf("attribute %q: %w", name, err)
	}
	return value, nil
}

func (e *liveElement) QuerySelector(selector string) (Element, error) {
	handle, err := e.handle.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return e.session.element(handle), nil
}

func (e *liveElement) QuerySelectorAll(selector string) ([]Element, error) {
	handles, err := e.handle.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	return e.session.elements(handles), nil
}

func (e *liveElement) Click() error {
	timeout := e.session.actionTimeout
	return actionError("click", e.handle.Click(playwright.ElementHandleClickOptions{Timeout: &timeout}))
}

func (e *liveElement) Check() error {
	timeout := e.session.actionTimeout
	return actionError("check", e.handle.Check(playwright.ElementHandleCheckOptions{Timeout: &timeout}))
}

// Type uses the session default timeout since long content takes a while to
// key in.
func (e *liveElement) Type(text string) error {
	return actionError("type", e.handle.Type(text))
}

func (e *liveElement) Press(key string) error {
	timeout := e.session.actionTimeout
	return actionError("press "+key, e.handle.Press(key, playwright.ElementHandlePressOptions{Timeout: &timeout}))
}

func (e *liveElement) SelectByLabel(label string) error {
	timeout := e.session.actionTimeout
	selected, err := e.handle.SelectOption(
		playwright.SelectOptionValues{Labels: &[]string{label}},
		playwright.ElementHandleSelectOptionOptions{Timeout: &timeout},
	)
	if err != nil {
		return actionError(fmt.Sprintf("select %q", label), err)
	}
	if len(selected) == 0 {
		return fmt.Errorf("select %q: %w", label, ErrNotFound)
	}
	return nil
}

// actionError reports a timed-out action as ErrNotInteractable so callers can
// retry it.
func actionError(action string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%s failed: %w: %w", action, ErrNotInteractable, err)
	}
	return fmt.Errorf("%s failed: %w", action, err)
}
