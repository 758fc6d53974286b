package browser

import "time"

// Page is the driver capability the rest of the module depends on.
type Page interface {
	// Goto loads url in the page.
	Goto(url string) error

	// URL returns the address of the loaded page.
	URL() string

	// WaitForID blocks until an element with the given id exists or timeout
	// passes, in which case it fails with ErrNotFound.
	WaitForID(id string, timeout time.Duration) (Element, error)

	// QuerySelector returns the first element matching a CSS selector, or
	// ErrNotFound without waiting.
	QuerySelector(selector string) (Element, error)

	// QuerySelectorAll returns every element matching a CSS selector in
	// document order. No match is an empty slice, not an error.
	QuerySelectorAll(selector string) ([]Element, error)
}

// Element is a handle to a node in a Page.
type Element interface {
	// Text returns the rendered text of the element, trimmed.
	Text() (string, error)

	// InnerHTML returns the raw markup inside the element.
	InnerHTML() (string, error)

	// Attribute returns the value of the named attribute, empty if unset.
	Attribute(name string) (string, error)

	// QuerySelector finds the first descendant matching selector, or ErrNotFound.
	QuerySelector(selector string) (Element, error)

	// QuerySelectorAll finds every descendant matching selector.
	QuerySelectorAll(selector string) ([]Element, error)

	Click() error

	// Check ticks a checkbox, leaving it ticked if it already is.
	Check() error

	// Type sends text as key strokes, appending to any existing value.
	Type(text string) error

	// Press sends a single named key such as "Enter".
	Press(key string) error

	// SelectByLabel picks the option of a select element whose visible
	// text equals label.
	SelectByLabel(label string) error
}

// Key names understood by Element.Press.
const (
	KeyEnter = "Enter"
)
