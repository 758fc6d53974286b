package browser

import (
	"fmt"
	"net/url"
	"time"

	"github.com/podfickle/podfickle/pkg/logging"
)

// DefaultLocateTimeout bounds how long ByID waits for an element to appear.
const DefaultLocateTimeout = 10 * time.Second

// Accessor is the only entry point higher layers use to reach a Page.
type Accessor struct {
	page          Page
	baseURL       *url.URL
	locateTimeout time.Duration
	logger        *logging.Logger
}

// AccessorOption configures an Accessor.
type AccessorOption func(*Accessor)

// WithLocateTimeout overrides DefaultLocateTimeout.
func WithLocateTimeout(d time.Duration) AccessorOption {
	return func(a *Accessor) {
		if d > 0 {
			a.locateTimeout = d
		}
	}
}

// NewAccessor wraps page, resolving relative paths against baseURL.
func NewAccessor(page Page, baseURL string, logger *logging.Logger, opts ...AccessorOption) (*Accessor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	a := &Accessor{
		page:          page,
		baseURL:       base,
		locateTimeout: DefaultLocateTimeout,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Resolve turns a path or link found on a page into an absolute URL.
func (a *Accessor) Resolve(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	return a.baseURL.ResolveReference(u).String(), nil
}

// Navigate loads path and returns the absolute URL it resolved to.
func (a *Accessor) Navigate(path string) (string, error) {
	target, err := a.Resolve(path)
	if err != nil {
		return "", err
	}

	a.logger.Infof("Navigating to '%s'", target)
	if err := a.page.Goto(target); err != nil {
		return "", fmt.Errorf("navigate to %s: %w", target, err)
	}
	return target, nil
}

// ByID waits up to the locate timeout for the element with the given id.
func (a *Accessor) ByID(id string) (Element, error) {
	el, err := a.page.WaitForID(id, a.locateTimeout)
	if err != nil {
		return nil, fmt.Errorf("locate #%s: %w", id, err)
	}
	return el, nil
}

// Query returns the first element matching selector, or ErrNotFound.
func (a *Accessor) Query(selector string) (Element, error) {
	el, err := a.page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", selector, err)
	}
	return el, nil
}

// QueryAll returns every element matching selector.
func (a *Accessor) QueryAll(selector string) ([]Element, error) {
	els, err := a.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("query all %q: %w", selector, err)
	}
	return els, nil
}

// Text reads the rendered text of el.
func (a *Accessor) Text(el Element) (string, error) {
	return el.Text()
}

// Attribute reads the named attribute of el.
func (a *Accessor) Attribute(el Element, name string) (string, error) {
	return el.Attribute(name)
}
