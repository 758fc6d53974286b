package ao3

import (
	"errors"
	"fmt"
	"time"

	"github.com/podfickle/podfickle/pkg/browser"
	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/podfickle/podfickle/pkg/retry"
	"github.com/podfickle/podfickle/pkg/secret"
)

// DefaultSettleDelay is the pause after accepting the terms of service while
// the prompt closes.
const DefaultSettleDelay = 1 * time.Second

// State is how far session setup has progressed.
type State int

const (
	// StateFresh means no page has been loaded yet
	StateFresh State = iota

	// StateTOSPending means the home page is loaded and the terms of
	// service prompt may be showing
	StateTOSPending

	// StateAuthenticated means the login form has been submitted
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateTOSPending:
		return "tos-pending"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Client automates one browser session against the archive.
type Client struct {
	accessor  *browser.Accessor
	username  string
	password  secret.Source
	selectors Selectors
	retry     retry.Policy
	settle    time.Duration
	sleep     func(time.Duration)
	logger    *logging.Logger
	state     State
}

// Option configures a Client.
type Option func(*Client)

// WithSelectors replaces DefaultSelectors.
func WithSelectors(s Selectors) Option {
	return func(c *Client) {
		c.selectors = s
	}
}

// WithRetryPolicy replaces retry.DefaultPolicy for flaky clicks.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) {
		c.retry = p
	}
}

// WithSettleDelay replaces DefaultSettleDelay.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Client) {
		c.settle = d
	}
}

// WithSleep replaces time.Sleep for the settle delay and retry pauses.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

// NewClient creates a client that logs in as username with the password
// read from password when Login runs.
func NewClient(accessor *browser.Accessor, username string, password secret.Source, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Client{
		accessor:  accessor,
		username:  username,
		password:  password,
		selectors: DefaultSelectors(),
		retry:     retry.DefaultPolicy(),
		settle:    DefaultSettleDelay,
		sleep:     time.Sleep,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.retry = c.retry.WithLogger(logger)
	if c.retry.Sleep == nil {
		c.retry.Sleep = c.sleep
	}
	return c
}

// State returns how far session setup has progressed.
func (c *Client) State() State {
	return c.state
}

// Home loads the archive's front page.
func (c *Client) Home() error {
	if _, err := c.accessor.Navigate("/"); err != nil {
		return err
	}
	if c.state == StateFresh {
		c.state = StateTOSPending
	}
	return nil
}

// AcceptTOS agrees to the terms of service prompt shown on first visit. When
// the prompt is not shown the step is skipped.
func (c *Client) AcceptTOS() error {
	agree, err := c.accessor.ByID(IDTOSAgree)
	if errors.Is(err, browser.ErrNotFound) {
		c.logger.Infof("Terms of service prompt not shown, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	accept, err := c.accessor.ByID(IDTOSAccept)
	if err != nil {
		return err
	}

	// Check rather than click so a retried attempt never unticks the box.
	err = retry.Run(c.retry, browser.ErrNotInteractable, "Error accepting TOS, retrying", func() error {
		if err := agree.Check(); err != nil {
			return err
		}
		return accept.Click()
	})
	if err != nil {
		return fmt.Errorf("accept terms of service: %w", err)
	}

	c.sleep(c.settle)
	return nil
}

// Login submits the login form. It does not check that the login succeeded.
func (c *Client) Login() error {
	password, err := c.password.Password()
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	dropdown, err := c.accessor.ByID(IDLoginDropdown)
	if err != nil {
		return err
	}
	err = retry.Run(c.retry, browser.ErrNotInteractable, "Error opening login form, retrying", dropdown.Click)
	if err != nil {
		return fmt.Errorf("open login form: %w", err)
	}

	c.logger.Infof("Logging in as '%s'", c.username)
	if err := c.typeInto(IDLoginUsername, c.username); err != nil {
		return err
	}

	field, err := c.accessor.ByID(IDLoginPassword)
	if err != nil {
		return err
	}
	if err := field.Type(password); err != nil {
		return fmt.Errorf("type into #%s: %w", IDLoginPassword, err)
	}
	if err := field.Press(browser.KeyEnter); err != nil {
		return fmt.Errorf("submit login: %w", err)
	}

	c.state = StateAuthenticated
	return nil
}

// Establish loads the home page, accepts the terms of service and logs in.
func (c *Client) Establish() error {
	if err := c.Home(); err != nil {
		return err
	}
	if err := c.AcceptTOS(); err != nil {
		return err
	}
	return c.Login()
}

func (c *Client) typeInto(id, text string) error {
	el, err := c.accessor.ByID(id)
	if err != nil {
		return err
	}
	if err := el.Type(text); err != nil {
		return fmt.Errorf("type into #%s: %w", id, err)
	}
	return nil
}

func (c *Client) click(id string) error {
	el, err := c.accessor.ByID(id)
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return fmt.Errorf("click #%s: %w", id, err)
	}
	return nil
}

func (c *Client) selectByLabel(id, label string) error {
	el, err := c.accessor.ByID(id)
	if err != nil {
		return err
	}
	if err := el.SelectByLabel(label); err != nil {
		return fmt.Errorf("select %q in #%s: %w", label, id, err)
	}
	return nil
}
