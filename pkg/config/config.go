// Package config loads the per-podfic configuration file.
//
// A configuration describes one podfic: who posts it, which parent work it
// is recorded from and where the audio is hosted. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/podfickle/podfickle/pkg/podfic"
	"gopkg.in/yaml.v3"
)

// ErrNoUrls is returned when posting without any podfic urls configured.
var ErrNoUrls = errors.New("to post a podficced work, you must provide urls")

// Config is the configuration for a single podfic.
type Config struct {
	// AO3Username is the podficcer's AO3 login
	AO3Username string `yaml:"ao3_username" json:"ao3_username"`

	// Tumblr is the podficcer's tumblr handle
	Tumblr string `yaml:"tumblr" json:"tumblr"`

	// Parent identifies the work the podfic is recorded from
	Parent podfic.ParentConfig `yaml:"parent" json:"parent"`

	// Urls point at the hosted audio. Only required when posting.
	Urls *podfic.Urls `yaml:"urls,omitempty" json:"urls,omitempty"`

	// Browser controls the automated browser
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Tags adjusts the tags copied from the parent work
	Tags TagsConfig `yaml:"tags" json:"tags"`
}

// BrowserConfig controls the automated browser.
type BrowserConfig struct {
	Headless      bool           `yaml:"headless" json:"headless"`
	LocateTimeout Duration       `yaml:"locate_timeout" json:"locate_timeout"`
	ActionTimeout Duration       `yaml:"action_timeout" json:"action_timeout"`
	Viewport      ViewportConfig `yaml:"viewport" json:"viewport"`
}

// ViewportConfig is the browser window size in pixels.
type ViewportConfig struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// TagsConfig adjusts the tags copied from the parent work.
type TagsConfig struct {
	// ExcludeFreeform lists glob patterns of freeform tags to drop
	ExcludeFreeform []string `yaml:"exclude_freeform" json:"exclude_freeform"`
}

// Default returns a configuration with the browser defaults filled in.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			LocateTimeout: Duration(DefaultLocateTimeout),
			ActionTimeout: Duration(DefaultActionTimeout),
			Viewport: ViewportConfig{
				Width:  DefaultViewportWidth,
				Height: DefaultViewportHeight,
			},
		},
	}
}

// Load reads, parses and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := decode(path, data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

func decode(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(config)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AO3Username == "" {
		return fmt.Errorf("ao3_username is required")
	}

	if c.Tumblr == "" {
		return fmt.Errorf("tumblr is required")
	}

	if c.Parent.WorkID == "" {
		return fmt.Errorf("parent.work_id is required")
	}

	for _, r := range c.Parent.WorkID {
		if r < '0' || r > '9' {
			return fmt.Errorf("parent.work_id must be numeric, got %q", c.Parent.WorkID)
		}
	}

	if c.Browser.LocateTimeout < 0 {
		return fmt.Errorf("browser.locate_timeout cannot be negative")
	}

	if c.Browser.ActionTimeout < 0 {
		return fmt.Errorf("browser.action_timeout cannot be negative")
	}

	if c.Browser.Viewport.Width < 0 || c.Browser.Viewport.Height < 0 {
		return fmt.Errorf("browser.viewport cannot be negative")
	}

	if _, err := c.TagFilter(); err != nil {
		return fmt.Errorf("tags.exclude_freeform: %w", err)
	}

	return nil
}

// RequireUrls returns the cleaned podfic urls, or ErrNoUrls when none are
// configured.
func (c *Config) RequireUrls() (podfic.Urls, error) {
	if c.Urls == nil {
		return podfic.Urls{}, ErrNoUrls
	}
	return c.Urls.Clean(), nil
}

// TagFilter compiles the freeform tag exclusions.
func (c *Config) TagFilter() (podfic.TagFilter, error) {
	return podfic.NewTagFilter(c.Tags.ExcludeFreeform)
}
