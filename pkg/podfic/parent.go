package podfic

import (
	"errors"
	"fmt"
)

// ErrNoTumblr is returned when a tumblr url is needed but no handle is set.
var ErrNoTumblr = errors.New("parent tumblr handle is not set")

// ParentConfig is what the user declares about the parent work.
type ParentConfig struct {
	// WorkID is the parent work id on AO3
	WorkID string `yaml:"work_id" json:"work_id"`

	// Explicit marks the parent work as explicit
	Explicit bool `yaml:"explicit" json:"explicit"`

	// Tumblr is the parent author's tumblr handle, if they have one
	Tumblr *string `yaml:"tumblr,omitempty" json:"tumblr,omitempty"`
}

// TumblrURL returns the parent author's tumblr blog url.
func (c ParentConfig) TumblrURL() (string, error) {
	if c.Tumblr == nil || *c.Tumblr == "" {
		return "", fmt.Errorf("%w: set parent.tumblr in the config", ErrNoTumblr)
	}
	return tumblrURL(*c.Tumblr), nil
}

// ParentWork joins the scraped work with the user's declaration about it.
type ParentWork struct {
	Work   Work
	Config ParentConfig
}

func tumblrURL(name string) string {
	return fmt.Sprintf("https://%s.tumblr.com/", name)
}
