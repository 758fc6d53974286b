package ao3

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/podfickle/podfickle/pkg/browser"
	"github.com/podfickle/podfickle/pkg/podfic"
)

// ErrSeriesLabel is returned when a work is in a series but the part number
// cannot be read from the series label.
var ErrSeriesLabel = errors.New("unrecognised series label")

// LoadWork scrapes the work page for id.
func (c *Client) LoadWork(id string) (podfic.Work, error) {
	c.logger.Infof("Loading work data for '%s'", id)

	workURL, err := c.accessor.Navigate("/works/" + url.PathEscape(id))
	if err != nil {
		return podfic.Work{}, err
	}

	work := podfic.Work{ID: id, URL: workURL}

	if work.Title, err = c.requiredText(c.selectors.Title); err != nil {
		return podfic.Work{}, err
	}

	byline, err := c.accessor.Query(c.selectors.Byline)
	if err != nil {
		return podfic.Work{}, err
	}
	if work.Author, err = c.accessor.Text(byline); err != nil {
		return podfic.Work{}, err
	}
	href, err := c.accessor.Attribute(byline, "href")
	if err != nil {
		return podfic.Work{}, err
	}
	if work.AuthorURL, err = c.accessor.Resolve(href); err != nil {
		return podfic.Work{}, err
	}

	if work.Summary, err = c.summary(); err != nil {
		return podfic.Work{}, err
	}

	categories := []struct {
		name string
		tags *[]string
	}{
		{CategoryRating, &work.Rating},
		{CategoryWarning, &work.Warning},
		{CategoryCategory, &work.Category},
		{CategoryFandom, &work.Fandom},
		{CategoryRelationship, &work.Relationship},
		{CategoryCharacter, &work.Character},
		{CategoryFreeform, &work.Freeform},
	}
	for _, category := range categories {
		if *category.tags, err = c.loadTags(category.name); err != nil {
			return podfic.Work{}, err
		}
	}

	if work.SeriesPart, err = c.seriesPart(); err != nil {
		return podfic.Work{}, fmt.Errorf("work %s: %w", id, err)
	}

	return work, nil
}

func (c *Client) requiredText(selector string) (string, error) {
	el, err := c.accessor.Query(selector)
	if err != nil {
		return "", err
	}
	return c.accessor.Text(el)
}

// summary returns the summary markup, empty for works without one.
func (c *Client) summary() (string, error) {
	el, err := c.accessor.Query(c.selectors.Summary)
	if errors.Is(err, browser.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return el.InnerHTML()
}

func (c *Client) loadTags(category string) ([]string, error) {
	els, err := c.accessor.QueryAll(c.selectors.TagsIn(category))
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(els))
	for _, el := range els {
		tag, err := c.accessor.Text(el)
		if err != nil {
			return nil, fmt.Errorf("read %s tag: %w", category, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// seriesPart reads the first series the work belongs to. Works in no series
// have none; a series label without a part number is an error.
func (c *Client) seriesPart() (*podfic.SeriesPart, error) {
	position, err := c.accessor.Query(c.selectors.Series)
	if errors.Is(err, browser.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	link, err := position.QuerySelector(c.selectors.SeriesLink)
	if errors.Is(err, browser.ErrNotFound) {
		return nil, fmt.Errorf("%w: no series link", ErrSeriesLabel)
	}
	if err != nil {
		return nil, err
	}
	series, err := c.accessor.Text(link)
	if err != nil {
		return nil, err
	}

	label, err := c.accessor.Text(position)
	if err != nil {
		return nil, err
	}
	match := c.selectors.SeriesPart.FindStringSubmatch(label)
	if match == nil {
		return nil, fmt.Errorf("%w: no part number in %q", ErrSeriesLabel, label)
	}
	part, err := strconv.Atoi(match[1])
	if err != nil || part < 1 {
		return nil, fmt.Errorf("%w: invalid part number in %q", ErrSeriesLabel, label)
	}

	return &podfic.SeriesPart{Series: series, Part: part}, nil
}
