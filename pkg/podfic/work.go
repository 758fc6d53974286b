package podfic

import (
	"errors"
	"fmt"
)

// ErrRatingCount is returned when a work does not carry exactly one rating.
var ErrRatingCount = errors.New("work must have exactly one rating")

// SeriesPart is a work's position in a series.
type SeriesPart struct {
	Series string
	Part   int
}

// Work is everything scraped about a work on AO3.
//
// Tag categories keep the order the archive renders them in and are not
// deduplicated.
type Work struct {
	ID        string
	URL       string
	Title     string
	Author    string
	AuthorURL string

	// Summary is the summary markup exactly as rendered.
	Summary string

	Rating       []string
	Warning      []string
	Category     []string
	Fandom       []string
	Relationship []string
	Character    []string
	Freeform     []string

	// SeriesPart is nil when the work is not part of a series. Works in
	// several series only keep the first one.
	SeriesPart *SeriesPart
}

// SingleRating returns the work's rating. The new work form takes a single
// rating, so anything other than one is an error.
func (w Work) SingleRating() (string, error) {
	if len(w.Rating) != 1 {
		return "", fmt.Errorf("%w: work %s has %d (%v)", ErrRatingCount, w.ID, len(w.Rating), w.Rating)
	}
	return w.Rating[0], nil
}

// WithoutFreeform returns a copy of w whose freeform tags exclude any tag
// matched by filter.
func (w Work) WithoutFreeform(filter TagFilter) Work {
	kept := make([]string, 0, len(w.Freeform))
	for _, tag := range w.Freeform {
		if !filter.Match(tag) {
			kept = append(kept, tag)
		}
	}
	w.Freeform = kept
	return w
}

// SummaryText returns the summary as plain text, one paragraph per line.
func (w Work) SummaryText() string {
	return htmlToText(w.Summary)
}
