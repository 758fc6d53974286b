// Package podfic holds the values exchanged between the scraper, the
// submission filler and the templates: the scraped Work, the user's
// declaration of its parent, and the podfic projections rendered from them.
//
// Every value is built once per run and never changed in place. Methods that
// transform a value return a new one.
package podfic
