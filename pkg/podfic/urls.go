package podfic

import (
	"net/url"
	"strings"
)

// Urls are the links to the hosted podfic audio.
type Urls struct {
	// AnchorFM is the Anchor FM episode url, as found via the UI
	AnchorFM string `yaml:"anchor_fm" json:"anchor_fm"`

	// GoogleDrive is the Google Drive sharing url
	GoogleDrive string `yaml:"google_drive" json:"google_drive"`

	// Mediafire is the Mediafire sharing url
	Mediafire string `yaml:"mediafire" json:"mediafire"`

	// Spotify is the episode url from 'Share > Copy Episode Link'
	Spotify string `yaml:"spotify" json:"spotify"`
}

// Clean returns a copy with query strings, fragments and path parameters
// removed from every link.
func (u Urls) Clean() Urls {
	return Urls{
		AnchorFM:    cleanURL(u.AnchorFM),
		GoogleDrive: cleanURL(u.GoogleDrive),
		Mediafire:   cleanURL(u.Mediafire),
		Spotify:     cleanURL(u.Spotify),
	}
}

// SpotifyEmbed returns the embeddable player url for the Spotify episode.
func (u Urls) SpotifyEmbed() string {
	return strings.Replace(u.Spotify, "episode", "embed-podcast/episode", 1)
}

// cleanURL keeps scheme, host and path. Unparseable input is cut at the
// first query, fragment or parameter delimiter instead.
func cleanURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexAny(raw, "?#;"); i >= 0 {
			return raw[:i]
		}
		return raw
	}

	parsed.RawQuery = ""
	parsed.ForceQuery = false
	parsed.Fragment = ""
	parsed.RawFragment = ""
	// Parameters start at a literal ';' only, never at an escaped %3B.
	if path, _, found := strings.Cut(parsed.EscapedPath(), ";"); found {
		unescaped, err := url.PathUnescape(path)
		if err != nil {
			return parsed.String()
		}
		parsed.Path = unescaped
		parsed.RawPath = path
	}
	return parsed.String()
}
