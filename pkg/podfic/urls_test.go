package podfic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrlsClean(t *testing.T) {
	urls := Urls{
		AnchorFM:    "https://anchor.fm/podfic/episodes/My-Story-e1abc?utm_source=share#top",
		GoogleDrive: "https://drive.google.com/file/d/abc123/view?usp=sharing",
		Mediafire:   "https://www.mediafire.com/file/xyz/story.mp3/file;jsessionid=42",
		Spotify:     "https://open.spotify.com/episode/4AbC?si=deadbeef",
	}

	clean := urls.Clean()

	assert.Equal(t, Urls{
		AnchorFM:    "https://anchor.fm/podfic/episodes/My-Story-e1abc",
		GoogleDrive: "https://drive.google.com/file/d/abc123/view",
		Mediafire:   "https://www.mediafire.com/file/xyz/story.mp3/file",
		Spotify:     "https://open.spotify.com/episode/4AbC",
	}, clean)

	assert.Equal(t, "https://open.spotify.com/episode/4AbC?si=deadbeef", urls.Spotify, "Clean must not modify the receiver")
}

func TestUrlsCleanIsIdempotent(t *testing.T) {
	inputs := []Urls{
		{},
		{Spotify: "https://open.spotify.com/episode/4AbC"},
		{AnchorFM: "http://anchor.fm/a/b?x=1&y=2#frag", Mediafire: "not a url?q"},
		{GoogleDrive: "https://drive.google.com/open?id=abc#x", Spotify: "https://open.spotify.com/episode/a%20b?si=1"},
	}

	for _, u := range inputs {
		once := u.Clean()
		assert.Equal(t, once, once.Clean())
	}
}

func TestUrlsCleanKeepsSchemeHostPath(t *testing.T) {
	clean := Urls{GoogleDrive: "http://drive.google.com:8080/file/d/abc?usp=sharing"}.Clean()
	assert.Equal(t, "http://drive.google.com:8080/file/d/abc", clean.GoogleDrive)
}

func TestSpotifyEmbed(t *testing.T) {
	urls := Urls{Spotify: "https://open.spotify.com/episode/4AbC"}
	assert.Equal(t, "https://open.spotify.com/embed-podcast/episode/4AbC", urls.SpotifyEmbed())
}

func TestUrlsCleanKeepsEscapedPath(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "https://x.org/a%3Bb?x", expected: "https://x.org/a%3Bb"},
		{raw: "https://x.org/a%2Fb;c", expected: "https://x.org/a%2Fb"},
		{raw: "https://x.org/a%20b;c=1/d", expected: "https://x.org/a%20b"},
		{raw: "https://x.org/a%3Bb;c#frag", expected: "https://x.org/a%3Bb"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			clean := Urls{GoogleDrive: tt.raw}.Clean()
			assert.Equal(t, tt.expected, clean.GoogleDrive)
			assert.Equal(t, clean, clean.Clean())
		})
	}
}
