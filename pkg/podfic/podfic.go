package podfic

// Renderer turns a template context into text.
type Renderer interface {
	Render(data any) (string, error)
}

// PodficWork is the podfic listing posted to AO3.
type PodficWork struct {
	Author        string
	Tumblr        string
	Parent        ParentWork
	PostTemplate  Renderer
	NotesTemplate Renderer
	Urls          Urls
}

// TumblrURL returns the podficcer's tumblr blog url.
func (p PodficWork) TumblrURL() string {
	return tumblrURL(p.Tumblr)
}

// Content renders the work body. The template sees the work as podfic_work.
func (p PodficWork) Content() (string, error) {
	return p.PostTemplate.Render(map[string]any{"podfic_work": p})
}

// Notes renders the end notes. The template sees the work as podfic_work.
func (p PodficWork) Notes() (string, error) {
	return p.NotesTemplate.Render(map[string]any{"podfic_work": p})
}

// PodficEpisode is the podcast episode published alongside the podfic.
type PodficEpisode struct {
	Author   string
	Tumblr   string
	Parent   ParentWork
	Template Renderer
}

// TumblrURL returns the podficcer's tumblr blog url.
func (e PodficEpisode) TumblrURL() string {
	return tumblrURL(e.Tumblr)
}

// Description renders the episode description. The template sees the
// episode as podfic_episode.
func (e PodficEpisode) Description() (string, error) {
	return e.Template.Render(map[string]any{"podfic_episode": e})
}
