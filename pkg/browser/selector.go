package browser

import "strings"

var cssStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\a `,
)

// AttrSelector builds a CSS selector matching tag elements whose attr equals
// value exactly, quoting value so any text is safe to embed.
func AttrSelector(tag, attr, value string) string {
	return tag + "[" + attr + `="` + cssStringEscaper.Replace(value) + `"]`
}

// IDSelector matches the element with the given id, even when the id is not
// a valid CSS identifier.
func IDSelector(id string) string {
	return AttrSelector("", "id", id)
}
