package podfic

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlToText flattens summary markup into plain text. Block elements and
// <br> become line breaks, runs of whitespace collapse and empty lines are
// dropped.
func htmlToText(markup string) string {
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return strings.TrimSpace(markup)
	}

	var builder strings.Builder
	for _, n := range nodes {
		writeText(n, &builder)
	}
	return tidyLines(builder.String())
}

func writeText(n *html.Node, builder *strings.Builder) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		builder.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if isSkippedElement(tag) {
			return
		}
		if tag == "br" {
			builder.WriteString("\n")
			return
		}
		block := isBlockElement(tag)
		if block {
			builder.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(c, builder)
		}
		if block {
			builder.WriteString("\n")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, builder)
	}
}

// collapseSpace turns every run of whitespace into a single space.
func collapseSpace(s string) string {
	var builder strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			builder.WriteByte(' ')
			space = false
		}
		builder.WriteRune(r)
	}
	if space {
		builder.WriteByte(' ')
	}
	return builder.String()
}

// tidyLines trims every line and drops empty ones.
func tidyLines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// isSkippedElement returns true for elements whose content is never text
func isSkippedElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "iframe", "embed", "object", "svg":
		return true
	}
	return false
}

// isBlockElement returns true for elements that start a new line
func isBlockElement(tagName string) bool {
	switch tagName {
	case "div", "p", "section", "article", "header", "footer", "aside",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "table", "tr", "blockquote", "pre", "hr":
		return true
	}
	return false
}
