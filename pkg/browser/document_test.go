package browser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentHTML = `<html><body>
<div id="main">
  <h2 class="title">
     A   Title
  </h2>
  <p class="summary"><em>Hello</em> there</p>
  <a id="author" href="/users/someone">someone</a>
  <ul class="tags">
    <li><a class="tag">One</a></li>
    <li><a class="tag">Two</a></li>
  </ul>
  <input id="has.dot" value="x">
</div>
</body></html>`

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument(strings.NewReader(documentHTML), "https://example.org/works/1")
	require.NoError(t, err)
	return doc
}

func TestDocument_Reads(t *testing.T) {
	doc := newTestDocument(t)

	title, err := doc.QuerySelector(".title")
	require.NoError(t, err)
	text, err := title.Text()
	require.NoError(t, err)
	assert.Equal(t, "A Title", text)

	summary, err := doc.QuerySelector(".summary")
	require.NoError(t, err)
	markup, err := summary.InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, "<em>Hello</em> there", markup)

	author, err := doc.WaitForID("author", time.Second)
	require.NoError(t, err)
	href, err := author.Attribute("href")
	require.NoError(t, err)
	assert.Equal(t, "/users/someone", href)

	missing, err := author.Attribute("title")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestDocument_QuerySelectorAllKeepsOrder(t *testing.T) {
	doc := newTestDocument(t)

	tags, err := doc.QuerySelectorAll(".tags .tag")
	require.NoError(t, err)
	require.Len(t, tags, 2)

	first, _ := tags[0].Text()
	second, _ := tags[1].Text()
	assert.Equal(t, []string{"One", "Two"}, []string{first, second})

	none, err := doc.QuerySelectorAll(".freeform.tags .tag")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocument_MissingElements(t *testing.T) {
	doc := newTestDocument(t)

	_, err := doc.QuerySelector(".series .position")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = doc.WaitForID("nope", time.Second)
	assert.ErrorIs(t, err, ErrNotFound)

	main, err := doc.WaitForID("main", time.Second)
	require.NoError(t, err)
	_, err = main.QuerySelector("table")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocument_IDsNeedingEscapes(t *testing.T) {
	doc := newTestDocument(t)

	el, err := doc.WaitForID("has.dot", time.Second)
	require.NoError(t, err)
	value, _ := el.Attribute("value")
	assert.Equal(t, "x", value)
}

func TestDocument_WritesAreRejected(t *testing.T) {
	doc := newTestDocument(t)
	el, err := doc.WaitForID("has.dot", time.Second)
	require.NoError(t, err)

	assert.ErrorIs(t, el.Click(), ErrReadOnly)
	assert.ErrorIs(t, el.Check(), ErrReadOnly)
	assert.ErrorIs(t, el.Type("text"), ErrReadOnly)
	assert.ErrorIs(t, el.Press(KeyEnter), ErrReadOnly)
	assert.ErrorIs(t, el.SelectByLabel("English"), ErrReadOnly)
}

func TestDocument_Goto(t *testing.T) {
	doc := newTestDocument(t)
	assert.Equal(t, "https://example.org/works/1", doc.URL())

	require.NoError(t, doc.Goto("https://example.org/works/2"))
	assert.Equal(t, "https://example.org/works/2", doc.URL())
}
