package browser

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/podfickle/podfickle/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timeoutRecorder is a Page that remembers the timeout ByID asked for.
type timeoutRecorder struct {
	*Document
	timeout time.Duration
}

func (p *timeoutRecorder) WaitForID(id string, timeout time.Duration) (Element, error) {
	p.timeout = timeout
	return p.Document.WaitForID(id, timeout)
}

func TestNewAccessor_RejectsBadBaseURL(t *testing.T) {
	doc := newTestDocument(t)

	_, err := NewAccessor(doc, "archiveofourown.org", nil)
	assert.Error(t, err)

	_, err = NewAccessor(doc, "://bad", nil)
	assert.Error(t, err)
}

func TestAccessor_Navigate(t *testing.T) {
	var buf bytes.Buffer
	doc := newTestDocument(t)
	accessor, err := NewAccessor(doc, "https://archiveofourown.org", logging.NewWriterLogger("test", &buf))
	require.NoError(t, err)

	url, err := accessor.Navigate("/works/123")
	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/works/123", url)
	assert.Equal(t, url, doc.URL())
	assert.Contains(t, buf.String(), "Navigating to 'https://archiveofourown.org/works/123'")

	url, err = accessor.Navigate("/")
	require.NoError(t, err)
	assert.Equal(t, "https://archiveofourown.org/", url)
}

func TestAccessor_Resolve(t *testing.T) {
	accessor, err := NewAccessor(newTestDocument(t), "https://archiveofourown.org/works/1", nil)
	require.NoError(t, err)

	tests := map[string]string{
		"/users/someone/pseuds/someone": "https://archiveofourown.org/users/someone/pseuds/someone",
		"https://other.example/x":       "https://other.example/x",
		"works/new":                     "https://archiveofourown.org/works/works/new",
	}
	for ref, expected := range tests {
		got, err := accessor.Resolve(ref)
		require.NoError(t, err)
		assert.Equal(t, expected, got, ref)
	}
}

func TestAccessor_ByID(t *testing.T) {
	page := &timeoutRecorder{Document: newTestDocument(t)}
	accessor, err := NewAccessor(page, "https://archiveofourown.org", nil)
	require.NoError(t, err)

	el, err := accessor.ByID("author")
	require.NoError(t, err)
	assert.Equal(t, DefaultLocateTimeout, page.timeout)

	text, err := accessor.Text(el)
	require.NoError(t, err)
	assert.Equal(t, "someone", text)

	href, err := accessor.Attribute(el, "href")
	require.NoError(t, err)
	assert.Equal(t, "/users/someone", href)

	_, err = accessor.ByID("work_title")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, strings.Contains(err.Error(), "#work_title"))
}

func TestAccessor_WithLocateTimeout(t *testing.T) {
	page := &timeoutRecorder{Document: newTestDocument(t)}
	accessor, err := NewAccessor(page, "https://archiveofourown.org", nil, WithLocateTimeout(3*time.Second))
	require.NoError(t, err)

	_, _ = accessor.ByID("author")
	assert.Equal(t, 3*time.Second, page.timeout)
}
