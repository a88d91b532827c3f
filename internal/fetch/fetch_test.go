package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPage = `<!DOCTYPE html>
<html>
<head><title>Job</title><script>track();</script></head>
<body>
  <nav>Home | Jobs | About</nav>
  <div class="job-description">
    <h1>Senior Go Engineer</h1>
    <p>We are looking for a senior engineer with Go and SQL experience.</p>
  </div>
  <footer>Copyright 2026</footer>
</body>
</html>`

func TestJobPostingText_ExtractsMainContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPage))
	}))
	defer srv.Close()

	text, err := JobPostingText(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "SQL experience")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "track()")
}

func TestJobPostingText_FallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Plain posting text</p></body></html>`))
	}))
	defer srv.Close()

	text, err := JobPostingText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text", text)
}

func TestJobPostingText_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobPostingText(context.Background(), srv.URL)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobPostingText_InvalidURL(t *testing.T) {
	_, err := JobPostingText(context.Background(), "not-a-url")

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestJobPostingText_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>x()</script></body></html>`))
	}))
	defer srv.Close()

	_, err := JobPostingText(context.Background(), srv.URL)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "no visible text")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one  \n\n\t line two \n   \n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(input))
}
