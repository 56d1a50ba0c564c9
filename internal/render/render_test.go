package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults_SuggestionsInOrder(t *testing.T) {
	html, err := Results("Backend role", []string{"Add metrics", "Quantify impact", "Tailor keywords"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	a := strings.Index(html, "<li>Add metrics</li>")
	b := strings.Index(html, "<li>Quantify impact</li>")
	c := strings.Index(html, "<li>Tailor keywords</li>")
	require.True(t, a >= 0 && b >= 0 && c >= 0, html)
	assert.True(t, a < b && b < c)
}

func TestResults_NewlinesBecomeBreaks(t *testing.T) {
	html, err := Results("Line one\nLine two\r\nLine three", nil)
	require.NoError(t, err)

	assert.Contains(t, html, "Line one<br>Line two<br>Line three")
}

func TestResults_EscapesUserAndModelText(t *testing.T) {
	html, err := Results(
		"<script>alert('jd')</script>\nsecond & last",
		[]string{`<img src=x onerror="alert(1)">`, "• Use action verbs"},
	)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;script&gt;alert(&#39;jd&#39;)&lt;/script&gt;<br>second &amp; last")
	assert.Contains(t, html, "<li>• Use action verbs</li>")
}

func TestResults_EmptySuggestions(t *testing.T) {
	html, err := Results("job", []string{})
	require.NoError(t, err)

	assert.NotContains(t, html, "<li>")
	assert.Contains(t, html, "<ul>")
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Write(c, "<p>hi</p>")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hi</p>", w.Body.String())
}
