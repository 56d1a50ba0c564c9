package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var resultsTmpl = template.Must(
	template.New("results.html").
		Funcs(template.FuncMap{"nl2br": nl2br}).
		ParseFS(templateFS, "templates/results.html"),
)

// nl2br escapes s and turns its line breaks into <br> tags.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

type resultsPage struct {
	JobDescription string
	Suggestions    []string
}

// Results renders the suggestions page. Every value is HTML-escaped.
func Results(jobDescription string, suggestions []string) (string, error) {
	var buf bytes.Buffer
	if err := resultsTmpl.Execute(&buf, resultsPage{
		JobDescription: jobDescription,
		Suggestions:    suggestions,
	}); err != nil {
		return "", fmt.Errorf("rendering results: %w", err)
	}
	return buf.String(), nil
}

// Write sends an HTML document with status 200.
func Write(c *gin.Context, html string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
