package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumeboost-api/internal/middleware"
	"github.com/yourusername/resumeboost-api/internal/model"
	"github.com/yourusername/resumeboost-api/internal/render"
	"github.com/yourusername/resumeboost-api/internal/service"
	"github.com/yourusername/resumeboost-api/internal/upload"
)

// Plain-text bodies sent on failure. Clients match on these exactly.
const (
	MsgResumeReadError = "Error reading resume file."
	MsgPDFReadError    = "Error reading PDF file."
	MsgCompletionError = "OpenAI API error."
	MsgUploadMissing   = "No resume file uploaded."
	MsgJobDescMissing  = "Job description is required."
	MsgUploadTooLarge  = "Resume file is too large."
	MsgRenderError     = "Error rendering results."
)

const (
	formFieldResume  = "resume"
	formFieldJobDesc = "jobdesc"
	indexPage        = "index.html"
	contentTypeHTML  = "text/html; charset=utf-8"
)

type AnalyzeHandler struct {
	analyzer *service.Analyzer
	stager   *upload.Stager
	assets   fs.FS
}

func NewAnalyzeHandler(analyzer *service.Analyzer, stager *upload.Stager, assets fs.FS) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, stager: stager, assets: assets}
}

// Index handles GET /
// Serves the landing page with the upload form
func (h *AnalyzeHandler) Index(c *gin.Context) {
	page, err := fs.ReadFile(h.assets, indexPage)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read landing page")
		c.String(http.StatusInternalServerError, "Landing page unavailable.")
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, page)
}

// Analyze handles POST /analyze
// Accepts a resume file and a job description, returns an HTML page of suggestions
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	header, err := c.FormFile(formFieldResume)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("requestId", requestID).Int64("limit", tooLarge.Limit).Msg("Upload exceeded size limit")
			c.String(http.StatusRequestEntityTooLarge, MsgUploadTooLarge)
			return
		}
		h.fail(c, fmt.Errorf("%w: %v", service.ErrUploadMissing, err))
		return
	}

	jobDesc := c.PostForm(formFieldJobDesc)
	if strings.TrimSpace(jobDesc) == "" {
		c.String(http.StatusBadRequest, MsgJobDescMissing)
		return
	}

	staged, err := h.stager.Stage(header)
	if err != nil {
		h.fail(c, &service.ExtractionError{Err: err})
		return
	}
	defer staged.Close()

	data, err := staged.Bytes()
	if err != nil {
		h.fail(c, &service.ExtractionError{Err: err})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), model.AnalysisRequest{
		ResumeBytes:    data,
		ResumeFilename: header.Filename,
		JobDescription: jobDesc,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	html, err := render.Results(analysis.JobDescription, analysis.Suggestions)
	if err != nil {
		log.Error().Err(err).Str("requestId", requestID).Msg("Failed to render results")
		c.String(http.StatusInternalServerError, MsgRenderError)
		return
	}

	render.Write(c, html)
}

// fail logs err once and maps it to a fixed status and message. Client
// errors log at warn, server errors at error.
func (h *AnalyzeHandler) fail(c *gin.Context, err error) {
	status, msg := classify(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Err(err).
		Str("requestId", middleware.GetRequestID(c)).
		Int("status", status).
		Msg("Analyze request failed")

	c.String(status, msg)
}

func classify(err error) (int, string) {
	var extractErr *service.ExtractionError

	switch {
	case errors.Is(err, service.ErrUploadMissing):
		return http.StatusBadRequest, MsgUploadMissing
	case errors.As(err, &extractErr):
		if extractErr.PDF {
			return http.StatusInternalServerError, MsgPDFReadError
		}
		return http.StatusInternalServerError, MsgResumeReadError
	default:
		// *service.CompletionError and anything unclassified
		return http.StatusInternalServerError, MsgCompletionError
	}
}
