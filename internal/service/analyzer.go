package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumeboost-api/internal/model"
)

// Analyzer runs the resume pipeline: extract, prompt, complete, parse.
type Analyzer struct {
	completer Completer
}

func NewAnalyzer(completer Completer) *Analyzer {
	return &Analyzer{completer: completer}
}

// Analyze returns an *ExtractionError or *CompletionError on failure.
func (a *Analyzer) Analyze(ctx context.Context, req model.AnalysisRequest) (*model.Analysis, error) {
	resumeText, err := ExtractText(req.ResumeBytes, req.ResumeFilename)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("filename", req.ResumeFilename).
		Int("bytes", len(req.ResumeBytes)).
		Int("textLen", len(resumeText)).
		Msg("Resume text extracted")

	prompt := BuildPrompt(resumeText, req.JobDescription)

	start := time.Now()
	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		var completionErr *CompletionError
		if !errors.As(err, &completionErr) {
			err = &CompletionError{Err: err}
		}
		return nil, err
	}

	suggestions := ParseSuggestions(raw)

	log.Info().
		Int("promptLen", len(prompt)).
		Int("responseLen", len(raw)).
		Int("suggestions", len(suggestions)).
		Dur("latency", time.Since(start)).
		Msg("Completion parsed")

	return &model.Analysis{
		JobDescription: req.JobDescription,
		Suggestions:    suggestions,
	}, nil
}
