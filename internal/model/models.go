package model

// AnalysisRequest is one submission from the analyze form. It lives for a
// single request and is never stored.
type AnalysisRequest struct {
	ResumeBytes    []byte
	ResumeFilename string
	JobDescription string
}

// Analysis is the pipeline output handed to the renderer
type Analysis struct {
	JobDescription string
	Suggestions    []string
}
