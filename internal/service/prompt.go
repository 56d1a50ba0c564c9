package service

import "fmt"

const analyzePromptTemplate = `Here is a resume:
%s

Here is a job description:
%s

How can this resume be improved to better match the job description? Give specific, actionable suggestions.`

// BuildPrompt fills the fixed analysis template. Inputs are passed through
// untouched; oversized prompts are left for the completion API to reject.
func BuildPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(analyzePromptTemplate, resumeText, jobDescription)
}
