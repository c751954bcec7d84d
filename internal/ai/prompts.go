package ai

import (
	"fmt"

	"cv-builder/internal/cv"
)

const improvePreamble = `You are an expert professional résumé writer. Improve the following ` +
	`professional summary, making it more impactful, clear and results-oriented. ` +
	`Answer with the improved summary only, in the language of the original.`

const comparePreamble = `You are an expert in human resources and talent selection. Analyze the ` +
	`compatibility between the provided CV and job posting.
Respond ONLY with valid JSON with exactly this structure:
{
  "compatibilityPercentage": <number from 0 to 100>,
  "matchedSkills": [<skills from the CV that match the posting>],
  "missingSkills": [<skills the posting asks for that the CV lacks>],
  "experienceSuggestions": [<concrete suggestions to improve the experience section>],
  "summarySuggestion": "<suggestion to improve the professional summary>",
  "strengths": [<strong points of the CV for this posting>],
  "conclusion": "<overall compatibility conclusion>"
}
Be specific and constructive. Answer in the language of the CV.`

// compareUserContent pairs the serialized CV with the posting text in a
// single user message.
func compareUserContent(rec cv.Record, posting string) string {
	return fmt.Sprintf("CANDIDATE CV:\n%s\n\n---\n\nJOB POSTING:\n%s", rec.Transcript(), posting)
}
