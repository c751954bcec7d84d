package ai

// Analysis is the structured compatibility result between a CV and a job
// posting. The shape is requested from the model by prompt instruction; the
// response is parsed but not validated beyond decoding.
type Analysis struct {
	CompatibilityPercentage int      `json:"compatibilityPercentage"`
	MatchedSkills           []string `json:"matchedSkills"`
	MissingSkills           []string `json:"missingSkills"`
	ExperienceSuggestions   []string `json:"experienceSuggestions"`
	SummarySuggestion       string   `json:"summarySuggestion"`
	Strengths               []string `json:"strengths"`
	Conclusion              string   `json:"conclusion"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
