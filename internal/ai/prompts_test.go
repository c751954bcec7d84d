package ai

import (
	"strings"
	"testing"

	"cv-builder/internal/cv"
)

func TestComparePreamble_RequestsExactJSONShape(t *testing.T) {
	keys := []string{
		"compatibilityPercentage",
		"matchedSkills",
		"missingSkills",
		"experienceSuggestions",
		"summarySuggestion",
		"strengths",
		"conclusion",
	}
	for _, key := range keys {
		if !strings.Contains(comparePreamble, key) {
			t.Errorf("compare preamble should request %q in the response shape", key)
		}
	}

	if !strings.Contains(comparePreamble, "ONLY") {
		t.Error("compare preamble should demand a JSON-only response")
	}
}

func TestCompareUserContent(t *testing.T) {
	rec := cv.Record{Name: "Ana", Summary: "Backend engineer", Skills: []string{"Go"}}
	posting := "We are hiring a Go developer."

	content := compareUserContent(rec, posting)

	if !strings.Contains(content, "NAME: Ana") {
		t.Error("user content should contain the CV transcript")
	}
	if !strings.Contains(content, posting) {
		t.Error("user content should contain the posting text")
	}
	if strings.Index(content, "CANDIDATE CV:") > strings.Index(content, "JOB POSTING:") {
		t.Error("CV should precede the posting")
	}
}
