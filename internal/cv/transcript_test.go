package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_FieldOrderAndContent(t *testing.T) {
	rec := Record{
		Name:     "Ana",
		Location: "Madrid",
		Summary:  "Backend engineer.",
		Experiences: []Experience{
			{Company: "Acme", Title: "Dev", StartDate: "2020-01", EndDate: "2021-01", Description: "Built APIs"},
			{Company: "Globex", Title: "Senior Dev", StartDate: "2021-02", Description: "Leads a team", IsCurrent: true},
		},
		Education: []Education{
			{Institution: "UAM", Degree: "CS", StartDate: "2016", EndDate: "2020"},
		},
		Skills: []string{"Go", "SQL", "Docker"},
	}

	out := rec.Transcript()

	require.Contains(t, out, "NAME: Ana")
	assert.Contains(t, out, "LOCATION: Madrid")
	assert.Contains(t, out, "PROFESSIONAL SUMMARY:\nBackend engineer.")
	assert.Contains(t, out, "- Dev at Acme (2020-01 – 2021-01)")
	assert.Contains(t, out, "  Built APIs")
	assert.Contains(t, out, "- Senior Dev at Globex (2021-02 – Present)")
	assert.Contains(t, out, "- CS at UAM (2016 – 2020)")
	assert.Contains(t, out, "SKILLS: Go, SQL, Docker")

	// Sections appear in the documented order.
	assert.Less(t, strings.Index(out, "NAME:"), strings.Index(out, "WORK EXPERIENCE:"))
	assert.Less(t, strings.Index(out, "WORK EXPERIENCE:"), strings.Index(out, "EDUCATION:"))
	assert.Less(t, strings.Index(out, "EDUCATION:"), strings.Index(out, "SKILLS:"))

	// Deterministic: same record, same transcript.
	assert.Equal(t, out, rec.Transcript())
}

func TestTranscript_OmitsEmptySections(t *testing.T) {
	rec := Record{Name: "Ana", Summary: "s"}
	out := rec.Transcript()
	assert.NotContains(t, out, "LOCATION:")
	assert.NotContains(t, out, "WORK EXPERIENCE:")
	assert.NotContains(t, out, "EDUCATION:")
	assert.NotContains(t, out, "SKILLS:")
}

func TestTranscript_InProgressEducation(t *testing.T) {
	rec := Record{
		Name: "Ana",
		Education: []Education{
			{Institution: "UAM", Degree: "CS", StartDate: "2023", IsCurrent: true},
		},
	}
	assert.Contains(t, rec.Transcript(), "(2023 – In progress)")
}
