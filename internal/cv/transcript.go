package cv

import (
	"fmt"
	"strings"
)

// Transcript renders the record as a flat, human-readable text block for the
// compatibility analysis prompt. Field order is deterministic: name, location,
// summary, experiences in insertion order, education, skills.
func (r Record) Transcript() string {
	var lines []string

	lines = append(lines, "NAME: "+r.Name)
	if r.Location != "" {
		lines = append(lines, "LOCATION: "+r.Location)
	}
	if r.Summary != "" {
		lines = append(lines, "\nPROFESSIONAL SUMMARY:\n"+r.Summary)
	}

	if len(r.Experiences) > 0 {
		lines = append(lines, "\nWORK EXPERIENCE:")
		for _, exp := range r.Experiences {
			until := exp.EndDate
			if exp.IsCurrent {
				until = "Present"
			}
			lines = append(lines, fmt.Sprintf("- %s at %s (%s – %s)", exp.Title, exp.Company, exp.StartDate, until))
			if exp.Description != "" {
				lines = append(lines, "  "+exp.Description)
			}
		}
	}

	if len(r.Education) > 0 {
		lines = append(lines, "\nEDUCATION:")
		for _, edu := range r.Education {
			until := edu.EndDate
			if edu.IsCurrent {
				until = "In progress"
			}
			lines = append(lines, fmt.Sprintf("- %s at %s (%s – %s)", edu.Degree, edu.Institution, edu.StartDate, until))
		}
	}

	if len(r.Skills) > 0 {
		lines = append(lines, "\nSKILLS: "+strings.Join(r.Skills, ", "))
	}

	return strings.Join(lines, "\n")
}
