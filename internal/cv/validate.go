package cv

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a dotted field path (e.g. "experiences.2.endDate") to a
// human-readable message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var linkedinRx = regexp.MustCompile(`^https?://.+`)

// dateLayouts accepted for start/end dates, longest first. Year and
// year-month strings sort chronologically, which the overlap check relies on.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report errors under json field names so paths match the wire format.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("cvdate", func(fl validator.FieldLevel) bool {
			_, ok := parseDate(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
			return linkedinRx.MatchString(fl.Field().String())
		})

		v.RegisterStructValidation(experienceRules, Experience{})
		v.RegisterStructValidation(educationRules, Education{})
		v.RegisterStructValidation(recordRules, Record{})

		validatorInst = v
	})
	return validatorInst
}

func experienceRules(sl validator.StructLevel) {
	exp := sl.Current().Interface().(Experience)
	checkPeriod(sl, exp.StartDate, exp.EndDate, exp.IsCurrent)
}

func educationRules(sl validator.StructLevel) {
	edu := sl.Current().Interface().(Education)
	checkPeriod(sl, edu.StartDate, edu.EndDate, edu.IsCurrent)
}

// checkPeriod enforces the per-entry temporal rules: an end date is required
// unless the entry is current, and cannot precede the start date. An empty
// end date means absent, never epoch zero.
func checkPeriod(sl validator.StructLevel, startDate, endDate string, isCurrent bool) {
	if isCurrent {
		return
	}
	if endDate == "" {
		sl.ReportError(endDate, "endDate", "EndDate", "end_required", "")
		return
	}
	start, okStart := parseDate(startDate)
	end, okEnd := parseDate(endDate)
	if okStart && okEnd && end.Before(start) {
		sl.ReportError(endDate, "endDate", "EndDate", "end_before_start", "")
	}
}

// recordRules enforces the collection-level invariants over experiences:
// no two entries may overlap, and at most one may be marked current.
// The overlap test is inclusive on both bounds; the effective end of a
// current entry is evaluated at validation time.
func recordRules(sl validator.StructLevel) {
	rec := sl.Current().Interface().(Record)
	now := time.Now()

	type interval struct {
		start, end time.Time
		ok         bool
	}
	intervals := make([]interval, len(rec.Experiences))
	for i, exp := range rec.Experiences {
		start, okStart := parseDate(exp.StartDate)
		if !okStart {
			continue
		}
		end := now
		if !exp.IsCurrent {
			var okEnd bool
			end, okEnd = parseDate(exp.EndDate)
			if !okEnd {
				continue
			}
		}
		intervals[i] = interval{start: start, end: end, ok: true}
	}

	// O(n²) over all unordered pairs; entry counts are small and bounded.
	// Only the later-indexed entry of an overlapping pair is flagged.
	for j := 1; j < len(intervals); j++ {
		if !intervals[j].ok {
			continue
		}
		for i := 0; i < j; i++ {
			if !intervals[i].ok {
				continue
			}
			if !intervals[j].end.Before(intervals[i].start) && !intervals[i].end.Before(intervals[j].start) {
				sl.ReportError(rec.Experiences[j].StartDate,
					fmt.Sprintf("experiences[%d].startDate", j), "StartDate", "overlap", "")
				break
			}
		}
	}

	seenCurrent := false
	for i, exp := range rec.Experiences {
		if !exp.IsCurrent {
			continue
		}
		if seenCurrent {
			sl.ReportError(exp.IsCurrent,
				fmt.Sprintf("experiences[%d].isCurrent", i), "IsCurrent", "single_current", "")
		}
		seenCurrent = true
	}
}

// Validate checks rec against the full schema. On success it returns the
// normalized record; on failure it returns an Errors map keyed by dotted
// field path. Validation is all-or-nothing over the whole record.
func Validate(rec Record) (Record, Errors) {
	err := getValidator().Struct(rec)
	if err == nil {
		return rec, nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Record{}, Errors{"general": err.Error()}
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fieldPath(fe.Namespace())] = messageFor(fe)
	}
	return Record{}, out
}

// fieldPath converts a validator namespace such as
// "Record.experiences[1].endDate" into "experiences.1.endDate".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "httpurl":
		return "must be a valid URL (e.g. https://linkedin.com/in/username)"
	case "cvdate":
		return "must be a date like 2020, 2020-06 or 2020-06-15"
	case "max":
		return fmt.Sprintf("must not exceed %s items", fe.Param())
	case "unique":
		return "must not contain duplicate entries"
	case "end_required":
		return "end date is required unless marked as current"
	case "end_before_start":
		return "end date cannot be earlier than the start date"
	case "overlap":
		return "this period overlaps another experience"
	case "single_current":
		return "only one experience may be marked as current"
	default:
		return fe.Error()
	}
}
