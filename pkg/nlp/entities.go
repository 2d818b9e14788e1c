package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robohr/ai-service/pkg/models"
)

var (
	specificDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
		regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{4})\b`),
		regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2})\b`),
	}
	employeeIDPattern    = regexp.MustCompile(`(?i)\b(?:employee|emp)\s*(?:id|#)?\s*(\d+)\b`)
	bareIDPattern        = regexp.MustCompile(`(?i)\bid\s*:?\s*(\d+)\b`)
	employeeNamePattern  = regexp.MustCompile(`\b([A-Z][a-z]+)\s+([A-Z][a-z]+)\b`)
	numberPattern        = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
	leaveReasonPatterns  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)for (.+?)(?:\.|$)`),
		regexp.MustCompile(`(?i)because (.+?)(?:\.|$)`),
		regexp.MustCompile(`(?i)due to (.+?)(?:\.|$)`),
	}
)

var departments = []string{
	"engineering", "human resources", "hr", "sales", "marketing",
	"finance", "it", "operations", "design", "legal",
}

var titleCaser = cases.Title(language.English)

// extractEntities runs the independent entity scans over the raw text.
// Name matching depends on the original casing, everything else works on the
// lowercased form.
func extractEntities(raw string) models.Entities {
	lowered := strings.ToLower(raw)

	entities := models.Entities{}
	extractDates(lowered, entities)
	extractEmployeeRefs(raw, lowered, entities)
	extractNumbers(lowered, entities)
	extractDepartments(lowered, entities)
	return entities
}

func extractDates(text string, entities models.Entities) {
	now := time.Now()
	relative := []struct {
		phrase string
		date   time.Time
	}{
		{"today", now},
		{"tomorrow", now.AddDate(0, 0, 1)},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"this week", now},
		{"next week", now.AddDate(0, 0, 7)},
		{"last week", now.AddDate(0, 0, -7)},
	}

	for _, candidate := range relative {
		if strings.Contains(text, candidate.phrase) {
			entities["date"] = candidate.date.Format("2006-01-02")
			break
		}
	}

	for _, pattern := range specificDatePatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			entities["specific_date"] = match[1]
			break
		}
	}
}

func extractEmployeeRefs(raw, lowered string, entities models.Entities) {
	if match := employeeIDPattern.FindStringSubmatch(lowered); match != nil {
		if id, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			entities["employee_id"] = id
		}
	} else if match := bareIDPattern.FindStringSubmatch(lowered); match != nil {
		if id, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			entities["employee_id"] = id
		}
	}

	if match := employeeNamePattern.FindStringSubmatch(raw); match != nil {
		entities["employee_name"] = match[1] + " " + match[2]
	}
}

// extractNumbers types the first number found by the surrounding context.
func extractNumbers(text string, entities models.Entities) {
	match := numberPattern.FindStringSubmatch(text)
	if match == nil {
		return
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return
	}

	switch {
	case containsAny(text, "hour", "hrs"):
		entities["hours"] = value
	case containsAny(text, "day"):
		entities["days"] = int64(value)
	case containsAny(text, "dollar", "$", "amount"):
		entities["amount"] = value
	default:
		entities["number"] = value
	}
}

func extractDepartments(text string, entities models.Entities) {
	for _, dept := range departments {
		if strings.Contains(text, dept) {
			entities["department"] = titleCaser.String(dept)
			break
		}
	}
}

// extractLeaveReason pulls a reason phrase out of a leave request, falling
// back to a category derived from keywords.
func extractLeaveReason(text string) string {
	for _, pattern := range leaveReasonPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return strings.TrimSpace(match[1])
		}
	}

	switch {
	case containsAny(text, "sick", "illness", "doctor"):
		return "Medical leave"
	case containsAny(text, "vacation", "holiday", "trip"):
		return "Vacation"
	case containsAny(text, "personal", "family"):
		return "Personal leave"
	}
	return "Leave request"
}

func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
