package nlp

import (
	"regexp"
	"strings"

	"github.com/robohr/ai-service/pkg/models"
)

type intentPatterns struct {
	intent   models.Intent
	patterns []*regexp.Regexp
}

// Patterns are scanned in order; the first match wins. The keyword map below
// is the fallback when no pattern matches.
func compileIntentPatterns() []intentPatterns {
	defs := []struct {
		intent   models.Intent
		patterns []string
	}{
		{models.IntentAttendance, []string{
			`\b(?:show|view|check|see)\s+(?:my\s+)?attendance\b`,
			`\b(?:attendance|present|absent)\s+(?:for|on|today|yesterday)\b`,
			`\bhow many\s+(?:days|hours)\s+(?:have|did)\s+i\s+work`,
			`\bwhen\s+(?:did|was)\s+i\s+(?:in|out|present)`,
		}},
		{models.IntentClockIn, []string{
			`\b(?:clock|check)\s+in\b`,
			`\bstart\s+work(?:ing)?\b`,
			`\bi'm\s+(?:here|in|arriving)\b`,
			`\bbegin\s+(?:my\s+)?(?:work|shift)\b`,
		}},
		{models.IntentClockOut, []string{
			`\b(?:clock|check)\s+out\b`,
			`\b(?:end|finish|stop)\s+work(?:ing)?\b`,
			`\bi'm\s+(?:leaving|done|finished)\b`,
			`\bgoing\s+home\b`,
		}},
		{models.IntentLeave, []string{
			`\b(?:request|apply|take|need)\s+(?:a\s+)?leave\b`,
			`\b(?:vacation|holiday|time\s+off)\b`,
			`\bcan't\s+(?:come|work)\s+(?:today|tomorrow)\b`,
			`\b(?:sick|personal)\s+(?:leave|day)\b`,
		}},
		{models.IntentPayroll, []string{
			`\b(?:show|view|check)\s+(?:my\s+)?(?:payroll|salary|pay)\b`,
			`\bhow\s+much\s+(?:do|did)\s+i\s+(?:earn|make|get\s+paid)\b`,
			`\b(?:payslip|pay\s+stub|salary\s+slip)\b`,
			`\bwhat's\s+my\s+(?:salary|pay)\b`,
		}},
		{models.IntentEmployee, []string{
			`\b(?:show|list|find|search)\s+(?:all\s+)?employees?\b`,
			`\b(?:add|create|new)\s+employee\b`,
			`\bwho\s+(?:works|is)\s+in\b`,
			`\bemployee\s+(?:list|directory|information)\b`,
		}},
		{models.IntentReport, []string{
			`\b(?:generate|create|show|get)\s+(?:a\s+)?report\b`,
			`\b(?:analytics|statistics|summary)\b`,
			`\breport\s+(?:for|on|about)\b`,
			`\bshow\s+(?:me\s+)?(?:stats|data|analytics)\b`,
		}},
	}

	compiled := make([]intentPatterns, len(defs))
	for i, def := range defs {
		patterns := make([]*regexp.Regexp, len(def.patterns))
		for j, pattern := range def.patterns {
			patterns[j] = regexp.MustCompile(`(?i)` + pattern)
		}
		compiled[i] = intentPatterns{intent: def.intent, patterns: patterns}
	}
	return compiled
}

var intentKeywords = []struct {
	intent   models.Intent
	keywords []string
}{
	{models.IntentAttendance, []string{"attendance", "present", "absent", "work", "office"}},
	{models.IntentClockIn, []string{"clock in", "start work", "arrive", "check in"}},
	{models.IntentClockOut, []string{"clock out", "leave", "finish", "end work", "check out"}},
	{models.IntentLeave, []string{"leave", "vacation", "holiday", "time off", "absent"}},
	{models.IntentPayroll, []string{"salary", "pay", "payroll", "money", "wages"}},
	{models.IntentEmployee, []string{"employee", "staff", "worker", "person", "team"}},
	{models.IntentReport, []string{"report", "summary", "analytics", "data"}},
}

// classifyIntent scans the pattern table in order and falls back to keyword
// overlap scoring when nothing matches.
func (p *Processor) classifyIntent(text string) (models.Intent, float64) {
	for _, group := range p.intents {
		for _, pattern := range group.patterns {
			if pattern.MatchString(text) {
				return group.intent, patternConfidence(text, pattern)
			}
		}
	}
	return keywordClassify(text)
}

// patternConfidence scores a match by pattern specificity relative to the
// text length. Clamped to [0.3, 0.9].
func patternConfidence(text string, pattern *regexp.Regexp) float64 {
	matches := len(pattern.FindAllString(text, -1))
	raw := strings.TrimPrefix(pattern.String(), `(?i)`)
	patternLength := len(strings.ReplaceAll(raw, `\b`, ""))

	confidence := float64(matches*patternLength) / float64(len(text)+1)
	if confidence > 0.9 {
		confidence = 0.9
	}
	if confidence < 0.3 {
		confidence = 0.3
	}
	return confidence
}

func keywordClassify(text string) (models.Intent, float64) {
	maxScore := 0
	best := models.IntentUnknown

	for _, group := range intentKeywords {
		score := 0
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			best = group.intent
		}
	}

	if maxScore == 0 {
		return models.IntentUnknown, 0.1
	}
	confidence := float64(maxScore) / 5.0
	if confidence > 0.7 {
		confidence = 0.7
	}
	return best, confidence
}
