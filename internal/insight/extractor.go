package insight

import (
	"regexp"
	"strings"
)

// Noise lines the model tends to emit around the actual insight: timestamps,
// timezone abbreviations, preamble ("Here are 3 insights:"), and standalone
// "Insight:" labels.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?\s*(AM|PM|am|pm)?$`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ].*)?$`),
	regexp.MustCompile(`^(GMT|UTC|EST|EDT|CST|CDT|MST|MDT|PST|PDT)([+-]\d{2}:?\d{2})?$`),
	regexp.MustCompile(`(?i)^here (are|is) (the |your |\d+ )?(health )?insights?\b`),
	regexp.MustCompile(`(?i)^insights?:?$`),
}

// Titles and contents that mean the model answered the question with the
// question.
var placeholderPhrases = map[string]bool{
	"insight":             true,
	"here is the insight": true,
}

// Phrases that indicate the model is saying it has nothing, which must not
// be wrapped up as an insight by the fallback path.
var noDataPhrases = []string{
	"no data",
	"insufficient data",
	"no actionable health insight",
	"not enough information",
}

// ExtractActionable parses raw completion text into a (title, content) pair.
// It returns ok=false when nothing in the text qualifies; callers must treat
// that as "no insight", never invent content.
func ExtractActionable(raw string) (title, content string, ok bool) {
	var candidates []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isNoise(line) {
			continue
		}
		candidates = append(candidates, stripEmphasis(line))
	}

	// First pass: colon-delimited "Title: content" lines.
	for _, line := range candidates {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		t := stripEmphasis(line[:idx])
		c := stripEmphasis(line[idx+1:])
		if t == "" || len(c) <= 10 {
			continue
		}
		if placeholderPhrases[strings.ToLower(t)] || placeholderPhrases[strings.ToLower(c)] {
			continue
		}
		return truncate(t, MaxTitleLen), truncate(c, MaxContentLen), true
	}

	// Second pass: a substantial plain line, wrapped under a generic title.
	for _, line := range candidates {
		if len(line) > 20 && !mentionsNoData(line) {
			return "Health Insight", truncate(line, MaxContentLen), true
		}
	}

	return "", "", false
}

func isNoise(line string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// stripEmphasis removes surrounding markdown emphasis and list markers so
// "**Sleep Pattern:** ..." parses the same as the bare line.
func stripEmphasis(line string) string {
	line = strings.TrimLeft(line, "-• \t")
	line = strings.Trim(line, "*_`")
	return strings.TrimSpace(line)
}

func mentionsNoData(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range noDataPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
