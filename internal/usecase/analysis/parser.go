package analysis

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/huytran-le/vidlens/internal/domain/entities"
)

const (
	defaultToxicityScore = 5
	maxSummaryChars      = 400

	// formatErrorTag marks results whose analysis text could not be
	// parsed in any way. The tag set is never empty.
	formatErrorTag  = "Analysis Format Error"
	noneDetectedTag = "None Detected"
	toxicityKeyword = "toxicity score"
)

// biasKeywords maps lower-cased keywords in the analysis text to the tag
// appended for each hit.
var biasKeywords = []struct {
	keyword string
	tag     string
}{
	{"political", "Political"},
	{"cultural", "Cultural"},
	{"gender", "Gender"},
	{"racial", "Racial"},
	{"ideological", "Ideological"},
	{"religious", "Religious"},
}

var firstInteger = regexp.MustCompile(`\d+`)

// parsedAnalysis is the structured shape the model is asked to return.
// ToxicityScore is a pointer so an omitted field can fall back to the
// default instead of reading as zero.
type parsedAnalysis struct {
	ToxicityScore *int     `json:"toxicityScore"`
	BiasTags      []string `json:"biasTags"`
	Summary       string   `json:"summary"`
}

// NormalizeAnalysis turns the analyzer's free-form reply into a fully
// populated AnalysisResult. Two strategies run in order: a strict parse
// of the first embedded JSON object, then a keyword heuristic. Neither
// ever produces a partial result, and the bias tag set always has at
// least one entry.
func NormalizeAnalysis(raw, videoID string, md entities.VideoMetadata) *entities.AnalysisResult {
	result := entities.NewAnalysisResult(videoID, md)

	if parsed, ok := extractEmbeddedJSON(raw); ok {
		if parsed.ToxicityScore != nil {
			result.ToxicityScore = clampScore(*parsed.ToxicityScore)
		}
		result.BiasTags = parsed.BiasTags
		if len(result.BiasTags) == 0 {
			result.BiasTags = []string{noneDetectedTag}
		}
		result.Summary = parsed.Summary
		if result.Summary == "" {
			result.Summary = truncate(strings.TrimSpace(raw), maxSummaryChars)
		}
		return result
	}

	score, tags, recognized := heuristicExtract(raw)
	if !recognized {
		result.BiasTags = []string{formatErrorTag}
		result.Summary = truncate(strings.TrimSpace(raw), maxSummaryChars)
		return result
	}

	result.ToxicityScore = score
	result.BiasTags = tags
	result.Summary = truncate(strings.TrimSpace(raw), maxSummaryChars)
	return result
}

// heuristicExtract scans the text for the toxicity-score keyword and the
// known bias keywords. recognized is false when neither appears.
func heuristicExtract(raw string) (score int, tags []string, recognized bool) {
	lower := strings.ToLower(raw)
	score = defaultToxicityScore

	// Index into lower, not raw: lowercasing can change byte lengths.
	if idx := strings.Index(lower, toxicityKeyword); idx >= 0 {
		recognized = true
		if m := firstInteger.FindString(lower[idx:]); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				score = clampScore(n)
			}
		}
	}

	for _, bk := range biasKeywords {
		if strings.Contains(lower, bk.keyword) {
			tags = append(tags, bk.tag)
			recognized = true
		}
	}

	if recognized && len(tags) == 0 {
		tags = []string{noneDetectedTag}
	}
	return score, tags, recognized
}

// extractEmbeddedJSON finds the first balanced {...} span in the text
// and decodes it. Markdown code fences around the reply are tolerated.
func extractEmbeddedJSON(raw string) (parsedAnalysis, bool) {
	var parsed parsedAnalysis

	span, ok := firstJSONObject(stripFences(raw))
	if !ok {
		return parsed, false
	}
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return parsedAnalysis{}, false
	}
	return parsed, true
}

// stripFences removes a surrounding markdown code block if present.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}

// firstJSONObject returns the first balanced top-level object in s,
// tracking string literals so braces inside them don't count.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// clampScore bounds a model-reported toxicity score to the documented
// 0-10 range.
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
