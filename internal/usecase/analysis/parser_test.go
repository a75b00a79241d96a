package analysis

import (
	"strings"
	"testing"

	"github.com/huytran-le/vidlens/internal/domain/entities"
)

func testMetadata() entities.VideoMetadata {
	return entities.VideoMetadata{
		Title:        "Test Video",
		ChannelName:  "Test Channel",
		PublishDate:  "2024-01-01T00:00:00Z",
		ThumbnailURL: "https://img.youtube.com/vi/abc/maxresdefault.jpg",
	}
}

func TestNormalizeAnalysis_EmbeddedJSON(t *testing.T) {
	raw := `Here is my assessment of the video.

{"toxicityScore": 8, "biasTags": ["Political"], "summary": "Heated political commentary."}

Let me know if you need more detail.`

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 8 {
		t.Fatalf("toxicity score = %d, want 8", result.ToxicityScore)
	}
	if len(result.BiasTags) != 1 || result.BiasTags[0] != "Political" {
		t.Fatalf("bias tags = %v, want [Political]", result.BiasTags)
	}
	if result.Summary != "Heated political commentary." {
		t.Fatalf("summary = %q", result.Summary)
	}
	if result.Title != "Test Video" || result.ChannelName != "Test Channel" {
		t.Fatalf("metadata not merged: %+v", result)
	}
}

func TestNormalizeAnalysis_FencedJSON(t *testing.T) {
	raw := "```json\n{\"toxicityScore\": 2, \"biasTags\": [], \"summary\": \"Benign cooking video.\"}\n```"

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 2 {
		t.Fatalf("toxicity score = %d, want 2", result.ToxicityScore)
	}
	if len(result.BiasTags) != 1 || result.BiasTags[0] != "None Detected" {
		t.Fatalf("empty model tags must become [None Detected], got %v", result.BiasTags)
	}
}

func TestNormalizeAnalysis_JSONMissingScoreDefaults(t *testing.T) {
	raw := `{"biasTags": ["Cultural"], "summary": "No score given."}`

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 5 {
		t.Fatalf("missing score must default to 5, got %d", result.ToxicityScore)
	}
}

func TestNormalizeAnalysis_ScoreClamped(t *testing.T) {
	result := NormalizeAnalysis(`{"toxicityScore": 99, "biasTags": ["Gender"], "summary": "x"}`, "v", testMetadata())
	if result.ToxicityScore != 10 {
		t.Fatalf("score 99 must clamp to 10, got %d", result.ToxicityScore)
	}

	result = NormalizeAnalysis(`{"toxicityScore": -3, "biasTags": ["Gender"], "summary": "x"}`, "v", testMetadata())
	if result.ToxicityScore != 0 {
		t.Fatalf("score -3 must clamp to 0, got %d", result.ToxicityScore)
	}
}

func TestNormalizeAnalysis_HeuristicKeywords(t *testing.T) {
	raw := `The toxicity score is 7 out of 10. The content shows clear political
and cultural bias throughout, with several misleading statements.`

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 7 {
		t.Fatalf("toxicity score = %d, want 7", result.ToxicityScore)
	}
	wantTags := map[string]bool{"Political": true, "Cultural": true}
	if len(result.BiasTags) != 2 {
		t.Fatalf("bias tags = %v, want Political and Cultural", result.BiasTags)
	}
	for _, tag := range result.BiasTags {
		if !wantTags[tag] {
			t.Fatalf("unexpected tag %q in %v", tag, result.BiasTags)
		}
	}
}

func TestNormalizeAnalysis_HeuristicScoreOnly(t *testing.T) {
	raw := "Toxicity score: 3. The video is largely harmless."

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 3 {
		t.Fatalf("toxicity score = %d, want 3", result.ToxicityScore)
	}
	if len(result.BiasTags) != 1 || result.BiasTags[0] != "None Detected" {
		t.Fatalf("score-only reply must tag [None Detected], got %v", result.BiasTags)
	}
}

func TestNormalizeAnalysis_Unparseable(t *testing.T) {
	raw := "I cannot comply with that request."

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 5 {
		t.Fatalf("toxicity score = %d, want default 5", result.ToxicityScore)
	}
	if len(result.BiasTags) != 1 || result.BiasTags[0] != "Analysis Format Error" {
		t.Fatalf("bias tags = %v, want [Analysis Format Error]", result.BiasTags)
	}
	if result.Summary != raw {
		t.Fatalf("summary must carry raw text, got %q", result.Summary)
	}
	if len(result.Emotions) == 0 {
		t.Fatalf("emotions must always be populated")
	}
}

func TestNormalizeAnalysis_MalformedJSONFallsThroughToHeuristic(t *testing.T) {
	// Broken JSON followed by recognizable keywords: the strict parse
	// fails and the heuristic takes over.
	raw := `{"toxicityScore": not-a-number} ... overall the racial bias here is severe, toxicity score 9.`

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 9 {
		t.Fatalf("toxicity score = %d, want 9", result.ToxicityScore)
	}
	found := false
	for _, tag := range result.BiasTags {
		if tag == "Racial" {
			found = true
		}
	}
	if !found {
		t.Fatalf("bias tags = %v, want Racial present", result.BiasTags)
	}
}

func TestNormalizeAnalysis_HeuristicCaseExpandingRunes(t *testing.T) {
	// U+023A lowercases to U+2C65, growing from 2 to 3 bytes, so the
	// keyword's byte offset in the lowered text exceeds the original
	// string's length. The heuristic must still find the score.
	raw := strings.Repeat("Ⱥ", 100) + " toxicity score 7, no other issues."

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if result.ToxicityScore != 7 {
		t.Fatalf("toxicity score = %d, want 7", result.ToxicityScore)
	}
	if len(result.BiasTags) != 1 || result.BiasTags[0] != "None Detected" {
		t.Fatalf("bias tags = %v, want [None Detected]", result.BiasTags)
	}
}

func TestNormalizeAnalysis_LongRawTruncatedInSummary(t *testing.T) {
	raw := strings.Repeat("a", 5000)

	result := NormalizeAnalysis(raw, "vid12345678", testMetadata())

	if len(result.Summary) > maxSummaryChars {
		t.Fatalf("summary length %d exceeds %d", len(result.Summary), maxSummaryChars)
	}
}

func TestFirstJSONObject_BracesInsideStrings(t *testing.T) {
	span, ok := firstJSONObject(`prefix {"summary": "weird {text} here", "toxicityScore": 1} suffix`)
	if !ok {
		t.Fatalf("expected a JSON span")
	}
	if !strings.HasSuffix(span, `"toxicityScore": 1}`) {
		t.Fatalf("span terminated early: %q", span)
	}
}
