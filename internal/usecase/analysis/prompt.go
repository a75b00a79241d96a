package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/huytran-le/vidlens/internal/domain/entities"
)

const (
	// maxTranscriptChars bounds how much transcript text is sent to the
	// model. Anything beyond it adds cost without changing the verdict.
	maxTranscriptChars  = 4000
	maxDescriptionChars = 500
)

const promptInstructions = `Please provide:
- A toxicity score (0-10, where 10 is highly toxic)
- A bias assessment (types of bias detected and severity)
- A misinformation assessment (potential false claims identified)
- An overall summary

Respond with a JSON object of the form {"toxicityScore": <0-10>, "biasTags": ["..."], "summary": "..."}.`

// transcriptPrompt builds the instruction for the transcript path.
func transcriptPrompt(transcriptText string) string {
	return fmt.Sprintf(`Analyze the following YouTube video transcript for:

1. Toxicity: hate speech, harassment, profanity, threats, or harmful content
2. Bias: political, cultural, gender, racial, or ideological biases
3. Misinformation: false claims, misleading statements, or unverified facts

Transcript:
%s

%s`, truncate(transcriptText, maxTranscriptChars), promptInstructions)
}

// metadataPrompt builds the instruction for the fallback path, where only
// video metadata is available.
func metadataPrompt(md entities.VideoMetadata) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\nChannel: %s\n", md.Title, md.ChannelName)
	if md.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", truncate(md.Description, maxDescriptionChars))
	}

	return fmt.Sprintf(`No transcript is available for this YouTube video. Based on its metadata alone, assess likely toxicity, bias, and misinformation risk.

%s
%s`, sb.String(), promptInstructions)
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
