package entities

import (
	"fmt"
	"strings"
	"time"
)

// TranscriptSegment is one fragment of spoken text within a video.
// Segments are ordered chronologically and live only for the duration of
// a single analyze request.
type TranscriptSegment struct {
	Text           string `json:"text"`
	OffsetMillis   int64  `json:"offsetMillis"`
	DurationMillis int64  `json:"durationMillis"`
}

// TranscriptText joins segment texts into the single block sent to the
// content analyzer.
func TranscriptText(segments []TranscriptSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}
	return strings.Join(parts, " ")
}

// VideoMetadata describes a video as reported by the metadata source.
// Every field has a deterministic fallback keyed by video ID, so
// consumers never see a partially missing value.
type VideoMetadata struct {
	Title        string `json:"title"`
	ChannelName  string `json:"channelName"`
	PublishDate  string `json:"publishDate"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description,omitempty"`
}

// FallbackVideoMetadata builds the metadata used when the upstream source
// is unavailable, unconfigured, or does not know the video.
func FallbackVideoMetadata(videoID string) VideoMetadata {
	return VideoMetadata{
		Title:        fmt.Sprintf("Video %s", videoID),
		ChannelName:  "Unknown Channel",
		PublishDate:  time.Now().UTC().Format(time.RFC3339),
		ThumbnailURL: FallbackThumbnailURL(videoID),
		Description:  "",
	}
}

// FallbackThumbnailURL is the conventionally constructed thumbnail
// location YouTube serves for any video ID.
func FallbackThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}

// EmotionScores is the fixed seven-axis emotion weighting attached to
// every analysis result.
type EmotionScores map[string]float64

// DefaultEmotionScores returns the baseline emotion weights.
func DefaultEmotionScores() EmotionScores {
	return EmotionScores{
		"anger":    0.3,
		"joy":      0.4,
		"trust":    0.5,
		"fear":     0.2,
		"sadness":  0.3,
		"surprise": 0.4,
		"disgust":  0.2,
	}
}

// AnalysisResult is the response contract returned to clients. It is
// always fully populated: every producing path carries defaults for the
// fields it cannot extract.
type AnalysisResult struct {
	VideoID       string        `json:"videoId"`
	Title         string        `json:"title"`
	ChannelName   string        `json:"channelName"`
	PublishDate   string        `json:"publishDate"`
	Thumbnail     string        `json:"thumbnail"`
	ToxicityScore int           `json:"toxicityScore"`
	BiasTags      []string      `json:"biasTags"`
	Summary       string        `json:"summary"`
	Emotions      EmotionScores `json:"emotions"`
}

// NewAnalysisResult seeds a result with metadata and defaults. Parsing
// overwrites ToxicityScore, BiasTags and Summary with extracted values.
func NewAnalysisResult(videoID string, md VideoMetadata) *AnalysisResult {
	return &AnalysisResult{
		VideoID:       videoID,
		Title:         md.Title,
		ChannelName:   md.ChannelName,
		PublishDate:   md.PublishDate,
		Thumbnail:     md.ThumbnailURL,
		ToxicityScore: 5,
		BiasTags:      []string{},
		Summary:       "",
		Emotions:      DefaultEmotionScores(),
	}
}
