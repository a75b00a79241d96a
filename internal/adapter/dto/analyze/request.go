package analyze

// AnalyzeRequest is the body accepted by POST /api/analyze. Either field
// may carry the video reference; videoId wins when both are present.
type AnalyzeRequest struct {
	URL     string `json:"url" validate:"omitempty,max=2048"`
	VideoID string `json:"videoId" validate:"omitempty,max=64"`
}

// Input returns the string the video-ID extractor should run against.
func (r *AnalyzeRequest) Input() string {
	if r.VideoID != "" {
		return r.VideoID
	}
	return r.URL
}
