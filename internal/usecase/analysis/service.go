package analysis

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huytran-le/vidlens/errors"
	"github.com/huytran-le/vidlens/internal/domain/entities"
)

// TranscriptFetcher retrieves the timed transcript for a video, retrying
// rate-limited calls internally.
type TranscriptFetcher interface {
	FetchWithRetry(ctx context.Context, videoID string) ([]entities.TranscriptSegment, error)
}

// MetadataProvider looks up video metadata. It never fails; unavailable
// sources yield deterministic fallback values.
type MetadataProvider interface {
	GetVideoMetadata(ctx context.Context, videoID string) entities.VideoMetadata
}

// Analyzer sends one prompt to the text-generation service and returns
// the raw reply.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Service runs the full analysis pipeline for one request.
type Service interface {
	Analyze(ctx context.Context, input string) (*entities.AnalysisResult, error)
}

type service struct {
	transcripts TranscriptFetcher
	metadata    MetadataProvider
	analyzer    Analyzer
	logger      *zap.Logger
}

// NewService constructs the analysis orchestrator.
func NewService(transcripts TranscriptFetcher, metadata MetadataProvider, analyzer Analyzer, logger *zap.Logger) Service {
	return &service{
		transcripts: transcripts,
		metadata:    metadata,
		analyzer:    analyzer,
		logger:      logger,
	}
}

// Analyze sequences the pipeline: extract ID, fetch transcript (falling
// back to metadata-only analysis), call the analyzer, normalize. The
// only failures that escape are an unresolvable video ID and an analyzer
// failure; every other stage has a safe default.
func (s *service) Analyze(ctx context.Context, input string) (*entities.AnalysisResult, error) {
	requestID := uuid.NewString()

	videoID, err := ExtractVideoID(input)
	if err != nil {
		if s.logger != nil {
			s.logger.Info("rejected analyze request",
				zap.String("request_id", requestID),
				zap.String("input", input),
			)
		}
		return nil, errors.ErrInvalidVideoID()
	}

	// Metadata never fails, so fetching it up front guarantees the
	// normalizer always has a full set of display fields, whichever
	// path produced the analysis text.
	md := s.metadata.GetVideoMetadata(ctx, videoID)

	prompt := ""
	path := "transcript"
	segments, terr := s.transcripts.FetchWithRetry(ctx, videoID)
	switch {
	case terr != nil:
		path = "metadata"
		if s.logger != nil {
			s.logger.Warn("transcript unavailable, falling back to metadata analysis",
				zap.String("request_id", requestID),
				zap.String("video_id", videoID),
				zap.Error(terr),
			)
		}
		prompt = metadataPrompt(md)
	case len(segments) == 0:
		path = "metadata"
		if s.logger != nil {
			s.logger.Warn("transcript empty, falling back to metadata analysis",
				zap.String("request_id", requestID),
				zap.String("video_id", videoID),
			)
		}
		prompt = metadataPrompt(md)
	default:
		prompt = transcriptPrompt(entities.TranscriptText(segments))
	}

	raw, err := s.analyzer.Analyze(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("content analysis failed",
				zap.String("request_id", requestID),
				zap.String("video_id", videoID),
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return nil, errors.ErrAnalysisFailed(err)
	}

	result := NormalizeAnalysis(raw, videoID, md)

	if s.logger != nil {
		s.logger.Info("analysis complete",
			zap.String("request_id", requestID),
			zap.String("video_id", videoID),
			zap.String("path", path),
			zap.Int("segments", len(segments)),
			zap.Int("toxicity_score", result.ToxicityScore),
			zap.Strings("bias_tags", result.BiasTags),
		)
	}
	return result, nil
}
