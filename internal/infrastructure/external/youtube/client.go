package youtube

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/huytran-le/vidlens/internal/domain/entities"
	"github.com/huytran-le/vidlens/pkg/config"
)

// Client looks up video metadata through the YouTube Data API. It never
// propagates upstream failures: a missing credential, an API error or an
// unknown video all yield deterministic fallback metadata.
type Client struct {
	service *youtubeapi.Service
	logger  *zap.Logger
}

// NewClient builds a metadata client. When no API key is configured the
// client still works, serving fallback metadata only.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig, logger *zap.Logger) *Client {
	if cfg.APIKey == "" {
		if logger != nil {
			logger.Warn("YOUTUBE_API_KEY not set, metadata lookups will use fallback values")
		}
		return &Client{logger: logger}
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := youtubeapi.NewService(ctx, opts...)
	if err != nil {
		if logger != nil {
			logger.Error("failed to create YouTube service, metadata lookups will use fallback values", zap.Error(err))
		}
		return &Client{logger: logger}
	}

	return &Client{service: service, logger: logger}
}

// GetVideoMetadata returns metadata for the video. This call path never
// fails; callers always receive a fully populated value.
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) entities.VideoMetadata {
	if c.service == nil {
		return entities.FallbackVideoMetadata(videoID)
	}

	call := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("video metadata lookup failed, using fallback",
				zap.String("video_id", videoID),
				zap.Error(err),
			)
		}
		return entities.FallbackVideoMetadata(videoID)
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		if c.logger != nil {
			c.logger.Warn("video not found, using fallback metadata", zap.String("video_id", videoID))
		}
		return entities.FallbackVideoMetadata(videoID)
	}

	snippet := resp.Items[0].Snippet
	md := entities.VideoMetadata{
		Title:        snippet.Title,
		ChannelName:  snippet.ChannelTitle,
		PublishDate:  snippet.PublishedAt,
		ThumbnailURL: pickThumbnail(snippet.Thumbnails, videoID),
		Description:  snippet.Description,
	}

	fallback := entities.FallbackVideoMetadata(videoID)
	if md.Title == "" {
		md.Title = fallback.Title
	}
	if md.ChannelName == "" {
		md.ChannelName = fallback.ChannelName
	}
	if md.PublishDate == "" {
		md.PublishDate = fallback.PublishDate
	}
	return md
}

// pickThumbnail prefers the highest-resolution image the source offers,
// walking maxres -> high -> standard -> default before falling back to
// the conventionally constructed URL.
func pickThumbnail(t *youtubeapi.ThumbnailDetails, videoID string) string {
	if t != nil {
		for _, candidate := range []*youtubeapi.Thumbnail{t.Maxres, t.High, t.Standard, t.Default} {
			if candidate != nil && candidate.Url != "" {
				return candidate.Url
			}
		}
	}
	return entities.FallbackThumbnailURL(videoID)
}
