package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/huytran-le/vidlens/internal/domain/entities"
	"github.com/huytran-le/vidlens/pkg/config"
)

// Client is a minimal client for the transcript lookup service
type Client struct {
	baseURL       string
	client        *http.Client
	maxAttempts   int
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewClient creates a transcript client using the provided config.
func NewClient(cfg *config.TranscriptConfig, logger *zap.Logger) *Client {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		client:        &http.Client{Timeout: cfg.Timeout},
		maxAttempts:   maxAttempts,
		retryInterval: cfg.RetryInterval,
		logger:        logger,
	}
}

// APIError captures non-2xx responses to allow inspection of the status code.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("transcript api status %d: %s", e.StatusCode, e.Body)
}

// IsRateLimit reports whether err carries a 429 / Too Many Requests
// signature, the only failure class worth retrying.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return strings.Contains(err.Error(), "Too Many Requests")
}

// segmentPayload mirrors one timed segment as the source serializes it.
// Numeric fields default to zero when absent.
type segmentPayload struct {
	Text           string `json:"text"`
	OffsetMillis   int64  `json:"offset"`
	DurationMillis int64  `json:"duration"`
}

// The source answers with either a bare array of segments or a wrapper
// object holding the same array. Both shapes are decoded once, here at
// the boundary, into the canonical segment slice.
type wrappedPayload struct {
	Transcript []segmentPayload `json:"transcript"`
}

// Fetch issues a single lookup for the video's transcript.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]entities.TranscriptSegment, error) {
	endpoint := fmt.Sprintf("%s/api/transcript?videoId=%s", c.baseURL, url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	payload, err := decodeSegments(body)
	if err != nil {
		return nil, err
	}

	segments := make([]entities.TranscriptSegment, 0, len(payload))
	for _, seg := range payload {
		segments = append(segments, entities.TranscriptSegment{
			Text:           seg.Text,
			OffsetMillis:   seg.OffsetMillis,
			DurationMillis: seg.DurationMillis,
		})
	}
	return segments, nil
}

func decodeSegments(body []byte) ([]segmentPayload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var segments []segmentPayload
		if err := json.Unmarshal(trimmed, &segments); err != nil {
			return nil, fmt.Errorf("decoding transcript array: %w", err)
		}
		return segments, nil
	}
	var wrapped wrappedPayload
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("decoding transcript object: %w", err)
	}
	return wrapped.Transcript, nil
}

// FetchWithRetry fetches the transcript with capped exponential backoff.
// Only rate-limit failures are retried; anything else fails on the first
// attempt. With the default configuration this makes up to 3 calls with
// waits of ~2s and ~4s between them.
func (c *Client) FetchWithRetry(ctx context.Context, videoID string) ([]entities.TranscriptSegment, error) {
	var segments []entities.TranscriptSegment
	attempt := 0

	operation := func() error {
		attempt++
		segs, err := c.Fetch(ctx, videoID)
		if err != nil {
			if IsRateLimit(err) {
				if c.logger != nil {
					c.logger.Warn("transcript source rate limited",
						zap.String("video_id", videoID),
						zap.Int("attempt", attempt),
					)
				}
				return err
			}
			return backoff.Permanent(err)
		}
		segments = segs
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = 8 * c.retryInterval
	bo.MaxElapsedTime = 0

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(c.maxAttempts-1)), ctx))
	if err != nil {
		return nil, err
	}
	return segments, nil
}
