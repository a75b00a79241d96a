package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/huytran-le/vidlens/pkg/config"
)

func TestGetVideoMetadata_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "id=dQw4w9WgXcQ") {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "Never Gonna Give You Up",
					"channelTitle": "Rick Astley",
					"publishedAt": "2009-10-25T06:57:33Z",
					"description": "The official video.",
					"thumbnails": {
						"high": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"},
						"maxres": {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"}
					}
				}
			}]
		}`))
	}))
	defer ts.Close()

	client := NewClient(context.Background(), &config.YouTubeConfig{APIKey: "test-key", Endpoint: ts.URL}, nil)
	md := client.GetVideoMetadata(context.Background(), "dQw4w9WgXcQ")

	if md.Title != "Never Gonna Give You Up" {
		t.Fatalf("title = %q", md.Title)
	}
	if md.ChannelName != "Rick Astley" {
		t.Fatalf("channel = %q", md.ChannelName)
	}
	if md.PublishDate != "2009-10-25T06:57:33Z" {
		t.Fatalf("publish date = %q", md.PublishDate)
	}
	if md.ThumbnailURL != "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Fatalf("thumbnail must prefer maxres tier, got %q", md.ThumbnailURL)
	}
}

func TestGetVideoMetadata_NotFoundFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`))
	}))
	defer ts.Close()

	client := NewClient(context.Background(), &config.YouTubeConfig{APIKey: "test-key", Endpoint: ts.URL}, nil)
	md := client.GetVideoMetadata(context.Background(), "missing1234")

	if !strings.Contains(md.Title, "missing1234") {
		t.Fatalf("fallback title must embed the video ID, got %q", md.Title)
	}
	if md.ChannelName != "Unknown Channel" {
		t.Fatalf("channel = %q", md.ChannelName)
	}
	if !strings.Contains(md.ThumbnailURL, "missing1234") {
		t.Fatalf("fallback thumbnail must embed the video ID, got %q", md.ThumbnailURL)
	}
	if md.PublishDate == "" {
		t.Fatalf("fallback publish date must be populated")
	}
}

func TestGetVideoMetadata_UpstreamErrorFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 500}}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(context.Background(), &config.YouTubeConfig{APIKey: "test-key", Endpoint: ts.URL}, nil)
	md := client.GetVideoMetadata(context.Background(), "erroring123")

	if md.Title != "Video erroring123" {
		t.Fatalf("fallback title = %q", md.Title)
	}
}

func TestGetVideoMetadata_NoAPIKeyFallsBack(t *testing.T) {
	client := NewClient(context.Background(), &config.YouTubeConfig{}, nil)
	md := client.GetVideoMetadata(context.Background(), "nocreds1234")

	if md.Title != "Video nocreds1234" || md.ChannelName != "Unknown Channel" {
		t.Fatalf("unexpected fallback metadata: %+v", md)
	}
}

func TestPickThumbnail_PriorityOrder(t *testing.T) {
	details := &youtubeapi.ThumbnailDetails{
		Default:  &youtubeapi.Thumbnail{Url: "default.jpg"},
		Standard: &youtubeapi.Thumbnail{Url: "standard.jpg"},
		High:     &youtubeapi.Thumbnail{Url: "high.jpg"},
	}
	if got := pickThumbnail(details, "v"); got != "high.jpg" {
		t.Fatalf("got %q, want high.jpg", got)
	}

	details.High = nil
	if got := pickThumbnail(details, "v"); got != "standard.jpg" {
		t.Fatalf("got %q, want standard.jpg", got)
	}

	if got := pickThumbnail(nil, "someVideoID"); !strings.Contains(got, "someVideoID") {
		t.Fatalf("nil details must fall back to constructed URL, got %q", got)
	}
}
