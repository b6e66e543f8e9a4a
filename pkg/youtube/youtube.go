package youtube

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

type youtubeClient struct {
	service    *yt.Service
	maxResults int64
}

// New creates a YouTube Data API client from an API key.
func New(ctx context.Context, cfg Config) (IYouTube, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}

	return &youtubeClient{service: service, maxResults: cfg.MaxResults}, nil
}

// NewFromHTTP creates a YouTube client from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, maxResults int64) (IYouTube, error) {
	service, err := yt.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &youtubeClient{service: service, maxResults: maxResults}, nil
}

// Search runs a video search and returns simplified results.
func (c *youtubeClient) Search(ctx context.Context, req SearchRequest) ([]Video, error) {
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}

	maxResults := c.maxResults
	if req.MaxResults > 0 {
		maxResults = req.MaxResults
	}

	call := c.service.Search.List([]string{"snippet"}).
		Q(req.Query).
		Type("video").
		SafeSearch("strict").
		MaxResults(maxResults).
		Context(ctx)

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: search failed: %w", err)
	}

	videos := make([]Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, Video{
			ID:          item.Id.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			ChannelName: item.Snippet.ChannelTitle,
			URL:         watchURLPrefix + item.Id.VideoId,
		})
	}

	return videos, nil
}
