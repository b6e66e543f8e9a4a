package youtube

import "context"

// IYouTube searches YouTube for guidance videos to attach to replies.
type IYouTube interface {
	Search(ctx context.Context, req SearchRequest) ([]Video, error)
}
