package youtube

import "errors"

const (
	// DefaultMaxResults bounds how many videos a single search returns.
	DefaultMaxResults = 3

	watchURLPrefix = "https://www.youtube.com/watch?v="
)

var (
	ErrAPIKeyRequired = errors.New("youtube: API key is required")
	ErrEmptyQuery     = errors.New("youtube: search query is empty")
)
