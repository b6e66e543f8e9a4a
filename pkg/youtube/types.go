package youtube

// Config holds the configuration for the YouTube client.
type Config struct {
	APIKey     string
	MaxResults int64
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	return nil
}

// SearchRequest is the input for a video search.
type SearchRequest struct {
	Query      string
	MaxResults int64 // overrides Config.MaxResults when > 0
}

// Video is a single search result.
type Video struct {
	ID          string
	Title       string
	Description string
	ChannelName string
	URL         string
}
