package gemini

import "time"

// Defaults for the Gemini Generative Language API.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 30 * time.Second
)
