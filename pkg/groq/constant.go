package groq

import "time"

// Defaults for the Groq OpenAI-compatible chat API.
const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "qwen/qwen3-32b"
	DefaultTimeout = 30 * time.Second
)
