package router

import "maatricare/internal/model"

// Output is the classification result consumed by the orchestrator.
type Output struct {
	Intent     model.Intent `json:"intent"`
	Confidence int          `json:"confidence"` // 0-100
	Reasoning  string       `json:"reasoning"`
}
