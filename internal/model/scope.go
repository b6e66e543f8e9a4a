package model

// Scope carries the per-request caller identity through usecases.
type Scope struct {
	UserID string
}
