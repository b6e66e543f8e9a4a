package http

import (
	"maatricare/internal/profile"
	"maatricare/pkg/log"
)

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New returns the HTTP handler set for the profile endpoints.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
