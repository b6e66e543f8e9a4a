package http

import (
	"maatricare/internal/conversation"
	"maatricare/pkg/log"
)

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New returns the HTTP handler set for the conversation endpoints.
func New(l log.Logger, uc conversation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
