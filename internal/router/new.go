package router

import (
	pkgLog "maatricare/pkg/log"
)

// KeywordRouter classifies user messages into intents with keyword rules.
// It is deterministic and never fails: ambiguous messages resolve to the
// general-question intent.
type KeywordRouter struct {
	l pkgLog.Logger
}

// New creates a new keyword router instance.
func New(l pkgLog.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
