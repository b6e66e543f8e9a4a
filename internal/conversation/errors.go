package conversation

import "errors"

var (
	// ErrCannotStartSession is the one fatal case: the profile store has
	// no record for a new user, so no reply can be safely composed.
	ErrCannotStartSession = errors.New("conversation: cannot start session without a profile")

	// ErrNoActiveEmergency is returned when acknowledging risk while none
	// is pinned.
	ErrNoActiveEmergency = errors.New("conversation: no emergency risk to acknowledge")

	// ErrUnknownAppointment is returned when confirming or rejecting a
	// request ID that does not match the user's active request.
	ErrUnknownAppointment = errors.New("conversation: unknown appointment request")
)
