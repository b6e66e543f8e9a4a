package scheduler

import "errors"

var (
	// ErrCannotSchedule means the profile lacks the dates needed to place
	// a visit on the cadence table.
	ErrCannotSchedule = errors.New("scheduler: not enough profile data to schedule a visit")

	// ErrNoVisitDue means the cadence table has no further visit for the
	// stage, e.g. the single postpartum visit has passed.
	ErrNoVisitDue = errors.New("scheduler: no further visit due for this stage")

	// ErrNotProposed is returned when confirming or rejecting a request
	// that is not in the proposed state.
	ErrNotProposed = errors.New("scheduler: request is not in the proposed state")
)
