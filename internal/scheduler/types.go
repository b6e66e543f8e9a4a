package scheduler

import (
	"time"

	"maatricare/internal/model"
)

// ProposeInput carries everything the cadence computation needs.
type ProposeInput struct {
	Profile model.Profile
	Stage   model.Stage
	Current *model.AppointmentRequest // active request, if any
	Now     time.Time
}

// ProposeOutput is the result of a proposal.
type ProposeOutput struct {
	Proposed   model.AppointmentRequest
	Superseded *model.AppointmentRequest // previous active request, now superseded
}
