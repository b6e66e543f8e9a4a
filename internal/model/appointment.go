package model

import "time"

// AppointmentStatus is the lifecycle state of an appointment request.
type AppointmentStatus string

const (
	AppointmentProposed   AppointmentStatus = "proposed"
	AppointmentConfirmed  AppointmentStatus = "confirmed"
	AppointmentRejected   AppointmentStatus = "rejected"
	AppointmentSuperseded AppointmentStatus = "superseded"
)

// Active reports whether the status counts against the one-active-request
// invariant.
func (s AppointmentStatus) Active() bool {
	return s == AppointmentProposed || s == AppointmentConfirmed
}

// AppointmentRequest is a proposed or confirmed antenatal/postpartum visit.
type AppointmentRequest struct {
	ID              string
	UserID          string
	Status          AppointmentStatus
	VisitWeek       int       // gestational (or postpartum) week the visit targets
	ProposedTime    time.Time // start of the proposed visit
	Reason          string    // e.g. "routine antenatal checkup", "postpartum checkup"
	CalendarEventID string    // set when mirrored to Google Calendar on confirmation
	SupersededBy    string    // ID of the request that replaced this one
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
