package usecase

import (
	"context"

	"maatricare/pkg/gcalendar"
	pkgLog "maatricare/pkg/log"
)

// calendarClient is the slice of gcalendar.Client the scheduler uses.
// Nil disables calendar mirroring.
type calendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	calendar   calendarClient
	calendarID string
	timezone   string
}

// New creates a new scheduler UseCase instance. calendar may be nil when no
// Google Calendar integration is configured.
func New(l pkgLog.Logger, calendar *gcalendar.Client, calendarID, timezone string) *implUseCase {
	uc := &implUseCase{
		l:          l,
		calendarID: calendarID,
		timezone:   timezone,
	}
	if calendar != nil {
		uc.calendar = calendar
	}
	return uc
}
