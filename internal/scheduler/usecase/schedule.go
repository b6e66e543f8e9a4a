package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"maatricare/internal/model"
	"maatricare/internal/scheduler"
	"maatricare/pkg/gcalendar"
)

const visitDuration = time.Hour

func (uc *implUseCase) Propose(ctx context.Context, sc model.Scope, input scheduler.ProposeInput) (scheduler.ProposeOutput, error) {
	fromWeek, anchor, err := uc.anchorFor(input)
	if err != nil {
		return scheduler.ProposeOutput{}, err
	}

	visitWeek, ok := nextVisitWeek(input.Stage, fromWeek)
	if !ok {
		return scheduler.ProposeOutput{}, scheduler.ErrNoVisitDue
	}

	visitTime := anchor.AddDate(0, 0, visitWeek*7).Add(10 * time.Hour)
	if visitTime.Before(input.Now) {
		// The computed slot already passed, e.g. a late-registered user.
		// Offer the earliest practical slot instead.
		visitTime = input.Now.AddDate(0, 0, 1).Truncate(24 * time.Hour).Add(10 * time.Hour)
	}

	proposed := model.AppointmentRequest{
		ID:           uuid.NewString(),
		UserID:       sc.UserID,
		Status:       model.AppointmentProposed,
		VisitWeek:    visitWeek,
		ProposedTime: visitTime,
		Reason:       reasonFor(input.Stage, visitWeek),
		CreatedAt:    input.Now,
		UpdatedAt:    input.Now,
	}

	out := scheduler.ProposeOutput{Proposed: proposed}
	if input.Current != nil && input.Current.Status.Active() {
		superseded := *input.Current
		superseded.Status = model.AppointmentSuperseded
		superseded.SupersededBy = proposed.ID
		superseded.UpdatedAt = input.Now
		out.Superseded = &superseded

		uc.l.Infof(ctx, "scheduler: request %s (%s) superseded by %s for user %s",
			superseded.ID, input.Current.Status, proposed.ID, sc.UserID)
	}

	return out, nil
}

func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, req model.AppointmentRequest) (model.AppointmentRequest, error) {
	if req.Status != model.AppointmentProposed {
		return req, scheduler.ErrNotProposed
	}

	req.Status = model.AppointmentConfirmed
	req.UpdatedAt = time.Now()

	if uc.calendar != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     fmt.Sprintf("ANC visit (week %d)", req.VisitWeek),
			Description: req.Reason,
			StartTime:   req.ProposedTime,
			EndTime:     req.ProposedTime.Add(visitDuration),
			Timezone:    uc.timezone,
		})
		if err != nil {
			// The confirmation stands even when the mirror fails.
			uc.l.Warnf(ctx, "scheduler: calendar mirror failed for request %s: %v", req.ID, err)
		} else {
			req.CalendarEventID = event.ID
		}
	}

	uc.l.Infof(ctx, "scheduler: request %s confirmed for user %s (week %d)", req.ID, sc.UserID, req.VisitWeek)
	return req, nil
}

func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, req model.AppointmentRequest) (model.AppointmentRequest, error) {
	if req.Status != model.AppointmentProposed {
		return req, scheduler.ErrNotProposed
	}

	req.Status = model.AppointmentRejected
	req.UpdatedAt = time.Now()

	uc.l.Infof(ctx, "scheduler: request %s rejected for user %s", req.ID, sc.UserID)
	return req, nil
}

// anchorFor picks the week number to schedule from and the date that week
// numbers are measured against.
func (uc *implUseCase) anchorFor(input scheduler.ProposeInput) (int, time.Time, error) {
	var anchor time.Time
	var currentWeek int

	switch {
	case input.Stage.Postpartum():
		if input.Profile.DeliveryDate == nil {
			return 0, time.Time{}, scheduler.ErrCannotSchedule
		}
		anchor = *input.Profile.DeliveryDate
		currentWeek, _ = input.Profile.PostpartumWeek(input.Now)

	case input.Stage.Pregnant():
		if input.Profile.LMPDate == nil {
			return 0, time.Time{}, scheduler.ErrCannotSchedule
		}
		anchor = *input.Profile.LMPDate
		currentWeek, _ = input.Profile.GestationalWeek(input.Now)

	default:
		return 0, time.Time{}, scheduler.ErrCannotSchedule
	}

	fromWeek := currentWeek
	if input.Current != nil && input.Current.Status == model.AppointmentConfirmed && input.Current.VisitWeek > fromWeek {
		fromWeek = input.Current.VisitWeek
	}
	return fromWeek, anchor, nil
}

func reasonFor(st model.Stage, week int) string {
	if st.Postpartum() {
		return "postpartum checkup"
	}
	switch week {
	case 20:
		return "anatomy scan and routine checkup"
	case 26, 34:
		return "screening and routine checkup"
	default:
		return "routine antenatal checkup"
	}
}
