package usecase

import (
	"context"
	"log/slog"
	"time"

	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/pkg/clock"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase/readmodel"
)

type CalendarGateway interface {
	ListBusyIntervals(ctx context.Context, from, to time.Time) ([]schedule.Interval, error)
	CreateEvent(ctx context.Context, slot schedule.TimeSlot, summary, description, location string) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type AppointmentBusyReader interface {
	BusyBetween(ctx context.Context, from, to time.Time) ([]schedule.Interval, error)
}

type AvailabilityUseCase interface {
	GetSlots(ctx context.Context, date time.Time) ([]*readmodel.SlotRM, error)
}

type availabilityUseCaseImpl struct {
	planner      *schedule.Planner
	calendar     CalendarGateway
	appointments AppointmentBusyReader
	clock        clock.Clock
}

func NewAvailabilityUseCase(
	planner *schedule.Planner,
	calendar CalendarGateway,
	appointments AppointmentBusyReader,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		planner:      planner,
		calendar:     calendar,
		appointments: appointments,
		clock:        clock,
	}
}

// GetSlots merges busy intervals from the database and the external
// calendar. A calendar outage must not block the booking form, so on error
// the day degrades to calendar-unchecked availability and the double-booking
// guard at confirmation time catches any conflict.
func (a *availabilityUseCaseImpl) GetSlots(ctx context.Context, date time.Time) ([]*readmodel.SlotRM, error) {
	now := a.clock.Now()
	dayStart := startOfDay(date, a.planner.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := a.appointments.BusyBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	calendarBusy, err := a.calendar.ListBusyIntervals(ctx, dayStart, dayEnd)
	if err != nil {
		slog.Warn("calendar unavailable, offering all slots", "date", dayStart.Format("2006-01-02"), "error", err)
	} else {
		busy = append(busy, calendarBusy...)
	}

	slots := a.planner.AvailableSlots(dayStart, busy, now)
	result := make([]*readmodel.SlotRM, 0, len(slots))
	for _, s := range slots {
		result = append(result, &readmodel.SlotRM{
			Start:     s.Start,
			End:       s.End,
			Label:     s.Label,
			Available: s.Available,
		})
	}
	return result, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
