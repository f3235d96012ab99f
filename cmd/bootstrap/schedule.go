package bootstrap

import (
	"time"

	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewLocation,
		NewPlanner,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Workshop.TimeZone)
}

// NewPlanner builds the slot planner from the configured business hours.
// Every day of the week is open.
func NewPlanner(cfg config.Config, loc *time.Location) (*schedule.Planner, error) {
	hours := schedule.DefaultBusinessHours()
	hours.OpenHour = cfg.Booking.OpenHour
	hours.CloseHour = cfg.Booking.CloseHour

	return schedule.NewPlanner(hours, cfg.Booking.LeadTime, loc)
}
