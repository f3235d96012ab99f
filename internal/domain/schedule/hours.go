// Package schedule computes bookable appointment slots from business hours,
// canonical 3-hour windows, the minimum lead time, and externally supplied
// busy intervals.
package schedule

import (
	"fmt"
	"time"

	"mechmobile/internal/pkg/errs"
)

// BusinessHours is the shop's operating window: [OpenHour, CloseHour) on
// every listed weekday.
type BusinessHours struct {
	OpenHour  int
	CloseHour int
	OpenDays  map[time.Weekday]bool
}

// DefaultBusinessHours: 8h00-18h00, seven days a week.
func DefaultBusinessHours() BusinessHours {
	days := make(map[time.Weekday]bool, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = true
	}
	return BusinessHours{OpenHour: 8, CloseHour: 18, OpenDays: days}
}

func (h BusinessHours) IsOpenDay(day time.Weekday) bool {
	return h.OpenDays[day]
}

// SlotDef is one canonical daily offering: a fixed start/end hour pair.
type SlotDef struct {
	StartHour int
	EndHour   int
}

func (d SlotDef) Label() string {
	return fmt.Sprintf("%dh00 - %dh00", d.StartHour, d.EndHour)
}

// fitsWithin holds the hard slot invariant: a slot must start at or after
// opening and end at or before closing. A 17h-20h slot is rejected here, not
// special-cased downstream.
func (d SlotDef) fitsWithin(h BusinessHours) bool {
	return d.StartHour >= h.OpenHour && d.EndHour <= h.CloseHour
}

// CanonicalSlots returns the three fixed 3-hour windows offered every open
// day, validated against the business hours.
func CanonicalSlots(h BusinessHours) ([]SlotDef, error) {
	defs := []SlotDef{
		{StartHour: 8, EndHour: 11},
		{StartHour: 11, EndHour: 14},
		{StartHour: 14, EndHour: 17},
	}
	for _, d := range defs {
		if !d.fitsWithin(h) {
			return nil, errs.New("canonical slot extends past business hours: " + d.Label())
		}
	}
	return defs, nil
}

// TimeSlot is a canonical slot materialized on a concrete date.
type TimeSlot struct {
	Start     time.Time
	End       time.Time
	Label     string
	Available bool
}

// materialize pins a slot definition onto a calendar day in the given zone.
func (d SlotDef) materialize(date time.Time, loc *time.Location) TimeSlot {
	y, m, day := date.In(loc).Date()
	return TimeSlot{
		Start: time.Date(y, m, day, d.StartHour, 0, 0, 0, loc),
		End:   time.Date(y, m, day, d.EndHour, 0, 0, 0, loc),
		Label: d.Label(),
	}
}
