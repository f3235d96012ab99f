package schedule

import (
	"time"
)

// Interval is an externally reported commitment of the appointment resource.
// Intervals are half-open: [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open overlap test; touching boundaries do not
// overlap, so a booking ending 11:00 leaves the 11h-14h slot free.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return iv.Start.Before(end) && iv.End.After(start)
}

// Planner evaluates slot availability for concrete dates.
type Planner struct {
	hours    BusinessHours
	slots    []SlotDef
	leadTime time.Duration
	loc      *time.Location
}

func NewPlanner(hours BusinessHours, leadTime time.Duration, loc *time.Location) (*Planner, error) {
	slots, err := CanonicalSlots(hours)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &Planner{hours: hours, slots: slots, leadTime: leadTime, loc: loc}, nil
}

// MeetsLeadTime reports whether the requested date clears now + lead time.
// Dates inside the window get zero slots regardless of the calendar.
func (p *Planner) MeetsLeadTime(date, now time.Time) bool {
	return !date.Before(now.Add(p.leadTime))
}

// AvailableSlots produces the day's canonical slots with availability
// computed from busy intervals. Closed weekdays and dates inside the lead
// time yield an empty list.
func (p *Planner) AvailableSlots(date time.Time, busy []Interval, now time.Time) []TimeSlot {
	if !p.MeetsLeadTime(date, now) {
		return nil
	}
	if !p.hours.IsOpenDay(date.In(p.loc).Weekday()) {
		return nil
	}

	out := make([]TimeSlot, 0, len(p.slots))
	for _, def := range p.slots {
		slot := def.materialize(date, p.loc)

		// Defensive: canonical slots are pre-aligned, but a config change
		// must never surface a slot outside business hours.
		if !def.fitsWithin(p.hours) {
			slot.Available = false
			out = append(out, slot)
			continue
		}

		slot.Available = true
		for _, iv := range busy {
			if iv.Overlaps(slot.Start, slot.End) {
				slot.Available = false
				break
			}
		}
		out = append(out, slot)
	}
	return out
}

// AllSlotsOpen is the degraded result used when the calendar provider cannot
// be reached: every canonical slot offered as available.
func (p *Planner) AllSlotsOpen(date time.Time) []TimeSlot {
	out := make([]TimeSlot, 0, len(p.slots))
	for _, def := range p.slots {
		slot := def.materialize(date, p.loc)
		slot.Available = true
		out = append(out, slot)
	}
	return out
}

// SlotByLabel resolves a customer-chosen slot label ("11h00 - 14h00") onto a
// concrete date.
func (p *Planner) SlotByLabel(date time.Time, label string) (TimeSlot, bool) {
	for _, def := range p.slots {
		if def.Label() == label {
			return def.materialize(date, p.loc), true
		}
	}
	return TimeSlot{}, false
}

// Location returns the planner's time zone, shared with the calendar adapter
// so day boundaries line up.
func (p *Planner) Location() *time.Location {
	return p.loc
}
