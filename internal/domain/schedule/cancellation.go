package schedule

import "time"

// CancelPolicy refuses cancellations too close to the appointment. The
// cutoff is 23.98 hours (23h59): an appointment 23h away cannot be
// cancelled, one 25h away can.
type CancelPolicy struct {
	CutoffHours float64
}

func NewCancelPolicy(cutoffHours float64) CancelPolicy {
	return CancelPolicy{CutoffHours: cutoffHours}
}

func (p CancelPolicy) CanCancel(appointmentStart, now time.Time) bool {
	hoursUntil := appointmentStart.Sub(now).Hours()
	return hoursUntil > p.CutoffHours
}
