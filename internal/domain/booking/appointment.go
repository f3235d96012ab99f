package booking

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a confirmed on-site visit occupying one canonical slot.
type Appointment struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	InvoiceID       uuid.UUID
	Start           time.Time
	End             time.Time
	SlotLabel       string
	Address         string
	Status          AppointmentStatus
	CalendarEventID string
	CreatedAt       time.Time
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
