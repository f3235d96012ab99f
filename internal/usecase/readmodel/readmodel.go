// Package readmodel defines the query-side shapes returned to handlers.
// They carry display-ready data and never expose internal-only fields such
// as the workshop origin address.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ServiceRM struct {
	ServiceID         string
	NameFR            string
	NameEN            string
	DescriptionFR     string
	DescriptionEN     string
	BasePrice         float64
	EstimatedDuration int
	Options           []ServiceOptionRM
}

type ServiceOptionRM struct {
	NameFR string
	NameEN string
	Price  float64
}

type QuoteRM struct {
	ID           uuid.UUID
	Number       string
	Status       string
	Subtotal     float64
	TravelCost   float64
	Taxes        float64
	Total        float64
	DistanceKm   float64
	SlotLabel    string
	RequestedFor time.Time
	CreatedAt    time.Time
	Lines        []QuoteLineRM
}

type QuoteLineRM struct {
	ServiceID   string
	ServiceName string
	BasePrice   float64
}

type InvoiceRM struct {
	ID            uuid.UUID
	Number        string
	Status        string
	Subtotal      float64
	TravelCost    float64
	PartsFee      float64
	Taxes         float64
	Total         float64
	PaymentRef    string
	AppointmentID uuid.UUID
	CreatedAt     time.Time
}

type AppointmentRM struct {
	ID        uuid.UUID
	Start     time.Time
	End       time.Time
	SlotLabel string
	Address   string
	Status    string
	CreatedAt time.Time
}

type CustomerRM struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
}

// SlotRM is one availability slot offered to the booking form.
type SlotRM struct {
	Start     time.Time
	End       time.Time
	Label     string
	Available bool
}

// DistanceRM is the resolved customer-to-workshop distance with the source
// that produced it (matrix, geocode or fallback).
type DistanceRM struct {
	DistanceKm float64
	Source     string
}
