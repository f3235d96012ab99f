package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice records a completed payment for a booked appointment. Bookings are
// paid up front, so invoices are created already paid.
type Invoice struct {
	ID            uuid.UUID
	Number        string
	CustomerID    uuid.UUID
	AppointmentID uuid.UUID
	Lines         []QuoteLine
	DistanceKm    float64
	Subtotal      float64
	TravelCost    float64
	PartsFee      float64
	Taxes         float64
	Total         float64
	Status        InvoiceStatus
	PaymentRef    string
	CreatedAt     time.Time
}

func InvoiceNumber(at time.Time) string {
	return fmt.Sprintf("INV-%d", at.UnixMilli())
}

// Cancel marks the invoice cancelled after a refund.
func (i *Invoice) Cancel() {
	i.Status = InvoiceStatusCancelled
}
