package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// QuoteLine is a priced snapshot of one selected service at quote time.
// Catalog prices may change later; the quote keeps what the customer saw.
type QuoteLine struct {
	ServiceID   string
	ServiceName string
	BasePrice   float64
	Options     []QuoteOptionLine
}

type QuoteOptionLine struct {
	Name     string
	Price    float64
	Quantity int
}

// Quote is a persisted price estimate with a human-readable reference
// number and the full cost breakdown frozen at creation.
type Quote struct {
	ID           uuid.UUID
	Number       string
	CustomerID   uuid.UUID
	Customer     CustomerInfo
	Lines        []QuoteLine
	DistanceKm   float64
	Subtotal     float64
	TravelCost   float64
	Taxes        float64
	Total        float64
	Status       QuoteStatus
	RequestedFor time.Time
	SlotLabel    string
	CreatedAt    time.Time
}

// QuoteNumber builds the customer-facing reference from the creation
// instant, millisecond precision.
func QuoteNumber(at time.Time) string {
	return fmt.Sprintf("EST-%d", at.UnixMilli())
}

func (q *Quote) Approve() {
	q.Status = QuoteStatusApproved
}

func (q *Quote) Reject() {
	q.Status = QuoteStatusRejected
}
