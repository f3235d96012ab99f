package response

import (
	"time"

	"mechmobile/internal/infra/payment"
	"mechmobile/internal/usecase"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	Status        string    `json:"status"`
	Subtotal      float64   `json:"subtotal"`
	TravelCost    float64   `json:"travelCost"`
	PartsFee      float64   `json:"partsFee"`
	Taxes         float64   `json:"taxes"`
	Total         float64   `json:"total"`
	PaymentRef    string    `json:"paymentRef,omitempty"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AppointmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	SlotLabel string    `json:"slotLabel"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingResponse struct {
	Invoice     *InvoiceResponse     `json:"invoice"`
	Appointment *AppointmentResponse `json:"appointment"`
	Warnings    []string             `json:"warnings,omitempty"`
}

type ChargeResponse struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

func FromInvoiceRM(rm *readmodel.InvoiceRM) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            rm.ID,
		Number:        rm.Number,
		Status:        rm.Status,
		Subtotal:      rm.Subtotal,
		TravelCost:    rm.TravelCost,
		PartsFee:      rm.PartsFee,
		Taxes:         rm.Taxes,
		Total:         rm.Total,
		PaymentRef:    rm.PaymentRef,
		AppointmentID: rm.AppointmentID,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromAppointmentRM(rm *readmodel.AppointmentRM) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        rm.ID,
		Start:     rm.Start,
		End:       rm.End,
		SlotLabel: rm.SlotLabel,
		Address:   rm.Address,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
	}
}

func FromBookingResult(result *usecase.BookingResult) *BookingResponse {
	return &BookingResponse{
		Invoice:     FromInvoiceRM(result.Invoice),
		Appointment: FromAppointmentRM(result.Appointment),
		Warnings:    result.Warnings,
	}
}

func FromCharge(charge payment.Charge) *ChargeResponse {
	return &ChargeResponse{
		PaymentID: charge.PaymentID,
		Status:    charge.Status,
	}
}
