//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mechmobile/internal/handler/api"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"
	"mechmobile/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingUseCase struct {
	result    *usecase.BookingResult
	createErr error
	cancelErr error
	input     usecase.CreateBookingInput
	cancelled uuid.UUID
}

func (s *stubBookingUseCase) CreateBooking(_ context.Context, input usecase.CreateBookingInput) (*usecase.BookingResult, error) {
	s.input = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.result, nil
}

func (s *stubBookingUseCase) CancelAppointment(_ context.Context, appointmentID, _ uuid.UUID) error {
	s.cancelled = appointmentID
	return s.cancelErr
}

func bookingRouter(t *testing.T, uc usecase.BookingUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	router := gin.New()
	handler := api.NewBookingHandler(uc, loc)
	router.POST("/api/bookings", handler.CreateBooking)
	return router
}

func validBookingBody() map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"firstName":     "Marc",
			"lastName":      "Gagnon",
			"email":         "marc@example.com",
			"phone":         "514-555-0002",
			"address":       "456 Boulevard Henri-Bourassa",
			"city":          "Montréal",
			"postalCode":    "H1H 1H1",
			"vehicleBrand":  "Toyota",
			"vehicleModel":  "Corolla",
			"vehicleYear":   "2021",
			"termsAccepted": true,
		},
		"cart": []map[string]any{
			{"serviceId": "oil-change", "quantity": 1},
		},
		"date":       "2026-09-10",
		"timeSlot":   "11h00 - 14h00",
		"paymentRef": "pay-1",
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("returns 201 with invoice and appointment", func(t *testing.T) {
		appointmentID := uuid.New()
		stub := &stubBookingUseCase{
			result: &usecase.BookingResult{
				Invoice: &readmodel.InvoiceRM{
					ID:            uuid.New(),
					Number:        "INV-1756400000000",
					Status:        "paid",
					Total:         100.72,
					AppointmentID: appointmentID,
				},
				Appointment: &readmodel.AppointmentRM{
					ID:        appointmentID,
					SlotLabel: "11h00 - 14h00",
					Status:    "confirmed",
				},
			},
		}
		router := bookingRouter(t, stub)

		rec := performRequest(t, router, http.MethodPost, "/api/bookings", validBookingBody(), nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body struct {
			Invoice struct {
				Number string `json:"number"`
				Status string `json:"status"`
			} `json:"invoice"`
			Appointment struct {
				SlotLabel string `json:"slotLabel"`
				Status    string `json:"status"`
			} `json:"appointment"`
		}
		decodeBody(t, rec, &body)
		assert.Equal(t, "INV-1756400000000", body.Invoice.Number)
		assert.Equal(t, "paid", body.Invoice.Status)
		assert.Equal(t, "confirmed", body.Appointment.Status)

		assert.Equal(t, "pay-1", stub.input.PaymentRef)
		require.Len(t, stub.input.Cart, 1)
		assert.Equal(t, "oil-change", stub.input.Cart[0].ServiceID)
	})

	t.Run("returns 400 when the cart has a zero quantity", func(t *testing.T) {
		router := bookingRouter(t, &stubBookingUseCase{})

		body := validBookingBody()
		body["cart"] = []map[string]any{{"serviceId": "oil-change", "quantity": 0}}
		rec := performRequest(t, router, http.MethodPost, "/api/bookings", body, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 402 when the payment is not completed", func(t *testing.T) {
		router := bookingRouter(t, &stubBookingUseCase{createErr: errs.ErrPaymentNotCompleted})

		rec := performRequest(t, router, http.MethodPost, "/api/bookings", validBookingBody(), nil)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("returns 409 when the slot is taken", func(t *testing.T) {
		router := bookingRouter(t, &stubBookingUseCase{createErr: errs.ErrSlotConflict})

		rec := performRequest(t, router, http.MethodPost, "/api/bookings", validBookingBody(), nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("returns 400 for an unknown slot label", func(t *testing.T) {
		router := bookingRouter(t, &stubBookingUseCase{createErr: errs.ErrInvalidTimeSlot})

		rec := performRequest(t, router, http.MethodPost, "/api/bookings", validBookingBody(), nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
