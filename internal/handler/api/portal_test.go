//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"mechmobile/internal/handler/api"
	"mechmobile/internal/handler/middleware"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/jwt"
	"mechmobile/internal/usecase"
	"mechmobile/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPortalUseCase struct {
	quotes       []*readmodel.QuoteRM
	invoices     []*readmodel.InvoiceRM
	appointments []*readmodel.AppointmentRM
	err          error
	customerID   uuid.UUID
}

func (s *stubPortalUseCase) ListQuotes(_ context.Context, customerID uuid.UUID) ([]*readmodel.QuoteRM, error) {
	s.customerID = customerID
	return s.quotes, s.err
}

func (s *stubPortalUseCase) ListInvoices(_ context.Context, customerID uuid.UUID) ([]*readmodel.InvoiceRM, error) {
	s.customerID = customerID
	return s.invoices, s.err
}

func (s *stubPortalUseCase) ListAppointments(_ context.Context, customerID uuid.UUID) ([]*readmodel.AppointmentRM, error) {
	s.customerID = customerID
	return s.appointments, s.err
}

func portalRouter(portal usecase.PortalUseCase, booking usecase.BookingUseCase, jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewPortalHandler(portal, booking)
	authMw := middleware.NewAuthMiddleware(jwtService)

	group := router.Group("/api/portal")
	group.Use(authMw.RequireAuth())
	group.GET("/quotes", handler.ListQuotes)
	group.GET("/invoices", handler.ListInvoices)
	group.GET("/appointments", handler.ListAppointments)
	group.DELETE("/appointments/:id", handler.CancelAppointment)
	return router
}

func TestPortalHandler(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	customerID := uuid.New()
	token, err := jwtService.GenerateToken(customerID, "marie@example.com")
	require.NoError(t, err)
	authHeader := map[string]string{"Authorization": "Bearer " + token}

	t.Run("rejects requests without a token", func(t *testing.T) {
		router := portalRouter(&stubPortalUseCase{}, &stubBookingUseCase{}, jwtService)

		rec := performRequest(t, router, http.MethodGet, "/api/portal/quotes", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		router := portalRouter(&stubPortalUseCase{}, &stubBookingUseCase{}, jwtService)

		rec := performRequest(t, router, http.MethodGet, "/api/portal/quotes", nil,
			map[string]string{"Authorization": "Bearer not-a-jwt"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lists quotes scoped to the token's customer", func(t *testing.T) {
		stub := &stubPortalUseCase{
			quotes: []*readmodel.QuoteRM{
				{ID: uuid.New(), Number: "EST-1756400000000", Status: "pending", Total: 174.99},
			},
		}
		router := portalRouter(stub, &stubBookingUseCase{}, jwtService)

		rec := performRequest(t, router, http.MethodGet, "/api/portal/quotes", nil, authHeader)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []struct {
			Number string `json:"number"`
		}
		decodeBody(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "EST-1756400000000", body[0].Number)
		assert.Equal(t, customerID, stub.customerID)
	})

	t.Run("lists invoices", func(t *testing.T) {
		stub := &stubPortalUseCase{
			invoices: []*readmodel.InvoiceRM{
				{ID: uuid.New(), Number: "INV-1756400000000", Status: "paid", Total: 100.72},
			},
		}
		router := portalRouter(stub, &stubBookingUseCase{}, jwtService)

		rec := performRequest(t, router, http.MethodGet, "/api/portal/invoices", nil, authHeader)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []struct {
			Number string  `json:"number"`
			Status string  `json:"status"`
			Total  float64 `json:"total"`
		}
		decodeBody(t, rec, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "paid", body[0].Status)
		assert.InDelta(t, 100.72, body[0].Total, 0.001)
	})

	t.Run("cancels an appointment", func(t *testing.T) {
		booking := &stubBookingUseCase{}
		router := portalRouter(&stubPortalUseCase{}, booking, jwtService)

		appointmentID := uuid.New()
		rec := performRequest(t, router, http.MethodDelete, "/api/portal/appointments/"+appointmentID.String(), nil, authHeader)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, appointmentID, booking.cancelled)
	})

	t.Run("returns 409 when the cancellation window is closed", func(t *testing.T) {
		booking := &stubBookingUseCase{cancelErr: errs.ErrCancelWindowClosed}
		router := portalRouter(&stubPortalUseCase{}, booking, jwtService)

		rec := performRequest(t, router, http.MethodDelete, "/api/portal/appointments/"+uuid.NewString(), nil, authHeader)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("returns 404 for an unknown appointment", func(t *testing.T) {
		booking := &stubBookingUseCase{cancelErr: errs.ErrAppointmentNotFound}
		router := portalRouter(&stubPortalUseCase{}, booking, jwtService)

		rec := performRequest(t, router, http.MethodDelete, "/api/portal/appointments/"+uuid.NewString(), nil, authHeader)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns 400 for a malformed appointment id", func(t *testing.T) {
		router := portalRouter(&stubPortalUseCase{}, &stubBookingUseCase{}, jwtService)

		rec := performRequest(t, router, http.MethodDelete, "/api/portal/appointments/not-a-uuid", nil, authHeader)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
