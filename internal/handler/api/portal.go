package api

import (
	"errors"
	"net/http"

	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/handler/middleware"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PortalHandler struct {
	portalUseCase  usecase.PortalUseCase
	bookingUseCase usecase.BookingUseCase
}

func NewPortalHandler(portalUseCase usecase.PortalUseCase, bookingUseCase usecase.BookingUseCase) *PortalHandler {
	return &PortalHandler{
		portalUseCase:  portalUseCase,
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List customer quotes
// @Description List the logged-in customer's quotes, newest first
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QuoteResponse
// @Failure 401 {object} map[string]string
// @Router /portal/quotes [get]
func (h *PortalHandler) ListQuotes(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	quotesRM, err := h.portalUseCase.ListQuotes(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromQuoteRMList(quotesRM)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List customer invoices
// @Description List the logged-in customer's invoices
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 401 {object} map[string]string
// @Router /portal/invoices [get]
func (h *PortalHandler) ListInvoices(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	invoicesRM, err := h.portalUseCase.ListInvoices(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromInvoiceRMList(invoicesRM)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List customer appointments
// @Description List the logged-in customer's appointments
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} map[string]string
// @Router /portal/appointments [get]
func (h *PortalHandler) ListAppointments(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentsRM, err := h.portalUseCase.ListAppointments(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromAppointmentRMList(appointmentsRM)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel appointment
// @Description Cancel an appointment and refund its payment while the cancellation window is open
// @Tags portal
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /portal/appointments/{id} [delete]
func (h *PortalHandler) CancelAppointment(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	err = h.bookingUseCase.CancelAppointment(c.Request.Context(), appointmentID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, errs.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		case errors.Is(err, errs.ErrCancelWindowClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointments must be cancelled at least 24 hours in advance",
			})
		case errors.Is(err, errs.ErrPaymentFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Refund could not be processed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
