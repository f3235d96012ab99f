package api

import (
	"errors"
	"net/http"

	reqdto "mechmobile/internal/handler/dto/request"
	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Charge a payment
// @Description Charge a tokenized card ahead of booking confirmation
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ChargeRequest true "Charge request"
// @Success 201 {object} resdto.ChargeResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Charge(c *gin.Context) {
	var req reqdto.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	charge, err := h.paymentUseCase.Charge(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentFailed):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment was declined",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCharge(charge))
}
