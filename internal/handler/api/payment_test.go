//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"mechmobile/internal/handler/api"
	"mechmobile/internal/infra/payment"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentUseCase struct {
	charge payment.Charge
	err    error
	input  usecase.ChargeInput
}

func (s *stubPaymentUseCase) Charge(_ context.Context, input usecase.ChargeInput) (payment.Charge, error) {
	s.input = input
	if s.err != nil {
		return payment.Charge{}, s.err
	}
	return s.charge, nil
}

func paymentRouter(uc usecase.PaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/payments", api.NewPaymentHandler(uc).Charge)
	return router
}

func TestPaymentHandler_Charge(t *testing.T) {
	t.Run("returns 201 with the payment id", func(t *testing.T) {
		stub := &stubPaymentUseCase{charge: payment.Charge{PaymentID: "pay-1", Status: "COMPLETED"}}
		router := paymentRouter(stub)

		rec := performRequest(t, router, http.MethodPost, "/api/payments", map[string]any{
			"sourceId": "cnon:card-nonce",
			"amount":   100.72,
		}, nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body struct {
			PaymentID string `json:"paymentId"`
			Status    string `json:"status"`
		}
		decodeBody(t, rec, &body)
		assert.Equal(t, "pay-1", body.PaymentID)
		assert.Equal(t, "COMPLETED", body.Status)
		assert.InDelta(t, 100.72, stub.input.Amount, 0.001)
	})

	t.Run("returns 400 without a source", func(t *testing.T) {
		router := paymentRouter(&stubPaymentUseCase{})

		rec := performRequest(t, router, http.MethodPost, "/api/payments", map[string]any{
			"amount": 100.72,
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 402 when the charge is declined", func(t *testing.T) {
		router := paymentRouter(&stubPaymentUseCase{err: errs.ErrPaymentFailed})

		rec := performRequest(t, router, http.MethodPost, "/api/payments", map[string]any{
			"sourceId": "cnon:card-nonce",
			"amount":   100.72,
		}, nil)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})
}
