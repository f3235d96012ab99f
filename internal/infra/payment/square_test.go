//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mechmobile/internal/infra/payment"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(url string) *payment.SquareGateway {
	return payment.NewSquareGateway(config.PaymentConfig{
		BaseURL:  url,
		Currency: "CAD",
		Timeout:  time.Second,
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(10072), payment.ToMinorUnits(100.72))
	assert.Equal(t, int64(17500), payment.ToMinorUnits(174.995))
	assert.Equal(t, int64(0), payment.ToMinorUnits(0))
}

func TestRefund(t *testing.T) {
	t.Run("retried refunds reuse the same idempotency key", func(t *testing.T) {
		var keys []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				IdempotencyKey string `json:"idempotency_key"`
				PaymentID      string `json:"payment_id"`
				AmountMoney    struct {
					Amount int64 `json:"amount"`
				} `json:"amount_money"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			keys = append(keys, body.IdempotencyKey)
			assert.Equal(t, "pay-123", body.PaymentID)
			assert.Equal(t, int64(10072), body.AmountMoney.Amount)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"refund": map[string]any{"id": "ref-1", "status": "COMPLETED"},
			})
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		ctx := context.Background()

		_, err := g.Refund(ctx, "pay-123", 100.72, "Annulation du rendez-vous")
		require.NoError(t, err)
		_, err = g.Refund(ctx, "pay-123", 100.72, "Annulation du rendez-vous")
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEmpty(t, keys[0])
		assert.Equal(t, keys[0], keys[1])
	})

	t.Run("distinct payments get distinct keys", func(t *testing.T) {
		var keys []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				IdempotencyKey string `json:"idempotency_key"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			keys = append(keys, body.IdempotencyKey)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"refund": map[string]any{"id": "ref-1", "status": "COMPLETED"},
			})
		}))
		defer srv.Close()

		g := testGateway(srv.URL)
		ctx := context.Background()

		_, err := g.Refund(ctx, "pay-1", 50, "Annulation du rendez-vous")
		require.NoError(t, err)
		_, err = g.Refund(ctx, "pay-2", 50, "Annulation du rendez-vous")
		require.NoError(t, err)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
	})

	t.Run("declined refund surfaces a payment failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"errors": []map[string]any{{"code": "REFUND_DECLINED", "detail": "declined"}},
			})
		}))
		defer srv.Close()

		_, err := testGateway(srv.URL).Refund(context.Background(), "pay-123", 100.72, "Annulation du rendez-vous")
		assert.ErrorIs(t, err, errs.ErrPaymentFailed)
	})
}
