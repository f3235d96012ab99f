// Package payment adapts the Square Payments API. Amounts cross the wire in
// minor units (cents).
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/url"

	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/errs"

	"github.com/google/uuid"
)

type SquareGateway struct {
	baseURL  string
	token    string
	currency string
	client   *http.Client
}

func NewSquareGateway(cfg config.PaymentConfig) *SquareGateway {
	return &SquareGateway{
		baseURL:  cfg.BaseURL,
		token:    cfg.AccessToken,
		currency: cfg.Currency,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Charge captures the amount against a tokenized card source and returns the
// provider's payment ID.
type Charge struct {
	PaymentID string
	Status    string
}

type moneyPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createPaymentRequest struct {
	SourceID       string       `json:"source_id"`
	IdempotencyKey string       `json:"idempotency_key"`
	AmountMoney    moneyPayload `json:"amount_money"`
	Note           string       `json:"note,omitempty"`
}

type paymentEnvelope struct {
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// ToMinorUnits converts a dollar amount to cents, rounding half away from
// zero so 174.995 charges 17500 rather than truncating.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (g *SquareGateway) Charge(ctx context.Context, sourceID string, amount float64, note string) (Charge, error) {
	payload := createPaymentRequest{
		SourceID:       sourceID,
		IdempotencyKey: uuid.NewString(),
		AmountMoney:    moneyPayload{Amount: ToMinorUnits(amount), Currency: g.currency},
		Note:           note,
	}
	var envelope paymentEnvelope
	if err := g.post(ctx, "/v2/payments", payload, &envelope); err != nil {
		return Charge{}, errs.Mark(err, errs.ErrPaymentFailed)
	}
	if len(envelope.Errors) > 0 {
		return Charge{}, errs.Mark(errs.New("payment declined: "+envelope.Errors[0].Code), errs.ErrPaymentFailed)
	}
	if envelope.Payment.Status != "COMPLETED" && envelope.Payment.Status != "APPROVED" {
		return Charge{}, errs.Mark(errs.New("payment not completed: "+envelope.Payment.Status), errs.ErrPaymentFailed)
	}
	return Charge{PaymentID: envelope.Payment.ID, Status: envelope.Payment.Status}, nil
}

type refundRequest struct {
	IdempotencyKey string       `json:"idempotency_key"`
	PaymentID      string       `json:"payment_id"`
	AmountMoney    moneyPayload `json:"amount_money"`
	Reason         string       `json:"reason,omitempty"`
}

type refundEnvelope struct {
	Refund struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"refund"`
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// refundIdempotencyKey is stable per payment so a retried cancellation, for
// example after a status update failed midway, dedupes at the provider
// instead of refunding twice.
func refundIdempotencyKey(paymentID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("refund:"+paymentID)).String()
}

// Refund returns the full amount of a prior charge, used on cancellation.
func (g *SquareGateway) Refund(ctx context.Context, paymentID string, amount float64, reason string) (string, error) {
	payload := refundRequest{
		IdempotencyKey: refundIdempotencyKey(paymentID),
		PaymentID:      paymentID,
		AmountMoney:    moneyPayload{Amount: ToMinorUnits(amount), Currency: g.currency},
		Reason:         reason,
	}
	var envelope refundEnvelope
	if err := g.post(ctx, "/v2/refunds", payload, &envelope); err != nil {
		return "", errs.Mark(err, errs.ErrPaymentFailed)
	}
	if len(envelope.Errors) > 0 {
		return "", errs.Mark(errs.New("refund declined: "+envelope.Errors[0].Code), errs.ErrPaymentFailed)
	}
	return envelope.Refund.ID, nil
}

// GetPayment fetches a prior charge so the booking flow can verify the
// payment-completed precondition server side.
func (g *SquareGateway) GetPayment(ctx context.Context, paymentID string) (Charge, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v2/payments/"+url.PathEscape(paymentID), nil)
	if err != nil {
		return Charge{}, errs.Wrap(err, "failed to build payment lookup request")
	}
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.client.Do(req)
	if err != nil {
		return Charge{}, errs.Wrap(err, "payment lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Charge{}, errs.Mark(errs.New("payment not found"), errs.ErrPaymentNotCompleted)
	}
	if resp.StatusCode != http.StatusOK {
		return Charge{}, errs.New("payment lookup returned status " + resp.Status)
	}

	var envelope paymentEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Charge{}, errs.Wrap(err, "failed to decode payment lookup response")
	}
	return Charge{PaymentID: envelope.Payment.ID, Status: envelope.Payment.Status}, nil
}

func (g *SquareGateway) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal payment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "payment request failed")
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode payment response")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errs.New("payment api returned status " + resp.Status)
	}
	return nil
}
