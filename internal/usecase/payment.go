package usecase

import (
	"context"

	"mechmobile/internal/infra/payment"
	"mechmobile/internal/pkg/errs"
)

// ChargeInput is the standalone payment step the booking form runs before
// submitting the reservation.
type ChargeInput struct {
	SourceID string
	Amount   float64
	Note     string
}

type PaymentUseCase interface {
	Charge(ctx context.Context, input ChargeInput) (payment.Charge, error)
}

type paymentUseCaseImpl struct {
	gateway PaymentGateway
}

func NewPaymentUseCase(gateway PaymentGateway) PaymentUseCase {
	return &paymentUseCaseImpl{gateway: gateway}
}

func (p *paymentUseCaseImpl) Charge(ctx context.Context, input ChargeInput) (payment.Charge, error) {
	if input.SourceID == "" || input.Amount <= 0 {
		return payment.Charge{}, errs.ErrPaymentFailed
	}
	return p.gateway.Charge(ctx, input.SourceID, input.Amount, input.Note)
}
