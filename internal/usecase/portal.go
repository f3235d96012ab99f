package usecase

import (
	"context"

	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// PortalUseCase serves the authenticated client portal: quote history,
// invoices and upcoming appointments, always scoped to the logged-in
// customer.
type PortalUseCase interface {
	ListQuotes(ctx context.Context, customerID uuid.UUID) ([]*readmodel.QuoteRM, error)
	ListInvoices(ctx context.Context, customerID uuid.UUID) ([]*readmodel.InvoiceRM, error)
	ListAppointments(ctx context.Context, customerID uuid.UUID) ([]*readmodel.AppointmentRM, error)
}

type portalUseCaseImpl struct {
	quotes       QuoteRepository
	invoices     InvoiceRepository
	appointments AppointmentRepository
}

func NewPortalUseCase(
	quotes QuoteRepository,
	invoices InvoiceRepository,
	appointments AppointmentRepository,
) PortalUseCase {
	return &portalUseCaseImpl{
		quotes:       quotes,
		invoices:     invoices,
		appointments: appointments,
	}
}

func (p *portalUseCaseImpl) ListQuotes(ctx context.Context, customerID uuid.UUID) ([]*readmodel.QuoteRM, error) {
	quotes, err := p.quotes.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return quotes, nil
}

func (p *portalUseCaseImpl) ListInvoices(ctx context.Context, customerID uuid.UUID) ([]*readmodel.InvoiceRM, error) {
	invoices, err := p.invoices.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return invoices, nil
}

func (p *portalUseCaseImpl) ListAppointments(ctx context.Context, customerID uuid.UUID) ([]*readmodel.AppointmentRM, error) {
	appointments, err := p.appointments.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return appointments, nil
}
