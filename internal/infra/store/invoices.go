package store

import (
	"context"
	"errors"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/infra"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceStore struct {
	pool *pgxpool.Pool
}

func NewInvoiceStore(pool *pgxpool.Pool) *InvoiceStore {
	return &InvoiceStore{pool: pool}
}

// Invoices are written together with their appointment, inside the booking
// transaction in AppointmentStore.CreateWithInvoice.
const insertInvoice = `
INSERT INTO invoices (id, number, customer_id, appointment_id, lines,
                      distance_km, subtotal, travel_cost, parts_fee, taxes, total,
                      status, payment_ref, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())`

const selectInvoicesByCustomer = `
SELECT id, number, status, subtotal, travel_cost, parts_fee, taxes, total,
       payment_ref, appointment_id, created_at
FROM invoices
WHERE customer_id = $1
ORDER BY created_at DESC`

func (s *InvoiceStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.InvoiceRM, error) {
	rows, err := s.pool.Query(ctx, selectInvoicesByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query invoices", err)
	}
	defer rows.Close()

	var result []*readmodel.InvoiceRM
	for rows.Next() {
		var rm readmodel.InvoiceRM
		err := rows.Scan(
			&rm.ID, &rm.Number, &rm.Status,
			&rm.Subtotal, &rm.TravelCost, &rm.PartsFee, &rm.Taxes, &rm.Total,
			&rm.PaymentRef, &rm.AppointmentID, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice rows", err)
	}
	return result, nil
}

const selectInvoiceByAppointment = `
SELECT id, number, status, subtotal, travel_cost, parts_fee, taxes, total,
       payment_ref, appointment_id, created_at
FROM invoices
WHERE appointment_id = $1 AND customer_id = $2`

func (s *InvoiceStore) FindByAppointmentID(ctx context.Context, appointmentID, customerID uuid.UUID) (*readmodel.InvoiceRM, error) {
	var rm readmodel.InvoiceRM
	err := s.pool.QueryRow(ctx, selectInvoiceByAppointment, appointmentID, customerID).Scan(
		&rm.ID, &rm.Number, &rm.Status,
		&rm.Subtotal, &rm.TravelCost, &rm.PartsFee, &rm.Taxes, &rm.Total,
		&rm.PaymentRef, &rm.AppointmentID, &rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice", err)
	}
	return &rm, nil
}

const updateInvoiceStatus = `
UPDATE invoices SET status = $2 WHERE id = $1`

func (s *InvoiceStore) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.InvoiceStatus) error {
	tag, err := s.pool.Exec(ctx, updateInvoiceStatus, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}
