package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mechmobile/internal/domain/booking"
	"mechmobile/internal/domain/schedule"
	"mechmobile/internal/infra"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeExclusionViolation = "23P01"

type AppointmentStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentStore(pool *pgxpool.Pool) *AppointmentStore {
	return &AppointmentStore{pool: pool}
}

const insertAppointment = `
INSERT INTO appointments (id, customer_id, invoice_id, start_at, end_at,
                          slot_label, address, status, calendar_event_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`

// CreateWithInvoice persists the appointment and its invoice in one
// transaction so a failure on either insert leaves no partial booking
// behind. The exclusion constraint on (start_at, end_at) for confirmed rows
// rejects double bookings that race past the calendar check.
func (s *AppointmentStore) CreateWithInvoice(ctx context.Context, a *booking.Appointment, inv *booking.Invoice) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	_, err = tx.Exec(ctx, insertAppointment,
		a.ID, a.CustomerID, a.InvoiceID, a.Start, a.End,
		a.SlotLabel, a.Address, string(a.Status), a.CalendarEventID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation {
			return infra.WrapRepoErr("slot already booked", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create appointment", err)
	}

	_, err = tx.Exec(ctx, insertInvoice,
		inv.ID, inv.Number, inv.CustomerID, inv.AppointmentID, quoteLinesToRows(inv.Lines),
		inv.DistanceKm, inv.Subtotal, inv.TravelCost, inv.PartsFee, inv.Taxes, inv.Total,
		string(inv.Status), inv.PaymentRef,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invoice", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking transaction", err)
	}
	return nil
}

const selectAppointment = `
SELECT id, customer_id, invoice_id, start_at, end_at,
       slot_label, address, status, calendar_event_id, created_at
FROM appointments
WHERE id = $1 AND customer_id = $2`

func (s *AppointmentStore) FindByID(ctx context.Context, id, customerID uuid.UUID) (*booking.Appointment, error) {
	var (
		a      booking.Appointment
		status string
	)
	err := s.pool.QueryRow(ctx, selectAppointment, id, customerID).Scan(
		&a.ID, &a.CustomerID, &a.InvoiceID, &a.Start, &a.End,
		&a.SlotLabel, &a.Address, &status, &a.CalendarEventID, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}
	a.Status = booking.AppointmentStatus(status)
	return &a, nil
}

const selectAppointmentsByCustomer = `
SELECT id, start_at, end_at, slot_label, address, status, created_at
FROM appointments
WHERE customer_id = $1
ORDER BY start_at DESC`

func (s *AppointmentStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.AppointmentRM, error) {
	rows, err := s.pool.Query(ctx, selectAppointmentsByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query appointments", err)
	}
	defer rows.Close()

	var result []*readmodel.AppointmentRM
	for rows.Next() {
		var rm readmodel.AppointmentRM
		err := rows.Scan(&rm.ID, &rm.Start, &rm.End, &rm.SlotLabel, &rm.Address, &rm.Status, &rm.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", err)
	}
	return result, nil
}

const selectBusyBetween = `
SELECT start_at, end_at
FROM appointments
WHERE status = 'confirmed' AND start_at < $2 AND end_at > $1`

// BusyBetween returns confirmed appointments overlapping [from, to), merged
// with the external calendar by the availability usecase.
func (s *AppointmentStore) BusyBetween(ctx context.Context, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := s.pool.Query(ctx, selectBusyBetween, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query busy appointments", err)
	}
	defer rows.Close()

	var result []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy row", err)
		}
		result = append(result, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy rows", err)
	}
	return result, nil
}

const updateAppointmentStatus = `
UPDATE appointments SET status = $3 WHERE id = $1 AND customer_id = $2`

func (s *AppointmentStore) UpdateStatus(ctx context.Context, id, customerID uuid.UUID, status booking.AppointmentStatus) error {
	tag, err := s.pool.Exec(ctx, updateAppointmentStatus, id, customerID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
