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

type QuoteStore struct {
	pool *pgxpool.Pool
}

func NewQuoteStore(pool *pgxpool.Pool) *QuoteStore {
	return &QuoteStore{pool: pool}
}

const insertQuote = `
INSERT INTO quotes (id, number, customer_id, lines, distance_km,
                    subtotal, travel_cost, taxes, total,
                    status, requested_for, slot_label, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())`

func (s *QuoteStore) Create(ctx context.Context, q *booking.Quote) error {
	_, err := s.pool.Exec(ctx, insertQuote,
		q.ID, q.Number, q.CustomerID, quoteLinesToRows(q.Lines), q.DistanceKm,
		q.Subtotal, q.TravelCost, q.Taxes, q.Total,
		string(q.Status), q.RequestedFor, q.SlotLabel,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

const selectQuotesByCustomer = `
SELECT id, number, status, subtotal, travel_cost, taxes, total,
       distance_km, slot_label, requested_for, created_at, lines
FROM quotes
WHERE customer_id = $1
ORDER BY created_at DESC`

func (s *QuoteStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.QuoteRM, error) {
	rows, err := s.pool.Query(ctx, selectQuotesByCustomer, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query quotes", err)
	}
	defer rows.Close()

	var result []*readmodel.QuoteRM
	for rows.Next() {
		rm, err := scanQuoteRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote rows", err)
	}
	return result, nil
}

const selectQuoteByID = `
SELECT id, number, status, subtotal, travel_cost, taxes, total,
       distance_km, slot_label, requested_for, created_at, lines
FROM quotes
WHERE id = $1 AND customer_id = $2`

// FindByID scopes by customer so one portal account can never read another
// account's quote.
func (s *QuoteStore) FindByID(ctx context.Context, id, customerID uuid.UUID) (*readmodel.QuoteRM, error) {
	rm, err := scanQuoteRM(s.pool.QueryRow(ctx, selectQuoteByID, id, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote", err)
	}
	return rm, nil
}

const updateQuoteStatus = `
UPDATE quotes SET status = $3 WHERE id = $1 AND customer_id = $2`

func (s *QuoteStore) UpdateStatus(ctx context.Context, id, customerID uuid.UUID, status booking.QuoteStatus) error {
	tag, err := s.pool.Exec(ctx, updateQuoteStatus, id, customerID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update quote status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuoteRM(row rowScanner) (*readmodel.QuoteRM, error) {
	var (
		rm    readmodel.QuoteRM
		lines []quoteLineRow
	)
	err := row.Scan(
		&rm.ID, &rm.Number, &rm.Status,
		&rm.Subtotal, &rm.TravelCost, &rm.Taxes, &rm.Total,
		&rm.DistanceKm, &rm.SlotLabel, &rm.RequestedFor, &rm.CreatedAt,
		&lines,
	)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		rm.Lines = append(rm.Lines, readmodel.QuoteLineRM{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			BasePrice:   l.BasePrice,
		})
	}
	return &rm, nil
}

// quoteLineRow mirrors the JSONB shape stored in quotes.lines and
// invoices.lines.
type quoteLineRow struct {
	ServiceID   string            `json:"service_id"`
	ServiceName string            `json:"service_name"`
	BasePrice   float64           `json:"base_price"`
	Options     []quoteOptionsRow `json:"options,omitempty"`
}

type quoteOptionsRow struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func quoteLinesToRows(lines []booking.QuoteLine) []quoteLineRow {
	out := make([]quoteLineRow, 0, len(lines))
	for _, l := range lines {
		row := quoteLineRow{
			ServiceID:   l.ServiceID,
			ServiceName: l.ServiceName,
			BasePrice:   l.BasePrice,
		}
		for _, o := range l.Options {
			row.Options = append(row.Options, quoteOptionsRow{
				Name: o.Name, Price: o.Price, Quantity: o.Quantity,
			})
		}
		out = append(out, row)
	}
	return out
}
