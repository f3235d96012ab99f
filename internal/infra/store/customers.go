package store

import (
	"context"
	"errors"

	"mechmobile/internal/infra"
	"mechmobile/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type CustomerStore struct {
	pool *pgxpool.Pool
}

func NewCustomerStore(pool *pgxpool.Pool) *CustomerStore {
	return &CustomerStore{pool: pool}
}

const upsertCustomer = `
INSERT INTO customers (id, email, first_name, last_name, phone, password_hash, created_at)
VALUES ($1, lower($2), $3, $4, $5, $6, now())
ON CONFLICT (email) DO UPDATE
SET first_name = EXCLUDED.first_name,
    last_name  = EXCLUDED.last_name,
    phone      = EXCLUDED.phone
RETURNING id`

// Upsert creates the customer record on first contact and refreshes contact
// fields on repeat business. The password hash is only written on insert;
// portal credentials are not clobbered by a new estimate.
func (s *CustomerStore) Upsert(ctx context.Context, email, firstName, lastName, phone, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, upsertCustomer,
		uuid.New(), email, firstName, lastName, phone, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}

const insertCustomer = `
INSERT INTO customers (id, email, first_name, last_name, phone, password_hash, created_at)
VALUES ($1, lower($2), $3, $4, $5, $6, now())`

func (s *CustomerStore) Create(ctx context.Context, email, firstName, lastName, phone, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx, insertCustomer, id, email, firstName, lastName, phone, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

const selectCustomerByEmail = `
SELECT id, email, first_name, last_name, phone, password_hash, created_at
FROM customers
WHERE email = lower($1)`

func (s *CustomerStore) FindByEmail(ctx context.Context, email string) (*readmodel.CustomerRM, error) {
	var rm readmodel.CustomerRM
	err := s.pool.QueryRow(ctx, selectCustomerByEmail, email).Scan(
		&rm.ID, &rm.Email, &rm.FirstName, &rm.LastName, &rm.Phone, &rm.PasswordHash, &rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by email", err)
	}
	return &rm, nil
}

const selectCustomerByID = `
SELECT id, email, first_name, last_name, phone, password_hash, created_at
FROM customers
WHERE id = $1`

func (s *CustomerStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CustomerRM, error) {
	var rm readmodel.CustomerRM
	err := s.pool.QueryRow(ctx, selectCustomerByID, id).Scan(
		&rm.ID, &rm.Email, &rm.FirstName, &rm.LastName, &rm.Phone, &rm.PasswordHash, &rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by id", err)
	}
	return &rm, nil
}
