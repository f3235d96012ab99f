// Package store implements the persistence ports over pgx. SQL is written
// by hand against the schema in migrations/.
package store

import (
	"context"
	"errors"

	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceStore struct {
	pool *pgxpool.Pool
}

func NewServiceStore(pool *pgxpool.Pool) *ServiceStore {
	return &ServiceStore{pool: pool}
}

const selectServices = `
SELECT service_id, name_fr, name_en, description_fr, description_en,
       base_price, estimated_duration, options
FROM services
ORDER BY sort_order, service_id`

// LoadCatalog reads every active service with its options. Options live in a
// JSONB column since they are always read with their parent and never
// queried on their own.
func (s *ServiceStore) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.pool.Query(ctx, selectServices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query services", err)
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		var (
			svc     catalog.Service
			options []optionRow
		)
		err := rows.Scan(
			&svc.ServiceID,
			&svc.Name.FR, &svc.Name.EN,
			&svc.Description.FR, &svc.Description.EN,
			&svc.BasePrice,
			&svc.EstimatedDuration,
			&options,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		for _, o := range options {
			svc.Options = append(svc.Options, catalog.ServiceOption{
				Name:  catalog.LocalizedText{FR: o.NameFR, EN: o.NameEN},
				Price: o.Price,
			})
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}

	return catalog.NewCatalog(services), nil
}

const selectServiceByID = `
SELECT service_id, name_fr, name_en, description_fr, description_en,
       base_price, estimated_duration, options
FROM services
WHERE service_id = $1`

func (s *ServiceStore) FindByID(ctx context.Context, serviceID string) (catalog.Service, error) {
	var (
		svc     catalog.Service
		options []optionRow
	)
	err := s.pool.QueryRow(ctx, selectServiceByID, serviceID).Scan(
		&svc.ServiceID,
		&svc.Name.FR, &svc.Name.EN,
		&svc.Description.FR, &svc.Description.EN,
		&svc.BasePrice,
		&svc.EstimatedDuration,
		&options,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Service{}, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return catalog.Service{}, infra.WrapRepoErr("failed to find service", err)
	}
	for _, o := range options {
		svc.Options = append(svc.Options, catalog.ServiceOption{
			Name:  catalog.LocalizedText{FR: o.NameFR, EN: o.NameEN},
			Price: o.Price,
		})
	}
	return svc, nil
}

// optionRow mirrors the JSONB shape stored in services.options.
type optionRow struct {
	NameFR string  `json:"name_fr"`
	NameEN string  `json:"name_en"`
	Price  float64 `json:"price"`
}
