package usecase

import (
	"context"

	"mechmobile/internal/domain/catalog"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase/readmodel"
)

type ServiceRepository interface {
	LoadCatalog(ctx context.Context) (*catalog.Catalog, error)
	FindByID(ctx context.Context, serviceID string) (catalog.Service, error)
}

type CatalogUseCase interface {
	ListServices(ctx context.Context) ([]*readmodel.ServiceRM, error)
	GetCatalog(ctx context.Context) (*catalog.Catalog, error)
}

type catalogUseCaseImpl struct {
	services ServiceRepository
}

func NewCatalogUseCase(services ServiceRepository) CatalogUseCase {
	return &catalogUseCaseImpl{services: services}
}

func (c *catalogUseCaseImpl) ListServices(ctx context.Context) ([]*readmodel.ServiceRM, error) {
	cat, err := c.services.LoadCatalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := make([]*readmodel.ServiceRM, 0, cat.Len())
	for _, svc := range cat.All() {
		rm := &readmodel.ServiceRM{
			ServiceID:         svc.ServiceID,
			NameFR:            svc.Name.FR,
			NameEN:            svc.Name.In(catalog.LangEN),
			DescriptionFR:     svc.Description.FR,
			DescriptionEN:     svc.Description.In(catalog.LangEN),
			BasePrice:         svc.BasePrice,
			EstimatedDuration: svc.EstimatedDuration,
		}
		for _, opt := range svc.Options {
			rm.Options = append(rm.Options, readmodel.ServiceOptionRM{
				NameFR: opt.Name.FR,
				NameEN: opt.Name.In(catalog.LangEN),
				Price:  opt.Price,
			})
		}
		result = append(result, rm)
	}
	return result, nil
}

func (c *catalogUseCaseImpl) GetCatalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := c.services.LoadCatalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return cat, nil
}
