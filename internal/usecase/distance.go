package usecase

import (
	"context"

	"mechmobile/internal/infra/geo"
	"mechmobile/internal/usecase/readmodel"
)

type DistanceUseCase interface {
	Resolve(ctx context.Context, address string) (*readmodel.DistanceRM, error)
}

type distanceUseCaseImpl struct {
	resolver geo.Resolver
}

// NewDistanceUseCase serves the live distance lookup. The injected resolver
// carries the debounce window, so a customer typing an address only costs
// one upstream call; the estimate and booking flows use the undebounced
// chain instead.
func NewDistanceUseCase(resolver geo.Resolver) DistanceUseCase {
	return &distanceUseCaseImpl{resolver: resolver}
}

func (d *distanceUseCaseImpl) Resolve(ctx context.Context, address string) (*readmodel.DistanceRM, error) {
	dist, err := d.resolver.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}
	return &readmodel.DistanceRM{DistanceKm: dist.Km, Source: dist.Source}, nil
}
